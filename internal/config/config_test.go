package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadParsesYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "typelang.yaml")
	require.NoError(t, os.WriteFile(path, []byte("outDir: build/out\noptim: 2\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "build/out", cfg.OutDir)
	require.Equal(t, 2, cfg.Optim)
}

func TestMergePrefersOverrideThenBase(t *testing.T) {
	base := BuildConfig{OutDir: "from-file", Optim: 1}
	override := BuildConfig{OutDir: "from-flag"}

	merged := Merge(base, override)
	require.Equal(t, "from-flag", merged.OutDir)
	require.Equal(t, 1, merged.Optim)
}

func TestMergeReadsClassCatalogEnvVar(t *testing.T) {
	t.Setenv("TYPELANG_CLASS_CATALOG", "/tmp/catalog.yaml")
	merged := Merge(Default(), BuildConfig{})
	require.Equal(t, "/tmp/catalog.yaml", merged.ClassCatalogPath)
}

func TestMergeFlagWinsOverEnvVar(t *testing.T) {
	t.Setenv("TYPELANG_CLASS_CATALOG", "/tmp/catalog.yaml")
	merged := Merge(Default(), BuildConfig{ClassCatalogPath: "/tmp/from-flag.yaml"})
	require.Equal(t, "/tmp/from-flag.yaml", merged.ClassCatalogPath)
}
