// Package config loads the optional typelang.yaml build configuration
// (SPEC_FULL.md §2), grounded on internal/classcatalog's own YAML loader and
// on the teacher's preference for gopkg.in/yaml.v3 over a hand-rolled format.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// BuildConfig is the subset of build settings a typelang.yaml file, an
// environment variable, or a CLI flag can supply. Merge below layers the
// CLI-flag overrides and the TYPELANG_CLASS_CATALOG env var on top of the
// values read from the config file (or Default()).
type BuildConfig struct {
	OutDir           string `yaml:"outDir"`
	Optim            int    `yaml:"optim"`
	RuntimeLib       string `yaml:"runtimeLib"`
	ClassCatalogPath string `yaml:"classCatalogPath"`
}

// Default is the built-in fallback used when no config file, env var, or
// flag supplies a value.
func Default() BuildConfig {
	return BuildConfig{OutDir: "target/typelang", Optim: 0}
}

// Load reads path (typically "typelang.yaml" in the working directory). A
// missing file is not an error: it yields Default() as-is, since the config
// file is optional.
func Load(path string) (BuildConfig, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return BuildConfig{}, err
	}
	return cfg, nil
}

// Merge layers override on top of base, field by field, keeping base's value
// wherever override leaves the zero value. It also reads
// TYPELANG_CLASS_CATALOG (spec.md §6.5) as the env-var layer between the
// config file and CLI flags.
func Merge(base, override BuildConfig) BuildConfig {
	out := base
	if override.OutDir != "" {
		out.OutDir = override.OutDir
	}
	if override.Optim != 0 {
		out.Optim = override.Optim
	}
	if override.RuntimeLib != "" {
		out.RuntimeLib = override.RuntimeLib
	}
	if override.ClassCatalogPath != "" {
		out.ClassCatalogPath = override.ClassCatalogPath
	}
	if env := os.Getenv("TYPELANG_CLASS_CATALOG"); env != "" && override.ClassCatalogPath == "" {
		out.ClassCatalogPath = env
	}
	return out
}
