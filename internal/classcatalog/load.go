package classcatalog

import (
	"os"

	"gopkg.in/yaml.v3"
)

// yamlCatalog mirrors CLASS_METHODS's shape for YAML decoding.
type yamlCatalog struct {
	Classes []struct {
		Name    string `yaml:"name"`
		Methods []struct {
			Name      string `yaml:"name"`
			MethodID  int    `yaml:"methodId"`
			Signature string `yaml:"signature"`
		} `yaml:"methods"`
	} `yaml:"classes"`
}

// Load returns the class method catalog to use for one compile. path wins
// when non-empty (internal/config's flag/config-file layer); otherwise the
// file named by TYPELANG_CLASS_CATALOG (spec.md §6.5) is used when set;
// otherwise the committed fallback CLASS_METHODS.
func Load(path string) ([]ClassMethodSet, error) {
	if path == "" {
		path = os.Getenv("TYPELANG_CLASS_CATALOG")
	}
	if path == "" {
		return CLASS_METHODS, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var yc yamlCatalog
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return nil, err
	}
	out := make([]ClassMethodSet, 0, len(yc.Classes))
	for _, c := range yc.Classes {
		cms := ClassMethodSet{ClassName: c.Name}
		for _, m := range c.Methods {
			cms.Methods = append(cms.Methods, MethodSpec{
				Name:      m.Name,
				MethodID:  m.MethodID,
				Signature: SignaturePattern(m.Signature),
			})
		}
		out = append(out, cms)
	}
	return out, nil
}
