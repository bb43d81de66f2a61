package catalog

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// fileConfig is the YAML shape of a catalog override file.
type fileConfig struct {
	Templates []string `yaml:"templates"`
	Cities    []string `yaml:"cities"`
}

// Load reads a catalog override from a YAML file. A list left empty in the
// file falls back to the built-in default, so a config can override just
// the cities or just the templates.
func Load(path string) (*Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog config: %w", err)
	}

	var cfg fileConfig
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("parsing catalog config: %w", err)
	}

	cat := Default()
	if len(cfg.Templates) > 0 {
		for _, tmpl := range cfg.Templates {
			if strings.Count(tmpl, "%s") != 1 {
				return nil, fmt.Errorf("catalog template %q must contain exactly one %%s", tmpl)
			}
		}
		cat.Templates = cfg.Templates
	}
	if len(cfg.Cities) > 0 {
		cat.Cities = cfg.Cities
	}
	return cat, nil
}
