// Package config loads the optional per-project toolbox configuration.
//
// The file holds the scaffold variant knobs that differ between observed
// setups (theme, autoapi member order, preamble insertion, interpreter);
// absence of the file or of any key means "use the built-in default".
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is the config file looked up in the project root.
const DefaultFileName = ".pydevkit.yaml"

// Config is the top-level configuration document.
type Config struct {
	Docs DocsConfig `yaml:"docs"`
}

// DocsConfig holds scaffold variant knobs. Zero values mean "unset";
// merging with defaults happens at the command layer.
type DocsConfig struct {
	Theme          string `yaml:"theme,omitempty"`
	MemberOrder    string `yaml:"member_order,omitempty"`
	InsertPreamble *bool  `yaml:"insert_preamble,omitempty"`
	Python         string `yaml:"python,omitempty"`
}

// Load reads the configuration at path. A missing file is not an error and
// yields an empty configuration.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}
