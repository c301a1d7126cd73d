// Package config loads the driver's optional YAML configuration file.
// It never writes anything back; kcc-lex persists no state.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config overrides the driver's fixed in/out path pair and compile
// flags. Every field is optional; a zero Config changes nothing.
type Config struct {
	In         string `yaml:"in"`
	Out        string `yaml:"out"`
	NoComments bool   `yaml:"no_comments"`
	DumpTokens bool   `yaml:"dump_tokens"`
}

// Load reads and parses the YAML file at path. A missing file is not
// an error; it yields a zero Config so the driver falls back to its
// built-in defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, errors.Wrapf(err, "reading config %q", path)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrapf(err, "parsing config %q", path)
	}
	return &cfg, nil
}
