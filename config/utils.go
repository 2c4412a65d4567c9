package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ghodss/yaml"
)

// ToYaml formats the configuration into YAML and returns the bytes.
func ToYaml(c Config) ([]byte, error) {
	yamlstr, err := yaml.Marshal(c)
	if err != nil {
		return nil, err
	}
	return yamlstr, nil
}

// ToYamlFile writes the configuration to a YAML file.
func ToYamlFile(c Config, p string) error {
	b, err := ToYaml(c)
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0600)
}

// Parse parses a YAML doc into the given Config instance.
func Parse(raw []byte, conf *Config) error {
	err := yaml.Unmarshal(raw, conf)
	if err != nil {
		return err
	}
	return nil
}

// ParseFile parses a simsub config file, which is formatted in YAML,
// into the given Config instance.
func ParseFile(relpath string, conf *Config) error {
	if relpath == "" {
		return nil
	}

	// Try to get absolute path. If it fails, fall back to relative path.
	p, abserr := filepath.Abs(relpath)
	if abserr != nil {
		p = relpath
	}

	// Read file
	source, err := os.ReadFile(p)
	if err != nil {
		return fmt.Errorf("failed to read config at path %s: %v", p, err)
	}

	// Parse file
	err = Parse(source, conf)
	if err != nil {
		return fmt.Errorf("failed to parse config at path %s: %v", p, err)
	}
	return nil
}
