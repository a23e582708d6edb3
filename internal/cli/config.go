package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the optional YAML configuration file for the check command.
// Flags take precedence over the file.
type Config struct {
	// FailOnFindings controls whether findings produce a non-zero exit
	// code. Defaults to true when unset.
	FailOnFindings *bool `yaml:"fail_on_findings"`
	// Manifest is the crate directory whose Cargo.toml gates analysis.
	Manifest string `yaml:"manifest"`
}

// LoadConfig reads a YAML config file. A missing path is not an error for
// the caller to special-case; the caller only passes paths the user named.
func LoadConfig(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}

// failOnFindings resolves the effective setting.
func (c *Config) failOnFindings() bool {
	if c == nil || c.FailOnFindings == nil {
		return true
	}
	return *c.FailOnFindings
}
