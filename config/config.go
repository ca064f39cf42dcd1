// Package config provides configuration loading and management for the
// Graphol export pipeline.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/c360studio/graphol/owl"
)

// Config represents the complete Graphol configuration.
type Config struct {
	Export ExportConfig `yaml:"export"`
}

// ExportConfig configures the OWL 2 export pipeline.
type ExportConfig struct {
	// Normalize rewrites equivalences and complex subsumptions into
	// simpler axioms (union sources and intersection targets are expanded
	// into per-operand subsumptions).
	Normalize bool `yaml:"normalize"`

	// Axioms is the list of axiom type names to emit. Empty means all.
	Axioms []string `yaml:"axioms"`
}

// DefaultConfig returns a Config with sensible defaults: every axiom type
// enabled, normalization off.
func DefaultConfig() *Config {
	return &Config{
		Export: ExportConfig{
			Normalize: false,
			Axioms:    nil,
		},
	}
}

// LoadFromFile loads configuration from a YAML file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return &config, nil
}

// Merge overlays non-zero fields from other onto c.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	if other.Export.Normalize {
		c.Export.Normalize = true
	}
	if len(other.Export.Axioms) > 0 {
		c.Export.Axioms = other.Export.Axioms
	}
}

// Validate checks that every configured axiom name is a known axiom type.
func (c *Config) Validate() error {
	known := make(map[string]bool, len(owl.AxiomTypes()))
	for _, t := range owl.AxiomTypes() {
		known[string(t)] = true
	}
	for _, name := range c.Export.Axioms {
		if !known[name] {
			return fmt.Errorf("unknown axiom type %q", name)
		}
	}
	return nil
}

// Enabled reports whether the given axiom type passes the filter.
func (e ExportConfig) Enabled(t owl.AxiomType) bool {
	if len(e.Axioms) == 0 {
		return true
	}
	for _, name := range e.Axioms {
		if name == string(t) {
			return true
		}
	}
	return false
}
