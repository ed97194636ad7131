package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents a reconciler run file.
type Config struct {
	Ledgers LedgersConfig `yaml:"ledgers"`
	Output  OutputConfig  `yaml:"output,omitempty"`
}

// LedgersConfig names the two input ledgers.
type LedgersConfig struct {
	A string `yaml:"a"`
	B string `yaml:"b"`
}

// OutputConfig controls where the annotated ledgers are written. An empty
// path disables the corresponding file.
type OutputConfig struct {
	A string `yaml:"a,omitempty"`
	B string `yaml:"b,omitempty"`
}

// Default builds a run file for a ledger pair.
func Default(ledgerA, ledgerB string) *Config {
	return &Config{
		Ledgers: LedgersConfig{A: ledgerA, B: ledgerB},
	}
}

// Load reads a run file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a run file to disk.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
