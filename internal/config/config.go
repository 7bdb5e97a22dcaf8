package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level balanza.yaml configuration.
type Config struct {
	Profile ProfileConfig `yaml:"profile"`
	Ledger  LedgerConfig  `yaml:"ledger"`
	Git     GitConfig     `yaml:"git"`
}

// ProfileConfig identifies the data directory's owner.
type ProfileConfig struct {
	Name     string `yaml:"name"`
	Currency string `yaml:"currency"`
}

// LedgerConfig controls ledger engine behavior.
type LedgerConfig struct {
	// StrictRules rejects movement types that have no flow rule instead
	// of letting them through.
	StrictRules bool `yaml:"strict_rules"`
}

// GitConfig controls git integration.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Load reads a balanza.yaml file from disk.
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

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new data directory.
func Default(name, currency string) *Config {
	if currency == "" {
		currency = "USD"
	}
	return &Config{
		Profile: ProfileConfig{
			Name:     name,
			Currency: currency,
		},
		Ledger: LedgerConfig{
			StrictRules: false,
		},
		Git: GitConfig{
			AutoCommit:  true,
			AuthorName:  "Balanza CLI",
			AuthorEmail: "cli@balanza.dev",
		},
	}
}
