package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// DefaultPath is where the config document lives unless overridden.
const DefaultPath = "summarizer_config.json"

// Load reads the JSON config document at path. A missing or malformed
// document is not fatal: built-in defaults are returned together with an
// error describing the fallback, so the caller can log it and continue.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), fmt.Errorf("config %s not found, using defaults", path)
		}
		return Default(), fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// Save overwrites the whole document at path with indented JSON.
func Save(path string, cfg *Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	return nil
}
