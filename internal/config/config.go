// Package config exposes the tool's settings loaded from a small YAML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultPath is where the settings file lives unless overridden by the
// --config flag or the AURORALEDGER_CONFIG environment variable.
const DefaultPath = "auroraledger.yaml"

// Config collects every setting the CLI needs.
type Config struct {
	RecordsDir   string `yaml:"records_dir"`
	PlansDir     string `yaml:"plans_dir"`
	NetworksFile string `yaml:"networks_file"`
	Network      string `yaml:"network"`
	LogLevel     string `yaml:"log_level"`
}

// Default returns the settings used when no file is present.
func Default() *Config {
	return &Config{
		RecordsDir:   "records",
		PlansDir:     "plans",
		NetworksFile: "networks.json",
		Network:      "testnet",
		LogLevel:     "info",
	}
}

// Path resolves the settings file location: the explicit flag value wins,
// then AURORALEDGER_CONFIG, then DefaultPath. A .env file is loaded
// best-effort before the environment is consulted.
func Path(explicit string) string {
	_ = godotenv.Load()
	if explicit != "" {
		return explicit
	}
	if v := os.Getenv("AURORALEDGER_CONFIG"); v != "" {
		return v
	}
	return DefaultPath
}

// Load reads a YAML settings file. A missing file is not an error; it
// yields the defaults. Keys omitted from the file keep their defaults.
func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	cfg := Default()
	if err := yaml.NewDecoder(file).Decode(cfg); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	return cfg, nil
}

// Save persists settings to disk as YAML.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("nil config")
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
