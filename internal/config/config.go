package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type Config struct {
	DB      DBConfig      `toml:"database"`
	OpenAI  OpenAIConfig  `toml:"openai"`
	Session SessionConfig `toml:"session"`
}

type DBConfig struct {
	ConnectionString string `toml:"connection_string"` // The entire DB connection string.
}

type OpenAIConfig struct {
	Model string `toml:"model"` // Empty means the generator's default.
}

type SessionConfig struct {
	DefaultRestSeconds int `toml:"default_rest_seconds"`
}

// Returns the path to the config file.
func GetConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(home, ".config", "forja")
	return filepath.Join(dir, "config.toml"), nil
}

// Reads the configuration from the config file. A missing file is fine;
// everything has a default or an env override.
func LoadConfig() (*Config, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	// Check for a DEV_MODE environment variable.
	if os.Getenv("DEV_MODE") == "true" {
		cfg.DB.ConnectionString = "file:./local.db?cache=shared&mode=rwc"
	}

	return &cfg, nil
}
