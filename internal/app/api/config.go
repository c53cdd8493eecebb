package api

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config carries settings for the API process. Values come from an optional
// YAML file named by CONFIG_PATH, with environment variables taking
// precedence.
type Config struct {
	Port            string        `yaml:"port"`
	Environment     string        `yaml:"environment"`
	LogLevel        string        `yaml:"log_level"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// LoadConfig reads the optional config file, applies environment overrides
// and defaults.
func LoadConfig() (Config, error) {
	cfg := Config{
		Port:            "8080",
		Environment:     "local",
		ShutdownTimeout: 5 * time.Second,
	}

	if path := strings.TrimSpace(os.Getenv("CONFIG_PATH")); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	if v := strings.TrimSpace(os.Getenv("PORT")); v != "" {
		cfg.Port = v
	}
	if v := strings.TrimSpace(os.Getenv("ENVIRONMENT")); v != "" {
		cfg.Environment = v
	}
	if v := strings.TrimSpace(os.Getenv("LOG_LEVEL")); v != "" {
		cfg.LogLevel = v
	}
	if cfg.Port == "" {
		return Config{}, fmt.Errorf("port must not be empty")
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 5 * time.Second
	}
	return cfg, nil
}
