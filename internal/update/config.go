package update

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type RuntimeConfig struct {
	DatabasePath   string `yaml:"database_path"`
	Theme          string `yaml:"theme"`
	CategoryFilter string `yaml:"category_filter"`
}

func DefaultRuntimeConfig() RuntimeConfig {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return RuntimeConfig{
		DatabasePath:   filepath.Join(home, ".local", "share", "routined", "routined.db"),
		Theme:          "dark",
		CategoryFilter: "All",
	}
}

func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "routined", "config.yaml")
}

// LoadRuntimeConfig layers defaults, then the YAML file if present, then
// ROUTINED_* env overrides.
func LoadRuntimeConfig(path string) (RuntimeConfig, error) {
	cfg := DefaultRuntimeConfig()
	if path != "" {
		loaded, err := runtimeConfigFromFile(cfg, path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return cfg, err
		}
		if err == nil {
			cfg = loaded
		}
	}
	return RuntimeConfigFromEnv(cfg), nil
}

func runtimeConfigFromFile(base RuntimeConfig, path string) (RuntimeConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return base, err
	}
	cfg := base
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return base, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v, ok := getEnv("ROUTINED_DATABASE_PATH"); ok {
		cfg.DatabasePath = v
	}
	if v, ok := getEnv("ROUTINED_THEME"); ok {
		cfg.Theme = v
	}
	if v, ok := getEnv("ROUTINED_CATEGORY_FILTER"); ok {
		cfg.CategoryFilter = v
	}
	return cfg
}

func getEnv(name string) (string, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return "", false
	}
	return raw, true
}
