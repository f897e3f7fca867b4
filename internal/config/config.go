// Package config merges Haven's configuration sources. Precedence, lowest
// to highest: built-in defaults, the YAML config file, a .env file in the
// working directory, then process environment variables.
package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	envDBPath     = "HAVEN_DB"
	envTimezone   = "HAVEN_TZ"
	envPinHashing = "HAVEN_PIN_HASHING"
	envConfigPath = "HAVEN_CONFIG"
)

type Config struct {
	DBPath     string `yaml:"db_path"`
	Timezone   string `yaml:"timezone"`
	PinHashing bool   `yaml:"pin_hashing"`
}

func Default() Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return Config{
		DBPath:   filepath.Join(home, ".haven", "haven.db"),
		Timezone: "UTC",
	}
}

// Load builds the effective configuration. An absent config file or .env
// is fine; a config file that exists but does not parse is an error.
func Load() (Config, error) {
	cfg := Default()

	if err := applyFile(&cfg, configFilePath()); err != nil {
		return Config{}, err
	}

	// Hoists KEY=VALUE pairs from ./.env into the environment without
	// overriding variables that are already set.
	_ = godotenv.Load()

	applyEnv(&cfg)
	return cfg, nil
}

// Location resolves the configured timezone, falling back to UTC on an
// unknown name the way the application always has.
func (cfg Config) Location() *time.Location {
	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Printf("invalid timezone %q, falling back to UTC", cfg.Timezone)
		return time.UTC
	}
	return location
}

func configFilePath() string {
	if path := os.Getenv(envConfigPath); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".haven", "config.yaml")
}

func applyFile(cfg *Config, path string) error {
	if path == "" {
		return nil
	}
	payload, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(payload, cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	cfg.DBPath = getEnv(envDBPath, cfg.DBPath)
	cfg.Timezone = getEnv(envTimezone, cfg.Timezone)

	if raw := os.Getenv(envPinHashing); raw != "" {
		value, err := strconv.ParseBool(raw)
		if err != nil {
			log.Printf("invalid %s value %q, keeping %v", envPinHashing, raw, cfg.PinHashing)
		} else {
			cfg.PinHashing = value
		}
	}
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
