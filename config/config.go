package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const envFile = ".env"

// Config holds the settings of the CLI and HTTP server. The engine itself
// takes no configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Store   StoreConfig   `yaml:"store"`
	Logging LoggingConfig `yaml:"logging"`
}

type ServerConfig struct {
	Addr        string   `yaml:"addr"`
	CORSOrigins []string `yaml:"cors_origins"`
}

// StoreConfig bounds the in-memory history of forged results.
type StoreConfig struct {
	MaxEntries int `yaml:"max_entries"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns the configuration used when no file or env override is
// present.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:        ":8080",
			CORSOrigins: []string{"*"},
		},
		Store:   StoreConfig{MaxEntries: 256},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads path over the defaults, then the .env file beside it, then
// AUTOFORGE_* environment variables. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config %s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist):
		default:
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		// godotenv never overrides variables already set in the process.
		_ = godotenv.Load(filepath.Join(filepath.Dir(path), envFile))
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := strings.TrimSpace(os.Getenv("AUTOFORGE_ADDR")); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("AUTOFORGE_CORS_ORIGINS"); v != "" {
		cfg.Server.CORSOrigins = splitList(v)
	}
	if v := strings.TrimSpace(os.Getenv("AUTOFORGE_STORE_MAX_ENTRIES")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid AUTOFORGE_STORE_MAX_ENTRIES %q: %w", v, err)
		}
		cfg.Store.MaxEntries = n
	}
	if v := strings.TrimSpace(os.Getenv("AUTOFORGE_LOG_LEVEL")); v != "" {
		cfg.Logging.Level = v
	}
	return nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Server.Addr == "" {
		return errors.New("server.addr must not be empty")
	}
	if c.Store.MaxEntries <= 0 {
		return fmt.Errorf("store.max_entries must be positive, got %d", c.Store.MaxEntries)
	}
	if _, err := ParseLevel(c.Logging.Level); err != nil {
		return err
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
