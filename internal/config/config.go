package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application configuration.
type Config struct {
	Save    SaveConfig
	Game    GameConfig
	Logging LoggingConfig
}

type SaveConfig struct {
	Dir  string
	Name string
}

type GameConfig struct {
	Seed      uint64 // 0 picks a seed from the clock
	RulesFile string
}

type LoggingConfig struct {
	Level  string
	Format string
	File   string // empty logs to stderr
}

// LoadConfig reads .env, if there is one, then the environment.
func LoadConfig() (*Config, error) {
	// A missing .env is normal; the environment alone is enough.
	_ = godotenv.Load()

	game, err := loadGameConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	cfg := &Config{
		Save:    loadSaveConfig(),
		Game:    game,
		Logging: loadLoggingConfig(),
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func loadSaveConfig() SaveConfig {
	return SaveConfig{
		Dir:  getEnv("TREK_SAVE_DIR", "data"),
		Name: getEnv("TREK_SAVE_NAME", "save"),
	}
}

func loadGameConfig() (GameConfig, error) {
	raw := getEnv("TREK_SEED", "0")
	seed, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return GameConfig{}, fmt.Errorf("TREK_SEED must be a non-negative integer, got %q", raw)
	}
	return GameConfig{
		Seed:      seed,
		RulesFile: getEnv("TREK_RULES_FILE", ""),
	}, nil
}

func loadLoggingConfig() LoggingConfig {
	return LoggingConfig{
		Level:  getEnv("LOG_LEVEL", "info"),
		Format: getEnv("LOG_FORMAT", "text"),
		File:   getEnv("LOG_FILE", ""),
	}
}

func (c *Config) validate() error {
	if c.Save.Dir == "" {
		return fmt.Errorf("TREK_SAVE_DIR is required")
	}
	if c.Save.Name == "" {
		return fmt.Errorf("TREK_SAVE_NAME is required")
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("LOG_FORMAT must be text or json, got %q", c.Logging.Format)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
