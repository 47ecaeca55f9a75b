// Package config provides configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/ersonp/survive-core/internal/domain/entities"
)

const (
	// DefaultConfigDir is the directory name for survive configuration.
	DefaultConfigDir = ".survive"
	// DefaultConfigFile is the default config file name.
	DefaultConfigFile = "config.yaml"
	// DefaultJournalFile is the default journal database file name.
	DefaultJournalFile = "journal.db"
	// DefaultEnvFile is the optional dotenv file read from the base path.
	DefaultEnvFile = ".env"
	// DefaultTitle is the banner shown when a game starts.
	DefaultTitle = "Welcome to Survive: Can You Survive?"
	// DefaultMaxTurns is the number of events to survive to win.
	DefaultMaxTurns = 10
)

// Config holds the game configuration (read-only after load).
type Config struct {
	Game       GameConfig                 `yaml:"game"`
	Content    ContentConfig              `yaml:"content"`
	Journal    JournalConfig              `yaml:"journal"`
	Log        LogConfig                  `yaml:"log"`
	Characters []entities.CharacterConfig `yaml:"characters,omitempty"`
	Weapons    []entities.Weapon          `yaml:"weapons,omitempty"`
}

// GameConfig holds the rules of play.
type GameConfig struct {
	Title string `yaml:"title,omitempty"`
	// Seed fixes the random source. Zero picks a random seed per game.
	Seed     int64         `yaml:"seed,omitempty"`
	MaxTurns int           `yaml:"max_turns"`
	Effects  EffectsConfig `yaml:"effects,omitempty"`
}

// EffectsConfig overrides the default outcome effects, keyed by attribute.
// A nil map keeps the built-in effects for that outcome.
type EffectsConfig struct {
	Pass        map[string]int `yaml:"pass,omitempty"`
	PartialPass map[string]int `yaml:"partial_pass,omitempty"`
	Fail        map[string]int `yaml:"fail,omitempty"`
}

// JournalConfig holds configuration for the game history journal.
type JournalConfig struct {
	Enabled bool `yaml:"enabled"`
	// Path is the SQLite database file. Relative paths resolve against the
	// config directory.
	Path string `yaml:"path,omitempty"`
}

// LogConfig holds diagnostic logging configuration.
type LogConfig struct {
	Level string `yaml:"level,omitempty"`
}

// envOverrides are the environment variables that take precedence over the
// config file. Unset variables leave the file value in place.
type envOverrides struct {
	Seed           *int64  `env:"SURVIVE_SEED"`
	MaxTurns       *int    `env:"SURVIVE_MAX_TURNS"`
	JournalPath    *string `env:"SURVIVE_JOURNAL_PATH"`
	JournalEnabled *bool   `env:"SURVIVE_JOURNAL_ENABLED"`
	LogLevel       *string `env:"SURVIVE_LOG_LEVEL"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Game: GameConfig{
			Title:    DefaultTitle,
			MaxTurns: DefaultMaxTurns,
		},
		Journal: JournalConfig{
			Enabled: true,
			Path:    DefaultJournalFile,
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// Load loads configuration from the .survive directory in the given path.
// A missing config file yields the defaults. A .env file in basePath is
// loaded into the environment first, then environment overrides apply.
func Load(basePath string) (*Config, error) {
	if err := loadDotEnv(basePath); err != nil {
		return nil, err
	}

	cfg := Default()

	data, err := os.ReadFile(ConfigFilePath(basePath))
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("reading config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadDotEnv loads basePath/.env without overriding variables already set.
func loadDotEnv(basePath string) error {
	path := filepath.Join(basePath, DefaultEnvFile)
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() error {
	var o envOverrides
	if err := env.Parse(&o); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	if o.Seed != nil {
		c.Game.Seed = *o.Seed
	}
	if o.MaxTurns != nil {
		c.Game.MaxTurns = *o.MaxTurns
	}
	if o.JournalPath != nil {
		c.Journal.Path = *o.JournalPath
	}
	if o.JournalEnabled != nil {
		c.Journal.Enabled = *o.JournalEnabled
	}
	if o.LogLevel != nil {
		c.Log.Level = *o.LogLevel
	}
	return nil
}

// Validate checks values that cannot be corrected later.
func (c *Config) Validate() error {
	if c.Game.MaxTurns < 0 {
		return fmt.Errorf("game.max_turns must not be negative (got %d)", c.Game.MaxTurns)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	for i, src := range c.Content.Locations {
		if src.Path == "" {
			return fmt.Errorf("content.locations[%d]: path is required", i)
		}
	}
	return nil
}

// ParseLevel converts a log level name to a slog level. Empty means warn.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "", "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q (use debug, info, warn or error)", level)
	}
}

// Presets returns the configured characters, or the built-in presets.
func (c *Config) Presets() []entities.CharacterConfig {
	if len(c.Characters) > 0 {
		return c.Characters
	}
	return entities.DefaultPresets
}

// Catalog returns the configured weapons, or the built-in catalog.
func (c *Config) Catalog() (entities.Catalog, error) {
	if len(c.Weapons) == 0 {
		return entities.DefaultCatalog(), nil
	}
	catalog, err := entities.NewCatalog(c.Weapons...)
	if err != nil {
		return entities.Catalog{}, fmt.Errorf("weapons: %w", err)
	}
	return catalog, nil
}

// JournalPath returns the absolute journal path for the given base path.
func (c *Config) JournalPath(basePath string) string {
	return resolve(basePath, c.Journal.Path)
}

// ConfigDir returns the path to the .survive config directory.
func ConfigDir(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir)
}

// ConfigFilePath returns the path to the config file.
func ConfigFilePath(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir, DefaultConfigFile)
}

// resolve makes a path relative to the config directory absolute.
func resolve(basePath, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(ConfigDir(basePath), path)
}
