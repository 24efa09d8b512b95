// internal/config/config.go
//
// Runtime configuration.
//
// Sources, lowest to highest precedence:
//  1. Built-in defaults.
//  2. TOML file (~/.cli-wordle/config.toml unless WORDLE_CONFIG points elsewhere).
//  3. Environment, including a .env file in the working directory.
//
// Environment variables:
//
//	LOG_LEVEL            zerolog level (default "info")
//	LOG_FILE             log destination while the board owns the terminal
//	WORDS_ANSWERS_FILE   puzzle words file
//	WORDS_ALLOWED_FILE   accepted guesses file
//	WORDLE_DB            results database path, "off" keeps history in memory
//	DAILY_SALT           salt for the word of the day
//	WORDLE_SEED          fixed seed for reproducible targets
//	WORDLE_STRICT        require guesses to be in the dictionary (default true)
//	PORT                 port for `wordle serve` (default 5175)
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// DatabaseOff disables the on-disk history.
const DatabaseOff = "off"

// Config holds every tunable of the game.
type Config struct {
	LogLevel    string  `toml:"log_level"`
	LogFile     string  `toml:"log_file"`
	AnswersFile string  `toml:"answers_file"`
	AllowedFile string  `toml:"allowed_file"`
	Database    string  `toml:"database"`
	DailySalt   string  `toml:"daily_salt"`
	Seed        *uint64 `toml:"seed"`
	Strict      bool    `toml:"strict"`
	Port        string  `toml:"port"`
}

// Dir returns the per-user state directory (~/.cli-wordle).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".cli-wordle"
	}
	return filepath.Join(home, ".cli-wordle")
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LogLevel:  "info",
		Database:  filepath.Join(Dir(), "wordle.db"),
		DailySalt: "cli-wordle",
		Strict:    true,
		Port:      "5175",
	}
}

// Load builds the configuration. path overrides the TOML location; a
// missing file is not an error.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if path == "" {
		path = getEnv("WORDLE_CONFIG", filepath.Join(Dir(), "config.toml"))
	}
	if err := cfg.readFile(path); err != nil {
		return cfg, err
	}
	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) readFile(path string) error {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(b, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
	c.LogFile = getEnv("LOG_FILE", c.LogFile)
	c.AnswersFile = getEnv("WORDS_ANSWERS_FILE", c.AnswersFile)
	c.AllowedFile = getEnv("WORDS_ALLOWED_FILE", c.AllowedFile)
	c.Database = getEnv("WORDLE_DB", c.Database)
	c.DailySalt = getEnv("DAILY_SALT", c.DailySalt)
	c.Port = getEnv("PORT", c.Port)

	if v := os.Getenv("WORDLE_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("WORDLE_SEED: %w", err)
		}
		c.Seed = &seed
	}
	if v := os.Getenv("WORDLE_STRICT"); v != "" {
		strict, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("WORDLE_STRICT: %w", err)
		}
		c.Strict = strict
	}
	return nil
}

// PersistHistory reports whether results go to an on-disk database.
func (c Config) PersistHistory() bool {
	return c.Database != "" && c.Database != DatabaseOff
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
