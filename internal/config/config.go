package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Environment variable names.
const (
	EnvDB      = "PROMOCAL_DB"
	EnvData    = "PROMOCAL_DATA"
	EnvLog     = "PROMOCAL_LOG"
	EnvLogFile = "PROMOCAL_LOG_FILE"
	EnvTheme   = "PROMOCAL_THEME"
)

// Config holds runtime settings. Everything comes from the environment;
// a .env file in the working directory is loaded by main before LoadConfig.
type Config struct {
	// Dir is the per-user state directory, ~/.promocal by default.
	Dir string
	// DBPath is the SQLite preference store.
	DBPath string
	// DataPath optionally replaces the embedded month dataset.
	DataPath string
	// LogEnabled adds the Info-level trace of every use case. Warnings and
	// errors are logged either way.
	LogEnabled bool
	// LogFile receives log output. Empty means stderr for plain commands
	// and TUILogFile for the interactive UI.
	LogFile string
	// Theme, when set, overrides the stored theme for this run only.
	Theme string
}

// DefaultConfig returns a Config rooted at ~/.promocal.
func DefaultConfig() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("finding home directory: %w", err)
	}
	dir := filepath.Join(home, ".promocal")
	return Config{
		Dir:    dir,
		DBPath: filepath.Join(dir, "promocal.db"),
	}, nil
}

// LoadConfig reads configuration from environment variables, falling back
// to defaults for any unset values, and validates the result.
func LoadConfig() (Config, error) {
	cfg, err := DefaultConfig()
	if err != nil {
		return Config{}, err
	}

	if v := os.Getenv(EnvDB); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv(EnvData); v != "" {
		cfg.DataPath = v
	}
	if v := os.Getenv(EnvLog); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid configuration: %s: %q is not a boolean", EnvLog, v)
		}
		cfg.LogEnabled = enabled
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		cfg.LogFile = v
	}
	cfg.Theme = os.Getenv(EnvTheme)

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks the loaded values.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.DBPath, validation.Required),
		validation.Field(&c.Theme, validation.In("light", "dark")),
		validation.Field(&c.DataPath, validation.By(fileExists)),
	)
}

// LogLevel is Info with LogEnabled, otherwise Warn.
func (c *Config) LogLevel() slog.Level {
	if c.LogEnabled {
		return slog.LevelInfo
	}
	return slog.LevelWarn
}

// TUILogFile is where the interactive UI logs when no file is configured.
func (c *Config) TUILogFile() string {
	if c.LogFile != "" {
		return c.LogFile
	}
	return filepath.Join(c.Dir, "promocal.log")
}

func fileExists(value interface{}) error {
	path, _ := value.(string)
	if path == "" {
		return nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("cannot read %s", path)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}
	return nil
}
