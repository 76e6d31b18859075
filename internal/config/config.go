package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Oshri-Halevi/TaskManagerApp/internal/models"
)

// Environment overrides
const (
	EnvDatabasePath = "TASKMANAGER_DB"
	EnvSocketPath   = "TASKMANAGER_SOCKET"
	EnvThemeFile    = "TASKMANAGER_THEME_FILE"
)

// Defaults
const (
	DefaultLogLevel        = "info"
	DefaultUndoWindow      = 10 * time.Minute
	DefaultEventDebounceMS = 100
)

// Config represents the application configuration
type Config struct {
	DatabasePath    string                 `yaml:"database_path,omitempty"`
	LogLevel        string                 `yaml:"log_level"`
	DefaultFilter   models.FilterSelection `yaml:"default_filter"`
	DefaultSort     models.SortSelection   `yaml:"default_sort"`
	UndoWindow      time.Duration          `yaml:"undo_window"`
	EventDebounceMS int                    `yaml:"event_debounce_ms"`
	SocketPath      string                 `yaml:"socket_path,omitempty"`

	Preferences Preferences `yaml:"preferences"`
	KeyMappings KeyMappings `yaml:"key_mappings"`
	ColorScheme ColorScheme `yaml:"theme"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// loadThemeFile loads and merges theme from TASKMANAGER_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv(EnvThemeFile)
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	config := &Config{}

	configPath, err := Path()
	if err == nil {
		data, err := os.ReadFile(configPath)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("failed to parse %s: %w", configPath, err)
			}
		case !os.IsNotExist(err):
			return nil, fmt.Errorf("failed to read %s: %w", configPath, err)
		}
	}

	loadThemeFile(config)
	config.applyEnv()

	// Fill in any missing values with defaults
	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", configPath, err)
	}

	return config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := Path()
	if err != nil {
		return err
	}

	// Create config directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// Path returns the path to the config file
func Path() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "taskmanager", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "taskmanager", "config.yaml"), nil
}

// EventDebounce returns the daemon batching interval
func (c *Config) EventDebounce() time.Duration {
	return time.Duration(c.EventDebounceMS) * time.Millisecond
}

// Validate rejects values that defaults cannot repair
func (c *Config) Validate() error {
	if !slices.Contains(logLevels, c.LogLevel) {
		return fmt.Errorf("log_level %q: must be one of %v", c.LogLevel, logLevels)
	}
	if c.UndoWindow < 0 {
		return fmt.Errorf("undo_window %s: must not be negative", c.UndoWindow)
	}
	return c.Preferences.Validate()
}

var logLevels = []string{"debug", "info", "warn", "error"}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvDatabasePath); v != "" {
		c.DatabasePath = v
	}
	if v := os.Getenv(EnvSocketPath); v != "" {
		c.SocketPath = v
	}
}

// applyDefaults fills in missing configuration with defaults.
// Zero filter and sort values are already the defaults.
func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.UndoWindow == 0 {
		c.UndoWindow = DefaultUndoWindow
	}
	if c.EventDebounceMS <= 0 {
		c.EventDebounceMS = DefaultEventDebounceMS
	}
	c.Preferences.applyDefaults()
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}
