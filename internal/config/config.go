package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/thenoetrevino/reportgrid/internal/config/colors"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	DataDir     string             `yaml:"data_dir"`
	LogLevel    string             `yaml:"log_level"`
	Render      RenderConfig       `yaml:"render"`
	KeyMappings KeyMappings        `yaml:"key_mappings"`
	ColorScheme colors.ColorScheme `yaml:"theme"`
}

// RenderConfig controls how grid previews are drawn
type RenderConfig struct {
	// CellWidth is the number of terminal columns per grid unit
	CellWidth int `yaml:"cell_width"`
}

const (
	defaultLogLevel  = "info"
	defaultCellWidth = 6
)

// Default returns the configuration used when no file exists
func Default() *Config {
	config := &Config{
		KeyMappings: DefaultKeyMappings(),
		ColorScheme: *colors.Default(),
	}
	config.applyDefaults()
	return config
}

// loadThemeFile loads and merges theme from REPORTGRID_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv("REPORTGRID_THEME_FILE")
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme colors.ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	config := &Config{}

	configPath, err := getConfigPath()
	if err == nil {
		data, err := os.ReadFile(configPath)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("parsing %s: %w", configPath, err)
			}
		case !os.IsNotExist(err):
			return nil, err
		}
	}

	loadThemeFile(config)

	if dir := os.Getenv("REPORTGRID_DATA_DIR"); dir != "" {
		config.DataDir = dir
	}

	// Fill in any missing values with defaults
	config.applyDefaults()

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
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

// DatabasePath is where the sqlite database lives
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, "reports.db")
}

// SocketPath is where the live update daemon listens
func (c *Config) SocketPath() string {
	return filepath.Join(c.DataDir, "reportgrid.sock")
}

// LogPath is the application log file
func (c *Config) LogPath() string {
	return filepath.Join(c.DataDir, "logs", "reportgrid.log")
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "reportgrid", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "reportgrid", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.DataDir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			c.DataDir = filepath.Join(home, ".reportgrid")
		} else {
			c.DataDir = ".reportgrid"
		}
	}
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}
	if c.Render.CellWidth <= 0 {
		c.Render.CellWidth = defaultCellWidth
	}
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}

func (c *Config) validate() error {
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("invalid log_level '%s' (must be: debug, info, warn, error)", c.LogLevel)
	}
}
