package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/thenoetrevino/reportgrid/internal/config/colors"
)

func TestDefaultKeyMappings(t *testing.T) {
	defaults := DefaultKeyMappings()

	// Test a few key bindings
	if defaults.Quit != "q" {
		t.Errorf("Default Quit key = %s, want q", defaults.Quit)
	}
	if defaults.InsertAfter != "a" {
		t.Errorf("Default InsertAfter key = %s, want a", defaults.InsertAfter)
	}
	if defaults.InsertRowBelow != "o" {
		t.Errorf("Default InsertRowBelow key = %s, want o", defaults.InsertRowBelow)
	}
}

func TestLoadConfigWithoutFile(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)
	t.Setenv("REPORTGRID_DATA_DIR", "")
	t.Setenv("REPORTGRID_THEME_FILE", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() without config file failed: %v", err)
	}

	// Should return default config
	if cfg.KeyMappings.Quit != "q" {
		t.Errorf("Loaded config Quit key = %s, want q (default)", cfg.KeyMappings.Quit)
	}
	if cfg.Render.CellWidth != defaultCellWidth {
		t.Errorf("Loaded CellWidth = %d, want %d", cfg.Render.CellWidth, defaultCellWidth)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("Loaded LogLevel = %s, want info", cfg.LogLevel)
	}
	if cfg.DataDir == "" {
		t.Error("DataDir should have a default")
	}
}

func TestLoadConfigWithFile(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)
	t.Setenv("REPORTGRID_DATA_DIR", "")
	t.Setenv("REPORTGRID_THEME_FILE", "")

	configDir := filepath.Join(tempDir, "reportgrid")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}

	configContent := `data_dir: /tmp/reports
log_level: debug
render:
  cell_width: 4
key_mappings:
  quit: "x"
  insert_after: "n"
`
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(configContent), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with config file failed: %v", err)
	}

	if cfg.KeyMappings.Quit != "x" {
		t.Errorf("Loaded Quit key = %s, want x", cfg.KeyMappings.Quit)
	}
	if cfg.KeyMappings.InsertAfter != "n" {
		t.Errorf("Loaded InsertAfter key = %s, want n", cfg.KeyMappings.InsertAfter)
	}
	// Unspecified values should use defaults
	if cfg.KeyMappings.InsertBefore != "i" {
		t.Errorf("Loaded InsertBefore key = %s, want i (default)", cfg.KeyMappings.InsertBefore)
	}
	if cfg.Render.CellWidth != 4 {
		t.Errorf("Loaded CellWidth = %d, want 4", cfg.Render.CellWidth)
	}
	if cfg.DatabasePath() != filepath.Join("/tmp/reports", "reports.db") {
		t.Errorf("DatabasePath = %s", cfg.DatabasePath())
	}
}

func TestLoadConfigDataDirFromEnv(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("REPORTGRID_THEME_FILE", "")
	dataDir := t.TempDir()
	t.Setenv("REPORTGRID_DATA_DIR", dataDir)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.DataDir != dataDir {
		t.Errorf("DataDir = %s, want %s", cfg.DataDir, dataDir)
	}
	if cfg.SocketPath() != filepath.Join(dataDir, "reportgrid.sock") {
		t.Errorf("SocketPath = %s", cfg.SocketPath())
	}
}

func TestLoadConfigInvalidLogLevel(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)
	t.Setenv("REPORTGRID_THEME_FILE", "")

	configDir := filepath.Join(tempDir, "reportgrid")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte("log_level: loud\n"), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	if _, err := Load(); err == nil {
		t.Error("Expected error for invalid log level")
	}
}

func TestThemeFileLoading(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	themePath := filepath.Join(t.TempDir(), "theme.yaml")
	themeContent := []byte(`theme:
  accent: "#FF0000"
  selected_border: "#00FF00"
`)
	if err := os.WriteFile(themePath, themeContent, 0o644); err != nil {
		t.Fatalf("Failed to write theme: %v", err)
	}
	t.Setenv("REPORTGRID_THEME_FILE", themePath)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.ColorScheme.Accent != "#FF0000" {
		t.Errorf("Accent = %s, want #FF0000", cfg.ColorScheme.Accent)
	}
	if cfg.ColorScheme.SelectedBorder != "#00FF00" {
		t.Errorf("SelectedBorder = %s, want #00FF00", cfg.ColorScheme.SelectedBorder)
	}
	// Untouched values fall back to the preset
	if cfg.ColorScheme.ContainerBorder != colors.Default().ContainerBorder {
		t.Errorf("ContainerBorder = %s, want preset value", cfg.ColorScheme.ContainerBorder)
	}
}

func TestSaveConfig(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)
	t.Setenv("REPORTGRID_DATA_DIR", "")
	t.Setenv("REPORTGRID_THEME_FILE", "")

	cfg := &Config{
		DataDir: "/srv/reports",
		KeyMappings: KeyMappings{
			Quit:        "x",
			InsertAfter: "n",
		},
	}

	// Apply defaults to fill missing fields
	cfg.applyDefaults()

	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	configPath := filepath.Join(tempDir, "reportgrid", "config.yaml")
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Fatalf("Config file not created at %s", configPath)
	}

	cfg2, err := Load()
	if err != nil {
		t.Fatalf("Load() after Save() failed: %v", err)
	}

	if cfg2.KeyMappings.Quit != "x" {
		t.Errorf("Reloaded Quit key = %s, want x", cfg2.KeyMappings.Quit)
	}
	if cfg2.DataDir != "/srv/reports" {
		t.Errorf("Reloaded DataDir = %s, want /srv/reports", cfg2.DataDir)
	}
}

func TestMonochromePreset(t *testing.T) {
	cfg := &Config{ColorScheme: *colors.Monochrome()}
	cfg.ColorScheme.Accent = ""

	cfg.applyDefaults()

	if cfg.ColorScheme.Accent != "#FFFFFF" {
		t.Errorf("Accent = %s, want monochrome preset value", cfg.ColorScheme.Accent)
	}
}
