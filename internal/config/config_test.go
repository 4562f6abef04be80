package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Grid.Rows != 3 || cfg.Grid.Cols != 3 {
		t.Errorf("Expected 3x3 grid, got %dx%d", cfg.Grid.Cols, cfg.Grid.Rows)
	}

	if cfg.Keys.Start != "i" || cfg.Keys.Pause != "p" || cfg.Keys.Resume != "c" {
		t.Errorf("Unexpected default keys: %+v", cfg.Keys)
	}

	if !cfg.UI.ShowHelp {
		t.Error("Expected ShowHelp to be true")
	}

	if got := cfg.Tick(); got != 100*time.Millisecond {
		t.Errorf("Expected 100ms tick, got %v", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		wantWarning bool
	}{
		{
			name:        "default config is valid",
			mutate:      func(*Config) {},
			wantWarning: false,
		},
		{
			name:        "zero rows",
			mutate:      func(c *Config) { c.Grid.Rows = 0 },
			wantWarning: true,
		},
		{
			name:        "negative cols",
			mutate:      func(c *Config) { c.Grid.Cols = -2 },
			wantWarning: true,
		},
		{
			name:        "cell too narrow",
			mutate:      func(c *Config) { c.Grid.CellWidth = 1 },
			wantWarning: true,
		},
		{
			name:        "invalid tick interval",
			mutate:      func(c *Config) { c.Timer.TickInterval = "often" },
			wantWarning: true,
		},
		{
			name:        "negative tick interval",
			mutate:      func(c *Config) { c.Timer.TickInterval = "-1s" },
			wantWarning: true,
		},
		{
			name:        "slow tick interval",
			mutate:      func(c *Config) { c.Timer.TickInterval = "5s" },
			wantWarning: true,
		},
		{
			name:        "invalid theme",
			mutate:      func(c *Config) { c.UI.Theme = "invalid" },
			wantWarning: true,
		},
		{
			name:        "duplicate binding",
			mutate:      func(c *Config) { c.Keys.Pause = "p,i" },
			wantWarning: true,
		},
		{
			name:        "resume on separate keys",
			mutate:      func(c *Config) { c.Keys.Resume = "c,r" },
			wantWarning: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			warnings := cfg.Validate()
			hasWarnings := len(warnings) > 0
			if hasWarnings != tt.wantWarning {
				t.Errorf("Validate() hasWarnings = %v, want %v. Warnings: %v", hasWarnings, tt.wantWarning, warnings)
			}
		})
	}
}

func TestTickFallsBackToDefault(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Timer.TickInterval = "nonsense"
	if got := cfg.Tick(); got != DefaultTickInterval {
		t.Errorf("Expected default tick, got %v", got)
	}

	cfg.Timer.TickInterval = "250ms"
	if got := cfg.Tick(); got != 250*time.Millisecond {
		t.Errorf("Expected 250ms, got %v", got)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFromPath(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("LoadFromPath() error: %v", err)
	}
	if cfg.Grid.CellWidth != DefaultConfig().Grid.CellWidth {
		t.Errorf("Expected default cell width, got %d", cfg.Grid.CellWidth)
	}
}

func TestLoadPreservesDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	tomlContent := `[grid]
rows = 4

[keys]
start = "s"
`
	if err := os.WriteFile(configPath, []byte(tomlContent), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := LoadFromPath(configPath)
	if err != nil {
		t.Fatalf("LoadFromPath() error: %v", err)
	}

	if cfg.Grid.Rows != 4 {
		t.Errorf("Expected 4 rows, got %d", cfg.Grid.Rows)
	}
	if cfg.Keys.Start != "s" {
		t.Errorf("Expected start key 's', got %q", cfg.Keys.Start)
	}

	if cfg.Grid.Cols != 3 {
		t.Errorf("Expected default 3 cols, got %d", cfg.Grid.Cols)
	}
	// Boolean defaults must survive when not specified.
	if !cfg.UI.ShowHelp {
		t.Error("Expected ShowHelp to remain true when not specified in config")
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	tomlContent := `[grid]
rws = 4
`
	if err := os.WriteFile(configPath, []byte(tomlContent), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	_, err := LoadFromPath(configPath)
	if err == nil {
		t.Fatal("Expected error for unknown key")
	}
	if !strings.Contains(err.Error(), "rws") {
		t.Errorf("Expected error to name the unknown key, got %v", err)
	}
	if !strings.Contains(err.Error(), "grid.rows") {
		t.Errorf("Expected suggestion for grid.rows, got %v", err)
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(configPath, []byte("[grid\nrows = "), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	if _, err := LoadFromPath(configPath); err == nil {
		t.Error("Expected parse error")
	}
}

func TestDefaultConfigFileRoundTrips(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := CreateDefaultConfigFile(configPath); err != nil {
		t.Fatalf("CreateDefaultConfigFile() error: %v", err)
	}

	cfg, err := LoadFromPath(configPath)
	if err != nil {
		t.Fatalf("LoadFromPath() error: %v", err)
	}
	if *cfg != *DefaultConfig() {
		t.Errorf("Generated file does not load as defaults: %+v", cfg)
	}
}

func TestConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	if got := ConfigPath(); got != filepath.Join("/tmp/xdg", "rusuku", "config.toml") {
		t.Errorf("Unexpected XDG config path %q", got)
	}

	t.Setenv("XDG_CONFIG_HOME", "")
	path := ConfigPath()
	if filepath.Base(path) != "config.toml" {
		t.Errorf("Expected config.toml, got %q", filepath.Base(path))
	}
	if filepath.Base(filepath.Dir(path)) != "rusuku" {
		t.Errorf("Expected rusuku dir, got %q", filepath.Dir(path))
	}
}

func TestClosestKey(t *testing.T) {
	if got := closestKey("zzz", knownKeys()); got != "" {
		t.Errorf("Expected no suggestion, got %q", got)
	}
	if got := closestKey("keys.pase", knownKeys()); got != "keys.pause" {
		t.Errorf("Expected keys.pause, got %q", got)
	}
}

func TestParseKeys(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"q,ctrl+c", []string{"q", "ctrl+c"}},
		{" i , ", []string{"i"}},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParseKeys(tt.input)
			if strings.Join(got, "|") != strings.Join(tt.want, "|") {
				t.Errorf("ParseKeys(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
