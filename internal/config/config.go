// Package config handles rusuku configuration.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/sahilm/fuzzy"
)

// Config represents rusuku configuration.
type Config struct {
	Grid  GridConfig  `toml:"grid"`
	Timer TimerConfig `toml:"timer"`
	UI    UIConfig    `toml:"ui"`
	Keys  KeysConfig  `toml:"keys"`
}

// GridConfig contains the shape of the body grid.
type GridConfig struct {
	// Number of cell rows and columns
	Rows int `toml:"rows"`
	Cols int `toml:"cols"`

	// Maximum distance between grid lines, in terminal cells
	CellWidth  int `toml:"cell_width"`
	CellHeight int `toml:"cell_height"`
}

// TimerConfig contains timer display settings.
type TimerConfig struct {
	// How often the header is redrawn, as a Go duration ("100ms", "1s")
	TickInterval string `toml:"tick_interval"`
}

// UIConfig contains UI settings.
type UIConfig struct {
	// Title shown in the header's center box
	Title string `toml:"title"`

	// Show the key binding footer
	ShowHelp bool `toml:"show_help"`

	// Color theme: auto, dark, light
	Theme string `toml:"theme"`
}

// KeysConfig contains keybinding settings.
type KeysConfig struct {
	Start  string `toml:"start"`
	Pause  string `toml:"pause"`
	Resume string `toml:"resume"`
	Quit   string `toml:"quit"`
}

// MinCellSize is the smallest grid pitch that still leaves room for content.
const MinCellSize = 2

// DefaultTickInterval is used when tick_interval is empty or invalid.
const DefaultTickInterval = 100 * time.Millisecond

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Grid: GridConfig{
			Rows:       3,
			Cols:       3,
			CellWidth:  18,
			CellHeight: 9,
		},
		Timer: TimerConfig{
			TickInterval: "100ms",
		},
		UI: UIConfig{
			Title:    " Welcome to Rusuku ",
			ShowHelp: true,
			Theme:    "auto",
		},
		Keys: KeysConfig{
			Start:  "i",
			Pause:  "p",
			Resume: "c",
			Quit:   "q,ctrl+c",
		},
	}
}

// Tick returns the parsed redraw interval, falling back to the default.
func (c *Config) Tick() time.Duration {
	d, err := time.ParseDuration(c.Timer.TickInterval)
	if err != nil || d <= 0 {
		return DefaultTickInterval
	}
	return d
}

// ConfigPath returns the path to the config file.
// Uses ~/.config/rusuku/config.toml (XDG style) on all Unix systems.
func ConfigPath() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "rusuku", "config.toml")
	}
	home := os.Getenv("HOME")
	if home != "" {
		return filepath.Join(home, ".config", "rusuku", "config.toml")
	}
	// Fallback to os.UserConfigDir() for Windows
	configDir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", "rusuku", "config.toml")
	}
	return filepath.Join(configDir, "rusuku", "config.toml")
}

// Load loads configuration from the config file.
func Load() (*Config, error) {
	return LoadFromPath(ConfigPath())
}

// LoadFromPath loads configuration from a specific path.
// A missing file yields the defaults.
func LoadFromPath(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	// go-toml/v2 only overwrites fields present in the file, so defaults
	// survive for everything left unspecified.
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return nil, fmt.Errorf("%s: %s", path, describeUnknownKeys(strict))
		}
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}

// describeUnknownKeys turns a strict decoding error into a readable message,
// suggesting the closest known key where there is one.
func describeUnknownKeys(e *toml.StrictMissingError) string {
	known := knownKeys()
	var parts []string
	for _, de := range e.Errors {
		name := strings.Join(de.Key(), ".")
		msg := fmt.Sprintf("unknown key %q", name)
		if suggestion := closestKey(name, known); suggestion != "" {
			msg += fmt.Sprintf(" (did you mean %q?)", suggestion)
		}
		parts = append(parts, msg)
	}
	return strings.Join(parts, "; ")
}

// closestKey returns the best fuzzy match for name among known, or "".
func closestKey(name string, known []string) string {
	matches := fuzzy.Find(name, known)
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Str
}

// knownKeys lists every dotted key the config file accepts.
func knownKeys() []string {
	return []string{
		"grid", "grid.rows", "grid.cols", "grid.cell_width", "grid.cell_height",
		"timer", "timer.tick_interval",
		"ui", "ui.title", "ui.show_help", "ui.theme",
		"keys", "keys.start", "keys.pause", "keys.resume", "keys.quit",
	}
}

// CreateDefaultConfigFile writes a commented default config file to path,
// creating parent directories as needed.
func CreateDefaultConfigFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(generateDefaultConfigContent()), 0644)
}

// generateDefaultConfigContent generates a commented config file.
func generateDefaultConfigContent() string {
	var b strings.Builder
	cfg := DefaultConfig()

	b.WriteString("# Rusuku Configuration\n\n")

	b.WriteString("[grid]\n")
	b.WriteString("# Number of cell rows and columns\n")
	fmt.Fprintf(&b, "rows = %d\n", cfg.Grid.Rows)
	fmt.Fprintf(&b, "cols = %d\n", cfg.Grid.Cols)
	b.WriteString("# Maximum cell size in terminal columns and lines\n")
	fmt.Fprintf(&b, "cell_width = %d\n", cfg.Grid.CellWidth)
	fmt.Fprintf(&b, "cell_height = %d\n\n", cfg.Grid.CellHeight)

	b.WriteString("[timer]\n")
	b.WriteString("# How often the elapsed time is redrawn\n")
	fmt.Fprintf(&b, "tick_interval = %q\n\n", cfg.Timer.TickInterval)

	b.WriteString("[ui]\n")
	b.WriteString("# Title shown above the timer\n")
	fmt.Fprintf(&b, "title = %q\n", cfg.UI.Title)
	b.WriteString("# Show the key binding footer\n")
	fmt.Fprintf(&b, "show_help = %v\n", cfg.UI.ShowHelp)
	b.WriteString("# Color theme: \"auto\", \"dark\", or \"light\"\n")
	fmt.Fprintf(&b, "theme = %q\n\n", cfg.UI.Theme)

	b.WriteString("[keys]\n")
	b.WriteString("# Keybindings (comma-separated for multiple keys)\n")
	fmt.Fprintf(&b, "start = %q\n", cfg.Keys.Start)
	fmt.Fprintf(&b, "pause = %q\n", cfg.Keys.Pause)
	fmt.Fprintf(&b, "resume = %q\n", cfg.Keys.Resume)
	fmt.Fprintf(&b, "quit = %q\n", cfg.Keys.Quit)

	return b.String()
}

// Validate validates the configuration and returns warnings.
func (c *Config) Validate() []string {
	var warnings []string

	if c.Grid.Rows < 1 {
		warnings = append(warnings, fmt.Sprintf("grid.rows must be at least 1, got %d", c.Grid.Rows))
	}
	if c.Grid.Cols < 1 {
		warnings = append(warnings, fmt.Sprintf("grid.cols must be at least 1, got %d", c.Grid.Cols))
	}
	if c.Grid.CellWidth < MinCellSize {
		warnings = append(warnings, fmt.Sprintf("grid.cell_width must be at least %d, got %d", MinCellSize, c.Grid.CellWidth))
	}
	if c.Grid.CellHeight < MinCellSize {
		warnings = append(warnings, fmt.Sprintf("grid.cell_height must be at least %d, got %d", MinCellSize, c.Grid.CellHeight))
	}

	if c.Timer.TickInterval != "" {
		d, err := time.ParseDuration(c.Timer.TickInterval)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("Invalid value for timer.tick_interval: %s", c.Timer.TickInterval))
		} else if d <= 0 {
			warnings = append(warnings, fmt.Sprintf("timer.tick_interval must be positive, got %s", c.Timer.TickInterval))
		} else if d > time.Second {
			warnings = append(warnings, fmt.Sprintf("timer.tick_interval %s is longer than a second; the clock will skip", d))
		}
	}

	if c.UI.Theme != "" &&
		c.UI.Theme != "auto" &&
		c.UI.Theme != "dark" &&
		c.UI.Theme != "light" {
		warnings = append(warnings, fmt.Sprintf("Invalid value for ui.theme: %s (expected auto, dark, or light)", c.UI.Theme))
	}

	// A key bound to two actions only ever triggers the first.
	owner := make(map[string]string)
	bindings := []struct {
		action string
		keys   string
	}{
		{"quit", c.Keys.Quit},
		{"start", c.Keys.Start},
		{"pause", c.Keys.Pause},
		{"resume", c.Keys.Resume},
	}
	for _, b := range bindings {
		for _, k := range ParseKeys(b.keys) {
			if prev, ok := owner[k]; ok && prev != b.action {
				warnings = append(warnings, fmt.Sprintf("Key %q is bound to both %s and %s", k, prev, b.action))
				continue
			}
			owner[k] = b.action
		}
	}

	return warnings
}

// ParseKeys parses a comma-separated list of keys.
func ParseKeys(s string) []string {
	parts := strings.Split(s, ",")
	var keys []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			keys = append(keys, p)
		}
	}
	return keys
}
