package app

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/henri123lemoine/rusuku/internal/config"
)

// KeyMap defines all keybindings.
type KeyMap struct {
	// Timer
	Start  key.Binding
	Pause  key.Binding
	Resume key.Binding

	// General
	Quit key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Start: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "start"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Resume: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "resume"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapFromConfig creates a KeyMap from config settings.
func KeyMapFromConfig(cfg *config.KeysConfig) KeyMap {
	km := DefaultKeyMap()

	if cfg.Start != "" {
		km.Start = key.NewBinding(
			key.WithKeys(config.ParseKeys(cfg.Start)...),
			key.WithHelp(cfg.Start, "start"),
		)
	}
	if cfg.Pause != "" {
		km.Pause = key.NewBinding(
			key.WithKeys(config.ParseKeys(cfg.Pause)...),
			key.WithHelp(cfg.Pause, "pause"),
		)
	}
	if cfg.Resume != "" {
		km.Resume = key.NewBinding(
			key.WithKeys(config.ParseKeys(cfg.Resume)...),
			key.WithHelp(cfg.Resume, "resume"),
		)
	}
	if keys := config.ParseKeys(cfg.Quit); len(keys) > 0 {
		km.Quit = key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(keys[0], "quit"),
		)
	}

	return km
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Pause, k.Resume, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Start, k.Pause, k.Resume},
		{k.Quit},
	}
}
