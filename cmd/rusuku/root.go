package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/henri123lemoine/rusuku/internal/app"
	"github.com/henri123lemoine/rusuku/internal/config"
	"github.com/henri123lemoine/rusuku/internal/debug"
	"github.com/henri123lemoine/rusuku/internal/grid"
	"github.com/henri123lemoine/rusuku/internal/ui"
)

var (
	configPath string
	debugPath  string
	gridRows   int
	gridCols   int
)

var rootCmd = &cobra.Command{
	Use:   "rusuku",
	Short: "Terminal dashboard with a pausable timer and a ruled grid",
	Long: `Rusuku shows an elapsed-time header above a ruled grid.

Keys (configurable):
  i  start the timer
  p  pause the timer
  c  resume the timer
  q  quit`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default is "+config.ConfigPath()+")")
	rootCmd.Flags().StringVar(&debugPath, "debug", "", "write a debug log to this file")
	rootCmd.Flags().IntVar(&gridRows, "rows", 0, "number of grid rows (overrides config)")
	rootCmd.Flags().IntVar(&gridCols, "cols", 0, "number of grid columns (overrides config)")

	rootCmd.AddCommand(configCmd)
}

// loadConfig reads the config from --config or the default path.
func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.LoadFromPath(configPath)
	}
	return config.Load()
}

func run(cmd *cobra.Command) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if cmd.Flags().Changed("rows") {
		cfg.Grid.Rows = gridRows
	}
	if cmd.Flags().Changed("cols") {
		cfg.Grid.Cols = gridCols
	}

	if debugPath != "" {
		if err := debug.Enable(debugPath); err != nil {
			return fmt.Errorf("enabling debug log: %w", err)
		}
		defer debug.Close()
	}

	for _, w := range cfg.Validate() {
		debug.Log("config warning: %s", w)
		color.New(color.FgYellow).Fprintf(os.Stderr, "Warning: %s\n", w)
	}

	plan, err := grid.NewPlan(cfg.Grid.Cols, cfg.Grid.Rows)
	if err != nil {
		return err
	}
	ui.ApplyTheme(cfg.UI.Theme)

	model := app.New(cfg, plan, nil)
	p := tea.NewProgram(model, tea.WithAltScreen())

	done := debug.Timed("session")
	finalModel, err := p.Run()
	done()
	if err != nil {
		if strings.Contains(err.Error(), "TTY") || strings.Contains(err.Error(), "/dev/tty") {
			return fmt.Errorf("rusuku requires a real terminal")
		}
		return fmt.Errorf("running TUI: %w", err)
	}

	if m, ok := finalModel.(app.Model); ok && m.ShouldQuit() {
		debug.Log("quit with %s elapsed", m.Elapsed())
	}
	return nil
}
