package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/henri123lemoine/rusuku/internal/config"
)

var forceInit bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or create the configuration file",
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), targetConfigPath())
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a commented default configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := targetConfigPath()
		if _, err := os.Stat(path); err == nil && !forceInit {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
		if err := config.CreateDefaultConfigFile(path); err != nil {
			return fmt.Errorf("writing config: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s Created %s\n", color.GreenString("✓"), path)
		return nil
	},
}

var configCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Load the configuration file and report problems",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		warnings := cfg.Validate()
		for _, w := range warnings {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", color.YellowString("⚠"), w)
		}
		if len(warnings) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s is valid\n", color.GreenString("✓"), targetConfigPath())
		}
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&forceInit, "force", false, "overwrite an existing file")

	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configCheckCmd)
}

// targetConfigPath is the --config value or the default location.
func targetConfigPath() string {
	if configPath != "" {
		return configPath
	}
	return config.ConfigPath()
}
