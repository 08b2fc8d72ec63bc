package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var flagDefault bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration snake would play with, as YAML.

Config files are searched in order:
  1. --config <path>
  2. ~/.tui-snake/configs/snake.yaml
  3. ./configs/snake.yaml
  4. Built-in defaults

Use --default to print the built-in defaults, a good starting point
for a custom file.

Examples:
  snake config
  snake config --default > ~/.tui-snake/configs/snake.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefault, "default", false, "Print the built-in default config")
}

func runConfig(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if flagDefault {
		_, err := out.Write(config.DefaultYAML())
		return err
	}

	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	data, err := cfg.Marshal()
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	_, err = out.Write(data)
	return err
}
