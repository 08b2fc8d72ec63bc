// snake is a real-time snake game for the terminal.
//
// Usage:
//
//	snake                    - Play with the effective configuration
//	snake play               - Same, with per-session overrides
//	snake config             - Print the effective configuration as YAML
//
// Global flags:
//
//	--config <path>     - Custom config YAML
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--log-file <path>   - Append structured logs to a file
//	--log-level <lvl>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic arcade game in your terminal",
	Long: `Snake moves on a fixed grid, grows by eating food and dies when it
hits a wall or itself.

Available commands:
  play     - Start a game (default)
  config   - Show the effective configuration

Examples:
  snake
  snake play --width 30 --height 15
  snake --seed 42 --log-file snake.log
  snake config --default`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file (default: logs are discarded)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
}
