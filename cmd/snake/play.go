package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var (
	flagWidth  int
	flagHeight int
	flagTick   time.Duration
	flagFPS    int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play snake",
	Long: `Start a game of snake.

Controls:
  Arrows/WASD/hjkl  - Steer
  R                 - Restart (after game over)
  ?                 - Toggle help
  Q/Ctrl+C          - Quit

Flags override values from the config file for this session only.

Examples:
  snake play
  snake play --width 40 --height 20
  snake play --tick 120ms
  snake play --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagWidth, "width", 0, "Grid width in cells (0 = from config)")
	playCmd.Flags().IntVar(&flagHeight, "height", 0, "Grid height in cells (0 = from config)")
	playCmd.Flags().DurationVar(&flagTick, "tick", 0, "Time between snake moves (0 = from config)")
	playCmd.Flags().IntVar(&flagFPS, "fps", 0, "Frame rate (0 = from config)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	rng := snake.NewRand(flagSeed)
	game, err := snake.New(cfg.Params(), rng)
	if err != nil {
		return fmt.Errorf("create game: %w", err)
	}
	view := snake.NewView(game, cfg.Theme())

	runCfg := core.DefaultConfig()
	runCfg.FrameRate = cfg.Timing.FrameRate
	runCfg.Seed = flagSeed

	// Get terminal size; the model picks up real resizes later
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		runCfg.ScreenW = w
		runCfg.ScreenH = h
	}

	// One extra row for the help footer
	minW, minH := view.MinSize()
	if runCfg.ScreenW < minW || runCfg.ScreenH < minH+1 {
		fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d, the board needs at least %dx%d\n",
			runCfg.ScreenW, runCfg.ScreenH, minW, minH+1)
	}

	logger.Info("starting",
		"grid", fmt.Sprintf("%dx%d", cfg.Grid.Width, cfg.Grid.Height),
		"tick", cfg.Timing.TickPeriod,
		"seed", flagSeed,
	)

	if err := tui.Run(game, view, runCfg, logger); err != nil {
		return fmt.Errorf("run game: %w", err)
	}

	state := game.State()
	logger.Info("finished", "score", state.Score, "game_over", state.GameOver)
	return nil
}

// loadConfig loads the config file and applies play flags that were set.
// Flags are ignored when the root command runs play on its own.
func loadConfig(cmd *cobra.Command) (config.SnakeConfig, error) {
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Grid.Width = flagWidth
	}
	if flags.Changed("height") {
		cfg.Grid.Height = flagHeight
	}
	if flags.Changed("tick") {
		cfg.Timing.TickPeriod = flagTick
	}
	if flags.Changed("fps") {
		cfg.Timing.FrameRate = flagFPS
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newLogger builds the session logger. The TUI owns stdout, so logs either go
// to an appended file or nowhere.
func newLogger(path, level string) (*log.Logger, func(), error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	var w io.Writer = io.Discard
	closeFn := func() {}
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		Prefix:          "snake",
		ReportTimestamp: true,
		Level:           lvl,
	})
	return logger, closeFn, nil
}
