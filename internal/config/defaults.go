package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			Width:  20,
			Height: 20,
		},
		Timing: TimingConfig{
			TickPeriod: 200 * time.Millisecond,
			FrameRate:  60,
		},
		Food: FoodConfig{
			MaxAttempts: 1000,
		},
		Render: RenderConfig{
			CellWidth: 2,
			Head:      "█",
			Body:      "▓",
			Food:      "●",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
