// Package config provides YAML-based configuration loading for the snake game.
package config

import "time"

// SnakeConfig contains all configuration for a snake session.
type SnakeConfig struct {
	Grid   GridConfig   `yaml:"grid"`
	Timing TimingConfig `yaml:"timing"`
	Food   FoodConfig   `yaml:"food"`
	Render RenderConfig `yaml:"render"`
}

// GridConfig defines the board size in cells. It is fixed for a session.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TimingConfig defines how fast the snake moves and how often the host redraws.
type TimingConfig struct {
	TickPeriod time.Duration `yaml:"tick_period"`
	FrameRate  int           `yaml:"frame_rate"`
}

// FoodConfig tunes food placement.
type FoodConfig struct {
	MaxAttempts int `yaml:"max_attempts"`
}

// RenderConfig defines terminal glyphs.
type RenderConfig struct {
	CellWidth int    `yaml:"cell_width"`
	Head      string `yaml:"head"`
	Body      string `yaml:"body"`
	Food      string `yaml:"food"`
}
