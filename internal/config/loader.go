package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid config")

const fileName = "snake.yaml"

// LoadSnake loads the snake configuration.
// Search order: customPath -> ~/.tui-snake/configs/snake.yaml -> ./configs/snake.yaml -> embedded default
//
// Fields missing from a file keep their default values. A custom path that
// cannot be read or parsed is an error; the other locations are skipped
// silently.
func LoadSnake(customPath string) (SnakeConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return SnakeConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return SnakeConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(fileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", fileName)); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultSnakeYAML)
	if err != nil {
		return DefaultSnakeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes YAML on top of the hardcoded defaults.
func parse(data []byte) (SnakeConfig, error) {
	cfg := DefaultSnakeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SnakeConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tui-snake", "configs", filename)
}

// Validate reports the first unusable field.
func (c SnakeConfig) Validate() error {
	switch {
	case c.Grid.Width < 1 || c.Grid.Height < 1:
		return fmt.Errorf("%w: grid %dx%d must be at least 1x1", ErrInvalid, c.Grid.Width, c.Grid.Height)
	case c.Grid.Width*c.Grid.Height < 2:
		return fmt.Errorf("%w: grid %dx%d needs at least two cells", ErrInvalid, c.Grid.Width, c.Grid.Height)
	case c.Timing.TickPeriod <= 0:
		return fmt.Errorf("%w: timing.tick_period %s must be positive", ErrInvalid, c.Timing.TickPeriod)
	case c.Timing.FrameRate < 1:
		return fmt.Errorf("%w: timing.frame_rate %d must be positive", ErrInvalid, c.Timing.FrameRate)
	case c.Food.MaxAttempts < 1:
		return fmt.Errorf("%w: food.max_attempts %d must be positive", ErrInvalid, c.Food.MaxAttempts)
	case c.Render.CellWidth < 1:
		return fmt.Errorf("%w: render.cell_width %d must be positive", ErrInvalid, c.Render.CellWidth)
	}

	glyphs := []struct{ name, value string }{
		{"render.head", c.Render.Head},
		{"render.body", c.Render.Body},
		{"render.food", c.Render.Food},
	}
	for _, g := range glyphs {
		if utf8.RuneCountInString(g.value) != 1 {
			return fmt.Errorf("%w: %s %q must be a single character", ErrInvalid, g.name, g.value)
		}
	}
	return nil
}

// Params converts the config into session parameters.
func (c SnakeConfig) Params() snake.Params {
	return snake.Params{
		Width:           c.Grid.Width,
		Height:          c.Grid.Height,
		TickPeriod:      c.Timing.TickPeriod,
		MaxFoodAttempts: c.Food.MaxAttempts,
	}
}

// Theme converts the render section into a snake theme.
// Glyphs that are not a single character keep the default.
func (c SnakeConfig) Theme() snake.Theme {
	t := snake.DefaultTheme()
	t.CellWidth = c.Render.CellWidth
	t.Head = glyph(c.Render.Head, t.Head)
	t.Body = glyph(c.Render.Body, t.Body)
	t.Food = glyph(c.Render.Food, t.Food)
	return t
}

func glyph(s string, fallback rune) rune {
	if utf8.RuneCountInString(s) != 1 {
		return fallback
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r
}

// Marshal encodes the config as YAML.
func (c SnakeConfig) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}
