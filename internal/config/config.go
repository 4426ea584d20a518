// Package config provides YAML-based configuration loading and difficulty
// presets for the block game.
package config

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// BlocksConfig contains all configuration for the block game.
type BlocksConfig struct {
	Gameplay BlocksGameplay `yaml:"gameplay"`
	Timing   BlocksTiming   `yaml:"timing"`
	Render   BlocksRender   `yaml:"render"`
}

// BlocksGameplay defines how a game starts.
type BlocksGameplay struct {
	StartLevel int `yaml:"start_level"` // Level a new game begins at (>= 1)
}

// BlocksTiming defines gravity pacing. The interval is always 1000/level ms;
// MinDropIntervalMs only sets a floor under it.
type BlocksTiming struct {
	MinDropIntervalMs int `yaml:"min_drop_interval_ms"` // 0 = no floor
}

// BlocksRender defines how the well is drawn.
type BlocksRender struct {
	Block      string `yaml:"block"`       // Two-cell glyph for one stage cell
	ShowBorder bool   `yaml:"show_border"` // Draw the well outline
}

// Validate reports the first invalid field.
func (c BlocksConfig) Validate() error {
	if c.Gameplay.StartLevel < 1 {
		return fmt.Errorf("gameplay.start_level must be >= 1, got %d", c.Gameplay.StartLevel)
	}
	if c.Timing.MinDropIntervalMs < 0 {
		return fmt.Errorf("timing.min_drop_interval_ms must be >= 0, got %d", c.Timing.MinDropIntervalMs)
	}
	if utf8.RuneCountInString(c.Render.Block) != 2 {
		return errors.New("render.block must be exactly two characters")
	}
	return nil
}
