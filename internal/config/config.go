// Package config provides YAML-based game configuration loading and
// validation.
package config

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/vovakirdan/arkanoid/internal/core"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// ArkanoidConfig contains all configuration for the Arkanoid game.
type ArkanoidConfig struct {
	Board  ArkanoidBoard  `yaml:"board"`
	Ball   ArkanoidBall   `yaml:"ball"`
	Loop   ArkanoidLoop   `yaml:"loop"`
	Colors ArkanoidColors `yaml:"colors"`
	Images ArkanoidImages `yaml:"images"`
	Glyphs ArkanoidGlyphs `yaml:"glyphs"`
}

// ArkanoidBoard defines the arena geometry.
type ArkanoidBoard struct {
	CellSize int `yaml:"cell_size"` // Arena units per grid cell
	Size     int `yaml:"size"`      // Cells per side
}

// ArkanoidBall defines ball motion.
type ArkanoidBall struct {
	Speed int `yaml:"speed"` // Units per tick on each axis
}

// ArkanoidLoop defines the simulation timer.
type ArkanoidLoop struct {
	PaceMS int `yaml:"pace_ms"` // Milliseconds between ticks
}

// ArkanoidColors names the colors of each element.
type ArkanoidColors struct {
	Background string `yaml:"background"`
	Ball       string `yaml:"ball"`
	Paddle     string `yaml:"paddle"`
	Cell       string `yaml:"cell"`
}

// ArkanoidImages holds image paths for the window adapter.
type ArkanoidImages struct {
	Ball   string `yaml:"ball"`
	Paddle string `yaml:"paddle"`
	Cell   string `yaml:"cell"`
}

// ArkanoidGlyphs holds the characters drawn by the terminal adapter.
type ArkanoidGlyphs struct {
	Ball   string `yaml:"ball"`
	Paddle string `yaml:"paddle"`
	Cell   string `yaml:"cell"`
}

// ArenaSize returns the side length of the arena in units.
func (c ArkanoidConfig) ArenaSize() int {
	return c.Board.CellSize * c.Board.Size
}

// Pace returns the tick interval.
func (c ArkanoidConfig) Pace() time.Duration {
	return time.Duration(c.Loop.PaceMS) * time.Millisecond
}

// Palette holds parsed element colors.
type Palette struct {
	Background core.Color
	Ball       core.Color
	Paddle     core.Color
	Cell       core.Color
}

// Palette parses the configured color names.
func (c ArkanoidConfig) Palette() (Palette, error) {
	var p Palette
	fields := []struct {
		name string
		src  string
		dst  *core.Color
	}{
		{"colors.background", c.Colors.Background, &p.Background},
		{"colors.ball", c.Colors.Ball, &p.Ball},
		{"colors.paddle", c.Colors.Paddle, &p.Paddle},
		{"colors.cell", c.Colors.Cell, &p.Cell},
	}
	for _, f := range fields {
		color, err := core.ParseColor(f.src)
		if err != nil {
			return Palette{}, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, f.name, err)
		}
		*f.dst = color
	}
	return p, nil
}

// Validate rejects configurations that cannot produce a playable arena.
func (c ArkanoidConfig) Validate() error {
	if c.Board.Size <= 0 {
		return fmt.Errorf("%w: board.size must be positive, got %d", ErrInvalidConfig, c.Board.Size)
	}
	if c.Board.CellSize <= 0 {
		return fmt.Errorf("%w: board.cell_size must be positive, got %d", ErrInvalidConfig, c.Board.CellSize)
	}
	// Paddle is three cells wide and the ball needs a row above it.
	if c.Board.Size < 3 {
		return fmt.Errorf("%w: board.size must be at least 3, got %d", ErrInvalidConfig, c.Board.Size)
	}
	if c.Ball.Speed <= 0 {
		return fmt.Errorf("%w: ball.speed must be positive, got %d", ErrInvalidConfig, c.Ball.Speed)
	}
	if c.Ball.Speed >= c.Board.CellSize {
		return fmt.Errorf("%w: ball.speed %d must be below board.cell_size %d",
			ErrInvalidConfig, c.Ball.Speed, c.Board.CellSize)
	}
	if c.Loop.PaceMS <= 0 {
		return fmt.Errorf("%w: loop.pace_ms must be positive, got %d", ErrInvalidConfig, c.Loop.PaceMS)
	}
	if _, err := c.Palette(); err != nil {
		return err
	}
	glyphs := []struct{ name, value string }{
		{"glyphs.ball", c.Glyphs.Ball},
		{"glyphs.paddle", c.Glyphs.Paddle},
		{"glyphs.cell", c.Glyphs.Cell},
	}
	for _, g := range glyphs {
		if utf8.RuneCountInString(g.value) != 1 {
			return fmt.Errorf("%w: %s must be a single character, got %q", ErrInvalidConfig, g.name, g.value)
		}
	}
	return nil
}

// Glyph returns the single rune of a glyph setting.
func Glyph(s string) rune {
	if s == "" {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r
}
