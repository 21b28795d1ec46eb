package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/arkanoid/internal/core"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultArkanoidConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate, got %v", err)
	}
	if cfg.ArenaSize() != 650 {
		t.Errorf("ArenaSize() = %d, expected 650", cfg.ArenaSize())
	}
	if cfg.Pace() != 5*time.Millisecond {
		t.Errorf("Pace() = %v, expected 5ms", cfg.Pace())
	}
}

func TestEmbeddedYAMLMatchesDefaults(t *testing.T) {
	var cfg ArkanoidConfig
	if err := yaml.Unmarshal(GetDefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded YAML should parse: %v", err)
	}
	if cfg != DefaultArkanoidConfig() {
		t.Errorf("embedded YAML = %+v, expected %+v", cfg, DefaultArkanoidConfig())
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ArkanoidConfig)
	}{
		{"zero board size", func(c *ArkanoidConfig) { c.Board.Size = 0 }},
		{"negative board size", func(c *ArkanoidConfig) { c.Board.Size = -4 }},
		{"board too small for paddle", func(c *ArkanoidConfig) { c.Board.Size = 2 }},
		{"zero cell size", func(c *ArkanoidConfig) { c.Board.CellSize = 0 }},
		{"zero ball speed", func(c *ArkanoidConfig) { c.Ball.Speed = 0 }},
		{"negative ball speed", func(c *ArkanoidConfig) { c.Ball.Speed = -2 }},
		{"ball speed tunnels cells", func(c *ArkanoidConfig) { c.Ball.Speed = c.Board.CellSize }},
		{"zero pace", func(c *ArkanoidConfig) { c.Loop.PaceMS = 0 }},
		{"unknown color", func(c *ArkanoidConfig) { c.Colors.Ball = "chartreuse" }},
		{"empty glyph", func(c *ArkanoidConfig) { c.Glyphs.Cell = "" }},
		{"multi-rune glyph", func(c *ArkanoidConfig) { c.Glyphs.Paddle = "==" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultArkanoidConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("error should wrap ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestPalette(t *testing.T) {
	p, err := DefaultArkanoidConfig().Palette()
	if err != nil {
		t.Fatalf("Palette() failed: %v", err)
	}
	if p.Background != core.ColorBlack || p.Ball != core.ColorRed || p.Paddle != core.ColorRed {
		t.Errorf("unexpected palette %+v", p)
	}
}

func TestLoadArkanoidCustomPathOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("board:\n  size: 9\nball:\n  speed: 3\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, src, err := LoadArkanoid(path)
	if err != nil {
		t.Fatalf("LoadArkanoid() failed: %v", err)
	}
	if src != SourceCustom {
		t.Errorf("source = %q, expected %q", src, SourceCustom)
	}
	if cfg.Board.Size != 9 || cfg.Ball.Speed != 3 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	// Untouched keys keep their defaults.
	if cfg.Board.CellSize != 50 || cfg.Colors.Ball != "red" {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadArkanoidMissingCustomPath(t *testing.T) {
	_, _, err := LoadArkanoid(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("LoadArkanoid() should fail for a missing custom path")
	}
}

func TestLoadArkanoidMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("board: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, _, err := LoadArkanoid(path); err == nil {
		t.Fatal("LoadArkanoid() should fail for malformed YAML")
	}
}

func TestGlyph(t *testing.T) {
	if Glyph("●") != '●' {
		t.Errorf("Glyph() = %q, expected '●'", Glyph("●"))
	}
	if Glyph("") != 0 {
		t.Errorf("Glyph(\"\") should be zero")
	}
}
