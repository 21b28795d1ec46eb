package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/arkanoid/internal/core"
)

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(10, 3)
	s.DrawText(0, 0, "hello")
	s.SetCell(2, 1, core.Cell{Rune: '█', Color: core.ColorRed})
	s.SetCell(3, 1, core.Cell{Rune: '█', Color: core.ColorRed})
	s.SetCell(4, 2, core.Cell{Rune: '●', Color: core.ColorOrange})

	out := RenderScreen(s)

	if lines := strings.Split(out, "\n"); len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	for _, want := range []string{"hello", "██", "●"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered screen should contain %q:\n%s", want, out)
		}
	}
}

func TestColorStylesCoverPalette(t *testing.T) {
	colors := []core.Color{
		core.ColorDefault, core.ColorBlack, core.ColorRed, core.ColorGreen,
		core.ColorYellow, core.ColorBlue, core.ColorMagenta, core.ColorCyan,
		core.ColorWhite, core.ColorOrange, core.ColorGray,
	}
	for _, c := range colors {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("no style for color %v", c)
		}
	}
}
