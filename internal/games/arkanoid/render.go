package arkanoid

import (
	"github.com/vovakirdan/arkanoid/internal/config"
	"github.com/vovakirdan/arkanoid/internal/core"
)

// Asset identifies a picture drawn over a game element.
type Asset int

// Assets
const (
	AssetBall Asset = iota
	AssetPaddle
	AssetCell
)

// String returns the asset name.
func (a Asset) String() string {
	switch a {
	case AssetBall:
		return "ball"
	case AssetPaddle:
		return "paddle"
	case AssetCell:
		return "cell"
	default:
		return "unknown"
	}
}

// Surface is a drawing target addressed in arena units.
// Implementations load their assets once when they are created.
type Surface interface {
	FillRect(r core.Rect, c core.Color)
	// FillCircle fills the circle inscribed in r.
	FillCircle(r core.Rect, c core.Color)
	DrawImage(a Asset, r core.Rect)
	// ClearRect paints r with the background.
	ClearRect(r core.Rect)
}

// Notifier is told how each round ended.
type Notifier interface {
	Notify(state State)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(state State)

// Notify calls f(state).
func (f NotifierFunc) Notify(state State) {
	f(state)
}

type nopSurface struct{}

func (nopSurface) FillRect(core.Rect, core.Color) {}
func (nopSurface) FillCircle(core.Rect, core.Color) {}
func (nopSurface) DrawImage(Asset, core.Rect) {}
func (nopSurface) ClearRect(core.Rect) {}

func orNop(s Surface) Surface {
	if s == nil {
		return nopSurface{}
	}
	return s
}

// Block is the glyph used for solid color fills.
const Block = '█'

// ScreenSurface draws the arena onto a character canvas. Each asset is a
// colored glyph; the ball glyph is stamped as a disc, the others fill
// their whole rectangle.
type ScreenSurface struct {
	canvas     *core.Canvas
	background core.Cell
	assets     map[Asset]core.Cell
}

// NewScreenSurface creates a surface that renders into canvas using the
// glyphs and palette from cfg.
func NewScreenSurface(canvas *core.Canvas, cfg config.ArkanoidConfig, palette config.Palette) *ScreenSurface {
	return &ScreenSurface{
		canvas:     canvas,
		background: core.Cell{Rune: ' ', Color: palette.Background},
		assets: map[Asset]core.Cell{
			AssetBall:   {Rune: config.Glyph(cfg.Glyphs.Ball), Color: palette.Ball},
			AssetPaddle: {Rune: config.Glyph(cfg.Glyphs.Paddle), Color: palette.Paddle},
			AssetCell:   {Rune: config.Glyph(cfg.Glyphs.Cell), Color: palette.Cell},
		},
	}
}

// Canvas returns the backing canvas.
func (s *ScreenSurface) Canvas() *core.Canvas {
	return s.canvas
}

// FillRect fills r with solid blocks of color c.
func (s *ScreenSurface) FillRect(r core.Rect, c core.Color) {
	s.canvas.FillRect(r, core.Cell{Rune: Block, Color: c})
}

// FillCircle fills the disc inscribed in r with solid blocks of color c.
func (s *ScreenSurface) FillCircle(r core.Rect, c core.Color) {
	s.canvas.FillEllipse(r, core.Cell{Rune: Block, Color: c})
}

// DrawImage stamps the glyph of asset a over r.
func (s *ScreenSurface) DrawImage(a Asset, r core.Rect) {
	cell, ok := s.assets[a]
	if !ok {
		return
	}
	if a == AssetBall {
		s.canvas.FillEllipse(r, cell)
		return
	}
	s.canvas.FillRect(r, cell)
}

// ClearRect paints r with the background.
func (s *ScreenSurface) ClearRect(r core.Rect) {
	s.canvas.FillRect(r, s.background)
}
