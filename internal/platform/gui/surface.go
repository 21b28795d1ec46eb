// Package gui runs the game in a desktop window with Ebitengine.
// The arena is drawn once into a persistent offscreen image and then
// patched incrementally by the session, the same way the terminal
// canvas is.
package gui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/arkanoid/internal/core"
	"github.com/vovakirdan/arkanoid/internal/games/arkanoid"
)

// rgba maps palette colors to window colors.
var rgba = map[core.Color]color.RGBA{
	core.ColorDefault: {R: 0, G: 0, B: 0, A: 255},
	core.ColorBlack:   {R: 0, G: 0, B: 0, A: 255},
	core.ColorRed:     {R: 255, G: 0, B: 0, A: 255},
	core.ColorGreen:   {R: 0, G: 200, B: 0, A: 255},
	core.ColorYellow:  {R: 255, G: 255, B: 0, A: 255},
	core.ColorBlue:    {R: 30, G: 90, B: 255, A: 255},
	core.ColorMagenta: {R: 255, G: 0, B: 255, A: 255},
	core.ColorCyan:    {R: 0, G: 255, B: 255, A: 255},
	core.ColorWhite:   {R: 255, G: 255, B: 255, A: 255},
	core.ColorOrange:  {R: 255, G: 165, B: 0, A: 255},
	core.ColorGray:    {R: 128, G: 128, B: 128, A: 255},
}

// RGBA returns the window color for c.
func RGBA(c core.Color) color.RGBA {
	if v, ok := rgba[c]; ok {
		return v
	}
	return rgba[core.ColorDefault]
}

// Surface implements arkanoid.Surface on an offscreen image.
type Surface struct {
	target     *ebiten.Image
	background color.RGBA
	assets     Assets
}

// NewSurface creates an arena-sized offscreen image.
func NewSurface(arena int, background core.Color, assets Assets) *Surface {
	return &Surface{
		target:     ebiten.NewImage(arena, arena),
		background: RGBA(background),
		assets:     assets,
	}
}

// Image returns the offscreen image.
func (s *Surface) Image() *ebiten.Image {
	return s.target
}

// FillRect fills r with c.
func (s *Surface) FillRect(r core.Rect, c core.Color) {
	vector.DrawFilledRect(s.target, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), RGBA(c), false)
}

// FillCircle fills the circle inscribed in r with c.
func (s *Surface) FillCircle(r core.Rect, c core.Color) {
	radius := float32(min(r.W, r.H)) / 2
	cx := float32(r.X) + float32(r.W)/2
	cy := float32(r.Y) + float32(r.H)/2
	vector.DrawFilledCircle(s.target, cx, cy, radius, RGBA(c), true)
}

// DrawImage draws the asset stretched over r.
func (s *Surface) DrawImage(a arkanoid.Asset, r core.Rect) {
	img, ok := s.assets[a]
	if !ok || r.W <= 0 || r.H <= 0 {
		return
	}
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(r.W)/float64(b.Dx()), float64(r.H)/float64(b.Dy()))
	op.GeoM.Translate(float64(r.X), float64(r.Y))
	s.target.DrawImage(img, op)
}

// ClearRect paints r with the background.
func (s *Surface) ClearRect(r core.Rect) {
	vector.DrawFilledRect(s.target, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), s.background, false)
}
