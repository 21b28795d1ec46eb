package gui

import (
	"image/color"
	_ "image/png" // Decoder for configured images

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/arkanoid/internal/config"
	"github.com/vovakirdan/arkanoid/internal/games/arkanoid"
)

// Assets holds the decoded image of each asset.
type Assets map[arkanoid.Asset]*ebiten.Image

// LoadAssets decodes the configured images once. An asset whose file is
// unset or unreadable gets a generated image instead.
func LoadAssets(cfg config.ArkanoidConfig, palette config.Palette, logger *log.Logger) Assets {
	size := cfg.Board.CellSize
	sources := []struct {
		asset    arkanoid.Asset
		path     string
		fallback func() *ebiten.Image
	}{
		{arkanoid.AssetBall, cfg.Images.Ball, func() *ebiten.Image { return glossDisc(size, RGBA(palette.Ball)) }},
		{arkanoid.AssetPaddle, cfg.Images.Paddle, func() *ebiten.Image { return glossBar(3*size, 7*size/10, RGBA(palette.Paddle)) }},
		{arkanoid.AssetCell, cfg.Images.Cell, func() *ebiten.Image { return glossBar(size, size, RGBA(palette.Cell)) }},
	}

	assets := make(Assets, len(sources))
	for _, src := range sources {
		if src.path != "" {
			img, _, err := ebitenutil.NewImageFromFile(src.path)
			if err == nil {
				assets[src.asset] = img
				continue
			}
			if logger != nil {
				logger.Warn("using generated image", "asset", src.asset, "path", src.path, "error", err)
			}
		}
		assets[src.asset] = src.fallback()
	}
	return assets
}

// shine is the translucent highlight across the top of generated images.
var shine = color.RGBA{R: 255, G: 255, B: 255, A: 90}

// glossBar returns a w x h bevelled bar.
func glossBar(w, h int, c color.RGBA) *ebiten.Image {
	img := ebiten.NewImage(max(w, 1), max(h, 1))
	img.Fill(c)
	vector.DrawFilledRect(img, 0, 0, float32(w), float32(h)/3, shine, false)
	vector.StrokeRect(img, 0.5, 0.5, float32(w)-1, float32(h)-1, 1, color.RGBA{A: 120}, false)
	return img
}

// glossDisc returns a size x size disc with a highlight spot.
func glossDisc(size int, c color.RGBA) *ebiten.Image {
	img := ebiten.NewImage(max(size, 1), max(size, 1))
	r := float32(size) / 2
	vector.DrawFilledCircle(img, r, r, r, c, true)
	vector.DrawFilledCircle(img, r*0.7, r*0.7, r/3, shine, true)
	return img
}
