package config

import (
	_ "embed"
)

//go:embed defaults/arkanoid.yaml
var defaultArkanoidYAML []byte

// DefaultArkanoidConfig returns the default Arkanoid configuration.
func DefaultArkanoidConfig() ArkanoidConfig {
	return ArkanoidConfig{
		Board: ArkanoidBoard{
			CellSize: 50,
			Size:     13,
		},
		Ball: ArkanoidBall{
			Speed: 2,
		},
		Loop: ArkanoidLoop{
			PaceMS: 5,
		},
		Colors: ArkanoidColors{
			Background: "black",
			Ball:       "red",
			Paddle:     "red",
			Cell:       "yellow",
		},
		Images: ArkanoidImages{
			Ball:   "images/cell.png",
			Paddle: "images/platform.png",
			Cell:   "images/cell.png",
		},
		Glyphs: ArkanoidGlyphs{
			Ball:   "●",
			Paddle: "▀",
			Cell:   "█",
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultArkanoidYAML
}
