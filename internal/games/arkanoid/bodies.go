package arkanoid

import "github.com/vovakirdan/arkanoid/internal/core"

// Paddle is the player-controlled platform along the bottom edge.
type Paddle struct {
	X      int
	Y      int
	Width  int
	Height int
}

// NewPaddle creates a paddle centred on the floor of an arena.
// It is three cells wide and seven tenths of a cell tall.
func NewPaddle(arena, cellSize int) *Paddle {
	width := 3 * cellSize
	height := 7 * cellSize / 10
	return &Paddle{
		X:      (arena - width) / 2,
		Y:      arena - height,
		Width:  width,
		Height: height,
	}
}

// Bounds returns the paddle rectangle.
func (p *Paddle) Bounds() core.Rect {
	return core.NewRect(p.X, p.Y, p.Width, p.Height)
}

// CenterX returns the horizontal centre of the paddle.
func (p *Paddle) CenterX() int {
	return p.X + p.Width/2
}

// MoveTo centres the paddle on pointerX if the paddle would stay strictly
// inside the arena. Returns false and leaves the paddle alone otherwise.
func (p *Paddle) MoveTo(pointerX, arenaW int) bool {
	half := p.Width / 2
	if pointerX <= half || pointerX >= arenaW-half {
		return false
	}
	p.X = pointerX - half
	return true
}

// Ball is a square body moving a fixed step along both axes every tick.
type Ball struct {
	X     int
	Y     int
	Size  int
	StepX int
	StepY int
}

// NewBall places a ball horizontally centred just above the paddle,
// heading up and to the left.
func NewBall(arena, size, speed int, paddle *Paddle) *Ball {
	return &Ball{
		X:     (arena - size) / 2,
		Y:     paddle.Y - size - 1,
		Size:  size,
		StepX: -speed,
		StepY: -speed,
	}
}

// Bounds returns the ball's bounding square.
func (b *Ball) Bounds() core.Rect {
	return core.NewRect(b.X, b.Y, b.Size, b.Size)
}

// Advance moves the ball by one step.
func (b *Ball) Advance() {
	b.X += b.StepX
	b.Y += b.StepY
}

// BounceX reverses horizontal motion.
func (b *Ball) BounceX() {
	b.StepX = -b.StepX
}

// BounceY reverses vertical motion.
func (b *Ball) BounceY() {
	b.StepY = -b.StepY
}
