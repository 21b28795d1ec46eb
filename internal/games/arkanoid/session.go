package arkanoid

import (
	"fmt"

	"github.com/vovakirdan/arkanoid/internal/config"
	"github.com/vovakirdan/arkanoid/internal/core"
)

// State is the outcome of the current round.
type State string

// Round states
const (
	StateRunning State = "running"
	StateWon     State = "won"
	StateLost    State = "lost"
)

// Session owns the arena, grid, ball and paddle of one player and drives
// the round state machine. It is not safe for concurrent use; callers
// serialise ticks and pointer moves on one goroutine.
type Session struct {
	cfg      config.ArkanoidConfig
	palette  config.Palette
	arena    int
	notifier Notifier

	seeds *SimpleRNG // derives a fresh grid seed for each round
	seed  int64      // seed of the current round's grid

	grid    *Grid
	paddle  *Paddle
	ball    *Ball
	state   State
	ticks   int
	cleared int
}

// NewSession validates cfg and starts the first round.
// The first grid is generated from seed itself so a round can be replayed.
func NewSession(cfg config.ArkanoidConfig, seed int64, notifier Notifier) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	palette, err := cfg.Palette()
	if err != nil {
		return nil, fmt.Errorf("arkanoid: %w", err)
	}

	s := &Session{
		cfg:      cfg,
		palette:  palette,
		arena:    cfg.ArenaSize(),
		notifier: notifier,
		seeds:    NewSimpleRNG(seed),
		seed:     seed,
	}
	s.startRound()
	return s, nil
}

// Reset starts a new round with a freshly generated grid and the ball and
// paddle back in their starting positions.
func (s *Session) Reset() {
	s.seed = int64(s.seeds.Next() >> 1) //#nosec G115 -- shifted to fit int64
	s.startRound()
}

// startRound rebuilds all round state from the current seed.
func (s *Session) startRound() {
	size, cellSize := s.cfg.Board.Size, s.cfg.Board.CellSize
	s.grid = Generate(size, cellSize, NewSimpleRNG(s.seed))
	s.paddle = NewPaddle(s.arena, cellSize)
	s.ball = NewBall(s.arena, cellSize, s.cfg.Ball.Speed, s.paddle)
	s.state = StateRunning
	s.ticks = 0
	s.cleared = 0
}

// Step runs exactly one tick of the simulation and returns the resulting
// state. A finished round is left as is; use Tick to restart automatically.
func (s *Session) Step(surface Surface) State {
	if s.state != StateRunning {
		return s.state
	}
	surface = orNop(surface)
	s.ticks++

	ball := s.ball.Bounds()

	// Ceiling or paddle
	if s.ball.Y <= 0 || core.Overlaps(ball, s.paddle.Bounds()) {
		s.ball.BounceY()
	}

	// Side walls
	if s.ball.X <= 0 || s.ball.X >= s.arena-s.ball.Size {
		s.ball.BounceX()
	}

	if cell, ok := s.grid.FindFirstHit(ball); ok {
		s.ball.BounceY()
		s.cleared++
		surface.ClearRect(cell.Bounds())
		if s.grid.IsEmpty() {
			s.state = StateWon
		}
	}

	// Clearing the last block wins even when the ball is on the floor.
	if s.state == StateRunning && s.ball.Y >= s.arena-s.ball.Size {
		s.state = StateLost
	}

	if s.state == StateRunning {
		surface.ClearRect(s.ball.Bounds())
		s.drawPaddle(surface)
		s.ball.Advance()
		s.drawBall(surface)
	}

	return s.state
}

// Tick runs one step. When the round ends the notifier is told the outcome,
// then the session resets and the arena is redrawn. The returned state is
// the one reached by the step, even though the session is already running
// again.
func (s *Session) Tick(surface Surface) State {
	state := s.Step(surface)
	if state == StateRunning {
		return state
	}
	if s.notifier != nil {
		s.notifier.Notify(state)
	}
	s.Reset()
	s.Draw(surface)
	return state
}

// MovePaddle moves the paddle under pointerX. Moves that would push the
// paddle against a wall are ignored and nothing is redrawn.
func (s *Session) MovePaddle(pointerX int, surface Surface) bool {
	surface = orNop(surface)
	old := s.paddle.Bounds()
	if !s.paddle.MoveTo(pointerX, s.arena) {
		return false
	}
	surface.ClearRect(old)
	s.drawPaddle(surface)
	s.drawBall(surface)
	return true
}

// Draw paints the whole arena.
func (s *Session) Draw(surface Surface) {
	surface = orNop(surface)
	surface.ClearRect(core.NewRect(0, 0, s.arena, s.arena))
	s.grid.Each(func(c *Cell) {
		if c.Blocked {
			surface.DrawImage(AssetCell, c.Bounds())
		}
	})
	s.drawPaddle(surface)
	s.drawBall(surface)
}

func (s *Session) drawPaddle(surface Surface) {
	r := s.paddle.Bounds()
	surface.FillRect(r, s.palette.Paddle)
	surface.DrawImage(AssetPaddle, r)
}

func (s *Session) drawBall(surface Surface) {
	r := s.ball.Bounds()
	surface.FillCircle(r, s.palette.Ball)
	surface.DrawImage(AssetBall, r)
}

// Accessors

// Config returns the configuration the session was built with.
func (s *Session) Config() config.ArkanoidConfig { return s.cfg }

// Palette returns the parsed colours.
func (s *Session) Palette() config.Palette { return s.palette }

// Arena returns the arena side length in units.
func (s *Session) Arena() int { return s.arena }

// Grid returns the block grid of the current round.
func (s *Session) Grid() *Grid { return s.grid }

// Paddle returns the paddle.
func (s *Session) Paddle() *Paddle { return s.paddle }

// Ball returns the ball.
func (s *Session) Ball() *Ball { return s.ball }

// State returns the state of the current round.
func (s *Session) State() State { return s.state }

// Seed returns the seed the current grid was generated from.
func (s *Session) Seed() int64 { return s.seed }

// Ticks returns the number of steps played in the current round.
func (s *Session) Ticks() int { return s.ticks }

// Cleared returns the number of blocks destroyed in the current round.
func (s *Session) Cleared() int { return s.cleared }
