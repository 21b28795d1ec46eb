package arkanoid

// Snapshot contains the complete session state.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick    uint64
	State   string
	Seed    int64
	Cleared int

	PaddleX int
	BallX   int
	BallY   int
	StepX   int
	StepY   int

	// Cell states (flattened: row*size + col = index), 1 = blocked
	Blocked []int

	// RNG state used to derive the next round's seed
	RNGState uint64
}

// Snapshot returns the current session state.
func (s *Session) Snapshot() Snapshot {
	blocked := make([]int, 0, s.grid.Size()*s.grid.Size())
	s.grid.Each(func(c *Cell) {
		if c.Blocked {
			blocked = append(blocked, 1)
		} else {
			blocked = append(blocked, 0)
		}
	})

	return Snapshot{
		Tick:     uint64(s.ticks), //#nosec G115 -- tick count is always positive
		State:    string(s.state),
		Seed:     s.seed,
		Cleared:  s.cleared,
		PaddleX:  s.paddle.X,
		BallX:    s.ball.X,
		BallY:    s.ball.Y,
		StepX:    s.ball.StepX,
		StepY:    s.ball.StepY,
		Blocked:  blocked,
		RNGState: s.seeds.state,
	}
}

// Snapshot returns the state of the underlying session.
func (g *Game) Snapshot() Snapshot {
	return g.session.Snapshot()
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Tick)
	h = h*31 + uint64(snap.Seed)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Cleared) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PaddleX) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallX)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallY)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.StepX)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.StepY)   //#nosec G115 -- hash computation

	for _, r := range snap.State {
		h = h*31 + uint64(r) //#nosec G115 -- hash computation
	}

	for _, v := range snap.Blocked {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	h = h*31 + snap.RNGState

	return h
}
