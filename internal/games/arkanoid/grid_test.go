package arkanoid

import (
	"testing"

	"github.com/vovakirdan/arkanoid/internal/core"
)

// constSource always returns the same value.
type constSource int

func (c constSource) Intn(int) int { return int(c) }

func TestGenerateFillsTopThirdOnly(t *testing.T) {
	g := Generate(13, 50, NewSimpleRNG(7))

	g.Each(func(c *Cell) {
		if c.Row > 4 && c.Blocked {
			t.Errorf("cell (%d, %d) below the top third should be empty", c.Row, c.Col)
		}
	})
}

func TestGenerateCoinFlip(t *testing.T) {
	full := Generate(13, 50, constSource(1))
	if got := full.CountBlocked(); got != 5*13 {
		t.Errorf("CountBlocked() = %d, expected %d", got, 5*13)
	}

	empty := Generate(13, 50, constSource(0))
	if !empty.IsEmpty() {
		t.Errorf("grid should be empty when every flip lands on zero, got %d blocks", empty.CountBlocked())
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := Generate(13, 50, NewSimpleRNG(12345))
	b := Generate(13, 50, NewSimpleRNG(12345))

	for row := range 13 {
		for col := range 13 {
			ca, _ := a.At(row, col)
			cb, _ := b.At(row, col)
			if ca.Blocked != cb.Blocked {
				t.Fatalf("grids differ at (%d, %d)", row, col)
			}
		}
	}
}

func TestGridAt(t *testing.T) {
	g := NewGrid(13, 50)

	tests := []struct {
		name     string
		row, col int
		ok       bool
	}{
		{"origin", 0, 0, true},
		{"last cell", 12, 12, true},
		{"negative row", -1, 0, false},
		{"negative col", 0, -1, false},
		{"row past end", 13, 0, false},
		{"col past end", 0, 13, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, ok := g.At(tc.row, tc.col)
			if ok != tc.ok {
				t.Fatalf("At(%d, %d) ok = %v, expected %v", tc.row, tc.col, ok, tc.ok)
			}
			if !ok && c != nil {
				t.Errorf("At(%d, %d) should return nil when out of range", tc.row, tc.col)
			}
		})
	}

	c, _ := g.At(12, 3)
	if c.X != 150 || c.Y != 600 || c.Size != 50 {
		t.Errorf("cell (12, 3) has bounds %v, expected x=150 y=600 size=50", c.Bounds())
	}
}

func TestGridIsEmpty(t *testing.T) {
	g := NewGrid(5, 10)
	if !g.IsEmpty() {
		t.Error("new grid should be empty")
	}

	g.SetBlocked(4, 4, true)
	if g.IsEmpty() {
		t.Error("grid with one blocked cell should not be empty")
	}
	if g.CountBlocked() != 1 {
		t.Errorf("CountBlocked() = %d, expected 1", g.CountBlocked())
	}

	if g.SetBlocked(5, 0, true) {
		t.Error("SetBlocked() out of range should return false")
	}
}

func TestFindFirstHitScansColumns(t *testing.T) {
	type pos struct{ row, col int }
	tests := []struct {
		name     string
		size     int
		cellSize int
		blocked  []pos
		r        core.Rect
		hits     []pos // Expected hits on successive calls
	}{
		{
			name:     "column before row",
			size:     4,
			cellSize: 50,
			blocked:  []pos{{1, 0}, {0, 1}},
			r:        core.NewRect(40, 40, 50, 50),
			hits:     []pos{{1, 0}, {0, 1}},
		},
		{
			name:     "top to bottom within a column",
			size:     4,
			cellSize: 10,
			blocked:  []pos{{0, 1}, {0, 2}, {1, 1}},
			r:        core.NewRect(15, 5, 10, 10),
			hits:     []pos{{0, 1}, {1, 1}, {0, 2}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := NewGrid(tc.size, tc.cellSize)
			for _, p := range tc.blocked {
				g.SetBlocked(p.row, p.col, true)
			}

			for i, want := range tc.hits {
				c, ok := g.FindFirstHit(tc.r)
				if !ok || c.Row != want.row || c.Col != want.col {
					t.Fatalf("hit %d should be (%d, %d), got %+v ok=%v", i, want.row, want.col, c, ok)
				}
				if c.Blocked {
					t.Error("hit cell should be unblocked")
				}
				if remain := len(tc.blocked) - i - 1; g.CountBlocked() != remain {
					t.Errorf("only one cell should be cleared per call, %d remain", g.CountBlocked())
				}
			}
		})
	}
}

func TestFindFirstHitSingleCell(t *testing.T) {
	g := NewGrid(4, 10)
	g.SetBlocked(2, 2, true)
	r := core.NewRect(22, 22, 4, 4)

	if _, ok := g.FindFirstHit(r); !ok {
		t.Fatal("expected a hit")
	}
	if _, ok := g.FindFirstHit(r); ok {
		t.Error("a cleared cell should not be hit again")
	}
	if !g.IsEmpty() {
		t.Error("grid should be empty after its only block is hit")
	}
}

func TestFindFirstHitEdges(t *testing.T) {
	tests := []struct {
		name string
		r    core.Rect
		hit  bool
	}{
		{"touching corner", core.NewRect(0, 0, 10, 10), true},
		{"touching bottom edge", core.NewRect(10, 20, 10, 10), true},
		{"one unit gap", core.NewRect(0, 0, 9, 9), false},
		{"far away", core.NewRect(30, 30, 5, 5), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := NewGrid(4, 10)
			g.SetBlocked(1, 1, true) // occupies [10, 20] on both axes

			_, ok := g.FindFirstHit(tc.r)
			if ok != tc.hit {
				t.Errorf("FindFirstHit(%v) = %v, expected %v", tc.r, ok, tc.hit)
			}
			if !tc.hit && g.CountBlocked() != 1 {
				t.Error("a miss should leave the grid unchanged")
			}
		})
	}
}

func TestSimpleRNGIntnRange(t *testing.T) {
	rng := NewSimpleRNG(0)
	seen := map[int]bool{}
	for range 1000 {
		v := rng.Intn(2)
		if v < 0 || v > 1 {
			t.Fatalf("Intn(2) = %d, out of range", v)
		}
		seen[v] = true
	}
	if !seen[0] || !seen[1] {
		t.Error("Intn(2) should produce both outcomes")
	}
	if rng.Intn(0) != 0 {
		t.Error("Intn(0) should return 0")
	}
}
