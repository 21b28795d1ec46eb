package arkanoid

import "github.com/vovakirdan/arkanoid/internal/core"

// Cell is one square of the block grid.
type Cell struct {
	Row     int
	Col     int
	X       int // Left edge in arena units
	Y       int // Top edge in arena units
	Size    int
	Blocked bool
}

// Bounds returns the cell's rectangle in arena units.
func (c *Cell) Bounds() core.Rect {
	return core.NewRect(c.X, c.Y, c.Size, c.Size)
}

// Grid is a square matrix of cells stored row-major.
type Grid struct {
	size     int
	cellSize int
	cells    []Cell
}

// NewGrid creates a grid with every cell empty.
func NewGrid(size, cellSize int) *Grid {
	g := &Grid{
		size:     size,
		cellSize: cellSize,
		cells:    make([]Cell, size*size),
	}
	for row := range size {
		for col := range size {
			g.cells[row*size+col] = Cell{
				Row:  row,
				Col:  col,
				X:    col * cellSize,
				Y:    row * cellSize,
				Size: cellSize,
			}
		}
	}
	return g
}

// Generate creates a grid whose top third is filled at random.
// Each cell there is blocked on an independent coin flip; every other
// cell starts empty. A seeded source always yields the same layout.
func Generate(size, cellSize int, rng RandomSource) *Grid {
	g := NewGrid(size, cellSize)
	for i := range g.cells {
		c := &g.cells[i]
		if inTopThird(c.Row, size) {
			c.Blocked = rng.Intn(2) == 1
		}
	}
	return g
}

// inTopThird reports whether row lies in the randomly filled band.
func inTopThird(row, size int) bool {
	return row*3 <= size
}

// Size returns the number of cells per side.
func (g *Grid) Size() int {
	return g.size
}

// CellSize returns the side length of a cell in arena units.
func (g *Grid) CellSize() int {
	return g.cellSize
}

// At returns the cell at (row, col). The second result is false when the
// coordinates fall outside the grid.
func (g *Grid) At(row, col int) (*Cell, bool) {
	if row < 0 || row >= g.size || col < 0 || col >= g.size {
		return nil, false
	}
	return &g.cells[row*g.size+col], true
}

// SetBlocked marks a cell as blocked or empty.
// Returns false for out-of-range coordinates.
func (g *Grid) SetBlocked(row, col int, blocked bool) bool {
	c, ok := g.At(row, col)
	if !ok {
		return false
	}
	c.Blocked = blocked
	return true
}

// IsEmpty reports whether no blocked cell remains.
func (g *Grid) IsEmpty() bool {
	for i := range g.cells {
		if g.cells[i].Blocked {
			return false
		}
	}
	return true
}

// CountBlocked returns the number of blocked cells.
func (g *Grid) CountBlocked() int {
	count := 0
	for i := range g.cells {
		if g.cells[i].Blocked {
			count++
		}
	}
	return count
}

// FindFirstHit scans blocked cells column by column, left to right and top
// to bottom within a column, and unblocks the first one overlapping r.
// At most one cell is cleared per call.
func (g *Grid) FindFirstHit(r core.Rect) (*Cell, bool) {
	for col := range g.size {
		for row := range g.size {
			c := &g.cells[row*g.size+col]
			if !c.Blocked {
				continue
			}
			if core.Overlaps(r, c.Bounds()) {
				c.Blocked = false
				return c, true
			}
		}
	}
	return nil, false
}

// Each calls fn for every cell in row-major order.
func (g *Grid) Each(fn func(*Cell)) {
	for i := range g.cells {
		fn(&g.cells[i])
	}
}
