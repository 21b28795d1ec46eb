package core

// Canvas maps a logical coordinate space (for example arena units) onto a
// character screen. Logical rectangles are converted to half-open cell spans
// so that rectangles which tile the logical space also tile the screen.
type Canvas struct {
	screen   *Screen
	logicalW int
	logicalH int
}

// NewCanvas creates a canvas of cols x rows cells covering a logical area of
// logicalW x logicalH units.
func NewCanvas(logicalW, logicalH, cols, rows int) *Canvas {
	return &Canvas{
		screen:   NewScreen(Max(cols, 1), Max(rows, 1)),
		logicalW: Max(logicalW, 1),
		logicalH: Max(logicalH, 1),
	}
}

// Screen returns the backing character buffer.
func (c *Canvas) Screen() *Screen {
	return c.screen
}

// Col converts a logical x coordinate to a screen column.
func (c *Canvas) Col(x int) int {
	return floorDiv(x*c.screen.Width(), c.logicalW)
}

// Row converts a logical y coordinate to a screen row.
func (c *Canvas) Row(y int) int {
	return floorDiv(y*c.screen.Height(), c.logicalH)
}

// LogicalX converts a screen column to the logical x at the column's center.
func (c *Canvas) LogicalX(col int) int {
	return floorDiv((2*col+1)*c.logicalW, 2*c.screen.Width())
}

// Span returns the half-open cell range covered by a logical rectangle.
// Non-empty rectangles always cover at least one cell.
func (c *Canvas) Span(r Rect) Rect {
	x0, y0 := c.Col(r.X), c.Row(r.Y)
	x1, y1 := c.Col(r.Right()), c.Row(r.Bottom())
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return NewRect(x0, y0, x1-x0, y1-y0)
}

// FillRect paints every cell covered by r.
func (c *Canvas) FillRect(r Rect, cell Cell) {
	span := c.Span(r)
	for y := span.Y; y < span.Bottom(); y++ {
		for x := span.X; x < span.Right(); x++ {
			c.screen.SetCell(x, y, cell)
		}
	}
}

// FillEllipse paints the cells of r whose centers fall inside the ellipse
// inscribed in r. Spans too small to contain any center are filled whole.
func (c *Canvas) FillEllipse(r Rect, cell Cell) {
	span := c.Span(r)
	// Work in doubled units so cell centers stay integral.
	cx, cy := 2*span.X+span.W, 2*span.Y+span.H
	rx, ry := span.W, span.H

	painted := false
	for y := span.Y; y < span.Bottom(); y++ {
		for x := span.X; x < span.Right(); x++ {
			dx, dy := 2*x+1-cx, 2*y+1-cy
			// (dx/rx)^2 + (dy/ry)^2 <= 1
			if dx*dx*ry*ry+dy*dy*rx*rx <= rx*rx*ry*ry {
				c.screen.SetCell(x, y, cell)
				painted = true
			}
		}
	}
	if !painted {
		c.FillRect(r, cell)
	}
}

// Clear resets the whole canvas to the given cell.
func (c *Canvas) Clear(cell Cell) {
	c.screen.FillCell(cell)
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
