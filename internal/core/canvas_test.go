package core

import "testing"

func TestCanvasSpan(t *testing.T) {
	// 100x100 logical units on a 20x10 screen: 5 units per column, 10 per row.
	c := NewCanvas(100, 100, 20, 10)

	tests := []struct {
		name     string
		r        Rect
		expected Rect
	}{
		{"origin cell", NewRect(0, 0, 5, 10), NewRect(0, 0, 1, 1)},
		{"multi cell", NewRect(10, 20, 20, 30), NewRect(2, 2, 4, 3)},
		{"tiny rect still covers a cell", NewRect(12, 12, 1, 1), NewRect(2, 1, 1, 1)},
		{"full area", NewRect(0, 0, 100, 100), NewRect(0, 0, 20, 10)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := c.Span(tc.r); got != tc.expected {
				t.Errorf("Span(%v) = %v, expected %v", tc.r, got, tc.expected)
			}
		})
	}
}

func TestCanvasAdjacentRectsDoNotShareCells(t *testing.T) {
	c := NewCanvas(650, 650, 40, 20)
	left := c.Span(NewRect(0, 0, 50, 50))
	right := c.Span(NewRect(50, 0, 50, 50))

	if left.Intersects(right) {
		t.Errorf("adjacent logical rects should map to disjoint spans, got %v and %v", left, right)
	}
	if left.Right() != right.X {
		t.Errorf("adjacent logical rects should tile, got %v and %v", left, right)
	}
}

func TestCanvasFillRect(t *testing.T) {
	c := NewCanvas(100, 100, 10, 10)
	c.FillRect(NewRect(20, 20, 30, 30), Cell{Rune: '#', Color: ColorRed})

	s := c.Screen()
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			inside := x >= 2 && x < 5 && y >= 2 && y < 5
			got := s.GetCell(x, y)
			if inside && (got.Rune != '#' || got.Color != ColorRed) {
				t.Errorf("expected red '#' at (%d, %d), got %+v", x, y, got)
			}
			if !inside && got.Rune != ' ' {
				t.Errorf("expected blank at (%d, %d), got %q", x, y, got.Rune)
			}
		}
	}
}

func TestCanvasFillEllipse(t *testing.T) {
	c := NewCanvas(100, 100, 10, 10)
	c.FillEllipse(NewRect(0, 0, 50, 50), Cell{Rune: 'o'})

	s := c.Screen()
	if s.Get(2, 2) != 'o' {
		t.Error("ellipse center should be painted")
	}
	if s.Get(0, 0) != ' ' {
		t.Error("ellipse corner should stay blank")
	}

	// A one-cell span is painted even though it is tiny.
	c.FillEllipse(NewRect(91, 91, 2, 2), Cell{Rune: '*'})
	if s.Get(9, 9) != '*' {
		t.Errorf("tiny ellipse should paint its cell, got %q", s.Get(9, 9))
	}
}

func TestCanvasLogicalX(t *testing.T) {
	c := NewCanvas(650, 650, 26, 13)

	// 25 units per column; column 0 center is 12, column 13 center is 337.
	if got := c.LogicalX(0); got != 12 {
		t.Errorf("LogicalX(0) = %d, expected 12", got)
	}
	if got := c.LogicalX(13); got != 337 {
		t.Errorf("LogicalX(13) = %d, expected 337", got)
	}
	if got := c.Col(c.LogicalX(7)); got != 7 {
		t.Errorf("Col(LogicalX(7)) = %d, expected 7", got)
	}
}

func TestFloorDiv(t *testing.T) {
	tests := []struct{ a, b, expected int }{
		{7, 2, 3},
		{-7, 2, -4},
		{-6, 2, -3},
		{0, 5, 0},
	}
	for _, tc := range tests {
		if got := floorDiv(tc.a, tc.b); got != tc.expected {
			t.Errorf("floorDiv(%d, %d) = %d, expected %d", tc.a, tc.b, got, tc.expected)
		}
	}
}
