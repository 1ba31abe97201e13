package core

import "testing"

func TestViewport(t *testing.T) {
	v := NewViewport(400, 300, 80, 30)

	if cs := v.CellSize(); cs != (Vec{X: 5, Y: 10}) {
		t.Errorf("CellSize = %+v, expected {5 10}", cs)
	}

	tests := []struct {
		x, y     float64
		col, row int
	}{
		{0, 0, 0, 0},
		{4.9, 9.9, 0, 0},
		{100, 206, 20, 20},
		{399, 299, 79, 29},
		{-1, -1, -1, -1},
	}
	for _, tc := range tests {
		col, row := v.ToCell(tc.x, tc.y)
		if col != tc.col || row != tc.row {
			t.Errorf("ToCell(%v, %v) = (%d, %d), expected (%d, %d)", tc.x, tc.y, col, row, tc.col, tc.row)
		}
	}

	x, y := v.ToWorld(40, 15)
	if x != 202.5 || y != 155 {
		t.Errorf("ToWorld(40, 15) = (%v, %v), expected (202.5, 155)", x, y)
	}

	dx, dy := v.Span(Vec{X: 4, Y: 3})
	if dx != 1 || dy != 0 {
		t.Errorf("Span(4, 3) = (%d, %d), expected (1, 0)", dx, dy)
	}
}

func TestViewportDegenerateGrid(t *testing.T) {
	v := NewViewport(100, 100, 0, -3)
	if v.Cols != 1 || v.Rows != 1 {
		t.Errorf("Grid = %dx%d, expected 1x1", v.Cols, v.Rows)
	}
}
