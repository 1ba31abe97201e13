package core

import "math"

// Viewport maps a virtual canvas measured in pixels onto a grid of
// character cells.
type Viewport struct {
	World Vec // Canvas size in pixels
	Cols  int
	Rows  int
}

// NewViewport creates a viewport for a w×h canvas shown on cols×rows cells.
func NewViewport(w, h float64, cols, rows int) Viewport {
	return Viewport{World: Vec{X: w, Y: h}, Cols: Max(cols, 1), Rows: Max(rows, 1)}
}

// CellSize returns the number of pixels covered by one cell.
func (v Viewport) CellSize() Vec {
	return Vec{X: v.World.X / float64(v.Cols), Y: v.World.Y / float64(v.Rows)}
}

// ToCell returns the cell containing pixel (x, y). Pixels left of or above
// the canvas map to negative cells.
func (v Viewport) ToCell(x, y float64) (int, int) {
	cs := v.CellSize()
	return int(math.Floor(x / cs.X)), int(math.Floor(y / cs.Y))
}

// ToWorld returns the pixel at the center of cell (col, row).
func (v Viewport) ToWorld(col, row int) (float64, float64) {
	cs := v.CellSize()
	return (float64(col) + 0.5) * cs.X, (float64(row) + 0.5) * cs.Y
}

// Span converts a pixel displacement to whole cells, rounding to nearest.
func (v Viewport) Span(d Vec) (int, int) {
	cs := v.CellSize()
	return int(math.Round(d.X / cs.X)), int(math.Round(d.Y / cs.Y))
}
