// Package core provides fundamental types and utilities shared by the
// simulation and its front-ends. It has no external dependencies (especially
// no Bubble Tea) so game logic stays pure and testable.
package core

// Rect is an integer rectangle in character cells, used for drawing.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// RectF is an axis-aligned bounding box in pixels.
// It mirrors what a layout engine reports for a positioned element.
type RectF struct {
	X, Y float64
	W, H float64
}

// NewRectF creates a new pixel-space rectangle.
func NewRectF(x, y, w, h float64) RectF {
	return RectF{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r RectF) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r RectF) Bottom() float64 {
	return r.Y + r.H
}

// Intersects reports whether two boxes overlap.
// Touching edges do not count as an overlap.
func (r RectF) Intersects(other RectF) bool {
	return r.X < other.Right() &&
		r.Right() > other.X &&
		r.Y < other.Bottom() &&
		r.Bottom() > other.Y
}

// Cells projects the box onto a character grid where each cell covers
// cellW x cellH pixels. Partially covered cells are included.
func (r RectF) Cells(cellW, cellH float64) Rect {
	if cellW <= 0 || cellH <= 0 {
		return Rect{}
	}
	x0 := floorDiv(r.X, cellW)
	y0 := floorDiv(r.Y, cellH)
	x1 := ceilDiv(r.Right(), cellW)
	y1 := ceilDiv(r.Bottom(), cellH)
	return NewRect(x0, y0, Max(0, x1-x0), Max(0, y1-y0))
}

func floorDiv(v, unit float64) int {
	q := v / unit
	i := int(q)
	if float64(i) > q {
		i--
	}
	return i
}

func ceilDiv(v, unit float64) int {
	q := v / unit
	i := int(q)
	if float64(i) < q {
		i++
	}
	return i
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
