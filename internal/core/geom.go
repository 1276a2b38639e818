// Package core holds the types shared by the scene and the terminal platform:
// geometry, input frames, the screen buffer and runtime configuration.
// It never imports Bubble Tea, so scene logic runs in plain unit tests.
package core

// Rect is an axis-aligned box on the cell grid. Rows grow downwards.
type Rect struct {
	X, Y int // Top-left cell
	W, H int
}

// NewRect creates a rectangle from its top-left cell and size.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the column one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the row one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// CenterX returns the middle column; even widths round to the right half.
func (r Rect) CenterX() int {
	return r.X + r.W/2
}

// Above returns a box of height h that rests on top of r, starting at column x.
func (r Rect) Above(x, w, h int) Rect {
	return Rect{X: x, Y: r.Y - h, W: w, H: h}
}

// Translate returns the box moved by (dx, dy), e.g. from scene to screen cells.
func (r Rect) Translate(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Intersects reports whether the two boxes share at least one cell.
// Boxes that only touch along an edge do not intersect.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	return r.Y < other.Bottom() && other.Y < r.Bottom()
}

// Contains reports whether cell (x, y) lies inside the box.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clamp restricts val to [lo, hi].
func Clamp(val, lo, hi int) int {
	return min(max(val, lo), hi)
}
