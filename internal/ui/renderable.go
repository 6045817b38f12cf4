// Package ui holds the contracts shared by every MoonUI component package.
package ui

// Renderable is anything that can draw itself to a string.
type Renderable interface {
	View() string
}

// Rect is the on-screen area a component was drawn into, in terminal cells.
// Hosts report it back to interactive components so mouse coordinates can be
// mapped onto the component.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Contains reports whether the cell (x, y) falls inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// IsZero reports whether the rectangle has no area.
func (r Rect) IsZero() bool {
	return r.Width <= 0 || r.Height <= 0
}
