package geometry

import "fmt"

// Point is an integer pixel position on the canvas.
type Point struct {
	X, Y int
}

// Add returns the vector sum of p and q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// String returns the point as "(x, y)".
func (p Point) String() string { return fmt.Sprintf("(%d, %d)", p.X, p.Y) }

// Size is a canvas size in pixels.
type Size struct {
	Width, Height int
}

// Contains reports whether p lies inside the closed rectangle [0, Width] x [0, Height].
func (s Size) Contains(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X <= s.Width && p.Y <= s.Height
}

// String returns the size as "WxH".
func (s Size) String() string { return fmt.Sprintf("%dx%d", s.Width, s.Height) }
