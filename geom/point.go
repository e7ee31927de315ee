// Package geom holds the small geometric value types shared by the
// simulation core.
package geom

// Point is a position on the 2D sketch plane. The origin is the centre of
// the epicycle chain; y grows upward.
type Point struct {
	X float64
	Y float64
}

// Add returns the point translated by p.
func (a Point) Add(p Point) Point {
	return Point{X: a.X + p.X, Y: a.Y + p.Y}
}
