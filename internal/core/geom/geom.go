// Package geom provides the axis-aligned rectangle math shared by scenes,
// the interaction resolver and the farming engine.
package geom

import "fmt"

// Point represents a 2D point in world space
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. X/Y is the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// NewRect builds a rectangle from its top-left corner and size.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectAround returns a w×h rectangle centered on p.
func RectAround(p Point, w, h float64) Rect {
	return Rect{X: p.X - w/2, Y: p.Y - h/2, W: w, H: h}
}

// RectFromSlice converts a document array [x, y, w, h] into a Rect.
func RectFromSlice(v []float64) (Rect, error) {
	if len(v) != 4 {
		return Rect{}, fmt.Errorf("rect needs 4 values, got %d", len(v))
	}
	return Rect{X: v[0], Y: v[1], W: v[2], H: v[3]}, nil
}

// Left returns the x coordinate of the left edge.
func (r Rect) Left() float64 { return r.X }

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Top returns the y coordinate of the top edge.
func (r Rect) Top() float64 { return r.Y }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the rectangle's center point.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// TopLeft returns the rectangle's origin.
func (r Rect) TopLeft() Point {
	return Point{X: r.X, Y: r.Y}
}

// Translate returns the rectangle moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// MoveTo returns the rectangle with its top-left corner at p.
func (r Rect) MoveTo(p Point) Rect {
	r.X = p.X
	r.Y = p.Y
	return r
}

// Overlaps reports whether two rectangles intersect. Rectangles that only
// share an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// ClampInside returns r shifted so that it lies within bounds. If r is larger
// than bounds on an axis it is aligned to the bounds' leading edge.
func (r Rect) ClampInside(bounds Rect) Rect {
	if r.Right() > bounds.Right() {
		r.X = bounds.Right() - r.W
	}
	if r.X < bounds.X {
		r.X = bounds.X
	}
	if r.Bottom() > bounds.Bottom() {
		r.Y = bounds.Bottom() - r.H
	}
	if r.Y < bounds.Y {
		r.Y = bounds.Y
	}
	return r
}

// DistSq returns the squared distance between the centers of a and b.
func DistSq(a, b Rect) float64 {
	ca, cb := a.Center(), b.Center()
	dx := cb.X - ca.X
	dy := cb.Y - ca.Y
	return dx*dx + dy*dy
}
