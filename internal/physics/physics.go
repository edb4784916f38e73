// Package physics provides geometry, collision and distance utilities.
package physics

import "math"

// Point is a position in play field units.
type Point struct {
	X, Y float64
}

// Bounds is a play field anchored at the origin.
type Bounds struct {
	Width, Height int
}

// Center returns the middle of the field.
func (b Bounds) Center() Point {
	return Point{X: float64(b.Width / 2), Y: float64(b.Height / 2)}
}

// Contains reports whether p lies inside the field.
func (b Bounds) Contains(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < float64(b.Width) && p.Y < float64(b.Height)
}

// Wrap wraps x and y coordinates around field boundaries (Asteroids-style).
func (b Bounds) Wrap(x, y *float64) {
	*x = wrapAxis(*x, float64(b.Width))
	*y = wrapAxis(*y, float64(b.Height))
}

// WrapY wraps only the vertical coordinate.
func (b Bounds) WrapY(y *float64) {
	*y = wrapAxis(*y, float64(b.Height))
}

func wrapAxis(v, size float64) float64 {
	if size <= 0 {
		return v
	}
	v = math.Mod(v, size)
	if v < 0 {
		v += size
	}
	return v
}

// Distance calculates the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Sqrt(DistanceSquared(x1, y1, x2, y2))
}

// DistanceSquared calculates the squared distance between two points.
// Use this when comparing distances to avoid the sqrt cost.
func DistanceSquared(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// PointInCircle checks if a point is within radius of a target position.
func PointInCircle(px, py, cx, cy, radius float64) bool {
	return DistanceSquared(px, py, cx, cy) <= radius*radius
}

// CirclesOverlap checks if two circles overlap.
func CirclesOverlap(x1, y1, r1, x2, y2, r2 float64) bool {
	minDist := r1 + r2
	return DistanceSquared(x1, y1, x2, y2) < minDist*minDist
}
