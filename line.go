package vimlogo

import "math"

// Line is an infinite 2D line in standard form: A*x + B*y = C.
type Line struct {
	A, B, C float64
}

// LineThrough returns the line passing through two points.
// The points need not be distinct, but the resulting line is degenerate
// (A == B == 0) if they are.
func LineThrough(p, q Point) Line {
	a := q.Y - p.Y
	b := p.X - q.X
	return Line{A: a, B: b, C: a*p.X + b*p.Y}
}

// LineDirected returns the line through p in the direction of vector v.
func LineDirected(p, v Point) Line {
	return LineThrough(p, p.Add(v))
}

// Intersect returns the intersection of two lines.
// The second return value is false if the lines are parallel or degenerate.
func (l Line) Intersect(m Line) (Point, bool) {
	det := l.A*m.B - m.A*l.B
	if math.Abs(det) < 1e-12 {
		return Point{}, false
	}
	return Point{
		X: (l.C*m.B - m.C*l.B) / det,
		Y: (l.A*m.C - m.A*l.C) / det,
	}, true
}
