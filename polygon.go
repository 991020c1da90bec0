package vimlogo

import (
	"errors"
	"fmt"
	"math"
)

// ErrBadGeometry reports geometry that cannot be rendered: degenerate
// polygons, zero-length edges, or offsets of a shape with no interior.
var ErrBadGeometry = errors.New("bad geometry")

// Polygon is an ordered ring of points describing a closed linear shape.
// The closing edge from the last point back to the first is implicit.
type Polygon []Point

// SignedArea returns the shoelace area of the polygon. The sign depends on
// winding: positive for counter-clockwise rings in right-handed axes.
func (p Polygon) SignedArea() float64 {
	n := len(p)
	if n < 3 {
		return 0
	}
	var sum float64
	for i, a := range p {
		b := p[(i+1)%n]
		sum += a.Cross(b)
	}
	return sum / 2
}

// Area returns the absolute area of the polygon.
func (p Polygon) Area() float64 {
	return math.Abs(p.SignedArea())
}

// Bounds returns the axis-aligned bounding box of the polygon.
func (p Polygon) Bounds() (min, max Point) {
	if len(p) == 0 {
		return Point{}, Point{}
	}
	min, max = p[0], p[0]
	for _, pt := range p[1:] {
		min.X = math.Min(min.X, pt.X)
		min.Y = math.Min(min.Y, pt.Y)
		max.X = math.Max(max.X, pt.X)
		max.Y = math.Max(max.Y, pt.Y)
	}
	return min, max
}

// Translate returns the polygon moved by vector v.
func (p Polygon) Translate(v Point) Polygon {
	out := make(Polygon, len(p))
	for i, pt := range p {
		out[i] = pt.Add(v)
	}
	return out
}

// Transform returns the polygon with matrix m applied to every point.
func (p Polygon) Transform(m Matrix) Polygon {
	out := make(Polygon, len(p))
	for i, pt := range p {
		out[i] = m.TransformPoint(pt)
	}
	return out
}

// Reverse returns the polygon with its winding reversed, keeping the same
// start point.
func (p Polygon) Reverse() Polygon {
	n := len(p)
	out := make(Polygon, n)
	for i := range p {
		out[i] = p[(n-i)%n]
	}
	return out
}

// Dedup removes adjacent identical points, including identical endpoints
// across the implicit closing edge. Duplicate adjacent points would produce
// wild joins when the ring is stroked.
func (p Polygon) Dedup() Polygon {
	n := len(p)
	if n < 2 {
		return append(Polygon(nil), p...)
	}
	out := make(Polygon, 0, n)
	for i, pt := range p {
		if pt != p[(i+1)%n] {
			out = append(out, pt)
		}
	}
	if len(out) == 0 {
		return Polygon{p[0]}
	}
	return out
}

// IsDegenerate returns true if the polygon has fewer than three distinct
// points or an area too small to render.
func (p Polygon) IsDegenerate() bool {
	q := p.Dedup()
	return len(q) < 3 || q.Area() < 1e-6
}

// Offset returns the polygon with every edge shifted by dist along its
// perpendicular, with miter joins at the vertices. Which side the edges move
// toward depends on winding; most callers want Inset, which resolves the
// direction from the resulting area.
func (p Polygon) Offset(dist float64) (Polygon, error) {
	q := p.Dedup()
	n := len(q)
	if n < 3 {
		return nil, fmt.Errorf("offset of %d-point ring: %w", n, ErrBadGeometry)
	}

	dirs := make([]Point, n)
	lines := make([]Line, n)
	for i, a := range q {
		b := q[(i+1)%n]
		d := b.Sub(a).Normalize()
		if d == (Point{}) {
			return nil, fmt.Errorf("zero-length edge at %v: %w", a, ErrBadGeometry)
		}
		dirs[i] = d
		off := d.Perp().Mul(dist)
		lines[i] = LineThrough(a.Add(off), b.Add(off))
	}

	out := make(Polygon, n)
	for i := range q {
		prev := lines[(i+n-1)%n]
		pt, ok := prev.Intersect(lines[i])
		if !ok {
			// Collinear neighbors share the offset point.
			pt = q[i].Add(dirs[i].Perp().Mul(dist))
		}
		out[i] = pt
	}
	return out, nil
}

// Inset returns the polygon offset toward its interior by dist, regardless
// of winding. Negative dist offsets outward.
func (p Polygon) Inset(dist float64) (Polygon, error) {
	if dist == 0 {
		return append(Polygon(nil), p...), nil
	}
	a, err := p.Offset(dist)
	if err != nil {
		return nil, err
	}
	b, err := p.Offset(-dist)
	if err != nil {
		return nil, err
	}
	if (dist > 0) == (a.Area() <= b.Area()) {
		return a, nil
	}
	return b, nil
}

// ChamferRightAngles replaces every 90-degree convex turn with a small
// chamfer of the given size, matching the faceted corners used throughout
// the logo. Other corners pass through unchanged.
func (p Polygon) ChamferRightAngles(size float64) Polygon {
	n := len(p)
	if n < 3 {
		return append(Polygon(nil), p...)
	}
	out := make(Polygon, 0, n+4)
	for i := range p {
		a := p[i]
		b := p[(i+1)%n]
		c := p[(i+2)%n]
		ba := a.Sub(b).SetNorm(size)
		cb := b.Sub(c).SetNorm(size)
		if math.Abs(ba.Angle(cb)-math.Pi/2) < 1e-9 {
			out = append(out, b.Add(ba), b.Sub(cb))
		} else {
			out = append(out, b)
		}
	}
	return out
}

// PathData returns the polygon as compact SVG path data.
func (p Polygon) PathData() string {
	return PathData(p)
}
