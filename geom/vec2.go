// Package geom provides the 2-D vector and angle primitives, and the
// small dense Gauss-Jordan solver, shared by the spline, path, and
// trajectory packages.
package geom

import (
	"math"

	"github.com/golang/geo/r2"
)

// Vec2 is a 2-D point or displacement. It is a trivially copyable value
// type; callers pass it by value the way the teacher passes r3.Vector.
type Vec2 struct {
	X, Y float64
}

// Add returns the componentwise sum.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns the componentwise difference.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Mul returns v scaled by m.
func (v Vec2) Mul(m float64) Vec2 {
	return Vec2{v.X * m, v.Y * m}
}

// Div returns v scaled by 1/d.
func (v Vec2) Div(d float64) Vec2 {
	return Vec2{v.X / d, v.Y / d}
}

// Mag returns the Euclidean magnitude.
func (v Vec2) Mag() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize scales v in place to unit length. Undefined (NaN) for the
// zero vector, matching the source's behavior: callers are expected
// never to normalize a zero-length vector.
func (v *Vec2) Normalize() {
	m := v.Mag()
	v.X /= m
	v.Y /= m
}

// Dot returns the dot product.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Project returns the projection of v onto o.
func (v Vec2) Project(o Vec2) Vec2 {
	return o.Mul(v.Dot(o) / o.Dot(o))
}

// Reflect returns v reflected about o.
func (v Vec2) Reflect(o Vec2) Vec2 {
	p := v.Project(o)
	return p.Mul(2).Sub(v)
}

// Dist returns the Euclidean distance between v and o.
func (v Vec2) Dist(o Vec2) float64 {
	return v.Sub(o).Mag()
}

// Lerp returns the point a fraction f of the way from a to b.
func Lerp(a, b Vec2, f float64) Vec2 {
	return Vec2{
		X: a.X + (b.X-a.X)*f,
		Y: a.Y + (b.Y-a.Y)*f,
	}
}

// ToR2 converts v to a github.com/golang/geo/r2.Point, for callers
// already working in that ecosystem (e.g. a geo-aware path renderer).
func (v Vec2) ToR2() r2.Point {
	return r2.Point{X: v.X, Y: v.Y}
}

// FromR2 converts an r2.Point to a Vec2.
func FromR2(p r2.Point) Vec2 {
	return Vec2{X: p.X, Y: p.Y}
}
