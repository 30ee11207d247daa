// Package spline implements the three piecewise-parametric curve
// variants (Bezier, cubic Hermite, quintic Hermite) that a Path is
// stitched from.
package spline

import "go.viam.com/trajgen/geom"

// Segment is the shared interface of the three spline variants. Each
// is defined over local parameter u in [0, 1] and is C2 (exposes
// position, first, and second derivative). Represented as a small set
// of concrete structs behind this interface rather than a class
// hierarchy with virtual dispatch through a vtable-like mechanism —
// Go's interfaces already give us that dispatch for free, and each
// concrete type stays densely allocated inside a Path's segment slice.
type Segment interface {
	// At returns the position at local parameter u.
	At(u float64) geom.Vec2
	// DerivAt returns the first derivative (tangent) at u.
	DerivAt(u float64) geom.Vec2
	// SecondDerivAt returns the second derivative at u.
	SecondDerivAt(u float64) geom.Vec2
}
