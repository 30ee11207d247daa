// Package path implements the piecewise-parametric planar curve
// stitched through waypoints, its arc-length reparameterization table,
// and the mirror/retrace/update transforms.
package path

import (
	"math"

	"go.viam.com/trajgen/geom"
)

// Waypoint is a 2-D point with a heading (radians) and an optional
// velocity constraint. An unconstrained Velocity is represented by
// math.NaN(), matching the source's not-a-number sentinel.
type Waypoint struct {
	X, Y, Heading float64
	Velocity      float64
}

// NewWaypoint builds an unconstrained waypoint.
func NewWaypoint(x, y, heading float64) Waypoint {
	return Waypoint{X: x, Y: y, Heading: heading, Velocity: math.NaN()}
}

// NewConstrainedWaypoint builds a waypoint with a velocity constraint.
func NewConstrainedWaypoint(x, y, heading, velocity float64) Waypoint {
	return Waypoint{X: x, Y: y, Heading: heading, Velocity: velocity}
}

// HasVelocity reports whether this waypoint carries a velocity
// constraint.
func (w Waypoint) HasVelocity() bool {
	return !math.IsNaN(w.Velocity)
}

// Vec2 drops heading and velocity, yielding the plain 2-D position.
func (w Waypoint) Vec2() geom.Vec2 {
	return geom.Vec2{X: w.X, Y: w.Y}
}

// Tangent returns the unit-heading direction scaled by alpha, used as
// the Hermite/Bezier tangent magnitude at this waypoint.
func (w Waypoint) Tangent(alpha float64) geom.Vec2 {
	return geom.Vec2{X: math.Cos(w.Heading) * alpha, Y: math.Sin(w.Heading) * alpha}
}
