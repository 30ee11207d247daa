package geom

import "math"

// CanonicalizeAngle returns theta folded into the half-open interval
// (-pi, pi]. The exact range matters: mirror computations below rely
// on it, including at the +/-pi boundary itself (theta = +/-pi must
// both canonicalize to +pi, never -pi). The original RobotPathfinder
// source carries two historical implementations of this; a naive
// theta - 2pi*floor((theta+pi)/(2pi)) gets the boundary wrong because
// floor((pi+pi)/(2pi)) lands on exactly 1, sending pi to -pi. This
// form folds into [0, 2pi) first and treats an exact-zero fold as a
// full turn, which keeps the upper endpoint closed.
func CanonicalizeAngle(theta float64) float64 {
	folded := math.Mod(theta+math.Pi, 2*math.Pi)
	if folded <= 0 {
		folded += 2 * math.Pi
	}
	return folded - math.Pi
}

// MirrorAngle reflects theta about the reference angle ref.
func MirrorAngle(theta, ref float64) float64 {
	return CanonicalizeAngle(2*ref - theta)
}

// LerpAngle interpolates from angle a to angle b by fraction f,
// always taking the short way around the circle.
func LerpAngle(a, b, f float64) float64 {
	diff := math.Mod(b-a, 2*math.Pi)
	diff = math.Mod(diff+3*math.Pi, 2*math.Pi) - math.Pi
	return CanonicalizeAngle(a + f*diff)
}

// LerpAngleVec lerps the Cartesian endpoints a and b by fraction f and
// returns atan2 of the result. Unlike LerpAngle it does not pick the
// short way around the circle by construction; callers use it to
// interpolate derivative directions, where the straight-line lerp of
// two nearby tangent vectors is itself the relevant geometric
// quantity. Only the direction of a and b is meaningful: neither is
// assumed to be exactly unit length.
func LerpAngleVec(a, b Vec2, f float64) float64 {
	l := Lerp(a, b, f)
	return math.Atan2(l.Y, l.X)
}

// Curvature returns the signed curvature of a parametric curve at a
// point given its first and second derivatives. The sign carries the
// turn direction: positive for a left (counter-clockwise) turn.
func Curvature(dx, ddx, dy, ddy float64) float64 {
	num := dx*ddy - dy*ddx
	denom := math.Pow(dx*dx+dy*dy, 1.5)
	return num / denom
}

// ClampAbs clamps x to magnitude m, preserving sign.
func ClampAbs(x, m float64) float64 {
	if x < 0 {
		return math.Max(x, -m)
	}
	return math.Min(x, m)
}
