package spline

import "go.viam.com/trajgen/geom"

// CubicHermite is a cubic Hermite segment carrying endpoint positions
// and endpoint tangents.
type CubicHermite struct {
	P0, P1 geom.Vec2
	M0, M1 geom.Vec2
}

// NewCubicHermite builds a CubicHermite segment.
func NewCubicHermite(p0, p1, m0, m1 geom.Vec2) *CubicHermite {
	return &CubicHermite{P0: p0, P1: p1, M0: m0, M1: m1}
}

// basis functions h00, h10, h01, h11 and their derivatives.
func h00(u float64) float64 { return 2*u*u*u - 3*u*u + 1 }
func h10(u float64) float64 { return u*u*u - 2*u*u + u }
func h01(u float64) float64 { return -2*u*u*u + 3*u*u }
func h11(u float64) float64 { return u*u*u - u*u }

func h00d(u float64) float64 { return 6*u*u - 6*u }
func h10d(u float64) float64 { return 3*u*u - 4*u + 1 }
func h01d(u float64) float64 { return -6*u*u + 6*u }
func h11d(u float64) float64 { return 3*u*u - 2*u }

func h00dd(u float64) float64 { return 12*u - 6 }
func h10dd(u float64) float64 { return 6*u - 4 }
func h01dd(u float64) float64 { return -12*u + 6 }
func h11dd(u float64) float64 { return 6*u - 2 }

// At evaluates the Hermite basis form.
func (c *CubicHermite) At(u float64) geom.Vec2 {
	a, b, cc, d := h00(u), h10(u), h01(u), h11(u)
	return geom.Vec2{
		X: a*c.P0.X + b*c.M0.X + cc*c.P1.X + d*c.M1.X,
		Y: a*c.P0.Y + b*c.M0.Y + cc*c.P1.Y + d*c.M1.Y,
	}
}

// DerivAt evaluates the first-derivative basis functions.
func (c *CubicHermite) DerivAt(u float64) geom.Vec2 {
	a, b, cc, d := h00d(u), h10d(u), h01d(u), h11d(u)
	return geom.Vec2{
		X: a*c.P0.X + b*c.M0.X + cc*c.P1.X + d*c.M1.X,
		Y: a*c.P0.Y + b*c.M0.Y + cc*c.P1.Y + d*c.M1.Y,
	}
}

// SecondDerivAt evaluates the second-derivative basis functions.
func (c *CubicHermite) SecondDerivAt(u float64) geom.Vec2 {
	a, b, cc, d := h00dd(u), h10dd(u), h01dd(u), h11dd(u)
	return geom.Vec2{
		X: a*c.P0.X + b*c.M0.X + cc*c.P1.X + d*c.M1.X,
		Y: a*c.P0.Y + b*c.M0.Y + cc*c.P1.Y + d*c.M1.Y,
	}
}
