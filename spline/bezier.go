package spline

import "go.viam.com/trajgen/geom"

// Bezier is a cubic Bezier segment carrying four control points.
type Bezier struct {
	P0, P1, P2, P3 geom.Vec2
}

// NewBezierFromHermite builds the Bezier control points equivalent to
// a cubic Hermite segment with endpoints p0, p1 and endpoint tangents
// m0, m1: p1 = p0 + m0/3, p2 = p3 - m1/3.
func NewBezierFromHermite(p0, p1, m0, m1 geom.Vec2) *Bezier {
	return &Bezier{
		P0: p0,
		P1: p0.Add(m0.Div(3)),
		P2: p1.Sub(m1.Div(3)),
		P3: p1,
	}
}

// At evaluates the standard cubic Bernstein form.
func (b *Bezier) At(u float64) geom.Vec2 {
	mu := 1 - u
	c0 := mu * mu * mu
	c1 := 3 * mu * mu * u
	c2 := 3 * mu * u * u
	c3 := u * u * u
	return geom.Vec2{
		X: c0*b.P0.X + c1*b.P1.X + c2*b.P2.X + c3*b.P3.X,
		Y: c0*b.P0.Y + c1*b.P1.Y + c2*b.P2.Y + c3*b.P3.Y,
	}
}

// DerivAt evaluates the cubic Bernstein first derivative.
func (b *Bezier) DerivAt(u float64) geom.Vec2 {
	mu := 1 - u
	c0 := 3 * mu * mu
	c1 := 6 * mu * u
	c2 := 3 * u * u
	return geom.Vec2{
		X: c0*(b.P1.X-b.P0.X) + c1*(b.P2.X-b.P1.X) + c2*(b.P3.X-b.P2.X),
		Y: c0*(b.P1.Y-b.P0.Y) + c1*(b.P2.Y-b.P1.Y) + c2*(b.P3.Y-b.P2.Y),
	}
}

// SecondDerivAt evaluates the cubic Bernstein second derivative.
func (b *Bezier) SecondDerivAt(u float64) geom.Vec2 {
	mu := 1 - u
	c0 := 6 * mu
	c1 := 6 * u
	ax := b.P2.X - 2*b.P1.X + b.P0.X
	ay := b.P2.Y - 2*b.P1.Y + b.P0.Y
	bx := b.P3.X - 2*b.P2.X + b.P1.X
	by := b.P3.Y - 2*b.P2.Y + b.P1.Y
	return geom.Vec2{
		X: c0*ax + c1*bx,
		Y: c0*ay + c1*by,
	}
}
