package spline

import "go.viam.com/trajgen/geom"

// QuinticHermite is a quintic Hermite segment carrying six polynomial
// coefficients per axis, solved from endpoint position, velocity, and
// acceleration. StartT is the parameter (normally 0) the endpoint
// conditions at the "start" of the system are pinned to; it is
// nonzero when a segment is re-solved mid-flight (Path.Update).
type QuinticHermite struct {
	StartT float64
	// CX, CY are the six coefficients (c0..c5, Horner order) of the
	// polynomial p(u) = c0 + c1*u + c2*u^2 + ... + c5*u^5 for each axis.
	CX, CY [6]float64
}

// NewQuinticHermite solves the per-axis 6x6 coefficient system from
// boundary conditions p(startT)=p0, p'(startT)=v0, p''(startT)=a0,
// p(1)=p1, p'(1)=v1, p''(1)=a1, via Gauss-Jordan elimination.
func NewQuinticHermite(startT float64, p0, v0, a0, p1, v1, a1 geom.Vec2) (*QuinticHermite, error) {
	cx, err := solveQuinticAxis(startT, p0.X, v0.X, a0.X, p1.X, v1.X, a1.X)
	if err != nil {
		return nil, err
	}
	cy, err := solveQuinticAxis(startT, p0.Y, v0.Y, a0.Y, p1.Y, v1.Y, a1.Y)
	if err != nil {
		return nil, err
	}
	return &QuinticHermite{StartT: startT, CX: cx, CY: cy}, nil
}

// solveQuinticAxis builds the 6x7 augmented matrix for a single axis
// and solves it.
//
//	p(x)  = c0 + c1*x + c2*x^2 + c3*x^3 + c4*x^4 + c5*x^5  = p0
//	p'(x) =      c1   + 2c2*x  + 3c3*x^2 + 4c4*x^3 + 5c5*x^4 = v0
//	p''(x)=            2c2    + 6c3*x   + 12c4*x^2 + 20c5*x^3 = a0
//	p(1)  = c0+c1+c2+c3+c4+c5 = p1
//	p'(1) = c1+2c2+3c3+4c4+5c5 = v1
//	p''(1)= 2c2+6c3+12c4+20c5  = a1
func solveQuinticAxis(x, p0, v0, a0, p1, v1, a1 float64) ([6]float64, error) {
	var out [6]float64
	x2, x3, x4 := x*x, x*x*x, x*x*x*x

	data := []float64{
		1, x, x2, x3, x4, x4 * x, p0,
		0, 1, 2 * x, 3 * x2, 4 * x3, 5 * x4, v0,
		0, 0, 2, 6 * x, 12 * x2, 20 * x3, a0,
		1, 1, 1, 1, 1, 1, p1,
		0, 1, 2, 3, 4, 5, v1,
		0, 0, 2, 6, 12, 20, a1,
	}
	m := geom.NewMatrix(6, 7, data)
	sol, err := m.Eliminate()
	if err != nil {
		return out, err
	}
	copy(out[:], sol)
	return out, nil
}

func evalPoly(c [6]float64, u float64) float64 {
	// Horner's method.
	return c[0] + u*(c[1]+u*(c[2]+u*(c[3]+u*(c[4]+u*c[5]))))
}

func evalPolyDeriv(c [6]float64, u float64) float64 {
	return c[1] + u*(2*c[2]+u*(3*c[3]+u*(4*c[4]+u*5*c[5])))
}

func evalPolySecondDeriv(c [6]float64, u float64) float64 {
	return 2*c[2] + u*(6*c[3]+u*(12*c[4]+u*20*c[5]))
}

// At evaluates both axis polynomials at local parameter u.
func (q *QuinticHermite) At(u float64) geom.Vec2 {
	return geom.Vec2{X: evalPoly(q.CX, u), Y: evalPoly(q.CY, u)}
}

// DerivAt evaluates the first derivative at u.
func (q *QuinticHermite) DerivAt(u float64) geom.Vec2 {
	return geom.Vec2{X: evalPolyDeriv(q.CX, u), Y: evalPolyDeriv(q.CY, u)}
}

// SecondDerivAt evaluates the second derivative at u.
func (q *QuinticHermite) SecondDerivAt(u float64) geom.Vec2 {
	return geom.Vec2{X: evalPolySecondDeriv(q.CX, u), Y: evalPolySecondDeriv(q.CY, u)}
}
