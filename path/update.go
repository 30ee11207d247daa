package path

import (
	"go.viam.com/trajgen/geom"
	"go.viam.com/trajgen/spline"
	"go.viam.com/trajgen/trajerr"
)

// Update re-solves segment 0 in place as a fresh quintic Hermite
// segment pinned at parameter t (as its start_t) to state (pos, vel,
// accel), keeping its far endpoint (position, velocity, acceleration
// at u=1) unchanged. Valid only for single-segment quintic paths with
// t in [0, 1].
func (p *Path) Update(t float64, pos, vel, accel geom.Vec2) error {
	if p.typ != QuinticHermite {
		return trajerr.New(trajerr.InvalidInput, "update requires a quintic path, got %v", p.typ)
	}
	if len(p.segments) != 1 {
		return trajerr.New(trajerr.InvalidInput, "update requires a single-segment path, got %d segments", len(p.segments))
	}
	if t < 0 || t > 1 {
		return trajerr.New(trajerr.InvalidInput, "update requires t in [0, 1], got %v", t)
	}
	q, ok := p.segments[0].(*spline.QuinticHermite)
	if !ok {
		return trajerr.New(trajerr.InvalidInput, "segment 0 is not a quintic Hermite segment")
	}
	p1 := q.At(1)
	v1 := q.DerivAt(1)
	a1 := q.SecondDerivAt(1)
	fresh, err := spline.NewQuinticHermite(t, pos, vel, accel, p1, v1, a1)
	if err != nil {
		return err
	}
	p.segments[0] = fresh
	return nil
}
