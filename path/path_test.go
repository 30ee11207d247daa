package path

import (
	"math"
	"testing"

	"go.viam.com/test"
	"go.viam.com/trajgen/geom"
)

func straightWaypoints() []Waypoint {
	return []Waypoint{
		NewWaypoint(0, 0, 0),
		NewWaypoint(10, 0, 0),
	}
}

func TestBuildRequiresTwoWaypoints(t *testing.T) {
	_, err := Build([]Waypoint{NewWaypoint(0, 0, 0)}, 5, Bezier, nil)
	test.That(t, err, test.ShouldNotBeNil)
}

func TestEndpointsMatchWaypoints(t *testing.T) {
	for _, typ := range []Type{Bezier, CubicHermite, QuinticHermite} {
		p, err := Build(straightWaypoints(), 5, typ, nil)
		test.That(t, err, test.ShouldBeNil)
		start := p.At(0)
		end := p.At(1)
		test.That(t, math.Abs(start.X) < 1e-9, test.ShouldBeTrue)
		test.That(t, math.Abs(start.Y) < 1e-9, test.ShouldBeTrue)
		test.That(t, math.Abs(end.X-10) < 1e-9, test.ShouldBeTrue)
		test.That(t, math.Abs(end.Y) < 1e-9, test.ShouldBeTrue)
	}
}

func TestDerivAtOriginMatchesHeading(t *testing.T) {
	p, err := Build(straightWaypoints(), 5, Bezier, nil)
	test.That(t, err, test.ShouldBeNil)
	d := p.DerivAt(0)
	test.That(t, math.Abs(d.Mag()-5) < 1e-9, test.ShouldBeTrue)
	test.That(t, d.Y, test.ShouldEqual, 0.0)
	test.That(t, d.X > 0, test.ShouldBeTrue)
}

func TestComputeLenTableInvariants(t *testing.T) {
	p, err := Build(straightWaypoints(), 5, Bezier, nil)
	test.That(t, err, test.ShouldBeNil)
	err = p.ComputeLen(101)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, p.s2tTable[0].D, test.ShouldEqual, 0.0)
	test.That(t, p.s2tTable[0].T, test.ShouldEqual, 0.0)
	last := p.s2tTable[len(p.s2tTable)-1]
	test.That(t, math.Abs(last.T-1) < 1e-9, test.ShouldBeTrue)
	test.That(t, math.Abs(last.D-p.totalLen) < 1e-9, test.ShouldBeTrue)
	for i := 1; i < len(p.s2tTable); i++ {
		test.That(t, p.s2tTable[i].D >= p.s2tTable[i-1].D, test.ShouldBeTrue)
		test.That(t, p.s2tTable[i].T >= p.s2tTable[i-1].T, test.ShouldBeTrue)
	}
}

func TestS2TT2SRoundTrip(t *testing.T) {
	p, err := Build(straightWaypoints(), 5, QuinticHermite, nil)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, p.ComputeLen(201), test.ShouldBeNil)

	for _, s := range []float64{0, 0.1, 0.33, 0.5, 0.9, 1.0} {
		tt, err := p.S2T(s)
		test.That(t, err, test.ShouldBeNil)
		back, err := p.T2S(tt)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, math.Abs(back-s) < 1e-3, test.ShouldBeTrue)
	}
}

func TestS2TBeforeComputeLenFails(t *testing.T) {
	p, err := Build(straightWaypoints(), 5, Bezier, nil)
	test.That(t, err, test.ShouldBeNil)
	_, err = p.S2T(0.5)
	test.That(t, err, test.ShouldNotBeNil)
}

func TestWheelsAtStraightLine(t *testing.T) {
	p, err := Build(straightWaypoints(), 5, Bezier, nil)
	test.That(t, err, test.ShouldBeNil)
	p.SetBase(0.5)
	left, right := p.WheelsAt(0)
	// heading 0: offset is (-sin0, cos0)*0.5 = (0, 0.5)
	test.That(t, math.Abs(left.X-0) < 1e-9, test.ShouldBeTrue)
	test.That(t, math.Abs(left.Y-0.5) < 1e-9, test.ShouldBeTrue)
	test.That(t, math.Abs(right.X-0) < 1e-9, test.ShouldBeTrue)
	test.That(t, math.Abs(right.Y+0.5) < 1e-9, test.ShouldBeTrue)
}

func TestMirrorLRPreservesFirstWaypoint(t *testing.T) {
	wps := []Waypoint{
		NewWaypoint(0, 0, 0),
		NewWaypoint(10, 5, math.Pi/4),
	}
	p, err := Build(wps, 5, Bezier, nil)
	test.That(t, err, test.ShouldBeNil)
	m, err := p.MirrorLR()
	test.That(t, err, test.ShouldBeNil)
	mw := m.GetWaypoints()
	test.That(t, math.Abs(mw[0].X) < 1e-9, test.ShouldBeTrue)
	test.That(t, math.Abs(mw[0].Y) < 1e-9, test.ShouldBeTrue)
}

func TestMirrorLRTwiceIsIdentity(t *testing.T) {
	wps := []Waypoint{
		NewWaypoint(0, 0, 0.3),
		NewWaypoint(10, 5, math.Pi/4),
	}
	p, err := Build(wps, 5, Bezier, nil)
	test.That(t, err, test.ShouldBeNil)
	m1, err := p.MirrorLR()
	test.That(t, err, test.ShouldBeNil)
	m2, err := m1.MirrorLR()
	test.That(t, err, test.ShouldBeNil)
	orig := p.GetWaypoints()
	back := m2.GetWaypoints()
	for i := range orig {
		test.That(t, math.Abs(orig[i].X-back[i].X) < 1e-6, test.ShouldBeTrue)
		test.That(t, math.Abs(orig[i].Y-back[i].Y) < 1e-6, test.ShouldBeTrue)
		test.That(t, math.Abs(orig[i].Heading-back[i].Heading) < 1e-6, test.ShouldBeTrue)
	}
}

func TestMirrorFBFlipsBackwards(t *testing.T) {
	p, err := Build(straightWaypoints(), 5, Bezier, nil)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, p.GetBackwards(), test.ShouldBeFalse)
	m, err := p.MirrorFB()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, m.GetBackwards(), test.ShouldBeTrue)
}

func TestRetraceReversesAndFlipsBackwards(t *testing.T) {
	wps := []Waypoint{
		NewWaypoint(0, 0, 0),
		NewWaypoint(10, 0, 0),
	}
	p, err := Build(wps, 5, Bezier, nil)
	test.That(t, err, test.ShouldBeNil)
	r, err := p.Retrace()
	test.That(t, err, test.ShouldBeNil)
	rw := r.GetWaypoints()
	test.That(t, rw[0].X, test.ShouldEqual, 10.0)
	test.That(t, rw[1].X, test.ShouldEqual, 0.0)
	test.That(t, math.Abs(rw[0].Heading-math.Pi) < 1e-9, test.ShouldBeTrue)
	test.That(t, r.GetBackwards(), test.ShouldBeTrue)
}

func TestUpdateRequiresSingleSegmentQuintic(t *testing.T) {
	p, err := Build(straightWaypoints(), 5, Bezier, nil)
	test.That(t, err, test.ShouldBeNil)
	err = p.Update(0.5, geom.Vec2{}, geom.Vec2{}, geom.Vec2{})
	test.That(t, err, test.ShouldNotBeNil)

	multi, err := Build([]Waypoint{
		NewWaypoint(0, 0, 0),
		NewWaypoint(5, 0, 0),
		NewWaypoint(10, 0, 0),
	}, 5, QuinticHermite, nil)
	test.That(t, err, test.ShouldBeNil)
	err = multi.Update(0.5, geom.Vec2{}, geom.Vec2{}, geom.Vec2{})
	test.That(t, err, test.ShouldNotBeNil)
}

func TestUpdatePinsNewStateKeepsEndpoint(t *testing.T) {
	p, err := Build(straightWaypoints(), 5, QuinticHermite, nil)
	test.That(t, err, test.ShouldBeNil)
	endBefore := p.At(1)

	newPos := geom.Vec2{X: 3, Y: 1}
	newVel := geom.Vec2{X: 4, Y: 0}
	newAccel := geom.Vec2{X: 0, Y: 0}
	err = p.Update(0.3, newPos, newVel, newAccel)
	test.That(t, err, test.ShouldBeNil)

	got := p.At(0.3)
	test.That(t, math.Abs(got.X-newPos.X) < 1e-6, test.ShouldBeTrue)
	test.That(t, math.Abs(got.Y-newPos.Y) < 1e-6, test.ShouldBeTrue)

	endAfter := p.At(1)
	test.That(t, math.Abs(endAfter.X-endBefore.X) < 1e-6, test.ShouldBeTrue)
	test.That(t, math.Abs(endAfter.Y-endBefore.Y) < 1e-6, test.ShouldBeTrue)
}
