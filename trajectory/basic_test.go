package trajectory

import (
	"math"
	"testing"

	"go.viam.com/test"

	"go.viam.com/trajgen/path"
)

func straightSpecs() RobotSpecs {
	return RobotSpecs{MaxV: 2, MaxA: 1, BaseWidth: NoBaseWidth}
}

func straightParams(n int) TrajectoryParams {
	return TrajectoryParams{
		Waypoints: []path.Waypoint{
			path.NewWaypoint(0, 0, 0),
			path.NewWaypoint(10, 0, 0),
		},
		Alpha:       5,
		SampleCount: n,
		IsTank:      false,
		Type:        path.Bezier,
	}
}

func TestNewBasicTrajectoryRequiresValidParams(t *testing.T) {
	_, err := NewBasicTrajectory(straightSpecs(), TrajectoryParams{
		Waypoints:   []path.Waypoint{path.NewWaypoint(0, 0, 0)},
		SampleCount: 10,
	}, nil)
	test.That(t, err, test.ShouldNotBeNil)
}

func TestStraightLineTrapezoidalProfile(t *testing.T) {
	bt, err := NewBasicTrajectory(straightSpecs(), straightParams(201), nil)
	test.That(t, err, test.ShouldBeNil)

	moments := bt.GetMoments()
	test.That(t, moments[0].Vel, test.ShouldEqual, 0.0)
	test.That(t, moments[len(moments)-1].Vel, test.ShouldEqual, 0.0)

	maxVel := 0.0
	for _, m := range moments {
		if m.Vel > maxVel {
			maxVel = m.Vel
		}
		test.That(t, m.Vel <= 2.0+1e-9, test.ShouldBeTrue)
	}
	test.That(t, math.Abs(maxVel-2.0) < 1e-6, test.ShouldBeTrue)
}

func TestShortLineNeverReachesMaxV(t *testing.T) {
	params := straightParams(51)
	params.Waypoints = []path.Waypoint{
		path.NewWaypoint(0, 0, 0),
		path.NewWaypoint(0.5, 0, 0),
	}
	bt, err := NewBasicTrajectory(straightSpecs(), params, nil)
	test.That(t, err, test.ShouldBeNil)

	for _, m := range bt.GetMoments() {
		test.That(t, m.Vel < 2.0, test.ShouldBeTrue)
	}
}

func TestMiddleWaypointVelocityConstraintHonored(t *testing.T) {
	params := straightParams(201)
	params.Waypoints = []path.Waypoint{
		path.NewWaypoint(0, 0, 0),
		path.NewConstrainedWaypoint(5, 0, 0, 0.5),
		path.NewWaypoint(10, 0, 0),
	}
	bt, err := NewBasicTrajectory(straightSpecs(), params, nil)
	test.That(t, err, test.ShouldBeNil)

	moments := bt.GetMoments()
	closest := 0
	for i, m := range moments {
		if math.Abs(m.Pos-5) < math.Abs(moments[closest].Pos-5) {
			closest = i
		}
	}
	test.That(t, math.Abs(moments[closest].Vel-0.5) < 0.05, test.ShouldBeTrue)
}

func TestInfeasibleConstraintRejected(t *testing.T) {
	// Reaching 1.0 at the middle waypoint from rest would need far more
	// than max_a=0.01 over the 5 units before it.
	specs := RobotSpecs{MaxV: 3, MaxA: 0.01, BaseWidth: NoBaseWidth}
	params := straightParams(11)
	params.Waypoints = []path.Waypoint{
		path.NewWaypoint(0, 0, 0),
		path.NewConstrainedWaypoint(5, 0, 0, 1.0),
		path.NewWaypoint(10, 0, 0),
	}
	_, err := NewBasicTrajectory(specs, params, nil)
	test.That(t, err, test.ShouldNotBeNil)
}

func TestFirstWaypointConstraintInfeasibleOnDecelerationRejected(t *testing.T) {
	// Stopping at 0.5m from v=2 under max_a=1 needs a = v^2/(2*d) = 4,
	// which exceeds max_a: the first waypoint's own constraint must be
	// honored, not silently relaxed by the backward pass.
	specs := RobotSpecs{MaxV: 10, MaxA: 1, BaseWidth: NoBaseWidth}
	params := TrajectoryParams{
		Waypoints: []path.Waypoint{
			path.NewConstrainedWaypoint(0, 0, 0, 2),
			path.NewWaypoint(0.5, 0, 0),
		},
		Alpha:       0.25,
		SampleCount: 21,
		IsTank:      false,
		Type:        path.Bezier,
	}
	_, err := NewBasicTrajectory(specs, params, nil)
	test.That(t, err, test.ShouldNotBeNil)
}

func TestGetInterpolatesBetweenMoments(t *testing.T) {
	bt, err := NewBasicTrajectory(straightSpecs(), straightParams(201), nil)
	test.That(t, err, test.ShouldBeNil)
	total := bt.TotalTime()
	m := bt.Get(total / 2)
	test.That(t, m.Time, test.ShouldEqual, total/2)
	test.That(t, m.Pos > 0 && m.Pos < 10, test.ShouldBeTrue)
}

func TestGetPosMatchesPathEndpoints(t *testing.T) {
	bt, err := NewBasicTrajectory(straightSpecs(), straightParams(201), nil)
	test.That(t, err, test.ShouldBeNil)
	start := bt.GetPos(0)
	test.That(t, math.Abs(start.X) < 1e-6, test.ShouldBeTrue)
	end := bt.GetPos(bt.TotalTime())
	test.That(t, math.Abs(end.X-10) < 1e-6, test.ShouldBeTrue)
}

func TestMirrorLRKeepsSpeedProfile(t *testing.T) {
	bt, err := NewBasicTrajectory(straightSpecs(), straightParams(101), nil)
	test.That(t, err, test.ShouldBeNil)
	m, err := bt.MirrorLR()
	test.That(t, err, test.ShouldBeNil)
	orig := bt.GetMoments()
	mir := m.GetMoments()
	for i := range orig {
		test.That(t, math.Abs(orig[i].Vel-mir[i].Vel) < 1e-9, test.ShouldBeTrue)
	}
}

func TestMirrorFBFlipsBackwardsAndSign(t *testing.T) {
	bt, err := NewBasicTrajectory(straightSpecs(), straightParams(101), nil)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, bt.backwards, test.ShouldBeFalse)
	m, err := bt.MirrorFB()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, m.backwards, test.ShouldBeTrue)

	orig := bt.GetMoments()
	mir := m.GetMoments()
	for i := range orig {
		test.That(t, math.Abs(orig[i].Vel+mir[i].Vel) < 1e-9, test.ShouldBeTrue)
	}
}

func TestRetraceSymmetry(t *testing.T) {
	bt, err := NewBasicTrajectory(straightSpecs(), straightParams(101), nil)
	test.That(t, err, test.ShouldBeNil)
	r, err := bt.Retrace()
	test.That(t, err, test.ShouldBeNil)

	test.That(t, math.Abs(r.TotalTime()-bt.TotalTime()) < 1e-6, test.ShouldBeTrue)
	test.That(t, r.backwards, test.ShouldBeTrue)

	orig := bt.GetMoments()
	back := r.GetMoments()
	n := len(orig)
	for i := 0; i < n; i++ {
		test.That(t, math.Abs(orig[i].Vel-(-back[n-1-i].Vel)) < 1e-6, test.ShouldBeTrue)
	}
}
