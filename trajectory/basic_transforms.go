package trajectory

import (
	"math"

	"go.viam.com/trajgen/geom"
	pathpkg "go.viam.com/trajgen/path"
)

// MirrorLR returns a new BasicTrajectory over a left-right-mirrored
// Path. Position, velocity, and acceleration are unchanged; heading is
// mirrored about waypoint 0's original heading. This reuses the
// already-solved moments rather than re-running the solver.
func (bt *BasicTrajectory) MirrorLR() (*BasicTrajectory, error) {
	newPath, err := bt.path.MirrorLR()
	if err != nil {
		return nil, err
	}
	wp0 := bt.path.GetWaypoints()[0]

	moments := make([]BasicMoment, len(bt.moments))
	for i, m := range bt.moments {
		moments[i] = BasicMoment{
			Pos:        m.Pos,
			Vel:        m.Vel,
			Accel:      m.Accel,
			Heading:    geom.MirrorAngle(m.Heading, wp0.Heading),
			Time:       m.Time,
			InitFacing: wp0.Heading,
			Backwards:  m.Backwards,
		}
	}
	return bt.derived(newPath, moments, wp0.Heading, bt.backwards), nil
}

// MirrorFB returns a new BasicTrajectory over a front-back-mirrored
// Path. Position and velocity are negated, acceleration is unchanged,
// heading is mirrored about waypoint 0's heading plus pi/2, and
// Backwards is flipped.
func (bt *BasicTrajectory) MirrorFB() (*BasicTrajectory, error) {
	newPath, err := bt.path.MirrorFB()
	if err != nil {
		return nil, err
	}
	wp0 := bt.path.GetWaypoints()[0]
	ref := wp0.Heading + math.Pi/2

	moments := make([]BasicMoment, len(bt.moments))
	for i, m := range bt.moments {
		moments[i] = BasicMoment{
			Pos:        -m.Pos,
			Vel:        -m.Vel,
			Accel:      m.Accel,
			Heading:    geom.MirrorAngle(m.Heading, ref),
			Time:       m.Time,
			InitFacing: wp0.Heading,
			Backwards:  !m.Backwards,
		}
	}
	return bt.derived(newPath, moments, wp0.Heading, !bt.backwards), nil
}

// Retrace returns a new BasicTrajectory that plays the source
// trajectory backwards: moment order is reversed, position is
// reflected about the source's end position, velocity is negated,
// acceleration is unchanged (the sign flips from reversed time and
// reversed position cancel), heading is negated, Backwards is flipped,
// and the time axis runs from 0 to the source's total time.
func (bt *BasicTrajectory) Retrace() (*BasicTrajectory, error) {
	newPath, err := bt.path.Retrace()
	if err != nil {
		return nil, err
	}
	waypoints := bt.path.GetWaypoints()
	wpLast := waypoints[len(waypoints)-1]

	n := len(bt.moments)
	lastPos := bt.moments[n-1].Pos
	totalTime := bt.TotalTime()

	moments := make([]BasicMoment, n)
	for i := 0; i < n; i++ {
		src := bt.moments[n-1-i]
		moments[i] = BasicMoment{
			Pos:        -(lastPos - src.Pos),
			Vel:        -src.Vel,
			Accel:      src.Accel,
			Heading:    -src.Heading,
			Time:       totalTime - src.Time,
			InitFacing: wpLast.Heading,
			Backwards:  !src.Backwards,
		}
	}
	return bt.derived(newPath, moments, wpLast.Heading, !bt.backwards), nil
}

// derived builds a new BasicTrajectory sharing this one's specs,
// params, logger, and sample-indexed side tables: a mirror or retrace
// changes what a sample means, not how many samples there are or at
// what path parameter each one sits, so path_t and path_r carry over
// unchanged (path_r is recomputed sign-for-sign by the curvature
// formula on the mirrored path, but its magnitude at each sample index
// is identical, and TankDriveTrajectory.FromBasic only ever reads it
// through that same indexing).
func (bt *BasicTrajectory) derived(newPath *pathpkg.Path, moments []BasicMoment, initFacing float64, backwards bool) *BasicTrajectory {
	return &BasicTrajectory{
		path:       newPath,
		moments:    moments,
		specs:      bt.specs,
		params:     bt.params,
		initFacing: initFacing,
		backwards:  backwards,
		pathT:      bt.pathT,
		pathR:      bt.pathR,
		logger:     bt.logger,
	}
}
