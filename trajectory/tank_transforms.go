package trajectory

import (
	"math"

	"go.viam.com/trajgen/geom"
	pathpkg "go.viam.com/trajgen/path"
)

// MirrorLR returns a new TankDriveTrajectory over a left-right-mirrored
// Path with left and right wheel quantities swapped: the mirror maps
// the left wheel's track onto what was the right wheel's track.
func (tt *TankDriveTrajectory) MirrorLR() (*TankDriveTrajectory, error) {
	newPath, err := tt.path.MirrorLR()
	if err != nil {
		return nil, err
	}
	wp0 := tt.path.GetWaypoints()[0]

	moments := make([]TankDriveMoment, len(tt.moments))
	for i, m := range tt.moments {
		moments[i] = TankDriveMoment{
			LPos: m.RPos, RPos: m.LPos,
			LVel: m.RVel, RVel: m.LVel,
			LAccel: m.RAccel, RAccel: m.LAccel,
			Heading:    geom.MirrorAngle(m.Heading, wp0.Heading),
			Time:       m.Time,
			InitFacing: m.InitFacing,
			Backwards:  m.Backwards,
		}
	}
	return tt.derived(newPath, moments), nil
}

// MirrorFB returns a new TankDriveTrajectory over a front-back-mirrored
// Path with every wheel quantity (position, velocity, acceleration)
// negated and Backwards flipped.
func (tt *TankDriveTrajectory) MirrorFB() (*TankDriveTrajectory, error) {
	newPath, err := tt.path.MirrorFB()
	if err != nil {
		return nil, err
	}
	wp0 := tt.path.GetWaypoints()[0]
	ref := geom.CanonicalizeAngle(wp0.Heading + math.Pi/2)

	moments := make([]TankDriveMoment, len(tt.moments))
	for i, m := range tt.moments {
		moments[i] = TankDriveMoment{
			LPos: -m.LPos, RPos: -m.RPos,
			LVel: -m.LVel, RVel: -m.RVel,
			LAccel: -m.LAccel, RAccel: -m.RAccel,
			Heading:    geom.MirrorAngle(m.Heading, ref),
			Time:       m.Time,
			InitFacing: m.InitFacing,
			Backwards:  !m.Backwards,
		}
	}
	return tt.derived(newPath, moments), nil
}

// Retrace returns a new TankDriveTrajectory that plays the source
// backwards: moment order is reversed, wheel positions are reflected
// about each track's end position, wheel velocities are negated, wheel
// accelerations are unchanged (backwards-flag negation and reversed-
// time negation cancel), heading is negated, and Backwards is flipped.
func (tt *TankDriveTrajectory) Retrace() (*TankDriveTrajectory, error) {
	newPath, err := tt.path.Retrace()
	if err != nil {
		return nil, err
	}
	waypoints := tt.path.GetWaypoints()
	wpLast := waypoints[len(waypoints)-1]

	n := len(tt.moments)
	lastL, lastR := tt.moments[n-1].LPos, tt.moments[n-1].RPos
	totalTime := tt.TotalTime()

	moments := make([]TankDriveMoment, n)
	for i := 0; i < n; i++ {
		src := tt.moments[n-1-i]
		moments[i] = TankDriveMoment{
			LPos: -(lastL - src.LPos), RPos: -(lastR - src.RPos),
			LVel: -src.LVel, RVel: -src.RVel,
			LAccel: src.LAccel, RAccel: src.RAccel,
			Heading:    -src.Heading,
			Time:       totalTime - src.Time,
			InitFacing: wpLast.Heading,
			Backwards:  !src.Backwards,
		}
	}
	return tt.derived(newPath, moments), nil
}

func (tt *TankDriveTrajectory) derived(newPath *pathpkg.Path, moments []TankDriveMoment) *TankDriveTrajectory {
	return &TankDriveTrajectory{
		path:    newPath,
		moments: moments,
		specs:   tt.specs,
		params:  tt.params,
		pathT:   tt.pathT,
	}
}
