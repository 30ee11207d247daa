package trajectory

import (
	"math"

	"go.uber.org/zap"

	"go.viam.com/trajgen/geom"
	"go.viam.com/trajgen/path"
	"go.viam.com/trajgen/trajerr"
)

// GenerateRotationTank synthesizes a tank trajectory that rotates the
// chassis in place by angle radians (positive counter-clockwise)
// without translating it: a straight Bezier path of length
// |angle|*base_radius is generated and projected to wheels, then
// post-processed so one wheel's track runs forward and the other
// runs the equivalent arc backward, and heading is derived from
// wheel arc length instead of the underlying (degenerate, zero-
// curvature) path heading.
func GenerateRotationTank(maxV, maxA, baseWidth, angle float64, logger *zap.SugaredLogger) (*TankDriveTrajectory, error) {
	if baseWidth <= 0 {
		return nil, trajerr.New(trajerr.InvalidInput, "generate_rotation_tank requires base_width > 0, got %v", baseWidth)
	}
	baseRadius := baseWidth / 2
	arcLen := math.Abs(angle) * baseRadius
	if arcLen == 0 {
		return nil, trajerr.New(trajerr.InvalidInput, "generate_rotation_tank requires a nonzero angle")
	}

	waypoints := []path.Waypoint{
		path.NewWaypoint(0, 0, 0),
		path.NewWaypoint(arcLen, 0, 0),
	}
	params := TrajectoryParams{
		Waypoints:   waypoints,
		Alpha:       arcLen / 2,
		SampleCount: 201,
		IsTank:      true,
		Type:        path.Bezier,
	}
	specs := RobotSpecs{MaxV: maxV, MaxA: maxA, BaseWidth: baseWidth}

	basic, err := NewBasicTrajectory(specs, params, logger)
	if err != nil {
		return nil, err
	}
	tt, err := FromBasic(basic)
	if err != nil {
		return nil, err
	}

	initFacing := basic.initFacing
	for i := range tt.moments {
		m := &tt.moments[i]
		if angle > 0 {
			m.LPos, m.LVel, m.LAccel = -m.LPos, -m.LVel, -m.LAccel
			m.Heading = geom.CanonicalizeAngle(m.RPos/baseRadius + initFacing)
		} else {
			m.RPos, m.RVel, m.RAccel = -m.RPos, -m.RVel, -m.RAccel
			m.Heading = geom.CanonicalizeAngle(-m.LPos/baseRadius + initFacing)
		}
		m.InitFacing = initFacing
	}

	if logger != nil {
		logger.Debugw("generated in-place rotation", "angle", angle, "base_width", baseWidth, "total_time", tt.TotalTime())
	}
	return tt, nil
}
