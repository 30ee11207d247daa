package trajectory

import (
	"math"
	"sort"

	"go.viam.com/trajgen/geom"
	pathpkg "go.viam.com/trajgen/path"
	"go.viam.com/trajgen/trajerr"
)

// TankDriveMoment is a single sample along a TankDriveTrajectory's time
// axis: the BasicMoment's center-line schedule projected onto the left
// and right wheel tracks.
type TankDriveMoment struct {
	LPos       float64
	RPos       float64
	LVel       float64
	RVel       float64
	LAccel     float64
	RAccel     float64
	Heading    float64
	Time       float64
	InitFacing float64
	Backwards  bool
}

// EffectiveFacing returns -Heading when Backwards, else Heading, the
// same rule BasicMoment uses.
func (m TankDriveMoment) EffectiveFacing() float64 {
	if m.Backwards {
		return -m.Heading
	}
	return m.Heading
}

// TankDriveTrajectory projects a BasicTrajectory's center-line velocity
// profile onto the two wheel tracks by integrating wheel arc length
// along the path's offset curves (Path.WheelsAt).
type TankDriveTrajectory struct {
	path    *pathpkg.Path
	moments []TankDriveMoment
	specs   RobotSpecs
	params  TrajectoryParams
	pathT   []float64
}

// FromBasic projects basic's center-line schedule onto left/right wheel
// tracks. basic.IsTank() must be true (its Path carries the base radius
// needed for the offset curves).
func FromBasic(basic *BasicTrajectory) (*TankDriveTrajectory, error) {
	if !basic.IsTank() {
		return nil, trajerr.New(trajerr.InvalidInput, "from_basic requires a trajectory built with is_tank=true")
	}

	p := basic.path
	n := len(basic.moments)
	moments := make([]TankDriveMoment, n)

	baseRadius := basic.specs.BaseWidth / 2

	v0 := basic.moments[0].Vel
	var l0, r0 float64
	if basic.params.Waypoints[0].HasVelocity() {
		d := v0 / basic.pathR[0] * baseRadius
		l0, r0 = v0-d, v0+d
	}
	moments[0] = TankDriveMoment{
		LPos: 0, RPos: 0,
		LVel: l0, RVel: r0,
		Heading: basic.moments[0].Heading,
		Time:    0,
	}

	prevL, prevR := p.WheelsAt(basic.pathT[0])
	for i := 1; i < n; i++ {
		curL, curR := p.WheelsAt(basic.pathT[i])
		dl := prevL.Dist(curL)
		dr := prevR.Dist(curR)

		v := basic.moments[i].Vel
		d := v / basic.pathR[i] * baseRadius
		lv, rv := v-d, v+d
		if lv < 0 {
			dl = -dl
		}
		if rv < 0 {
			dr = -dr
		}

		dt := basic.moments[i].Time - basic.moments[i-1].Time

		moments[i] = TankDriveMoment{
			LPos:    moments[i-1].LPos + dl,
			RPos:    moments[i-1].RPos + dr,
			LVel:    lv,
			RVel:    rv,
			Heading: basic.moments[i].Heading,
			Time:    basic.moments[i].Time,
		}
		if dt != 0 {
			moments[i-1].LAccel = (lv - moments[i-1].LVel) / dt
			moments[i-1].RAccel = (rv - moments[i-1].RVel) / dt
		}

		prevL, prevR = curL, curR
	}

	initFacing := basic.initFacing
	for i := range moments {
		moments[i].InitFacing = initFacing
		moments[i].Backwards = basic.backwards
	}

	return &TankDriveTrajectory{
		path:    p,
		moments: moments,
		specs:   basic.specs,
		params:  basic.params,
		pathT:   basic.pathT,
	}, nil
}

// GetPath returns the Path this trajectory was projected over.
func (tt *TankDriveTrajectory) GetPath() *pathpkg.Path {
	return tt.path
}

// GetMoments returns a copy of the trajectory's moment schedule.
func (tt *TankDriveTrajectory) GetMoments() []TankDriveMoment {
	return append([]TankDriveMoment(nil), tt.moments...)
}

// TotalTime returns the time of the trajectory's last moment.
func (tt *TankDriveTrajectory) TotalTime() float64 {
	return tt.moments[len(tt.moments)-1].Time
}

func (tt *TankDriveTrajectory) locate(t float64) (idx int, frac float64) {
	n := len(tt.moments)
	if t <= tt.moments[0].Time {
		return 0, 0
	}
	if t >= tt.moments[n-1].Time {
		return n - 1, 0
	}
	i := sort.Search(n, func(i int) bool { return tt.moments[i].Time > t })
	lo, hi := tt.moments[i-1], tt.moments[i]
	if hi.Time == lo.Time {
		return i - 1, 0
	}
	return i - 1, (t - lo.Time) / (hi.Time - lo.Time)
}

// Get returns the interpolated moment at time t, clamping to the first
// or last moment when t falls outside the trajectory's time range.
func (tt *TankDriveTrajectory) Get(t float64) TankDriveMoment {
	idx, frac := tt.locate(t)
	if frac == 0 {
		return tt.moments[idx]
	}
	lo, hi := tt.moments[idx], tt.moments[idx+1]
	dirLo := geom.Vec2{X: math.Cos(lo.Heading), Y: math.Sin(lo.Heading)}
	dirHi := geom.Vec2{X: math.Cos(hi.Heading), Y: math.Sin(hi.Heading)}
	return TankDriveMoment{
		LPos:       lo.LPos + (hi.LPos-lo.LPos)*frac,
		RPos:       lo.RPos + (hi.RPos-lo.RPos)*frac,
		LVel:       lo.LVel + (hi.LVel-lo.LVel)*frac,
		RVel:       lo.RVel + (hi.RVel-lo.RVel)*frac,
		LAccel:     lo.LAccel + (hi.LAccel-lo.LAccel)*frac,
		RAccel:     lo.RAccel + (hi.RAccel-lo.RAccel)*frac,
		Heading:    geom.LerpAngleVec(dirLo, dirHi, frac),
		Time:       t,
		InitFacing: lo.InitFacing,
		Backwards:  lo.Backwards,
	}
}

// GetPos resolves t to a fractional path parameter via the shared
// path_t table and returns the corresponding center-line Waypoint.
func (tt *TankDriveTrajectory) GetPos(t float64) pathpkg.Waypoint {
	idx, frac := tt.locate(t)
	nextIdx := idx
	if idx < len(tt.pathT)-1 {
		nextIdx = idx + 1
	}
	pt := tt.pathT[idx] + (tt.pathT[nextIdx]-tt.pathT[idx])*frac
	pos := tt.path.At(pt)
	d := tt.path.DerivAt(pt)
	heading := math.Atan2(d.Y, d.X)
	vel := (tt.moments[idx].LVel+tt.moments[idx].RVel)/2 +
		((tt.moments[nextIdx].LVel+tt.moments[nextIdx].RVel)/2-(tt.moments[idx].LVel+tt.moments[idx].RVel)/2)*frac
	return pathpkg.Waypoint{X: pos.X, Y: pos.Y, Heading: heading, Velocity: vel}
}
