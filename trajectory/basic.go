package trajectory

import (
	"math"
	"sort"

	"go.uber.org/zap"

	"go.viam.com/trajgen/geom"
	pathpkg "go.viam.com/trajgen/path"
	"go.viam.com/trajgen/trajerr"
)

// BasicTrajectory is the velocity-profile solver over an
// arc-length-uniform sampling of a Path: a two-pass (forward-
// accelerate / backward-decelerate) generator that respects per-sample
// speed caps, the global acceleration cap, and per-waypoint velocity
// constraints, then integrates a time axis.
type BasicTrajectory struct {
	path       *pathpkg.Path
	moments    []BasicMoment
	specs      RobotSpecs
	params     TrajectoryParams
	initFacing float64
	backwards  bool

	// pathT is shared with any TankDriveTrajectory derived from this
	// BasicTrajectory via FromBasic (which also reads pathR while
	// projecting), and both tables are shared with any mirrored or
	// retraced BasicTrajectory, so neither forces a rebuild of these
	// tables. Plain slices are enough:
	// both are immutable after NewBasicTrajectory returns, and Go's GC
	// handles the shared-ownership bookkeeping a refcounted pointer
	// would otherwise need.
	pathT []float64
	pathR []float64

	logger *zap.SugaredLogger
}

type velocityConstraint struct {
	distance float64
	velocity float64
}

// NewBasicTrajectory builds a Path from params.Waypoints and solves a
// velocity profile over sample_count arc-length-uniform samples under
// specs's kinematic limits. A nil logger is a documented no-op.
func NewBasicTrajectory(specs RobotSpecs, params TrajectoryParams, logger *zap.SugaredLogger) (*BasicTrajectory, error) {
	if err := ValidateParams(specs, params); err != nil {
		return nil, err
	}

	p, err := pathpkg.Build(params.Waypoints, params.Alpha, params.Type, logger)
	if err != nil {
		return nil, err
	}
	if params.IsTank {
		p.SetBase(specs.BaseWidth / 2)
	}
	if err := p.ComputeLen(params.SampleCount); err != nil {
		return nil, err
	}
	totalLen := p.GetLen()

	n := params.SampleCount
	ds := 1.0 / float64(n-1)
	dpi := totalLen / float64(n-1)

	constraints, err := buildConstraints(p, params, specs, totalLen)
	if err != nil {
		return nil, err
	}

	pathT := make([]float64, n)
	pathR := make([]float64, n)
	headings := make([]float64, n)
	mv := make([]float64, n)

	for i := 0; i < n; i++ {
		s := float64(i) * ds
		t, err := p.S2T(s)
		if err != nil {
			return nil, err
		}
		pathT[i] = t
		d := p.DerivAt(t)
		h := math.Atan2(d.Y, d.X)
		headings[i] = h

		if params.IsTank {
			dd := p.SecondDerivAt(t)
			curvature := geom.Curvature(d.X, dd.X, d.Y, dd.Y)
			r := 1 / curvature
			pathR[i] = r
			mv[i] = specs.MaxV / (1 + specs.BaseWidth/(2*math.Abs(r)))
		} else {
			pathR[i] = math.Inf(1)
			mv[i] = specs.MaxV
		}
	}

	moments := make([]BasicMoment, n)
	timeDiff := make([]float64, n-1)
	for i := range timeDiff {
		timeDiff[i] = math.NaN()
	}
	constrainedIdx := make([]bool, n)
	// The first waypoint's own velocity constraint is never queued by
	// buildConstraints (it's consumed directly by firstVel below), but
	// it's still a hard constraint the backward pass must not silently
	// relax: mark it here so the deceleration loop fails instead of
	// overwriting moments[0].Vel when it can't be honored.
	constrainedIdx[0] = params.Waypoints[0].HasVelocity()

	moments[0] = BasicMoment{Pos: 0, Heading: headings[0], Vel: firstVel(params)}

	qi := 0
	for i := 1; i < n; i++ {
		dist := float64(i) * dpi

		switch {
		case qi < len(constraints) && constraints[qi].distance <= dist:
			c := constraints[qi]
			qi++
			if c.velocity > moments[i-1].Vel {
				a := (c.velocity*c.velocity - moments[i-1].Vel*moments[i-1].Vel) / (2 * dpi)
				if a > specs.MaxA {
					return nil, trajerr.New(trajerr.ConstraintInfeasible,
						"waypoint velocity constraint cannot be met: requires accel %v > max_a %v", a, specs.MaxA)
				}
				moments[i-1].Accel = a
				timeDiff[i-1] = (c.velocity - moments[i-1].Vel) / a
			} else {
				moments[i-1].Accel = 0
			}
			moments[i] = BasicMoment{Pos: dist, Vel: c.velocity, Heading: headings[i]}
			constrainedIdx[i] = true

		case moments[i-1].Vel < mv[i]:
			maxReachable := math.Sqrt(moments[i-1].Vel*moments[i-1].Vel + 2*specs.MaxA*dpi)
			var newVel float64
			if maxReachable > mv[i] {
				moments[i-1].Accel = (mv[i]*mv[i] - moments[i-1].Vel*moments[i-1].Vel) / (2 * dpi)
				newVel = mv[i]
			} else {
				moments[i-1].Accel = specs.MaxA
				newVel = maxReachable
			}
			moments[i] = BasicMoment{Pos: dist, Vel: newVel, Heading: headings[i]}
			timeDiff[i-1] = safeDivDelta(newVel, moments[i-1].Vel, moments[i-1].Accel)

		default:
			moments[i] = BasicMoment{Pos: dist, Vel: mv[i], Heading: headings[i]}
		}
	}

	last := n - 1
	if params.Waypoints[len(params.Waypoints)-1].HasVelocity() {
		moments[last].Vel = params.Waypoints[len(params.Waypoints)-1].Velocity
	} else {
		moments[last].Vel = 0
	}
	moments[last].Accel = 0

	for i := n - 2; i >= 0; i-- {
		if moments[i].Vel > moments[i+1].Vel {
			maxReachable := math.Sqrt(moments[i+1].Vel*moments[i+1].Vel + 2*specs.MaxA*dpi)
			if maxReachable > moments[i].Vel {
				moments[i].Accel = -(moments[i].Vel*moments[i].Vel - moments[i+1].Vel*moments[i+1].Vel) / (2 * dpi)
				timeDiff[i] = safeDivDelta(moments[i+1].Vel, moments[i].Vel, moments[i].Accel)
			} else if constrainedIdx[i] {
				return nil, trajerr.New(trajerr.ConstraintInfeasible,
					"waypoint velocity constraint at sample %d cannot be met on deceleration", i)
			} else {
				moments[i].Vel = maxReachable
				moments[i].Accel = -specs.MaxA
				timeDiff[i] = safeDivDelta(moments[i+1].Vel, moments[i].Vel, moments[i].Accel)
			}
		}
	}

	initFacing := moments[0].EffectiveFacing()
	moments[0].InitFacing = initFacing
	moments[0].Time = 0
	for i := 1; i < n; i++ {
		moments[i].InitFacing = initFacing
		if !math.IsNaN(timeDiff[i-1]) {
			moments[i].Time = moments[i-1].Time + timeDiff[i-1]
		} else {
			moments[i].Time = moments[i-1].Time + (moments[i].Pos-moments[i-1].Pos)/moments[i-1].Vel
		}
	}

	if logger != nil {
		logger.Debugw("solved basic trajectory", "samples", n, "total_time", moments[last].Time, "total_len", totalLen)
	}

	return &BasicTrajectory{
		path:       p,
		moments:    moments,
		specs:      specs,
		params:     params,
		initFacing: initFacing,
		backwards:  false,
		pathT:      pathT,
		pathR:      pathR,
		logger:     logger,
	}, nil
}

func firstVel(params TrajectoryParams) float64 {
	if params.Waypoints[0].HasVelocity() {
		return params.Waypoints[0].Velocity
	}
	return 0
}

// safeDivDelta returns (v1-v0)/a, or 0 when a is zero (only possible
// when v1==v0 too, i.e. no velocity change is being timed).
func safeDivDelta(v1, v0, a float64) float64 {
	if a == 0 {
		return 0
	}
	return (v1 - v0) / a
}

// buildConstraints translates every *interior* waypoint's velocity
// constraint into a (distance, velocity) pair. The first and last
// waypoints are excluded: their constraints are already applied
// directly as the forward pass's initial moment and the backward
// pass's final moment, so queuing them too would apply the same
// constraint to the solver twice.
func buildConstraints(p *pathpkg.Path, params TrajectoryParams, specs RobotSpecs, totalLen float64) ([]velocityConstraint, error) {
	waypoints := params.Waypoints
	n := len(waypoints) - 1
	var out []velocityConstraint
	for i, w := range waypoints {
		if i == 0 || i == len(waypoints)-1 {
			continue
		}
		if !w.HasVelocity() {
			continue
		}
		if math.Abs(w.Velocity) > specs.MaxV {
			return nil, trajerr.New(trajerr.InvalidInput,
				"waypoint %d velocity constraint %v exceeds max_v %v", i, w.Velocity, specs.MaxV)
		}
		s, err := p.T2S(float64(i) / float64(n))
		if err != nil {
			return nil, err
		}
		out = append(out, velocityConstraint{distance: s * totalLen, velocity: w.Velocity})
	}
	return out, nil
}

// GetPath returns the Path this trajectory was solved over.
func (bt *BasicTrajectory) GetPath() *pathpkg.Path {
	return bt.path
}

// GetMoments returns a copy of the trajectory's moment schedule.
func (bt *BasicTrajectory) GetMoments() []BasicMoment {
	return append([]BasicMoment(nil), bt.moments...)
}

// TotalTime returns the time of the trajectory's last moment.
func (bt *BasicTrajectory) TotalTime() float64 {
	return bt.moments[len(bt.moments)-1].Time
}

// IsTank reports whether this trajectory was solved with curvature-
// capped tank speeds.
func (bt *BasicTrajectory) IsTank() bool {
	return bt.params.IsTank
}

// locate returns the index of the moment whose Time is the latest one
// <= t (clamped into range), plus the interpolation fraction toward
// the next moment (0 when t lands exactly on or past the bracket).
func (bt *BasicTrajectory) locate(t float64) (idx int, frac float64) {
	n := len(bt.moments)
	if t <= bt.moments[0].Time {
		return 0, 0
	}
	if t >= bt.moments[n-1].Time {
		return n - 1, 0
	}
	i := sort.Search(n, func(i int) bool { return bt.moments[i].Time > t })
	lo, hi := bt.moments[i-1], bt.moments[i]
	if hi.Time == lo.Time {
		return i - 1, 0
	}
	return i - 1, (t - lo.Time) / (hi.Time - lo.Time)
}

// Get returns the interpolated moment at time t, clamping to the first
// or last moment when t falls outside the trajectory's time range.
func (bt *BasicTrajectory) Get(t float64) BasicMoment {
	idx, frac := bt.locate(t)
	if frac == 0 {
		return bt.moments[idx]
	}
	lo, hi := bt.moments[idx], bt.moments[idx+1]
	dirLo := geom.Vec2{X: math.Cos(lo.Heading), Y: math.Sin(lo.Heading)}
	dirHi := geom.Vec2{X: math.Cos(hi.Heading), Y: math.Sin(hi.Heading)}
	return BasicMoment{
		Pos:        lo.Pos + (hi.Pos-lo.Pos)*frac,
		Vel:        lo.Vel + (hi.Vel-lo.Vel)*frac,
		Accel:      lo.Accel + (hi.Accel-lo.Accel)*frac,
		Heading:    geom.LerpAngleVec(dirLo, dirHi, frac),
		Time:       t,
		InitFacing: lo.InitFacing,
		Backwards:  lo.Backwards,
	}
}

// GetPos resolves t to a fractional path parameter via the shared
// path_t table and returns the corresponding Waypoint (position,
// heading, and interpolated velocity).
func (bt *BasicTrajectory) GetPos(t float64) pathpkg.Waypoint {
	idx, frac := bt.locate(t)
	nextIdx := idx
	if idx < len(bt.pathT)-1 {
		nextIdx = idx + 1
	}
	pt := bt.pathT[idx] + (bt.pathT[nextIdx]-bt.pathT[idx])*frac
	pos := bt.path.At(pt)
	d := bt.path.DerivAt(pt)
	heading := math.Atan2(d.Y, d.X)
	vel := bt.moments[idx].Vel + (bt.moments[nextIdx].Vel-bt.moments[idx].Vel)*frac
	return pathpkg.Waypoint{X: pos.X, Y: pos.Y, Heading: heading, Velocity: vel}
}
