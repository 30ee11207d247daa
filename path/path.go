package path

import (
	"math"

	"go.uber.org/zap"

	"go.viam.com/trajgen/geom"
	"go.viam.com/trajgen/spline"
	"go.viam.com/trajgen/trajerr"
)

// s2tEntry is one row of the arc-length lookup table: cumulative arc
// length sampled so far, and the native parameter t it was sampled at.
type s2tEntry struct {
	D float64
	T float64
}

// Path owns an ordered sequence of segments (one per waypoint gap)
// plus the arc-length table built from it. It is immutable after
// construction except for the small set of setters documented on each
// method below, which callers must serialize (typically they only run
// during a trajectory's own construction, single-threaded).
type Path struct {
	waypoints  []Waypoint
	alpha      float64
	typ        Type
	segments   []spline.Segment
	backwards  bool
	baseRadius float64
	totalLen   float64
	s2tTable   []s2tEntry
	logger     *zap.SugaredLogger
}

// Build constructs a Path of the given Type through waypoints, with
// tangent magnitudes scaled by alpha. Requires at least two waypoints.
// A nil logger is a documented no-op.
func Build(waypoints []Waypoint, alpha float64, typ Type, logger *zap.SugaredLogger) (*Path, error) {
	if len(waypoints) < 2 {
		return nil, trajerr.New(trajerr.InvalidInput, "path requires at least 2 waypoints, got %d", len(waypoints))
	}
	segments := make([]spline.Segment, len(waypoints)-1)
	for i := 0; i < len(waypoints)-1; i++ {
		seg, err := buildSegment(waypoints[i], waypoints[i+1], alpha, typ)
		if err != nil {
			return nil, err
		}
		segments[i] = seg
	}
	if logger != nil {
		logger.Debugw("built path", "waypoints", len(waypoints), "type", typ.String(), "alpha", alpha)
	}
	return &Path{
		waypoints: append([]Waypoint(nil), waypoints...),
		alpha:     alpha,
		typ:       typ,
		segments:  segments,
		logger:    logger,
	}, nil
}

func buildSegment(a, b Waypoint, alpha float64, typ Type) (spline.Segment, error) {
	p0, p1 := a.Vec2(), b.Vec2()
	m0, m1 := a.Tangent(alpha), b.Tangent(alpha)
	switch typ {
	case Bezier:
		return spline.NewBezierFromHermite(p0, p1, m0, m1), nil
	case CubicHermite:
		return spline.NewCubicHermite(p0, p1, m0, m1), nil
	case QuinticHermite:
		zero := geom.Vec2{}
		return spline.NewQuinticHermite(0, p0, m0, zero, p1, m1, zero)
	default:
		return nil, trajerr.New(trajerr.InvalidInput, "unknown path type %v", typ)
	}
}

// segmentAt maps a global parameter t in [0, 1] to a segment index and
// that segment's local parameter u in [0, 1]. At t>=1 it returns the
// last segment at u=1.
func (p *Path) segmentAt(t float64) (int, float64) {
	n := len(p.segments)
	if t >= 1 {
		return n - 1, 1
	}
	if t <= 0 {
		return 0, 0
	}
	scaled := t * float64(n)
	idx := int(scaled)
	if idx >= n {
		idx = n - 1
	}
	return idx, scaled - float64(idx)
}

// At evaluates the path's position at global parameter t.
func (p *Path) At(t float64) geom.Vec2 {
	idx, u := p.segmentAt(t)
	return p.segments[idx].At(u)
}

// DerivAt evaluates the path's first derivative at global parameter t.
func (p *Path) DerivAt(t float64) geom.Vec2 {
	idx, u := p.segmentAt(t)
	return p.segments[idx].DerivAt(u)
}

// SecondDerivAt evaluates the path's second derivative at global
// parameter t.
func (p *Path) SecondDerivAt(t float64) geom.Vec2 {
	idx, u := p.segmentAt(t)
	return p.segments[idx].SecondDerivAt(u)
}

// WheelsAt returns the left and right wheel positions at global
// parameter t, offset perpendicular to the heading by the path's base
// radius. When Backwards is set the offset is negated.
func (p *Path) WheelsAt(t float64) (left, right geom.Vec2) {
	pos := p.At(t)
	d := p.DerivAt(t)
	h := math.Atan2(d.Y, d.X)
	sign := 1.0
	if p.backwards {
		sign = -1
	}
	offset := geom.Vec2{X: -math.Sin(h), Y: math.Cos(h)}.Mul(p.baseRadius * sign)
	left = pos.Add(offset)
	right = pos.Sub(offset)
	return left, right
}

// ComputeLen samples the path at `points` uniformly-spaced parameter
// values, accumulates chord length between consecutive samples, and
// builds the arc-length lookup table. points must be >= 2.
func (p *Path) ComputeLen(points int) error {
	if points < 2 {
		return trajerr.New(trajerr.InvalidInput, "compute_len requires at least 2 sample points, got %d", points)
	}
	table := make([]s2tEntry, points)
	cumulative := 0.0
	prev := p.At(0)
	table[0] = s2tEntry{D: 0, T: 0}
	for i := 1; i < points; i++ {
		t := float64(i) / float64(points-1)
		cur := p.At(t)
		cumulative += prev.Dist(cur)
		table[i] = s2tEntry{D: cumulative, T: t}
		prev = cur
	}
	p.s2tTable = table
	p.totalLen = cumulative
	if p.logger != nil {
		p.logger.Debugw("computed arc length table", "points", points, "total_len", p.totalLen)
	}
	return nil
}

// S2T converts a fractional arc length s in [0, 1] to the native
// parameter t, by binary search over the arc-length table followed by
// linear interpolation.
func (p *Path) S2T(s float64) (float64, error) {
	if len(p.s2tTable) == 0 {
		return 0, trajerr.New(trajerr.LookupNotReady, "s2t called before compute_len")
	}
	if s >= 1 {
		return 1, nil
	}
	if s <= 0 {
		return 0, nil
	}
	target := s * p.totalLen
	idx := searchD(p.s2tTable, target)
	if idx == 0 {
		return p.s2tTable[0].T, nil
	}
	if idx >= len(p.s2tTable) {
		return p.s2tTable[len(p.s2tTable)-1].T, nil
	}
	lo, hi := p.s2tTable[idx-1], p.s2tTable[idx]
	if hi.D == lo.D {
		return lo.T, nil
	}
	frac := (target - lo.D) / (hi.D - lo.D)
	return lo.T + frac*(hi.T-lo.T), nil
}

// T2S converts a native parameter t in [0, 1] to the fractional arc
// length s, the inverse of S2T, by binary search on the table's t
// column.
func (p *Path) T2S(t float64) (float64, error) {
	if len(p.s2tTable) == 0 {
		return 0, trajerr.New(trajerr.LookupNotReady, "t2s called before compute_len")
	}
	if t >= 1 {
		return 1, nil
	}
	if t <= 0 {
		return 0, nil
	}
	idx := searchT(p.s2tTable, t)
	if idx == 0 {
		return p.s2tTable[0].D / p.totalLen, nil
	}
	if idx >= len(p.s2tTable) {
		return 1, nil
	}
	lo, hi := p.s2tTable[idx-1], p.s2tTable[idx]
	if hi.T == lo.T {
		return lo.D / p.totalLen, nil
	}
	frac := (t - lo.T) / (hi.T - lo.T)
	return (lo.D + frac*(hi.D-lo.D)) / p.totalLen, nil
}

// searchD returns the index of the first table entry whose D is >=
// target.
func searchD(table []s2tEntry, target float64) int {
	lo, hi := 0, len(table)
	for lo < hi {
		mid := (lo + hi) / 2
		if table[mid].D < target {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// searchT returns the index of the first table entry whose T is >=
// target.
func searchT(table []s2tEntry, target float64) int {
	lo, hi := 0, len(table)
	for lo < hi {
		mid := (lo + hi) / 2
		if table[mid].T < target {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// SetBase sets the base radius (half the tank's base width) used by
// WheelsAt. Construction-time only; callers must not call this
// concurrently with reads.
func (p *Path) SetBase(baseRadius float64) {
	p.baseRadius = baseRadius
}

// GetBase returns the current base radius.
func (p *Path) GetBase() float64 {
	return p.baseRadius
}

// SetBackwards sets the backwards flag. Construction-time only.
func (p *Path) SetBackwards(backwards bool) {
	p.backwards = backwards
}

// GetBackwards returns the backwards flag.
func (p *Path) GetBackwards() bool {
	return p.backwards
}

// GetWaypoints returns the waypoints this path was built from.
func (p *Path) GetWaypoints() []Waypoint {
	return append([]Waypoint(nil), p.waypoints...)
}

// GetAlpha returns the tangent-scaling factor this path was built with.
func (p *Path) GetAlpha() float64 {
	return p.alpha
}

// GetType returns the spline variant this path was built with.
func (p *Path) GetType() Type {
	return p.typ
}

// GetLen returns the total arc length, valid after ComputeLen.
func (p *Path) GetLen() float64 {
	return p.totalLen
}

// NumSegments returns the number of spline segments in the path.
func (p *Path) NumSegments() int {
	return len(p.segments)
}
