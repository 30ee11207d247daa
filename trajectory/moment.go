package trajectory

import "go.viam.com/trajgen/geom"

// BasicMoment is a single sample along a BasicTrajectory's time axis.
// Pos is signed arc length along the path (negative after a
// front-back mirror or retrace).
type BasicMoment struct {
	Pos        float64
	Vel        float64
	Accel      float64
	Heading    float64
	Time       float64
	InitFacing float64
	Backwards  bool
}

// EffectiveFacing returns -Heading when Backwards, else Heading.
func (m BasicMoment) EffectiveFacing() float64 {
	if m.Backwards {
		return -m.Heading
	}
	return m.Heading
}

// RelativeFacing returns the canonicalized difference between this
// moment's effective facing and the trajectory's InitFacing.
func (m BasicMoment) RelativeFacing() float64 {
	return geom.CanonicalizeAngle(m.EffectiveFacing() - m.InitFacing)
}
