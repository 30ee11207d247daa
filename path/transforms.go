package path

import (
	"math"

	"go.viam.com/trajgen/geom"
)

// MirrorLR returns a new Path whose waypoints are reflected
// left-right: every position is reflected across the line through
// waypoints[0] oriented along waypoints[0].Heading, and every heading
// is mirrored about that same reference heading.
func (p *Path) MirrorLR() (*Path, error) {
	ref := p.waypoints[0]
	dir := geom.Vec2{X: math.Cos(ref.Heading), Y: math.Sin(ref.Heading)}
	origin := ref.Vec2()

	mirrored := make([]Waypoint, len(p.waypoints))
	for i, w := range p.waypoints {
		rel := w.Vec2().Sub(origin)
		newPos := origin.Add(rel.Reflect(dir))
		mirrored[i] = Waypoint{
			X:        newPos.X,
			Y:        newPos.Y,
			Heading:  geom.MirrorAngle(w.Heading, ref.Heading),
			Velocity: w.Velocity,
		}
	}
	out, err := Build(mirrored, p.alpha, p.typ, p.logger)
	if err != nil {
		return nil, err
	}
	out.backwards = p.backwards
	out.baseRadius = p.baseRadius
	return out, nil
}

// MirrorFB returns a new Path whose waypoints are reflected
// front-back: every position is reflected across the line through
// waypoints[0] perpendicular to waypoints[0].Heading, every heading is
// mirrored about waypoints[0].Heading + pi/2, and the Backwards flag
// is flipped.
func (p *Path) MirrorFB() (*Path, error) {
	ref := p.waypoints[0]
	normalHeading := ref.Heading + math.Pi/2
	dir := geom.Vec2{X: math.Cos(normalHeading), Y: math.Sin(normalHeading)}
	origin := ref.Vec2()

	mirrored := make([]Waypoint, len(p.waypoints))
	for i, w := range p.waypoints {
		rel := w.Vec2().Sub(origin)
		newPos := origin.Add(rel.Reflect(dir))
		mirrored[i] = Waypoint{
			X:        newPos.X,
			Y:        newPos.Y,
			Heading:  geom.MirrorAngle(w.Heading, normalHeading),
			Velocity: w.Velocity,
		}
	}
	out, err := Build(mirrored, p.alpha, p.typ, p.logger)
	if err != nil {
		return nil, err
	}
	out.backwards = !p.backwards
	out.baseRadius = p.baseRadius
	return out, nil
}

// Retrace returns a new Path with waypoint order reversed, each
// heading rotated by pi, and the Backwards flag flipped.
func (p *Path) Retrace() (*Path, error) {
	n := len(p.waypoints)
	reversed := make([]Waypoint, n)
	for i, w := range p.waypoints {
		reversed[n-1-i] = Waypoint{
			X:        w.X,
			Y:        w.Y,
			Heading:  geom.CanonicalizeAngle(w.Heading + math.Pi),
			Velocity: w.Velocity,
		}
	}
	out, err := Build(reversed, p.alpha, p.typ, p.logger)
	if err != nil {
		return nil, err
	}
	out.backwards = !p.backwards
	out.baseRadius = p.baseRadius
	return out, nil
}
