// Package trajectory implements the two-pass velocity-profile solver
// (BasicTrajectory), the tank wheel projection (TankDriveTrajectory),
// and the in-place rotation generator.
package trajectory

import (
	"math"

	"go.viam.com/trajgen/path"
)

// RobotSpecs carries the kinematic limits a trajectory is solved
// under. BaseWidth is required for tank trajectories (NoBaseWidth
// otherwise); it is unused for a non-tank BasicTrajectory.
type RobotSpecs struct {
	MaxV      float64
	MaxA      float64
	BaseWidth float64
}

// NoBaseWidth is the sentinel RobotSpecs.BaseWidth carries when a
// trajectory will never need a base width (no tank drive involved).
var NoBaseWidth = math.NaN()

// HasBaseWidth reports whether BaseWidth was supplied.
func (s RobotSpecs) HasBaseWidth() bool {
	return !math.IsNaN(s.BaseWidth)
}

// TrajectoryParams carries the waypoints and generation knobs for a
// BasicTrajectory or TankDriveTrajectory.
type TrajectoryParams struct {
	Waypoints   []path.Waypoint
	Alpha       float64
	SampleCount int
	IsTank      bool
	Type        path.Type
}
