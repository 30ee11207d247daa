package trajectory

import (
	"go.uber.org/multierr"

	"go.viam.com/trajgen/trajerr"
)

// ValidateParams pre-flight checks specs and params before the
// (more expensive) solver passes run, the way the teacher validates a
// component's config struct before constructing it. Every violation
// found is combined via multierr rather than stopping at the first,
// so a caller iterating on a waypoint list sees every problem at once.
func ValidateParams(specs RobotSpecs, params TrajectoryParams) error {
	var errs error
	if len(params.Waypoints) < 2 {
		errs = multierr.Append(errs, trajerr.New(trajerr.InvalidInput,
			"trajectory requires at least 2 waypoints, got %d", len(params.Waypoints)))
	}
	if params.SampleCount < 2 {
		errs = multierr.Append(errs, trajerr.New(trajerr.InvalidInput,
			"sample_count must be at least 2, got %d", params.SampleCount))
	}
	if params.IsTank && !(specs.HasBaseWidth() && specs.BaseWidth > 0) {
		errs = multierr.Append(errs, trajerr.New(trajerr.InvalidInput,
			"tank trajectory requires specs.BaseWidth > 0"))
	}
	for i, w := range params.Waypoints {
		if w.HasVelocity() && (w.Velocity > specs.MaxV || w.Velocity < -specs.MaxV) {
			errs = multierr.Append(errs, trajerr.New(trajerr.InvalidInput,
				"waypoint %d velocity constraint %v exceeds max_v %v", i, w.Velocity, specs.MaxV))
		}
	}
	return errs
}
