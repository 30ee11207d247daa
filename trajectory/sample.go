package trajectory

// Sample walks BasicTrajectory.Get across steps evenly spaced samples
// over the trajectory's full time range, the way motionplan.Plan
// exposes GetFrameSteps for a caller that wants the whole trajectory
// at once (to log or plot) instead of querying point-by-point.
func Sample(bt *BasicTrajectory, steps int) []BasicMoment {
	if steps < 2 {
		steps = 2
	}
	out := make([]BasicMoment, steps)
	total := bt.TotalTime()
	for i := 0; i < steps; i++ {
		t := total * float64(i) / float64(steps-1)
		out[i] = bt.Get(t)
	}
	return out
}

// SampleTank is the TankDriveTrajectory counterpart of Sample.
func SampleTank(tt *TankDriveTrajectory, steps int) []TankDriveMoment {
	if steps < 2 {
		steps = 2
	}
	out := make([]TankDriveMoment, steps)
	total := tt.TotalTime()
	for i := 0; i < steps; i++ {
		t := total * float64(i) / float64(steps-1)
		out[i] = tt.Get(t)
	}
	return out
}
