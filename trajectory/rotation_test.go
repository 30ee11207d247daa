package trajectory

import (
	"math"
	"testing"

	"go.viam.com/test"
)

func TestGenerateRotationTankRequiresBaseWidth(t *testing.T) {
	_, err := GenerateRotationTank(2, 1, 0, math.Pi, nil)
	test.That(t, err, test.ShouldNotBeNil)
}

func TestGenerateRotationTankRequiresNonzeroAngle(t *testing.T) {
	_, err := GenerateRotationTank(2, 1, 1, 0, nil)
	test.That(t, err, test.ShouldNotBeNil)
}

func TestGenerateRotationTankFinalHeadingAndSymmetry(t *testing.T) {
	tt, err := GenerateRotationTank(2, 1, 1, math.Pi, nil)
	test.That(t, err, test.ShouldBeNil)

	moments := tt.GetMoments()
	last := moments[len(moments)-1]
	wantHeading := moments[0].InitFacing + math.Pi
	test.That(t, math.Abs(last.Heading-wantHeading) < 1e-3, test.ShouldBeTrue)
	test.That(t, math.Abs(last.LPos+last.RPos) < 1e-6, test.ShouldBeTrue)

	arcLen := math.Pi * 0.5
	expectedStraight, err := NewBasicTrajectory(
		RobotSpecs{MaxV: 2, MaxA: 1, BaseWidth: NoBaseWidth},
		straightParamsOfLength(arcLen),
		nil,
	)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, math.Abs(tt.TotalTime()-expectedStraight.TotalTime()) < 1e-3, test.ShouldBeTrue)
}

func straightParamsOfLength(length float64) TrajectoryParams {
	p := straightParams(201)
	wp := p.Waypoints
	wp[1].X = length
	p.Alpha = length / 2
	return p
}
