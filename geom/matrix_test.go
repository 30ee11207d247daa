package geom

import (
	"math"
	"testing"

	"go.viam.com/test"
	"go.viam.com/trajgen/trajerr"
	"gonum.org/v1/gonum/floats"
)

func TestEliminateSimple2x2(t *testing.T) {
	// x + y = 3
	// x - y = 1
	// => x=2, y=1
	m := NewMatrix(2, 3, []float64{
		1, 1, 3,
		1, -1, 1,
	})
	sol, err := m.Eliminate()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, floats.EqualApprox(sol, []float64{2, 1}, 1e-9), test.ShouldBeTrue)
}

func TestEliminateRequiresRowSwap(t *testing.T) {
	// zero pivot in the first row forces a swap with row 2
	m := NewMatrix(2, 3, []float64{
		0, 1, 4,
		1, 1, 6,
	})
	sol, err := m.Eliminate()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, math.Abs(sol[0]-2) < 1e-9, test.ShouldBeTrue)
	test.That(t, math.Abs(sol[1]-4) < 1e-9, test.ShouldBeTrue)
}

func TestEliminateSingular(t *testing.T) {
	// second column is all zero after eliminating the first: singular.
	m := NewMatrix(2, 3, []float64{
		1, 0, 3,
		2, 0, 6,
	})
	_, err := m.Eliminate()
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, trajerr.Is(err, trajerr.MatrixSingular), test.ShouldBeTrue)
}

func TestEliminateDomainOutOfRange(t *testing.T) {
	m := NewMatrix(3, 3, []float64{
		1, 0, 1,
		0, 1, 1,
		1, 1, 2,
	})
	_, err := m.Eliminate()
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, trajerr.Is(err, trajerr.DomainOutOfRange), test.ShouldBeTrue)
}

func TestEliminateQuinticSized6x7(t *testing.T) {
	// identity system: each unknown equals its row index + 1
	data := make([]float64, 6*7)
	for i := 0; i < 6; i++ {
		data[i*7+i] = 1
		data[i*7+6] = float64(i + 1)
	}
	m := NewMatrix(6, 7, data)
	sol, err := m.Eliminate()
	test.That(t, err, test.ShouldBeNil)
	for i := 0; i < 6; i++ {
		test.That(t, math.Abs(sol[i]-float64(i+1)) < 1e-9, test.ShouldBeTrue)
	}
}
