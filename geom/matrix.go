package geom

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"go.viam.com/trajgen/trajerr"
)

// Matrix is a small dense augmented-matrix wrapper used to solve the
// 6x6 (7-column augmented) quintic coefficient system. It wraps
// gonum's mat.Dense for storage rather than hand-rolling a slice of
// slices, the way the teacher's rimage/transform package wraps
// mat.Dense with its own pose-recovery logic instead of reimplementing
// dense-matrix storage.
type Matrix struct {
	d *mat.Dense
}

// NewMatrix builds a Matrix from row-major data, rows rows by cols
// columns.
func NewMatrix(rows, cols int, data []float64) *Matrix {
	return &Matrix{d: mat.NewDense(rows, cols, data)}
}

// Dims returns the row and column count.
func (m *Matrix) Dims() (rows, cols int) {
	return m.d.Dims()
}

// At returns the value at (i, j).
func (m *Matrix) At(i, j int) float64 {
	return m.d.At(i, j)
}

// Set assigns the value at (i, j).
func (m *Matrix) Set(i, j int, v float64) {
	m.d.Set(i, j, v)
}

// Eliminate performs Gauss-Jordan elimination on an augmented matrix
// (n rows by n+1 columns: n unknowns plus the constant column) in
// place, reducing the left n columns to the identity and leaving the
// solution in the last column. It row-swaps to find a nonzero pivot
// when the diagonal entry is (near) zero, and fails with
// trajerr.MatrixSingular if no nonzero pivot exists in any remaining
// row, or trajerr.DomainOutOfRange if there are more rows than
// left-hand columns.
func (m *Matrix) Eliminate() ([]float64, error) {
	rows, cols := m.Dims()
	n := cols - 1
	if rows > n {
		return nil, trajerr.New(trajerr.DomainOutOfRange,
			"eliminate: %d rows exceeds %d unknown columns", rows, n)
	}

	const epsilon = 1e-12
	for col := 0; col < n; col++ {
		pivotRow := -1
		for r := col; r < rows; r++ {
			if math.Abs(m.At(r, col)) > epsilon {
				pivotRow = r
				break
			}
		}
		if pivotRow == -1 {
			return nil, trajerr.New(trajerr.MatrixSingular,
				"eliminate: no nonzero pivot found in column %d", col)
		}
		if pivotRow != col {
			m.swapRows(pivotRow, col)
		}

		pivot := m.At(col, col)
		for j := 0; j < cols; j++ {
			m.Set(col, j, m.At(col, j)/pivot)
		}

		for r := 0; r < rows; r++ {
			if r == col {
				continue
			}
			factor := m.At(r, col)
			if factor == 0 {
				continue
			}
			for j := 0; j < cols; j++ {
				m.Set(r, j, m.At(r, j)-factor*m.At(col, j))
			}
		}
	}

	solution := make([]float64, n)
	for i := 0; i < n; i++ {
		solution[i] = m.At(i, n)
	}
	return solution, nil
}

func (m *Matrix) swapRows(a, b int) {
	_, cols := m.Dims()
	for j := 0; j < cols; j++ {
		va, vb := m.At(a, j), m.At(b, j)
		m.Set(a, j, vb)
		m.Set(b, j, va)
	}
}
