// SPDX-License-Identifier: MIT

package linalg

import (
	"errors"
	"fmt"
	"math"
)

// Tridiagonal stores an n×n matrix with non-zeros only on the main diagonal
// and its two neighbours.
//
//   - lower[i] is A[i][i-1] (lower[0] is always 0),
//   - diag[i]  is A[i][i],
//   - upper[i] is A[i][i+1] (upper[n-1] is always 0).
//
// Writes are accumulating (Add) so several operators and boundary terms can
// decorate the same storage in sequence.
type Tridiagonal struct {
	lower, diag, upper []float64
}

var _ Operator = (*Tridiagonal)(nil)

// NewTridiagonal allocates a zero n×n tridiagonal matrix.
// Errors: ErrInvalidDimensions when n <= 0.
func NewTridiagonal(n int) (*Tridiagonal, error) {
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Tridiagonal{
		lower: make([]float64, n),
		diag:  make([]float64, n),
		upper: make([]float64, n),
	}, nil
}

// Size returns n.
func (t *Tridiagonal) Size() int { return len(t.diag) }

// band resolves (row,col) into the backing slice or reports why it cannot.
func (t *Tridiagonal) band(row, col int) ([]float64, error) {
	n := len(t.diag)
	if row < 0 || row >= n || col < 0 || col >= n {
		return nil, ErrOutOfRange
	}
	switch col - row {
	case -1:
		return t.lower, nil
	case 0:
		return t.diag, nil
	case 1:
		return t.upper, nil
	default:
		return nil, ErrOutsideBand
	}
}

// At returns A[row][col]; cells outside the band read as 0.
// Errors: ErrOutOfRange.
func (t *Tridiagonal) At(row, col int) (float64, error) {
	b, err := t.band(row, col)
	if errors.Is(err, ErrOutsideBand) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("Tridiagonal.At(%d,%d): %w", row, col, err)
	}

	return b[row], nil
}

// Add accumulates v into A[row][col].
// Errors: ErrOutOfRange, ErrOutsideBand, ErrNaNInf.
func (t *Tridiagonal) Add(row, col int, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("Tridiagonal.Add(%d,%d): %w", row, col, ErrNaNInf)
	}
	b, err := t.band(row, col)
	if err != nil {
		return fmt.Errorf("Tridiagonal.Add(%d,%d): %w", row, col, err)
	}
	b[row] += v

	return nil
}

// Apply writes A·x into dst in a single O(n) pass.
func (t *Tridiagonal) Apply(dst, x []float64) error {
	n := len(t.diag)
	if err := ValidateVecLen(x, n); err != nil {
		return linalgErrorf(opApply, err)
	}
	if err := ValidateVecLen(dst, n); err != nil {
		return linalgErrorf(opApply, err)
	}
	var acc float64
	for i := 0; i < n; i++ {
		acc = t.diag[i] * x[i]
		if i > 0 {
			acc += t.lower[i] * x[i-1]
		}
		if i < n-1 {
			acc += t.upper[i] * x[i+1]
		}
		dst[i] = acc
	}

	return nil
}

// Row returns the band entries of row i (one to three cells), including
// explicit zeros inside the band so the pattern stays structural.
func (t *Tridiagonal) Row(i int) ([]int, []float64, error) {
	n := len(t.diag)
	if i < 0 || i >= n {
		return nil, nil, linalgErrorf(opRow, ErrOutOfRange)
	}
	cols := make([]int, 0, 3)
	vals := make([]float64, 0, 3)
	if i > 0 {
		cols = append(cols, i-1)
		vals = append(vals, t.lower[i])
	}
	cols = append(cols, i)
	vals = append(vals, t.diag[i])
	if i < n-1 {
		cols = append(cols, i+1)
		vals = append(vals, t.upper[i])
	}

	return cols, vals, nil
}

// Bands returns copies of the lower, main and upper bands.
// Solvers use it as a fast path instead of n calls to Row.
func (t *Tridiagonal) Bands() (lower, diag, upper []float64) {
	lower = append([]float64(nil), t.lower...)
	diag = append([]float64(nil), t.diag...)
	upper = append([]float64(nil), t.upper...)

	return lower, diag, upper
}

// String renders the bands for diagnostics.
func (t *Tridiagonal) String() string {
	return fmt.Sprintf("Tridiagonal{lower:%v diag:%v upper:%v}", t.lower, t.diag, t.upper)
}
