// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvflux/linalg"
)

// DefaultPivotTolerance is the relative threshold under which an eliminated
// pivot is treated as zero: |pivot| <= tol · max(|l_i|, |d_i|, |u_i|).
const DefaultPivotTolerance = 1e-12

// Thomas is the tridiagonal direct solver.
// The zero value uses DefaultPivotTolerance.
type Thomas struct {
	PivotTolerance float64
}

var _ Solver = Thomas{}

// Name returns "thomas".
func (Thomas) Name() string { return NameThomas }

// Solve runs forward elimination and back substitution.
//
// Implementation:
//   - Stage 1: obtain the three bands (fast path for *linalg.Tridiagonal,
//     otherwise one Row call per row).
//   - Stage 2: forward sweep producing modified super-diagonal c' and rhs d'.
//   - Stage 3: back substitution x[i] = d'[i] − c'[i]·x[i+1].
//
// Errors: ErrNilSystem, ErrNotTridiagonal, *SingularError (ErrSingularSystem).
// Complexity: O(n) time, O(n) scratch.
func (s Thomas) Solve(sys *linalg.System) (Solution, error) {
	if err := checkSystem(sys); err != nil {
		return nil, fmt.Errorf("%s: %w", NameThomas, err)
	}
	lower, diag, upper, err := bands(sys.A)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", NameThomas, err)
	}
	tol := s.PivotTolerance
	if tol <= 0 {
		tol = DefaultPivotTolerance
	}

	n := len(diag)
	if n == 0 {
		return nil, fmt.Errorf("%s: %w", NameThomas, linalg.ErrInvalidDimensions)
	}
	b := sys.B
	cp := make([]float64, n) // modified super-diagonal
	dp := make([]float64, n) // modified rhs

	var piv float64
	for i := 0; i < n; i++ {
		piv = diag[i]
		if i > 0 {
			piv -= lower[i] * cp[i-1]
		}
		scale := math.Max(math.Abs(lower[i]), math.Max(math.Abs(diag[i]), math.Abs(upper[i])))
		if math.Abs(piv) <= tol*scale || scale == 0 {
			return nil, &SingularError{Solver: NameThomas, Row: i, Pivot: piv}
		}
		if i < n-1 {
			cp[i] = upper[i] / piv
		}
		if i > 0 {
			dp[i] = (b[i] - lower[i]*dp[i-1]) / piv
		} else {
			dp[i] = b[i] / piv
		}
	}

	x := make(Solution, n)
	x[n-1] = dp[n-1]
	for i := n - 2; i >= 0; i-- {
		x[i] = dp[i] - cp[i]*x[i+1]
	}
	if !allFinite(x) {
		return nil, &SingularError{Solver: NameThomas, Row: -1}
	}

	return x, nil
}

// bands extracts (lower, diag, upper) with lower[0] = upper[n-1] = 0.
func bands(a linalg.Operator) (lower, diag, upper []float64, err error) {
	if t, ok := a.(*linalg.Tridiagonal); ok {
		lower, diag, upper = t.Bands()

		return lower, diag, upper, nil
	}

	n := a.Size()
	lower = make([]float64, n)
	diag = make([]float64, n)
	upper = make([]float64, n)
	var (
		cols []int
		vals []float64
	)
	for i := 0; i < n; i++ {
		cols, vals, err = a.Row(i)
		if err != nil {
			return nil, nil, nil, err
		}
		for k, c := range cols {
			switch c - i {
			case -1:
				lower[i] = vals[k]
			case 0:
				diag[i] = vals[k]
			case 1:
				upper[i] = vals[k]
			default:
				if vals[k] != 0 {
					return nil, nil, nil, fmt.Errorf("row %d col %d: %w", i, c, ErrNotTridiagonal)
				}
			}
		}
	}

	return lower, diag, upper, nil
}
