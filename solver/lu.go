// SPDX-License-Identifier: MIT

package solver

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvflux/linalg"
)

// DenseLU materialises the operator and solves with Doolittle LU.
// Memory O(n²), time O(n³): intended for small systems and cross-checks.
type DenseLU struct{}

var _ Solver = DenseLU{}

// Name returns "lu".
func (DenseLU) Name() string { return NameDenseLU }

// Solve factors a dense copy of sys.A and substitutes.
// Errors: ErrNilSystem, *SingularError wrapping the linalg pivot error.
func (DenseLU) Solve(sys *linalg.System) (Solution, error) {
	if err := checkSystem(sys); err != nil {
		return nil, fmt.Errorf("%s: %w", NameDenseLU, err)
	}
	A, err := linalg.Materialize(sys.A)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", NameDenseLU, err)
	}
	L, U, err := linalg.LU(A)
	if err != nil {
		return nil, singular(err)
	}
	x, err := linalg.SolveLU(L, U, sys.B)
	if err != nil {
		return nil, singular(err)
	}
	if !allFinite(x) {
		return nil, &SingularError{Solver: NameDenseLU, Row: -1}
	}

	return Solution(x), nil
}

// singular converts a linalg pivot failure into *SingularError; other errors
// pass through with the solver tag.
func singular(err error) error {
	var pe *linalg.PivotError
	if errors.As(err, &pe) {
		return &SingularError{Solver: NameDenseLU, Row: pe.Row, Pivot: pe.Pivot, Cause: err}
	}

	return fmt.Errorf("%s: %w", NameDenseLU, err)
}
