// SPDX-License-Identifier: MIT

package solver

import (
	"errors"
	"fmt"
)

var (
	// ErrSingularSystem indicates a zero (or negligible) pivot, a zero row, or
	// a breakdown that would otherwise produce NaN/Inf.
	ErrSingularSystem = errors.New("solver: singular system")

	// ErrNotTridiagonal indicates an operator row with entries outside the
	// three central bands, given to Thomas.
	ErrNotTridiagonal = errors.New("solver: operator is not tridiagonal")

	// ErrNotConverged indicates CG hit its iteration cap before the residual
	// tolerance.
	ErrNotConverged = errors.New("solver: iteration did not converge")

	// ErrNilSystem indicates a nil system or operator.
	ErrNilSystem = errors.New("solver: nil system")

	// ErrUnknownSolver indicates ByName got an unregistered name.
	ErrUnknownSolver = errors.New("solver: unknown solver")
)

// SingularError reports where a solver detected singularity.
// It unwraps to ErrSingularSystem (and to Cause, when set).
type SingularError struct {
	Solver string  // solver name
	Row    int     // row at which the pivot vanished, -1 if not row-specific
	Pivot  float64 // offending pivot value
	Cause  error   // underlying kernel error, if any
}

func (e *SingularError) Error() string {
	if e.Row < 0 {
		return fmt.Sprintf("%s: %v", e.Solver, ErrSingularSystem)
	}

	return fmt.Sprintf("%s: %v: pivot %g at row %d", e.Solver, ErrSingularSystem, e.Pivot, e.Row)
}

// Unwrap exposes ErrSingularSystem and the kernel cause to errors.Is/As.
func (e *SingularError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrSingularSystem}
	}

	return []error{ErrSingularSystem, e.Cause}
}
