// SPDX-License-Identifier: MIT
// Package linalg: sentinel error set.
// All kernels return these sentinels (optionally wrapped with %w) and tests
// match them via errors.Is. No kernel panics on user-triggered conditions.

package linalg

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions indicates that requested dimensions are non-positive.
	ErrInvalidDimensions = errors.New("linalg: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("linalg: index out of range")

	// ErrDimensionMismatch indicates incompatible operand sizes,
	// e.g. len(x) != Size() in Apply, or len(B) != A.Size() in a System.
	ErrDimensionMismatch = errors.New("linalg: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("linalg: NaN or Inf encountered")

	// ErrNilOperator indicates that a nil Operator (or nil System) was used.
	ErrNilOperator = errors.New("linalg: nil operator")

	// ErrOutsideBand is returned when a write targets a cell outside the
	// storage's non-zero pattern (e.g. (0,2) on a Tridiagonal).
	ErrOutsideBand = errors.New("linalg: entry outside band")

	// ErrSingular is returned when a zero (or numerically negligible) pivot is
	// encountered during LU factorization.
	ErrSingular = errors.New("linalg: singular matrix")

	// ErrAsymmetry signals that an operator expected to be symmetric is not.
	ErrAsymmetry = errors.New("linalg: operator is not symmetric within eps")
)

// PivotError reports the row at which a factorization met a negligible pivot.
// It unwraps to ErrSingular.
type PivotError struct {
	Row   int     // zero-based pivot row
	Pivot float64 // offending pivot value
}

func (e *PivotError) Error() string {
	return fmt.Sprintf("linalg: singular matrix: pivot %g at row %d", e.Pivot, e.Row)
}

// Unwrap exposes ErrSingular to errors.Is.
func (e *PivotError) Unwrap() error { return ErrSingular }

// linalgErrorf wraps err with an operation tag, preserving it for errors.Is/As.
// Call only with a non-nil err.
func linalgErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
