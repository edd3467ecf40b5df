// SPDX-License-Identifier: MIT
// Package linalg: Operator abstraction and the assembled linear System.
//
// Purpose:
//   - Decouple assemblers from solvers: a solver sees only Apply/Row, never storage.
//   - Keep a single validation path for System construction.
//
// Determinism:
//   - Row returns columns in ascending order; Apply iterates rows in index order.

package linalg

import "math"

// Operation name constants for uniform error wrapping.
const (
	opNewSystem   = "NewSystem"
	opMaterialize = "Materialize"
	opResidual    = "Residual"
	opApply       = "Apply"
	opRow         = "Row"
	opLU          = "LU"
	opSolveLU     = "SolveLU"
	opSymmetric   = "ValidateSymmetric"
)

// Operator is a square linear operator of dimension Size()×Size().
//
// Implementations must be safe for concurrent read-only use once built.
type Operator interface {
	// Size returns n for an n×n operator.
	// Complexity: O(1).
	Size() int

	// Apply writes A·x into dst. Both slices must have length Size().
	// Returns ErrDimensionMismatch otherwise.
	Apply(dst, x []float64) error

	// Row returns the structurally non-zero entries of row i, columns ascending.
	// The returned slices are fresh and owned by the caller.
	// Returns ErrOutOfRange when i is invalid.
	Row(i int) (cols []int, vals []float64, err error)
}

// System is an assembled linear system A·x = B.
// Once returned by NewSystem it is treated as immutable by every consumer.
type System struct {
	A Operator  // coefficient operator, n×n
	B []float64 // right-hand side, length n
}

// NewSystem validates and pairs an operator with its right-hand side.
//
// Errors: ErrNilOperator, ErrInvalidDimensions (Size() <= 0),
// ErrDimensionMismatch, ErrNaNInf (non-finite rhs entry).
// Complexity: O(n).
func NewSystem(a Operator, b []float64) (*System, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, linalgErrorf(opNewSystem, err)
	}
	if a.Size() <= 0 {
		return nil, linalgErrorf(opNewSystem, ErrInvalidDimensions)
	}
	if err := ValidateVecLen(b, a.Size()); err != nil {
		return nil, linalgErrorf(opNewSystem, err)
	}
	if err := ValidateFinite(b); err != nil {
		return nil, linalgErrorf(opNewSystem, err)
	}

	return &System{A: a, B: b}, nil
}

// Size returns the number of unknowns.
func (s *System) Size() int { return s.A.Size() }

// Residual returns r = B − A·x.
//
// Errors: ErrNilOperator, ErrDimensionMismatch.
// Complexity: one Apply plus O(n).
func Residual(s *System, x []float64) ([]float64, error) {
	if s == nil || s.A == nil {
		return nil, linalgErrorf(opResidual, ErrNilOperator)
	}
	n := s.A.Size()
	if err := ValidateVecLen(x, n); err != nil {
		return nil, linalgErrorf(opResidual, err)
	}
	r := make([]float64, n)
	if err := s.A.Apply(r, x); err != nil {
		return nil, linalgErrorf(opResidual, err)
	}
	for i := range r {
		r[i] = s.B[i] - r[i]
	}

	return r, nil
}

// Materialize copies any Operator into a fresh *Dense, row by row via Row.
// A *Dense input is cloned.
//
// Complexity: O(n²) memory; O(nnz) writes after O(n²) zeroing.
func Materialize(a Operator) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, linalgErrorf(opMaterialize, err)
	}
	if d, ok := a.(*Dense); ok {
		return d.Clone(), nil
	}
	n := a.Size()
	out, err := NewDense(n, n)
	if err != nil {
		return nil, linalgErrorf(opMaterialize, err)
	}
	var (
		cols []int
		vals []float64
		i, k int
	)
	for i = 0; i < n; i++ {
		cols, vals, err = a.Row(i)
		if err != nil {
			return nil, linalgErrorf(opMaterialize, err)
		}
		for k = range cols {
			if err = out.Set(i, cols[k], vals[k]); err != nil {
				return nil, linalgErrorf(opMaterialize, err)
			}
		}
	}

	return out, nil
}

// Dot returns Σ a[i]·b[i]. The caller guarantees len(a) == len(b).
func Dot(a, b []float64) float64 {
	var acc float64
	for i := range a {
		acc += a[i] * b[i]
	}

	return acc
}

// NormInf returns max|v[i]| (0 for an empty slice).
func NormInf(v []float64) float64 {
	var m float64
	for _, x := range v {
		if a := math.Abs(x); a > m {
			m = a
		}
	}

	return m
}
