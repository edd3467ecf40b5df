// SPDX-License-Identifier: MIT
// Package: linalg
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/shape/symmetry checks here.
//  - Return sentinel errors tagged with the validator name.
//
// Determinism & Performance:
//  - All checks are pure and deterministic.
//  - Symmetry check visits each structural non-zero once via Row.

package linalg

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the operator reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(a Operator) error {
	if a == nil {
		return validatorErrorf("ValidateNotNil", ErrNilOperator)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Complexity: O(1).
func ValidateSquare(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateSquare", ErrNilOperator)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// Time: O(1). Space: O(1).
func ValidateVecLen(x []float64, n int) error {
	// Disallow nil vectors to avoid subtle bugs in Apply-like routines.
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilOperator)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateFinite rejects any NaN or ±Inf entry.
// Time: O(n).
func ValidateFinite(x []float64) error {
	for i, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return validatorErrorf(fmt.Sprintf("ValidateFinite[%d]", i), ErrNaNInf)
		}
	}

	return nil
}

// ValidateSymmetric checks |A[i,j] − A[j,i]| ≤ tol·max(|A[i,j]|,|A[j,i]|,1)
// for every structural non-zero.
//
// Inputs: operator a, tolerance tol ≥ 0 (negative values are flipped).
// Complexity: O(Σ row lengths × row length) using Row lookups.
// Errors: ErrNilOperator, ErrNaNInf on bad tol, ErrAsymmetry on violation.
//
// AI-Hints: run before CG, which silently misbehaves on non-symmetric input.
func ValidateSymmetric(a Operator, tol float64) error {
	if a == nil {
		return validatorErrorf(opSymmetric, ErrNilOperator)
	}
	if math.IsNaN(tol) || math.IsInf(tol, 0) {
		return validatorErrorf(opSymmetric, ErrNaNInf)
	}
	if tol < 0 {
		tol = -tol
	}

	n := a.Size()
	if n <= 1 {
		return nil // trivially symmetric
	}

	var (
		cols, tcols []int
		vals, tvals []float64
		err         error
		i, k        int
		aji         float64
	)
	for i = 0; i < n; i++ {
		cols, vals, err = a.Row(i)
		if err != nil {
			return validatorErrorf(opSymmetric, err)
		}
		for k = range cols {
			if cols[k] == i {
				continue
			}
			tcols, tvals, err = a.Row(cols[k])
			if err != nil {
				return validatorErrorf(opSymmetric, err)
			}
			aji = lookup(tcols, tvals, i)
			scale := math.Max(1, math.Max(math.Abs(vals[k]), math.Abs(aji)))
			if math.Abs(vals[k]-aji) > tol*scale {
				return validatorErrorf(opSymmetric, ErrAsymmetry)
			}
		}
	}

	return nil
}

// lookup returns the value at column c in a sparse row, 0 when absent.
func lookup(cols []int, vals []float64, c int) float64 {
	for k, col := range cols {
		if col == c {
			return vals[k]
		}
	}

	return 0
}
