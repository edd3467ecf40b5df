// SPDX-License-Identifier: MIT
// Package linalg: Doolittle LU factorization and triangular substitution.
//
// Purpose:
//   - Dense reference path for small systems and cross-checks of band solvers.
//   - Deterministic: no pivoting, fixed loop orders, bit-for-bit reproducible.
//
// Notes:
//   - Without pivoting a zero pivot aborts the factorization with *PivotError.
//     Diffusion operators are diagonally dominant, so pivoting is not needed there.

package linalg

import "math"

// PivotTolerance is the relative threshold under which a pivot is treated as
// zero: |pivot| <= PivotTolerance * max|A[i,:]|.
const PivotTolerance = 1e-12

// LU computes the Doolittle factorization A = L*U with unit diagonal on L (no pivoting).
// Implementation:
//   - Stage 1: Validate m (not nil, square); allocate Dense L,U; set diag(L)=1.
//   - Stage 2: For i=0..n-1, build row i of U and column i of L in fixed order.
//
// Inputs:
//   - m: square *Dense (n×n).
//
// Returns:
//   - L (unit lower triangular), U (upper triangular).
//
// Errors:
//   - ErrNilOperator, ErrDimensionMismatch, *PivotError (unwraps to ErrSingular).
//
// Determinism:
//   - Fixed i→{j≥i} for U, then {j>i}→i for L.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func LU(m *Dense) (*Dense, *Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, nil, linalgErrorf(opLU, err)
	}

	n := m.Rows()
	L, err := NewDense(n, n)
	if err != nil {
		return nil, nil, linalgErrorf(opLU, err)
	}
	U, err := NewDense(n, n)
	if err != nil {
		return nil, nil, linalgErrorf(opLU, err)
	}

	// Initialize L diagonal to 1 (unit lower triangular).
	for i := 0; i < n; i++ {
		L.data[i*n+i] = 1.0
	}

	scale := rowScales(m)

	var (
		i, j, k      int
		baseI, baseJ int
		sum, pivot   float64
	)
	for i = 0; i < n; i++ {
		baseI = i * n
		// Compute U[i][j] for j >= i.
		for j = i; j < n; j++ {
			sum = 0
			for k = 0; k < i; k++ {
				sum += L.data[baseI+k] * U.data[k*n+j]
			}
			U.data[baseI+j] = m.data[baseI+j] - sum
		}

		// Negligible-pivot guard (deterministic singularity detection).
		pivot = U.data[baseI+i]
		if math.Abs(pivot) <= PivotTolerance*scale[i] {
			return nil, nil, linalgErrorf(opLU, &PivotError{Row: i, Pivot: pivot})
		}

		// Compute L[j][i] for j > i.
		for j = i + 1; j < n; j++ {
			sum = 0
			baseJ = j * n
			for k = 0; k < i; k++ {
				sum += L.data[baseJ+k] * U.data[k*n+i]
			}
			L.data[baseJ+i] = (m.data[baseJ+i] - sum) / pivot
		}
	}

	return L, U, nil
}

// SolveLU solves L·U·x = b by forward then backward substitution.
//
// Contract: L unit lower triangular, U upper triangular with non-zero diagonal
// (as returned by LU); len(b) == n.
// Complexity: O(n^2).
func SolveLU(L, U *Dense, b []float64) ([]float64, error) {
	if err := ValidateSquare(L); err != nil {
		return nil, linalgErrorf(opSolveLU, err)
	}
	if err := ValidateSquare(U); err != nil {
		return nil, linalgErrorf(opSolveLU, err)
	}
	n := L.Rows()
	if U.Rows() != n {
		return nil, linalgErrorf(opSolveLU, ErrDimensionMismatch)
	}
	if err := ValidateVecLen(b, n); err != nil {
		return nil, linalgErrorf(opSolveLU, err)
	}

	var (
		i, k int
		sum  float64
	)
	// Forward: L·y = b (unit diagonal).
	y := make([]float64, n)
	for i = 0; i < n; i++ {
		sum = b[i]
		for k = 0; k < i; k++ {
			sum -= L.data[i*n+k] * y[k]
		}
		y[i] = sum
	}

	// Backward: U·x = y.
	x := make([]float64, n)
	for i = n - 1; i >= 0; i-- {
		sum = y[i]
		for k = i + 1; k < n; k++ {
			sum -= U.data[i*n+k] * x[k]
		}
		if U.data[i*n+i] == 0 {
			return nil, linalgErrorf(opSolveLU, &PivotError{Row: i})
		}
		x[i] = sum / U.data[i*n+i]
	}

	return x, nil
}

// rowScales returns max|A[i,:]| per row; an all-zero row yields 0, which makes
// any pivot on that row negligible.
func rowScales(m *Dense) []float64 {
	out := make([]float64, m.r)
	var v float64
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			v = math.Abs(m.data[i*m.c+j])
			if v > out[i] {
				out[i] = v
			}
		}
	}

	return out
}
