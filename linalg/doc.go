// SPDX-License-Identifier: MIT

// Package linalg holds the linear-system layer of lvflux.
//
// The assembler never hands a concrete matrix to a solver. It hands over an
// Operator, which exposes exactly two capabilities:
//
//   - Apply(dst, x): the matrix-vector product dst = A·x,
//   - Row(i): the non-zero pattern and values of row i (ascending columns).
//
// Two storages implement Operator:
//
//   - Tridiagonal: three bands, O(n) memory. The default for 1D diffusion.
//   - Dense: row-major n×n buffer with safe At/Set, used by the LU reference
//     solver and by small debugging runs.
//
// Numeric policy: Set/Add reject NaN and ±Inf; every constructor validates its
// shape; public methods return sentinel errors (see errors.go) instead of
// panicking.
//
// Complexity quicksheet:
//   - Tridiagonal: Apply O(n), Row O(1), memory O(n).
//   - Dense: Apply O(n²), Row O(n), memory O(n²), LU O(n³).
package linalg
