// SPDX-License-Identifier: MIT

// Package solver solves assembled linear systems A·u = b.
//
// Three solvers implement Solver:
//
//   - Thomas: direct tridiagonal elimination, O(n) time and scratch. Default.
//   - DenseLU: Doolittle LU on a dense copy, O(n³). Reference/cross-check path.
//   - CG: conjugate gradient on the operator alone (Apply only), for symmetric
//     definite systems too large to factor.
//
// Solvers hold no state between calls; one value may be used concurrently on
// independent systems, and solving the same system twice yields bit-identical
// results.
//
// A structurally singular system is always reported as ErrSingularSystem; a
// solver never returns a solution containing NaN or ±Inf.
package solver
