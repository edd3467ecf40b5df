// SPDX-License-Identifier: MIT
// Package linalg_test contains test helpers.
//
// Purpose:
//   • Provide small deterministic fixtures (1D Laplacian-like bands, dense copies).
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package linalg_test

import (
	"testing"

	"github.com/katalvlaran/lvflux/linalg"
)

// hide wraps any Operator to hide its concrete type from type assertions,
// forcing generic (Row/Apply based) code paths.
type hide struct{ linalg.Operator }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t *testing.T, r, c int) *linalg.Dense {
	t.Helper()
	m, err := linalg.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustSet writes v at (i,j) or fails the test.
func MustSet(t *testing.T, m *linalg.Dense, i, j int, v float64) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d,%v): %v", i, j, v, err)
	}
}

// MustAt reads (i,j) or fails the test.
func MustAt(t *testing.T, m *linalg.Dense, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// laplacian builds the n×n band [1 -2 1] with -3 on both end diagonals,
// i.e. the 1D Dirichlet diffusion operator for dx = 1.
func laplacian(t *testing.T, n int) *linalg.Tridiagonal {
	t.Helper()
	tri, err := linalg.NewTridiagonal(n)
	if err != nil {
		t.Fatalf("NewTridiagonal(%d): %v", n, err)
	}
	for i := 0; i < n; i++ {
		d := -2.0
		if i == 0 || i == n-1 {
			d = -3.0
		}
		if n == 1 {
			d = -4.0
		}
		if err = tri.Add(i, i, d); err != nil {
			t.Fatalf("Add diag: %v", err)
		}
		if i > 0 {
			if err = tri.Add(i, i-1, 1); err != nil {
				t.Fatalf("Add lower: %v", err)
			}
		}
		if i < n-1 {
			if err = tri.Add(i, i+1, 1); err != nil {
				t.Fatalf("Add upper: %v", err)
			}
		}
	}

	return tri
}

// emptyOp is a well-formed but zero-sized operator.
type emptyOp struct{}

func (emptyOp) Size() int                         { return 0 }
func (emptyOp) Apply(dst, x []float64) error      { return nil }
func (emptyOp) Row(int) ([]int, []float64, error) { return nil, nil, linalg.ErrOutOfRange }
