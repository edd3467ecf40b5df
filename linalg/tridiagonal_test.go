// SPDX-License-Identifier: MIT

package linalg_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvflux/linalg"
)

func TestNewTridiagonal_InvalidSize(t *testing.T) {
	t.Parallel()
	for _, n := range []int{0, -1} {
		_, err := linalg.NewTridiagonal(n)
		require.ErrorIs(t, err, linalg.ErrInvalidDimensions)
	}
}

func TestTridiagonal_AddBandChecks(t *testing.T) {
	t.Parallel()
	tri, err := linalg.NewTridiagonal(4)
	require.NoError(t, err)

	require.ErrorIs(t, tri.Add(0, 2, 1), linalg.ErrOutsideBand)
	require.ErrorIs(t, tri.Add(4, 4, 1), linalg.ErrOutOfRange)
	require.ErrorIs(t, tri.Add(-1, 0, 1), linalg.ErrOutOfRange)
	require.ErrorIs(t, tri.Add(1, 1, math.NaN()), linalg.ErrNaNInf)
	require.ErrorIs(t, tri.Add(1, 1, math.Inf(-1)), linalg.ErrNaNInf)

	// Accumulation semantics.
	require.NoError(t, tri.Add(1, 1, 2))
	require.NoError(t, tri.Add(1, 1, -0.5))
	v, err := tri.At(1, 1)
	require.NoError(t, err)
	require.Equal(t, 1.5, v)

	// Outside band reads as zero.
	v, err = tri.At(0, 3)
	require.NoError(t, err)
	require.Zero(t, v)
}

func TestTridiagonal_RowPattern(t *testing.T) {
	t.Parallel()
	tri := laplacian(t, 4)

	cols, vals, err := tri.Row(0)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1}, cols)
	require.Equal(t, []float64{-3, 1}, vals)

	cols, vals, err = tri.Row(2)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, cols)
	require.Equal(t, []float64{1, -2, 1}, vals)

	cols, vals, err = tri.Row(3)
	require.NoError(t, err)
	require.Equal(t, []int{2, 3}, cols)
	require.Equal(t, []float64{1, -3}, vals)

	_, _, err = tri.Row(4)
	require.ErrorIs(t, err, linalg.ErrOutOfRange)
}

func TestTridiagonal_ApplyMatchesDense(t *testing.T) {
	t.Parallel()
	const n = 6
	tri := laplacian(t, n)
	dense, err := linalg.Materialize(tri)
	require.NoError(t, err)

	x := []float64{1, -2, 3.5, 0, 7, -1}
	got := make([]float64, n)
	want := make([]float64, n)
	require.NoError(t, tri.Apply(got, x))
	require.NoError(t, dense.Apply(want, x))
	require.Equal(t, want, got)

	require.ErrorIs(t, tri.Apply(got, x[:3]), linalg.ErrDimensionMismatch)
	require.ErrorIs(t, tri.Apply(make([]float64, 2), x), linalg.ErrDimensionMismatch)
}

func TestTridiagonal_BandsAreCopies(t *testing.T) {
	t.Parallel()
	tri := laplacian(t, 3)
	lower, diag, upper := tri.Bands()
	require.Equal(t, []float64{0, 1, 1}, lower)
	require.Equal(t, []float64{-3, -2, -3}, diag)
	require.Equal(t, []float64{1, 1, 0}, upper)

	diag[0] = 100
	v, err := tri.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, -3.0, v)
}

func TestTridiagonal_SingleCell(t *testing.T) {
	t.Parallel()
	tri := laplacian(t, 1)
	cols, vals, err := tri.Row(0)
	require.NoError(t, err)
	require.Equal(t, []int{0}, cols)
	require.Equal(t, []float64{-4}, vals)

	dst := make([]float64, 1)
	require.NoError(t, tri.Apply(dst, []float64{0.5}))
	require.Equal(t, -2.0, dst[0])
}

func TestValidateSymmetric(t *testing.T) {
	t.Parallel()
	tri := laplacian(t, 5)
	require.NoError(t, linalg.ValidateSymmetric(tri, 0))
	require.NoError(t, linalg.ValidateSymmetric(hide{tri}, 0))

	require.NoError(t, tri.Add(2, 3, 0.5))
	err := linalg.ValidateSymmetric(tri, 1e-12)
	require.True(t, errors.Is(err, linalg.ErrAsymmetry), "got %v", err)

	require.ErrorIs(t, linalg.ValidateSymmetric(nil, 0), linalg.ErrNilOperator)
	require.ErrorIs(t, linalg.ValidateSymmetric(tri, math.NaN()), linalg.ErrNaNInf)
}

func TestValidateSymmetric_DenseLowerOnly(t *testing.T) {
	t.Parallel()
	m := MustDense(t, 3, 3)
	MustSet(t, m, 0, 0, 1)
	MustSet(t, m, 1, 1, 1)
	MustSet(t, m, 2, 2, 1)
	MustSet(t, m, 2, 0, 4) // A[2][0] != 0 while A[0][2] == 0

	require.ErrorIs(t, linalg.ValidateSymmetric(m, 1e-9), linalg.ErrAsymmetry)
}
