// SPDX-License-Identifier: MIT

package assembler_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvflux/assembler"
	"github.com/katalvlaran/lvflux/boundary"
	"github.com/katalvlaran/lvflux/linalg"
	"github.com/katalvlaran/lvflux/mesh"
)

func mustLine(t *testing.T, n int, dx float64) *mesh.Line {
	t.Helper()
	l, err := mesh.NewLine(n, dx)
	require.NoError(t, err)

	return l
}

func mustFixed(t *testing.T, loc boundary.Location, v float64) boundary.Condition {
	t.Helper()
	c, err := boundary.FixedValue(loc, v)
	require.NoError(t, err)

	return c
}

func mustFlux(t *testing.T, loc boundary.Location, g float64) boundary.Condition {
	t.Helper()
	c, err := boundary.FixedFlux(loc, g)
	require.NoError(t, err)

	return c
}

func row(t *testing.T, op linalg.Operator, i int) map[int]float64 {
	t.Helper()
	cols, vals, err := op.Row(i)
	require.NoError(t, err)
	out := make(map[int]float64, len(cols))
	for k, c := range cols {
		out[c] = vals[k]
	}

	return out
}

func TestAssemble_Coefficients(t *testing.T) {
	t.Parallel()
	const dx = 0.5
	l := mustLine(t, 4, dx)
	sys, err := assembler.New().Assemble(l,
		mustFixed(t, boundary.Left, 2),
		mustFixed(t, boundary.Right, 5))
	require.NoError(t, err)

	inv := 1 / (dx * dx) // 4
	require.Equal(t, map[int]float64{0: -3 * inv, 1: inv}, row(t, sys.A, 0))
	require.Equal(t, map[int]float64{0: inv, 1: -2 * inv, 2: inv}, row(t, sys.A, 1))
	require.Equal(t, map[int]float64{1: inv, 2: -2 * inv, 3: inv}, row(t, sys.A, 2))
	require.Equal(t, map[int]float64{2: inv, 3: -3 * inv}, row(t, sys.A, 3))
	require.Equal(t, []float64{-2 * 2 * inv, 0, 0, -2 * 5 * inv}, sys.B)
}

func TestAssemble_InteriorRowsConserveFlux(t *testing.T) {
	t.Parallel()
	l := mustLine(t, 10, 0.3)
	sys, err := assembler.New().Assemble(l,
		mustFixed(t, boundary.Left, 0),
		mustFixed(t, boundary.Right, 1))
	require.NoError(t, err)

	for i := 1; i < 9; i++ {
		var sum float64
		for _, v := range row(t, sys.A, i) {
			sum += v
		}
		require.InDelta(t, 0, sum, 1e-12, "row %d", i)
	}
}

func TestAssemble_SingleCell(t *testing.T) {
	t.Parallel()
	l := mustLine(t, 1, 2)
	sys, err := assembler.New().Assemble(l,
		mustFixed(t, boundary.Left, 1),
		mustFixed(t, boundary.Right, 3))
	require.NoError(t, err)

	// diag = -4/dx², rhs = -2(vL+vR)/dx²
	require.Equal(t, map[int]float64{0: -1}, row(t, sys.A, 0))
	require.Equal(t, []float64{-2}, sys.B)
}

func TestAssemble_DenseMatchesTridiagonal(t *testing.T) {
	t.Parallel()
	l := mustLine(t, 7, 1.5)
	conds := []boundary.Condition{
		mustFixed(t, boundary.Left, -1),
		mustFlux(t, boundary.Right, 0.25),
	}
	tri, err := assembler.New().Assemble(l, conds...)
	require.NoError(t, err)
	den, err := assembler.New(assembler.WithStorage(assembler.StorageDense)).Assemble(l, conds...)
	require.NoError(t, err)

	_, ok := tri.A.(*linalg.Tridiagonal)
	require.True(t, ok)
	_, ok = den.A.(*linalg.Dense)
	require.True(t, ok)

	for i := 0; i < 7; i++ {
		require.Equal(t, row(t, tri.A, i), row(t, den.A, i), "row %d", i)
	}
	require.Equal(t, tri.B, den.B)
}

func TestAssemble_DiffusivityScales(t *testing.T) {
	t.Parallel()
	l := mustLine(t, 3, 1)
	conds := []boundary.Condition{mustFixed(t, boundary.Left, 1), mustFixed(t, boundary.Right, 2)}

	one, err := assembler.New().Assemble(l, conds...)
	require.NoError(t, err)
	four, err := assembler.New(assembler.WithDiffusivity(4)).Assemble(l, conds...)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		r1, r4 := row(t, one.A, i), row(t, four.A, i)
		for c, v := range r1 {
			require.Equal(t, 4*v, r4[c])
		}
		require.Equal(t, 4*one.B[i], four.B[i])
	}
}

func TestAssemble_BoundaryErrors(t *testing.T) {
	t.Parallel()
	l := mustLine(t, 5, 1)
	left := mustFixed(t, boundary.Left, 0)
	right := mustFixed(t, boundary.Right, 1)

	cases := []struct {
		name  string
		conds []boundary.Condition
		want  error
	}{
		{"none", nil, assembler.ErrIncompleteBoundary},
		{"only left", []boundary.Condition{left}, assembler.ErrIncompleteBoundary},
		{"left and nil", []boundary.Condition{left, nil}, assembler.ErrIncompleteBoundary},
		{"two left", []boundary.Condition{left, mustFixed(t, boundary.Left, 3)}, assembler.ErrConflictingBoundary},
		{"two right", []boundary.Condition{right, mustFlux(t, boundary.Right, 3)}, assembler.ErrConflictingBoundary},
		{"three", []boundary.Condition{left, right, mustFixed(t, boundary.Right, 2)}, assembler.ErrConflictingBoundary},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			sys, err := assembler.New().Assemble(l, tc.conds...)
			require.ErrorIs(t, err, tc.want)
			require.Nil(t, sys)
		})
	}
}

func TestAssemble_NilMesh(t *testing.T) {
	t.Parallel()
	_, err := assembler.New().Assemble(nil)
	require.ErrorIs(t, err, assembler.ErrNilMesh)
}

// skewMesh couples cell 0 to cell 2 and lets conditions pick arbitrary faces.
type skewMesh struct {
	*mesh.Line
	left []int
}

func (s skewMesh) FacesLeft() []int { return s.left }

func (s skewMesh) Faces() []mesh.Face {
	faces := s.Line.Faces()
	faces[1].Neighbor = 2

	return faces
}

func TestAssemble_UnknownFace(t *testing.T) {
	t.Parallel()
	m := skewMesh{Line: mustLine(t, 3, 1), left: []int{1}}
	_, err := assembler.New().Assemble(m,
		mustFixed(t, boundary.Left, 0),
		mustFixed(t, boundary.Right, 1))
	require.ErrorIs(t, err, assembler.ErrUnknownFace)
}

func TestAssemble_UncoveredFace(t *testing.T) {
	t.Parallel()
	m := skewMesh{Line: mustLine(t, 3, 1), left: []int{}}
	_, err := assembler.New().Assemble(m,
		mustFixed(t, boundary.Left, 0),
		mustFixed(t, boundary.Right, 1))
	require.ErrorIs(t, err, assembler.ErrIncompleteBoundary)
}

func TestAssemble_MeshOutsideTridiagonalBand(t *testing.T) {
	t.Parallel()
	m := skewMesh{Line: mustLine(t, 3, 1), left: []int{0}}
	conds := []boundary.Condition{mustFixed(t, boundary.Left, 0), mustFixed(t, boundary.Right, 1)}

	_, err := assembler.New().Assemble(m, conds...)
	require.True(t, errors.Is(err, linalg.ErrOutsideBand), "got %v", err)

	// Dense storage accepts any coupling.
	_, err = assembler.New(assembler.WithStorage(assembler.StorageDense)).Assemble(m, conds...)
	require.NoError(t, err)
}

func TestOptions_PanicOnNonsense(t *testing.T) {
	t.Parallel()
	require.Panics(t, func() { assembler.WithDiffusivity(0) })
	require.Panics(t, func() { assembler.WithDiffusivity(-1) })
	require.Panics(t, func() { assembler.WithStorage(assembler.Storage(42)) })

	a := assembler.New(assembler.WithDiffusivity(2.5), assembler.WithStorage(assembler.StorageDense))
	require.Equal(t, 2.5, a.Diffusivity())
	require.Equal(t, assembler.StorageDense, a.Storage())
	require.Equal(t, "dense", a.Storage().String())
}

func TestParseStorage(t *testing.T) {
	t.Parallel()
	for in, want := range map[string]assembler.Storage{
		"":            assembler.StorageTridiagonal,
		"tridiagonal": assembler.StorageTridiagonal,
		" Dense ":     assembler.StorageDense,
	} {
		got, err := assembler.ParseStorage(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}
	_, err := assembler.ParseStorage("csr")
	require.ErrorIs(t, err, assembler.ErrUnknownStorage)
}

func TestAssemble_TypedNilMesh(t *testing.T) {
	t.Parallel()
	var l *mesh.Line
	sys, err := assembler.New().Assemble(l,
		mustFixed(t, boundary.Left, 0),
		mustFixed(t, boundary.Right, 1))
	require.ErrorIs(t, err, assembler.ErrNilMesh)
	require.Nil(t, sys)
}
