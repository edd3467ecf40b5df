package verify_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvflux/assembler"
	"github.com/katalvlaran/lvflux/boundary"
	"github.com/katalvlaran/lvflux/mesh"
	"github.com/katalvlaran/lvflux/solver"
	"github.com/katalvlaran/lvflux/verify"
)

func solve(t *testing.T, n int, dx, vL, vR float64) (*mesh.Line, solver.Solution) {
	t.Helper()
	l, err := mesh.NewLine(n, dx)
	require.NoError(t, err)
	left, err := boundary.FixedValue(boundary.Left, vL)
	require.NoError(t, err)
	right, err := boundary.FixedValue(boundary.Right, vR)
	require.NoError(t, err)
	sys, err := assembler.New().Assemble(l, left, right)
	require.NoError(t, err)
	u, err := solver.Thomas{}.Solve(sys)
	require.NoError(t, err)

	return l, u
}

func TestAnalytical(t *testing.T) {
	t.Parallel()
	l, err := mesh.NewLine(4, 0.5)
	require.NoError(t, err)

	got := verify.Analytical(l, 1, 3)
	want := []float64{1.25, 1.75, 2.25, 2.75}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-15)); diff != "" {
		t.Fatalf("Analytical mismatch (-want +got):\n%s", diff)
	}
}

func TestCompare_EveryConfigurationAgrees(t *testing.T) {
	t.Parallel()
	for _, n := range []int{1, 2, 3, 10, 50, 200} {
		for _, dx := range []float64{0.01, 0.5, 1, 7.5} {
			for _, bc := range [][2]float64{{0, 1}, {1, 0}, {-4, 4}, {2.5, 2.5}, {100, -100}} {
				name := fmt.Sprintf("n=%d/dx=%g/%v", n, dx, bc)
				l, u := solve(t, n, dx, bc[0], bc[1])
				// Values up to 100 carry proportionally larger rounding.
				tol := verify.DefaultTolerance * math.Max(1, math.Abs(bc[0]))
				ok, err := verify.Compare(u, l, bc[0], bc[1], verify.WithTolerance(tol))
				require.NoError(t, err, name)
				require.True(t, ok, name)
			}
		}
	}
}

func TestCompare_ExampleScenario(t *testing.T) {
	t.Parallel()
	l, u := solve(t, 50, 1, 0, 1)
	ok, err := verify.Compare(u, l, 0, 1)
	require.NoError(t, err)
	require.True(t, ok)

	rep, err := verify.Check(u, l, 0, 1)
	require.NoError(t, err)
	require.True(t, rep.OK)
	require.LessOrEqual(t, rep.MaxError, 1e-10)
	require.Equal(t, verify.DefaultTolerance, rep.Tolerance)
}

func TestCheck_DetectsDeviation(t *testing.T) {
	t.Parallel()
	l, u := solve(t, 5, 1, 0, 1)
	u[3] += 1e-6

	rep, err := verify.Check(u, l, 0, 1)
	require.NoError(t, err)
	require.False(t, rep.OK)
	require.Equal(t, 3, rep.Cell)
	require.InDelta(t, 1e-6, rep.MaxError, 1e-12)

	ok, err := verify.Compare(u, l, 0, 1, verify.WithTolerance(1e-5))
	require.NoError(t, err)
	require.True(t, ok)
}

func TestCheck_NaNNeverPasses(t *testing.T) {
	t.Parallel()
	l, u := solve(t, 3, 1, 0, 1)
	u[1] = math.NaN()
	ok, err := verify.Compare(u, l, 0, 1, verify.WithTolerance(1e9))
	require.NoError(t, err)
	require.False(t, ok)
}

func TestCheck_Errors(t *testing.T) {
	t.Parallel()
	l, u := solve(t, 3, 1, 0, 1)

	_, err := verify.Compare(u, nil, 0, 1)
	require.ErrorIs(t, err, verify.ErrNilMesh)

	_, err = verify.Compare(u[:2], l, 0, 1)
	require.ErrorIs(t, err, verify.ErrLengthMismatch)

	for _, tol := range []float64{-1, math.NaN(), math.Inf(1)} {
		_, err = verify.Compare(u, l, 0, 1, verify.WithTolerance(tol))
		require.ErrorIs(t, err, verify.ErrInvalidTolerance)
	}
}

func TestMaxAbsError(t *testing.T) {
	t.Parallel()
	d, i := verify.MaxAbsError([]float64{1, 2, 3}, []float64{1, 2.5, 2})
	require.Equal(t, 1.0, d)
	require.Equal(t, 2, i)

	d, i = verify.MaxAbsError(nil, nil)
	require.Zero(t, d)
	require.Equal(t, -1, i)
}

func TestCheck_TypedNilMesh(t *testing.T) {
	t.Parallel()
	var l *mesh.Line
	_, err := verify.Check([]float64{1}, l, 0, 1)
	require.ErrorIs(t, err, verify.ErrNilMesh)
}

func TestCompare_LargeMeshNeedsLooserTolerance(t *testing.T) {
	t.Parallel()
	if testing.Short() {
		t.Skip("large mesh")
	}
	l, u := solve(t, 100000, 1, 0, 1)

	rep, err := verify.Check(u, l, 0, 1, verify.WithTolerance(1e-8))
	require.NoError(t, err)
	require.True(t, rep.OK, "max error %g at cell %d", rep.MaxError, rep.Cell)
	require.Greater(t, rep.MaxError, 0.0)
}
