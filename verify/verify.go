package verify

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvflux/mesh"
)

// DefaultTolerance is the absolute agreement threshold of Compare.
// Round-off grows roughly with the square of the cell count, so meshes of
// around 1e5 cells and more need a looser tolerance (e.g. 1e-8).
const DefaultTolerance = 1e-10

// Option configures Compare and Check.
type Option func(*options)

type options struct {
	tolerance float64
}

// WithTolerance overrides DefaultTolerance. Validated by Compare/Check.
func WithTolerance(tol float64) Option {
	return func(o *options) { o.tolerance = tol }
}

// Report is the detailed outcome of Check.
type Report struct {
	OK        bool    // MaxError <= Tolerance
	MaxError  float64 // max_i |numerical[i] − analytical[i]|
	Cell      int     // index attaining MaxError (first on ties)
	Tolerance float64 // threshold used
}

// Analytical returns vL + (vR − vL)·x/L for every cell centre x of m.
func Analytical(m mesh.Mesh, vL, vR float64) []float64 {
	x := m.CellCenters()
	L := m.DomainLength()
	out := make([]float64, len(x))
	for i, xi := range x {
		out[i] = vL + (vR-vL)*xi/L
	}

	return out
}

// MaxAbsError returns max|a[i] − b[i]| and its first index.
// The caller guarantees len(a) == len(b); empty input yields (0, -1).
func MaxAbsError(a, b []float64) (float64, int) {
	worst, at := 0.0, -1
	for i := range a {
		d := math.Abs(a[i] - b[i])
		if at < 0 || d > worst || math.IsNaN(d) {
			worst, at = d, i
			if math.IsNaN(d) {
				break
			}
		}
	}

	return worst, at
}

// Check compares numerical against the analytical profile and reports the
// worst cell.
//
// Errors: ErrNilMesh, ErrLengthMismatch, ErrInvalidTolerance.
func Check(numerical []float64, m mesh.Mesh, vL, vR float64, opts ...Option) (Report, error) {
	o := options{tolerance: DefaultTolerance}
	for _, opt := range opts {
		opt(&o)
	}
	if m == nil || m.CellCount() <= 0 {
		return Report{}, ErrNilMesh
	}
	if math.IsNaN(o.tolerance) || math.IsInf(o.tolerance, 0) || o.tolerance < 0 {
		return Report{}, fmt.Errorf("Check: tolerance %g: %w", o.tolerance, ErrInvalidTolerance)
	}
	if len(numerical) != m.CellCount() {
		return Report{}, fmt.Errorf("Check: %d values for %d cells: %w", len(numerical), m.CellCount(), ErrLengthMismatch)
	}

	worst, at := MaxAbsError(numerical, Analytical(m, vL, vR))

	return Report{
		OK:        worst <= o.tolerance, // false for NaN
		MaxError:  worst,
		Cell:      at,
		Tolerance: o.tolerance,
	}, nil
}

// Compare reports whether max|numerical − analytical| <= tolerance
// (DefaultTolerance unless WithTolerance is given).
func Compare(numerical []float64, m mesh.Mesh, vL, vR float64, opts ...Option) (bool, error) {
	r, err := Check(numerical, m, vL, vR, opts...)
	if err != nil {
		return false, err
	}

	return r.OK, nil
}
