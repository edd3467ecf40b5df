// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvflux/linalg"
)

// CG defaults.
const (
	// DefaultCGTolerance is the relative residual target ‖r‖ <= tol·‖b‖.
	DefaultCGTolerance = 1e-13

	// minCGIterations floors the default iteration cap for tiny systems.
	minCGIterations = 100
)

// CG is the unpreconditioned conjugate gradient method.
//
// Diffusion operators are symmetric negative definite, so CG iterates on
// −A·u = −b. Only Apply is used, so any Operator storage works.
// The zero value uses DefaultCGTolerance and max(10·n, 100) iterations.
type CG struct {
	Tolerance     float64 // relative residual target
	MaxIterations int     // iteration cap
	// SkipSymmetryCheck disables the linalg.ValidateSymmetric precheck.
	SkipSymmetryCheck bool
}

var _ Solver = CG{}

// Name returns "cg".
func (CG) Name() string { return NameCG }

// Solve iterates from u = 0.
//
// Errors: ErrNilSystem, linalg.ErrAsymmetry (wrapped), *SingularError when
// the search direction loses definiteness (p·Mp <= 0), ErrNotConverged.
// Complexity: O(iterations · cost(Apply)).
func (s CG) Solve(sys *linalg.System) (Solution, error) {
	if err := checkSystem(sys); err != nil {
		return nil, fmt.Errorf("%s: %w", NameCG, err)
	}
	if !s.SkipSymmetryCheck {
		if err := linalg.ValidateSymmetric(sys.A, 1e-12); err != nil {
			return nil, fmt.Errorf("%s: %w", NameCG, err)
		}
	}

	n := sys.Size()
	tol := s.Tolerance
	if tol <= 0 {
		tol = DefaultCGTolerance
	}
	maxIter := s.MaxIterations
	if maxIter <= 0 {
		maxIter = max(10*n, minCGIterations)
	}

	x := make(Solution, n)
	r := make([]float64, n)  // residual of −A·x = −b
	p := make([]float64, n)  // search direction
	mp := make([]float64, n) // −A·p
	for i, v := range sys.B {
		r[i] = -v
		p[i] = -v
	}

	rr := linalg.Dot(r, r)
	if rr == 0 {
		return x, nil // b = 0 ⇒ u = 0
	}
	threshold := tol * tol * rr

	var alpha, beta, pmp, rrNew float64
	for iter := 0; iter < maxIter; iter++ {
		if err := sys.A.Apply(mp, p); err != nil {
			return nil, fmt.Errorf("%s: %w", NameCG, err)
		}
		for i := range mp {
			mp[i] = -mp[i]
		}
		pmp = linalg.Dot(p, mp)
		if !(pmp > 0) || math.IsInf(pmp, 0) {
			return nil, &SingularError{Solver: NameCG, Row: -1, Pivot: pmp}
		}
		alpha = rr / pmp
		for i := range x {
			x[i] += alpha * p[i]
			r[i] -= alpha * mp[i]
		}
		rrNew = linalg.Dot(r, r)
		if rrNew <= threshold {
			if !allFinite(x) {
				return nil, &SingularError{Solver: NameCG, Row: -1}
			}

			return x, nil
		}
		beta = rrNew / rr
		for i := range p {
			p[i] = r[i] + beta*p[i]
		}
		rr = rrNew
	}

	return nil, fmt.Errorf("%s: %d iterations, max residual %g: %w", NameCG, maxIter, linalg.NormInf(r), ErrNotConverged)
}
