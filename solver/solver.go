// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/katalvlaran/lvflux/linalg"
)

// Solution holds one value per cell. It is owned by the caller once returned.
type Solution []float64

// Solver solves A·u = b.
type Solver interface {
	// Solve returns u for sys, or an error; it never mutates sys.
	Solve(sys *linalg.System) (Solution, error)

	// Name returns the registry name ("thomas", "lu", "cg").
	Name() string
}

// Registry names.
const (
	NameThomas  = "thomas"
	NameDenseLU = "lu"
	NameCG      = "cg"
)

// ByName returns a default-configured solver for name (case-insensitive).
func ByName(name string) (Solver, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case NameThomas, "":
		return Thomas{}, nil
	case NameDenseLU:
		return DenseLU{}, nil
	case NameCG:
		return CG{}, nil
	default:
		return nil, fmt.Errorf("ByName(%q): %w (want one of %s)", name, ErrUnknownSolver, strings.Join(Names(), ", "))
	}
}

// Names lists registered solver names in sorted order.
func Names() []string {
	out := []string{NameThomas, NameDenseLU, NameCG}
	sort.Strings(out)

	return out
}

// checkSystem guards the common preconditions. Systems built by hand bypass
// linalg.NewSystem, so the size is checked again here.
func checkSystem(sys *linalg.System) error {
	if sys == nil || sys.A == nil {
		return ErrNilSystem
	}
	if sys.Size() <= 0 {
		return linalg.ErrInvalidDimensions
	}
	if err := linalg.ValidateVecLen(sys.B, sys.Size()); err != nil {
		return err
	}

	return nil
}

// allFinite reports whether every entry of x is finite.
func allFinite(x []float64) bool {
	for _, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}
