package boundary

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvflux/mesh"
)

// Location names a domain end.
type Location int

const (
	// Left is the face at minimum x.
	Left Location = iota + 1
	// Right is the face at maximum x.
	Right
)

// String implements fmt.Stringer.
func (l Location) String() string {
	switch l {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("Location(%d)", int(l))
	}
}

// ParseLocation maps "left"/"right" to a Location.
func ParseLocation(s string) (Location, error) {
	switch s {
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	default:
		return 0, fmt.Errorf("ParseLocation(%q): %w", s, ErrInvalidLocation)
	}
}

// Kind tells conditions apart in logs and reports.
type Kind string

const (
	KindFixedValue Kind = "fixed-value"
	KindFixedFlux  Kind = "fixed-flux"
)

// Contribution is what a condition adds to its owning cell's row of A·x = b.
type Contribution struct {
	Diag float64 // added to A[owner][owner]
	RHS  float64 // added to b[owner]
}

// Condition is a boundary condition attached to one domain end.
type Condition interface {
	// Location returns the domain end the condition targets.
	Location() Location

	// Value returns the imposed value (field value or outward gradient).
	Value() float64

	// Kind identifies the condition type.
	Kind() Kind

	// AppliesAt returns the indices (into m.Faces()) of the faces covered.
	AppliesAt(m mesh.Mesh) ([]int, error)

	// Contribute returns the row update for boundary face f of a cell of the
	// given volume under diffusivity gamma.
	Contribute(f mesh.Face, gamma, volume float64) Contribution
}

// base carries the shared location/value pair and face selection.
type base struct {
	loc   Location
	value float64
}

func newBase(tag string, loc Location, value float64) (base, error) {
	if loc != Left && loc != Right {
		return base{}, fmt.Errorf("%s: %w", tag, ErrInvalidLocation)
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return base{}, fmt.Errorf("%s(%s, %g): %w", tag, loc, value, ErrInvalidValue)
	}

	return base{loc: loc, value: value}, nil
}

func (b base) Location() Location { return b.loc }

func (b base) Value() float64 { return b.value }

func (b base) AppliesAt(m mesh.Mesh) ([]int, error) {
	if m == nil || m.CellCount() <= 0 {
		return nil, ErrNilMesh
	}
	if b.loc == Left {
		return m.FacesLeft(), nil
	}

	return m.FacesRight(), nil
}

// fixedValue is a Dirichlet condition.
type fixedValue struct{ base }

// FixedValue returns a condition pinning the field to value at loc.
//
// Errors: ErrInvalidLocation, ErrInvalidValue (NaN/±Inf).
func FixedValue(loc Location, value float64) (Condition, error) {
	b, err := newBase("FixedValue", loc, value)
	if err != nil {
		return nil, err
	}

	return fixedValue{b}, nil
}

func (fixedValue) Kind() Kind { return KindFixedValue }

// Contribute folds the face value into the owner row (ghost-cell elimination):
// the face sits Distance from the centre, giving coefficient
// c = gamma·Area/(Distance·volume); the diagonal loses c and the right-hand
// side loses c·value.
func (c fixedValue) Contribute(f mesh.Face, gamma, volume float64) Contribution {
	coeff := gamma * f.Area / (f.Distance * volume)

	return Contribution{Diag: -coeff, RHS: -coeff * c.value}
}

func (c fixedValue) String() string {
	return fmt.Sprintf("FixedValue(%s, %g)", c.loc, c.value)
}

// fixedFlux is a Neumann condition.
type fixedFlux struct{ base }

// FixedFlux returns a condition imposing the outward normal gradient
// ∂u/∂n = gradient at loc. A zero gradient is an insulated end.
//
// Errors: ErrInvalidLocation, ErrInvalidValue (NaN/±Inf).
func FixedFlux(loc Location, gradient float64) (Condition, error) {
	b, err := newBase("FixedFlux", loc, gradient)
	if err != nil {
		return nil, err
	}

	return fixedFlux{b}, nil
}

func (fixedFlux) Kind() Kind { return KindFixedFlux }

// Contribute moves the known face flux gamma·g·Area/volume to the right-hand
// side; the diagonal is untouched.
func (c fixedFlux) Contribute(f mesh.Face, gamma, volume float64) Contribution {
	return Contribution{RHS: -gamma * c.value * f.Area / volume}
}

func (c fixedFlux) String() string {
	return fmt.Sprintf("FixedFlux(%s, %g)", c.loc, c.value)
}
