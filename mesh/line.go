package mesh

import (
	"fmt"
	"math"
)

// Line is a uniform 1D mesh of CellCount cells of width CellWidth.
type Line struct {
	n  int
	dx float64
}

var _ Mesh = (*Line)(nil)

// NewLine validates its inputs and returns an immutable Line.
//
// Errors: ErrInvalidMesh when cellCount <= 0 or cellWidth is not a positive
// finite number.
func NewLine(cellCount int, cellWidth float64) (*Line, error) {
	if cellCount <= 0 {
		return nil, fmt.Errorf("NewLine: cellCount=%d: %w", cellCount, ErrInvalidMesh)
	}
	if !(cellWidth > 0) || math.IsInf(cellWidth, 0) {
		return nil, fmt.Errorf("NewLine: cellWidth=%g: %w", cellWidth, ErrInvalidMesh)
	}

	return &Line{n: cellCount, dx: cellWidth}, nil
}

// NewLineFromConfig is NewLine for a Config value.
func NewLineFromConfig(c Config) (*Line, error) {
	return NewLine(c.CellCount, c.CellWidth)
}

// CellCount returns the number of cells, or 0 for a nil *Line so that
// callers holding a Mesh interface can reject it without reflection.
func (l *Line) CellCount() int {
	if l == nil {
		return 0
	}

	return l.n
}

// CellWidth returns dx.
func (l *Line) CellWidth() float64 { return l.dx }

// CellVolume returns dx for every cell.
func (l *Line) CellVolume(int) float64 { return l.dx }

// DomainLength returns CellCount × CellWidth.
func (l *Line) DomainLength() float64 { return float64(l.n) * l.dx }

// CellCenters returns {(i+0.5)·dx : i ∈ [0, n)}.
func (l *Line) CellCenters() []float64 {
	out := make([]float64, l.n)
	for i := range out {
		out[i] = (float64(i) + 0.5) * l.dx
	}

	return out
}

// FaceCount returns n+1.
func (l *Line) FaceCount() int { return l.n + 1 }

// Face returns face i: 0 is the left boundary, n the right boundary, and
// 1..n-1 join cell i-1 (owner) to cell i.
func (l *Line) Face(i int) (Face, error) {
	if i < 0 || i >= l.FaceCount() {
		return Face{}, fmt.Errorf("Line.Face(%d): %w", i, ErrFaceOutOfRange)
	}
	half := l.dx / 2
	switch i {
	case 0:
		return Face{Index: 0, Owner: 0, Neighbor: -1, Area: 1, Distance: half, Normal: -1}, nil
	case l.n:
		return Face{Index: l.n, Owner: l.n - 1, Neighbor: -1, Area: 1, Distance: half, Normal: 1}, nil
	default:
		return Face{Index: i, Owner: i - 1, Neighbor: i, Area: 1, Distance: l.dx, Normal: 1}, nil
	}
}

// Faces returns all n+1 faces in index order.
func (l *Line) Faces() []Face {
	fc := l.FaceCount()
	out := make([]Face, 0, fc)
	for i := 0; i < fc; i++ {
		f, _ := l.Face(i) // i is always in range here
		out = append(out, f)
	}

	return out
}

// FacesLeft returns {0}.
func (l *Line) FacesLeft() []int { return []int{0} }

// FacesRight returns {n}.
func (l *Line) FacesRight() []int { return []int{l.n} }

// String implements fmt.Stringer.
func (l *Line) String() string {
	return fmt.Sprintf("Line{cells:%d dx:%g L:%g}", l.n, l.dx, l.DomainLength())
}
