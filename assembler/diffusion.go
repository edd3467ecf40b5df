// SPDX-License-Identifier: MIT

package assembler

import (
	"fmt"

	"github.com/katalvlaran/lvflux/boundary"
	"github.com/katalvlaran/lvflux/linalg"
	"github.com/katalvlaran/lvflux/mesh"
)

// accumulator is the write side every storage offers the assembler.
type accumulator interface {
	linalg.Operator
	Add(row, col int, v float64) error
}

// Diffusion assembles steady diffusion systems. It holds only immutable
// options, so one value may assemble independent problems concurrently.
type Diffusion struct {
	opts options
}

// New returns an assembler configured by opts.
func New(opts ...Option) *Diffusion {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Diffusion{opts: o}
}

// Diffusivity returns γ.
func (d *Diffusion) Diffusivity() float64 { return d.opts.gamma }

// Storage returns the operator backing in use.
func (d *Diffusion) Storage() Storage { return d.opts.storage }

// Assemble builds A·u = b for mesh m under conds.
//
// Implementation:
//   - Stage 1: validate mesh and condition count.
//   - Stage 2: map every boundary face to exactly one condition.
//   - Stage 3: accumulate interior couplings face by face.
//   - Stage 4: fold each boundary condition into its owner row.
//
// Errors (in detection order):
//   - ErrNilMesh for a nil mesh or one reporting no cells,
//   - ErrIncompleteBoundary when fewer than two conditions are given,
//   - ErrUnknownFace, ErrConflictingBoundary while mapping faces,
//   - ErrIncompleteBoundary when a boundary face stays uncovered,
//   - linalg errors (e.g. ErrOutsideBand) when the mesh does not fit the storage.
//
// No system is returned on error.
//
// Complexity: O(cells + faces) for tridiagonal storage, O(cells²) for dense.
func (d *Diffusion) Assemble(m mesh.Mesh, conds ...boundary.Condition) (*linalg.System, error) {
	// A typed nil *mesh.Line reports zero cells.
	if m == nil || m.CellCount() <= 0 {
		return nil, fmt.Errorf("Assemble: %w", ErrNilMesh)
	}
	present := make([]boundary.Condition, 0, len(conds))
	for _, c := range conds {
		if c != nil {
			present = append(present, c)
		}
	}
	if len(present) < 2 {
		return nil, fmt.Errorf("Assemble: %d condition(s) supplied, need 2: %w", len(present), ErrIncompleteBoundary)
	}

	faces := m.Faces()
	owners, err := bindFaces(m, faces, present)
	if err != nil {
		return nil, err
	}

	n := m.CellCount()
	A, err := d.allocate(n)
	if err != nil {
		return nil, fmt.Errorf("Assemble: %w", err)
	}
	b := make([]float64, n)
	gamma := d.opts.gamma

	var (
		coeff float64
		o, nb int
	)
	for _, f := range faces {
		if f.IsBoundary() {
			continue
		}
		o, nb = f.Owner, f.Neighbor
		// Owner row.
		coeff = gamma * f.Area / (f.Distance * m.CellVolume(o))
		if err = A.Add(o, o, -coeff); err != nil {
			return nil, fmt.Errorf("Assemble: face %d: %w", f.Index, err)
		}
		if err = A.Add(o, nb, coeff); err != nil {
			return nil, fmt.Errorf("Assemble: face %d: %w", f.Index, err)
		}
		// Neighbour row.
		coeff = gamma * f.Area / (f.Distance * m.CellVolume(nb))
		if err = A.Add(nb, nb, -coeff); err != nil {
			return nil, fmt.Errorf("Assemble: face %d: %w", f.Index, err)
		}
		if err = A.Add(nb, o, coeff); err != nil {
			return nil, fmt.Errorf("Assemble: face %d: %w", f.Index, err)
		}
	}

	var contrib boundary.Contribution
	for _, f := range faces {
		if !f.IsBoundary() {
			continue
		}
		o = f.Owner
		contrib = owners[f.Index].Contribute(f, gamma, m.CellVolume(o))
		if err = A.Add(o, o, contrib.Diag); err != nil {
			return nil, fmt.Errorf("Assemble: boundary face %d: %w", f.Index, err)
		}
		b[o] += contrib.RHS
	}

	sys, err := linalg.NewSystem(A, b)
	if err != nil {
		return nil, fmt.Errorf("Assemble: %w", err)
	}

	return sys, nil
}

// bindFaces maps each boundary face index to the single condition covering it.
func bindFaces(m mesh.Mesh, faces []mesh.Face, conds []boundary.Condition) (map[int]boundary.Condition, error) {
	isBoundary := make(map[int]bool, 2)
	for _, f := range faces {
		if f.IsBoundary() {
			isBoundary[f.Index] = true
		}
	}

	owners := make(map[int]boundary.Condition, len(isBoundary))
	for _, c := range conds {
		idx, err := c.AppliesAt(m)
		if err != nil {
			return nil, fmt.Errorf("Assemble: %s condition: %w", c.Location(), err)
		}
		for _, i := range idx {
			if !isBoundary[i] {
				return nil, fmt.Errorf("Assemble: %s condition selected face %d: %w", c.Location(), i, ErrUnknownFace)
			}
			if prev, taken := owners[i]; taken {
				return nil, fmt.Errorf("Assemble: face %d claimed by %s and %s conditions: %w",
					i, prev.Location(), c.Location(), ErrConflictingBoundary)
			}
			owners[i] = c
		}
	}

	for _, f := range faces {
		if f.IsBoundary() && owners[f.Index] == nil {
			return nil, fmt.Errorf("Assemble: boundary face %d has no condition: %w", f.Index, ErrIncompleteBoundary)
		}
	}

	return owners, nil
}

func (d *Diffusion) allocate(n int) (accumulator, error) {
	if d.opts.storage == StorageDense {
		dense, err := linalg.NewDense(n, n)
		if err != nil {
			return nil, err
		}

		return dense, nil
	}
	tri, err := linalg.NewTridiagonal(n)
	if err != nil {
		return nil, err
	}

	return tri, nil
}
