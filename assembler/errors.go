// SPDX-License-Identifier: MIT

package assembler

import "errors"

var (
	// ErrNilMesh indicates Assemble was called with a nil mesh or one reporting no cells.
	ErrNilMesh = errors.New("assembler: mesh is nil")

	// ErrIncompleteBoundary indicates fewer than two conditions, or a boundary
	// face that no condition covers.
	ErrIncompleteBoundary = errors.New("assembler: incomplete boundary specification")

	// ErrConflictingBoundary indicates two conditions covering the same face.
	ErrConflictingBoundary = errors.New("assembler: conflicting boundary conditions")

	// ErrUnknownFace indicates a condition selected a face that is not a
	// boundary face of the mesh.
	ErrUnknownFace = errors.New("assembler: condition selected a non-boundary face")

	// ErrUnknownStorage indicates a storage name ParseStorage does not recognise.
	ErrUnknownStorage = errors.New("assembler: unknown storage")
)
