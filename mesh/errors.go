package mesh

import "errors"

var (
	// ErrInvalidMesh indicates a non-positive cell count or a non-positive
	// (or non-finite) cell width.
	ErrInvalidMesh = errors.New("mesh: invalid mesh parameters")

	// ErrFaceOutOfRange indicates a face index outside [0, FaceCount()).
	ErrFaceOutOfRange = errors.New("mesh: face index out of range")
)
