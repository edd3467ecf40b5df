package boundary

import "errors"

var (
	// ErrInvalidValue indicates a NaN or ±Inf boundary value.
	ErrInvalidValue = errors.New("boundary: value must be finite")

	// ErrInvalidLocation indicates a Location other than Left or Right.
	ErrInvalidLocation = errors.New("boundary: unknown location")

	// ErrNilMesh indicates AppliesAt was called without a mesh (or a nil *mesh.Line).
	ErrNilMesh = errors.New("boundary: mesh is nil")
)
