package verify

import "errors"

var (
	// ErrNilMesh indicates a nil mesh, or one reporting no cells.
	ErrNilMesh = errors.New("verify: mesh is nil")

	// ErrLengthMismatch indicates len(numerical) != mesh.CellCount().
	ErrLengthMismatch = errors.New("verify: solution length does not match mesh")

	// ErrInvalidTolerance indicates a negative, NaN or infinite tolerance.
	ErrInvalidTolerance = errors.New("verify: tolerance must be finite and >= 0")
)
