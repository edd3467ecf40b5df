// SPDX-License-Identifier: MIT

package plot

import "errors"

var (
	// ErrNilWriter indicates a renderer constructed without a destination.
	ErrNilWriter = errors.New("plot: writer is nil")

	// ErrNoPoints indicates an empty profile where at least one point is required.
	ErrNoPoints = errors.New("plot: no points to render")

	// ErrUnknownFormat indicates a format name New does not recognise.
	ErrUnknownFormat = errors.New("plot: unknown format")
)
