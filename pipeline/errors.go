// SPDX-License-Identifier: MIT

package pipeline

import "errors"

var (
	// ErrNilAssembler indicates Run was called without an assembler.
	ErrNilAssembler = errors.New("pipeline: assembler is nil")

	// ErrNilSolver indicates Run was called without a solver.
	ErrNilSolver = errors.New("pipeline: solver is nil")
)
