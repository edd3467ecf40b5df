// SPDX-License-Identifier: MIT

// Package pipeline wires mesh, boundary conditions, assembler, solver and
// verifier into a single fail-fast run:
//
//	Mesh -> conditions -> Assemble -> Solve -> Verify [-> Plot]
//
// Every collaborator is passed in explicitly. Run keeps no state, so one
// assembler and one solver may serve concurrent runs (see internal/sweep).
package pipeline
