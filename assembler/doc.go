// SPDX-License-Identifier: MIT

// Package assembler turns a mesh and its boundary conditions into the linear
// system of the steady diffusion equation ∇·(γ∇u) = 0.
//
// Finite-volume discretisation, per cell P with volume V:
//
//	Σ_interior faces  γ·A/(d·V) · (u_N − u_P)   (owner/neighbour coupling)
//	+ Σ_boundary faces Contribution(face)        (folded in by the condition)
//	= 0
//
// On the uniform Line this yields diag −2/dx², off-diagonals 1/dx² inside, and
// a −2/dx² boundary coefficient at each Dirichlet end (the face is dx/2 from
// the centre), with rhs −2·value/dx². The scheme reproduces linear profiles
// exactly.
//
// The result is returned as *linalg.System whose matrix is only reachable via
// linalg.Operator, so solvers are free of any storage assumption.
package assembler
