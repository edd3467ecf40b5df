// Package lvflux solves the steady one-dimensional diffusion equation
//
//	d/dx (γ du/dx) = 0,   u(0) = vL,   u(L) = vR
//
// with a cell-centred finite-volume scheme and checks the discrete solution
// against the exact linear profile u(x) = vL + (vR − vL)·x/L.
//
// The work is split into small packages, leaf first:
//
//	mesh/      uniform 1D line: cells, centres, faces
//	boundary/  fixed-value and fixed-flux face conditions
//	linalg/    Operator interface, tridiagonal and dense storage, LU kernel
//	assembler/ diffusion operator assembly with boundary folding
//	solver/    Thomas (default), dense LU, conjugate gradient
//	verify/    analytical profile and max-norm comparison
//	pipeline/  Mesh → Assemble → Solve → Verify, optional plotting
//	plot/      CSV, YAML and ASCII renderers of a profile
//	cmd/lvflux command-line entry point (solve, sweep, version)
//
// Quick example (50 unit cells, 0 on the left, 1 on the right):
//
//	p := pipeline.Problem{Mesh: mesh.Config{CellCount: 50, CellWidth: 1}, Left: 0, Right: 1}
//	res, err := pipeline.Run(p, assembler.New(), solver.Thomas{})
//	// res.OK() == true, res.Solution[0] ≈ 0.01, res.Solution[49] ≈ 0.99
//
// On this mesh the scheme reproduces linear profiles exactly, so the
// comparison holds to round-off (1e-10) for any cell count, width and end
// values.
//
//	go install github.com/katalvlaran/lvflux/cmd/lvflux@latest
package lvflux
