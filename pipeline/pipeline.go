// SPDX-License-Identifier: MIT

package pipeline

import (
	"fmt"

	"github.com/katalvlaran/lvflux/boundary"
	"github.com/katalvlaran/lvflux/linalg"
	"github.com/katalvlaran/lvflux/mesh"
	"github.com/katalvlaran/lvflux/plot"
	"github.com/katalvlaran/lvflux/solver"
	"github.com/katalvlaran/lvflux/verify"
)

// Assembler turns a mesh and its boundary conditions into a linear system.
// *assembler.Diffusion satisfies it.
type Assembler interface {
	Assemble(m mesh.Mesh, conds ...boundary.Condition) (*linalg.System, error)
}

// Plotter receives the solved profile. plot.CSV, plot.YAML and plot.Text
// satisfy it.
type Plotter interface {
	Plot(points []plot.Point) error
}

// Problem is one steady diffusion case with fixed values at both ends.
type Problem struct {
	Mesh      mesh.Config
	Left      float64 // value at the left face
	Right     float64 // value at the right face
	Tolerance float64 // verification threshold; 0 selects verify.DefaultTolerance
}

// String renders the problem on one line for logs and sweep output.
func (p Problem) String() string {
	return fmt.Sprintf("cells=%d width=%g left=%g right=%g",
		p.Mesh.CellCount, p.Mesh.CellWidth, p.Left, p.Right)
}

// Result is the outcome of a successful Run.
type Result struct {
	Problem    Problem
	Mesh       *mesh.Line
	Solution   solver.Solution
	Analytical []float64
	Report     verify.Report
	Solver     string
}

// OK reports whether the solution agreed with the analytical profile.
func (r *Result) OK() bool { return r != nil && r.Report.OK }

// Option configures Run.
type Option func(*options)

type options struct {
	plotter Plotter
}

// WithPlotter hands the solved profile to p before verification results are
// returned. A nil p disables plotting.
func WithPlotter(p Plotter) Option {
	return func(o *options) { o.plotter = p }
}

// Run solves p with asm and slv and verifies the result.
//
// Stages fail fast: the first error is returned wrapped with the stage name
// and no Result is produced. A solution that misses the tolerance is not an
// error; it yields a Result with Report.OK == false.
func Run(p Problem, asm Assembler, slv solver.Solver, opts ...Option) (*Result, error) {
	if asm == nil {
		return nil, fmt.Errorf("Run: %w", ErrNilAssembler)
	}
	if slv == nil {
		return nil, fmt.Errorf("Run: %w", ErrNilSolver)
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	m, err := mesh.NewLineFromConfig(p.Mesh)
	if err != nil {
		return nil, fmt.Errorf("Run: mesh: %w", err)
	}
	left, err := boundary.FixedValue(boundary.Left, p.Left)
	if err != nil {
		return nil, fmt.Errorf("Run: boundary: %w", err)
	}
	right, err := boundary.FixedValue(boundary.Right, p.Right)
	if err != nil {
		return nil, fmt.Errorf("Run: boundary: %w", err)
	}

	sys, err := asm.Assemble(m, left, right)
	if err != nil {
		return nil, fmt.Errorf("Run: assemble: %w", err)
	}
	u, err := slv.Solve(sys)
	if err != nil {
		return nil, fmt.Errorf("Run: solve: %w", err)
	}

	if o.plotter != nil {
		if err = o.plotter.Plot(plot.Points(m.CellCenters(), u)); err != nil {
			return nil, fmt.Errorf("Run: plot: %w", err)
		}
	}

	var vopts []verify.Option
	if p.Tolerance != 0 {
		vopts = append(vopts, verify.WithTolerance(p.Tolerance))
	}
	report, err := verify.Check(u, m, p.Left, p.Right, vopts...)
	if err != nil {
		return nil, fmt.Errorf("Run: verify: %w", err)
	}

	return &Result{
		Problem:    p,
		Mesh:       m,
		Solution:   u,
		Analytical: verify.Analytical(m, p.Left, p.Right),
		Report:     report,
		Solver:     slv.Name(),
	}, nil
}
