// Package sweep verifies many diffusion problems concurrently.
//
// A Grid expands into the cartesian product of its axes; Run solves every
// problem on a bounded errgroup and records one Outcome per problem. A
// failing problem never stops the others; only context cancellation does.
package sweep

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvflux/mesh"
	"github.com/katalvlaran/lvflux/pipeline"
	"github.com/katalvlaran/lvflux/solver"
)

var (
	// ErrEmptyAxis indicates a Grid axis without values.
	ErrEmptyAxis = errors.New("sweep: grid axis is empty")

	// ErrNoProblems indicates Run was given nothing to do.
	ErrNoProblems = errors.New("sweep: no problems")
)

// Grid lists the values of every axis. Problems are generated cells-major.
type Grid struct {
	Cells     []int
	Widths    []float64
	Lefts     []float64
	Rights    []float64
	Tolerance float64 // shared by every problem; 0 selects the verifier default
}

// Problems expands g. Values are not validated here; invalid ones surface
// as per-problem errors in Run.
func (g Grid) Problems() ([]pipeline.Problem, error) {
	switch {
	case len(g.Cells) == 0:
		return nil, fmt.Errorf("Problems: cells: %w", ErrEmptyAxis)
	case len(g.Widths) == 0:
		return nil, fmt.Errorf("Problems: widths: %w", ErrEmptyAxis)
	case len(g.Lefts) == 0:
		return nil, fmt.Errorf("Problems: lefts: %w", ErrEmptyAxis)
	case len(g.Rights) == 0:
		return nil, fmt.Errorf("Problems: rights: %w", ErrEmptyAxis)
	}

	out := make([]pipeline.Problem, 0, len(g.Cells)*len(g.Widths)*len(g.Lefts)*len(g.Rights))
	for _, n := range g.Cells {
		for _, dx := range g.Widths {
			for _, vL := range g.Lefts {
				for _, vR := range g.Rights {
					out = append(out, pipeline.Problem{
						Mesh:      mesh.Config{CellCount: n, CellWidth: dx},
						Left:      vL,
						Right:     vR,
						Tolerance: g.Tolerance,
					})
				}
			}
		}
	}

	return out, nil
}

// Outcome is the result of one problem.
type Outcome struct {
	Index    int
	Problem  pipeline.Problem
	OK       bool
	MaxError float64
	Err      error
}

// String renders the outcome on one line.
func (o Outcome) String() string {
	if o.Err != nil {
		return fmt.Sprintf("%s: error: %v", o.Problem, o.Err)
	}

	return fmt.Sprintf("%s: %t (max error %.3g)", o.Problem, o.OK, o.MaxError)
}

// AllOK reports whether every outcome verified without error.
// An empty slice is not OK.
func AllOK(outcomes []Outcome) bool {
	if len(outcomes) == 0 {
		return false
	}
	for _, o := range outcomes {
		if o.Err != nil || !o.OK {
			return false
		}
	}

	return true
}

// Option configures Run.
type Option func(*options)

type options struct {
	workers int
	logger  *zap.Logger
}

// WithWorkers bounds the number of problems solved at once. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("sweep: WithWorkers(%d): need at least one worker", n))
	}

	return func(o *options) { o.workers = n }
}

// WithLogger sets the logger receiving per-problem debug records.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Run solves problems with asm and slv, at most WithWorkers at a time
// (GOMAXPROCS by default). Outcomes are returned in input order.
//
// asm and slv are shared by all workers and must be safe for concurrent use;
// *assembler.Diffusion and the solver package types are.
//
// Errors: ErrNoProblems, pipeline.ErrNilAssembler, pipeline.ErrNilSolver,
// or ctx.Err() when cancelled before every problem ran.
func Run(ctx context.Context, problems []pipeline.Problem, asm pipeline.Assembler, slv solver.Solver, opts ...Option) ([]Outcome, error) {
	if len(problems) == 0 {
		return nil, fmt.Errorf("Run: %w", ErrNoProblems)
	}
	if asm == nil {
		return nil, fmt.Errorf("Run: %w", pipeline.ErrNilAssembler)
	}
	if slv == nil {
		return nil, fmt.Errorf("Run: %w", pipeline.ErrNilSolver)
	}
	o := options{workers: runtime.GOMAXPROCS(0), logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	outcomes := make([]Outcome, len(problems))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)

	for i, p := range problems {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			outcomes[i] = solveOne(i, p, asm, slv)
			o.logger.Debug("problem solved",
				zap.Int("index", i),
				zap.Stringer("problem", p),
				zap.Bool("ok", outcomes[i].OK),
				zap.Float64("max_error", outcomes[i].MaxError),
				zap.Error(outcomes[i].Err),
			)

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}

	return outcomes, nil
}

func solveOne(i int, p pipeline.Problem, asm pipeline.Assembler, slv solver.Solver) Outcome {
	out := Outcome{Index: i, Problem: p}
	res, err := pipeline.Run(p, asm, slv)
	if err != nil {
		out.Err = err

		return out
	}
	out.OK = res.OK()
	out.MaxError = res.Report.MaxError

	return out
}
