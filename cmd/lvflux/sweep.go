package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvflux/assembler"
	"github.com/katalvlaran/lvflux/internal/sweep"
	"github.com/katalvlaran/lvflux/solver"
)

func newSweepCmd(a *app) *cobra.Command {
	grid := sweep.Grid{
		Cells:  []int{1, 2, 50},
		Widths: []float64{0.1, 1, 3},
		Lefts:  []float64{0, -2},
		Rights: []float64{1, 7},
	}
	workers := runtime.GOMAXPROCS(0)

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Verify every combination of cells, widths and end values",
		Long: `sweep expands the given axes into their cartesian product, solves every
problem concurrently and prints one line per problem followed by the overall
verdict.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.resolveConfig(cmd)
			if err != nil {
				return err
			}
			if err = cfg.Validate(); err != nil {
				return err
			}
			if workers < 1 {
				return fmt.Errorf("--workers=%d: need at least one worker", workers)
			}
			slv, err := solver.ByName(cfg.Solver)
			if err != nil {
				return err
			}
			grid.Tolerance = cfg.Tolerance

			problems, err := grid.Problems()
			if err != nil {
				return err
			}
			a.logger.Debug("sweep starting",
				zap.Int("problems", len(problems)),
				zap.Int("workers", workers),
				zap.String("solver", slv.Name()),
			)

			outcomes, err := sweep.Run(cmd.Context(), problems, assembler.New(cfg.AssemblerOptions()...), slv,
				sweep.WithWorkers(workers), sweep.WithLogger(a.logger))
			if err != nil {
				return err
			}

			failed := 0
			for _, o := range outcomes {
				if o.Err != nil || !o.OK {
					failed++
				}
				if _, err = fmt.Fprintln(a.stdout, o.String()); err != nil {
					return err
				}
			}
			a.logger.Info("sweep finished", zap.Int("problems", len(outcomes)), zap.Int("failed", failed))

			return printVerdict(a.stdout, sweep.AllOK(outcomes))
		},
	}

	f := cmd.Flags()
	f.IntSliceVar(&grid.Cells, "cells", grid.Cells, "cell counts")
	f.Float64SliceVar(&grid.Widths, "width", grid.Widths, "cell widths")
	f.Float64SliceVar(&grid.Lefts, "left", grid.Lefts, "left face values")
	f.Float64SliceVar(&grid.Rights, "right", grid.Rights, "right face values")
	f.IntVar(&workers, "workers", workers, "problems solved concurrently")

	return cmd
}
