package main

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvflux/assembler"
	"github.com/katalvlaran/lvflux/internal/config"
	"github.com/katalvlaran/lvflux/pipeline"
	"github.com/katalvlaran/lvflux/plot"
	"github.com/katalvlaran/lvflux/solver"
)

// runSolve validates cfg, runs one problem and prints the verdict.
func (a *app) runSolve(cfg config.Config) (err error) {
	if err = cfg.Validate(); err != nil {
		return err
	}
	slv, err := solver.ByName(cfg.Solver)
	if err != nil {
		return err
	}
	asm := assembler.New(cfg.AssemblerOptions()...)

	var opts []pipeline.Option
	if cfg.Plotting() {
		w := a.stdout
		if cfg.Out != "" {
			var file *os.File
			if file, err = os.Create(cfg.Out); err != nil {
				return fmt.Errorf("open plot output: %w", err)
			}
			defer func() {
				if cerr := file.Close(); cerr != nil && err == nil {
					err = fmt.Errorf("close plot output: %w", cerr)
				}
			}()
			w = file
		}
		var p plot.Plotter
		if p, err = plot.New(cfg.Plot, w); err != nil {
			return err
		}
		opts = append(opts, pipeline.WithPlotter(p))
	}

	a.logger.Debug("solving",
		zap.Int("cells", cfg.Cells),
		zap.Float64("width", cfg.Width),
		zap.Float64("left", cfg.Left),
		zap.Float64("right", cfg.Right),
		zap.String("solver", slv.Name()),
		zap.String("storage", asm.Storage().String()),
		zap.Float64("diffusivity", asm.Diffusivity()),
	)

	res, err := pipeline.Run(cfg.Problem(), asm, slv, opts...)
	if err != nil {
		a.logger.Error("run failed", zap.Error(err))

		return err
	}

	a.logger.Info("verification finished",
		zap.Bool("ok", res.OK()),
		zap.Float64("max_error", res.Report.MaxError),
		zap.Int("cell", res.Report.Cell),
		zap.Float64("tolerance", res.Report.Tolerance),
		zap.String("solver", res.Solver),
	)

	return printVerdict(a.stdout, res.OK())
}

func printVerdict(w io.Writer, ok bool) error {
	_, err := fmt.Fprintln(w, ok)

	return err
}
