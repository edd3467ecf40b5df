// Command lvflux solves the steady 1D diffusion equation with fixed end
// values, checks the result against the exact linear profile and prints
// true or false.
//
// Usage:
//
//	lvflux [--cells 50] [--width 1] [--left 0] [--right 1] [--solver thomas]
//	lvflux sweep --cells 1,2,50 --width 0.1,1,3 --left 0,-2 --right 1,7
//	lvflux version
//
// stdout carries the verdict (and a plot when --plot is set without --out);
// logs and errors go to stderr. Any error exits with status 1.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvflux/internal/config"
	"github.com/katalvlaran/lvflux/internal/logging"
)

// version is overridden at link time with -ldflags "-X main.version=...".
var version = "dev"

// app carries per-invocation state shared by the commands.
type app struct {
	stdout, stderr io.Writer
	newLogger      func(verbose bool) (*zap.Logger, error)
	logger         *zap.Logger

	// persistent flags
	configPath  string
	verbose     bool
	solver      string
	storage     string
	diffusivity float64
	tolerance   float64
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := &app{stdout: os.Stdout, stderr: os.Stderr, newLogger: logging.New}
	if err := newRootCmd(a).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "lvflux: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	def := config.Default()
	var (
		cells               int
		width, left, right  float64
		plotFormat, outPath string
	)

	root := &cobra.Command{
		Use:   "lvflux",
		Short: "Solve and verify steady 1D diffusion",
		Long: `lvflux assembles the finite-volume Laplacian of a uniform 1D line with fixed
values at both ends, solves it and compares the solution with the exact
linear profile. It prints true when every cell agrees within the tolerance.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := a.newLogger(a.verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = logger

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.resolveConfig(cmd)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("cells") {
				cfg.Cells = cells
			}
			if flags.Changed("width") {
				cfg.Width = width
			}
			if flags.Changed("left") {
				cfg.Left = left
			}
			if flags.Changed("right") {
				cfg.Right = right
			}
			if flags.Changed("plot") {
				cfg.Plot = plotFormat
			}
			if flags.Changed("out") {
				cfg.Out = outPath
			}

			return a.runSolve(cfg)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "TOML file with run settings (flags override it)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging on stderr")
	pf.StringVar(&a.solver, "solver", def.Solver, "linear solver: thomas, lu or cg")
	pf.StringVar(&a.storage, "storage", def.Storage, "matrix storage: tridiagonal or dense")
	pf.Float64Var(&a.diffusivity, "diffusivity", def.Diffusivity, "diffusion coefficient")
	pf.Float64Var(&a.tolerance, "tolerance", def.Tolerance, "maximum absolute error accepted (loosen it, e.g. 1e-8, for 1e5+ cells)")

	f := root.Flags()
	f.IntVar(&cells, "cells", def.Cells, "number of cells")
	f.Float64Var(&width, "width", def.Width, "cell width")
	f.Float64Var(&left, "left", def.Left, "value at the left face")
	f.Float64Var(&right, "right", def.Right, "value at the right face")
	f.StringVar(&plotFormat, "plot", def.Plot, "profile output: none, csv, yaml or text")
	f.StringVar(&outPath, "out", "", "plot destination file (default stdout)")

	root.AddCommand(newSweepCmd(a), newVersionCmd(a))

	return root
}

// resolveConfig loads --config when given and overlays the persistent flags
// the user set explicitly.
func (a *app) resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if a.configPath != "" {
		loaded, err := config.Load(a.configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
		a.logger.Debug("config loaded", zap.String("path", a.configPath))
	}

	flags := cmd.Flags()
	if flags.Changed("solver") {
		cfg.Solver = a.solver
	}
	if flags.Changed("storage") {
		cfg.Storage = a.storage
	}
	if flags.Changed("diffusivity") {
		cfg.Diffusivity = a.diffusivity
	}
	if flags.Changed("tolerance") {
		cfg.Tolerance = a.tolerance
	}

	return cfg, nil
}

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the lvflux version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(a.stdout, "lvflux %s\n", version)

			return err
		},
	}
}
