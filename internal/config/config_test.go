package config_test

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvflux/assembler"
	"github.com/katalvlaran/lvflux/internal/config"
	"github.com/katalvlaran/lvflux/mesh"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lvflux.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestDefault(t *testing.T) {
	t.Parallel()
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	require.Equal(t, 50, cfg.Cells)
	require.Equal(t, 1.0, cfg.Width)
	require.Equal(t, 0.0, cfg.Left)
	require.Equal(t, 1.0, cfg.Right)
	require.Equal(t, 1e-10, cfg.Tolerance)
	require.Equal(t, "thomas", cfg.Solver)
	require.Equal(t, "tridiagonal", cfg.Storage)
	require.False(t, cfg.Plotting())
}

func TestLoad_OverlaysDefinedKeys(t *testing.T) {
	t.Parallel()
	path := writeFile(t, `
cells = 12
left = -2.5
solver = " lu "
plot = "csv"
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	want := config.Default()
	want.Cells = 12
	want.Left = -2.5
	want.Solver = "lu"
	want.Plot = "csv"
	require.Equal(t, want, cfg)
	require.True(t, cfg.Plotting())
}

func TestLoad_ExplicitZeroOverridesDefault(t *testing.T) {
	t.Parallel()
	cfg, err := config.Load(writeFile(t, "right = 0.0\ntolerance = 0.0\n"))
	require.NoError(t, err)
	require.Equal(t, 0.0, cfg.Right)
	require.Equal(t, 0.0, cfg.Tolerance)
	// A zero tolerance is read faithfully and then rejected.
	require.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig)
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)

	_, err = config.Load(writeFile(t, "cells = [1, 2"))
	require.Error(t, err)

	_, err = config.Load(writeFile(t, "cels = 3\n"))
	require.ErrorIs(t, err, config.ErrUnknownKey)
	require.Contains(t, err.Error(), "cels")
}

func TestValidate(t *testing.T) {
	t.Parallel()
	cases := map[string]func(*config.Config){
		"zero cells":       func(c *config.Config) { c.Cells = 0 },
		"negative width":   func(c *config.Config) { c.Width = -1 },
		"inf width":        func(c *config.Config) { c.Width = math.Inf(1) },
		"nan left":         func(c *config.Config) { c.Left = math.NaN() },
		"inf right":        func(c *config.Config) { c.Right = math.Inf(-1) },
		"negative tol":     func(c *config.Config) { c.Tolerance = -1e-3 },
		"zero diffusivity": func(c *config.Config) { c.Diffusivity = 0 },
		"unknown solver":   func(c *config.Config) { c.Solver = "jacobi" },
		"unknown storage":  func(c *config.Config) { c.Storage = "csr" },
		"unknown plot":     func(c *config.Config) { c.Plot = "svg" },
	}
	for name, mutate := range cases {
		mutate := mutate
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			cfg := config.Default()
			mutate(&cfg)
			require.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig)
		})
	}
}

func TestProblemAndOptions(t *testing.T) {
	t.Parallel()
	cfg := config.Default()
	cfg.Cells, cfg.Width, cfg.Tolerance = 7, 0.5, 1e-6
	cfg.Diffusivity, cfg.Storage = 3, "dense"

	p := cfg.Problem()
	require.Equal(t, mesh.Config{CellCount: 7, CellWidth: 0.5}, p.Mesh)
	require.Equal(t, 1e-6, p.Tolerance)

	a := assembler.New(cfg.AssemblerOptions()...)
	require.Equal(t, 3.0, a.Diffusivity())
	require.Equal(t, assembler.StorageDense, a.Storage())
}
