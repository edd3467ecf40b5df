// Package config holds the run settings of the lvflux CLI: defaults, the
// optional TOML file and validation. Command-line flags are merged on top by
// the caller.
package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/lvflux/assembler"
	"github.com/katalvlaran/lvflux/mesh"
	"github.com/katalvlaran/lvflux/pipeline"
	"github.com/katalvlaran/lvflux/plot"
	"github.com/katalvlaran/lvflux/solver"
	"github.com/katalvlaran/lvflux/verify"
)

// PlotNone disables plotting.
const PlotNone = "none"

var (
	// ErrInvalidConfig indicates a setting outside its domain.
	ErrInvalidConfig = errors.New("config: invalid setting")

	// ErrUnknownKey indicates a key in the file that no setting maps to.
	ErrUnknownKey = errors.New("config: unknown key")
)

// Config is one fully resolved run.
type Config struct {
	Cells       int
	Width       float64
	Left        float64
	Right       float64
	Tolerance   float64
	Solver      string
	Diffusivity float64
	Storage     string
	Plot        string
	Out         string // plot destination; empty means stdout
}

// Default returns the reference problem: 50 unit cells from 0 to 1.
func Default() Config {
	return Config{
		Cells:       50,
		Width:       1.0,
		Left:        0.0,
		Right:       1.0,
		Tolerance:   verify.DefaultTolerance,
		Solver:      solver.NameThomas,
		Diffusivity: assembler.DefaultDiffusivity,
		Storage:     assembler.DefaultStorage.String(),
		Plot:        PlotNone,
	}
}

type fileConfig struct {
	Cells       int     `toml:"cells"`
	Width       float64 `toml:"width"`
	Left        float64 `toml:"left"`
	Right       float64 `toml:"right"`
	Tolerance   float64 `toml:"tolerance"`
	Solver      string  `toml:"solver"`
	Diffusivity float64 `toml:"diffusivity"`
	Storage     string  `toml:"storage"`
	Plot        string  `toml:"plot"`
	Out         string  `toml:"out"`
}

// Load reads path and overlays the keys it defines on Default. The result is
// not validated; call Validate after merging flags.
func Load(path string) (Config, error) {
	cfg := Default()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("load config: %q: %w", undecoded[0].String(), ErrUnknownKey)
	}

	if meta.IsDefined("cells") {
		cfg.Cells = raw.Cells
	}
	if meta.IsDefined("width") {
		cfg.Width = raw.Width
	}
	if meta.IsDefined("left") {
		cfg.Left = raw.Left
	}
	if meta.IsDefined("right") {
		cfg.Right = raw.Right
	}
	if meta.IsDefined("tolerance") {
		cfg.Tolerance = raw.Tolerance
	}
	if meta.IsDefined("solver") {
		cfg.Solver = strings.TrimSpace(raw.Solver)
	}
	if meta.IsDefined("diffusivity") {
		cfg.Diffusivity = raw.Diffusivity
	}
	if meta.IsDefined("storage") {
		cfg.Storage = strings.TrimSpace(raw.Storage)
	}
	if meta.IsDefined("plot") {
		cfg.Plot = strings.TrimSpace(raw.Plot)
	}
	if meta.IsDefined("out") {
		cfg.Out = strings.TrimSpace(raw.Out)
	}

	return cfg, nil
}

// Validate reports the first setting outside its domain, wrapped around
// ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case c.Cells <= 0:
		return invalid("cells", c.Cells, "must be > 0")
	case !positive(c.Width):
		return invalid("width", c.Width, "must be a positive finite number")
	case !finite(c.Left):
		return invalid("left", c.Left, "must be finite")
	case !finite(c.Right):
		return invalid("right", c.Right, "must be finite")
	case !positive(c.Tolerance):
		return invalid("tolerance", c.Tolerance, "must be a positive finite number")
	case !positive(c.Diffusivity):
		return invalid("diffusivity", c.Diffusivity, "must be a positive finite number")
	}
	if _, err := solver.ByName(c.Solver); err != nil {
		return invalid("solver", c.Solver, "one of "+strings.Join(solver.Names(), ", "))
	}
	if _, err := assembler.ParseStorage(c.Storage); err != nil {
		return invalid("storage", c.Storage, "one of tridiagonal, dense")
	}
	if !c.plotKnown() {
		return invalid("plot", c.Plot, "one of "+PlotNone+", "+strings.Join(plot.Formats(), ", "))
	}

	return nil
}

// Problem returns the pipeline input described by c.
func (c Config) Problem() pipeline.Problem {
	return pipeline.Problem{
		Mesh:      mesh.Config{CellCount: c.Cells, CellWidth: c.Width},
		Left:      c.Left,
		Right:     c.Right,
		Tolerance: c.Tolerance,
	}
}

// AssemblerOptions maps c onto assembler options. c must be valid.
func (c Config) AssemblerOptions() []assembler.Option {
	storage, _ := assembler.ParseStorage(c.Storage)

	return []assembler.Option{
		assembler.WithDiffusivity(c.Diffusivity),
		assembler.WithStorage(storage),
	}
}

// Plotting reports whether a plot was requested.
func (c Config) Plotting() bool {
	p := strings.ToLower(strings.TrimSpace(c.Plot))

	return p != "" && p != PlotNone
}

func (c Config) plotKnown() bool {
	if !c.Plotting() {
		return true
	}
	p := strings.ToLower(strings.TrimSpace(c.Plot))
	for _, f := range plot.Formats() {
		if p == f {
			return true
		}
	}

	return false
}

func invalid(key string, v any, why string) error {
	return fmt.Errorf("%s=%v: %s: %w", key, v, why, ErrInvalidConfig)
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

func positive(v float64) bool { return finite(v) && v > 0 }
