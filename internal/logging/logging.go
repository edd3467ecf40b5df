// Package logging builds the zap logger used by the lvflux commands.
//
// Logs always go to stderr: stdout carries only the verification result.
package logging

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EnvLogLevel overrides the level chosen from the verbose flag
// (debug, info, warn, error).
const EnvLogLevel = "LVFLUX_LOG_LEVEL"

// Config returns the production zap config for the CLI: JSON to stderr at
// info, or debug when verbose. A valid EnvLogLevel wins over verbose; an
// unparseable one is ignored.
func Config(verbose bool) zap.Config {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.Sampling = nil
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	if lvl, ok := parseLevel(os.Getenv(EnvLogLevel)); ok {
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}

	return cfg
}

// New builds a logger from Config(verbose).
func New(verbose bool) (*zap.Logger, error) {
	logger, err := Config(verbose).Build()
	if err != nil {
		return nil, fmt.Errorf("logging: build: %w", err)
	}

	return logger, nil
}

// Nop returns a logger that discards everything.
func Nop() *zap.Logger { return zap.NewNop() }

func parseLevel(raw string) (zapcore.Level, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return zapcore.InfoLevel, false
	}
	lvl, err := zapcore.ParseLevel(raw)
	if err != nil {
		return zapcore.InfoLevel, false
	}

	return lvl, true
}
