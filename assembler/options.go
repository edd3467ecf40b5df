// SPDX-License-Identifier: MIT

// Package assembler: functional configuration.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: panic only on invalid parameters (programmer error);
//     user-facing inputs are validated upstream (internal/config).
package assembler

import (
	"fmt"
	"math"
	"strings"
)

// Storage selects the operator backing of the assembled system.
type Storage int

const (
	// StorageTridiagonal stores three bands (O(n) memory). Requires a mesh
	// whose interior faces only couple consecutive cells.
	StorageTridiagonal Storage = iota
	// StorageDense stores an n×n row-major matrix (O(n²) memory).
	StorageDense
)

// String implements fmt.Stringer.
func (s Storage) String() string {
	switch s {
	case StorageTridiagonal:
		return "tridiagonal"
	case StorageDense:
		return "dense"
	default:
		return "unknown"
	}
}

// ParseStorage maps "tridiagonal" or "dense" (case-insensitive) to a Storage.
// The empty string selects DefaultStorage.
func ParseStorage(s string) (Storage, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return DefaultStorage, nil
	case "tridiagonal":
		return StorageTridiagonal, nil
	case "dense":
		return StorageDense, nil
	default:
		return 0, fmt.Errorf("ParseStorage(%q): %w", s, ErrUnknownStorage)
	}
}

// Defaults (single source of truth).
const (
	// DefaultDiffusivity is the coefficient γ of ∇·(γ∇u).
	DefaultDiffusivity = 1.0

	// DefaultStorage is the operator backing used when none is requested.
	DefaultStorage = StorageTridiagonal
)

const (
	panicDiffusivityInvalid = "assembler: WithDiffusivity: gamma must be finite and > 0"
	panicStorageInvalid     = "assembler: WithStorage: unknown storage"
)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*options)

type options struct {
	gamma   float64
	storage Storage
}

func defaultOptions() options {
	return options{gamma: DefaultDiffusivity, storage: DefaultStorage}
}

// WithDiffusivity sets γ. Panics when gamma is not a positive finite number.
func WithDiffusivity(gamma float64) Option {
	if !(gamma > 0) || math.IsInf(gamma, 0) {
		panic(panicDiffusivityInvalid)
	}

	return func(o *options) { o.gamma = gamma }
}

// WithStorage selects the operator backing. Panics on an unknown Storage.
func WithStorage(s Storage) Option {
	if s != StorageTridiagonal && s != StorageDense {
		panic(panicStorageInvalid)
	}

	return func(o *options) { o.storage = s }
}
