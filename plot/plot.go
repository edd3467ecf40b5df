// SPDX-License-Identifier: MIT

package plot

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// Format names accepted by New.
const (
	FormatCSV  = "csv"
	FormatYAML = "yaml"
	FormatText = "text"
)

// Point is one sample of a profile.
type Point struct {
	X     float64 // cell centre
	Value float64 // solution at X
}

// Plotter consumes a profile.
type Plotter interface {
	Plot(points []Point) error
}

// Points zips cell centres with values; the shorter slice bounds the result.
func Points(x, values []float64) []Point {
	n := min(len(x), len(values))
	out := make([]Point, n)
	for i := 0; i < n; i++ {
		out[i] = Point{X: x[i], Value: values[i]}
	}

	return out
}

// New returns the renderer registered under format, writing to w.
// Format matching is case-insensitive.
func New(format string, w io.Writer) (Plotter, error) {
	if w == nil {
		return nil, fmt.Errorf("New(%q): %w", format, ErrNilWriter)
	}
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatCSV:
		return NewCSV(w), nil
	case FormatYAML:
		return NewYAML(w), nil
	case FormatText:
		return NewText(w), nil
	default:
		return nil, fmt.Errorf("New(%q): %w", format, ErrUnknownFormat)
	}
}

// Formats lists the names New accepts, sorted.
func Formats() []string {
	out := []string{FormatCSV, FormatYAML, FormatText}
	sort.Strings(out)

	return out
}
