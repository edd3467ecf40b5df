// SPDX-License-Identifier: MIT

package plot

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strings"
)

// Default chart size in characters.
const (
	DefaultTextWidth  = 60
	DefaultTextHeight = 15
)

const (
	mark      = '*'
	labelSize = 10
)

// Text draws an ASCII scatter chart: one '*' per point on a width×height
// grid, value axis labelled at the top and bottom rows, x range printed
// under the axis. Non-finite points are skipped.
type Text struct {
	w             io.Writer
	width, height int
}

// TextOption configures a Text renderer.
type TextOption func(*Text)

// WithSize sets the plotting area. Panics if width or height is below 2.
func WithSize(width, height int) TextOption {
	if width < 2 || height < 2 {
		panic(fmt.Sprintf("plot: WithSize(%d, %d): both dimensions must be >= 2", width, height))
	}

	return func(t *Text) { t.width, t.height = width, height }
}

// NewText returns a Text renderer writing to w.
func NewText(w io.Writer, opts ...TextOption) *Text {
	t := &Text{w: w, width: DefaultTextWidth, height: DefaultTextHeight}
	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Plot renders points. Returns ErrNoPoints when no finite point remains.
func (t *Text) Plot(points []Point) error {
	if t.w == nil {
		return fmt.Errorf("Text.Plot: %w", ErrNilWriter)
	}

	xMin, xMax := math.Inf(1), math.Inf(-1)
	vMin, vMax := math.Inf(1), math.Inf(-1)
	finite := 0
	for _, p := range points {
		if !isFinite(p.X) || !isFinite(p.Value) {
			continue
		}
		finite++
		xMin, xMax = math.Min(xMin, p.X), math.Max(xMax, p.X)
		vMin, vMax = math.Min(vMin, p.Value), math.Max(vMax, p.Value)
	}
	if finite == 0 {
		return fmt.Errorf("Text.Plot: %w", ErrNoPoints)
	}

	grid := make([][]byte, t.height)
	for r := range grid {
		grid[r] = []byte(strings.Repeat(" ", t.width))
	}
	for _, p := range points {
		if !isFinite(p.X) || !isFinite(p.Value) {
			continue
		}
		col := scale(p.X, xMin, xMax, t.width)
		row := t.height - 1 - scale(p.Value, vMin, vMax, t.height)
		grid[row][col] = mark
	}

	bw := bufio.NewWriter(t.w)
	blank := strings.Repeat(" ", labelSize)
	for r, line := range grid {
		label := blank
		switch r {
		case 0:
			label = fmt.Sprintf("%*.4g", labelSize, vMax)
		case t.height - 1:
			label = fmt.Sprintf("%*.4g", labelSize, vMin)
		}
		fmt.Fprintf(bw, "%s |%s\n", label, strings.TrimRight(string(line), " "))
	}
	fmt.Fprintf(bw, "%s +%s\n", blank, strings.Repeat("-", t.width))
	lo := fmt.Sprintf("%.4g", xMin)
	hi := fmt.Sprintf("%.4g", xMax)
	gap := max(1, t.width-len(lo)-len(hi))
	fmt.Fprintf(bw, "%s  %s%s%s\n", blank, lo, strings.Repeat(" ", gap), hi)

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("Text.Plot: %w", err)
	}

	return nil
}

// scale maps v in [lo, hi] onto 0..n-1; a degenerate range maps to 0.
func scale(v, lo, hi float64, n int) int {
	if hi <= lo {
		return 0
	}
	i := int(math.Round((v - lo) / (hi - lo) * float64(n-1)))

	return min(max(i, 0), n-1)
}

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
