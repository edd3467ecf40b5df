// SPDX-License-Identifier: MIT

package plot

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// CSV writes "x,value" records with shortest round-trip float formatting.
type CSV struct {
	w io.Writer
}

// NewCSV returns a CSV renderer writing to w.
func NewCSV(w io.Writer) *CSV { return &CSV{w: w} }

// Plot writes the header and one record per point. An empty profile yields
// the header alone.
func (c *CSV) Plot(points []Point) error {
	if c.w == nil {
		return fmt.Errorf("CSV.Plot: %w", ErrNilWriter)
	}
	w := csv.NewWriter(c.w)
	if err := w.Write([]string{"x", "value"}); err != nil {
		return fmt.Errorf("CSV.Plot: header: %w", err)
	}
	for i, p := range points {
		record := []string{
			strconv.FormatFloat(p.X, 'g', -1, 64),
			strconv.FormatFloat(p.Value, 'g', -1, 64),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("CSV.Plot: record %d: %w", i, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("CSV.Plot: %w", err)
	}

	return nil
}
