// SPDX-License-Identifier: MIT

package plot

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// yamlPoint is the on-disk shape of a Point.
type yamlPoint struct {
	X     float64 `yaml:"x"`
	Value float64 `yaml:"value"`
}

type yamlProfile struct {
	Points []yamlPoint `yaml:"points"`
}

// YAML writes the profile as a single document with a "points" sequence.
type YAML struct {
	w      io.Writer
	indent int
}

// NewYAML returns a YAML renderer writing to w with two-space indentation.
func NewYAML(w io.Writer) *YAML { return &YAML{w: w, indent: 2} }

// Plot encodes points as one YAML document.
func (y *YAML) Plot(points []Point) error {
	if y.w == nil {
		return fmt.Errorf("YAML.Plot: %w", ErrNilWriter)
	}
	doc := yamlProfile{Points: make([]yamlPoint, len(points))}
	for i, p := range points {
		doc.Points[i] = yamlPoint{X: p.X, Value: p.Value}
	}

	enc := yaml.NewEncoder(y.w)
	enc.SetIndent(y.indent)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("YAML.Plot: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("YAML.Plot: %w", err)
	}

	return nil
}
