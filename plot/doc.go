// SPDX-License-Identifier: MIT

// Package plot renders a solved profile for inspection.
//
// A profile is a slice of Point (cell centre, value). Three renderers are
// provided, all writing to an io.Writer supplied by the caller:
//
//   - CSV:  "x,value" header followed by one record per point,
//   - YAML: a "points" sequence of {x, value} mappings,
//   - Text: a fixed-size ASCII scatter chart for terminals.
//
// Renderers keep no state between calls beyond their writer and options.
// New resolves a renderer by name ("csv", "yaml", "text").
package plot
