// Copyright (c) 2025, The Tint Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wcag

import (
	"image/color"
	"log/slog"

	"github.com/tintlab/tint"
)

// Analysis is the contrast classification of one foreground color
// against one background color.
type Analysis struct {

	// Foreground is the foreground (text) color as a hex string.
	Foreground string

	// Background is the background color as a hex string.
	Background string

	// Ratio is the contrast ratio between the two colors (1-21).
	Ratio float32

	// PassesAA is whether the pair meets level AA for normal text (4.5:1).
	PassesAA bool

	// PassesAAA is whether the pair meets level AAA for normal text (7:1).
	PassesAAA bool

	// PassesAALarge is whether the pair meets level AA for large text (3:1).
	PassesAALarge bool

	// PassesAAALarge is whether the pair meets level AAA for large text (4.5:1).
	PassesAAALarge bool
}

// Analyze returns the [Analysis] of the given foreground color
// against the given background color.
func Analyze(fg, bg color.Color) Analysis {
	ratio := ContrastRatio(fg, bg)
	return Analysis{
		Foreground:     tint.AsHex(fg),
		Background:     tint.AsHex(bg),
		Ratio:          ratio,
		PassesAA:       ratio >= RatioAA,
		PassesAAA:      ratio >= RatioAAA,
		PassesAALarge:  ratio >= RatioAALarge,
		PassesAAALarge: ratio >= RatioAAALarge,
	}
}

// AnalyzeCompliance classifies every foreground color against every
// background color, returning one [Analysis] per pair in
// background-major, foreground-minor order. That ordering is part of
// the contract: callers index the results positionally.
//
// Entries in either list that fail to parse as hex colors are dropped
// before the cross product is built, so one malformed entry never
// aborts the batch.
func AnalyzeCompliance(colors, backgrounds []string) []Analysis {
	fgs := parseAll(colors)
	bgs := parseAll(backgrounds)

	res := make([]Analysis, 0, len(bgs)*len(fgs))
	for _, bg := range bgs {
		for _, fg := range fgs {
			res = append(res, Analyze(fg, bg))
		}
	}
	return res
}

// parseAll parses the given hex strings, silently dropping any that
// are invalid (logged at debug level only, since skipping is defined
// behavior for batch analysis).
func parseAll(hexes []string) []color.RGBA {
	cs := make([]color.RGBA, 0, len(hexes))
	for _, h := range hexes {
		c, err := tint.FromHex(h)
		if err != nil {
			slog.Debug("wcag.AnalyzeCompliance: skipping invalid color", "color", h)
			continue
		}
		cs = append(cs, c)
	}
	return cs
}
