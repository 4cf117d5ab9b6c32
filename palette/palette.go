// Copyright (c) 2025, The Tint Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package palette derives ordered tonal color scales from a single
// base color, applies style and harmony variants, and validates the
// accessibility of the result.
package palette

import (
	"fmt"
	"strconv"

	"github.com/tintlab/tint"
	"github.com/tintlab/tint/hsl"
	"github.com/tintlab/tint/wcag"
)

// The generated lightness stops span this range inclusively,
// from the lightest step to the darkest.
const (
	maxLightness float32 = 0.95
	minLightness float32 = 0.05
)

// Step is one labeled entry of a [Palette].
type Step struct {

	// Label is the tonal step label: "100", "200", ...
	// in order of descending lightness.
	Label string

	// Color is the step color as a hex string.
	Color string
}

// Palette is an ordered tonal color scale. Step "100" is the
// lightest; labels increase by 100 as lightness decreases.
type Palette []Step

// Get returns the color for the given step label,
// and whether the label exists.
func (p Palette) Get(label string) (string, bool) {
	for _, s := range p {
		if s.Label == label {
			return s.Color, true
		}
	}
	return "", false
}

// Colors returns the palette colors in step order.
func (p Palette) Colors() []string {
	cs := make([]string, len(p))
	for i, s := range p {
		cs[i] = s.Color
	}
	return cs
}

// Generate derives a tonal scale of the given size from the given
// base color. The base color's hue and saturation are held fixed
// while lightness is spread evenly across the 0.05 to 0.95 range,
// lightest first. The base color may be a hex string or a CSS color
// name; an unparseable base or a size below 1 returns an error.
func Generate(base string, size int) (Palette, error) {
	c, err := tint.FromString(base)
	if err != nil {
		return nil, fmt.Errorf("palette.Generate: %w", err)
	}
	if size < 1 {
		return nil, fmt.Errorf("palette.Generate: size must be at least 1, got %d", size)
	}

	h := hsl.FromColor(c)
	p := make(Palette, 0, size)
	for i := 0; i < size; i++ {
		l := maxLightness
		if size > 1 {
			l -= float32(i) * (maxLightness - minLightness) / float32(size-1)
		} else {
			l = (maxLightness + minLightness) / 2
		}
		p = append(p, Step{
			Label: strconv.Itoa((i + 1) * 100),
			Color: tint.AsHex(hsl.New(h.H, h.S, l)),
		})
	}
	return p, nil
}

// Validate reports whether the palette is broadly accessible: at
// least 70% of its colors must reach a 4.5:1 contrast ratio against
// either pure white or pure black (whichever is higher).
func Validate(p Palette) bool {
	if len(p) == 0 {
		return false
	}
	pass := 0
	for _, s := range p {
		c, err := tint.FromHex(s.Color)
		if err != nil {
			continue
		}
		best := max(wcag.ContrastRatio(c, tint.White), wcag.ContrastRatio(c, tint.Black))
		if best >= wcag.RatioAA {
			pass++
		}
	}
	return float32(pass)/float32(len(p)) >= 0.7
}

// StepContrast is one entry of a [Report]: the contrast of a single
// palette step against pure white and pure black.
type StepContrast struct {
	Label      string
	Color      string
	WhiteRatio float32
	BlackRatio float32
}

// Report summarizes the per-step contrast of a palette,
// as produced by [AccessibilityReport].
type Report struct {
	Steps []StepContrast

	// Valid is the [Validate] result for the palette.
	Valid bool
}

// AccessibilityReport returns the per-step white/black contrast
// ratios of the palette along with its overall [Validate] outcome.
// Steps with unparseable colors are skipped.
func AccessibilityReport(p Palette) Report {
	r := Report{Valid: Validate(p)}
	for _, s := range p {
		c, err := tint.FromHex(s.Color)
		if err != nil {
			continue
		}
		r.Steps = append(r.Steps, StepContrast{
			Label:      s.Label,
			Color:      s.Color,
			WhiteRatio: wcag.ContrastRatio(c, tint.White),
			BlackRatio: wcag.ContrastRatio(c, tint.Black),
		})
	}
	return r
}

func clamp(v, lo, hi float32) float32 {
	return min(max(v, lo), hi)
}
