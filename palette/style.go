// Copyright (c) 2025, The Tint Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"fmt"
	"strconv"

	"github.com/tintlab/tint"
	"github.com/tintlab/tint/hsl"
)

// Style selects the overall character of a generated palette,
// applied as a saturation/lightness adjustment to the base color
// before the tonal scale is derived.
type Style int32

const (
	// Professional leaves the base color unchanged.
	Professional Style = iota

	// Vibrant boosts saturation and lightness.
	Vibrant

	// Minimal mutes saturation and lightens slightly.
	Minimal

	// Warm shifts gently toward a more saturated, lighter base.
	Warm

	// Cool shifts gently toward a slightly darker base.
	Cool
)

func (s Style) String() string {
	switch s {
	case Professional:
		return "professional"
	case Vibrant:
		return "vibrant"
	case Minimal:
		return "minimal"
	case Warm:
		return "warm"
	case Cool:
		return "cool"
	}
	return "Style(" + strconv.Itoa(int(s)) + ")"
}

// deltas returns the saturation and lightness adjustments for the style.
func (s Style) deltas() (ds, dl float32) {
	switch s {
	case Vibrant:
		return 0.2, 0.1
	case Minimal:
		return -0.1, 0.05
	case Warm:
		return 0.1, 0.05
	case Cool:
		return 0.05, -0.05
	}
	return 0, 0
}

// Options configures [GenerateStyled].
type Options struct {

	// Style is the palette style to apply.
	Style Style

	// Accessibility requests validation of the generated palette;
	// see [GenerateStyled].
	Accessibility bool

	// Size is the number of tonal steps to generate.
	Size int
}

// GenerateStyled derives a tonal scale like [Generate], after first
// adjusting the base color's saturation and lightness according to
// the style (clamped to valid HSL ranges). When opts.Accessibility
// is set the returned [Report] carries the per-step contrast summary
// and overall validation outcome; the palette itself is returned
// either way, leaving any substitution decision to the caller.
func GenerateStyled(base string, opts Options) (Palette, *Report, error) {
	c, err := tint.FromString(base)
	if err != nil {
		return nil, nil, fmt.Errorf("palette.GenerateStyled: %w", err)
	}

	h := hsl.FromColor(c)
	ds, dl := opts.Style.deltas()
	h.S = clamp(h.S+ds, 0, 1)
	h.L = clamp(h.L+dl, 0, 1)

	p, err := Generate(tint.AsHex(h.AsRGBA()), opts.Size)
	if err != nil {
		return nil, nil, err
	}
	if !opts.Accessibility {
		return p, nil, nil
	}
	r := AccessibilityReport(p)
	return p, &r, nil
}
