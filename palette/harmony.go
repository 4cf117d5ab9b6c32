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

// Harmony selects a classical color harmony scheme derived from a
// base color by hue rotation or lightness variation.
type Harmony int32

const (
	// Analogous uses hues adjacent to the base on the color wheel.
	Analogous Harmony = iota

	// Complementary uses the base and its opposite hue.
	Complementary

	// Triadic uses three hues evenly spaced around the color wheel.
	Triadic

	// Monochromatic varies only the lightness of the base hue.
	Monochromatic
)

func (h Harmony) String() string {
	switch h {
	case Analogous:
		return "analogous"
	case Complementary:
		return "complementary"
	case Triadic:
		return "triadic"
	case Monochromatic:
		return "monochromatic"
	}
	return "Harmony(" + strconv.Itoa(int(h)) + ")"
}

// Harmonize returns the harmony variant colors of the given base
// color as hex strings, base first. Hue rotations are folded into
// the 0-360 range, so rotations below 0 degrees stay in domain.
// An unparseable base color returns an error.
func Harmonize(base string, harmony Harmony) ([]string, error) {
	c, err := tint.FromString(base)
	if err != nil {
		return nil, fmt.Errorf("palette.Harmonize: %w", err)
	}
	h := hsl.FromColor(c)

	switch harmony {
	case Analogous:
		return hues(h, 0, 30, -30, 60, -60), nil
	case Complementary:
		return hues(h, 0, 180), nil
	case Triadic:
		return hues(h, 0, 120, 240), nil
	case Monochromatic:
		return lightnesses(h, 0, 0.15, 0.3, -0.15, -0.3), nil
	}
	return nil, fmt.Errorf("palette.Harmonize: unknown harmony type %v", harmony)
}

// hues returns the base color rotated by each of the given hue
// offsets in degrees, normalized into 0-360.
func hues(h hsl.HSL, offsets ...float32) []string {
	cs := make([]string, len(offsets))
	for i, off := range offsets {
		cs[i] = tint.AsHex(hsl.New(hsl.NormHue(h.H+off), h.S, h.L))
	}
	return cs
}

// lightnesses returns the base color shifted by each of the given
// lightness offsets, clamped to the valid range.
func lightnesses(h hsl.HSL, offsets ...float32) []string {
	cs := make([]string, len(offsets))
	for i, off := range offsets {
		cs[i] = tint.AsHex(hsl.New(h.H, h.S, clamp(h.L+off, 0, 1)))
	}
	return cs
}
