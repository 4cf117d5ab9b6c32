// Copyright (c) 2025, The Tint Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package wcag computes relative luminance and contrast ratios per
// the Web Content Accessibility Guidelines, and classifies
// color/background pairs against the AA and AAA conformance levels.
package wcag

import (
	"image/color"

	"github.com/chewxy/math32"
	"github.com/tintlab/tint"
)

// Contrast ratio thresholds for the WCAG conformance levels.
const (
	// RatioAA is the minimum contrast ratio for normal text at level AA.
	RatioAA float32 = 4.5

	// RatioAAA is the minimum contrast ratio for normal text at level AAA.
	RatioAAA float32 = 7

	// RatioAALarge is the minimum contrast ratio for large text at level AA.
	RatioAALarge float32 = 3

	// RatioAAALarge is the minimum contrast ratio for large text at level AAA.
	RatioAAALarge float32 = 4.5
)

// Luminance returns the WCAG relative luminance of the given color,
// from 0 for black to 1 for white: the weighted sum of the linearized
// sRGB channels. Note that WCAG specifies a 0.03928 linearization
// threshold, slightly different from the 0.04045 used by the CIE
// conversions in [github.com/tintlab/tint/cie].
func Luminance(c color.Color) float32 {
	r, g, b := tint.AsFloat(c)
	return 0.2126*linComp(r) + 0.7152*linComp(g) + 0.0722*linComp(b)
}

func linComp(v float32) float32 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math32.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio returns the WCAG contrast ratio between the two
// colors: (lighter + 0.05) / (darker + 0.05) on their relative
// luminances. The result is symmetric in its arguments and always
// within 1 to 21.
func ContrastRatio(a, b color.Color) float32 {
	return contrastOfLums(Luminance(a), Luminance(b))
}

func contrastOfLums(la, lb float32) float32 {
	lighter := max(la, lb)
	darker := min(la, lb)
	return (lighter + 0.05) / (darker + 0.05)
}
