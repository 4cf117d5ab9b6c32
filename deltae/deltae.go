// Copyright (c) 2025, The Tint Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package deltae quantifies the perceptual difference between two
// colors as a delta-E distance in CIE LAB space.
//
// [CIE76] is the metric used throughout the analysis pipeline;
// [CIEDE2000] is provided for callers that need the more accurate
// (and much more expensive) revised formula.
package deltae

import (
	"image/color"

	"github.com/chewxy/math32"
	"github.com/tintlab/tint"
	"github.com/tintlab/tint/cie"
)

// CIE76 returns the original 1976 delta-E between the two colors:
// the Euclidean distance between their LAB coordinates.
// It is 0 for identical colors and has no upper bound, though values
// for sRGB-gamut color pairs stay below roughly 100.
func CIE76(c1, c2 color.Color) float32 {
	l1, a1, b1 := labOf(c1)
	l2, a2, b2 := labOf(c2)
	dl := l1 - l2
	da := a1 - a2
	db := b1 - b2
	return math32.Sqrt(dl*dl + da*da + db*db)
}

// CIE76Hex is [CIE76] on two hex color strings.
// Unparseable colors return an error wrapping [tint.ErrParse].
func CIE76Hex(hex1, hex2 string) (float32, error) {
	c1, err := tint.FromHex(hex1)
	if err != nil {
		return 0, err
	}
	c2, err := tint.FromHex(hex2)
	if err != nil {
		return 0, err
	}
	return CIE76(c1, c2), nil
}

func labOf(c color.Color) (l, a, b float32) {
	fr, fg, fb := tint.AsFloat(c)
	return cie.SRGBToLAB(fr, fg, fb)
}
