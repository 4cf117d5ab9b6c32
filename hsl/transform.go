// Copyright (c) 2025, The Tint Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hsl

import "image/color"

// Lighten returns a color that is lighter by the given absolute
// HSL lightness amount (0-1, ranges enforced).
func Lighten(c color.Color, amount float32) color.RGBA {
	h := FromColor(c)
	h.L = clamp(h.L+amount, 0, 1)
	return h.AsRGBA()
}

// Darken returns a color that is darker by the given absolute
// HSL lightness amount (0-1, ranges enforced).
func Darken(c color.Color, amount float32) color.RGBA {
	h := FromColor(c)
	h.L = clamp(h.L-amount, 0, 1)
	return h.AsRGBA()
}

// Saturate returns a color that is more saturated by the given
// absolute HSL saturation amount (0-1, ranges enforced).
func Saturate(c color.Color, amount float32) color.RGBA {
	h := FromColor(c)
	h.S = clamp(h.S+amount, 0, 1)
	return h.AsRGBA()
}

// Desaturate returns a color that is less saturated by the given
// absolute HSL saturation amount (0-1, ranges enforced).
func Desaturate(c color.Color, amount float32) color.RGBA {
	h := FromColor(c)
	h.S = clamp(h.S-amount, 0, 1)
	return h.AsRGBA()
}

func clamp(v, lo, hi float32) float32 {
	return min(max(v, lo), hi)
}

// Spin returns a color whose hue is rotated by the given amount in
// degrees, folded into the 0-360 range.
func Spin(c color.Color, amount float32) color.RGBA {
	h := FromColor(c)
	h.H = NormHue(h.H + amount)
	return h.AsRGBA()
}
