// Copyright (c) 2025, The Tint Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hsl provides the HSL (hue, saturation, lightness) color
// representation used for tonal scale generation, with conversions
// to and from sRGB.
package hsl

import (
	"fmt"
	"image/color"

	"github.com/chewxy/math32"
)

// HSL represents the hue (0-360), saturation (0-1), and lightness
// (0-1) of a color, along with a 0-1 alpha, using float32 values.
type HSL struct {
	H, S, L, A float32
}

// New returns a new opaque HSL color from the given hue (0-360),
// saturation (0-1), and lightness (0-1).
func New(h, s, l float32) HSL {
	return HSL{h, s, l, 1}
}

// FromColor constructs a new HSL color from a standard [color.Color].
func FromColor(c color.Color) HSL {
	h := HSL{}
	h.SetColor(c)
	return h
}

// Model is the standard [color.Model] that converts colors to HSL.
var Model = color.ModelFunc(model)

func model(c color.Color) color.Color {
	if h, ok := c.(HSL); ok {
		return h
	}
	return FromColor(c)
}

// RGBA implements the [color.Color] interface,
// premultiplying the RGB components by alpha.
func (h HSL) RGBA() (r, g, b, a uint32) {
	fr, fg, fb := RGBFromHSL(h.H, h.S, h.L)
	r = uint32(fr*h.A*65535.0 + 0.5)
	g = uint32(fg*h.A*65535.0 + 0.5)
	b = uint32(fb*h.A*65535.0 + 0.5)
	a = uint32(h.A*65535.0 + 0.5)
	return
}

// AsRGBA returns the color as a standard [color.RGBA].
func (h HSL) AsRGBA() color.RGBA {
	fr, fg, fb := RGBFromHSL(h.H, h.S, h.L)
	return color.RGBA{
		uint8(fr*h.A*255.0 + 0.5),
		uint8(fg*h.A*255.0 + 0.5),
		uint8(fb*h.A*255.0 + 0.5),
		uint8(h.A*255.0 + 0.5),
	}
}

// SetUint32 sets the color from alpha-premultiplied uint32 components.
func (h *HSL) SetUint32(r, g, b, a uint32) {
	fa := float32(a) / 65535.0
	fr := float32(r) / 65535.0
	fg := float32(g) / 65535.0
	fb := float32(b) / 65535.0
	if fa > 0 {
		fr /= fa
		fg /= fa
		fb /= fa
	}
	h.H, h.S, h.L = RGBToHSL(fr, fg, fb)
	h.A = fa
}

// SetColor sets the color from a standard [color.Color].
func (h *HSL) SetColor(c color.Color) {
	if c == nil {
		*h = HSL{}
		return
	}
	h.SetUint32(c.RGBA())
}

func (h HSL) String() string {
	return fmt.Sprintf("hsl(%g, %g, %g)", h.H, h.S, h.L)
}

// RGBToHSL converts the given 0-1 normalized, non-premultiplied RGB
// values to HSL: hue 0-360, saturation 0-1, and lightness 0-1.
// Based on https://www.w3.org/TR/css-color-3/.
func RGBToHSL(r, g, b float32) (h, s, l float32) {
	mn := math32.Min(math32.Min(r, g), b)
	mx := math32.Max(math32.Max(r, g), b)

	l = (mx + mn) / 2
	if mn == mx {
		return 0, 0, l
	}

	d := mx - mn
	if l > 0.5 {
		s = d / (2 - mx - mn)
	} else {
		s = d / (mx + mn)
	}
	switch mx {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = 2 + (b-r)/d
	case b:
		h = 4 + (r-g)/d
	}
	h *= 60
	if h < 0 {
		h += 360
	}
	return
}

// RGBFromHSL converts the given hue (0-360), saturation (0-1), and
// lightness (0-1) to 0-1 normalized, non-premultiplied RGB values.
func RGBFromHSL(h, s, l float32) (r, g, b float32) {
	if s == 0 {
		return l, l, l
	}

	h = NormHue(h) / 360
	var q float32
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q
	r = hueComp(p, q, h+1.0/3.0)
	g = hueComp(p, q, h)
	b = hueComp(p, q, h-1.0/3.0)
	return
}

func hueComp(p, q, t float32) float32 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6.0:
		return p + (q-p)*6*t
	case t < 0.5:
		return q
	case t < 2.0/3.0:
		return p + (q-p)*(2.0/3.0-t)*6
	}
	return p
}

// NormHue folds the given hue in degrees into the 0-360 range.
// Unlike a bare float modulus, the result is non-negative for
// negative inputs, so hue arithmetic can subtract freely.
func NormHue(h float32) float32 {
	h = math32.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}
