// Copyright (c) 2025, The Tint Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package oklch implements the OKLCH perceptually uniform color
// space used by palette providers layered above the core engine for
// hue, chroma, and lightness manipulation. Lightness is monotone in
// perceived brightness over 0-1, hue is in degrees 0-360, and chroma
// is non-negative (roughly 0-0.37 within the sRGB gamut).
//
// Hex parsing and gamut clamping go through
// [github.com/lucasb-eyer/go-colorful]; this package is float64
// throughout to match it.
package oklch

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Parse converts the given hex color string to OKLCH components.
func Parse(hex string) (l, c, h float64, err error) {
	col, err := colorful.Hex(hex)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("oklch.Parse: %w", err)
	}
	lr, lg, lb := col.LinearRgb()
	ll, a, b := oklabFromLinear(lr, lg, lb)
	c = math.Hypot(a, b)
	h = math.Atan2(b, a) * (180 / math.Pi)
	if h < 0 {
		h += 360
	}
	return ll, c, h, nil
}

// ToHex converts the given OKLCH components to a lowercase hex color
// string, clamping to the sRGB gamut. Round-tripping through [Parse]
// and ToHex without modification is idempotent up to floating point
// and channel quantization.
func ToHex(l, c, h float64) string {
	hr := h * (math.Pi / 180)
	a := c * math.Cos(hr)
	b := c * math.Sin(hr)
	lr, lg, lb := linearFromOKLab(l, a, b)
	return colorful.LinearRgb(lr, lg, lb).Clamped().Hex()
}

// oklabFromLinear converts linear sRGB to OKLab
// (Ottosson's standard matrices).
func oklabFromLinear(r, g, b float64) (ll, la, lb float64) {
	l := 0.4122214708*r + 0.5363325363*g + 0.0514459929*b
	m := 0.2119034982*r + 0.6806995451*g + 0.1073969566*b
	s := 0.0883024619*r + 0.2817188376*g + 0.6299787005*b

	l = math.Cbrt(l)
	m = math.Cbrt(m)
	s = math.Cbrt(s)

	ll = 0.2104542553*l + 0.7936177850*m - 0.0040720468*s
	la = 1.9779984951*l - 2.4285922050*m + 0.4505937099*s
	lb = 0.0259040371*l + 0.7827717662*m - 0.8086757660*s
	return
}

// linearFromOKLab converts OKLab to linear sRGB.
func linearFromOKLab(ll, la, lb float64) (r, g, b float64) {
	l := ll + 0.3963377774*la + 0.2158037573*lb
	m := ll - 0.1055613458*la - 0.0638541728*lb
	s := ll - 0.0894841775*la - 1.2914855480*lb

	l = l * l * l
	m = m * m * m
	s = s * s * s

	r = 4.0767416621*l - 3.3077115913*m + 0.2309699292*s
	g = -1.2684380046*l + 2.6097574011*m - 0.3413193965*s
	b = -0.0041960863*l - 0.7034186147*m + 1.7076147010*s
	return
}
