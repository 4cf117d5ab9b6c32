// Copyright (c) 2025, The Tint Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cvd

import (
	"image/color"

	"github.com/tintlab/tint"
)

// Mat3 is a fixed-size 3x3 row-major channel-mixing matrix applied to
// 0-1 normalized sRGB channels.
type Mat3 [3][3]float32

// Apply multiplies the matrix against the given channel column vector.
func (m *Mat3) Apply(r, g, b float32) (sr, sg, sb float32) {
	sr = m[0][0]*r + m[0][1]*g + m[0][2]*b
	sg = m[1][0]*r + m[1][1]*g + m[1][2]*b
	sb = m[2][0]*r + m[2][1]*g + m[2][2]*b
	return
}

// The full-deficiency simulation matrices. The -anomaly variants have
// no matrices of their own: they are 50/50 blends of the original
// color and the corresponding full deficiency.
var (
	protanopia = Mat3{
		{0.567, 0.433, 0.000},
		{0.558, 0.442, 0.000},
		{0.000, 0.242, 0.758},
	}
	deuteranopia = Mat3{
		{0.625, 0.375, 0.000},
		{0.700, 0.300, 0.000},
		{0.000, 0.300, 0.700},
	}
	tritanopia = Mat3{
		{0.950, 0.050, 0.000},
		{0.000, 0.433, 0.567},
		{0.000, 0.475, 0.525},
	}
	monochromacy = Mat3{
		{0.299, 0.587, 0.114},
		{0.299, 0.587, 0.114},
		{0.299, 0.587, 0.114},
	}
)

// Simulate returns the given color as perceived under the given
// deficiency type. [None] returns the color unchanged. The result
// channels are rounded to the nearest 0-255 value and clamped, and
// alpha is preserved.
func Simulate(c color.RGBA, t Type) color.RGBA {
	r, g, b := tint.AsFloat(c)
	var sr, sg, sb float32
	switch t {
	case None:
		return c
	case Protanopia:
		sr, sg, sb = protanopia.Apply(r, g, b)
	case Protanomaly:
		sr, sg, sb = blend(r, g, b, &protanopia)
	case Deuteranopia:
		sr, sg, sb = deuteranopia.Apply(r, g, b)
	case Deuteranomaly:
		sr, sg, sb = blend(r, g, b, &deuteranopia)
	case Tritanopia:
		sr, sg, sb = tritanopia.Apply(r, g, b)
	case Tritanomaly:
		sr, sg, sb = blend(r, g, b, &tritanopia)
	case Monochromacy:
		sr, sg, sb = monochromacy.Apply(r, g, b)
	default:
		return c
	}
	res := tint.FromFloat(clamp01(sr), clamp01(sg), clamp01(sb))
	res.A = c.A
	return res
}

// SimulateHex is [Simulate] on a hex color string.
// Unparseable colors return an error wrapping [tint.ErrParse].
func SimulateHex(hex string, t Type) (string, error) {
	c, err := tint.FromHex(hex)
	if err != nil {
		return "", err
	}
	return tint.AsHex(Simulate(c, t)), nil
}

// blend averages the original channels with their full-deficiency
// simulation, giving the partial -anomaly forms.
func blend(r, g, b float32, m *Mat3) (float32, float32, float32) {
	sr, sg, sb := m.Apply(r, g, b)
	return (r + sr) / 2, (g + sg) / 2, (b + sb) / 2
}

func clamp01(v float32) float32 {
	return min(max(v, 0), 1)
}
