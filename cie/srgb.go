// Copyright (c) 2025, The Tint Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cie provides conversions between the standard CIE color
// spaces (linear RGB, XYZ, LAB) and gamma-corrected sRGB, using the
// D65 standard illuminant.
package cie

import "github.com/chewxy/math32"

// SRGBToLinearComp converts a single gamma-corrected sRGB component
// in the 0-1 range to its linear form, using the standard piecewise
// sRGB transfer curve.
func SRGBToLinearComp(v float32) float32 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math32.Pow((v+0.055)/1.055, 2.4)
}

// SRGBFromLinearComp converts a single linear sRGB component in the
// 0-1 range back to its gamma-corrected form.
func SRGBFromLinearComp(v float32) float32 {
	if v <= 0.0031308 {
		return v * 12.92
	}
	return 1.055*math32.Pow(v, 1.0/2.4) - 0.055
}

// SRGBToLinear converts the given gamma-corrected sRGB values in the
// 0-1 range to linear form.
func SRGBToLinear(r, g, b float32) (rl, gl, bl float32) {
	rl = SRGBToLinearComp(r)
	gl = SRGBToLinearComp(g)
	bl = SRGBToLinearComp(b)
	return
}

// SRGBFromLinear converts the given linear sRGB values in the 0-1
// range to gamma-corrected form.
func SRGBFromLinear(rl, gl, bl float32) (r, g, b float32) {
	r = SRGBFromLinearComp(rl)
	g = SRGBFromLinearComp(gl)
	b = SRGBFromLinearComp(bl)
	return
}

// SRGBToXYZ converts the given gamma-corrected sRGB values in the
// 0-1 range to XYZ coordinates (Y in the 0-1 range), using the
// standard sRGB / D65 conversion matrix.
func SRGBToXYZ(r, g, b float32) (x, y, z float32) {
	rl, gl, bl := SRGBToLinear(r, g, b)
	x = 0.4124564*rl + 0.3575761*gl + 0.1804375*bl
	y = 0.2126729*rl + 0.7151522*gl + 0.0721750*bl
	z = 0.0193339*rl + 0.1191920*gl + 0.9503041*bl
	return
}
