// Copyright (c) 2025, The Tint Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import "github.com/chewxy/math32"

// D65 standard illuminant white point.
const (
	WhiteX = 0.95047
	WhiteY = 1.00000
	WhiteZ = 1.08883
)

// LABCompress is the standard CIE f(t) transform applied to
// white-point normalized XYZ coordinates when converting to LAB.
func LABCompress(t float32) float32 {
	if t > 0.008856 {
		return math32.Pow(t, 1.0/3.0)
	}
	return 7.787*t + 16.0/116.0
}

// LABUncompress is the inverse of [LABCompress].
func LABUncompress(ft float32) float32 {
	e := float32(0.008856)
	f3 := ft * ft * ft
	if f3 > e {
		return f3
	}
	return (ft - 16.0/116.0) / 7.787
}

// XYZToLAB converts the given XYZ coordinates (Y in the 0-1 range)
// to LAB coordinates (L* 0-100), normalizing by the D65 white point.
func XYZToLAB(x, y, z float32) (l, a, b float32) {
	fx := LABCompress(x / WhiteX)
	fy := LABCompress(y / WhiteY)
	fz := LABCompress(z / WhiteZ)
	l = 116*fy - 16
	a = 500 * (fx - fy)
	b = 200 * (fy - fz)
	return
}

// LABToXYZ converts the given LAB coordinates (L* 0-100) to XYZ
// coordinates (Y in the 0-1 range), de-normalizing by the D65
// white point.
func LABToXYZ(l, a, b float32) (x, y, z float32) {
	fy := (l + 16) / 116
	fx := a/500 + fy
	fz := fy - b/200
	x = LABUncompress(fx) * WhiteX
	y = LABUncompress(fy) * WhiteY
	z = LABUncompress(fz) * WhiteZ
	return
}

// SRGBToLAB converts the given gamma-corrected sRGB values in the
// 0-1 range directly to LAB coordinates.
func SRGBToLAB(r, g, b float32) (l, aa, bb float32) {
	x, y, z := SRGBToXYZ(r, g, b)
	return XYZToLAB(x, y, z)
}

// LToY converts an L* value (0-100) to an XYZ Y value (0-100).
func LToY(l float32) float32 {
	return 100 * LABUncompress((l+16)/116)
}

// YToL converts an XYZ Y value (0-100) to an L* value (0-100).
func YToL(y float32) float32 {
	return 116*LABCompress(y/100) - 16
}
