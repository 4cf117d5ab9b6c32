// Copyright (c) 2025, The Tint Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"testing"

	"github.com/tintlab/tint/base/tolassert"
)

func TestSRGB(t *testing.T) {
	tolassert.Equal(t, 0.00015479876, SRGBToLinearComp(0.002))
	tolassert.Equal(t, 0.23302202, SRGBToLinearComp(0.52))

	tolassert.Equal(t, 0.012920001, SRGBFromLinearComp(0.001))
	tolassert.Equal(t, 0.84338915, SRGBFromLinearComp(0.68))

	rl, gl, bl := SRGBToLinear(0.3, 0.2, 0.6)
	tolassert.Equal(t, 0.07323897, rl)
	tolassert.Equal(t, 0.033104762, gl)
	tolassert.Equal(t, 0.31854683, bl)

	r, g, b := SRGBFromLinear(rl, gl, bl)
	tolassert.Equal(t, 0.3, r)
	tolassert.Equal(t, 0.2, g)
	tolassert.Equal(t, 0.6, b)
}

func TestXYZ(t *testing.T) {
	// white maps to the D65 white point
	x, y, z := SRGBToXYZ(1, 1, 1)
	tolassert.Equal(t, WhiteX, x)
	tolassert.Equal(t, WhiteY, y)
	tolassert.Equal(t, WhiteZ, z)

	x, y, z = SRGBToXYZ(0, 0, 0)
	tolassert.Equal(t, 0, x)
	tolassert.Equal(t, 0, y)
	tolassert.Equal(t, 0, z)
}

func TestLAB(t *testing.T) {
	tolassert.Equal(t, 0.887904, LABCompress(0.7))
	tolassert.Equal(t, 0.1379544, LABCompress(0.000003))
	tolassert.Equal(t, 0.21600002, LABUncompress(0.6))

	l, a, b := XYZToLAB(0.1, 0.3, 0.5)
	tolassert.EqualTol(t, 61.65422, l, 1.0e-3, "L")
	tolassert.EqualTol(t, -98.673805, a, 1.0e-3, "a")
	tolassert.EqualTol(t, -20.413673, b, 1.0e-3, "b")

	x, y, z := LABToXYZ(28, 14, 36.2)
	tolassert.Equal(t, 0.06422656, x)
	tolassert.Equal(t, 0.054573778, y)
	tolassert.Equal(t, 0.008442593, z)

	// extremes of the lightness axis
	l, a, b = SRGBToLAB(1, 1, 1)
	tolassert.EqualTol(t, 100, l, 1.0e-2)
	tolassert.EqualTol(t, 0, a, 1.0e-2)
	tolassert.EqualTol(t, 0, b, 1.0e-2)

	l, a, b = SRGBToLAB(0, 0, 0)
	tolassert.Equal(t, 0, l)
	tolassert.Equal(t, 0, a)
	tolassert.Equal(t, 0, b)
}

func TestLY(t *testing.T) {
	tolassert.Equal(t, 2.3023312, LToY(17))
	tolassert.Equal(t, 21.579498, YToL(3.4))
	tolassert.Equal(t, 100, LToY(100))
	tolassert.Equal(t, 100, YToL(100))
}
