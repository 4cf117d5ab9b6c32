// Copyright (c) 2025, The Tint Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package deltae

import (
	"image/color"

	"github.com/chewxy/math32"
)

const pow25to7 = 6103515625 // 25^7

// CIEDE2000 returns the CIEDE2000 delta-E between the two colors,
// following Sharma, Wu, and Dalal (2005) with unity parametric
// weighting factors (kL = kC = kH = 1).
func CIEDE2000(c1, c2 color.Color) float32 {
	l1, a1, b1 := labOf(c1)
	l2, a2, b2 := labOf(c2)

	cab1 := math32.Hypot(a1, b1)
	cab2 := math32.Hypot(a2, b2)
	cab := (cab1 + cab2) / 2

	g := 0.5 * (1 - math32.Sqrt(pow7(cab)/(pow7(cab)+pow25to7)))
	a1p := (1 + g) * a1
	a2p := (1 + g) * a2
	c1p := math32.Hypot(a1p, b1)
	c2p := math32.Hypot(a2p, b2)
	h1p := hueAngle(b1, a1p)
	h2p := hueAngle(b2, a2p)

	dlp := l2 - l1
	dcp := c2p - c1p
	var dhp float32
	if c1p*c2p != 0 {
		dhp = h2p - h1p
		if dhp < -180 {
			dhp += 360
		} else if dhp > 180 {
			dhp -= 360
		}
	}
	dHp := 2 * math32.Sqrt(c1p*c2p) * math32.Sin(rad(dhp)/2)

	lbp := (l1 + l2) / 2
	cbp := (c1p + c2p) / 2
	hbp := h1p + h2p
	if c1p*c2p != 0 {
		switch {
		case math32.Abs(h1p-h2p) <= 180:
			hbp /= 2
		case hbp < 360:
			hbp = (hbp + 360) / 2
		default:
			hbp = (hbp - 360) / 2
		}
	}

	t := 1 - 0.17*math32.Cos(rad(hbp-30)) + 0.24*math32.Cos(rad(2*hbp)) +
		0.32*math32.Cos(rad(3*hbp+6)) - 0.20*math32.Cos(rad(4*hbp-63))
	dtheta := 30 * math32.Exp(-sq((hbp-275)/25))
	rc := 2 * math32.Sqrt(pow7(cbp)/(pow7(cbp)+pow25to7))
	sl := 1 + 0.015*sq(lbp-50)/math32.Sqrt(20+sq(lbp-50))
	sc := 1 + 0.045*cbp
	sh := 1 + 0.015*cbp*t
	rt := -math32.Sin(rad(2*dtheta)) * rc

	return math32.Sqrt(sq(dlp/sl) + sq(dcp/sc) + sq(dHp/sh) + rt*(dcp/sc)*(dHp/sh))
}

// hueAngle returns the hue angle in degrees in 0-360 for the given
// LAB b and adjusted a' components.
func hueAngle(b, ap float32) float32 {
	if b == 0 && ap == 0 {
		return 0
	}
	h := deg(math32.Atan2(b, ap))
	if h < 0 {
		h += 360
	}
	return h
}

func rad(d float32) float32 { return d * (math32.Pi / 180) }
func deg(r float32) float32 { return r * (180 / math32.Pi) }
func sq(v float32) float32  { return v * v }

func pow7(v float32) float32 {
	v3 := v * v * v
	return v3 * v3 * v
}
