// Copyright (c) 2025, The Tint Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tint

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromHex(t *testing.T) {
	c, err := FromHex("#3b82f6")
	assert.NoError(t, err)
	assert.Equal(t, color.RGBA{0x3b, 0x82, 0xf6, 255}, c)

	c, err = FromHex("3B82F6") // no #, uppercase
	assert.NoError(t, err)
	assert.Equal(t, color.RGBA{0x3b, 0x82, 0xf6, 255}, c)

	for _, bad := range []string{"", "#", "#fff", "#12345", "#1234567", "#ff00gg", "not a color"} {
		_, err := FromHex(bad)
		assert.ErrorIs(t, err, ErrParse, "expected parse error for %q", bad)
	}
}

func TestAsHex(t *testing.T) {
	assert.Equal(t, "#3b82f6", AsHex(color.RGBA{0x3b, 0x82, 0xf6, 255}))
	assert.Equal(t, "#000000", AsHex(Black))
	assert.Equal(t, "#ffffff", AsHex(White))
}

func TestHexRoundTrip(t *testing.T) {
	for _, hex := range []string{"#000000", "#ffffff", "#ff0000", "#00ff00", "#0000ff", "#3b82f6", "#808080", "#123abc"} {
		c, err := FromHex(hex)
		assert.NoError(t, err)
		assert.Equal(t, hex, AsHex(c))
	}
}

func TestFromFloat(t *testing.T) {
	assert.Equal(t, color.RGBA{255, 0, 128, 255}, FromFloat(1, 0, 0.5019608))
	// out-of-range channels are clamped, not wrapped
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, FromFloat(1.2, -0.3, 0))
}

func TestFromString(t *testing.T) {
	c, err := FromString("#ff0000")
	assert.NoError(t, err)
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, c)

	c, err = FromString("steelblue")
	assert.NoError(t, err)
	assert.Equal(t, color.RGBA{0x46, 0x82, 0xb4, 255}, c)

	// rebeccapurple postdates the SVG 1.1 table but is a valid CSS name
	c, err = FromString("RebeccaPurple")
	assert.NoError(t, err)
	assert.Equal(t, color.RGBA{0x66, 0x33, 0x99, 255}, c)

	c, err = FromString("3b82f6") // bare hex
	assert.NoError(t, err)
	assert.Equal(t, color.RGBA{0x3b, 0x82, 0xf6, 255}, c)

	_, err = FromString("")
	assert.ErrorIs(t, err, ErrParse)
	_, err = FromString("no-such-color")
	assert.ErrorIs(t, err, ErrParse)
}
