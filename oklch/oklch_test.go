// Copyright (c) 2025, The Tint Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oklch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	l, c, _, err := Parse("#ffffff")
	assert.NoError(t, err)
	assert.InDelta(t, 1, l, 1e-4)
	assert.InDelta(t, 0, c, 1e-4)

	l, c, _, err = Parse("#000000")
	assert.NoError(t, err)
	assert.InDelta(t, 0, l, 1e-4)
	assert.InDelta(t, 0, c, 1e-4)

	// red: the canonical OKLCH reference values
	l, c, h, err := Parse("#ff0000")
	assert.NoError(t, err)
	assert.InDelta(t, 0.6280, l, 1e-3)
	assert.InDelta(t, 0.2577, c, 1e-3)
	assert.InDelta(t, 29.23, h, 0.1)

	_, _, _, err = Parse("#nope")
	assert.Error(t, err)
}

func TestRoundTrip(t *testing.T) {
	for _, hex := range []string{"#ff0000", "#00ff00", "#0000ff", "#3b82f6", "#808080", "#fde047"} {
		l, c, h, err := Parse(hex)
		assert.NoError(t, err)
		assert.Equal(t, hex, ToHex(l, c, h), "round trip of %s", hex)
	}
}

func TestHueDomain(t *testing.T) {
	for _, hex := range []string{"#ff0000", "#00ff00", "#0000ff", "#ff00ff", "#00ffff", "#ffff00"} {
		_, _, h, err := Parse(hex)
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, h, 0.0)
		assert.Less(t, h, 360.0)
	}
}

func TestLightnessMonotone(t *testing.T) {
	// lightness must increase along the gray axis
	grays := []string{"#000000", "#404040", "#808080", "#c0c0c0", "#ffffff"}
	last := -1.0
	for _, hex := range grays {
		l, _, _, err := Parse(hex)
		assert.NoError(t, err)
		assert.Greater(t, l, last, "lightness of %s", hex)
		last = l
	}
}

func TestGamutClamp(t *testing.T) {
	// far outside the sRGB gamut: still a well-formed hex color
	hex := ToHex(0.8, 0.5, 150)
	l, c, _, err := Parse(hex)
	assert.NoError(t, err)
	assert.InDelta(t, 0.8, l, 0.25) // clamped, but in the neighborhood
	assert.Greater(t, c, 0.0)
}
