// Copyright (c) 2025, The Tint Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cvd

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tintlab/tint/base/tolassert"
)

func TestSimulateIdentity(t *testing.T) {
	colors := []color.RGBA{
		{0, 0, 0, 255},
		{255, 255, 255, 255},
		{255, 0, 0, 255},
		{0x3b, 0x82, 0xf6, 255},
	}
	for _, c := range colors {
		assert.Equal(t, c, Simulate(c, None))
	}
}

func TestSimulate(t *testing.T) {
	red := color.RGBA{255, 0, 0, 255}

	// pure red through the protanopia matrix:
	// (0.567, 0.558, 0) * 255 = (144.6, 142.3, 0)
	assert.Equal(t, color.RGBA{145, 142, 0, 255}, Simulate(red, Protanopia))

	// protanomaly is the 50/50 blend with the original
	assert.Equal(t, color.RGBA{200, 71, 0, 255}, Simulate(red, Protanomaly))

	// the monochromacy rows sum to 1, so white stays white
	// and every output channel is the same luma
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, Simulate(color.RGBA{255, 255, 255, 255}, Monochromacy))
	m := Simulate(red, Monochromacy)
	assert.Equal(t, m.R, m.G)
	assert.Equal(t, m.G, m.B)
	assert.Equal(t, uint8(76), m.R)

	// all matrices are row-stochastic, so grays are invariant
	// under every deficiency type
	gray := color.RGBA{128, 128, 128, 255}
	for _, typ := range Types() {
		assert.Equal(t, gray, Simulate(gray, typ), "gray under %v", typ)
	}

	// alpha passes through untouched
	c := Simulate(color.RGBA{255, 0, 0, 128}, Protanopia)
	assert.Equal(t, uint8(128), c.A)
}

func TestSimulateHex(t *testing.T) {
	h, err := SimulateHex("#ff0000", Protanopia)
	assert.NoError(t, err)
	assert.Equal(t, "#918e00", h)

	h, err = SimulateHex("#808080", Deuteranopia)
	assert.NoError(t, err)
	assert.Equal(t, "#808080", h)

	_, err = SimulateHex("bad", Protanopia)
	assert.Error(t, err)
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "none", None.String())
	assert.Equal(t, "protanopia", Protanopia.String())
	assert.Equal(t, "deuteranomaly", Deuteranomaly.String())
	assert.Equal(t, "monochromacy", Monochromacy.String())
	assert.Len(t, Types(), 8)
	assert.Len(t, PrimaryTypes(), 4)
}

func TestAnalyzeGrays(t *testing.T) {
	// grays are invariant under all matrices: no perceived shift,
	// no distinction issues, best severity
	sim := Analyze([]string{"#808080", "#404040"})
	assert.Len(t, sim.AffectedColors, 8) // 2 colors x 4 types
	for _, a := range sim.AffectedColors {
		assert.Equal(t, a.Original, a.Perceived)
		tolassert.Equal(t, 0, a.Difference)
	}
	assert.Empty(t, sim.DistinctionIssues)
	tolassert.Equal(t, 100, sim.Severity)
}

func TestAnalyzeConfusablePair(t *testing.T) {
	// these two are far apart originally but collapse to nearly the
	// same color under the protanopia matrix
	sim := Analyze([]string{"#c86428", "#64e700"})
	assert.NotEmpty(t, sim.DistinctionIssues)
	issue := sim.DistinctionIssues[0]
	assert.True(t, issue.Problematic)
	assert.Greater(t, issue.OriginalDistance, DistinctDelta)
	assert.Less(t, issue.PerceivedDistance, ConfusionDelta)
	assert.Contains(t, []float32{25, 50}, sim.Severity)
}

func TestAnalyzeSkipsInvalid(t *testing.T) {
	sim := Analyze([]string{"#ff0000", "not-a-color"})
	assert.Len(t, sim.AffectedColors, 4) // only the valid color, once per type
	assert.Empty(t, sim.DistinctionIssues)
}
