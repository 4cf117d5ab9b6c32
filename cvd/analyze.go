// Copyright (c) 2025, The Tint Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cvd

import (
	"image/color"
	"log/slog"

	"github.com/tintlab/tint"
	"github.com/tintlab/tint/deltae"
)

// A pair of colors is problematic when it is clearly distinguishable
// originally but not under simulation, measured as CIE76 delta-E.
const (
	// DistinctDelta is the delta-E above which two original colors
	// count as distinguishable.
	DistinctDelta float32 = 10

	// ConfusionDelta is the delta-E below which two simulated colors
	// count as indistinguishable.
	ConfusionDelta float32 = 5
)

// Affected records how a single color shifts under one deficiency
// simulation.
type Affected struct {

	// Original is the input color as a hex string.
	Original string

	// Perceived is the simulated color as a hex string.
	Perceived string

	// Difference is the CIE76 delta-E between the two.
	Difference float32
}

// Pair records the distinguishability of one unordered color pair
// under one deficiency simulation.
type Pair struct {

	// Color1 and Color2 are the original colors as hex strings.
	Color1, Color2 string

	// OriginalDistance is the CIE76 delta-E between the original colors.
	OriginalDistance float32

	// PerceivedDistance is the CIE76 delta-E between the simulated colors.
	PerceivedDistance float32

	// Problematic is whether the pair is distinguishable originally
	// (OriginalDistance > [DistinctDelta]) but not under simulation
	// (PerceivedDistance < [ConfusionDelta]).
	Problematic bool
}

// Simulation is the pooled result of simulating a set of colors under
// all four primary deficiency types.
type Simulation struct {

	// AffectedColors holds one record per color per simulated type.
	AffectedColors []Affected

	// DistinctionIssues holds the problematic pairs across all
	// simulated types.
	DistinctionIssues []Pair

	// Severity is a coarse four-level ordinal score of how badly the
	// set degrades under simulation: 100 (no degradation) down to 25,
	// encoded as a float for uniform weighting in combined scores.
	Severity float32
}

// Analyze simulates every given color under each of the four primary
// deficiency types ([PrimaryTypes]) and pools the results. Colors
// that fail to parse as hex are dropped rather than aborting the
// batch. For every unordered pair of colors it records the
// pre-simulation and post-simulation delta-E, computed on the
// quantized simulated hex values, and marks pairs that collapse
// below [ConfusionDelta].
func Analyze(colors []string) Simulation {
	type entry struct {
		hex string
		c   color.RGBA
	}
	valid := make([]entry, 0, len(colors))
	for _, h := range colors {
		c, err := tint.FromHex(h)
		if err != nil {
			slog.Debug("cvd.Analyze: skipping invalid color", "color", h)
			continue
		}
		valid = append(valid, entry{h, c})
	}

	sim := Simulation{}
	for _, t := range PrimaryTypes() {
		perceived := make([]color.RGBA, len(valid))
		for i, e := range valid {
			p := Simulate(e.c, t)
			perceived[i] = p
			sim.AffectedColors = append(sim.AffectedColors, Affected{
				Original:   tint.AsHex(e.c),
				Perceived:  tint.AsHex(p),
				Difference: deltae.CIE76(e.c, p),
			})
		}
		for i := 0; i < len(valid); i++ {
			for j := i + 1; j < len(valid); j++ {
				od := deltae.CIE76(valid[i].c, valid[j].c)
				pd := deltae.CIE76(perceived[i], perceived[j])
				prob := od > DistinctDelta && pd < ConfusionDelta
				if prob {
					sim.DistinctionIssues = append(sim.DistinctionIssues, Pair{
						Color1:            tint.AsHex(valid[i].c),
						Color2:            tint.AsHex(valid[j].c),
						OriginalDistance:  od,
						PerceivedDistance: pd,
						Problematic:       true,
					})
				}
			}
		}
	}
	sim.Severity = severity(sim.AffectedColors, len(sim.DistinctionIssues))
	return sim
}

// severity buckets the mean per-color shift and the problematic pair
// count into the four ordinal levels. The thresholds (5/15/30 mean
// delta-E, 0/2/5 issues) are heuristic cut points with no cited
// accessibility-research basis; changing them changes every
// downstream score, so they stay fixed.
func severity(affected []Affected, issues int) float32 {
	var mean float32
	if len(affected) > 0 {
		var sum float32
		for _, a := range affected {
			sum += a.Difference
		}
		mean = sum / float32(len(affected))
	}
	switch {
	case mean < 5 && issues == 0:
		return 100
	case mean < 15 && issues <= 2:
		return 75
	case mean < 30 && issues <= 5:
		return 50
	}
	return 25
}
