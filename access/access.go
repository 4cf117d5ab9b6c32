// Copyright (c) 2025, The Tint Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package access combines WCAG contrast compliance and color vision
// deficiency analysis into a single accessibility score for a set of
// colors against a set of backgrounds.
package access

import (
	"strconv"

	"github.com/tintlab/tint"
	"github.com/tintlab/tint/cvd"
	"github.com/tintlab/tint/wcag"
)

// Level is the overall WCAG conformance level of a batch of
// color/background pairs.
type Level int32

const (
	// AAA means every pair passes level AAA for normal text.
	AAA Level = iota

	// AA means every pair passes level AA for normal text.
	AA

	// Partial means at least one pair passes level AA.
	Partial

	// None means no pair passes level AA.
	None
)

func (l Level) String() string {
	switch l {
	case AAA:
		return "AAA"
	case AA:
		return "AA"
	case Partial:
		return "partial"
	case None:
		return "none"
	}
	return "Level(" + strconv.Itoa(int(l)) + ")"
}

// Score returns the base accessibility score for the level:
// 100, 85, 60, or 30.
func (l Level) Score() float32 {
	switch l {
	case AAA:
		return 100
	case AA:
		return 85
	case Partial:
		return 60
	}
	return 30
}

// Analysis is the combined accessibility analysis of a set of colors.
type Analysis struct {

	// OverallScore is the combined accessibility score, 0-100.
	OverallScore float32

	// WCAGCompliance is the overall conformance level of the batch.
	WCAGCompliance Level

	// ColorBlindnessScore is the color vision deficiency severity
	// score from [cvd.Simulation], 0-100.
	ColorBlindnessScore float32

	// ContrastIssues holds the color/background pairs failing level AA.
	ContrastIssues []wcag.Analysis

	// ProblematicPairs holds the color pairs that become
	// indistinguishable under deficiency simulation.
	ProblematicPairs []cvd.Pair
}

// The overall score weights WCAG conformance against color vision
// deficiency severity.
const (
	wcagWeight float32 = 0.6
	cvdWeight  float32 = 0.4
)

// neutral is the explicit "no data" result returned when no input
// color survives validation. It is not a failure: scoring nothing is
// defined to be neutral rather than an error.
func neutral() Analysis {
	return Analysis{
		OverallScore:        50,
		WCAGCompliance:      None,
		ColorBlindnessScore: 50,
		ContrastIssues:      []wcag.Analysis{},
		ProblematicPairs:    []cvd.Pair{},
	}
}

// Analyze runs the full accessibility analysis: WCAG contrast
// compliance of every color against every background, color vision
// deficiency simulation across the colors, and a combined score
// weighting the two 60/40. Invalid hex entries are dropped per the
// batch skip-and-continue policy; if no color at all survives, the
// neutral fallback (score 50, level [None]) is returned.
func Analyze(colors, backgrounds []string) Analysis {
	if countValid(colors) == 0 {
		return neutral()
	}

	contrast := wcag.AnalyzeCompliance(colors, backgrounds)
	sim := cvd.Analyze(colors)

	level := complianceLevel(contrast)
	issues := make([]wcag.Analysis, 0, len(contrast))
	for _, a := range contrast {
		if !a.PassesAA {
			issues = append(issues, a)
		}
	}

	return Analysis{
		OverallScore:        wcagWeight*level.Score() + cvdWeight*sim.Severity,
		WCAGCompliance:      level,
		ColorBlindnessScore: sim.Severity,
		ContrastIssues:      issues,
		ProblematicPairs:    sim.DistinctionIssues,
	}
}

// complianceLevel reduces a compliance batch to the single overall
// [Level]: AAA if every pair passes AAA, else AA if every pair passes
// AA, else Partial if any pair passes AA, else None. An empty batch
// is vacuously AAA.
func complianceLevel(batch []wcag.Analysis) Level {
	allAAA, allAA, anyAA := true, true, false
	for _, a := range batch {
		allAAA = allAAA && a.PassesAAA
		allAA = allAA && a.PassesAA
		anyAA = anyAA || a.PassesAA
	}
	switch {
	case allAAA:
		return AAA
	case allAA:
		return AA
	case anyAA:
		return Partial
	}
	return None
}

func countValid(hexes []string) int {
	n := 0
	for _, h := range hexes {
		if _, err := tint.FromHex(h); err == nil {
			n++
		}
	}
	return n
}
