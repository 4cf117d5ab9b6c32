// Copyright (c) 2025, The Tint Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cvd simulates color vision deficiencies (color blindness)
// by applying fixed linear channel-mixing matrices to sRGB colors,
// and detects color pairs that become indistinguishable under
// simulation.
package cvd

import "strconv"

// Type is the type of color vision deficiency being simulated.
// The -anomaly forms are the partial (reduced sensitivity) versions
// of the corresponding -anopia forms, simulated as a 50/50 blend of
// the original color and the full deficiency.
type Type int32

const (
	// None is normal color vision; simulation is the identity.
	None Type = iota

	// Protanopia is the absence of red-sensitive photoreceptors.
	Protanopia

	// Protanomaly is reduced sensitivity of red photoreceptors.
	Protanomaly

	// Deuteranopia is the absence of green-sensitive photoreceptors.
	Deuteranopia

	// Deuteranomaly is reduced sensitivity of green photoreceptors.
	Deuteranomaly

	// Tritanopia is the absence of blue-sensitive photoreceptors.
	Tritanopia

	// Tritanomaly is reduced sensitivity of blue photoreceptors.
	Tritanomaly

	// Monochromacy is near-total absence of color perception.
	Monochromacy
)

// Types returns all simulatable deficiency types, including [None].
func Types() []Type {
	return []Type{None, Protanopia, Protanomaly, Deuteranopia, Deuteranomaly, Tritanopia, Tritanomaly, Monochromacy}
}

// PrimaryTypes returns the four full-deficiency types that batch
// analysis simulates: [Protanopia], [Deuteranopia], [Tritanopia],
// and [Monochromacy].
func PrimaryTypes() []Type {
	return []Type{Protanopia, Deuteranopia, Tritanopia, Monochromacy}
}

func (t Type) String() string {
	switch t {
	case None:
		return "none"
	case Protanopia:
		return "protanopia"
	case Protanomaly:
		return "protanomaly"
	case Deuteranopia:
		return "deuteranopia"
	case Deuteranomaly:
		return "deuteranomaly"
	case Tritanopia:
		return "tritanopia"
	case Tritanomaly:
		return "tritanomaly"
	case Monochromacy:
		return "monochromacy"
	}
	return "Type(" + strconv.Itoa(int(t)) + ")"
}
