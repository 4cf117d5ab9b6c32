// Copyright (c) 2025, The Tint Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tint provides the color value types and string conversions
// underlying the tint color analysis engine. Colors are represented
// using the standard [color.RGBA] type, with hex strings as the
// canonical interchange form.
package tint

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/chewxy/math32"
	"golang.org/x/image/colornames"
)

// ErrParse is the base error wrapped by all color string parsing
// failures (wrong length, invalid hex digit, empty string,
// unknown color name).
var ErrParse = errors.New("invalid color")

var (
	// White is opaque white (#ffffff).
	White = color.RGBA{255, 255, 255, 255}

	// Black is opaque black (#000000).
	Black = color.RGBA{0, 0, 0, 255}
)

// FromHex parses the given hex color string and returns the resulting
// color. The string must consist of exactly 6 case-insensitive hex
// digits, with an optional leading '#'. Any other form returns an
// error wrapping [ErrParse]. The resulting alpha is always 255.
func FromHex(hex string) (color.RGBA, error) {
	h := strings.TrimPrefix(hex, "#")
	if len(h) != 6 {
		return color.RGBA{}, fmt.Errorf("tint.FromHex: %w: %q must have exactly 6 hex digits", ErrParse, hex)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("tint.FromHex: %w: %q is not a hex number", ErrParse, hex)
	}
	return color.RGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 255}, nil
}

// MustFromHex is like [FromHex] except that it panics on error.
// It is intended for compile-time constant color strings.
func MustFromHex(hex string) color.RGBA {
	c, err := FromHex(hex)
	if err != nil {
		panic("tint.MustFromHex: " + err.Error())
	}
	return c
}

// AsHex returns the given color as a lowercase #rrggbb hex string.
// Alpha is dropped.
func AsHex(c color.Color) string {
	r := AsRGBA(c)
	return fmt.Sprintf("#%02x%02x%02x", r.R, r.G, r.B)
}

// FromFloat returns an opaque [color.RGBA] from the given 0-1
// normalized float components, rounded to the nearest channel value
// and clamped to the 0-255 channel range.
func FromFloat(r, g, b float32) color.RGBA {
	return color.RGBA{floatComp(r), floatComp(g), floatComp(b), 255}
}

func floatComp(v float32) uint8 {
	return uint8(clamp(math32.Round(v*255), 0, 255))
}

func clamp(v, lo, hi float32) float32 {
	return min(max(v, lo), hi)
}

// AsFloat returns the color as 0-1 normalized, non-premultiplied
// float components, dropping alpha.
func AsFloat(c color.Color) (r, g, b float32) {
	rc := AsRGBA(c)
	return float32(rc.R) / 255, float32(rc.G) / 255, float32(rc.B) / 255
}

// AsRGBA returns the given color as an RGBA color.
func AsRGBA(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{}
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}

// cssNames holds named colors added in CSS Color 4 that postdate the
// SVG 1.1 table carried by colornames.
var cssNames = map[string]color.RGBA{
	"rebeccapurple": {0x66, 0x33, 0x99, 255},
}

// FromString returns a color value from the given string, which may be
// either a 6-digit hex string per [FromHex] or a standard CSS color
// name (case-insensitive). Errors wrap [ErrParse].
func FromString(s string) (color.RGBA, error) {
	if s == "" {
		return color.RGBA{}, fmt.Errorf("tint.FromString: %w: empty string", ErrParse)
	}
	if s[0] == '#' {
		return FromHex(s)
	}
	name := strings.ToLower(s)
	if c, ok := colornames.Map[name]; ok {
		return c, nil
	}
	if c, ok := cssNames[name]; ok {
		return c, nil
	}
	// bare hex without the leading # is still accepted
	if c, err := FromHex(s); err == nil {
		return c, nil
	}
	return color.RGBA{}, fmt.Errorf("tint.FromString: %w: unknown color %q", ErrParse, s)
}
