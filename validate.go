// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorings

import (
	"regexp"
	"strings"
)

// Epsilon is the tolerance applied to every floating point range check
// in this package. Chained conversions (rgb to hsl to rgb) accumulate
// rounding error at boundary values like 0 and 1, and without the
// tolerance such round trips would spuriously fail validation.
const Epsilon = 0.0000005

var (
	shortHexColor = regexp.MustCompile(`^#[0-9a-fA-F]{3}$`)
	longHexColor  = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
)

// inRange reports whether v is within [lo, hi], allowing Epsilon slack
// on both ends.
func inRange(v, lo, hi float64) bool {
	return v >= lo-Epsilon && v <= hi+Epsilon
}

// IsRGB reports whether v is a 3-component color with each component
// in the 8-bit range [0, 255].
func IsRGB(v []float64) bool {
	if len(v) != 3 {
		return false
	}
	for _, c := range v {
		if !inRange(c, 0, 255) {
			return false
		}
	}
	return true
}

// IsRGBF reports whether v is a 3-component color with each component
// in the fractional range [0, 1].
func IsRGBF(v []float64) bool {
	if len(v) != 3 {
		return false
	}
	for _, c := range v {
		if !inRange(c, 0, 1) {
			return false
		}
	}
	return true
}

// IsRGBA reports whether v is a 4-component color whose first three
// components are in the 8-bit range [0, 255] and whose alpha is in
// [0, 1].
func IsRGBA(v []float64) bool {
	if len(v) != 4 {
		return false
	}
	return IsRGB(v[:3]) && inRange(v[3], 0, 1)
}

// IsRGBAF reports whether v is a 4-component color with every
// component, alpha included, in the fractional range [0, 1].
func IsRGBAF(v []float64) bool {
	if len(v) != 4 {
		return false
	}
	return IsRGBF(v[:3]) && inRange(v[3], 0, 1)
}

// IsHSL reports whether v is a 3-component color with hue in the
// degree range [0, 360) and saturation and lightness in [0, 1].
// The hue bound is strict at 360: arithmetic in this package always
// normalizes hue back into [0, 360) before validation.
func IsHSL(v []float64) bool {
	if len(v) != 3 {
		return false
	}
	return v[0] >= -Epsilon && v[0] < 360 && inRange(v[1], 0, 1) && inRange(v[2], 0, 1)
}

// IsHSLA reports whether v is a 4-component color whose first three
// components satisfy [IsHSL] and whose alpha is in [0, 1].
func IsHSLA(v []float64) bool {
	if len(v) != 4 {
		return false
	}
	return IsHSL(v[:3]) && inRange(v[3], 0, 1)
}

// IsShortHex reports whether s is a 3-digit hex color string such as
// "#f00".
func IsShortHex(s string) bool {
	return shortHexColor.MatchString(s)
}

// IsLongHex reports whether s is a 6-digit hex color string such as
// "#ff0000".
func IsLongHex(s string) bool {
	return longHexColor.MatchString(s)
}

// IsWeb reports whether s is a recognized color name
// (case-insensitive) or a valid short or long hex string.
func IsWeb(s string) bool {
	if IsShortHex(s) || IsLongHex(s) {
		return true
	}
	_, ok := Names[strings.ToLower(s)]
	return ok
}
