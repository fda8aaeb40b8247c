// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorings

import (
	"fmt"
	"image/color"
)

// Format is the color encoding [Identify] classifies a value as.
type Format int32

const (
	// FormatUnknown is reported together with a non-nil error.
	FormatUnknown Format = iota

	// FormatColor is an existing [Color] or [color.Color] value.
	FormatColor

	// FormatHex is a 3- or 6-digit hex string.
	FormatHex

	// FormatWeb is a recognized color name.
	FormatWeb

	// FormatRGB is a 3-element sequence within the 8-bit RGB ranges.
	FormatRGB

	// FormatHSL is a 3-element sequence within the HSL ranges.
	FormatHSL

	// FormatRGBA is a 4-element sequence within the RGBA ranges.
	FormatRGBA

	// FormatHSLA is a 4-element sequence within the HSLA ranges.
	FormatHSLA
)

var formatNames = []string{"unknown", "color", "hex", "web", "rgb", "hsl", "rgba", "hsla"}

func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return "unknown"
	}
	return formatNames[f]
}

// Identify classifies v as one of the supported color encodings
// without converting it. Strings are checked for hex shape first and
// the name table second. Numeric sequences ([]float64, [3]float64,
// [4]float64, []float32, []int) are classified by their component
// ranges, testing both candidate encodings before committing: a
// sequence that satisfies both range sets, such as (0, 0, 0), cannot
// be attributed to either one and fails with [ErrAmbiguous]. A value
// that no encoding accepts fails with [ErrUnrecognized].
func Identify(v any) (Format, error) {
	switch v := v.(type) {
	case Color:
		return FormatColor, nil
	case color.Color:
		return FormatColor, nil
	case string:
		if IsShortHex(v) || IsLongHex(v) {
			return FormatHex, nil
		}
		if IsWeb(v) {
			return FormatWeb, nil
		}
		return FormatUnknown, fmt.Errorf("colorings.Identify: %w: %q is neither a hex string nor a recognized color name", ErrUnrecognized, v)
	}
	c, ok := components(v)
	if !ok {
		return FormatUnknown, fmt.Errorf("colorings.Identify: %w: unsupported type %T", ErrUnrecognized, v)
	}
	switch len(c) {
	case 3:
		rgb, hsl := IsRGB(c), IsHSL(c)
		switch {
		case rgb && hsl:
			return FormatUnknown, fmt.Errorf("colorings.Identify: %w: %v satisfies both the RGB and HSL ranges", ErrAmbiguous, c)
		case rgb:
			return FormatRGB, nil
		case hsl:
			return FormatHSL, nil
		}
		return FormatUnknown, fmt.Errorf("colorings.Identify: %w: %v satisfies neither the RGB nor the HSL ranges", ErrUnrecognized, c)
	case 4:
		rgba, hsla := IsRGBA(c), IsHSLA(c)
		switch {
		case rgba && hsla:
			return FormatUnknown, fmt.Errorf("colorings.Identify: %w: %v satisfies both the RGBA and HSLA ranges", ErrAmbiguous, c)
		case rgba:
			return FormatRGBA, nil
		case hsla:
			return FormatHSLA, nil
		}
		return FormatUnknown, fmt.Errorf("colorings.Identify: %w: %v satisfies neither the RGBA nor the HSLA ranges", ErrUnrecognized, c)
	}
	return FormatUnknown, fmt.Errorf("colorings.Identify: %w: need 3 or 4 components, got %d", ErrUnrecognized, len(c))
}

// components normalizes the numeric sequence forms accepted by
// [Identify] to a float64 slice.
func components(v any) ([]float64, bool) {
	switch v := v.(type) {
	case []float64:
		return v, true
	case [3]float64:
		return v[:], true
	case [4]float64:
		return v[:], true
	case []float32:
		c := make([]float64, len(v))
		for i, f := range v {
			c[i] = float64(f)
		}
		return c, true
	case []int:
		c := make([]float64, len(v))
		for i, n := range v {
			c[i] = float64(n)
		}
		return c, true
	}
	return nil, false
}
