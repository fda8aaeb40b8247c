// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorings

import (
	"fmt"
	"math"
	"strings"
)

// The exported converters in this file validate their input and fail
// with an error wrapping [ErrInvalid] on any violation; they never
// clamp. The unexported cores below them do the pure math and are
// shared with [Color], whose stored state is always valid.

// RGBToHSL converts an 8-bit RGB value to HSL.
func RGBToHSL(v RGB) (HSL, error) {
	if !v.Valid() {
		return HSL{}, fmt.Errorf("colorings.RGBToHSL: %w: components must be in [0, 255]: %v", ErrInvalid, v)
	}
	return rgbToHSL(v), nil
}

// HSLToRGB converts an HSL value to 8-bit RGB. The returned channels
// are real-valued; see [RGB].
func HSLToRGB(v HSL) (RGB, error) {
	if !v.Valid() {
		return RGB{}, fmt.Errorf("colorings.HSLToRGB: %w: hue must be in [0, 360) and saturation and lightness in [0, 1]: %v", ErrInvalid, v)
	}
	return hslToRGB(v), nil
}

// RGBToHex formats an 8-bit RGB value as a hex string, using the
// 3-digit shorthand whenever every quantized channel is a doubled
// nibble; see [RGBToHexLong] for the version that always emits 6
// digits.
func RGBToHex(v RGB) (string, error) {
	if !v.Valid() {
		return "", fmt.Errorf("colorings.RGBToHex: %w: components must be in [0, 255]: %v", ErrInvalid, v)
	}
	return rgbToHex(v, false), nil
}

// RGBToHexLong formats an 8-bit RGB value as a 6-digit hex string;
// see [RGBToHex] for the version that prefers the 3-digit shorthand.
func RGBToHexLong(v RGB) (string, error) {
	if !v.Valid() {
		return "", fmt.Errorf("colorings.RGBToHexLong: %w: components must be in [0, 255]: %v", ErrInvalid, v)
	}
	return rgbToHex(v, true), nil
}

// HexToRGB parses a 3- or 6-digit hex string into an 8-bit RGB value.
// The 3-digit form is the nibble-doubled shorthand, so "#f00" is
// {255, 0, 0}.
func HexToRGB(s string) (RGB, error) {
	v, ok := hexToRGB(s)
	if !ok {
		return RGB{}, fmt.Errorf("colorings.HexToRGB: %w: %q is not a 3- or 6-digit hex string", ErrInvalid, s)
	}
	return v, nil
}

// HexToHSL parses a 3- or 6-digit hex string and converts it to HSL.
func HexToHSL(s string) (HSL, error) {
	v, ok := hexToRGB(s)
	if !ok {
		return HSL{}, fmt.Errorf("colorings.HexToHSL: %w: %q is not a 3- or 6-digit hex string", ErrInvalid, s)
	}
	return rgbToHSL(v), nil
}

// HexToWeb converts a hex string to its web form: the preferred color
// name when the value matches the name table exactly, and otherwise
// the hex string itself, shortened to 3 digits when possible.
func HexToWeb(s string) (string, error) {
	v, ok := hexToRGB(s)
	if !ok {
		return "", fmt.Errorf("colorings.HexToWeb: %w: %q is not a 3- or 6-digit hex string", ErrInvalid, s)
	}
	return rgbToWeb(v), nil
}

// WebToHex converts a web string, either a recognized color name
// (case-insensitive) or a hex string, to hex, preferring the 3-digit
// shorthand; see [WebToHexLong] for the 6-digit version.
func WebToHex(s string) (string, error) {
	v, err := WebToRGB(s)
	if err != nil {
		return "", fmt.Errorf("colorings.WebToHex: %w", err)
	}
	return rgbToHex(v, false), nil
}

// WebToHexLong converts a web string to a 6-digit hex string.
func WebToHexLong(s string) (string, error) {
	v, err := WebToRGB(s)
	if err != nil {
		return "", fmt.Errorf("colorings.WebToHexLong: %w", err)
	}
	return rgbToHex(v, true), nil
}

// WebToRGB converts a web string, either a recognized color name
// (case-insensitive) or a hex string, to 8-bit RGB.
func WebToRGB(s string) (RGB, error) {
	if v, ok := Names[strings.ToLower(s)]; ok {
		return v, nil
	}
	if v, ok := hexToRGB(s); ok {
		return v, nil
	}
	return RGB{}, fmt.Errorf("colorings.WebToRGB: %w: %q is neither a recognized color name nor a hex string", ErrInvalid, s)
}

// WebToHSL converts a web string to HSL.
func WebToHSL(s string) (HSL, error) {
	v, err := WebToRGB(s)
	if err != nil {
		return HSL{}, fmt.Errorf("colorings.WebToHSL: %w", err)
	}
	return rgbToHSL(v), nil
}

// RGBToWeb converts an 8-bit RGB value to its web form: the preferred
// color name on an exact table match, else the shortened hex string.
func RGBToWeb(v RGB) (string, error) {
	if !v.Valid() {
		return "", fmt.Errorf("colorings.RGBToWeb: %w: components must be in [0, 255]: %v", ErrInvalid, v)
	}
	return rgbToWeb(v), nil
}

// HSLToHex converts an HSL value to hex, preferring the 3-digit
// shorthand.
func HSLToHex(v HSL) (string, error) {
	if !v.Valid() {
		return "", fmt.Errorf("colorings.HSLToHex: %w: hue must be in [0, 360) and saturation and lightness in [0, 1]: %v", ErrInvalid, v)
	}
	return rgbToHex(hslToRGB(v), false), nil
}

// HSLToWeb converts an HSL value to its web form: the preferred color
// name on an exact table match, else the shortened hex string.
func HSLToWeb(v HSL) (string, error) {
	if !v.Valid() {
		return "", fmt.Errorf("colorings.HSLToWeb: %w: hue must be in [0, 360) and saturation and lightness in [0, 1]: %v", ErrInvalid, v)
	}
	return rgbToWeb(hslToRGB(v)), nil
}

// RGBAToHSL validates a fractional RGBA value, drops the alpha, and
// converts the color to HSL.
func RGBAToHSL(v RGBA) (HSL, error) {
	if !v.Valid() {
		return HSL{}, fmt.Errorf("colorings.RGBAToHSL: %w: components must be in [0, 1]: %v", ErrInvalid, v)
	}
	return rgbToHSL(RGB{v.R * 255, v.G * 255, v.B * 255}), nil
}

// HSLAToHSL validates an HSLA value and drops the alpha.
func HSLAToHSL(v HSLA) (HSL, error) {
	if !v.Valid() {
		return HSL{}, fmt.Errorf("colorings.HSLAToHSL: %w: hue must be in [0, 360) and the other components in [0, 1]: %v", ErrInvalid, v)
	}
	return HSL{v.H, v.S, v.L}, nil
}

// RGBToRGBA normalizes an 8-bit RGB value to fractional components
// and appends the given alpha.
func RGBToRGBA(v RGB, alpha float64) (RGBA, error) {
	if !v.Valid() {
		return RGBA{}, fmt.Errorf("colorings.RGBToRGBA: %w: components must be in [0, 255]: %v", ErrInvalid, v)
	}
	if !inRange(alpha, 0, 1) {
		return RGBA{}, fmt.Errorf("colorings.RGBToRGBA: %w: alpha must be in [0, 1]: %g", ErrInvalid, alpha)
	}
	return RGBA{v.R / 255, v.G / 255, v.B / 255, alpha}, nil
}

// HSLToHSLA appends the given alpha to an HSL value.
func HSLToHSLA(v HSL, alpha float64) (HSLA, error) {
	if !v.Valid() {
		return HSLA{}, fmt.Errorf("colorings.HSLToHSLA: %w: hue must be in [0, 360) and saturation and lightness in [0, 1]: %v", ErrInvalid, v)
	}
	if !inRange(alpha, 0, 1) {
		return HSLA{}, fmt.Errorf("colorings.HSLToHSLA: %w: alpha must be in [0, 1]: %g", ErrInvalid, alpha)
	}
	return HSLA{v.H, v.S, v.L, alpha}, nil
}

// rgbToHSL is the conversion core behind [RGBToHSL]. Channels are
// normalized to [0, 1], lightness is the midpoint of the extreme
// channels, and hue comes from the standard piecewise max-channel
// formula, scaled to degrees.
func rgbToHSL(v RGB) HSL {
	r := v.R / 255
	g := v.G / 255
	b := v.B / 255
	min := math.Min(math.Min(r, g), b)
	max := math.Max(math.Max(r, g), b)

	l := (max + min) / 2
	if min == max {
		return HSL{0, 0, l}
	}

	d := max - min
	var s float64
	if l > 0.5 {
		s = d / (2 - max - min)
	} else {
		s = d / (max + min)
	}

	var h float64
	switch max {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = 2 + (b-r)/d
	case b:
		h = 4 + (r-g)/d
	}
	h *= 60
	if h < 0 {
		h += 360
	}
	return HSL{h, s, l}
}

// hslToRGB is the conversion core behind [HSLToRGB], using the
// standard hue-to-RGB helper with 1/3 and 2/3 phase offsets.
func hslToRGB(v HSL) RGB {
	if v.S == 0 {
		l := v.L * 255
		return RGB{l, l, l}
	}

	h := v.H / 360
	var q float64
	if v.L < 0.5 {
		q = v.L * (1 + v.S)
	} else {
		q = v.L + v.S - v.L*v.S
	}
	p := 2*v.L - q
	return RGB{
		255 * hueToRGB(p, q, h+1.0/3.0),
		255 * hueToRGB(p, q, h),
		255 * hueToRGB(p, q, h-1.0/3.0),
	}
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	if t < 1.0/6.0 {
		return p + (q-p)*6*t
	}
	if t < 0.5 {
		return q
	}
	if t < 2.0/3.0 {
		return p + (q-p)*(2.0/3.0-t)*6
	}
	return p
}

// quantize maps a [0, 255] channel to its byte, rounding half down so
// that 127.5 is 0x7f.
func quantize(c float64) uint8 {
	return uint8(math.Floor(c + 0.5 - Epsilon))
}

// rgbToHex is the formatting core behind [RGBToHex] and
// [RGBToHexLong].
func rgbToHex(v RGB, long bool) string {
	r := quantize(v.R)
	g := quantize(v.G)
	b := quantize(v.B)
	if !long && r>>4 == r&0xf && g>>4 == g&0xf && b>>4 == b&0xf {
		return fmt.Sprintf("#%x%x%x", r&0xf, g&0xf, b&0xf)
	}
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// hexToRGB is the parsing core behind [HexToRGB]. The second return
// value reports whether s has a valid hex shape.
func hexToRGB(s string) (RGB, bool) {
	var r, g, b int
	switch {
	case IsLongHex(s):
		fmt.Sscanf(s[1:], "%02x%02x%02x", &r, &g, &b)
	case IsShortHex(s):
		fmt.Sscanf(s[1:], "%1x%1x%1x", &r, &g, &b)
		r |= r << 4
		g |= g << 4
		b |= b << 4
	default:
		return RGB{}, false
	}
	return RGB{float64(r), float64(g), float64(b)}, true
}

// rgbToWeb resolves an RGB value to the preferred name of its
// quantized bytes, falling back to the shortened hex form.
func rgbToWeb(v RGB) string {
	if name, ok := hexToName[rgbToHex(v, true)]; ok {
		return name
	}
	return rgbToHex(v, false)
}
