// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorings

import (
	"fmt"
	"image/color"
	"log"
	"math"
)

// Color is a color held canonically as HSL plus an alpha, convertible
// to and from every other supported encoding. Constructors produce
// opaque colors unless the source carries an alpha; the zero value is
// transparent black. Color implements [color.Color], [fmt.Stringer],
// [encoding.TextMarshaler], and [encoding.TextUnmarshaler].
type Color struct {
	hsl   HSL
	alpha float64
}

// Common colors as [Color] values.
var (
	Black = MustFromWeb("black")
	White = MustFromWeb("white")
	Red   = MustFromWeb("red")
	Blue  = MustFromWeb("blue")
)

// FromAny returns a color from the given value in any supported
// encoding, using [Identify] to decide how to interpret it: an
// existing [Color] or [color.Color], a hex or web string, or a 3- or
// 4-element numeric sequence. It returns an error if the value is
// ambiguous or not recognized; see [MustFromAny] and [LogFromAny] for
// versions that do not return an error.
func FromAny(v any) (Color, error) {
	f, err := Identify(v)
	if err != nil {
		return Color{}, fmt.Errorf("colorings.FromAny: %w", err)
	}
	if f == FormatColor {
		if c, ok := v.(Color); ok {
			return c, nil
		}
		return FromColor(v.(color.Color)), nil
	}
	if s, ok := v.(string); ok {
		if f == FormatHex {
			return FromHex(s)
		}
		return FromWeb(s)
	}
	c, _ := components(v)
	switch f {
	case FormatRGB:
		return FromRGB(RGB{c[0], c[1], c[2]})
	case FormatHSL:
		return FromHSL(HSL{c[0], c[1], c[2]})
	case FormatRGBA:
		rgba, err := RGBToRGBA(RGB{c[0], c[1], c[2]}, c[3])
		if err != nil {
			return Color{}, fmt.Errorf("colorings.FromAny: %w", err)
		}
		return FromRGBA(rgba)
	default:
		return FromHSLA(HSLA{c[0], c[1], c[2], c[3]})
	}
}

// MustFromAny returns a color from the given value in any supported
// encoding. It panics if the value cannot be interpreted; see
// [FromAny] for a version that returns an error.
func MustFromAny(v any) Color {
	c, err := FromAny(v)
	if err != nil {
		panic("colorings.MustFromAny: " + err.Error())
	}
	return c
}

// LogFromAny returns a color from the given value in any supported
// encoding. It logs an error if the value cannot be interpreted; see
// [FromAny] for a version that returns an error.
func LogFromAny(v any) Color {
	c, err := FromAny(v)
	if err != nil {
		log.Println("error: colorings.LogFromAny: " + err.Error())
	}
	return c
}

// FromWeb returns a color from the given web string: a recognized
// color name such as "cornflowerblue" (case-insensitive) or a 3- or
// 6-digit hex string. It returns an error if the string is neither;
// see [MustFromWeb] and [LogFromWeb] for versions that do not return
// an error.
func FromWeb(s string) (Color, error) {
	hsl, err := WebToHSL(s)
	if err != nil {
		return Color{}, fmt.Errorf("colorings.FromWeb: %w", err)
	}
	return Color{hsl, 1}, nil
}

// MustFromWeb returns a color from the given web string. It panics if
// the string is neither a recognized color name nor a hex string; see
// [FromWeb] for a version that returns an error.
func MustFromWeb(s string) Color {
	c, err := FromWeb(s)
	if err != nil {
		panic("colorings.MustFromWeb: " + err.Error())
	}
	return c
}

// LogFromWeb returns a color from the given web string. It logs an
// error if the string is neither a recognized color name nor a hex
// string; see [FromWeb] for a version that returns an error.
func LogFromWeb(s string) Color {
	c, err := FromWeb(s)
	if err != nil {
		log.Println("error: colorings.LogFromWeb: " + err.Error())
	}
	return c
}

// FromHex returns a color from the given 3- or 6-digit hex string. It
// returns an error if the string has any other shape; see
// [MustFromHex] and [LogFromHex] for versions that do not return an
// error.
func FromHex(s string) (Color, error) {
	hsl, err := HexToHSL(s)
	if err != nil {
		return Color{}, fmt.Errorf("colorings.FromHex: %w", err)
	}
	return Color{hsl, 1}, nil
}

// MustFromHex returns a color from the given 3- or 6-digit hex
// string. It panics if the string has any other shape; see [FromHex]
// for a version that returns an error.
func MustFromHex(s string) Color {
	c, err := FromHex(s)
	if err != nil {
		panic("colorings.MustFromHex: " + err.Error())
	}
	return c
}

// LogFromHex returns a color from the given 3- or 6-digit hex string.
// It logs an error if the string has any other shape; see [FromHex]
// for a version that returns an error.
func LogFromHex(s string) Color {
	c, err := FromHex(s)
	if err != nil {
		log.Println("error: colorings.LogFromHex: " + err.Error())
	}
	return c
}

// FromHSL returns an opaque color with the given HSL value; see
// [MustFromHSL] for a version that does not return an error.
func FromHSL(v HSL) (Color, error) {
	if !v.Valid() {
		return Color{}, fmt.Errorf("colorings.FromHSL: %w: hue must be in [0, 360) and saturation and lightness in [0, 1]: %v", ErrInvalid, v)
	}
	return Color{v, 1}, nil
}

// MustFromHSL returns an opaque color with the given HSL value,
// panicking if it is out of range; see [FromHSL] for a version that
// returns an error.
func MustFromHSL(v HSL) Color {
	c, err := FromHSL(v)
	if err != nil {
		panic("colorings.MustFromHSL: " + err.Error())
	}
	return c
}

// FromHSLA returns a color with the given HSLA value, taking the
// alpha from the fourth component; see [MustFromHSLA] for a version
// that does not return an error.
func FromHSLA(v HSLA) (Color, error) {
	if !v.Valid() {
		return Color{}, fmt.Errorf("colorings.FromHSLA: %w: hue must be in [0, 360) and the other components in [0, 1]: %v", ErrInvalid, v)
	}
	return Color{HSL{v.H, v.S, v.L}, v.A}, nil
}

// MustFromHSLA returns a color with the given HSLA value, panicking
// if it is out of range; see [FromHSLA] for a version that returns an
// error.
func MustFromHSLA(v HSLA) Color {
	c, err := FromHSLA(v)
	if err != nil {
		panic("colorings.MustFromHSLA: " + err.Error())
	}
	return c
}

// FromRGB returns an opaque color with the given 8-bit RGB value; see
// [MustFromRGB] for a version that does not return an error.
func FromRGB(v RGB) (Color, error) {
	if !v.Valid() {
		return Color{}, fmt.Errorf("colorings.FromRGB: %w: components must be in [0, 255]: %v", ErrInvalid, v)
	}
	return Color{rgbToHSL(v), 1}, nil
}

// MustFromRGB returns an opaque color with the given 8-bit RGB value,
// panicking if it is out of range; see [FromRGB] for a version that
// returns an error.
func MustFromRGB(v RGB) Color {
	c, err := FromRGB(v)
	if err != nil {
		panic("colorings.MustFromRGB: " + err.Error())
	}
	return c
}

// FromRGBA returns a color with the given fractional RGBA value,
// taking the alpha from the fourth component; see [MustFromRGBA] for
// a version that does not return an error.
func FromRGBA(v RGBA) (Color, error) {
	if !v.Valid() {
		return Color{}, fmt.Errorf("colorings.FromRGBA: %w: components must be in [0, 1]: %v", ErrInvalid, v)
	}
	return Color{rgbToHSL(RGB{v.R * 255, v.G * 255, v.B * 255}), v.A}, nil
}

// MustFromRGBA returns a color with the given fractional RGBA value,
// panicking if it is out of range; see [FromRGBA] for a version that
// returns an error.
func MustFromRGBA(v RGBA) Color {
	c, err := FromRGBA(v)
	if err != nil {
		panic("colorings.MustFromRGBA: " + err.Error())
	}
	return c
}

// FromColor returns a color from the given [color.Color],
// un-premultiplying the channels by the alpha.
func FromColor(c color.Color) Color {
	if c, ok := c.(Color); ok {
		return c
	}
	r, g, b, a := c.RGBA()
	if a == 0 {
		return Color{}
	}
	fr := float64(r) / float64(a)
	fg := float64(g) / float64(a)
	fb := float64(b) / float64(a)
	return Color{rgbToHSL(RGB{fr * 255, fg * 255, fb * 255}), float64(a) / 65535}
}

// HSL returns the canonical HSL value of the color.
func (c Color) HSL() HSL {
	return c.hsl
}

// HSLA returns the canonical HSL value with the alpha appended.
func (c Color) HSLA() HSLA {
	return HSLA{c.hsl.H, c.hsl.S, c.hsl.L, c.alpha}
}

// RGB returns the color as 8-bit RGB. The components are real-valued;
// quantization to bytes happens only when formatting to hex.
func (c Color) RGB() RGB {
	return hslToRGB(c.hsl)
}

// AsRGBA returns the color as fractional RGBA.
func (c Color) AsRGBA() RGBA {
	rgb := hslToRGB(c.hsl)
	return RGBA{rgb.R / 255, rgb.G / 255, rgb.B / 255, c.alpha}
}

// Hex returns the color as a hex string, using the 3-digit shorthand
// when possible.
func (c Color) Hex() string {
	return rgbToHex(hslToRGB(c.hsl), false)
}

// HexLong returns the color as a 6-digit hex string.
func (c Color) HexLong() string {
	return rgbToHex(hslToRGB(c.hsl), true)
}

// Web returns the color as a web string: its preferred name when it
// has one, else its hex form.
func (c Color) Web() string {
	return rgbToWeb(hslToRGB(c.hsl))
}

// Hue returns the hue in degrees, in [0, 360).
func (c Color) Hue() float64 {
	return c.hsl.H
}

// Saturation returns the saturation, in [0, 1].
func (c Color) Saturation() float64 {
	return c.hsl.S
}

// Lightness returns the lightness, in [0, 1].
func (c Color) Lightness() float64 {
	return c.hsl.L
}

// Red returns the 8-bit red component.
func (c Color) Red() float64 {
	return hslToRGB(c.hsl).R
}

// Green returns the 8-bit green component.
func (c Color) Green() float64 {
	return hslToRGB(c.hsl).G
}

// Blue returns the 8-bit blue component.
func (c Color) Blue() float64 {
	return hslToRGB(c.hsl).B
}

// Alpha returns the alpha, in [0, 1].
func (c Color) Alpha() float64 {
	return c.alpha
}

// Luminance returns the perceived brightness of the color in [0, 1],
// the root of the weighted quadratic mean of the fractional RGB
// components.
func (c Color) Luminance() float64 {
	rgba := c.AsRGBA()
	return math.Sqrt(0.299*rgba.R*rgba.R + 0.587*rgba.G*rgba.G + 0.114*rgba.B*rgba.B)
}

// String returns the web form of the color.
func (c Color) String() string {
	return c.Web()
}

// RGBA implements [color.Color], returning alpha-premultiplied 16-bit
// channels.
func (c Color) RGBA() (r, g, b, a uint32) {
	rgb := hslToRGB(c.hsl)
	r = uint32(rgb.R/255*c.alpha*65535 + 0.5)
	g = uint32(rgb.G/255*c.alpha*65535 + 0.5)
	b = uint32(rgb.B/255*c.alpha*65535 + 0.5)
	a = uint32(c.alpha*65535 + 0.5)
	return
}

// SetHSL sets the color from an HSL value, leaving alpha unchanged.
func (c *Color) SetHSL(v HSL) error {
	if !v.Valid() {
		return fmt.Errorf("colorings.Color.SetHSL: %w: hue must be in [0, 360) and saturation and lightness in [0, 1]: %v", ErrInvalid, v)
	}
	c.hsl = v
	return nil
}

// SetHSLA sets the color and alpha from an HSLA value.
func (c *Color) SetHSLA(v HSLA) error {
	if !v.Valid() {
		return fmt.Errorf("colorings.Color.SetHSLA: %w: hue must be in [0, 360) and the other components in [0, 1]: %v", ErrInvalid, v)
	}
	c.hsl = HSL{v.H, v.S, v.L}
	c.alpha = v.A
	return nil
}

// SetRGB sets the color from an 8-bit RGB value, leaving alpha
// unchanged.
func (c *Color) SetRGB(v RGB) error {
	if !v.Valid() {
		return fmt.Errorf("colorings.Color.SetRGB: %w: components must be in [0, 255]: %v", ErrInvalid, v)
	}
	c.hsl = rgbToHSL(v)
	return nil
}

// SetRGBA sets the color and alpha from a fractional RGBA value.
func (c *Color) SetRGBA(v RGBA) error {
	if !v.Valid() {
		return fmt.Errorf("colorings.Color.SetRGBA: %w: components must be in [0, 1]: %v", ErrInvalid, v)
	}
	c.hsl = rgbToHSL(RGB{v.R * 255, v.G * 255, v.B * 255})
	c.alpha = v.A
	return nil
}

// SetHex sets the color from a 3- or 6-digit hex string, leaving
// alpha unchanged.
func (c *Color) SetHex(s string) error {
	v, ok := hexToRGB(s)
	if !ok {
		return fmt.Errorf("colorings.Color.SetHex: %w: %q is not a 3- or 6-digit hex string", ErrInvalid, s)
	}
	c.hsl = rgbToHSL(v)
	return nil
}

// SetWeb sets the color from a web string, either a recognized color
// name or a hex string, leaving alpha unchanged.
func (c *Color) SetWeb(s string) error {
	v, err := WebToRGB(s)
	if err != nil {
		return fmt.Errorf("colorings.Color.SetWeb: %w", err)
	}
	c.hsl = rgbToHSL(v)
	return nil
}

// SetHue sets the hue in degrees, in [0, 360).
func (c *Color) SetHue(h float64) error {
	v := c.hsl
	v.H = h
	if !v.Valid() {
		return fmt.Errorf("colorings.Color.SetHue: %w: hue must be in [0, 360): %g", ErrInvalid, h)
	}
	c.hsl = v
	return nil
}

// SetSaturation sets the saturation, in [0, 1].
func (c *Color) SetSaturation(s float64) error {
	v := c.hsl
	v.S = s
	if !v.Valid() {
		return fmt.Errorf("colorings.Color.SetSaturation: %w: saturation must be in [0, 1]: %g", ErrInvalid, s)
	}
	c.hsl = v
	return nil
}

// SetLightness sets the lightness, in [0, 1].
func (c *Color) SetLightness(l float64) error {
	v := c.hsl
	v.L = l
	if !v.Valid() {
		return fmt.Errorf("colorings.Color.SetLightness: %w: lightness must be in [0, 1]: %g", ErrInvalid, l)
	}
	c.hsl = v
	return nil
}

// SetRed sets the 8-bit red component, rebuilding the canonical HSL
// from the patched RGB.
func (c *Color) SetRed(r float64) error {
	v := hslToRGB(c.hsl)
	v.R = r
	if !v.Valid() {
		return fmt.Errorf("colorings.Color.SetRed: %w: red must be in [0, 255]: %g", ErrInvalid, r)
	}
	c.hsl = rgbToHSL(v)
	return nil
}

// SetGreen sets the 8-bit green component, rebuilding the canonical
// HSL from the patched RGB.
func (c *Color) SetGreen(g float64) error {
	v := hslToRGB(c.hsl)
	v.G = g
	if !v.Valid() {
		return fmt.Errorf("colorings.Color.SetGreen: %w: green must be in [0, 255]: %g", ErrInvalid, g)
	}
	c.hsl = rgbToHSL(v)
	return nil
}

// SetBlue sets the 8-bit blue component, rebuilding the canonical HSL
// from the patched RGB.
func (c *Color) SetBlue(b float64) error {
	v := hslToRGB(c.hsl)
	v.B = b
	if !v.Valid() {
		return fmt.Errorf("colorings.Color.SetBlue: %w: blue must be in [0, 255]: %g", ErrInvalid, b)
	}
	c.hsl = rgbToHSL(v)
	return nil
}

// SetAlpha sets the alpha, in [0, 1].
func (c *Color) SetAlpha(a float64) error {
	if !inRange(a, 0, 1) {
		return fmt.Errorf("colorings.Color.SetAlpha: %w: alpha must be in [0, 1]: %g", ErrInvalid, a)
	}
	c.alpha = a
	return nil
}

// Equal reports whether c and o quantize to the same 8-bit color,
// comparing their 6-digit hex forms. Alpha is ignored; see
// [Color.EqualHSL] for exact comparison of the canonical values.
func (c Color) Equal(o Color) bool {
	return c.HexLong() == o.HexLong()
}

// EqualHSL reports whether c and o have exactly equal canonical HSL
// values, ignoring alpha.
func (c Color) EqualHSL(o Color) bool {
	return c.hsl == o.hsl
}

// RangeTo returns exactly n colors interpolating from c to end, with
// alpha set to 1 throughout. When longer is true the hue travels the
// long way around the hue circle.
func (c Color) RangeTo(end Color, n int, longer bool) ([]Color, error) {
	hsls, err := ScaleBetween(c.hsl, end.hsl, n, longer)
	if err != nil {
		return nil, fmt.Errorf("colorings.Color.RangeTo: %w", err)
	}
	out := make([]Color, len(hsls))
	for i, v := range hsls {
		out[i] = Color{v, 1}
	}
	return out, nil
}

// MarshalText implements [encoding.TextMarshaler], encoding the color
// in its web form. Alpha is not carried by the text form.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Web()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler], accepting any
// web string. Alpha is set to 1.
func (c *Color) UnmarshalText(b []byte) error {
	hsl, err := WebToHSL(string(b))
	if err != nil {
		return fmt.Errorf("colorings.Color.UnmarshalText: %w", err)
	}
	c.hsl = hsl
	c.alpha = 1
	return nil
}

// Model is the [color.Model] converting any [color.Color] to [Color].
var Model = color.ModelFunc(model)

func model(c color.Color) color.Color {
	if c, ok := c.(Color); ok {
		return c
	}
	return FromColor(c)
}
