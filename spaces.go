// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorings

import "fmt"

// RGB is a color in the 8-bit RGB convention, with each component in
// [0, 255]. Components are real-valued: 127.5 is a meaningful
// unquantized channel, and quantization to whole bytes happens only
// when formatting hex strings.
type RGB struct {
	R, G, B float64
}

// Valid reports whether every component is in [0, 255].
func (v RGB) Valid() bool {
	return IsRGB([]float64{v.R, v.G, v.B})
}

// RGBA implements the color.Color interface.
func (v RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(v.R*257 + 0.5)
	g = uint32(v.G*257 + 0.5)
	b = uint32(v.B*257 + 0.5)
	a = 0xffff
	return
}

func (v RGB) String() string {
	return fmt.Sprintf("rgb(%g, %g, %g)", v.R, v.G, v.B)
}

// RGBA is a color in the fractional RGBA convention, with every
// component, alpha included, in [0, 1]. This is the convention of
// [RGBAToHSL] and of the [Color] alpha accessors; the 8-bit triple
// form is [RGB].
type RGBA struct {
	R, G, B, A float64
}

// Valid reports whether every component is in [0, 1].
func (v RGBA) Valid() bool {
	return IsRGBAF([]float64{v.R, v.G, v.B, v.A})
}

// RGBA implements the color.Color interface, returning
// alpha-premultiplied values.
func (v RGBA) RGBA() (r, g, b, a uint32) {
	r = uint32(v.R*v.A*65535 + 0.5)
	g = uint32(v.G*v.A*65535 + 0.5)
	b = uint32(v.B*v.A*65535 + 0.5)
	a = uint32(v.A*65535 + 0.5)
	return
}

func (v RGBA) String() string {
	return fmt.Sprintf("rgba(%g, %g, %g, %g)", v.R, v.G, v.B, v.A)
}

// HSL is a color in the HSL cylinder: hue in degrees [0, 360), which
// wraps, and saturation and lightness in [0, 1].
type HSL struct {
	H, S, L float64
}

// Valid reports whether hue is in [0, 360) and saturation and
// lightness are in [0, 1].
func (v HSL) Valid() bool {
	return IsHSL([]float64{v.H, v.S, v.L})
}

// RGBA implements the color.Color interface.
func (v HSL) RGBA() (r, g, b, a uint32) {
	rgb := hslToRGB(v)
	r = uint32(rgb.R*257 + 0.5)
	g = uint32(rgb.G*257 + 0.5)
	b = uint32(rgb.B*257 + 0.5)
	a = 0xffff
	return
}

func (v HSL) String() string {
	return fmt.Sprintf("hsl(%g, %g, %g)", v.H, v.S, v.L)
}

// HSLA is an [HSL] color with an alpha component in [0, 1]. Hue is in
// degrees, the same convention as HSL.
type HSLA struct {
	H, S, L, A float64
}

// Valid reports whether the HSL components satisfy [HSL.Valid] and
// alpha is in [0, 1].
func (v HSLA) Valid() bool {
	return IsHSLA([]float64{v.H, v.S, v.L, v.A})
}

// RGBA implements the color.Color interface, returning
// alpha-premultiplied values.
func (v HSLA) RGBA() (r, g, b, a uint32) {
	rgb := hslToRGB(HSL{v.H, v.S, v.L})
	r = uint32(rgb.R/255*v.A*65535 + 0.5)
	g = uint32(rgb.G/255*v.A*65535 + 0.5)
	b = uint32(rgb.B/255*v.A*65535 + 0.5)
	a = uint32(v.A*65535 + 0.5)
	return
}

func (v HSLA) String() string {
	return fmt.Sprintf("hsla(%g, %g, %g, %g)", v.H, v.S, v.L, v.A)
}
