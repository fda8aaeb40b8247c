// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package colorings provides color representations and validating
conversions between them: named web colors, 3- and 6-digit hex
strings, 8-bit RGB, fractional RGBA, and HSL with the hue in degrees.

The [Color] type holds any color canonically as HSL plus an alpha and
converts to and from every encoding through accessor and setter
methods; the [FromAny] constructor uses [Identify] to interpret an
untyped value. Standalone converter functions such as [RGBToHSL] and
[HexToWeb] cover each pair of encodings directly, validating their
inputs and never clamping.

[Scale] interpolates exact color sequences through anchor colors,
including around either arc of the hue circle. [FromSeed] and
[PickFor] derive stable colors from arbitrary values, [Swatch] and
[TermSwatch] preview colors as images or in the terminal, and
[Palette] stores named color lists as TOML files.
*/
package colorings
