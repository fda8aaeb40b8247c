// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorings

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"
	"strings"

	"github.com/muesli/termenv"
)

// Swatch returns a uniform width by height preview image of the
// color, alpha included.
func Swatch(c Color, width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(nrgba(c)), image.Point{}, draw.Src)
	return img
}

// nrgba quantizes a color to its 8-bit non-premultiplied form.
func nrgba(c Color) color.NRGBA {
	rgb := hslToRGB(c.hsl)
	return color.NRGBA{quantize(rgb.R), quantize(rgb.G), quantize(rgb.B), uint8(c.alpha*255 + 0.5)}
}

// TermSwatch returns a terminal preview of the color: height lines of
// a width-cell block with the color as the background, rendered with
// true-color escape sequences regardless of the ambient terminal. It
// returns the empty string if width or height is not positive; see
// [FprintSwatch] for the writer form.
func TermSwatch(c Color, width, height int) string {
	var b strings.Builder
	FprintSwatch(&b, c, width, height)
	return b.String()
}

// FprintSwatch writes the terminal preview of [TermSwatch] to w.
func FprintSwatch(w io.Writer, c Color, width, height int) error {
	if width < 1 || height < 1 {
		return fmt.Errorf("colorings.FprintSwatch: %w: width and height must be positive: %dx%d", ErrInvalid, width, height)
	}
	out := termenv.NewOutput(w, termenv.WithProfile(termenv.TrueColor))
	cell := out.String(strings.Repeat(" ", width)).Background(termenv.RGBColor(c.HexLong()))
	for i := 0; i < height; i++ {
		if _, err := fmt.Fprintln(out, cell); err != nil {
			return err
		}
	}
	return nil
}

// TermScale returns a one-line terminal preview of the given colors,
// each rendered as a cellWidth-cell block, for looking over the
// output of [Scale] or the colors of a [Palette]. It returns the
// empty string if cellWidth is not positive; see [FprintScale] for
// the writer form.
func TermScale(colors []Color, cellWidth int) string {
	var b strings.Builder
	FprintScale(&b, colors, cellWidth)
	return b.String()
}

// FprintScale writes the terminal preview of [TermScale] to w,
// followed by a newline.
func FprintScale(w io.Writer, colors []Color, cellWidth int) error {
	if cellWidth < 1 {
		return fmt.Errorf("colorings.FprintScale: %w: cell width must be positive: %d", ErrInvalid, cellWidth)
	}
	out := termenv.NewOutput(w, termenv.WithProfile(termenv.TrueColor))
	cell := strings.Repeat(" ", cellWidth)
	for _, c := range colors {
		if _, err := fmt.Fprint(out, out.String(cell).Background(termenv.RGBColor(c.HexLong()))); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(out)
	return err
}
