// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorings

import (
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSwatch(t *testing.T) {
	img := Swatch(MustFromWeb("red"), 8, 4)
	assert.Equal(t, 8, img.Bounds().Dx())
	assert.Equal(t, 4, img.Bounds().Dy())
	assert.Equal(t, color.NRGBA{255, 0, 0, 255}, img.NRGBAAt(0, 0))
	assert.Equal(t, color.NRGBA{255, 0, 0, 255}, img.NRGBAAt(7, 3))

	c := MustFromWeb("blue")
	require.NoError(t, c.SetAlpha(0.5))
	img = Swatch(c, 2, 2)
	assert.Equal(t, color.NRGBA{0, 0, 255, 128}, img.NRGBAAt(1, 1))
}

func TestTermSwatch(t *testing.T) {
	out := TermSwatch(MustFromWeb("red"), 4, 2)
	assert.Equal(t, 2, strings.Count(out, "\n"))
	assert.Contains(t, out, "48;2;255;0;0")
	assert.Contains(t, out, "    ")

	assert.Equal(t, "", TermSwatch(MustFromWeb("red"), 0, 2))

	var b strings.Builder
	require.NoError(t, FprintSwatch(&b, MustFromWeb("red"), 4, 2))
	assert.Equal(t, out, b.String())

	assert.Error(t, FprintSwatch(&b, MustFromWeb("red"), 0, 2))
	assert.Error(t, FprintSwatch(&b, MustFromWeb("red"), 4, 0))
}

func TestTermScale(t *testing.T) {
	colors := []Color{MustFromWeb("red"), MustFromWeb("lime"), MustFromWeb("blue")}

	out := TermScale(colors, 2)
	assert.Equal(t, 1, strings.Count(out, "\n"))
	assert.Contains(t, out, "48;2;255;0;0")
	assert.Contains(t, out, "48;2;0;255;0")
	assert.Contains(t, out, "48;2;0;0;255")

	assert.Equal(t, "", TermScale(colors, 0))
	assert.Equal(t, "\n", TermScale(nil, 2))

	var b strings.Builder
	require.NoError(t, FprintScale(&b, colors, 2))
	assert.Equal(t, out, b.String())

	assert.Error(t, FprintScale(&b, colors, 0))
}
