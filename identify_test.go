// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorings

import (
	"errors"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentify(t *testing.T) {
	f, err := Identify(MustFromWeb("red"))
	assert.NoError(t, err)
	assert.Equal(t, FormatColor, f)

	f, err = Identify(color.RGBA{0, 0, 255, 255})
	assert.NoError(t, err)
	assert.Equal(t, FormatColor, f)

	f, err = Identify("#f00")
	assert.NoError(t, err)
	assert.Equal(t, FormatHex, f)

	f, err = Identify("#ff0000")
	assert.NoError(t, err)
	assert.Equal(t, FormatHex, f)

	f, err = Identify("red")
	assert.NoError(t, err)
	assert.Equal(t, FormatWeb, f)

	f, err = Identify("CornflowerBlue")
	assert.NoError(t, err)
	assert.Equal(t, FormatWeb, f)

	f, err = Identify([]float64{0, 0, 255})
	assert.NoError(t, err)
	assert.Equal(t, FormatRGB, f)

	f, err = Identify([]float64{300, 1, 0.25098039215686274})
	assert.NoError(t, err)
	assert.Equal(t, FormatHSL, f)

	f, err = Identify([]float64{128, 64, 32, 0.5})
	assert.NoError(t, err)
	assert.Equal(t, FormatRGBA, f)

	f, err = Identify([]float64{300, 0.5, 0.5, 0.5})
	assert.NoError(t, err)
	assert.Equal(t, FormatHSLA, f)
}

func TestIdentifySequenceForms(t *testing.T) {
	f, err := Identify([3]float64{0, 0, 255})
	assert.NoError(t, err)
	assert.Equal(t, FormatRGB, f)

	f, err = Identify([4]float64{300, 1, 0.5, 1})
	assert.NoError(t, err)
	assert.Equal(t, FormatHSLA, f)

	f, err = Identify([]float32{300, 1, 0.5})
	assert.NoError(t, err)
	assert.Equal(t, FormatHSL, f)

	f, err = Identify([]int{128, 64, 32})
	assert.NoError(t, err)
	assert.Equal(t, FormatRGB, f)
}

func TestIdentifyAmbiguous(t *testing.T) {
	_, err := Identify([]float64{0, 0, 0})
	assert.True(t, errors.Is(err, ErrAmbiguous))

	_, err = Identify([]float64{255, 0, 0})
	assert.True(t, errors.Is(err, ErrAmbiguous))

	_, err = Identify([]float64{0, 0, 0, 0})
	assert.True(t, errors.Is(err, ErrAmbiguous))

	_, err = Identify([]float64{1, 1, 1, 1})
	assert.True(t, errors.Is(err, ErrAmbiguous))
}

func TestIdentifyUnrecognized(t *testing.T) {
	_, err := Identify("a")
	assert.True(t, errors.Is(err, ErrUnrecognized))

	_, err = Identify([]float64{400, 0, 0})
	assert.True(t, errors.Is(err, ErrUnrecognized))

	_, err = Identify([]float64{0, 0, 0, 5})
	assert.True(t, errors.Is(err, ErrUnrecognized))

	_, err = Identify([]float64{0, 0})
	assert.True(t, errors.Is(err, ErrUnrecognized))

	_, err = Identify([]float64{0, 0, 0, 0, 0})
	assert.True(t, errors.Is(err, ErrUnrecognized))

	_, err = Identify(42)
	assert.True(t, errors.Is(err, ErrUnrecognized))

	_, err = Identify(nil)
	assert.True(t, errors.Is(err, ErrUnrecognized))
}

func TestFormatString(t *testing.T) {
	assert.Equal(t, "unknown", FormatUnknown.String())
	assert.Equal(t, "color", FormatColor.String())
	assert.Equal(t, "hex", FormatHex.String())
	assert.Equal(t, "web", FormatWeb.String())
	assert.Equal(t, "rgb", FormatRGB.String())
	assert.Equal(t, "hsl", FormatHSL.String())
	assert.Equal(t, "rgba", FormatRGBA.String())
	assert.Equal(t, "hsla", FormatHSLA.String())
	assert.Equal(t, "unknown", Format(99).String())
}
