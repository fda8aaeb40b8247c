// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorings

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPalette() *Palette {
	return &Palette{
		Name: "traffic",
		Colors: []PaletteColor{
			{Name: "stop", Color: MustFromWeb("red")},
			{Name: "wait", Color: MustFromWeb("yellow")},
			{Name: "go", Color: MustFromWeb("lime")},
		},
	}
}

func TestPaletteReadWrite(t *testing.T) {
	p := testPalette()

	var b bytes.Buffer
	require.NoError(t, p.Write(&b))
	assert.Contains(t, b.String(), "traffic")
	assert.Contains(t, b.String(), "[[colors]]")
	assert.Contains(t, b.String(), "red")

	got, err := ReadPalette(&b)
	require.NoError(t, err)
	assert.Equal(t, "traffic", got.Name)
	require.Equal(t, 3, len(got.Colors))
	assert.Equal(t, "stop", got.Colors[0].Name)
	assert.True(t, got.Colors[0].Color.Equal(MustFromWeb("red")))
	assert.Equal(t, "yellow", got.Colors[1].Color.Web())
	assert.Equal(t, "lime", got.Colors[2].Color.Web())
}

func TestPaletteFile(t *testing.T) {
	dir, err := os.MkdirTemp("", "colorings_test")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	p := testPalette()
	fn := filepath.Join(dir, "traffic.toml")
	require.NoError(t, p.Save(fn))

	got, err := OpenPalette(fn)
	require.NoError(t, err)
	assert.Equal(t, "traffic", got.Name)
	require.Equal(t, 3, len(got.Colors))
	assert.Equal(t, "wait", got.Colors[1].Name)
	assert.Equal(t, "yellow", got.Colors[1].Color.Web())

	_, err = OpenPalette(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)
}

func TestPaletteReadErrors(t *testing.T) {
	_, err := ReadPalette(strings.NewReader("name = ["))
	assert.Error(t, err)

	_, err = ReadPalette(strings.NewReader("[[colors]]\nname = 'x'\ncolor = 'notacolor'\n"))
	assert.Error(t, err)
}

func TestPaletteScale(t *testing.T) {
	p := &Palette{
		Name: "greys",
		Colors: []PaletteColor{
			{Name: "black", Color: MustFromWeb("black")},
			{Name: "white", Color: MustFromWeb("white")},
		},
	}

	got, err := p.Scale(6, false)
	require.NoError(t, err)
	require.Equal(t, 6, len(got))
	assert.Equal(t, "#000", got[0].Hex())
	assert.Equal(t, "#333", got[1].Hex())
	assert.Equal(t, "#fff", got[5].Hex())
	assert.Equal(t, 1.0, got[3].Alpha())

	p.Colors = p.Colors[:1]
	_, err = p.Scale(6, false)
	assert.Error(t, err)
}
