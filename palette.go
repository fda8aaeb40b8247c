// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorings

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// PaletteColor is one named entry of a [Palette].
type PaletteColor struct {

	// Name is the entry's own label, such as "background", not the
	// web name of the color.
	Name string `toml:"name"`

	// Color is the color value, stored in its web form.
	Color Color `toml:"color"`
}

// Palette is an ordered list of named colors, such as the anchors of
// a color scale, storable as a TOML file.
type Palette struct {
	Name   string         `toml:"name"`
	Colors []PaletteColor `toml:"colors"`
}

// ReadPalette reads a TOML palette from the given reader.
func ReadPalette(r io.Reader) (*Palette, error) {
	p := &Palette{}
	if err := toml.NewDecoder(r).Decode(p); err != nil {
		return nil, fmt.Errorf("colorings.ReadPalette: %w", err)
	}
	return p, nil
}

// Write writes the palette as TOML to the given writer.
func (p *Palette) Write(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(p); err != nil {
		return fmt.Errorf("colorings.Palette.Write: %w", err)
	}
	return nil
}

// OpenPalette reads a TOML palette from the given filename.
func OpenPalette(filename string) (*Palette, error) {
	fp, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	return ReadPalette(bufio.NewReader(fp))
}

// Save writes the palette as TOML to the given filename.
func (p *Palette) Save(filename string) error {
	fp, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	bw := bufio.NewWriter(fp)
	if err := p.Write(bw); err != nil {
		return err
	}
	return bw.Flush()
}

// Scale returns exactly n colors interpolating through the palette's
// colors in order, as by [Scale].
func (p *Palette) Scale(n int, longer bool) ([]Color, error) {
	anchors := make([]HSL, len(p.Colors))
	for i, pc := range p.Colors {
		anchors[i] = pc.Color.HSL()
	}
	hsls, err := Scale(anchors, n, longer)
	if err != nil {
		return nil, fmt.Errorf("colorings.Palette.Scale: %w", err)
	}
	out := make([]Color, len(hsls))
	for i, v := range hsls {
		out[i] = Color{v, 1}
	}
	return out, nil
}
