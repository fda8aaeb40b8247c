// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorings

import (
	"fmt"
	"math"
)

// anchorValid reports whether v can anchor a scale. The hue may be
// exactly 360, the full-circle form of 0 used to spell wraparound
// scales; everything else follows [HSL.Valid]. Output hues are always
// normalized back into [0, 360).
func anchorValid(v HSL) bool {
	return inRange(v.H, 0, 360) && inRange(v.S, 0, 1) && inRange(v.L, 0, 1)
}

// Scale returns exactly n colors interpolating through the given
// anchors in order. The first and last outputs are the first and last
// anchors, every anchor appears in the output in sequence, and the
// interior points are split across the segments between consecutive
// anchors, a remainder point going to the earliest segment whose
// accumulated share reaches a whole point. When longer is true each
// segment's hue travels the long way around the hue circle instead of
// the short way. Saturation and lightness always interpolate
// linearly.
//
// Anchor hues may be exactly 360: interpolating from hue 0 to hue 360
// with longer set walks the full hue circle. Output hues are always in
// [0, 360).
func Scale(anchors []HSL, n int, longer bool) ([]HSL, error) {
	if len(anchors) < 2 {
		return nil, fmt.Errorf("colorings.Scale: %w: need at least 2 anchor colors, got %d", ErrInvalid, len(anchors))
	}
	for i, a := range anchors {
		if !anchorValid(a) {
			return nil, fmt.Errorf("colorings.Scale: %w: anchor %d: hue must be in [0, 360] and saturation and lightness in [0, 1]: %v", ErrInvalid, i, a)
		}
	}
	if n < len(anchors) {
		return nil, fmt.Errorf("colorings.Scale: %w: %d colors cannot cover %d anchors", ErrInvalid, n, len(anchors))
	}

	k := len(anchors) - 1
	extra := n - len(anchors)
	base := extra / k
	rem := extra % k
	out := make([]HSL, 0, n)
	acc := 0
	for i := 0; i < k; i++ {
		nb := base + 1
		acc += rem
		if acc >= k {
			acc -= k
			nb++
		}
		seg := scaleSegment(anchors[i], anchors[i+1], nb, longer)
		if i > 0 {
			seg = seg[1:]
		}
		out = append(out, seg...)
	}
	return out, nil
}

// ScaleBetween returns exactly n colors interpolating from begin to
// end, equivalent to [Scale] with those two anchors.
func ScaleBetween(begin, end HSL, n int, longer bool) ([]HSL, error) {
	if !anchorValid(begin) {
		return nil, fmt.Errorf("colorings.ScaleBetween: %w: hue must be in [0, 360] and saturation and lightness in [0, 1]: %v", ErrInvalid, begin)
	}
	if !anchorValid(end) {
		return nil, fmt.Errorf("colorings.ScaleBetween: %w: hue must be in [0, 360] and saturation and lightness in [0, 1]: %v", ErrInvalid, end)
	}
	if n < 2 {
		return nil, fmt.Errorf("colorings.ScaleBetween: %w: need at least 2 colors, got %d", ErrInvalid, n)
	}
	return scaleSegment(begin, end, n-1, longer), nil
}

// scaleSegment returns nb+1 points interpolating begin to end. Hues
// are normalized to turns; when the raw distance between them does
// not match the requested arc direction, the smaller hue gains a full
// turn so the interpolation travels the other way around the circle.
func scaleSegment(begin, end HSL, nb int, longer bool) []HSL {
	h1 := begin.H / 360
	h2 := end.H / 360
	if longer == (math.Abs(h1-h2) < 0.5) {
		if h1 < h2 {
			h1++
		} else {
			h2++
		}
	}
	out := make([]HSL, nb+1)
	for i := 0; i <= nb; i++ {
		v := float64(i) / float64(nb)
		out[i] = HSL{
			H: math.Mod(h1*360*(1-v)+h2*360*v, 360),
			S: begin.S*(1-v) + end.S*v,
			L: begin.L*(1-v) + end.L*v,
		}
	}
	return out
}
