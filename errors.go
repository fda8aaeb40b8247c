// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorings

import "errors"

// The three kinds of failure every operation in this package can
// surface. Functions wrap these with context, so callers can test the
// kind with [errors.Is] while the message still says which rule failed.
var (
	// ErrInvalid indicates a value that fails the range or shape rules
	// of its encoding: an out-of-range component, a malformed hex
	// string, or an unknown color name.
	ErrInvalid = errors.New("invalid color")

	// ErrAmbiguous indicates a value that satisfies two mutually
	// exclusive encodings at once, such as a triple within both the
	// RGB and the HSL ranges.
	ErrAmbiguous = errors.New("ambiguous color")

	// ErrUnrecognized indicates a value that matches no known encoding.
	ErrUnrecognized = errors.New("unrecognized color")
)
