// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorings

import (
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"math"
	"strconv"
)

// FromSeed returns a color derived deterministically from the given
// seed string. The SHA-384 digest of the seed splits into three equal
// parts and each part scales down to one 8-bit RGB component, so the
// same seed yields the same color in every process and the colors of
// distinct seeds scatter over the full RGB range. See [PickFor] for
// the arbitrary-value form.
func FromSeed(seed string) Color {
	sum := sha512.Sum384([]byte(seed))
	digest := hex.EncodeToString(sum[:])
	sub := len(digest) / 3
	var rgb [3]float64
	for i := range rgb {
		part := digest[i*sub : (i+1)*sub]
		// a uint64 holds only the leading 16 hex digits of each part
		u, _ := strconv.ParseUint(part[:16], 16, 64)
		rgb[i] = float64(u) / float64(math.MaxUint64) * 255
	}
	return MustFromHex(rgbToHex(RGB{rgb[0], rgb[1], rgb[2]}, false))
}

// PickFor returns a color derived deterministically from an arbitrary
// value, seeding [FromSeed] with the value's type and formatted
// representation. Including the type keeps two values with the same
// string form, such as 42 and "42", distinct.
func PickFor(v any) Color {
	return FromSeed(fmt.Sprintf("%T%v", v, v))
}
