// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromSeed(t *testing.T) {
	c := FromSeed("Something")
	assert.True(t, c.Equal(FromSeed("Something")))
	assert.False(t, c.Equal(FromSeed("Something else")))
	assert.Equal(t, 1.0, c.Alpha())

	// nearby seeds scatter over the channel ranges
	seen := map[string]bool{}
	for _, seed := range []string{"a", "b", "c", "d", "e"} {
		seen[FromSeed(seed).HexLong()] = true
	}
	assert.Equal(t, 5, len(seen))
}

func TestPickFor(t *testing.T) {
	assert.True(t, PickFor("x").Equal(PickFor("x")))
	assert.False(t, PickFor("foo").Equal(PickFor("bar")))

	// the seed includes the type, so equal string forms stay distinct
	assert.False(t, PickFor(42).Equal(PickFor("42")))

	type item struct{ name string }
	assert.True(t, PickFor(item{"a"}).Equal(PickFor(item{"a"})))
	assert.False(t, PickFor(item{"a"}).Equal(PickFor(item{"b"})))
}
