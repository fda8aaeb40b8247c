// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorings

// namedColor pairs a color name with its 8-bit RGB value.
type namedColor struct {
	name string
	rgb  RGB
}

// namedColors lists every recognized color name with its value, based
// on the X11 and CSS color tables. Where several names share a value,
// the first listed name is the one reported when formatting to web
// form, so "gray" over "grey" and "cyan" over "aqua".
var namedColors = []namedColor{
	{"black", RGB{0, 0, 0}},
	{"navy", RGB{0, 0, 128}},
	{"navyblue", RGB{0, 0, 128}},
	{"darkblue", RGB{0, 0, 139}},
	{"mediumblue", RGB{0, 0, 205}},
	{"blue", RGB{0, 0, 255}},
	{"darkgreen", RGB{0, 100, 0}},
	{"green", RGB{0, 128, 0}},
	{"darkcyan", RGB{0, 139, 139}},
	{"teal", RGB{0, 128, 128}},
	{"deepskyblue", RGB{0, 191, 255}},
	{"darkturquoise", RGB{0, 206, 209}},
	{"mediumspringgreen", RGB{0, 250, 154}},
	{"lime", RGB{0, 255, 0}},
	{"springgreen", RGB{0, 255, 127}},
	{"cyan", RGB{0, 255, 255}},
	{"aqua", RGB{0, 255, 255}},
	{"midnightblue", RGB{25, 25, 112}},
	{"dodgerblue", RGB{30, 144, 255}},
	{"lightseagreen", RGB{32, 178, 170}},
	{"forestgreen", RGB{34, 139, 34}},
	{"seagreen", RGB{46, 139, 87}},
	{"darkslategray", RGB{47, 79, 79}},
	{"darkslategrey", RGB{47, 79, 79}},
	{"limegreen", RGB{50, 205, 50}},
	{"mediumseagreen", RGB{60, 179, 113}},
	{"turquoise", RGB{64, 224, 208}},
	{"royalblue", RGB{65, 105, 225}},
	{"steelblue", RGB{70, 130, 180}},
	{"darkslateblue", RGB{72, 61, 139}},
	{"mediumturquoise", RGB{72, 209, 204}},
	{"indigo", RGB{75, 0, 130}},
	{"darkolivegreen", RGB{85, 107, 47}},
	{"cadetblue", RGB{95, 158, 160}},
	{"cornflowerblue", RGB{100, 149, 237}},
	{"rebeccapurple", RGB{102, 51, 153}},
	{"mediumaquamarine", RGB{102, 205, 170}},
	{"dimgray", RGB{105, 105, 105}},
	{"dimgrey", RGB{105, 105, 105}},
	{"slateblue", RGB{106, 90, 205}},
	{"olivedrab", RGB{107, 142, 35}},
	{"slategray", RGB{112, 128, 144}},
	{"slategrey", RGB{112, 128, 144}},
	{"lightslategray", RGB{119, 136, 153}},
	{"lightslategrey", RGB{119, 136, 153}},
	{"mediumslateblue", RGB{123, 104, 238}},
	{"lawngreen", RGB{124, 252, 0}},
	{"chartreuse", RGB{127, 255, 0}},
	{"aquamarine", RGB{127, 255, 212}},
	{"maroon", RGB{128, 0, 0}},
	{"purple", RGB{128, 0, 128}},
	{"olive", RGB{128, 128, 0}},
	{"gray", RGB{128, 128, 128}},
	{"grey", RGB{128, 128, 128}},
	{"lightslateblue", RGB{132, 112, 255}},
	{"skyblue", RGB{135, 206, 235}},
	{"lightskyblue", RGB{135, 206, 250}},
	{"blueviolet", RGB{138, 43, 226}},
	{"darkred", RGB{139, 0, 0}},
	{"darkmagenta", RGB{139, 0, 139}},
	{"saddlebrown", RGB{139, 69, 19}},
	{"darkseagreen", RGB{143, 188, 143}},
	{"lightgreen", RGB{144, 238, 144}},
	{"mediumpurple", RGB{147, 112, 219}},
	{"darkviolet", RGB{148, 0, 211}},
	{"palegreen", RGB{152, 251, 152}},
	{"darkorchid", RGB{153, 50, 204}},
	{"yellowgreen", RGB{154, 205, 50}},
	{"sienna", RGB{160, 82, 45}},
	{"brown", RGB{165, 42, 42}},
	{"darkgray", RGB{169, 169, 169}},
	{"darkgrey", RGB{169, 169, 169}},
	{"lightblue", RGB{173, 216, 230}},
	{"greenyellow", RGB{173, 255, 47}},
	{"paleturquoise", RGB{175, 238, 238}},
	{"lightsteelblue", RGB{176, 196, 222}},
	{"powderblue", RGB{176, 224, 230}},
	{"firebrick", RGB{178, 34, 34}},
	{"darkgoldenrod", RGB{184, 134, 11}},
	{"mediumorchid", RGB{186, 85, 211}},
	{"rosybrown", RGB{188, 143, 143}},
	{"darkkhaki", RGB{189, 183, 107}},
	{"silver", RGB{192, 192, 192}},
	{"mediumvioletred", RGB{199, 21, 133}},
	{"indianred", RGB{205, 92, 92}},
	{"peru", RGB{205, 133, 63}},
	{"violetred", RGB{208, 32, 144}},
	{"chocolate", RGB{210, 105, 30}},
	{"tan", RGB{210, 180, 140}},
	{"lightgray", RGB{211, 211, 211}},
	{"lightgrey", RGB{211, 211, 211}},
	{"thistle", RGB{216, 191, 216}},
	{"orchid", RGB{218, 112, 214}},
	{"goldenrod", RGB{218, 165, 32}},
	{"palevioletred", RGB{219, 112, 147}},
	{"crimson", RGB{220, 20, 60}},
	{"gainsboro", RGB{220, 220, 220}},
	{"plum", RGB{221, 160, 221}},
	{"burlywood", RGB{222, 184, 135}},
	{"lightcyan", RGB{224, 255, 255}},
	{"lavender", RGB{230, 230, 250}},
	{"darksalmon", RGB{233, 150, 122}},
	{"violet", RGB{238, 130, 238}},
	{"lightgoldenrod", RGB{238, 221, 130}},
	{"palegoldenrod", RGB{238, 232, 170}},
	{"lightcoral", RGB{240, 128, 128}},
	{"khaki", RGB{240, 230, 140}},
	{"aliceblue", RGB{240, 248, 255}},
	{"honeydew", RGB{240, 255, 240}},
	{"azure", RGB{240, 255, 255}},
	{"sandybrown", RGB{244, 164, 96}},
	{"wheat", RGB{245, 222, 179}},
	{"beige", RGB{245, 245, 220}},
	{"whitesmoke", RGB{245, 245, 245}},
	{"mintcream", RGB{245, 255, 250}},
	{"ghostwhite", RGB{248, 248, 255}},
	{"salmon", RGB{250, 128, 114}},
	{"antiquewhite", RGB{250, 235, 215}},
	{"linen", RGB{250, 240, 230}},
	{"lightgoldenrodyellow", RGB{250, 250, 210}},
	{"oldlace", RGB{253, 245, 230}},
	{"red", RGB{255, 0, 0}},
	{"magenta", RGB{255, 0, 255}},
	{"fuchsia", RGB{255, 0, 255}},
	{"deeppink", RGB{255, 20, 147}},
	{"orangered", RGB{255, 69, 0}},
	{"tomato", RGB{255, 99, 71}},
	{"hotpink", RGB{255, 105, 180}},
	{"coral", RGB{255, 127, 80}},
	{"darkorange", RGB{255, 140, 0}},
	{"lightsalmon", RGB{255, 160, 122}},
	{"orange", RGB{255, 165, 0}},
	{"lightpink", RGB{255, 182, 193}},
	{"pink", RGB{255, 192, 203}},
	{"gold", RGB{255, 215, 0}},
	{"peachpuff", RGB{255, 218, 185}},
	{"navajowhite", RGB{255, 222, 173}},
	{"moccasin", RGB{255, 228, 181}},
	{"bisque", RGB{255, 228, 196}},
	{"mistyrose", RGB{255, 228, 225}},
	{"blanchedalmond", RGB{255, 235, 205}},
	{"papayawhip", RGB{255, 239, 213}},
	{"lavenderblush", RGB{255, 240, 245}},
	{"seashell", RGB{255, 245, 238}},
	{"cornsilk", RGB{255, 248, 220}},
	{"lemonchiffon", RGB{255, 250, 205}},
	{"floralwhite", RGB{255, 250, 240}},
	{"snow", RGB{255, 250, 250}},
	{"yellow", RGB{255, 255, 0}},
	{"lightyellow", RGB{255, 255, 224}},
	{"ivory", RGB{255, 255, 240}},
	{"white", RGB{255, 255, 255}},
}

// Names maps each recognized color name to its 8-bit RGB value.
// Lookups are case-sensitive; callers lower-case the name first.
var Names = namesByName()

// hexToName maps the 6-digit hex form of every named value to its
// preferred name.
var hexToName = namesByHex()

func namesByName() map[string]RGB {
	m := make(map[string]RGB, len(namedColors))
	for _, nc := range namedColors {
		m[nc.name] = nc.rgb
	}
	return m
}

func namesByHex() map[string]string {
	m := make(map[string]string, len(namedColors))
	for _, nc := range namedColors {
		hex := rgbToHex(nc.rgb, true)
		if _, ok := m[hex]; !ok {
			m[hex] = nc.name
		}
	}
	return m
}
