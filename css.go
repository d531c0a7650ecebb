package colorspector

// CSS is the palette of CSS Color Module Level 4 named colors, in alphabetical
// order. Synonyms such as aqua and cyan share a value; lookups resolve to the
// first of them.
var CSS = Palette{
	{"aliceblue", Sample{0xf0, 0xf8, 0xff}},
	{"antiquewhite", Sample{0xfa, 0xeb, 0xd7}},
	{"aqua", Sample{0x00, 0xff, 0xff}},
	{"aquamarine", Sample{0x7f, 0xff, 0xd4}},
	{"azure", Sample{0xf0, 0xff, 0xff}},
	{"beige", Sample{0xf5, 0xf5, 0xdc}},
	{"bisque", Sample{0xff, 0xe4, 0xc4}},
	{"black", Sample{0x00, 0x00, 0x00}},
	{"blanchedalmond", Sample{0xff, 0xeb, 0xcd}},
	{"blue", Sample{0x00, 0x00, 0xff}},
	{"blueviolet", Sample{0x8a, 0x2b, 0xe2}},
	{"brown", Sample{0xa5, 0x2a, 0x2a}},
	{"burlywood", Sample{0xde, 0xb8, 0x87}},
	{"cadetblue", Sample{0x5f, 0x9e, 0xa0}},
	{"chartreuse", Sample{0x7f, 0xff, 0x00}},
	{"chocolate", Sample{0xd2, 0x69, 0x1e}},
	{"coral", Sample{0xff, 0x7f, 0x50}},
	{"cornflowerblue", Sample{0x64, 0x95, 0xed}},
	{"cornsilk", Sample{0xff, 0xf8, 0xdc}},
	{"crimson", Sample{0xdc, 0x14, 0x3c}},
	{"cyan", Sample{0x00, 0xff, 0xff}},
	{"darkblue", Sample{0x00, 0x00, 0x8b}},
	{"darkcyan", Sample{0x00, 0x8b, 0x8b}},
	{"darkgoldenrod", Sample{0xb8, 0x86, 0x0b}},
	{"darkgray", Sample{0xa9, 0xa9, 0xa9}},
	{"darkgreen", Sample{0x00, 0x64, 0x00}},
	{"darkgrey", Sample{0xa9, 0xa9, 0xa9}},
	{"darkkhaki", Sample{0xbd, 0xb7, 0x6b}},
	{"darkmagenta", Sample{0x8b, 0x00, 0x8b}},
	{"darkolivegreen", Sample{0x55, 0x6b, 0x2f}},
	{"darkorange", Sample{0xff, 0x8c, 0x00}},
	{"darkorchid", Sample{0x99, 0x32, 0xcc}},
	{"darkred", Sample{0x8b, 0x00, 0x00}},
	{"darksalmon", Sample{0xe9, 0x96, 0x7a}},
	{"darkseagreen", Sample{0x8f, 0xbc, 0x8f}},
	{"darkslateblue", Sample{0x48, 0x3d, 0x8b}},
	{"darkslategray", Sample{0x2f, 0x4f, 0x4f}},
	{"darkslategrey", Sample{0x2f, 0x4f, 0x4f}},
	{"darkturquoise", Sample{0x00, 0xce, 0xd1}},
	{"darkviolet", Sample{0x94, 0x00, 0xd3}},
	{"deeppink", Sample{0xff, 0x14, 0x93}},
	{"deepskyblue", Sample{0x00, 0xbf, 0xff}},
	{"dimgray", Sample{0x69, 0x69, 0x69}},
	{"dimgrey", Sample{0x69, 0x69, 0x69}},
	{"dodgerblue", Sample{0x1e, 0x90, 0xff}},
	{"firebrick", Sample{0xb2, 0x22, 0x22}},
	{"floralwhite", Sample{0xff, 0xfa, 0xf0}},
	{"forestgreen", Sample{0x22, 0x8b, 0x22}},
	{"fuchsia", Sample{0xff, 0x00, 0xff}},
	{"gainsboro", Sample{0xdc, 0xdc, 0xdc}},
	{"ghostwhite", Sample{0xf8, 0xf8, 0xff}},
	{"gold", Sample{0xff, 0xd7, 0x00}},
	{"goldenrod", Sample{0xda, 0xa5, 0x20}},
	{"gray", Sample{0x80, 0x80, 0x80}},
	{"green", Sample{0x00, 0x80, 0x00}},
	{"greenyellow", Sample{0xad, 0xff, 0x2f}},
	{"grey", Sample{0x80, 0x80, 0x80}},
	{"honeydew", Sample{0xf0, 0xff, 0xf0}},
	{"hotpink", Sample{0xff, 0x69, 0xb4}},
	{"indianred", Sample{0xcd, 0x5c, 0x5c}},
	{"indigo", Sample{0x4b, 0x00, 0x82}},
	{"ivory", Sample{0xff, 0xff, 0xf0}},
	{"khaki", Sample{0xf0, 0xe6, 0x8c}},
	{"lavender", Sample{0xe6, 0xe6, 0xfa}},
	{"lavenderblush", Sample{0xff, 0xf0, 0xf5}},
	{"lawngreen", Sample{0x7c, 0xfc, 0x00}},
	{"lemonchiffon", Sample{0xff, 0xfa, 0xcd}},
	{"lightblue", Sample{0xad, 0xd8, 0xe6}},
	{"lightcoral", Sample{0xf0, 0x80, 0x80}},
	{"lightcyan", Sample{0xe0, 0xff, 0xff}},
	{"lightgoldenrodyellow", Sample{0xfa, 0xfa, 0xd2}},
	{"lightgray", Sample{0xd3, 0xd3, 0xd3}},
	{"lightgreen", Sample{0x90, 0xee, 0x90}},
	{"lightgrey", Sample{0xd3, 0xd3, 0xd3}},
	{"lightpink", Sample{0xff, 0xb6, 0xc1}},
	{"lightsalmon", Sample{0xff, 0xa0, 0x7a}},
	{"lightseagreen", Sample{0x20, 0xb2, 0xaa}},
	{"lightskyblue", Sample{0x87, 0xce, 0xfa}},
	{"lightslategray", Sample{0x77, 0x88, 0x99}},
	{"lightslategrey", Sample{0x77, 0x88, 0x99}},
	{"lightsteelblue", Sample{0xb0, 0xc4, 0xde}},
	{"lightyellow", Sample{0xff, 0xff, 0xe0}},
	{"lime", Sample{0x00, 0xff, 0x00}},
	{"limegreen", Sample{0x32, 0xcd, 0x32}},
	{"linen", Sample{0xfa, 0xf0, 0xe6}},
	{"magenta", Sample{0xff, 0x00, 0xff}},
	{"maroon", Sample{0x80, 0x00, 0x00}},
	{"mediumaquamarine", Sample{0x66, 0xcd, 0xaa}},
	{"mediumblue", Sample{0x00, 0x00, 0xcd}},
	{"mediumorchid", Sample{0xba, 0x55, 0xd3}},
	{"mediumpurple", Sample{0x93, 0x70, 0xdb}},
	{"mediumseagreen", Sample{0x3c, 0xb3, 0x71}},
	{"mediumslateblue", Sample{0x7b, 0x68, 0xee}},
	{"mediumspringgreen", Sample{0x00, 0xfa, 0x9a}},
	{"mediumturquoise", Sample{0x48, 0xd1, 0xcc}},
	{"mediumvioletred", Sample{0xc7, 0x15, 0x85}},
	{"midnightblue", Sample{0x19, 0x19, 0x70}},
	{"mintcream", Sample{0xf5, 0xff, 0xfa}},
	{"mistyrose", Sample{0xff, 0xe4, 0xe1}},
	{"moccasin", Sample{0xff, 0xe4, 0xb5}},
	{"navajowhite", Sample{0xff, 0xde, 0xad}},
	{"navy", Sample{0x00, 0x00, 0x80}},
	{"oldlace", Sample{0xfd, 0xf5, 0xe6}},
	{"olive", Sample{0x80, 0x80, 0x00}},
	{"olivedrab", Sample{0x6b, 0x8e, 0x23}},
	{"orange", Sample{0xff, 0xa5, 0x00}},
	{"orangered", Sample{0xff, 0x45, 0x00}},
	{"orchid", Sample{0xda, 0x70, 0xd6}},
	{"palegoldenrod", Sample{0xee, 0xe8, 0xaa}},
	{"palegreen", Sample{0x98, 0xfb, 0x98}},
	{"paleturquoise", Sample{0xaf, 0xee, 0xee}},
	{"palevioletred", Sample{0xdb, 0x70, 0x93}},
	{"papayawhip", Sample{0xff, 0xef, 0xd5}},
	{"peachpuff", Sample{0xff, 0xda, 0xb9}},
	{"peru", Sample{0xcd, 0x85, 0x3f}},
	{"pink", Sample{0xff, 0xc0, 0xcb}},
	{"plum", Sample{0xdd, 0xa0, 0xdd}},
	{"powderblue", Sample{0xb0, 0xe0, 0xe6}},
	{"purple", Sample{0x80, 0x00, 0x80}},
	{"rebeccapurple", Sample{0x66, 0x33, 0x99}},
	{"red", Sample{0xff, 0x00, 0x00}},
	{"rosybrown", Sample{0xbc, 0x8f, 0x8f}},
	{"royalblue", Sample{0x41, 0x69, 0xe1}},
	{"saddlebrown", Sample{0x8b, 0x45, 0x13}},
	{"salmon", Sample{0xfa, 0x80, 0x72}},
	{"sandybrown", Sample{0xf4, 0xa4, 0x60}},
	{"seagreen", Sample{0x2e, 0x8b, 0x57}},
	{"seashell", Sample{0xff, 0xf5, 0xee}},
	{"sienna", Sample{0xa0, 0x52, 0x2d}},
	{"silver", Sample{0xc0, 0xc0, 0xc0}},
	{"skyblue", Sample{0x87, 0xce, 0xeb}},
	{"slateblue", Sample{0x6a, 0x5a, 0xcd}},
	{"slategray", Sample{0x70, 0x80, 0x90}},
	{"slategrey", Sample{0x70, 0x80, 0x90}},
	{"snow", Sample{0xff, 0xfa, 0xfa}},
	{"springgreen", Sample{0x00, 0xff, 0x7f}},
	{"steelblue", Sample{0x46, 0x82, 0xb4}},
	{"tan", Sample{0xd2, 0xb4, 0x8c}},
	{"teal", Sample{0x00, 0x80, 0x80}},
	{"thistle", Sample{0xd8, 0xbf, 0xd8}},
	{"tomato", Sample{0xff, 0x63, 0x47}},
	{"turquoise", Sample{0x40, 0xe0, 0xd0}},
	{"violet", Sample{0xee, 0x82, 0xee}},
	{"wheat", Sample{0xf5, 0xde, 0xb3}},
	{"white", Sample{0xff, 0xff, 0xff}},
	{"whitesmoke", Sample{0xf5, 0xf5, 0xf5}},
	{"yellow", Sample{0xff, 0xff, 0x00}},
	{"yellowgreen", Sample{0x9a, 0xcd, 0x32}},
}
