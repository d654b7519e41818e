package values

// namedColors lists CSS color keywords, including system colors.
var namedColors = map[string]bool{
	"black": true, "silver": true, "gray": true, "white": true, "maroon": true, "red": true,
	"purple": true, "fuchsia": true, "green": true, "lime": true, "olive": true, "yellow": true,
	"navy": true, "blue": true, "teal": true, "aqua": true, "aliceblue": true, "antiquewhite": true,
	"aquamarine": true, "azure": true, "beige": true, "bisque": true, "blanchedalmond": true,
	"blueviolet": true, "brown": true, "burlywood": true, "cadetblue": true, "chartreuse": true,
	"chocolate": true, "coral": true, "cornflowerblue": true, "cornsilk": true, "crimson": true,
	"cyan": true, "darkblue": true, "darkcyan": true, "darkgoldenrod": true, "darkgray": true,
	"darkgreen": true, "darkgrey": true, "darkkhaki": true, "darkmagenta": true,
	"darkolivegreen": true, "darkorange": true, "darkorchid": true, "darkred": true,
	"darksalmon": true, "darkseagreen": true, "darkslateblue": true, "darkslategray": true,
	"darkslategrey": true, "darkturquoise": true, "darkviolet": true, "deeppink": true,
	"deepskyblue": true, "dimgray": true, "dimgrey": true, "dodgerblue": true, "firebrick": true,
	"floralwhite": true, "forestgreen": true, "gainsboro": true, "ghostwhite": true, "gold": true,
	"goldenrod": true, "greenyellow": true, "grey": true, "honeydew": true, "hotpink": true,
	"indianred": true, "indigo": true, "ivory": true, "khaki": true, "lavender": true,
	"lavenderblush": true, "lawngreen": true, "lemonchiffon": true, "lightblue": true,
	"lightcoral": true, "lightcyan": true, "lightgoldenrodyellow": true, "lightgray": true,
	"lightgreen": true, "lightgrey": true, "lightpink": true, "lightsalmon": true,
	"lightseagreen": true, "lightskyblue": true, "lightslategray": true, "lightslategrey": true,
	"lightsteelblue": true, "lightyellow": true, "limegreen": true, "linen": true, "magenta": true,
	"mediumaquamarine": true, "mediumblue": true, "mediumorchid": true, "mediumpurple": true,
	"mediumseagreen": true, "mediumslateblue": true, "mediumspringgreen": true,
	"mediumturquoise": true, "mediumvioletred": true, "midnightblue": true, "mintcream": true,
	"mistyrose": true, "moccasin": true, "navajowhite": true, "oldlace": true, "olivedrab": true,
	"orange": true, "orangered": true, "orchid": true, "palegoldenrod": true, "palegreen": true,
	"paleturquoise": true, "palevioletred": true, "papayawhip": true, "peachpuff": true,
	"peru": true, "pink": true, "plum": true, "powderblue": true, "rebeccapurple": true,
	"rosybrown": true, "royalblue": true, "saddlebrown": true, "salmon": true, "sandybrown": true,
	"seagreen": true, "seashell": true, "sienna": true, "skyblue": true, "slateblue": true,
	"slategray": true, "slategrey": true, "snow": true, "springgreen": true, "steelblue": true,
	"tan": true, "thistle": true, "tomato": true, "turquoise": true, "violet": true, "wheat": true,
	"whitesmoke": true, "yellowgreen": true,

	"transparent": true, "currentcolor": true,

	"canvas": true, "canvastext": true, "linktext": true, "visitedtext": true, "activetext": true,
	"buttonface": true, "buttontext": true, "buttonborder": true, "field": true, "fieldtext": true,
	"highlight": true, "highlighttext": true, "selecteditem": true, "selecteditemtext": true,
	"mark": true, "marktext": true, "graytext": true, "accentcolor": true, "accentcolortext": true,
}
