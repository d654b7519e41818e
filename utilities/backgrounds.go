package utilities

import (
	"strings"

	"github.com/samber/lo"

	"twc/css"
	"twc/theme"
	"twc/values"
)

var blendModes = []string{
	"normal", "multiply", "screen", "overlay", "darken", "lighten", "color-dodge", "color-burn",
	"hard-light", "soft-light", "difference", "exclusion", "hue", "saturation", "color", "luminosity",
}

var gradientDirections = []struct{ name, value string }{
	{"t", "to top"},
	{"tr", "to top right"},
	{"r", "to right"},
	{"br", "to bottom right"},
	{"b", "to bottom"},
	{"bl", "to bottom left"},
	{"l", "to left"},
	{"tl", "to top left"},
}

const (
	gradientStops     = "var(--tw-gradient-stops)"
	twoStopPipeline   = "var(--tw-gradient-via-stops, var(--tw-gradient-position), var(--tw-gradient-from) var(--tw-gradient-from-position), var(--tw-gradient-to) var(--tw-gradient-to-position))"
	threeStopPipeline = "var(--tw-gradient-position), var(--tw-gradient-from) var(--tw-gradient-from-position), var(--tw-gradient-via) var(--tw-gradient-via-position), var(--tw-gradient-to) var(--tw-gradient-to-position)"
)

// background disambiguates bg-[...] by value syntax: positions, sizes and
// images have distinctive shapes, anything else is a color.
func (l *library) background() {
	colorKeys := []string{"--background-color", "--color"}
	l.functional("bg", func(c Candidate, th *theme.Theme) []css.Node {
		v, ok := c.Value.Get()
		if !ok || c.Negative {
			return nil
		}
		if v.Kind == ValueKindArbitrary {
			dt := v.dataType(values.DataTypeColor,
				values.DataTypeImage, values.DataTypeColor, values.DataTypePercentage, values.DataTypePosition,
				values.DataTypeBgSize, values.DataTypeLength, values.DataTypeUrl)
			if dt != values.DataTypeColor && c.Modifier.IsPresent() {
				return nil
			}
			switch dt {
			case values.DataTypePercentage, values.DataTypePosition:
				return []css.Node{css.Decl("background-position", v.Value)}
			case values.DataTypeBgSize, values.DataTypeLength:
				return []css.Node{css.Decl("background-size", v.Value)}
			case values.DataTypeImage, values.DataTypeUrl:
				return []css.Node{css.Decl("background-image", v.Value)}
			default:
				color, ok := values.ResolveColorModifier(v.Value, c.alpha(), th)
				if !ok {
					return nil
				}
				return []css.Node{css.Decl("background-color", color)}
			}
		}
		if color, ok := resolveThemeColor(c, th, colorKeys); ok {
			return []css.Node{css.Decl("background-color", color)}
		}
		if image, ok := th.Resolve(v.Value, []string{"--background-image"}); ok && !c.Modifier.IsPresent() {
			return []css.Node{css.Decl("background-image", image)}
		}
		return nil
	})
	l.suggest("bg", func() []SuggestionGroup {
		return []SuggestionGroup{colorSuggestions(l.th, colorKeys)}
	})

	l.static("bg-none", pair("background-image", "none"))
	for _, a := range []string{"fixed", "local", "scroll"} {
		l.static("bg-"+a, pair("background-attachment", a))
	}
	for _, b := range []string{"border", "padding", "content"} {
		l.static("bg-clip-"+b, pair("background-clip", b+"-box"))
		l.static("bg-origin-"+b, pair("background-origin", b+"-box"))
	}
	l.static("bg-clip-text", pair("-webkit-background-clip", "text"), pair("background-clip", "text"))
	l.static("bg-repeat", pair("background-repeat", "repeat"))
	l.static("bg-no-repeat", pair("background-repeat", "no-repeat"))
	l.static("bg-repeat-x", pair("background-repeat", "repeat-x"))
	l.static("bg-repeat-y", pair("background-repeat", "repeat-y"))
	l.static("bg-repeat-round", pair("background-repeat", "round"))
	l.static("bg-repeat-space", pair("background-repeat", "space"))
	for _, s := range []string{"auto", "cover", "contain"} {
		l.static("bg-"+s, pair("background-size", s))
	}
	for _, p := range positionKeywords {
		l.static("bg-"+p.name, pair("background-position", p.value))
	}
	l.functionalUtility("bg-size", functionalSpec{
		themeKeys: []string{"--background-size"},
		handle:    decls("background-size"),
	})
	l.functionalUtility("bg-position", functionalSpec{
		themeKeys: []string{"--background-position"},
		handle:    decls("background-position"),
	})

	for _, m := range blendModes {
		l.static("bg-blend-"+m, pair("background-blend-mode", m))
		l.static("mix-blend-"+m, pair("mix-blend-mode", m))
	}
	l.static("mix-blend-plus-darker", pair("mix-blend-mode", "plus-darker"))
	l.static("mix-blend-plus-lighter", pair("mix-blend-mode", "plus-lighter"))
}

// interpolation turns gradient modifier into color interpolation method,
// "bg-linear-45/oklch" or "bg-conic/longer".
func interpolation(c Candidate) (string, bool) {
	m, ok := c.Modifier.Get()
	if !ok {
		return "in oklab", true
	}
	if m.Kind == ValueKindArbitrary {
		return m.Value, true
	}
	switch m.Value {
	case "hsl", "oklch", "srgb", "srgb-linear", "display-p3", "a98-rgb", "prophoto-rgb", "rec2020", "lab", "oklab", "xyz", "xyz-d50", "xyz-d65", "hwb":
		return "in " + m.Value, true
	case "longer", "shorter", "increasing", "decreasing":
		return "in oklch " + m.Value + " hue", true
	}
	return "", false
}

func (l *library) gradients() {
	image := func(fn, position string) []css.Node {
		return withProperties(gradientProperties,
			css.Decl("--tw-gradient-position", position),
			css.Decl("background-image", fn+"("+gradientStops+")"),
		)
	}

	for _, d := range gradientDirections {
		for _, root := range []string{"bg-linear-to-", "bg-gradient-to-"} {
			l.staticFn(root+d.name, func(Candidate, *theme.Theme) []css.Node {
				return image("linear-gradient", d.value+" in oklab")
			})
		}
	}

	for _, g := range []struct {
		root, fn string
		angle    func(value string) string
	}{
		{"bg-linear", "linear-gradient", func(value string) string { return value }},
		{"bg-conic", "conic-gradient", func(value string) string { return "from " + value }},
		{"bg-radial", "radial-gradient", nil},
	} {
		l.functional(g.root, func(c Candidate, th *theme.Theme) []css.Node {
			in, ok := interpolation(c)
			if !ok {
				return nil
			}
			v, hasValue := c.Value.Get()
			switch {
			case !hasValue:
				if c.Negative {
					return nil
				}
				if g.root == "bg-linear" {
					return nil
				}
				return image(g.fn, in)
			case v.Kind == ValueKindArbitrary:
				if c.Negative {
					return nil
				}
				if g.angle != nil && v.dataType(values.DataTypeAny, values.DataTypeAngle) == values.DataTypeAngle {
					return image(g.fn, g.angle(v.Value)+" "+in)
				}
				return withProperties(gradientProperties,
					css.Decl("--tw-gradient-position", v.Value),
					css.Decl("background-image", g.fn+"(var(--tw-gradient-stops, "+v.Value+"))"),
				)
			case g.angle != nil:
				angle, ok := evaluate(bareDegrees, v, th)
				if !ok {
					return nil
				}
				if c.Negative {
					angle = values.ApplyNegative(angle)
				}
				return image(g.fn, g.angle(angle)+" "+in)
			}
			return nil
		})
		if g.angle != nil {
			l.suggest(g.root, func() []SuggestionGroup {
				return []SuggestionGroup{{
					Values:           []string{"0", "30", "60", "90", "120", "150", "180", "210", "240", "270", "300", "330"},
					Modifiers:        []string{"srgb", "hsl", "oklab", "oklch", "longer", "shorter", "increasing", "decreasing"},
					SupportsNegative: true,
				}}
			})
		}
	}

	l.gradientStops()
}

func (l *library) gradientStops() {
	colorKeys := []string{"--background-color", "--color"}
	for _, stop := range []string{"from", "via", "to"} {
		variable := "--tw-gradient-" + stop
		colorNodes := func(color string) []css.Node {
			if stop == "via" {
				return withProperties(gradientProperties,
					css.Decl(variable, color),
					css.Decl("--tw-gradient-via-stops", threeStopPipeline),
					css.Decl("--tw-gradient-stops", "var(--tw-gradient-via-stops)"),
				)
			}
			return withProperties(gradientProperties,
				css.Decl(variable, color),
				css.Decl("--tw-gradient-stops", twoStopPipeline),
			)
		}
		positionNodes := func(position string) []css.Node {
			return withProperties(gradientProperties, css.Decl(variable+"-position", position))
		}

		l.functional(stop, func(c Candidate, th *theme.Theme) []css.Node {
			v, ok := c.Value.Get()
			if !ok || c.Negative {
				return nil
			}
			if v.Kind == ValueKindArbitrary {
				switch v.dataType(values.DataTypeColor, values.DataTypeColor, values.DataTypeLength, values.DataTypePercentage) {
				case values.DataTypeLength, values.DataTypePercentage:
					if c.Modifier.IsPresent() {
						return nil
					}
					return positionNodes(v.Value)
				default:
					color, ok := values.ResolveColorModifier(v.Value, c.alpha(), th)
					if !ok {
						return nil
					}
					return colorNodes(color)
				}
			}
			if color, ok := resolveThemeColor(c, th, colorKeys); ok {
				return colorNodes(color)
			}
			if c.Modifier.IsPresent() {
				return nil
			}
			if position, ok := th.Resolve(v.Value, []string{"--gradient-color-stop-positions"}); ok {
				return positionNodes(position)
			}
			if n := strings.TrimSuffix(v.Value, "%"); n != v.Value && values.IsPositiveInteger(n) {
				return positionNodes(v.Value)
			}
			return nil
		})
		l.suggest(stop, func() []SuggestionGroup {
			return []SuggestionGroup{
				colorSuggestions(l.th, colorKeys),
				{Values: lo.Map(lo.Range(21), func(i, _ int) string { return values.FormatNumber(float64(i * 5)) + "%" })},
			}
		})
	}
	l.staticFn("via-none", func(Candidate, *theme.Theme) []css.Node {
		return withProperties(gradientProperties, css.Decl("--tw-gradient-via-stops", "initial"))
	})
}

func (l *library) svg() {
	l.static("fill-none", pair("fill", "none"))
	l.colorUtility("fill", colorSpec{
		themeKeys: []string{"--fill", "--color"},
		handle:    decls("fill"),
	})

	colorKeys := []string{"--stroke", "--color"}
	l.static("stroke-none", pair("stroke", "none"))
	l.functional("stroke", func(c Candidate, th *theme.Theme) []css.Node {
		v, ok := c.Value.Get()
		if !ok || c.Negative {
			return nil
		}
		if v.Kind == ValueKindArbitrary {
			switch v.dataType(values.DataTypeColor, values.DataTypeColor, values.DataTypeNumber, values.DataTypeLength, values.DataTypePercentage) {
			case values.DataTypeNumber, values.DataTypeLength, values.DataTypePercentage:
				if c.Modifier.IsPresent() {
					return nil
				}
				return []css.Node{css.Decl("stroke-width", v.Value)}
			default:
				color, ok := values.ResolveColorModifier(v.Value, c.alpha(), th)
				if !ok {
					return nil
				}
				return []css.Node{css.Decl("stroke", color)}
			}
		}
		if color, ok := resolveThemeColor(c, th, colorKeys); ok {
			return []css.Node{css.Decl("stroke", color)}
		}
		if c.Modifier.IsPresent() {
			return nil
		}
		if width, ok := th.Resolve(v.Value, []string{"--stroke-width"}); ok {
			return []css.Node{css.Decl("stroke-width", width)}
		}
		if values.IsPositiveInteger(v.Value) {
			return []css.Node{css.Decl("stroke-width", v.Value)}
		}
		return nil
	})
	l.suggest("stroke", func() []SuggestionGroup {
		return []SuggestionGroup{
			colorSuggestions(l.th, colorKeys),
			{Values: []string{"0", "1", "2", "3"}},
		}
	})
}
