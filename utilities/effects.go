package utilities

import (
	"strings"

	"twc/css"
	"twc/theme"
	"twc/values"
)

const boxShadowChain = "var(--tw-inset-shadow), var(--tw-inset-ring-shadow), var(--tw-ring-offset-shadow), var(--tw-ring-shadow), var(--tw-shadow)"

// replaceShadowColors wraps color of every shadow layer into a variable
// reference so shadow color utilities can recolor it.
func replaceShadowColors(value, variable string) string {
	layers := css.SplitTopLevel(value, ',')
	for i, layer := range layers {
		parts := css.SplitTopLevel(layer, ' ')
		for j := len(parts) - 1; j >= 0; j-- {
			if values.IsColor(parts[j]) {
				parts[j] = "var(" + variable + ", " + parts[j] + ")"
				break
			}
		}
		layers[i] = strings.Join(parts, " ")
	}
	return strings.Join(layers, ", ")
}

// shadowUtility registers shadow family writing one layer of the composed
// box-shadow.
func (l *library) shadowUtility(name, namespace, variable, defaultShadow string) {
	colorVariable := variable + "-color"
	colorKeys := []string{"--box-shadow-color", "--color"}
	shadow := func(value string) []css.Node {
		return withProperties(boxShadowProperties,
			css.Decl(variable, value),
			css.Decl("box-shadow", boxShadowChain),
		)
	}
	color := func(value string) []css.Node {
		return withProperties(boxShadowProperties, css.Decl(colorVariable, value))
	}

	l.staticFn(name+"-none", func(Candidate, *theme.Theme) []css.Node { return shadow("0 0 #0000") })
	l.staticFn(name+"-initial", func(Candidate, *theme.Theme) []css.Node { return color("initial") })

	l.functional(name, func(c Candidate, th *theme.Theme) []css.Node {
		if c.Negative {
			return nil
		}
		v, ok := c.Value.Get()
		if !ok {
			if c.Modifier.IsPresent() {
				return nil
			}
			value, ok := th.ResolveValue("", []string{namespace})
			if !ok {
				if defaultShadow == "" {
					return nil
				}
				value = defaultShadow
			}
			return shadow(replaceShadowColors(value, colorVariable))
		}

		if v.Kind == ValueKindArbitrary {
			if v.dataType(values.DataTypeAny, values.DataTypeColor) == values.DataTypeColor {
				value, ok := values.ResolveColorModifier(v.Value, c.alpha(), th)
				if !ok {
					return nil
				}
				return color(value)
			}
			if c.Modifier.IsPresent() {
				return nil
			}
			return shadow(replaceShadowColors(v.Value, colorVariable))
		}

		if value, ok := resolveThemeColor(c, th, colorKeys); ok {
			return color(value)
		}
		if c.Modifier.IsPresent() {
			return nil
		}
		if value, ok := th.ResolveValue(v.Value, []string{namespace}); ok {
			return shadow(replaceShadowColors(value, colorVariable))
		}
		return nil
	})
	l.suggest(name, func() []SuggestionGroup {
		return []SuggestionGroup{
			colorSuggestions(l.th, colorKeys),
			{Values: sortedValues(l.th.KeysInNamespaces([]string{namespace})), HasDefaultValue: defaultShadow != ""},
		}
	})
}

func (l *library) shadows() {
	l.shadowUtility("shadow", "--shadow", "--tw-shadow", "0 1px 3px 0 rgb(0 0 0 / 0.1), 0 1px 2px -1px rgb(0 0 0 / 0.1)")
	l.shadowUtility("inset-shadow", "--inset-shadow", "--tw-inset-shadow", "")
}

// ringWidth is the width of rings without explicit value.
var ringWidth = Computed(func(_ CandidateValue, th *theme.Theme) (string, bool) {
	if w, ok := th.Resolve("", []string{"--default-ring-width"}); ok {
		return w, true
	}
	return "1px", true
})

func (l *library) rings() {
	withShadow := func(nodes ...css.Node) []css.Node {
		return withProperties(boxShadowProperties, append(nodes, css.Decl("box-shadow", boxShadowChain))...)
	}

	l.lineUtility("ring", lineSpec{
		defaultWidth: ringWidth,
		widthKeys:    []string{"--ring-width"},
		colorKeys:    []string{"--ring-color", "--color"},
		width: func(value string) []css.Node {
			return withShadow(css.Decl("--tw-ring-shadow",
				"var(--tw-ring-inset,) 0 0 0 calc("+value+" + var(--tw-ring-offset-width)) var(--tw-ring-color, currentcolor)"))
		},
		color: func(value string) []css.Node {
			return withProperties(boxShadowProperties, css.Decl("--tw-ring-color", value))
		},
	})
	l.staticFn("ring-inset", func(Candidate, *theme.Theme) []css.Node {
		return withProperties(boxShadowProperties, css.Decl("--tw-ring-inset", "inset"))
	})

	l.lineUtility("inset-ring", lineSpec{
		defaultWidth: Literal("1px"),
		widthKeys:    []string{"--ring-width"},
		colorKeys:    []string{"--ring-color", "--color"},
		width: func(value string) []css.Node {
			return withShadow(css.Decl("--tw-inset-ring-shadow", "inset 0 0 0 "+value+" var(--tw-inset-ring-color, currentcolor)"))
		},
		color: func(value string) []css.Node {
			return withProperties(boxShadowProperties, css.Decl("--tw-inset-ring-color", value))
		},
	})

	l.lineUtility("ring-offset", lineSpec{
		widthKeys: []string{"--ring-offset-width"},
		colorKeys: []string{"--ring-offset-color", "--color"},
		width: func(value string) []css.Node {
			return withProperties(boxShadowProperties,
				css.Decl("--tw-ring-offset-width", value),
				css.Decl("--tw-ring-offset-shadow", "var(--tw-ring-inset,) 0 0 0 var(--tw-ring-offset-width) var(--tw-ring-offset-color)"),
			)
		},
		color: func(value string) []css.Node {
			return withProperties(boxShadowProperties, css.Decl("--tw-ring-offset-color", value))
		},
	})
}

// bareOpacity turns whole numbers from 0 to 100 into percentages.
var bareOpacity = Computed(func(v CandidateValue, _ *theme.Theme) (string, bool) {
	if !values.IsValidOpacityValue(v.Value) {
		return "", false
	}
	return v.Value + "%", true
})

func (l *library) opacity() {
	l.functionalUtility("opacity", functionalSpec{
		themeKeys:     []string{"--opacity"},
		bareValue:     bareOpacity,
		suggestValues: []string{"0", "5", "10", "15", "20", "25", "30", "35", "40", "45", "50", "55", "60", "65", "70", "75", "80", "85", "90", "95", "100"},
		handle:        decls("opacity"),
	})
}
