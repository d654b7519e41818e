package utilities

import (
	"twc/css"
	"twc/theme"
	"twc/values"
)

var borderStyles = []string{"solid", "dashed", "dotted", "double", "hidden", "none"}

func (l *library) radius() {
	for _, side := range []struct {
		suffix     string
		properties []string
	}{
		{"", []string{"border-radius"}},
		{"-s", []string{"border-start-start-radius", "border-end-start-radius"}},
		{"-e", []string{"border-start-end-radius", "border-end-end-radius"}},
		{"-t", []string{"border-top-left-radius", "border-top-right-radius"}},
		{"-r", []string{"border-top-right-radius", "border-bottom-right-radius"}},
		{"-b", []string{"border-bottom-right-radius", "border-bottom-left-radius"}},
		{"-l", []string{"border-top-left-radius", "border-bottom-left-radius"}},
		{"-ss", []string{"border-start-start-radius"}},
		{"-se", []string{"border-start-end-radius"}},
		{"-ee", []string{"border-end-end-radius"}},
		{"-es", []string{"border-end-start-radius"}},
		{"-tl", []string{"border-top-left-radius"}},
		{"-tr", []string{"border-top-right-radius"}},
		{"-br", []string{"border-bottom-right-radius"}},
		{"-bl", []string{"border-bottom-left-radius"}},
	} {
		root := "rounded" + side.suffix
		handle := decls(side.properties...)
		l.staticFn(root+"-none", func(Candidate, *theme.Theme) []css.Node { return handle("0") })
		l.staticFn(root+"-full", func(Candidate, *theme.Theme) []css.Node { return handle("calc(infinity * 1px)") })
		l.functionalUtility(root, functionalSpec{
			themeKeys:    []string{"--radius"},
			defaultValue: Literal("0.25rem"),
			handle:       handle,
		})
	}
}

// borderWidth is the value of border utilities without explicit width.
var borderWidth = Computed(func(_ CandidateValue, th *theme.Theme) (string, bool) {
	if w, ok := th.Resolve("", []string{"--default-border-width"}); ok {
		return w, true
	}
	return "1px", true
})

func (l *library) borders() {
	for _, side := range []struct{ suffix, width, color, style string }{
		{"", "border-width", "border-color", "border-style"},
		{"-x", "border-inline-width", "border-inline-color", "border-inline-style"},
		{"-y", "border-block-width", "border-block-color", "border-block-style"},
		{"-s", "border-inline-start-width", "border-inline-start-color", "border-inline-start-style"},
		{"-e", "border-inline-end-width", "border-inline-end-color", "border-inline-end-style"},
		{"-t", "border-top-width", "border-top-color", "border-top-style"},
		{"-r", "border-right-width", "border-right-color", "border-right-style"},
		{"-b", "border-bottom-width", "border-bottom-color", "border-bottom-style"},
		{"-l", "border-left-width", "border-left-color", "border-left-style"},
	} {
		widthNodes := func(value string) []css.Node {
			return withProperties(borderStyleProperties,
				css.Decl(side.style, "var(--tw-border-style)"),
				css.Decl(side.width, value),
			)
		}
		colorNodes := func(value string) []css.Node {
			return []css.Node{css.Decl(side.color, value)}
		}
		l.lineUtility("border"+side.suffix, lineSpec{
			defaultWidth: borderWidth,
			widthKeys:    []string{"--border-width"},
			colorKeys:    []string{"--border-color", "--color"},
			width:        widthNodes,
			color:        colorNodes,
		})
	}

	for _, s := range borderStyles {
		l.staticFn("border-"+s, func(Candidate, *theme.Theme) []css.Node {
			return withProperties(borderStyleProperties,
				css.Decl("--tw-border-style", s),
				css.Decl("border-style", s),
			)
		})
	}
}

func (l *library) divide() {
	children := ":where(& > :not(:last-child))"
	for _, axis := range []struct{ name, style, start, end string }{
		{"x", "border-inline-style", "border-inline-start-width", "border-inline-end-width"},
		{"y", "border-block-style", "border-top-width", "border-bottom-width"},
	} {
		reverse := "--tw-divide-" + axis.name + "-reverse"
		props := append([]func() css.Node{prop(reverse, "0", "")}, borderStyleProperties...)
		l.functionalUtility("divide-"+axis.name, functionalSpec{
			themeKeys:     []string{"--divide-width", "--border-width"},
			defaultValue:  borderWidth,
			bareValue:     barePixels,
			suggestValues: []string{"0", "2", "4", "8"},
			handle: func(value string) []css.Node {
				return withProperties(props,
					css.NewRule(children,
						css.Decl(reverse, "0"),
						css.Decl(axis.style, "var(--tw-border-style)"),
						css.Decl(axis.start, "calc("+value+" * var("+reverse+"))"),
						css.Decl(axis.end, "calc("+value+" * calc(1 - var("+reverse+")))"),
					),
				)
			},
		})
		l.staticFn("divide-"+axis.name+"-reverse", func(Candidate, *theme.Theme) []css.Node {
			return withProperties(props, css.NewRule(children, css.Decl(reverse, "1")))
		})
	}

	l.colorUtility("divide", colorSpec{
		themeKeys: []string{"--divide-color", "--border-color", "--color"},
		handle: func(value string) []css.Node {
			return []css.Node{css.NewRule(children, css.Decl("border-color", value))}
		},
	})

	for _, s := range borderStyles {
		l.staticFn("divide-"+s, func(Candidate, *theme.Theme) []css.Node {
			return withProperties(borderStyleProperties,
				css.NewRule(children,
					css.Decl("--tw-border-style", s),
					css.Decl("border-style", s),
				),
			)
		})
	}
}

func (l *library) outline() {
	l.static("outline-hidden",
		pair("outline", "2px solid transparent"),
		pair("outline-offset", "2px"),
	)
	for _, s := range []string{"solid", "dashed", "dotted", "double", "none"} {
		l.staticFn("outline-"+s, func(Candidate, *theme.Theme) []css.Node {
			return withProperties(outlineStyleProperties,
				css.Decl("--tw-outline-style", s),
				css.Decl("outline-style", s),
			)
		})
	}

	l.lineUtility("outline", lineSpec{
		defaultWidth: Literal("1px"),
		widthKeys:    []string{"--outline-width"},
		colorKeys:    []string{"--outline-color", "--color"},
		width: func(value string) []css.Node {
			return withProperties(outlineStyleProperties,
				css.Decl("outline-style", "var(--tw-outline-style)"),
				css.Decl("outline-width", value),
			)
		},
		color: decls("outline-color"),
	})

	l.functionalUtility("outline-offset", functionalSpec{
		themeKeys:        []string{"--outline-offset"},
		bareValue:        barePixels,
		supportsNegative: true,
		suggestValues:    []string{"0", "1", "2", "4", "8"},
		handle:           decls("outline-offset"),
	})
}

// lineSpec describes root taking either a line width or a color, like
// "border-2" and "border-red-500".
type lineSpec struct {
	defaultWidth ValueOption // nil means value is required
	widthKeys    []string
	colorKeys    []string
	width        func(value string) []css.Node
	color        func(value string) []css.Node
}

// lineUtility registers root resolving to width when candidate has no value,
// a theme width, a whole number of pixels or an arbitrary length, and to
// color otherwise.
func (l *library) lineUtility(name string, spec lineSpec) {
	l.functional(name, func(c Candidate, th *theme.Theme) []css.Node {
		if c.Negative {
			return nil
		}
		v, ok := c.Value.Get()
		if !ok {
			if c.Modifier.IsPresent() || spec.defaultWidth == nil {
				return nil
			}
			w, ok := evaluate(spec.defaultWidth, CandidateValue{}, th)
			if !ok {
				return nil
			}
			return spec.width(w)
		}

		if v.Kind == ValueKindArbitrary {
			switch v.dataType(values.DataTypeColor, values.DataTypeLineWidth, values.DataTypeLength, values.DataTypeNumber, values.DataTypePercentage) {
			case values.DataTypeLineWidth, values.DataTypeLength, values.DataTypeNumber, values.DataTypePercentage:
				if c.Modifier.IsPresent() {
					return nil
				}
				return spec.width(v.Value)
			default:
				color, ok := values.ResolveColorModifier(v.Value, c.alpha(), th)
				if !ok {
					return nil
				}
				return spec.color(color)
			}
		}

		if !c.Modifier.IsPresent() {
			if w, ok := th.Resolve(v.Value, spec.widthKeys); ok {
				return spec.width(w)
			}
			if w, ok := evaluate(barePixels, v, th); ok {
				return spec.width(w)
			}
		}
		if color, ok := resolveThemeColor(c, th, spec.colorKeys); ok {
			return spec.color(color)
		}
		return nil
	})
	l.suggest(name, func() []SuggestionGroup {
		return []SuggestionGroup{
			colorSuggestions(l.th, spec.colorKeys),
			{
				Values:          sortedValues(append(l.th.KeysInNamespaces(spec.widthKeys), "0", "2", "4", "8")),
				HasDefaultValue: spec.defaultWidth != nil,
			},
		}
	})
}
