package utilities

import (
	"twc/css"
	"twc/theme"
	"twc/values"
)

var (
	fontWeightProperties = []func() css.Node{prop("--tw-font-weight", "", "")}
	leadingProperties    = []func() css.Node{prop("--tw-leading", "", "")}
	trackingProperties   = []func() css.Node{prop("--tw-tracking", "", "")}
)

func (l *library) fonts() {
	l.functional("font", func(c Candidate, th *theme.Theme) []css.Node {
		v, ok := c.Value.Get()
		if !ok || c.Negative || c.Modifier.IsPresent() {
			return nil
		}
		weight := func(value string) []css.Node {
			return withProperties(fontWeightProperties,
				css.Decl("--tw-font-weight", value),
				css.Decl("font-weight", value),
			)
		}

		if v.Kind == ValueKindArbitrary {
			switch v.dataType(values.DataTypeAny, values.DataTypeNumber, values.DataTypeGenericName, values.DataTypeFamilyName) {
			case values.DataTypeGenericName, values.DataTypeFamilyName:
				return []css.Node{css.Decl("font-family", v.Value)}
			default:
				return weight(v.Value)
			}
		}

		if family, extra, ok := th.ResolveWith(v.Value, []string{"--font"}, []string{"--font-feature-settings", "--font-variation-settings"}); ok {
			nodes := []css.Node{css.Decl("font-family", family)}
			if s, ok := extra["--font-feature-settings"]; ok {
				nodes = append(nodes, css.Decl("font-feature-settings", s))
			}
			if s, ok := extra["--font-variation-settings"]; ok {
				nodes = append(nodes, css.Decl("font-variation-settings", s))
			}
			return nodes
		}
		if w, ok := th.Resolve(v.Value, []string{"--font-weight"}); ok {
			return weight(w)
		}
		return nil
	})
	l.suggest("font", func() []SuggestionGroup {
		return []SuggestionGroup{
			{Values: l.th.KeysInNamespaces([]string{"--font"})},
			{Values: l.th.KeysInNamespaces([]string{"--font-weight"})},
		}
	})

	for _, s := range []string{
		"ultra-condensed", "extra-condensed", "condensed", "semi-condensed", "normal",
		"semi-expanded", "expanded", "extra-expanded", "ultra-expanded",
	} {
		l.static("font-stretch-"+s, pair("font-stretch", s))
	}
	l.functionalUtility("font-stretch", functionalSpec{
		bareValue: Computed(func(v CandidateValue, _ *theme.Theme) (string, bool) {
			if !values.IsPositiveInteger(v.Value) {
				return "", false
			}
			return v.Value + "%", true
		}),
		suggestValues: []string{"50", "75", "90", "95", "100", "105", "110", "125", "150", "200"},
		handle:        decls("font-stretch"),
	})

	numeric := "var(--tw-ordinal,) var(--tw-slashed-zero,) var(--tw-numeric-figure,) var(--tw-numeric-spacing,) var(--tw-numeric-fraction,)"
	numericProperties := []func() css.Node{
		prop("--tw-ordinal", "", ""),
		prop("--tw-slashed-zero", "", ""),
		prop("--tw-numeric-figure", "", ""),
		prop("--tw-numeric-spacing", "", ""),
		prop("--tw-numeric-fraction", "", ""),
	}
	l.static("normal-nums", pair("font-variant-numeric", "normal"))
	for _, n := range []struct{ name, variable string }{
		{"ordinal", "--tw-ordinal"},
		{"slashed-zero", "--tw-slashed-zero"},
		{"lining-nums", "--tw-numeric-figure"},
		{"oldstyle-nums", "--tw-numeric-figure"},
		{"proportional-nums", "--tw-numeric-spacing"},
		{"tabular-nums", "--tw-numeric-spacing"},
		{"diagonal-fractions", "--tw-numeric-fraction"},
		{"stacked-fractions", "--tw-numeric-fraction"},
	} {
		l.static(n.name, append(nodesOf(numericProperties), pair(n.variable, n.name), pair("font-variant-numeric", numeric))...)
	}

	l.static("italic", pair("font-style", "italic"))
	l.static("not-italic", pair("font-style", "normal"))
	l.static("antialiased", pair("-webkit-font-smoothing", "antialiased"), pair("-moz-osx-font-smoothing", "grayscale"))
	l.static("subpixel-antialiased", pair("-webkit-font-smoothing", "auto"), pair("-moz-osx-font-smoothing", "auto"))
}

// text is both font size (with optional line height modifier) and color.
func (l *library) text() {
	l.functional("text", func(c Candidate, th *theme.Theme) []css.Node {
		v, ok := c.Value.Get()
		if !ok || c.Negative {
			return nil
		}

		if v.Kind == ValueKindArbitrary {
			switch v.dataType(values.DataTypeColor,
				values.DataTypeColor, values.DataTypeLength, values.DataTypePercentage,
				values.DataTypeAbsoluteSize, values.DataTypeRelativeSize) {
			case values.DataTypeLength, values.DataTypePercentage, values.DataTypeAbsoluteSize, values.DataTypeRelativeSize:
				return fontSize(c, th, v.Value, nil)
			default:
				color, ok := values.ResolveColorModifier(v.Value, c.alpha(), th)
				if !ok {
					return nil
				}
				return []css.Node{css.Decl("color", color)}
			}
		}

		if color, ok := resolveThemeColor(c, th, []string{"--text-color", "--color"}); ok {
			return []css.Node{css.Decl("color", color)}
		}
		if size, extra, ok := th.ResolveWith(v.Value, []string{"--text"}, []string{"--line-height", "--letter-spacing", "--font-weight"}); ok {
			return fontSize(c, th, size, extra)
		}
		return nil
	})
	l.suggest("text", func() []SuggestionGroup {
		return []SuggestionGroup{
			colorSuggestions(l.th, []string{"--text-color", "--color"}),
			{
				Values:    l.th.KeysInNamespaces([]string{"--text"}),
				Modifiers: append(l.th.KeysInNamespaces([]string{"--leading"}), spacingValues...),
			},
		}
	})

	for _, a := range []string{"left", "center", "right", "justify", "start", "end"} {
		l.static("text-"+a, pair("text-align", a))
	}
	l.static("text-ellipsis", pair("text-overflow", "ellipsis"))
	l.static("text-clip", pair("text-overflow", "clip"))
	l.static("truncate", pair("overflow", "hidden"), pair("text-overflow", "ellipsis"), pair("white-space", "nowrap"))
	for _, w := range []string{"wrap", "nowrap", "balance", "pretty"} {
		l.static("text-"+w, pair("text-wrap", w))
	}

	l.static("uppercase", pair("text-transform", "uppercase"))
	l.static("lowercase", pair("text-transform", "lowercase"))
	l.static("capitalize", pair("text-transform", "capitalize"))
	l.static("normal-case", pair("text-transform", "none"))

	for _, w := range []string{"normal", "nowrap", "pre", "pre-line", "pre-wrap", "break-spaces"} {
		l.static("whitespace-"+w, pair("white-space", w))
	}
	l.static("break-normal", pair("overflow-wrap", "normal"), pair("word-break", "normal"))
	l.static("break-words", pair("overflow-wrap", "break-word"))
	l.static("break-all", pair("word-break", "break-all"))
	l.static("break-keep", pair("word-break", "keep-all"))
	l.static("wrap-anywhere", pair("overflow-wrap", "anywhere"))
	l.static("wrap-break-word", pair("overflow-wrap", "break-word"))
	l.static("wrap-normal", pair("overflow-wrap", "normal"))
	for _, h := range []string{"none", "manual", "auto"} {
		l.static("hyphens-"+h, pair("-webkit-hyphens", h), pair("hyphens", h))
	}

	l.spacingUtility("indent", []string{"--text-indent", "--spacing"}, true, false, decls("text-indent"))

	for _, a := range []string{"baseline", "top", "middle", "bottom", "text-top", "text-bottom", "sub", "super"} {
		l.static("align-"+a, pair("vertical-align", a))
	}
	l.functionalUtility("align", functionalSpec{
		themeKeys: []string{},
		handle:    decls("vertical-align"),
	})

	l.colorUtility("placeholder", colorSpec{
		themeKeys: []string{"--background-color", "--color"},
		handle: func(value string) []css.Node {
			return []css.Node{css.NewRule("&::placeholder", css.Decl("color", value))}
		},
	})
}

// fontSize emits font-size with its coupled line height, letter spacing and
// weight. Line height modifier overrides the theme line height.
func fontSize(c Candidate, th *theme.Theme, size string, extra map[string]string) []css.Node {
	nodes := []css.Node{css.Decl("font-size", size)}
	if m, ok := c.Modifier.Get(); ok {
		var lineHeight string
		switch {
		case m.Kind == ValueKindArbitrary:
			lineHeight = m.Value
		default:
			if lineHeight, ok = th.Resolve(m.Value, []string{"--leading"}); !ok {
				if lineHeight, ok = evaluate(bareSpacing, CandidateValue{Value: m.Value}, th); !ok {
					return nil
				}
			}
		}
		return append(nodes, css.Decl("line-height", lineHeight))
	}

	if lh, ok := extra["--line-height"]; ok {
		nodes = append(nodes, css.Decl("line-height", "var(--tw-leading, "+lh+")"))
	}
	if ls, ok := extra["--letter-spacing"]; ok {
		nodes = append(nodes, css.Decl("letter-spacing", "var(--tw-tracking, "+ls+")"))
	}
	if fw, ok := extra["--font-weight"]; ok {
		nodes = append(nodes, css.Decl("font-weight", "var(--tw-font-weight, "+fw+")"))
	}
	return nodes
}

func (l *library) leading() {
	handle := func(value string) []css.Node {
		return withProperties(leadingProperties,
			css.Decl("--tw-leading", value),
			css.Decl("line-height", value),
		)
	}
	l.staticFn("leading-none", func(Candidate, *theme.Theme) []css.Node { return handle("1") })
	l.spacingUtility("leading", []string{"--leading", "--spacing"}, false, false, handle)

	l.functionalUtility("tracking", functionalSpec{
		themeKeys:        []string{"--tracking"},
		supportsNegative: true,
		handle: func(value string) []css.Node {
			return withProperties(trackingProperties,
				css.Decl("--tw-tracking", value),
				css.Decl("letter-spacing", value),
			)
		},
	})
}

func (l *library) decoration() {
	l.static("underline", pair("text-decoration-line", "underline"))
	l.static("overline", pair("text-decoration-line", "overline"))
	l.static("line-through", pair("text-decoration-line", "line-through"))
	l.static("no-underline", pair("text-decoration-line", "none"))

	for _, s := range []string{"solid", "double", "dotted", "dashed", "wavy"} {
		l.static("decoration-"+s, pair("text-decoration-style", s))
	}
	l.static("decoration-auto", pair("text-decoration-thickness", "auto"))
	l.static("decoration-from-font", pair("text-decoration-thickness", "from-font"))

	themeKeys := []string{"--text-decoration-color", "--color"}
	l.functional("decoration", func(c Candidate, th *theme.Theme) []css.Node {
		v, ok := c.Value.Get()
		if !ok || c.Negative {
			return nil
		}
		if v.Kind == ValueKindArbitrary {
			switch v.dataType(values.DataTypeColor, values.DataTypeLength, values.DataTypePercentage) {
			case values.DataTypeLength, values.DataTypePercentage:
				if c.Modifier.IsPresent() {
					return nil
				}
				return []css.Node{css.Decl("text-decoration-thickness", v.Value)}
			default:
				color, ok := values.ResolveColorModifier(v.Value, c.alpha(), th)
				if !ok {
					return nil
				}
				return []css.Node{css.Decl("text-decoration-color", color)}
			}
		}
		if thickness, ok := th.Resolve(v.Value, []string{"--text-decoration-thickness"}); ok && !c.Modifier.IsPresent() {
			return []css.Node{css.Decl("text-decoration-thickness", thickness)}
		}
		if values.IsPositiveInteger(v.Value) && !c.Modifier.IsPresent() {
			return []css.Node{css.Decl("text-decoration-thickness", v.Value+"px")}
		}
		if color, ok := resolveThemeColor(c, th, themeKeys); ok {
			return []css.Node{css.Decl("text-decoration-color", color)}
		}
		return nil
	})
	l.suggest("decoration", func() []SuggestionGroup {
		return []SuggestionGroup{
			colorSuggestions(l.th, themeKeys),
			{Values: []string{"0", "1", "2", "4", "8"}},
		}
	})

	l.static("underline-offset-auto", pair("text-underline-offset", "auto"))
	l.functionalUtility("underline-offset", functionalSpec{
		themeKeys:        []string{"--text-underline-offset"},
		bareValue:        barePixels,
		supportsNegative: true,
		suggestValues:    []string{"0", "1", "2", "4", "8"},
		handle:           decls("text-underline-offset"),
	})
}

