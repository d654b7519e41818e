package utilities

import (
	"twc/css"
	"twc/theme"
	"twc/values"
)

func (l *library) flexbox() {
	l.static("flex-auto", pair("flex", "auto"))
	l.static("flex-initial", pair("flex", "0 auto"))
	l.static("flex-none", pair("flex", "none"))
	l.functional("flex", func(c Candidate, _ *theme.Theme) []css.Node {
		v, ok := c.Value.Get()
		if !ok || c.Negative {
			return nil
		}
		switch {
		case v.Kind == ValueKindArbitrary:
			if c.Modifier.IsPresent() {
				return nil
			}
			return []css.Node{css.Decl("flex", v.Value)}
		case v.Fraction != "":
			if !values.IsFraction(v.Fraction) {
				return nil
			}
			return []css.Node{css.Decl("flex", "calc("+v.Fraction+" * 100%)")}
		case values.IsPositiveInteger(v.Value) && !c.Modifier.IsPresent():
			return []css.Node{css.Decl("flex", v.Value)}
		}
		return nil
	})
	l.suggest("flex", func() []SuggestionGroup {
		return []SuggestionGroup{{Values: []string{"1", "2", "3"}, SupportsFractions: true}}
	})

	for _, root := range []string{"shrink", "flex-shrink"} {
		l.functionalUtility(root, functionalSpec{
			defaultValue: Literal("1"),
			bareValue:    bareInteger,
			handle:       decls("flex-shrink"),
		})
	}
	for _, root := range []string{"grow", "flex-grow"} {
		l.functionalUtility(root, functionalSpec{
			defaultValue: Literal("1"),
			bareValue:    bareInteger,
			handle:       decls("flex-grow"),
		})
	}

	l.static("basis-auto", pair("flex-basis", "auto"))
	l.static("basis-full", pair("flex-basis", "100%"))
	l.spacingUtility("basis", []string{"--flex-basis", "--spacing", "--container"}, false, true, decls("flex-basis"))

	for _, d := range []struct{ name, value string }{
		{"row", "row"}, {"row-reverse", "row-reverse"}, {"col", "column"}, {"col-reverse", "column-reverse"},
	} {
		l.static("flex-"+d.name, pair("flex-direction", d.value))
	}
	l.static("flex-wrap", pair("flex-wrap", "wrap"))
	l.static("flex-nowrap", pair("flex-wrap", "nowrap"))
	l.static("flex-wrap-reverse", pair("flex-wrap", "wrap-reverse"))
}

func (l *library) alignment() {
	distribution := []string{"center", "start", "end", "between", "around", "evenly", "stretch", "baseline", "normal"}
	value := func(name string) string {
		switch name {
		case "start":
			return "flex-start"
		case "end":
			return "flex-end"
		case "between", "around", "evenly":
			return "space-" + name
		}
		return name
	}

	for _, name := range distribution {
		l.static("content-"+name, pair("align-content", value(name)))
		l.static("justify-"+name, pair("justify-content", value(name)))
		l.static("place-content-"+name, pair("place-content", placeValue(name)))
	}
	l.static("justify-center-safe", pair("justify-content", "safe center"))
	l.static("justify-end-safe", pair("justify-content", "safe flex-end"))

	for _, name := range []string{"start", "end", "center", "stretch", "baseline", "baseline-last"} {
		v := name
		switch name {
		case "start", "end":
			v = "flex-" + name
		case "baseline-last":
			v = "last baseline"
		}
		l.static("items-"+name, pair("align-items", v))
		l.static("self-"+name, pair("align-self", v))
		l.static("place-items-"+name, pair("place-items", placeValue(name)))
		l.static("place-self-"+name, pair("place-self", placeValue(name)))
	}
	l.static("self-auto", pair("align-self", "auto"))
	l.static("place-self-auto", pair("place-self", "auto"))

	for _, name := range []string{"auto", "start", "end", "center", "stretch", "normal"} {
		l.static("justify-items-"+name, pair("justify-items", name))
		l.static("justify-self-"+name, pair("justify-self", name))
	}
}

// placeValue maps alignment names for place-* shorthands, which take plain
// start/end keywords.
func placeValue(name string) string {
	switch name {
	case "between", "around", "evenly":
		return "space-" + name
	case "baseline-last":
		return "last baseline"
	}
	return name
}

func (l *library) gaps() {
	l.spacingUtility("gap", []string{"--gap", "--spacing"}, false, false, decls("gap"))
	l.spacingUtility("gap-x", []string{"--gap", "--spacing"}, false, false, decls("column-gap"))
	l.spacingUtility("gap-y", []string{"--gap", "--spacing"}, false, false, decls("row-gap"))

	for _, axis := range []struct{ name, start, end string }{
		{"x", "margin-inline-start", "margin-inline-end"},
		{"y", "margin-block-start", "margin-block-end"},
	} {
		reverse := "--tw-space-" + axis.name + "-reverse"
		l.spacingUtility("space-"+axis.name, []string{"--space", "--spacing"}, true, false, func(value string) []css.Node {
			return withProperties([]func() css.Node{prop(reverse, "0", "")},
				css.NewRule(":where(& > :not(:last-child))",
					css.Decl(reverse, "0"),
					css.Decl(axis.start, "calc("+value+" * var("+reverse+"))"),
					css.Decl(axis.end, "calc("+value+" * calc(1 - var("+reverse+")))"),
				),
			)
		})
		l.staticFn("space-"+axis.name+"-reverse", func(Candidate, *theme.Theme) []css.Node {
			return withProperties([]func() css.Node{prop(reverse, "0", "")},
				css.NewRule(":where(& > :not(:last-child))", css.Decl(reverse, "1")),
			)
		})
	}
}

func (l *library) grid() {
	for _, axis := range []struct{ root, property, auto string }{
		{"grid-cols", "grid-template-columns", "auto-cols"},
		{"grid-rows", "grid-template-rows", "auto-rows"},
	} {
		l.static(axis.root+"-none", pair(axis.property, "none"))
		l.static(axis.root+"-subgrid", pair(axis.property, "subgrid"))
		l.functionalUtility(axis.root, functionalSpec{
			themeKeys: []string{"--" + axis.property},
			bareValue: Computed(func(v CandidateValue, _ *theme.Theme) (string, bool) {
				if !values.IsStrictPositiveInteger(v.Value) {
					return "", false
				}
				return "repeat(" + v.Value + ", minmax(0, 1fr))", true
			}),
			suggestValues: []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12"},
			handle:        decls(axis.property),
		})

		autoProperty := "grid-auto-" + map[string]string{"auto-cols": "columns", "auto-rows": "rows"}[axis.auto]
		l.static(axis.auto+"-auto", pair(autoProperty, "auto"))
		l.static(axis.auto+"-min", pair(autoProperty, "min-content"))
		l.static(axis.auto+"-max", pair(autoProperty, "max-content"))
		l.static(axis.auto+"-fr", pair(autoProperty, "minmax(0, 1fr)"))
		l.functionalUtility(axis.auto, functionalSpec{
			themeKeys: []string{"--" + autoProperty},
			handle:    decls(autoProperty),
		})
	}

	for _, f := range []struct{ name, value string }{
		{"row", "row"}, {"col", "column"}, {"dense", "dense"}, {"row-dense", "row dense"}, {"col-dense", "column dense"},
	} {
		l.static("grid-flow-"+f.name, pair("grid-auto-flow", f.value))
	}

	l.static("columns-auto", pair("columns", "auto"))
	l.functionalUtility("columns", functionalSpec{
		themeKeys:     []string{"--columns", "--container"},
		bareValue:     bareInteger,
		suggestValues: []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12"},
		handle:        decls("columns"),
	})

	for _, b := range []string{"auto", "avoid", "all", "avoid-page", "page", "left", "right", "column"} {
		l.static("break-before-"+b, pair("break-before", b))
		l.static("break-after-"+b, pair("break-after", b))
	}
	for _, b := range []string{"auto", "avoid", "avoid-page", "avoid-column"} {
		l.static("break-inside-"+b, pair("break-inside", b))
	}
}

func (l *library) tables() {
	l.static("table-auto", pair("table-layout", "auto"))
	l.static("table-fixed", pair("table-layout", "fixed"))
	l.static("caption-top", pair("caption-side", "top"))
	l.static("caption-bottom", pair("caption-side", "bottom"))
	l.static("border-collapse", pair("border-collapse", "collapse"))
	l.static("border-separate", pair("border-collapse", "separate"))

	props := []func() css.Node{
		prop("--tw-border-spacing-x", "0", "<length>"),
		prop("--tw-border-spacing-y", "0", "<length>"),
	}
	spacing := "var(--tw-border-spacing-x) var(--tw-border-spacing-y)"
	l.spacingUtility("border-spacing", []string{"--border-spacing", "--spacing"}, false, false, func(value string) []css.Node {
		return withProperties(props,
			css.Decl("--tw-border-spacing-x", value),
			css.Decl("--tw-border-spacing-y", value),
			css.Decl("border-spacing", spacing),
		)
	})
	for _, axis := range []string{"x", "y"} {
		l.spacingUtility("border-spacing-"+axis, []string{"--border-spacing", "--spacing"}, false, false, func(value string) []css.Node {
			return withProperties(props,
				css.Decl("--tw-border-spacing-"+axis, value),
				css.Decl("border-spacing", spacing),
			)
		})
	}
}
