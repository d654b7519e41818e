package utilities

import (
	"strings"

	"twc/css"
	"twc/theme"
	"twc/values"
)

const (
	filterChain         = "var(--tw-blur,) var(--tw-brightness,) var(--tw-contrast,) var(--tw-grayscale,) var(--tw-hue-rotate,) var(--tw-invert,) var(--tw-saturate,) var(--tw-sepia,) var(--tw-drop-shadow,)"
	backdropFilterChain = "var(--tw-backdrop-blur,) var(--tw-backdrop-brightness,) var(--tw-backdrop-contrast,) var(--tw-backdrop-grayscale,) var(--tw-backdrop-hue-rotate,) var(--tw-backdrop-invert,) var(--tw-backdrop-opacity,) var(--tw-backdrop-saturate,) var(--tw-backdrop-sepia,)"
)

// filterFunc describes one filter function shared by filter and
// backdrop-filter families.
type filterFunc struct {
	name         string
	themeKey     string
	defaultValue ValueOption
	bareValue    ValueOption
	negative     bool
	suggest      []string
	backdropOnly bool
}

var filterFuncs = []filterFunc{
	{name: "blur", themeKey: "--blur"},
	{name: "brightness", themeKey: "--brightness", bareValue: barePercentage,
		suggest: []string{"0", "50", "75", "90", "95", "100", "105", "110", "125", "150", "200"}},
	{name: "contrast", themeKey: "--contrast", bareValue: barePercentage,
		suggest: []string{"0", "50", "75", "100", "125", "150", "200"}},
	{name: "grayscale", themeKey: "--grayscale", defaultValue: Literal("100%"), bareValue: barePercentage,
		suggest: []string{"0", "25", "50", "75", "100"}},
	{name: "hue-rotate", themeKey: "--hue-rotate", bareValue: bareDegrees, negative: true,
		suggest: []string{"0", "15", "30", "60", "90", "180"}},
	{name: "invert", themeKey: "--invert", defaultValue: Literal("100%"), bareValue: barePercentage,
		suggest: []string{"0", "25", "50", "75", "100"}},
	{name: "opacity", themeKey: "--opacity", bareValue: bareOpacity, backdropOnly: true,
		suggest: []string{"0", "5", "10", "20", "25", "30", "40", "50", "60", "70", "75", "80", "90", "95", "100"}},
	{name: "saturate", themeKey: "--saturate", bareValue: barePercentage,
		suggest: []string{"0", "50", "100", "150", "200"}},
	{name: "sepia", themeKey: "--sepia", defaultValue: Literal("100%"), bareValue: barePercentage,
		suggest: []string{"0", "50", "100"}},
}

func (l *library) filters() {
	for _, f := range []struct {
		prefix     string
		properties []string
		chain      string
		props      []func() css.Node
	}{
		{"", []string{"filter"}, filterChain, filterProperties},
		{"backdrop-", []string{"-webkit-backdrop-filter", "backdrop-filter"}, backdropFilterChain, backdropFilterProperties},
	} {
		root := f.prefix + "filter"
		l.static(root, append(nodesOf(f.props), pairs(f.properties, f.chain)...)...)
		l.static(root+"-none", pairs(f.properties, "none")...)
		l.functionalUtility(root, functionalSpec{
			themeKeys: []string{"--" + root},
			handle:    decls(f.properties...),
		})

		for _, fn := range filterFuncs {
			if fn.backdropOnly && f.prefix == "" {
				continue
			}
			variable := "--tw-" + f.prefix + fn.name
			handle := func(value string) []css.Node {
				nodes := []css.Node{css.Decl(variable, fn.name+"("+value+")")}
				for _, p := range f.properties {
					nodes = append(nodes, css.Decl(p, f.chain))
				}
				return withProperties(f.props, nodes...)
			}
			themeKeys := []string{fn.themeKey}
			if f.prefix != "" {
				themeKeys = []string{"--backdrop-" + strings.TrimPrefix(fn.themeKey, "--"), fn.themeKey}
			}
			if fn.name == "blur" {
				l.staticFn(f.prefix+"blur-none", func(Candidate, *theme.Theme) []css.Node { return handle("0") })
			}
			l.functionalUtility(f.prefix+fn.name, functionalSpec{
				themeKeys:        themeKeys,
				defaultValue:     fn.defaultValue,
				bareValue:        fn.bareValue,
				supportsNegative: fn.negative,
				suggestValues:    fn.suggest,
				handle:           handle,
			})
		}
	}

	l.dropShadow()
}

// pairs sets every property to value.
func pairs(properties []string, value string) []staticDecl {
	result := make([]staticDecl, 0, len(properties))
	for _, p := range properties {
		result = append(result, pair(p, value))
	}
	return result
}

// dropShadow applies every comma separated layer of theme value as its own
// drop-shadow() function.
func (l *library) dropShadow() {
	colorKeys := []string{"--drop-shadow-color", "--color"}
	props := append(append([]func() css.Node{}, filterProperties...), prop("--tw-drop-shadow-color", "", ""))
	shadow := func(value string) []css.Node {
		var fns []string
		for _, layer := range css.SplitTopLevel(replaceShadowColors(value, "--tw-drop-shadow-color"), ',') {
			fns = append(fns, "drop-shadow("+layer+")")
		}
		return withProperties(props,
			css.Decl("--tw-drop-shadow", strings.Join(fns, " ")),
			css.Decl("filter", filterChain),
		)
	}
	color := func(value string) []css.Node {
		return withProperties(props, css.Decl("--tw-drop-shadow-color", value))
	}

	l.staticFn("drop-shadow-none", func(Candidate, *theme.Theme) []css.Node {
		return withProperties(props,
			css.Decl("--tw-drop-shadow", "drop-shadow(0 0 #0000)"),
			css.Decl("filter", filterChain),
		)
	})
	l.functional("drop-shadow", func(c Candidate, th *theme.Theme) []css.Node {
		if c.Negative {
			return nil
		}
		v, ok := c.Value.Get()
		if !ok {
			if c.Modifier.IsPresent() {
				return nil
			}
			if value, ok := th.ResolveValue("", []string{"--drop-shadow"}); ok {
				return shadow(value)
			}
			return shadow("0 1px 2px rgb(0 0 0 / 0.1), 0 1px 1px rgb(0 0 0 / 0.06)")
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
			return shadow(v.Value)
		}
		if value, ok := resolveThemeColor(c, th, colorKeys); ok {
			return color(value)
		}
		if c.Modifier.IsPresent() {
			return nil
		}
		if value, ok := th.ResolveValue(v.Value, []string{"--drop-shadow"}); ok {
			return shadow(value)
		}
		return nil
	})
	l.suggest("drop-shadow", func() []SuggestionGroup {
		return []SuggestionGroup{
			colorSuggestions(l.th, colorKeys),
			{Values: sortedValues(l.th.KeysInNamespaces([]string{"--drop-shadow"})), HasDefaultValue: true},
		}
	})
}
