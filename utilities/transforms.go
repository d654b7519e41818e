package utilities

import (
	"strings"

	"twc/css"
	"twc/theme"
)

const transformChain = "var(--tw-rotate-x,) var(--tw-rotate-y,) var(--tw-rotate-z,) var(--tw-skew-x,) var(--tw-skew-y,)"

func (l *library) origins() {
	for _, o := range []struct{ root, property, themeKey string }{
		{"origin", "transform-origin", "--transform-origin"},
		{"perspective-origin", "perspective-origin", "--perspective-origin"},
	} {
		for _, p := range positionKeywords {
			l.static(o.root+"-"+p.name, pair(o.property, p.value))
		}
		l.functionalUtility(o.root, functionalSpec{
			themeKeys: []string{o.themeKey},
			handle:    decls(o.property),
		})
	}

	l.static("perspective-none", pair("perspective", "none"))
	l.functionalUtility("perspective", functionalSpec{
		themeKeys: []string{"--perspective"},
		handle:    decls("perspective"),
	})
}

func (l *library) translate() {
	translateXY := "var(--tw-translate-x) var(--tw-translate-y)"
	translateXYZ := translateXY + " var(--tw-translate-z)"

	l.static("translate-none", pair("translate", "none"))
	l.static("translate-3d", append(nodesOf(translateProperties), pair("translate", translateXYZ))...)

	both := func(value string) []css.Node {
		return withProperties(translateProperties,
			css.Decl("--tw-translate-x", value),
			css.Decl("--tw-translate-y", value),
			css.Decl("translate", translateXY),
		)
	}
	for _, full := range []struct{ prefix, value string }{{"", "100%"}, {"-", "-100%"}} {
		l.staticFn(full.prefix+"translate-full", func(Candidate, *theme.Theme) []css.Node { return both(full.value) })
	}
	l.spacingUtility("translate", []string{"--translate", "--spacing"}, true, true, both)

	for _, axis := range []string{"x", "y", "z"} {
		variable := "--tw-translate-" + axis
		target := translateXY
		if axis == "z" {
			target = translateXYZ
		}
		handle := func(value string) []css.Node {
			return withProperties(translateProperties,
				css.Decl(variable, value),
				css.Decl("translate", target),
			)
		}
		if axis != "z" {
			for _, full := range []struct{ prefix, value string }{{"", "100%"}, {"-", "-100%"}} {
				l.staticFn(full.prefix+"translate-"+axis+"-full", func(Candidate, *theme.Theme) []css.Node { return handle(full.value) })
			}
		}
		l.spacingUtility("translate-"+axis, []string{"--translate", "--spacing"}, true, axis != "z", handle)
	}
}

func (l *library) scale() {
	scaleXY := "var(--tw-scale-x) var(--tw-scale-y)"
	scaleXYZ := scaleXY + " var(--tw-scale-z)"

	l.static("scale-none", pair("scale", "none"))
	l.static("scale-3d", append(nodesOf(scaleProperties), pair("scale", scaleXYZ))...)

	l.functionalUtility("scale", functionalSpec{
		themeKeys:        []string{"--scale"},
		bareValue:        barePercentage,
		supportsNegative: true,
		suggestValues:    []string{"0", "50", "75", "90", "95", "100", "105", "110", "125", "150"},
		handle: func(value string) []css.Node {
			return withProperties(scaleProperties,
				css.Decl("--tw-scale-x", value),
				css.Decl("--tw-scale-y", value),
				css.Decl("--tw-scale-z", value),
				css.Decl("scale", scaleXY),
			)
		},
	})
	for _, axis := range []string{"x", "y", "z"} {
		target := scaleXY
		if axis == "z" {
			target = scaleXYZ
		}
		l.functionalUtility("scale-"+axis, functionalSpec{
			themeKeys:        []string{"--scale"},
			bareValue:        barePercentage,
			supportsNegative: true,
			suggestValues:    []string{"0", "50", "75", "90", "95", "100", "105", "110", "125", "150"},
			handle: func(value string) []css.Node {
				return withProperties(scaleProperties,
					css.Decl("--tw-scale-"+axis, value),
					css.Decl("scale", target),
				)
			},
		})
	}
}

func (l *library) rotate() {
	l.static("rotate-none", pair("rotate", "none"))
	l.functionalUtility("rotate", functionalSpec{
		themeKeys:        []string{"--rotate"},
		bareValue:        bareDegrees,
		supportsNegative: true,
		suggestValues:    []string{"0", "1", "2", "3", "6", "12", "45", "90", "180"},
		handle:           decls("rotate"),
	})
	for _, axis := range []string{"x", "y", "z"} {
		fn := "rotate" + strings.ToUpper(axis)
		l.functionalUtility("rotate-"+axis, functionalSpec{
			themeKeys:        []string{"--rotate"},
			bareValue:        bareDegrees,
			supportsNegative: true,
			suggestValues:    []string{"0", "1", "2", "3", "6", "12", "45", "90", "180"},
			handle: func(value string) []css.Node {
				return withProperties(transformProperties,
					css.Decl("--tw-rotate-"+axis, fn+"("+value+")"),
					css.Decl("transform", transformChain),
				)
			},
		})
	}
}

func (l *library) skew() {
	l.functionalUtility("skew", functionalSpec{
		themeKeys:        []string{"--skew"},
		bareValue:        bareDegrees,
		supportsNegative: true,
		suggestValues:    []string{"0", "1", "2", "3", "6", "12"},
		handle: func(value string) []css.Node {
			return withProperties(transformProperties,
				css.Decl("--tw-skew-x", "skewX("+value+")"),
				css.Decl("--tw-skew-y", "skewY("+value+")"),
				css.Decl("transform", transformChain),
			)
		},
	})
	for _, axis := range []string{"x", "y"} {
		fn := "skew" + strings.ToUpper(axis)
		l.functionalUtility("skew-"+axis, functionalSpec{
			themeKeys:        []string{"--skew"},
			bareValue:        bareDegrees,
			supportsNegative: true,
			suggestValues:    []string{"0", "1", "2", "3", "6", "12"},
			handle: func(value string) []css.Node {
				return withProperties(transformProperties,
					css.Decl("--tw-skew-"+axis, fn+"("+value+")"),
					css.Decl("transform", transformChain),
				)
			},
		})
	}
}

func (l *library) transform() {
	l.static("transform", append(nodesOf(transformProperties), pair("transform", transformChain))...)
	l.static("transform-cpu", pair("transform", transformChain))
	l.static("transform-gpu", pair("transform", "translateZ(0) "+transformChain))
	l.static("transform-none", pair("transform", "none"))
	l.functionalUtility("transform", functionalSpec{
		themeKeys: []string{"--transform"},
		handle:    decls("transform"),
	})

	l.static("transform-3d", pair("transform-style", "preserve-3d"))
	l.static("transform-flat", pair("transform-style", "flat"))
	l.static("transform-content", pair("transform-box", "content-box"))
	l.static("transform-border", pair("transform-box", "border-box"))
	l.static("transform-fill", pair("transform-box", "fill-box"))
	l.static("transform-stroke", pair("transform-box", "stroke-box"))
	l.static("transform-view", pair("transform-box", "view-box"))

	l.static("backface-visible", pair("backface-visibility", "visible"))
	l.static("backface-hidden", pair("backface-visibility", "hidden"))
}

// nodesOf wraps @property builders for static declaration lists.
func nodesOf(props []func() css.Node) []staticDecl {
	result := make([]staticDecl, 0, len(props))
	for _, p := range props {
		result = append(result, nodeOf(p))
	}
	return result
}
