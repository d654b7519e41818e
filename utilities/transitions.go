package utilities

import (
	"strings"

	"twc/css"
	"twc/theme"
)

var transitionProperties = map[string]string{
	"": strings.Join([]string{
		"color", "background-color", "border-color", "outline-color", "text-decoration-color",
		"fill", "stroke", "--tw-gradient-from", "--tw-gradient-via", "--tw-gradient-to",
		"opacity", "box-shadow", "transform", "translate", "scale", "rotate", "filter",
		"-webkit-backdrop-filter", "backdrop-filter", "display", "content-visibility", "overlay", "pointer-events",
	}, ", "),
	"all": "all",
	"colors": strings.Join([]string{
		"color", "background-color", "border-color", "outline-color", "text-decoration-color",
		"fill", "stroke", "--tw-gradient-from", "--tw-gradient-via", "--tw-gradient-to",
	}, ", "),
	"opacity":   "opacity",
	"shadow":    "box-shadow",
	"transform": "transform, translate, scale, rotate",
}

var (
	durationProperties = []func() css.Node{prop("--tw-duration", "", "")}
	easeProperties     = []func() css.Node{prop("--tw-ease", "", "")}
)

// transitionTiming returns timing function and duration referencing theme
// defaults, overridable by ease and duration utilities.
func transitionTiming(th *theme.Theme) []css.Node {
	timing, ok := th.Resolve("", []string{"--default-transition-timing-function"})
	if !ok {
		timing = "ease"
	}
	duration, ok := th.Resolve("", []string{"--default-transition-duration"})
	if !ok {
		duration = "0s"
	}
	return []css.Node{
		css.Decl("transition-timing-function", "var(--tw-ease, "+timing+")"),
		css.Decl("transition-duration", "var(--tw-duration, "+duration+")"),
	}
}

func (l *library) transitions() {
	for name, properties := range transitionProperties {
		root := "transition"
		if name != "" {
			root += "-" + name
		}
		l.staticFn(root, func(_ Candidate, th *theme.Theme) []css.Node {
			return append([]css.Node{css.Decl("transition-property", properties)}, transitionTiming(th)...)
		})
	}
	l.static("transition-none", pair("transition-property", "none"))
	l.functional("transition", func(c Candidate, th *theme.Theme) []css.Node {
		v, ok := c.Value.Get()
		if !ok || c.Negative || c.Modifier.IsPresent() {
			return nil
		}
		properties := v.Value
		if v.Kind == ValueKindNamed {
			if properties, ok = th.ResolveValue(v.Value, []string{"--transition-property"}); !ok {
				return nil
			}
		}
		return append([]css.Node{css.Decl("transition-property", properties)}, transitionTiming(th)...)
	})
	l.suggest("transition", func() []SuggestionGroup {
		return []SuggestionGroup{{Values: sortedValues(l.th.KeysInNamespaces([]string{"--transition-property"}))}}
	})

	l.static("transition-discrete", pair("transition-behavior", "allow-discrete"))
	l.static("transition-normal", pair("transition-behavior", "normal"))

	l.staticFn("duration-initial", func(Candidate, *theme.Theme) []css.Node {
		return withProperties(durationProperties, css.Decl("--tw-duration", "initial"))
	})
	l.functionalUtility("duration", functionalSpec{
		themeKeys:     []string{"--transition-duration"},
		bareValue:     bareMilliseconds,
		suggestValues: []string{"75", "100", "150", "200", "300", "500", "700", "1000"},
		handle: func(value string) []css.Node {
			return withProperties(durationProperties,
				css.Decl("--tw-duration", value),
				css.Decl("transition-duration", value),
			)
		},
	})

	l.functionalUtility("delay", functionalSpec{
		themeKeys:     []string{"--transition-delay"},
		bareValue:     bareMilliseconds,
		suggestValues: []string{"75", "100", "150", "200", "300", "500", "700", "1000"},
		handle:        decls("transition-delay"),
	})

	easeHandle := func(value string) []css.Node {
		return withProperties(easeProperties,
			css.Decl("--tw-ease", value),
			css.Decl("transition-timing-function", value),
		)
	}
	l.staticFn("ease-linear", func(Candidate, *theme.Theme) []css.Node { return easeHandle("linear") })
	l.staticFn("ease-initial", func(Candidate, *theme.Theme) []css.Node {
		return withProperties(easeProperties, css.Decl("--tw-ease", "initial"))
	})
	l.functionalUtility("ease", functionalSpec{
		themeKeys: []string{"--ease"},
		handle:    easeHandle,
	})
}

func (l *library) animation() {
	l.static("animate-none", pair("animation", "none"))
	l.functionalUtility("animate", functionalSpec{
		themeKeys: []string{"--animate"},
		handle:    decls("animation"),
	})

	contentProperties := []func() css.Node{prop("--tw-content", `""`, "")}
	l.staticFn("content-none", func(Candidate, *theme.Theme) []css.Node {
		return withProperties(contentProperties,
			css.Decl("--tw-content", "none"),
			css.Decl("content", "none"),
		)
	})
	l.functional("content", func(c Candidate, _ *theme.Theme) []css.Node {
		v, ok := c.Value.Get()
		if !ok || v.Kind != ValueKindArbitrary || c.Negative || c.Modifier.IsPresent() {
			return nil
		}
		return withProperties(contentProperties,
			css.Decl("--tw-content", v.Value),
			css.Decl("content", "var(--tw-content)"),
		)
	})
}
