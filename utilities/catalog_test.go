package utilities_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/samber/mo"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"twc/css"
	"twc/theme"
	"twc/utilities"
	"twc/values"
)

func modifier(value string) mo.Option[utilities.CandidateModifier] {
	return mo.Some(utilities.CandidateModifier{Kind: utilities.ValueKindNamed, Value: value})
}

func arbitraryModifier(value string) mo.Option[utilities.CandidateModifier] {
	return mo.Some(utilities.CandidateModifier{Kind: utilities.ValueKindArbitrary, Value: value})
}

func fraction(value string) mo.Option[utilities.CandidateValue] {
	return mo.Some(utilities.CandidateValue{Kind: utilities.ValueKindNamed, Value: value, Fraction: value})
}

func catalog(t *testing.T) (*utilities.Registry, *theme.Theme) {
	t.Helper()
	th, err := theme.Default(zap.NewNop())
	if err != nil {
		t.Fatalf("theme.Default() error = %v", err)
	}
	r := utilities.NewRegistry(zaptest.NewLogger(t), true)
	if err := utilities.Register(r, th); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	return r, th
}

func resolve(r *utilities.Registry, th *theme.Theme, c utilities.Candidate) []css.Node {
	name := c.Root
	if c.Kind == utilities.KindArbitrary {
		name = utilities.ArbitraryProperty
	}
	s, ok := r.Lookup(name, c.Kind)
	if !ok {
		return nil
	}
	return s.Resolve(c, th)
}

// render prints declarations of utility output skipping hoisted @property
// scaffolding.
func render(nodes []css.Node) string {
	var parts []string
	css.Walk(nodes, func(n css.Node) css.WalkAction {
		switch v := n.(type) {
		case *css.AtRoot:
			return css.WalkSkipChildren
		case *css.Declaration:
			parts = append(parts, v.Property+": "+v.Value)
		}
		return css.WalkContinue
	})
	return strings.Join(parts, "; ")
}

func functional(root string, value mo.Option[utilities.CandidateValue]) utilities.Candidate {
	return utilities.Candidate{Root: root, Kind: utilities.KindFunctional, Value: value}
}

func static(root string) utilities.Candidate {
	return utilities.Candidate{Root: root, Kind: utilities.KindStatic}
}

func negative(c utilities.Candidate) utilities.Candidate {
	c.Negative = true
	return c
}

func withModifier(c utilities.Candidate, m mo.Option[utilities.CandidateModifier]) utilities.Candidate {
	c.Modifier = m
	return c
}

func TestRegisterTwice(t *testing.T) {
	r, th := catalog(t)

	if !r.Has("flex", utilities.KindStatic) || !r.Has("flex", utilities.KindFunctional) {
		t.Error("flex must be both static and functional")
	}

	err := utilities.Register(r, th)
	if !errors.Is(err, utilities.ErrDuplicateUtility) {
		t.Fatalf("second Register() error = %v, want ErrDuplicateUtility", err)
	}
	if n := len(multierr.Errors(err)); n < 100 {
		t.Errorf("second Register() reported %d duplicates, want every family", n)
	}

	lenient := utilities.NewRegistry(zap.NewNop(), false)
	if err := utilities.Register(lenient, th); err != nil {
		t.Fatal(err)
	}
	if err := utilities.Register(lenient, th); err != nil {
		t.Errorf("non-strict Register() twice error = %v", err)
	}
}

func TestScenarios(t *testing.T) {
	t.Run("theme color", func(t *testing.T) {
		r, th := catalog(t)
		got := render(resolve(r, th, functional("bg", utilities.Named("red-500"))))
		if got != "background-color: var(--color-red-500)" {
			t.Errorf("bg-red-500 = %q", got)
		}
		if !th.IsUsed("--color-red-500") {
			t.Error("--color-red-500 is not marked used")
		}
		if th.IsUsed("--color-red-600") {
			t.Error("--color-red-600 is marked used")
		}
	})

	t.Run("inline theme color", func(t *testing.T) {
		th := theme.New(zap.NewNop())
		if err := th.Add("--color-red-500", "#ef4444", theme.FlagInline); err != nil {
			t.Fatal(err)
		}
		r := utilities.NewRegistry(zap.NewNop(), true)
		if err := utilities.Register(r, th); err != nil {
			t.Fatal(err)
		}
		if got := render(resolve(r, th, functional("bg", utilities.Named("red-500")))); got != "background-color: #ef4444" {
			t.Errorf("bg-red-500 = %q", got)
		}
	})

	r, th := catalog(t)
	tests := []struct {
		name string
		c    utilities.Candidate
		want string
	}{
		{"opacity modifier", withModifier(functional("bg", utilities.Named("red-500")), arbitraryModifier("50%")),
			"background-color: color-mix(in srgb, var(--color-red-500) 50%, transparent)"},
		{"negative arbitrary", negative(functional("mt", utilities.Arbitrary("10px"))), "margin-top: calc(10px * -1)"},
		{"inferred image", functional("bg", utilities.Arbitrary("url(x.png)")), "background-image: url(x.png)"},
		{"unknown root", functional("frobnicate", utilities.Named("4")), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := render(resolve(r, th, tt.c)); got != tt.want {
				t.Errorf("%s = %q, want %q", tt.c, got, tt.want)
			}
		})
	}
}

func TestFamilies(t *testing.T) {
	const (
		spacing4 = "calc(var(--spacing) * 4)"
		shadows  = "var(--tw-inset-shadow), var(--tw-inset-ring-shadow), var(--tw-ring-offset-shadow), var(--tw-ring-shadow), var(--tw-shadow)"
		filters  = "var(--tw-blur,) var(--tw-brightness,) var(--tw-contrast,) var(--tw-grayscale,) var(--tw-hue-rotate,) var(--tw-invert,) var(--tw-saturate,) var(--tw-sepia,) var(--tw-drop-shadow,)"
	)

	r, th := catalog(t)
	tests := []struct {
		c    utilities.Candidate
		want string
	}{
		// spacing and sizing
		{functional("mt", utilities.Named("4")), "margin-top: " + spacing4},
		{negative(functional("mt", utilities.Named("4"))), "margin-top: calc(" + spacing4 + " * -1)"},
		{static("mt-auto"), "margin-top: auto"},
		{functional("p", utilities.Named("4.5")), "padding: calc(var(--spacing) * 4.5)"},
		{functional("p", utilities.Named("4.3")), ""},
		{negative(functional("p", utilities.Named("4"))), ""},
		{functional("mx", utilities.Named("px")), ""},
		{functional("w", fraction("1/2")), "width: calc(1/2 * 100%)"},
		{functional("w", utilities.Named("xs")), "width: var(--container-xs)"},
		{static("w-screen"), "width: 100vw"},
		{functional("size", utilities.Arbitrary("3rem")), "width: 3rem; height: 3rem"},
		{functional("gap-x", utilities.Named("2")), "column-gap: calc(var(--spacing) * 2)"},
		{functional("space-x", utilities.Named("4")),
			"--tw-space-x-reverse: 0; margin-inline-start: calc(" + spacing4 + " * var(--tw-space-x-reverse)); " +
				"margin-inline-end: calc(" + spacing4 + " * calc(1 - var(--tw-space-x-reverse)))"},

		// layout
		{functional("z", utilities.Named("10")), "z-index: 10"},
		{negative(functional("z", utilities.Named("10"))), "z-index: calc(10 * -1)"},
		{functional("inset-x", fraction("1/3")), "inset-inline: calc(1/3 * 100%)"},
		{static("-inset-full"), "inset: -100%"},
		{negative(static("inset-full")), ""},
		{functional("aspect", fraction("16/9")), "aspect-ratio: 16 / 9"},
		{functional("aspect", utilities.Named("video")), "aspect-ratio: var(--aspect-video)"},
		{functional("col-span", utilities.Named("2")), "grid-column: span 2 / span 2"},
		{functional("grid-cols", utilities.Named("3")), "grid-template-columns: repeat(3, minmax(0, 1fr))"},
		{functional("grid-cols", utilities.Named("0")), ""},
		{static("flex"), "display: flex"},
		{functional("flex", utilities.Named("1")), "flex: 1"},
		{functional("grow", mo.None[utilities.CandidateValue]()), "flex-grow: 1"},
		{functional("line-clamp", utilities.Named("3")),
			"overflow: hidden; display: -webkit-box; -webkit-box-orient: vertical; -webkit-line-clamp: 3"},
		{static("sr-only"),
			"position: absolute; width: 1px; height: 1px; padding: 0; margin: -1px; overflow: hidden; " +
				"clip-path: inset(50%); white-space: nowrap; border-width: 0"},

		// typography
		{functional("text", utilities.Named("sm")),
			"font-size: var(--text-sm); line-height: var(--tw-leading, var(--text-sm--line-height))"},
		{withModifier(functional("text", utilities.Named("sm")), modifier("6")),
			"font-size: var(--text-sm); line-height: calc(var(--spacing) * 6)"},
		{withModifier(functional("text", utilities.Named("red-500")), modifier("50")),
			"color: color-mix(in srgb, var(--color-red-500) 50%, transparent)"},
		{functional("text", utilities.Arbitrary("14px")), "font-size: 14px"},
		{functional("text", utilities.Arbitrary("#fff")), "color: #fff"},
		{functional("font", utilities.Named("sans")), "font-family: var(--font-sans)"},
		{functional("font", utilities.Named("bold")),
			"--tw-font-weight: var(--font-weight-bold); font-weight: var(--font-weight-bold)"},
		{functional("font", utilities.Arbitrary("Inter, sans-serif")), "font-family: Inter, sans-serif"},
		{functional("leading", utilities.Named("tight")), "--tw-leading: var(--leading-tight); line-height: var(--leading-tight)"},
		{negative(functional("tracking", utilities.Named("wide"))),
			"--tw-tracking: calc(var(--tracking-wide) * -1); letter-spacing: calc(var(--tracking-wide) * -1)"},
		{functional("decoration", utilities.Named("2")), "text-decoration-thickness: 2px"},
		{functional("decoration", utilities.Named("current")), "text-decoration-color: currentcolor"},

		// backgrounds
		{functional("bg", utilities.Arbitrary("#0088cc")), "background-color: #0088cc"},
		{functional("bg", utilities.Arbitrary("center top")), "background-position: center top"},
		{functional("bg", utilities.Typed(values.DataTypeLength, "var(--x)")), "background-size: var(--x)"},
		{functional("bg", utilities.Arbitrary("var(--x)")), "background-color: var(--x)"},
		{withModifier(functional("bg", utilities.Named("red-500")), modifier("half")), ""},
		{functional("bg", utilities.Named("transparent")), "background-color: transparent"},
		{static("bg-linear-to-r"),
			"--tw-gradient-position: to right in oklab; background-image: linear-gradient(var(--tw-gradient-stops))"},
		{functional("bg-linear", utilities.Named("45")),
			"--tw-gradient-position: 45deg in oklab; background-image: linear-gradient(var(--tw-gradient-stops))"},
		{negative(functional("bg-conic", utilities.Named("90"))),
			"--tw-gradient-position: from calc(90deg * -1) in oklab; background-image: conic-gradient(var(--tw-gradient-stops))"},
		{functional("from", utilities.Named("red-500")),
			"--tw-gradient-from: var(--color-red-500); --tw-gradient-stops: var(--tw-gradient-via-stops, " +
				"var(--tw-gradient-position), var(--tw-gradient-from) var(--tw-gradient-from-position), " +
				"var(--tw-gradient-to) var(--tw-gradient-to-position))"},
		{functional("via", utilities.Named("10%")), "--tw-gradient-via-position: 10%"},

		// borders and effects
		{functional("border", mo.None[utilities.CandidateValue]()), "border-style: var(--tw-border-style); border-width: 1px"},
		{functional("border-x", utilities.Arbitrary("3px")), "border-inline-style: var(--tw-border-style); border-inline-width: 3px"},
		{functional("border-t", utilities.Named("red-500")), "border-top-color: var(--color-red-500)"},
		{static("border-dashed"), "--tw-border-style: dashed; border-style: dashed"},
		{functional("rounded", mo.None[utilities.CandidateValue]()), "border-radius: 0.25rem"},
		{functional("rounded-t", utilities.Named("lg")),
			"border-top-left-radius: var(--radius-lg); border-top-right-radius: var(--radius-lg)"},
		{functional("shadow", utilities.Arbitrary("0 0 2px red")),
			"--tw-shadow: 0 0 2px var(--tw-shadow-color, red); box-shadow: " + shadows},
		{functional("shadow", utilities.Named("red-500")), "--tw-shadow-color: var(--color-red-500)"},
		{functional("ring", mo.None[utilities.CandidateValue]()),
			"--tw-ring-shadow: var(--tw-ring-inset,) 0 0 0 calc(1px + var(--tw-ring-offset-width)) " +
				"var(--tw-ring-color, currentcolor); box-shadow: " + shadows},
		{functional("ring-offset", mo.None[utilities.CandidateValue]()), ""},
		{functional("opacity", utilities.Named("50")), "opacity: 50%"},
		{functional("opacity", utilities.Named("101")), ""},

		// transforms, filters, transitions
		{functional("translate-x", utilities.Named("4")),
			"--tw-translate-x: " + spacing4 + "; translate: var(--tw-translate-x) var(--tw-translate-y)"},
		{functional("rotate", utilities.Named("45")), "rotate: 45deg"},
		{negative(functional("rotate", utilities.Named("45"))), "rotate: calc(45deg * -1)"},
		{functional("scale", utilities.Named("50")),
			"--tw-scale-x: 50%; --tw-scale-y: 50%; --tw-scale-z: 50%; scale: var(--tw-scale-x) var(--tw-scale-y)"},
		{functional("blur", utilities.Named("sm")), "--tw-blur: blur(var(--blur-sm)); filter: " + filters},
		{functional("grayscale", mo.None[utilities.CandidateValue]()), "--tw-grayscale: grayscale(100%); filter: " + filters},
		{functional("duration", utilities.Named("300")), "--tw-duration: 300ms; transition-duration: 300ms"},
		{functional("animate", utilities.Named("spin")), "animation: spin 1s linear infinite"},
		{functional("ease", utilities.Named("in")), "--tw-ease: var(--ease-in); transition-timing-function: var(--ease-in)"},
		{functional("content", utilities.Arbitrary("'x'")), "--tw-content: 'x'; content: var(--tw-content)"},
		{functional("content", utilities.Named("x")), ""},

		// arbitrary properties
		{utilities.Candidate{Kind: utilities.KindArbitrary, Property: "color", Value: utilities.Arbitrary("red")}, "color: red"},
		{utilities.Candidate{Kind: utilities.KindArbitrary, Property: "color", Value: utilities.Arbitrary("red"), Modifier: modifier("50")},
			"color: color-mix(in srgb, red 50%, transparent)"},
	}
	for _, tt := range tests {
		if got := render(resolve(r, th, tt.c)); got != tt.want {
			t.Errorf("%s = %q, want %q", tt.c, got, tt.want)
		}
	}
}

func TestStaticRejectsValues(t *testing.T) {
	r, th := catalog(t)
	for _, c := range []utilities.Candidate{
		negative(static("mt-auto")),
		withModifier(static("flex"), modifier("50")),
		{Root: "hidden", Kind: utilities.KindStatic, Value: utilities.Named("x")},
	} {
		if nodes := resolve(r, th, c); len(nodes) != 0 {
			t.Errorf("%s resolved to %q, want nothing", c, render(nodes))
		}
	}
}

func TestNegativeSupport(t *testing.T) {
	r, th := catalog(t)
	positive := []string{"mt", "inset", "translate-x", "rotate", "skew", "z", "order", "scroll-m", "indent", "hue-rotate"}
	unsigned := []string{"p", "w", "h", "gap", "opacity", "blur", "duration", "text", "bg", "border", "rounded"}

	for _, root := range positive {
		if nodes := resolve(r, th, negative(functional(root, utilities.Arbitrary("2px")))); len(nodes) == 0 {
			t.Errorf("-%s-[2px] resolved to nothing", root)
		}
	}
	for _, root := range unsigned {
		if nodes := resolve(r, th, negative(functional(root, utilities.Arbitrary("2px")))); len(nodes) != 0 {
			t.Errorf("-%s-[2px] = %q, want nothing", root, render(nodes))
		}
	}
}

func TestPropertyScaffolding(t *testing.T) {
	r, th := catalog(t)
	nodes := resolve(r, th, functional("translate-x", utilities.Named("4")))

	var properties []string
	css.Walk(nodes, func(n css.Node) css.WalkAction {
		if at, ok := n.(*css.AtRule); ok && at.Name == "property" {
			properties = append(properties, at.Params)
		}
		return css.WalkContinue
	})
	if strings.Join(properties, " ") != "--tw-translate-x --tw-translate-y --tw-translate-z" {
		t.Errorf("@property rules = %v", properties)
	}
	if _, ok := nodes[0].(*css.AtRoot); !ok {
		t.Errorf("@property is not hoisted, got %T", nodes[0])
	}
}

func TestContainer(t *testing.T) {
	r, th := catalog(t)
	nodes := resolve(r, th, static("container"))

	if d, ok := nodes[0].(*css.Declaration); !ok || d.Value != "100%" {
		t.Fatalf("container first node = %#v", nodes[0])
	}
	var media []string
	for _, n := range nodes[1:] {
		if at, ok := n.(*css.AtRule); ok {
			media = append(media, at.Params)
		}
	}
	want := "(width >= 40rem),(width >= 48rem),(width >= 64rem),(width >= 80rem),(width >= 96rem)"
	if strings.Join(media, ",") != want {
		t.Errorf("container media = %v", media)
	}
}

func TestSuggestions(t *testing.T) {
	r, _ := catalog(t)

	groups := r.Suggestions("mt")
	if len(groups) != 1 || !groups[0].SupportsNegative {
		t.Fatalf("Suggestions(mt) = %+v", groups)
	}
	if groups[0].Values[0] != "0" {
		t.Errorf("mt values not naturally ordered: %v", groups[0].Values[:5])
	}

	bg := r.Suggestions("bg")
	if len(bg) == 0 || len(bg[0].Modifiers) == 0 {
		t.Fatalf("Suggestions(bg) = %+v", bg)
	}
	if !containsString(bg[0].Values, "red-500") || !containsString(bg[0].Values, "current") {
		t.Errorf("bg values %v miss colors", bg[0].Values)
	}

	if g := r.Suggestions("grow"); len(g) != 1 || !g[0].HasDefaultValue {
		t.Errorf("Suggestions(grow) = %+v", g)
	}
	if g := r.Suggestions("w"); len(g) != 1 || !g[0].SupportsFractions {
		t.Errorf("Suggestions(w) = %+v", g)
	}
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
