package utilities

import (
	"sort"
	"strconv"
	"strings"

	"github.com/maruel/natural"
	"github.com/samber/lo"
	"go.uber.org/multierr"

	"twc/css"
	"twc/theme"
	"twc/values"
)

// ValueOption is a value source of a functional utility: either a literal
// or a value computed from the candidate.
type ValueOption interface {
	valueOption()
}

// Literal is a fixed value.
type Literal string

// Computed derives value from candidate value and theme. Returning false
// means the value cannot be used.
type Computed func(v CandidateValue, th *theme.Theme) (string, bool)

func (Literal) valueOption()  {}
func (Computed) valueOption() {}

func evaluate(opt ValueOption, v CandidateValue, th *theme.Theme) (string, bool) {
	switch o := opt.(type) {
	case Literal:
		return string(o), true
	case Computed:
		return o(v, th)
	}
	return "", false
}

// staticDecl is a declaration of a static utility: either a property/value
// pair or a callback producing shared nodes (@property scaffolding).
type staticDecl struct {
	property string
	value    string
	build    func() css.Node
}

func pair(property, value string) staticDecl {
	return staticDecl{property: property, value: value}
}

func nodeOf(build func() css.Node) staticDecl {
	return staticDecl{build: build}
}

// functionalSpec describes functional utility resolved with the shared
// algorithm.
type functionalSpec struct {
	themeKeys         []string
	defaultValue      ValueOption // used when candidate has no value
	bareValue         ValueOption // used when named value is not in theme
	supportsNegative  bool
	supportsFractions bool
	suggestValues     []string // bare values offered for completion
	handle            func(value string) []css.Node
}

// colorSpec describes functional utility taking colors.
type colorSpec struct {
	themeKeys []string
	handle    func(value string) []css.Node
}

// library registers utility families into registry collecting all
// configuration errors.
type library struct {
	r   *Registry
	th  *theme.Theme
	err error
}

func (l *library) static(name string, decls ...staticDecl) {
	l.staticFn(name, func(c Candidate, _ *theme.Theme) []css.Node {
		nodes := make([]css.Node, 0, len(decls))
		for _, d := range decls {
			if d.build != nil {
				nodes = append(nodes, d.build())
				continue
			}
			nodes = append(nodes, css.Decl(d.property, d.value))
		}
		return nodes
	})
}

// staticFn registers static utility; negated candidates never match, static
// utilities have no numeric axis.
func (l *library) staticFn(name string, fn func(c Candidate, th *theme.Theme) []css.Node) {
	l.err = multierr.Append(l.err, l.r.Static(name, func(c Candidate, th *theme.Theme) []css.Node {
		if c.Negative || c.Value.IsPresent() || c.Modifier.IsPresent() {
			return nil
		}
		return fn(c, th)
	}))
}

func (l *library) functional(name string, fn ResolveFunc) {
	l.err = multierr.Append(l.err, l.r.Functional(name, fn))
}

func (l *library) suggest(name string, fn SuggestFunc) {
	l.r.Suggest(name, fn)
}

// functionalUtility registers utility resolved in order: default value when
// candidate has no value, literal arbitrary value, theme lookup, fraction,
// bare value handler. Negation is applied last and only when supported.
func (l *library) functionalUtility(name string, spec functionalSpec) {
	l.functional(name, func(c Candidate, th *theme.Theme) []css.Node {
		if c.Negative && !spec.supportsNegative {
			return nil
		}

		var (
			value string
			ok    bool
		)
		v, hasValue := c.Value.Get()
		switch {
		case !hasValue:
			if c.Modifier.IsPresent() {
				return nil
			}
			if spec.defaultValue != nil {
				value, ok = evaluate(spec.defaultValue, CandidateValue{}, th)
			} else {
				value, ok = th.Resolve("", spec.themeKeys)
			}
		case v.Kind == ValueKindArbitrary:
			if c.Modifier.IsPresent() {
				return nil
			}
			value, ok = v.Value, true
		default:
			if c.Modifier.IsPresent() && v.Fraction == "" {
				return nil
			}
			value, ok = th.Resolve(lo.Ternary(v.Fraction != "", v.Fraction, v.Value), spec.themeKeys)
			if !ok && spec.supportsFractions && v.Fraction != "" && values.IsFraction(v.Fraction) {
				value, ok = "calc("+v.Fraction+" * 100%)", true
			}
			if !ok && spec.bareValue != nil {
				value, ok = evaluate(spec.bareValue, v, th)
			}
		}
		if !ok {
			return nil
		}

		if c.Negative {
			value = values.ApplyNegative(value)
		}
		return spec.handle(value)
	})

	l.suggest(name, func() []SuggestionGroup {
		return []SuggestionGroup{{
			Values:            sortedValues(append(l.th.KeysInNamespaces(spec.themeKeys), spec.suggestValues...)),
			SupportsNegative:  spec.supportsNegative,
			SupportsFractions: spec.supportsFractions,
			HasDefaultValue:   spec.defaultValue != nil,
		}}
	})
}

// colorUtility registers utility which requires a color value. Negation is
// never allowed.
func (l *library) colorUtility(name string, spec colorSpec) {
	l.functional(name, func(c Candidate, th *theme.Theme) []css.Node {
		if c.Negative {
			return nil
		}
		v, ok := c.Value.Get()
		if !ok {
			return nil
		}
		var value string
		if v.Kind == ValueKindArbitrary {
			value, ok = values.ResolveColorModifier(v.Value, c.alpha(), th)
		} else {
			value, ok = resolveThemeColor(c, th, spec.themeKeys)
		}
		if !ok {
			return nil
		}
		return spec.handle(value)
	})
	l.suggest(name, func() []SuggestionGroup {
		return []SuggestionGroup{colorSuggestions(l.th, spec.themeKeys)}
	})
}

// resolveThemeColor resolves named color value with keywords valid for
// every color property, then applies opacity modifier.
func resolveThemeColor(c Candidate, th *theme.Theme, themeKeys []string) (string, bool) {
	v, ok := c.Value.Get()
	if !ok || v.Kind != ValueKindNamed {
		return "", false
	}
	var value string
	switch v.Value {
	case "inherit":
		value = "inherit"
	case "transparent":
		value = "transparent"
	case "current":
		value = "currentcolor"
	default:
		if value, ok = th.Resolve(v.Value, themeKeys); !ok {
			return "", false
		}
	}
	return values.ResolveColorModifier(value, c.alpha(), th)
}

// resolveColor resolves candidate value as color, named or arbitrary.
func resolveColor(c Candidate, th *theme.Theme, themeKeys []string) (string, bool) {
	v, ok := c.Value.Get()
	if !ok {
		return "", false
	}
	if v.Kind == ValueKindArbitrary {
		return values.ResolveColorModifier(v.Value, c.alpha(), th)
	}
	return resolveThemeColor(c, th, themeKeys)
}

func colorSuggestions(th *theme.Theme, themeKeys []string) SuggestionGroup {
	return SuggestionGroup{
		Values:    append([]string{"inherit", "current", "transparent"}, sortedValues(th.KeysInNamespaces(themeKeys))...),
		Modifiers: opacityModifiers(th),
	}
}

func opacityModifiers(th *theme.Theme) []string {
	mods := th.KeysInNamespaces([]string{"--opacity"})
	for i := 0; i <= 100; i += 5 {
		mods = append(mods, strconv.Itoa(i))
	}
	return lo.Uniq(mods)
}

// sortedValues removes duplicates and orders values naturally.
func sortedValues(vals []string) []string {
	vals = lo.Uniq(vals)
	sort.Sort(natural.StringSlice(vals))
	return vals
}

// Bare value handlers shared by many families.
var (
	// bareInteger accepts non-negative whole numbers as is.
	bareInteger = Computed(func(v CandidateValue, _ *theme.Theme) (string, bool) {
		return v.Value, values.IsPositiveInteger(v.Value)
	})

	// barePixels turns whole numbers into pixel lengths.
	barePixels = Computed(func(v CandidateValue, _ *theme.Theme) (string, bool) {
		if !values.IsPositiveInteger(v.Value) {
			return "", false
		}
		return v.Value + "px", true
	})

	// barePercentage turns whole numbers into percentages.
	barePercentage = Computed(func(v CandidateValue, _ *theme.Theme) (string, bool) {
		if !values.IsPositiveInteger(v.Value) {
			return "", false
		}
		return v.Value + "%", true
	})

	// bareDegrees turns whole numbers into angles.
	bareDegrees = Computed(func(v CandidateValue, _ *theme.Theme) (string, bool) {
		if !values.IsPositiveInteger(v.Value) {
			return "", false
		}
		return v.Value + "deg", true
	})

	// bareMilliseconds turns whole numbers into durations.
	bareMilliseconds = Computed(func(v CandidateValue, _ *theme.Theme) (string, bool) {
		if !values.IsPositiveInteger(v.Value) {
			return "", false
		}
		return v.Value + "ms", true
	})

	// bareSpacing multiplies the spacing scale.
	bareSpacing = Computed(func(v CandidateValue, th *theme.Theme) (string, bool) {
		if !values.IsValidSpacingMultiplier(v.Value) {
			return "", false
		}
		multiplier, ok := th.Resolve("", []string{"--spacing"})
		if !ok {
			return "", false
		}
		return "calc(" + multiplier + " * " + v.Value + ")", true
	})

	// bareRatio accepts fractions with whole parts ("16/9").
	bareRatio = Computed(func(v CandidateValue, _ *theme.Theme) (string, bool) {
		if v.Fraction == "" || !values.IsFraction(v.Fraction) {
			return "", false
		}
		num, den, _ := strings.Cut(v.Fraction, "/")
		return num + " / " + den, true
	})
)

// spacingValues are bare values offered for spacing scale completion.
var spacingValues = []string{
	"0", "0.5", "1", "1.5", "2", "2.5", "3", "3.5", "4", "5", "6", "7", "8", "9", "10",
	"11", "12", "14", "16", "20", "24", "28", "32", "36", "40", "44", "48", "52", "56",
	"60", "64", "72", "80", "96",
}

// spacingUtility registers functional utility on the spacing scale.
func (l *library) spacingUtility(name string, themeKeys []string, negative, fractions bool, handle func(value string) []css.Node) {
	l.functionalUtility(name, functionalSpec{
		themeKeys:         themeKeys,
		bareValue:         bareSpacing,
		supportsNegative:  negative,
		supportsFractions: fractions,
		suggestValues:     spacingValues,
		handle:            handle,
	})
}

// decls returns handler emitting value into every property.
func decls(properties ...string) func(value string) []css.Node {
	return func(value string) []css.Node {
		return lo.Map(properties, func(p string, _ int) css.Node { return css.Decl(p, value) })
	}
}
