// Package values holds pure helpers shared by utility families: opacity
// compositing, negation, numeric checks, arbitrary value type inference and
// legacy theme key aliases.
package values

import (
	"math"
	"strconv"
	"strings"

	"github.com/samber/mo"
)

// Alpha is an opacity modifier as written in a candidate: named ("/50",
// "/half") or arbitrary ("/[0.35]").
type Alpha struct {
	Value     string
	Arbitrary bool
}

// Resolver looks candidate values up in theme namespaces.
type Resolver interface {
	Resolve(value string, namespaces []string) (string, bool)
}

// ApplyOpacity composites color with transparent. Numeric alpha is converted
// to percentage: values up to 1 are fractions ("0.5" is 50%), larger values
// are already percentages ("50" is 50%). Anything else ("var(--a)", "30%")
// is used as is. Fully opaque alpha leaves color untouched.
func ApplyOpacity(color, alpha string) string {
	alpha = strings.TrimSpace(alpha)
	if alpha == "" {
		return color
	}
	if num, err := strconv.ParseFloat(alpha, 64); err == nil {
		if num <= 1 {
			num *= 100
		}
		alpha = FormatNumber(math.Round(num*1e6)/1e6) + "%"
	}
	if alpha == "100%" {
		return color
	}
	return "color-mix(in srgb, " + color + " " + alpha + ", transparent)"
}

// ResolveColorModifier applies opacity modifier to color. Named modifiers are
// looked up in the --opacity namespace first and otherwise must be a whole
// percentage. Returns false when the modifier cannot be used, in which case
// the utility emits nothing.
func ResolveColorModifier(color string, modifier mo.Option[Alpha], r Resolver) (string, bool) {
	alpha, ok := modifier.Get()
	if !ok {
		return color, true
	}
	if alpha.Arbitrary {
		return ApplyOpacity(color, alpha.Value), true
	}
	if r != nil {
		if v, found := r.Resolve(alpha.Value, []string{"--opacity"}); found {
			return ApplyOpacity(color, v), true
		}
	}
	if !IsValidOpacityValue(alpha.Value) {
		return "", false
	}
	return ApplyOpacity(color, alpha.Value+"%"), true
}

// ApplyNegative negates value with calc(), which works the same for numbers,
// var() references and nested expressions.
func ApplyNegative(value string) string {
	return "calc(" + value + " * -1)"
}
