package utilities

import (
	"go.uber.org/multierr"

	"twc/css"
	"twc/theme"
	"twc/values"
)

// arbitraryProperty resolves "[property:value]" candidates. Modifier is an
// opacity applied to the value as a color.
func (l *library) arbitraryProperty() {
	l.err = multierr.Append(l.err, l.r.Arbitrary(func(c Candidate, th *theme.Theme) []css.Node {
		v, ok := c.Value.Get()
		if !ok || c.Property == "" || c.Negative {
			return nil
		}
		value := v.Value
		if c.Modifier.IsPresent() {
			if value, ok = values.ResolveColorModifier(value, c.alpha(), th); !ok {
				return nil
			}
		}
		return []css.Node{css.Decl(c.Property, value)}
	}))
}
