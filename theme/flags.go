package theme

import "strings"

// Flags is a set of options attached to a theme entry, combined bitwise.
type Flags uint8

const (
	FlagNone Flags = 0
	// FlagInline entries resolve to their literal value instead of var().
	FlagInline Flags = 1 << iota
	// FlagReference entries are not emitted as variables, references carry
	// the value as var() fallback.
	FlagReference
	// FlagDefault entries never override an existing non-default entry.
	FlagDefault
	// FlagStatic entries are always emitted regardless of usage.
	FlagStatic
	// FlagUsed is set once the entry is referenced by generated output and
	// is never cleared.
	FlagUsed
)

// Has reports whether all bits of o are set.
func (f Flags) Has(o Flags) bool {
	return f&o == o
}

func (f Flags) String() string {
	if f == FlagNone {
		return "none"
	}
	var names []string
	for _, fl := range []struct {
		flag Flags
		name string
	}{
		{FlagInline, "inline"},
		{FlagReference, "reference"},
		{FlagDefault, "default"},
		{FlagStatic, "static"},
		{FlagUsed, "used"},
	} {
		if f.Has(fl.flag) {
			names = append(names, fl.name)
		}
	}
	return strings.Join(names, "|")
}
