package utilities

import (
	"github.com/samber/mo"

	"twc/values"
)

// Candidate is a parsed class name. Parsing happens elsewhere, candidates
// arrive here already split into root, value and modifier with escapes
// resolved.
type Candidate struct {
	Root      string
	Kind      Kind
	Property  string // only for arbitrary properties: "[color:red]" has Property "color"
	Value     mo.Option[CandidateValue]
	Modifier  mo.Option[CandidateModifier]
	Negative  bool
	Important bool
	Raw       string // original class name, for diagnostics only
}

// CandidateValue is the part of a class name after the root: "red-500" in
// "bg-red-500", "[10px]" in "mt-[10px]".
type CandidateValue struct {
	Kind     ValueKind
	Value    string
	Fraction string // "1/2" for "w-1/2", empty otherwise
	DataType mo.Option[values.DataType]
}

// CandidateModifier is the part of a class name after "/".
type CandidateModifier struct {
	Kind  ValueKind
	Value string
}

// Named creates a named candidate value.
func Named(value string) mo.Option[CandidateValue] {
	return mo.Some(CandidateValue{Kind: ValueKindNamed, Value: value})
}

// Arbitrary creates an arbitrary candidate value.
func Arbitrary(value string) mo.Option[CandidateValue] {
	return mo.Some(CandidateValue{Kind: ValueKindArbitrary, Value: value})
}

// Typed creates an arbitrary candidate value with explicit data type,
// "bg-[length:var(--x)]".
func Typed(dt values.DataType, value string) mo.Option[CandidateValue] {
	return mo.Some(CandidateValue{Kind: ValueKindArbitrary, Value: value, DataType: mo.Some(dt)})
}

// Alpha converts modifier into opacity modifier of color utilities.
func (m CandidateModifier) Alpha() values.Alpha {
	return values.Alpha{Value: m.Value, Arbitrary: m.Kind == ValueKindArbitrary}
}

// alpha returns candidate modifier as opacity modifier.
func (c Candidate) alpha() mo.Option[values.Alpha] {
	m, ok := c.Modifier.Get()
	if !ok {
		return mo.None[values.Alpha]()
	}
	return mo.Some(m.Alpha())
}

// dataType returns explicit data type of an arbitrary value or infers it from
// value syntax trying candidates in order. Returns fallback if nothing matched.
func (v CandidateValue) dataType(fallback values.DataType, candidates ...values.DataType) values.DataType {
	if dt, ok := v.DataType.Get(); ok {
		return dt
	}
	if dt, ok := values.InferDataType(v.Value, candidates...); ok {
		return dt
	}
	return fallback
}

// String formats candidate the way it would be written in markup, used in
// diagnostics when Raw is not known.
func (c Candidate) String() string {
	if c.Raw != "" {
		return c.Raw
	}
	var s string
	if c.Negative {
		s = "-"
	}
	if c.Kind == KindArbitrary {
		v, _ := c.Value.Get()
		s += "[" + c.Property + ":" + v.Value + "]"
	} else {
		s += c.Root
		if v, ok := c.Value.Get(); ok {
			switch {
			case v.Kind == ValueKindArbitrary && v.DataType.IsPresent():
				s += "-[" + v.DataType.MustGet().String() + ":" + v.Value + "]"
			case v.Kind == ValueKindArbitrary:
				s += "-[" + v.Value + "]"
			case v.Fraction != "":
				s += "-" + v.Fraction
				return c.withImportant(s)
			default:
				s += "-" + v.Value
			}
		}
	}
	if m, ok := c.Modifier.Get(); ok {
		if m.Kind == ValueKindArbitrary {
			s += "/[" + m.Value + "]"
		} else {
			s += "/" + m.Value
		}
	}
	return c.withImportant(s)
}

func (c Candidate) withImportant(s string) string {
	if c.Important {
		return s + "!"
	}
	return s
}
