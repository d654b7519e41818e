package compiler

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/samber/mo"
	yaml "gopkg.in/yaml.v3"

	"twc/utilities"
	"twc/values"
)

// Candidates arrive already parsed, as a YAML (or JSON) list:
//
//	- raw: "-mt-[10px]"
//	  root: mt
//	  value: {kind: arbitrary, value: 10px}
//	  negative: true
//	- root: bg
//	  value: {value: red-500}
//	  modifier: {value: "50"}
//	- property: color
//	  value: {kind: arbitrary, value: red}
//
// Kind may be omitted: candidates with property are arbitrary, with value
// functional, static otherwise.

type candidateValue struct {
	Kind     utilities.ValueKind `yaml:"kind,omitempty"`
	Value    string              `yaml:"value"`
	Fraction string              `yaml:"fraction,omitempty"`
	Type     string              `yaml:"type,omitempty"`
}

type candidateModifier struct {
	Kind  utilities.ValueKind `yaml:"kind,omitempty"`
	Value string              `yaml:"value"`
}

type candidate struct {
	Raw       string             `yaml:"raw,omitempty"`
	Root      string             `yaml:"root,omitempty"`
	Kind      *utilities.Kind    `yaml:"kind,omitempty"`
	Property  string             `yaml:"property,omitempty"`
	Value     *candidateValue    `yaml:"value,omitempty"`
	Modifier  *candidateModifier `yaml:"modifier,omitempty"`
	Negative  bool               `yaml:"negative,omitempty"`
	Important bool               `yaml:"important,omitempty"`
}

func (w *candidate) toCandidate() (utilities.Candidate, error) {
	c := utilities.Candidate{
		Root:      w.Root,
		Property:  w.Property,
		Negative:  w.Negative,
		Important: w.Important,
		Raw:       w.Raw,
	}
	switch {
	case w.Kind != nil:
		c.Kind = *w.Kind
	case w.Property != "":
		c.Kind = utilities.KindArbitrary
	case w.Value != nil:
		c.Kind = utilities.KindFunctional
	default:
		c.Kind = utilities.KindStatic
	}

	switch c.Kind {
	case utilities.KindArbitrary:
		if c.Property == "" || w.Value == nil {
			return c, errors.New("arbitrary property requires property and value")
		}
	default:
		if c.Root == "" {
			return c, errors.New("root is required")
		}
	}

	if w.Value != nil {
		v := utilities.CandidateValue{Kind: w.Value.Kind, Value: w.Value.Value, Fraction: w.Value.Fraction}
		if w.Value.Type != "" {
			dt, err := values.ParseDataType(w.Value.Type)
			if err != nil {
				return c, err
			}
			v.DataType = mo.Some(dt)
		}
		if v.Fraction == "" && v.Kind == utilities.ValueKindNamed && values.IsFraction(v.Value) {
			v.Fraction = v.Value
		}
		c.Value = mo.Some(v)
	}
	if w.Modifier != nil {
		c.Modifier = mo.Some(utilities.CandidateModifier{Kind: w.Modifier.Kind, Value: w.Modifier.Value})
	}
	return c, nil
}

// DecodeCandidates reads list of parsed candidates.
func DecodeCandidates(r io.Reader) ([]utilities.Candidate, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var wire []candidate
	if err := dec.Decode(&wire); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("unable to decode candidates: %w", err)
	}

	result := make([]utilities.Candidate, 0, len(wire))
	for i := range wire {
		c, err := wire[i].toCandidate()
		if err != nil {
			return nil, fmt.Errorf("candidate %d (%s): %w", i+1, c, err)
		}
		result = append(result, c)
	}
	return result, nil
}

// ParseCandidates is DecodeCandidates for in-memory data.
func ParseCandidates(data []byte) ([]utilities.Candidate, error) {
	return DecodeCandidates(bytes.NewReader(data))
}
