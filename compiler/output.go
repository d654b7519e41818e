package compiler

import (
	"strings"

	"github.com/samber/lo"

	"twc/css"
	"twc/utilities"
)

// escapeClass escapes class name for use in a selector.
func escapeClass(class string) string {
	var sb strings.Builder
	for i, r := range class {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_', r == '-', r >= 0x80:
		case r >= '0' && r <= '9':
			if i == 0 {
				// leading digit needs code point escape
				sb.WriteString("\\3" + string(r) + " ")
				continue
			}
		default:
			sb.WriteByte('\\')
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// Stylesheet wraps every output into a class rule. Nodes escaping to the root
// (@property scaffolding) are hoisted after all rules, each emitted once.
func (r *Result) Stylesheet() *css.Stylesheet {
	var (
		rules []css.Node
		roots []css.Node
		seen  = make(map[string]bool)
	)
	for _, o := range r.Outputs {
		var body []css.Node
		for _, n := range o.Nodes {
			ar, ok := n.(*css.AtRoot)
			if !ok {
				body = append(body, n)
				continue
			}
			for _, child := range ar.Nodes {
				key := (&css.Stylesheet{Nodes: []css.Node{child}}).String()
				if !seen[key] {
					seen[key] = true
					roots = append(roots, child)
				}
			}
		}
		if len(body) > 0 {
			rules = append(rules, css.NewRule("."+escapeClass(o.Candidate.String()), body...))
		}
	}
	return &css.Stylesheet{Nodes: append(rules, roots...)}
}

// Document is a serializable summary of compilation.
type Document struct {
	Outputs []DocumentOutput `yaml:"outputs,omitempty"`
	Unknown []DocumentIssue  `yaml:"unknown,omitempty"`
	Skipped []string         `yaml:"skipped,omitempty"`
	Used    []string         `yaml:"used,omitempty"`
}

type DocumentOutput struct {
	Class        string   `yaml:"class"`
	Declarations []string `yaml:"declarations"`
}

type DocumentIssue struct {
	Class string `yaml:"class"`
	Hint  string `yaml:"did_you_mean,omitempty"`
}

// Document summarizes result. Declarations of nested rules and at-rules are
// listed flat, in document order.
func (r *Result) Document(used []string) *Document {
	return &Document{
		Outputs: lo.Map(r.Outputs, func(o Output, _ int) DocumentOutput {
			return DocumentOutput{
				Class: o.Candidate.String(),
				Declarations: lo.Map(css.Declarations(o.Nodes), func(d *css.Declaration, _ int) string {
					s := d.Property + ": " + d.Value
					if d.Important {
						s += " !important"
					}
					return s
				}),
			}
		}),
		Unknown: lo.Map(r.Unknown, func(u Unknown, _ int) DocumentIssue {
			return DocumentIssue{Class: u.Candidate.String(), Hint: u.Hint}
		}),
		Skipped: lo.Map(r.Skipped, func(c utilities.Candidate, _ int) string { return c.String() }),
		Used:    used,
	}
}
