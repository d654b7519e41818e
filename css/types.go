package css

import (
	"fmt"
	"io"
	"strings"
)

// Node is a single element of generated CSS. Utilities construct nodes, they
// never print them; printing is left to whoever consumes the output.
type Node interface {
	node()
}

// Declaration is a single "property: value" pair.
type Declaration struct {
	Property  string
	Value     string
	Important bool
}

// Rule is a nested rule. Selector may reference the enclosing selector with
// "&" (e.g. "&::placeholder", ":where(& > :not(:last-child))").
type Rule struct {
	Selector string
	Nodes    []Node
}

// AtRule represents at-rules like @media, @property or @keyframes. Name does
// not include the leading "@".
type AtRule struct {
	Name   string
	Params string
	Nodes  []Node
}

// AtRoot escapes its children to the top level of the stylesheet, so they are
// not nested under the selector of the utility which produced them.
type AtRoot struct {
	Nodes []Node
}

func (*Declaration) node() {}
func (*Rule) node()        {}
func (*AtRule) node()      {}
func (*AtRoot) node()      {}

// Decl creates a declaration node.
func Decl(property, value string) *Declaration {
	return &Declaration{Property: property, Value: value}
}

// NewRule creates a nested rule.
func NewRule(selector string, nodes ...Node) *Rule {
	return &Rule{Selector: selector, Nodes: nodes}
}

// NewAtRule creates an at-rule; name is given without "@".
func NewAtRule(name, params string, nodes ...Node) *AtRule {
	return &AtRule{Name: strings.TrimPrefix(name, "@"), Params: params, Nodes: nodes}
}

// NewAtRoot wraps nodes which must be hoisted to the stylesheet root.
func NewAtRoot(nodes ...Node) *AtRoot {
	return &AtRoot{Nodes: nodes}
}

// WalkAction controls tree traversal.
type WalkAction int

const (
	WalkContinue     WalkAction = iota // descend into children
	WalkSkipChildren                   // do not descend into children of this node
	WalkStop                           // abort traversal
)

// Walk visits nodes depth-first in document order. Returns false if
// traversal was stopped.
func Walk(nodes []Node, fn func(n Node) WalkAction) bool {
	for _, n := range nodes {
		switch fn(n) {
		case WalkStop:
			return false
		case WalkSkipChildren:
			continue
		}
		var children []Node
		switch v := n.(type) {
		case *Rule:
			children = v.Nodes
		case *AtRule:
			children = v.Nodes
		case *AtRoot:
			children = v.Nodes
		}
		if len(children) > 0 && !Walk(children, fn) {
			return false
		}
	}
	return true
}

// Declarations returns all declarations found in nodes (recursively) in
// document order.
func Declarations(nodes []Node) []*Declaration {
	var decls []*Declaration
	Walk(nodes, func(n Node) WalkAction {
		if d, ok := n.(*Declaration); ok {
			decls = append(decls, d)
		}
		return WalkContinue
	})
	return decls
}

// Stylesheet is a flat list of top level nodes produced for a set of class
// names. It exists for debugging and command line output only.
type Stylesheet struct {
	Nodes []Node
}

// WriteTo writes the stylesheet to w in source order, implementing io.WriterTo.
func (s *Stylesheet) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for i, n := range s.Nodes {
		c, err := writeNode(w, n, 0)
		total += int64(c)
		if err != nil {
			return total, err
		}
		// Add blank line between items (except after last)
		if i < len(s.Nodes)-1 {
			c, err = fmt.Fprint(w, "\n")
			total += int64(c)
			if err != nil {
				return total, err
			}
		}
	}
	return total, nil
}

// String returns the CSS text of the stylesheet.
func (s *Stylesheet) String() string {
	var sb strings.Builder
	s.WriteTo(&sb) //nolint:errcheck
	return sb.String()
}

func writeNode(w io.Writer, n Node, depth int) (int, error) {
	indent := strings.Repeat("  ", depth)
	switch v := n.(type) {
	case *Declaration:
		important := ""
		if v.Important {
			important = " !important"
		}
		return fmt.Fprintf(w, "%s%s: %s%s;\n", indent, v.Property, v.Value, important)
	case *Rule:
		return writeBlock(w, indent+v.Selector, v.Nodes, depth)
	case *AtRule:
		head := "@" + v.Name
		if v.Params != "" {
			head += " " + v.Params
		}
		if len(v.Nodes) == 0 {
			return fmt.Fprintf(w, "%s%s;\n", indent, head)
		}
		return writeBlock(w, indent+head, v.Nodes, depth)
	case *AtRoot:
		var total int
		for _, child := range v.Nodes {
			c, err := writeNode(w, child, depth)
			total += c
			if err != nil {
				return total, err
			}
		}
		return total, nil
	}
	return 0, nil
}

func writeBlock(w io.Writer, head string, nodes []Node, depth int) (int, error) {
	var total int
	c, err := fmt.Fprintf(w, "%s {\n", head)
	total += c
	if err != nil {
		return total, err
	}
	for _, child := range nodes {
		c, err = writeNode(w, child, depth+1)
		total += c
		if err != nil {
			return total, err
		}
	}
	c, err = fmt.Fprintf(w, "%s}\n", strings.Repeat("  ", depth))
	total += c
	return total, err
}
