package css

import (
	"fmt"
	"strconv"
	"strings"
)

type treeWriter struct {
	w *strings.Builder
}

func newTreeWriter() *treeWriter {
	return &treeWriter{
		w: &strings.Builder{},
	}
}

func (tw treeWriter) String() string {
	return tw.w.String()
}

func (tw treeWriter) Line(depth int, format string, args ...any) {
	for range depth {
		tw.w.WriteString("  ")
	}
	fmt.Fprintf(tw.w, format, args...)
	tw.w.WriteByte('\n')
}

func (tw treeWriter) TextBlock(depth int, label, value string) {
	for range depth {
		tw.w.WriteString("  ")
	}
	tw.w.WriteString(label)
	tw.w.WriteString(": ")
	tw.w.WriteString(encodeText(value))
	tw.w.WriteByte('\n')
}

func encodeText(raw string) string {
	if raw == "" {
		return raw
	}
	return strconv.Quote(raw)
}

// Dump returns indented structural view of nodes, one node per line. Unlike
// stylesheet output it shows node kinds and does not hoist AtRoot children.
func Dump(nodes []Node) string {
	tw := newTreeWriter()
	dumpNodes(tw, nodes, 0)
	return tw.String()
}

func dumpNodes(tw *treeWriter, nodes []Node, depth int) {
	for _, n := range nodes {
		switch v := n.(type) {
		case *Declaration:
			important := ""
			if v.Important {
				important = " !important"
			}
			tw.Line(depth, "Declaration %s: %s%s", v.Property, strconv.Quote(v.Value), important)
		case *Rule:
			tw.Line(depth, "Rule")
			tw.TextBlock(depth+1, "selector", v.Selector)
			dumpNodes(tw, v.Nodes, depth+1)
		case *AtRule:
			tw.Line(depth, "AtRule @%s", v.Name)
			if v.Params != "" {
				tw.TextBlock(depth+1, "params", v.Params)
			}
			dumpNodes(tw, v.Nodes, depth+1)
		case *AtRoot:
			tw.Line(depth, "AtRoot")
			dumpNodes(tw, v.Nodes, depth+1)
		}
	}
}
