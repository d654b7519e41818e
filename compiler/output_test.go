package compiler

import (
	"context"
	"strings"
	"testing"

	"twc/utilities"
)

func TestEscapeClass(t *testing.T) {
	tests := []struct{ in, want string }{
		{"flex", "flex"},
		{"w-1/2", `w-1\/2`},
		{"-mt-[10px]", `-mt-\[10px\]`},
		{"bg-red-500/50!", `bg-red-500\/50\!`},
		{"2xl", `\32 xl`},
		{"[color:red]", `\[color\:red\]`},
	}
	for _, tt := range tests {
		if got := escapeClass(tt.in); got != tt.want {
			t.Errorf("escapeClass(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStylesheet(t *testing.T) {
	c := newCompiler(t, defaults())
	res, err := c.Compile(context.Background(), []utilities.Candidate{
		{Root: "translate-x", Kind: utilities.KindFunctional, Value: utilities.Named("4")},
		{Root: "translate-y", Kind: utilities.KindFunctional, Value: utilities.Named("2"), Negative: true},
		{Root: "flex", Kind: utilities.KindStatic},
	})
	if err != nil {
		t.Fatal(err)
	}
	out := res.Stylesheet().String()

	for _, want := range []string{
		".translate-x-4 {\n  --tw-translate-x: calc(var(--spacing) * 4);\n",
		".-translate-y-2 {\n  --tw-translate-y: calc(calc(var(--spacing) * 2) * -1);\n",
		".flex {\n  display: flex;\n}\n",
		"@property --tw-translate-x {\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("stylesheet misses %q:\n%s", want, out)
		}
	}
	if n := strings.Count(out, "@property --tw-translate-x "); n != 1 {
		t.Errorf("@property --tw-translate-x emitted %d times, want once", n)
	}
	if strings.Index(out, "@property") < strings.Index(out, ".flex") {
		t.Error("@property rules should follow utility rules")
	}
}

func TestDocument(t *testing.T) {
	opts := defaults()
	opts.Important = true
	c := newCompiler(t, opts)
	res, err := c.Compile(context.Background(), []utilities.Candidate{
		{Root: "p", Kind: utilities.KindFunctional, Value: utilities.Named("4")},
		{Root: "paddin", Kind: utilities.KindFunctional, Value: utilities.Named("4")},
		{Root: "p", Kind: utilities.KindFunctional, Value: utilities.Named("bogus")},
	})
	if err != nil {
		t.Fatal(err)
	}

	doc := res.Document(c.Theme().Used())
	if len(doc.Outputs) != 1 || doc.Outputs[0].Class != "p-4" {
		t.Fatalf("Outputs = %+v", doc.Outputs)
	}
	if got := doc.Outputs[0].Declarations; len(got) != 1 || got[0] != "padding: calc(var(--spacing) * 4) !important" {
		t.Errorf("Declarations = %v", got)
	}
	if len(doc.Unknown) != 1 || doc.Unknown[0].Class != "paddin-4" {
		t.Errorf("Unknown = %+v", doc.Unknown)
	}
	if len(doc.Skipped) != 1 || doc.Skipped[0] != "p-bogus" {
		t.Errorf("Skipped = %v", doc.Skipped)
	}
	if len(doc.Used) != 1 || doc.Used[0] != "--spacing" {
		t.Errorf("Used = %v, want [--spacing]", doc.Used)
	}
}
