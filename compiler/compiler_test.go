package compiler

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"twc/common"
	"twc/css"
	"twc/theme"
	"twc/utilities"
)

func newCompiler(t *testing.T, opts Options) *Compiler {
	t.Helper()
	c, err := New(opts, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return c
}

func defaults() Options {
	return Options{Strict: true, Defaults: true, HintDistance: 3}
}

func declarations(nodes []css.Node) map[string]*css.Declaration {
	result := make(map[string]*css.Declaration)
	css.Walk(nodes, func(n css.Node) css.WalkAction {
		switch v := n.(type) {
		case *css.AtRoot:
			return css.WalkSkipChildren
		case *css.Declaration:
			result[v.Property] = v
		}
		return css.WalkContinue
	})
	return result
}

func TestCompile(t *testing.T) {
	c := newCompiler(t, defaults())

	candidates := []utilities.Candidate{
		{Root: "bg", Kind: utilities.KindFunctional, Value: utilities.Named("red-500")},
		{Root: "frobnicate", Kind: utilities.KindStatic},
		{Root: "trnslate", Kind: utilities.KindFunctional, Value: utilities.Named("4")},
		{Root: "mt", Kind: utilities.KindFunctional, Value: utilities.Named("nothing-here")},
		{Root: "mt", Kind: utilities.KindFunctional, Value: utilities.Arbitrary("10px"), Negative: true},
		{Kind: utilities.KindArbitrary, Property: "color", Value: utilities.Arbitrary("var(--color-blue-500)")},
	}

	res, err := c.Compile(context.Background(), candidates)
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}

	if len(res.Outputs) != 3 {
		t.Fatalf("Outputs = %d, want 3", len(res.Outputs))
	}
	if d := declarations(res.Outputs[0].Nodes)["background-color"]; d == nil || d.Value != "var(--color-red-500)" {
		t.Errorf("bg-red-500 = %+v, want background-color: var(--color-red-500)", d)
	}
	if d := declarations(res.Outputs[1].Nodes)["margin-top"]; d == nil || d.Value != "calc(10px * -1)" {
		t.Errorf("-mt-[10px] = %+v, want margin-top: calc(10px * -1)", d)
	}
	if d := declarations(res.Outputs[2].Nodes)["color"]; d == nil || d.Value != "var(--color-blue-500)" {
		t.Errorf("[color:...] = %+v", d)
	}

	if len(res.Unknown) != 2 {
		t.Fatalf("Unknown = %+v, want 2 entries", res.Unknown)
	}
	if res.Unknown[0].Candidate.Root != "frobnicate" {
		t.Errorf("Unknown[0] = %s, want frobnicate", res.Unknown[0].Candidate)
	}
	if res.Unknown[1].Hint != "translate" {
		t.Errorf("hint for trnslate = %q, want translate", res.Unknown[1].Hint)
	}

	if len(res.Skipped) != 1 || res.Skipped[0].Root != "mt" {
		t.Errorf("Skipped = %+v, want mt-nothing-here", res.Skipped)
	}

	th := c.Theme()
	if !th.IsUsed("--color-red-500") {
		t.Error("--color-red-500 should be used after compilation")
	}
	// literal var() in arbitrary property is tracked too
	if !th.IsUsed("--color-blue-500") {
		t.Error("--color-blue-500 referenced by arbitrary value should be used")
	}
	if th.IsUsed("--color-green-500") {
		t.Error("--color-green-500 was never referenced")
	}
}

func TestCompileCancelled(t *testing.T) {
	c := newCompiler(t, defaults())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Compile(ctx, []utilities.Candidate{{Root: "flex", Kind: utilities.KindStatic}})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Compile() error = %v, want context.Canceled", err)
	}
}

func TestResolveDispatch(t *testing.T) {
	c := newCompiler(t, defaults())

	tests := []struct {
		name     string
		cand     utilities.Candidate
		known    bool
		property string
		value    string
	}{
		{"static", utilities.Candidate{Root: "flex", Kind: utilities.KindStatic}, true, "display", "flex"},
		{"functional under static root", utilities.Candidate{Root: "flex", Kind: utilities.KindFunctional, Value: utilities.Named("1")}, true, "flex", "1"},
		{"negative keyword", utilities.Candidate{Root: "translate-x-full", Kind: utilities.KindStatic, Negative: true}, true, "--tw-translate-x", "-100%"},
		{"keyword", utilities.Candidate{Root: "translate-x-full", Kind: utilities.KindStatic}, true, "--tw-translate-x", "100%"},
		{"functional default", utilities.Candidate{Root: "shadow", Kind: utilities.KindStatic}, true, "box-shadow", "var(--tw-inset-shadow), var(--tw-inset-ring-shadow), var(--tw-ring-offset-shadow), var(--tw-ring-shadow), var(--tw-shadow)"},
		{"negative static without keyword", utilities.Candidate{Root: "flex", Kind: utilities.KindStatic, Negative: true}, true, "", ""},
		{"functional only root as functional", utilities.Candidate{Root: "sr-only", Kind: utilities.KindFunctional, Value: utilities.Named("x")}, false, "", ""},
		{"unknown", utilities.Candidate{Root: "frobnicate", Kind: utilities.KindFunctional, Value: utilities.Named("1")}, false, "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nodes, known := c.Resolve(tt.cand)
			if known != tt.known {
				t.Fatalf("Resolve(%s) known = %v, want %v", tt.cand, known, tt.known)
			}
			if tt.property == "" {
				if len(nodes) != 0 {
					t.Errorf("Resolve(%s) = %d nodes, want none", tt.cand, len(nodes))
				}
				return
			}
			d := declarations(nodes)[tt.property]
			if d == nil || d.Value != tt.value {
				t.Errorf("Resolve(%s) %s = %+v, want %q", tt.cand, tt.property, d, tt.value)
			}
		})
	}
}

func TestImportant(t *testing.T) {
	check := func(t *testing.T, nodes []css.Node) {
		t.Helper()
		var decls int
		css.Walk(nodes, func(n css.Node) css.WalkAction {
			switch v := n.(type) {
			case *css.AtRoot:
				for _, d := range css.Declarations(v.Nodes) {
					if d.Important {
						t.Errorf("@property declaration %s marked important", d.Property)
					}
				}
				return css.WalkSkipChildren
			case *css.Declaration:
				decls++
				if !v.Important {
					t.Errorf("declaration %s is not important", v.Property)
				}
			}
			return css.WalkContinue
		})
		if decls == 0 {
			t.Error("no declarations produced")
		}
	}

	t.Run("candidate", func(t *testing.T) {
		c := newCompiler(t, defaults())
		nodes, _ := c.Resolve(utilities.Candidate{Root: "translate-x", Kind: utilities.KindFunctional, Value: utilities.Named("4"), Important: true})
		check(t, nodes)
	})

	t.Run("options", func(t *testing.T) {
		opts := defaults()
		opts.Important = true
		c := newCompiler(t, opts)
		nodes, _ := c.Resolve(utilities.Candidate{Root: "p", Kind: utilities.KindFunctional, Value: utilities.Named("4")})
		check(t, nodes)
	})
}

func TestPrefix(t *testing.T) {
	opts := defaults()
	opts.Prefix = "tw"
	c := newCompiler(t, opts)

	res, err := c.Compile(context.Background(), []utilities.Candidate{
		{Root: "bg", Kind: utilities.KindFunctional, Value: utilities.Named("red-500")},
	})
	if err != nil {
		t.Fatal(err)
	}
	if d := declarations(res.Nodes())["background-color"]; d == nil || d.Value != "var(--tw-color-red-500)" {
		t.Errorf("prefixed bg-red-500 = %+v, want var(--tw-color-red-500)", d)
	}
	if !c.Theme().IsUsed("--color-red-500") {
		t.Error("prefixed reference should mark unprefixed token used")
	}
}

func TestSources(t *testing.T) {
	opts := Options{
		Strict: true,
		Sources: []Source{
			{Name: "brand.css", Format: common.ThemeFormatCss, Data: []byte(`@theme { --color-brand: #123456; --spacing: 0.5rem; }`)},
			{Name: "tokens.toml", Format: common.ThemeFormatToml, Data: []byte("[theme.color]\naccent = \"#654321\"\n")},
		},
	}
	c := newCompiler(t, opts)

	if _, ok := c.Theme().Get([]string{"--color-red-500"}); ok {
		t.Error("built-in tokens loaded although defaults are disabled")
	}

	for _, tt := range []struct{ value, want string }{
		{"brand", "var(--color-brand)"},
		{"accent", "var(--color-accent)"},
	} {
		nodes, _ := c.Resolve(utilities.Candidate{Root: "text", Kind: utilities.KindFunctional, Value: utilities.Named(tt.value)})
		if d := declarations(nodes)["color"]; d == nil || d.Value != tt.want {
			t.Errorf("text-%s = %+v, want %s", tt.value, d, tt.want)
		}
	}
}

func TestSourceErrors(t *testing.T) {
	opts := Options{
		Sources: []Source{
			{Name: "bad.toml", Format: common.ThemeFormatToml, Data: []byte("[theme.color]\n\"*\" = \"red\"\n")},
			{Name: "broken.toml", Format: common.ThemeFormatToml, Data: []byte("[theme\n")},
		},
	}
	_, err := New(opts, zap.NewNop())
	if err == nil {
		t.Fatal("New() with invalid sources should fail")
	}
	if !errors.Is(err, theme.ErrInvalidNamespaceValue) {
		t.Errorf("New() error = %v, want ErrInvalidNamespaceValue", err)
	}
	if !strings.Contains(err.Error(), "broken.toml") {
		t.Errorf("New() error should report every broken source: %v", err)
	}
}

func TestHints(t *testing.T) {
	c := newCompiler(t, defaults())
	tests := []struct{ root, want string }{
		{"trnslate", "translate"},
		{"roundedd", "rounded"},
		{"completely-unrelated-name", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := c.hint(tt.root); got != tt.want {
			t.Errorf("hint(%q) = %q, want %q", tt.root, got, tt.want)
		}
	}

	opts := defaults()
	opts.HintDistance = 0
	if got := newCompiler(t, opts).hint("trnslate"); got != "" {
		t.Errorf("disabled hints returned %q", got)
	}
}

func TestSuggest(t *testing.T) {
	c := newCompiler(t, defaults())

	all := c.Suggest("")
	if len(all) != len(c.roots) {
		t.Errorf("Suggest(\"\") = %d roots, want %d", len(all), len(c.roots))
	}

	var found bool
	for _, s := range c.Suggest("trnsx") {
		if s.Root == "translate-x" {
			found = true
			if len(s.Groups) == 0 || !s.Groups[0].SupportsNegative {
				t.Errorf("translate-x suggestions = %+v, want negative support", s.Groups)
			}
		}
	}
	if !found {
		t.Error("Suggest(trnsx) should match translate-x")
	}

	if got := c.Suggest("zzzzzzzzzz"); len(got) != 0 {
		t.Errorf("Suggest(zzzzzzzzzz) = %d roots, want none", len(got))
	}
}
