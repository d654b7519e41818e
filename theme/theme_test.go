package theme_test

import (
	"errors"
	"reflect"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"twc/css"
	"twc/theme"
)

func mustAdd(t *testing.T, th *theme.Theme, key, value string, flags theme.Flags) {
	t.Helper()
	if err := th.Add(key, value, flags); err != nil {
		t.Fatalf("Add(%q, %q) error = %v", key, value, err)
	}
}

func TestAddGet(t *testing.T) {
	th := theme.New(zaptest.NewLogger(t))

	mustAdd(t, th, "--color-red-500", "#ef4444", theme.FlagNone)
	if v, ok := th.Get([]string{"--color-red-500"}); !ok || v != "#ef4444" {
		t.Errorf("Get = %q, %v, want #ef4444, true", v, ok)
	}

	mustAdd(t, th, "--color-red-500", " red ", theme.FlagNone)
	if v, _ := th.Get([]string{"--color-red-500"}); v != "red" {
		t.Errorf("Get after overwrite = %q, want red", v)
	}

	mustAdd(t, th, "--color-red-500", "initial", theme.FlagNone)
	if v, ok := th.Get([]string{"--color-red-500"}); ok {
		t.Errorf("Get after initial = %q, want miss", v)
	}
	if th.Size() != 0 {
		t.Errorf("Size = %d, want 0", th.Size())
	}
}

func TestGetFallbackOrder(t *testing.T) {
	th := theme.New(zap.NewNop())
	mustAdd(t, th, "--b", "2", theme.FlagNone)
	mustAdd(t, th, "--c", "3", theme.FlagNone)

	if v, _ := th.Get([]string{"--a", "--b", "--c"}); v != "2" {
		t.Errorf("Get = %q, want 2", v)
	}
	if _, ok := th.Get([]string{"--x"}); ok {
		t.Error("Get(--x) found, want miss")
	}
}

func TestDefaultNeverOverrides(t *testing.T) {
	th := theme.New(zap.NewNop())

	mustAdd(t, th, "--spacing", "1rem", theme.FlagNone)
	mustAdd(t, th, "--spacing", "0.25rem", theme.FlagDefault)
	if v, _ := th.Get([]string{"--spacing"}); v != "1rem" {
		t.Errorf("Get = %q, want explicit value 1rem", v)
	}

	mustAdd(t, th, "--radius", "2px", theme.FlagDefault)
	mustAdd(t, th, "--radius", "4px", theme.FlagDefault)
	if v, _ := th.Get([]string{"--radius"}); v != "4px" {
		t.Errorf("Get = %q, want 4px", v)
	}
	if !th.HasDefault("--radius") {
		t.Error("HasDefault(--radius) = false, want true")
	}

	mustAdd(t, th, "--radius", "8px", theme.FlagNone)
	if th.HasDefault("--radius") {
		t.Error("HasDefault(--radius) = true after explicit write, want false")
	}
}

func TestClearNamespace(t *testing.T) {
	th := theme.New(zap.NewNop())
	mustAdd(t, th, "--color-red-500", "red", theme.FlagNone)
	mustAdd(t, th, "--color-blue-500", "blue", theme.FlagNone)
	mustAdd(t, th, "--colorful", "yes", theme.FlagNone)
	mustAdd(t, th, "--font-sans", "sans-serif", theme.FlagNone)
	mustAdd(t, th, "--font-weight-bold", "700", theme.FlagNone)

	mustAdd(t, th, "--color-*", "initial", theme.FlagNone)
	if _, ok := th.Get([]string{"--color-red-500", "--color-blue-500"}); ok {
		t.Error("color tokens survived namespace clear")
	}
	if _, ok := th.Get([]string{"--colorful"}); !ok {
		t.Error("--colorful removed by --color-* clear")
	}

	mustAdd(t, th, "--font-*", "initial", theme.FlagNone)
	if _, ok := th.Get([]string{"--font-sans"}); ok {
		t.Error("--font-sans survived --font-* clear")
	}
	if _, ok := th.Get([]string{"--font-weight-bold"}); !ok {
		t.Error("--font-weight-bold removed by --font-* clear")
	}

	mustAdd(t, th, "--*", "initial", theme.FlagNone)
	if th.Size() != 0 {
		t.Errorf("Size after --* = %d, want 0", th.Size())
	}
}

func TestClearNamespaceWithFlags(t *testing.T) {
	th := theme.New(zap.NewNop())
	mustAdd(t, th, "--color-red", "red", theme.FlagDefault)
	mustAdd(t, th, "--color-blue", "blue", theme.FlagNone)

	th.ClearNamespace("--color", theme.FlagDefault)
	if _, ok := th.Get([]string{"--color-red"}); ok {
		t.Error("default token survived clear")
	}
	if _, ok := th.Get([]string{"--color-blue"}); !ok {
		t.Error("explicit token removed by default-only clear")
	}
}

func TestInvalidNamespaceValue(t *testing.T) {
	th := theme.New(zap.NewNop())
	err := th.Add("--color-*", "red", theme.FlagNone)
	if !errors.Is(err, theme.ErrInvalidNamespaceValue) {
		t.Errorf("Add() error = %v, want ErrInvalidNamespaceValue", err)
	}
}

func TestResolve(t *testing.T) {
	th := theme.New(zaptest.NewLogger(t))
	mustAdd(t, th, "--color-red-500", "#ef4444", theme.FlagNone)
	mustAdd(t, th, "--animate-spin", "spin 1s linear infinite", theme.FlagInline)
	mustAdd(t, th, "--radius-lg", "0.5rem", theme.FlagReference)
	mustAdd(t, th, "--spacing-4_5", "1.125rem", theme.FlagNone)
	mustAdd(t, th, "--spacing", "0.25rem", theme.FlagNone)

	tests := []struct {
		name       string
		value      string
		namespaces []string
		want       string
		found      bool
	}{
		{"var reference", "red-500", []string{"--color"}, "var(--color-red-500)", true},
		{"inline", "spin", []string{"--animate"}, "spin 1s linear infinite", true},
		{"reference fallback", "lg", []string{"--radius"}, "var(--radius-lg, 0.5rem)", true},
		{"dot retried with underscore", "4.5", []string{"--spacing"}, "var(--spacing-4_5)", true},
		{"bare namespace", "", []string{"--spacing"}, "var(--spacing)", true},
		{"second namespace", "red-500", []string{"--background-color", "--color"}, "var(--color-red-500)", true},
		{"miss", "blue-500", []string{"--color"}, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := th.Resolve(tt.value, tt.namespaces)
			if ok != tt.found || got != tt.want {
				t.Errorf("Resolve(%q) = %q, %v, want %q, %v", tt.value, got, ok, tt.want, tt.found)
			}
		})
	}

	if !th.IsUsed("--color-red-500") {
		t.Error("--color-red-500 not marked used")
	}
	if th.IsUsed("--color-blue-500") {
		t.Error("missing key reported used")
	}
}

func TestResolveIdempotent(t *testing.T) {
	th := theme.New(zap.NewNop())
	mustAdd(t, th, "--color-red-500", "#ef4444", theme.FlagNone)

	first, _ := th.Resolve("red-500", []string{"--color"})
	second, _ := th.Resolve("red-500", []string{"--color"})
	if first != second {
		t.Errorf("Resolve not idempotent: %q != %q", first, second)
	}
	if th.MarkUsed("--color-red-500") {
		t.Error("MarkUsed() = true for already used key, want false")
	}
	if got := th.Flags("--color-red-500"); got != theme.FlagUsed {
		t.Errorf("Flags = %v, want used", got)
	}
}

func TestResolveNullEqualsBareNamespace(t *testing.T) {
	th := theme.New(zap.NewNop())
	mustAdd(t, th, "--default-ring-width", "1px", theme.FlagDefault)

	bare, ok := th.Resolve("", []string{"--default-ring-width"})
	if !ok {
		t.Fatal("Resolve of bare namespace missed")
	}
	v, _ := th.Get([]string{"--default-ring-width"})
	raw, _ := th.ResolveValue("", []string{"--default-ring-width"})
	if raw != v {
		t.Errorf("ResolveValue = %q, Get = %q", raw, v)
	}
	if bare != "var(--default-ring-width)" {
		t.Errorf("Resolve = %q, want var(--default-ring-width)", bare)
	}
}

func TestResolveIgnoredKeys(t *testing.T) {
	th := theme.New(zap.NewNop())
	mustAdd(t, th, "--font-weight-bold", "700", theme.FlagNone)
	mustAdd(t, th, "--font-sans", "sans-serif", theme.FlagNone)
	mustAdd(t, th, "--text-shadow-sm", "0 1px 0 black", theme.FlagNone)
	mustAdd(t, th, "--text-sm", "0.875rem", theme.FlagNone)

	if v, ok := th.Resolve("weight-bold", []string{"--font"}); ok {
		t.Errorf("Resolve(weight-bold, --font) = %q, want miss", v)
	}
	if v, ok := th.Resolve("bold", []string{"--font-weight"}); !ok || v != "var(--font-weight-bold)" {
		t.Errorf("Resolve(bold, --font-weight) = %q, %v", v, ok)
	}

	got := th.KeysInNamespaces([]string{"--text"})
	if !reflect.DeepEqual(got, []string{"sm"}) {
		t.Errorf("KeysInNamespaces(--text) = %v, want [sm]", got)
	}
}

func TestResolveWith(t *testing.T) {
	th := theme.New(zap.NewNop())
	mustAdd(t, th, "--text-sm", "0.875rem", theme.FlagNone)
	mustAdd(t, th, "--text-sm--line-height", "1.25rem", theme.FlagNone)
	mustAdd(t, th, "--text-lg", "1.125rem", theme.FlagInline)

	v, extra, ok := th.ResolveWith("sm", []string{"--text"}, []string{"--line-height", "--letter-spacing"})
	if !ok || v != "var(--text-sm)" {
		t.Fatalf("ResolveWith = %q, %v", v, ok)
	}
	want := map[string]string{"--line-height": "var(--text-sm--line-height)"}
	if !reflect.DeepEqual(extra, want) {
		t.Errorf("nested = %v, want %v", extra, want)
	}
	if !th.IsUsed("--text-sm--line-height") {
		t.Error("nested key not marked used")
	}

	v, extra, ok = th.ResolveWith("lg", []string{"--text"}, []string{"--line-height"})
	if !ok || v != "1.125rem" || len(extra) != 0 {
		t.Errorf("ResolveWith(lg) = %q, %v, %v", v, extra, ok)
	}

	if _, _, ok := th.ResolveWith("xl", []string{"--text"}, nil); ok {
		t.Error("ResolveWith(xl) found, want miss")
	}
}

func TestPrefix(t *testing.T) {
	th := theme.New(zap.NewNop())
	th.SetPrefix("tw")
	mustAdd(t, th, "--color-red-500", "#ef4444", theme.FlagNone)

	if v, _ := th.Resolve("red-500", []string{"--color"}); v != "var(--tw-color-red-500)" {
		t.Errorf("Resolve = %q, want var(--tw-color-red-500)", v)
	}
	if !th.IsUsed("--tw-color-red-500") {
		t.Error("IsUsed(prefixed key) = false")
	}
	if got := th.Used(); !reflect.DeepEqual(got, []string{"--tw-color-red-500"}) {
		t.Errorf("Used = %v", got)
	}
	if got := th.Entries()[0].Key; got != "--tw-color-red-500" {
		t.Errorf("Entries()[0].Key = %q", got)
	}
}

func TestEscapedKeys(t *testing.T) {
	th := theme.New(zap.NewNop())
	mustAdd(t, th, `--width-1\.5`, "6px", theme.FlagNone)

	if v, ok := th.Resolve("1.5", []string{"--width"}); !ok || v != `var(--width-1\.5)` {
		t.Errorf("Resolve = %q, %v, want var(--width-1\\.5)", v, ok)
	}
}

func TestNamespace(t *testing.T) {
	th := theme.New(zap.NewNop())
	mustAdd(t, th, "--breakpoint-sm", "40rem", theme.FlagNone)
	mustAdd(t, th, "--breakpoint-md", "48rem", theme.FlagNone)
	mustAdd(t, th, "--breakpoint", "1px", theme.FlagNone)
	mustAdd(t, th, "--container-sm", "24rem", theme.FlagNone)

	entries := th.Namespace("--breakpoint")
	var names []string
	for _, e := range entries {
		names = append(names, e.Name)
	}
	if !reflect.DeepEqual(names, []string{"sm", "md", ""}) {
		t.Errorf("Namespace names = %q, want insertion order [sm md \"\"]", names)
	}
}

func TestTrackUsedVariables(t *testing.T) {
	th := theme.New(zap.NewNop())
	mustAdd(t, th, "--shadow-color", "red", theme.FlagNone)
	mustAdd(t, th, "--shadow-sm", "0 1px var(--shadow-color)", theme.FlagNone)
	mustAdd(t, th, "--opacity-hidden", "0", theme.FlagNone)

	nodes := []css.Node{
		css.NewRule(".x", css.Decl("box-shadow", "var(--shadow-sm)")),
		css.NewAtRule("keyframes", "fade", css.NewRule("to", css.Decl("opacity", "var(--opacity-hidden)"))),
	}
	th.TrackUsedVariables(nodes)

	if !th.IsUsed("--shadow-sm") {
		t.Error("--shadow-sm not used")
	}
	if !th.IsUsed("--shadow-color") {
		t.Error("--shadow-color referenced from --shadow-sm not used")
	}
	if th.IsUsed("--opacity-hidden") {
		t.Error("token referenced only from keyframes marked used")
	}
}

func TestFlagsString(t *testing.T) {
	tests := []struct {
		flags theme.Flags
		want  string
	}{
		{theme.FlagNone, "none"},
		{theme.FlagInline, "inline"},
		{theme.FlagDefault | theme.FlagReference, "reference|default"},
		{theme.FlagInline | theme.FlagUsed, "inline|used"},
	}
	for _, tt := range tests {
		if got := tt.flags.String(); got != tt.want {
			t.Errorf("Flags(%d).String() = %q, want %q", tt.flags, got, tt.want)
		}
	}
}
