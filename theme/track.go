package theme

import (
	"strings"

	"go.uber.org/zap"

	"twc/css"
)

// markUsed sets FlagUsed on entry and, on the first transition, on every
// theme token its value refers to through var().
func (t *Theme) markUsed(key string, e *entry) bool {
	if e.used.Swap(true) {
		return false
	}
	for _, ref := range css.VarReferences(e.value) {
		if nested, ok := t.values[t.unprefixKey(ref)]; ok {
			t.markUsed(ref, nested)
		}
	}
	t.log.Debug("Theme token used", zap.String("key", key))
	return true
}

// MarkUsed marks externally visible key as used. Returns true when the key
// exists and was not used before.
func (t *Theme) MarkUsed(key string) bool {
	key = t.unprefixKey(unescapeKey(key))
	e, ok := t.values[key]
	if !ok {
		return false
	}
	return t.markUsed(key, e)
}

// Use marks token as used without a lookup, for tokens only discovered
// through literal var() references in already generated CSS.
func (t *Theme) Use(key string) {
	t.MarkUsed(key)
}

// TrackUsedVariables marks as used every theme token referenced with var()
// in declaration values of nodes. Keyframes are only emitted when referenced
// by an animation, so their bodies are not considered here.
func (t *Theme) TrackUsedVariables(nodes []css.Node) {
	css.Walk(nodes, func(n css.Node) css.WalkAction {
		switch v := n.(type) {
		case *css.AtRule:
			if v.Name == "keyframes" {
				return css.WalkSkipChildren
			}
		case *css.Declaration:
			for _, ref := range css.VarReferences(v.Value) {
				t.MarkUsed(ref)
			}
		}
		return css.WalkContinue
	})
}

// Characters allowed in theme keys unescaped, besides letters and digits.
const keySafe = "-_"

// escapeKey escapes characters which are not valid inside CSS identifiers.
func escapeKey(key string) string {
	if !strings.HasPrefix(key, "--") {
		return key
	}
	var b strings.Builder
	b.Grow(len(key) + 4)
	b.WriteString("--")
	for _, r := range key[2:] {
		if r < 0x80 && !isAlnum(r) && !strings.ContainsRune(keySafe, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// unescapeKey drops backslash escapes.
func unescapeKey(key string) string {
	if !strings.Contains(key, `\`) {
		return key
	}
	var b strings.Builder
	escaped := false
	for _, r := range key {
		if r == '\\' && !escaped {
			escaped = true
			continue
		}
		escaped = false
		b.WriteRune(r)
	}
	return b.String()
}

func isAlnum(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9'
}
