// Package theme implements the design token store shared by all utilities.
//
// Tokens are stored under unprefixed dash-path keys ("--color-red-500"). A
// configured prefix only changes externally visible names (variables emitted
// into CSS), so lookups never depend on it.
package theme

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"
)

// ErrInvalidNamespaceValue is returned when namespace clearing directive
// ("--color-*") carries anything but "initial".
var ErrInvalidNamespaceValue = errors.New("invalid theme value for namespace")

type entry struct {
	value string
	flags Flags
	seq   uint64      // insertion order
	used  atomic.Bool // FlagUsed, may be set concurrently during resolution
}

func (e *entry) allFlags() Flags {
	if e.used.Load() {
		return e.flags | FlagUsed
	}
	return e.flags
}

// Entry is a read-only view of a single theme token.
type Entry struct {
	Key   string // externally visible (prefixed) key
	Name  string // key relative to requested namespace, empty for the namespace key itself
	Value string
	Flags Flags
}

// Theme is a table of design tokens with layered precedence.
//
// Adding tokens must complete before resolution starts. After that the only
// mutation is setting FlagUsed, which is safe for concurrent use.
type Theme struct {
	log       *zap.Logger
	prefix    string
	values    map[string]*entry
	seq       uint64
	keyframes []string
}

// New creates an empty theme.
func New(log *zap.Logger) *Theme {
	if log == nil {
		log = zap.NewNop()
	}
	return &Theme{
		log:    log.Named("theme"),
		values: make(map[string]*entry),
	}
}

// Size returns number of tokens.
func (t *Theme) Size() int {
	return len(t.values)
}

// SetPrefix sets prefix applied to every externally visible key.
func (t *Theme) SetPrefix(prefix string) {
	t.prefix = strings.Trim(prefix, "-")
}

// Prefix returns configured prefix.
func (t *Theme) Prefix() string {
	return t.prefix
}

// Add inserts or overwrites key. Value "initial" removes the key; key ending
// with "-*" and value "initial" clears the whole namespace ("--*" clears
// everything). A FlagDefault write never overrides existing non-default
// entry.
func (t *Theme) Add(key, value string, flags Flags) error {
	key = unescapeKey(key)
	value = strings.TrimSpace(value)

	if base, ok := strings.CutSuffix(key, "-*"); ok {
		if value != "initial" {
			return fmt.Errorf("%w: `%s` for namespace `%s`", ErrInvalidNamespaceValue, value, key)
		}
		if key == "--*" {
			t.log.Debug("Clearing theme", zap.Int("removed", len(t.values)))
			clear(t.values)
		} else {
			t.ClearNamespace(base, FlagNone)
		}
		return nil
	}

	if flags.Has(FlagDefault) {
		if existing, ok := t.values[key]; ok && !existing.flags.Has(FlagDefault) {
			return nil
		}
	}

	if value == "initial" {
		delete(t.values, key)
		return nil
	}

	flags &^= FlagUsed
	if existing, ok := t.values[key]; ok {
		existing.value, existing.flags = value, flags
		return nil
	}
	t.seq++
	t.values[key] = &entry{value: value, flags: flags, seq: t.seq}
	return nil
}

// ClearNamespace removes every key starting with namespace except keys
// shadowed by more specific namespaces. When flags is not FlagNone only
// entries carrying all of them are removed.
func (t *Theme) ClearNamespace(namespace string, flags Flags) {
	var removed int
	for key, e := range t.values {
		if !strings.HasPrefix(key, namespace) {
			continue
		}
		if key != namespace && !strings.HasPrefix(key, namespace+"-") {
			continue
		}
		if flags != FlagNone && !e.flags.Has(flags) {
			continue
		}
		if isIgnoredKey(key, namespace) {
			continue
		}
		delete(t.values, key)
		removed++
	}
	t.log.Debug("Cleared theme namespace", zap.String("namespace", namespace), zap.Int("removed", removed))
}

// Get returns value of the first existing key.
func (t *Theme) Get(keys []string) (string, bool) {
	for _, key := range keys {
		if e, ok := t.values[key]; ok {
			return e.value, true
		}
	}
	return "", false
}

// Flags returns flags of a key given in its externally visible form.
func (t *Theme) Flags(key string) Flags {
	if e, ok := t.values[t.unprefixKey(unescapeKey(key))]; ok {
		return e.allFlags()
	}
	return FlagNone
}

// HasDefault reports whether key exists and was added as a default, so
// overriding it would not conflict with an explicitly authored token.
func (t *Theme) HasDefault(key string) bool {
	return t.Flags(key).Has(FlagDefault)
}

// IsUsed reports whether key was referenced by generated output.
func (t *Theme) IsUsed(key string) bool {
	return t.Flags(key).Has(FlagUsed)
}

// resolveKey finds the first namespace which has candidate value. Empty
// candidate value means the namespace key itself.
func (t *Theme) resolveKey(value string, namespaces []string) (string, *entry) {
	for _, namespace := range namespaces {
		key := namespace
		if value != "" {
			key = namespace + "-" + value
		}
		e, ok := t.values[key]
		if !ok && value != "" && strings.Contains(value, ".") {
			// "4.5" is stored as "--spacing-4_5", dots are not allowed in keys
			key = namespace + "-" + strings.ReplaceAll(value, ".", "_")
			e, ok = t.values[key]
		}
		if !ok || isIgnoredKey(key, namespace) {
			continue
		}
		return key, e
	}
	return "", nil
}

// varRef returns var() reference to key. Reference entries carry their value
// as fallback, since the variable itself is never emitted.
func (t *Theme) varRef(key string, e *entry) string {
	if e.flags.Has(FlagReference) {
		return "var(" + escapeKey(t.PrefixKey(key)) + ", " + e.value + ")"
	}
	return "var(" + escapeKey(t.PrefixKey(key)) + ")"
}

// Resolve looks candidate value up in namespaces in order. Inline entries
// resolve to their literal value, all others to var() reference so the token
// stays themeable at runtime. Found entry is marked used.
func (t *Theme) Resolve(value string, namespaces []string) (string, bool) {
	return t.ResolveWithFlags(value, namespaces, FlagNone)
}

// ResolveWithFlags is Resolve with extra flags forced on the lookup, e.g.
// FlagInline where var() is not allowed.
func (t *Theme) ResolveWithFlags(value string, namespaces []string, flags Flags) (string, bool) {
	key, e := t.resolveKey(value, namespaces)
	if e == nil {
		return "", false
	}
	t.markUsed(key, e)
	if (flags | e.flags).Has(FlagInline) {
		return e.value, true
	}
	return t.varRef(key, e), true
}

// ResolveValue is Resolve which always returns the raw value.
func (t *Theme) ResolveValue(value string, namespaces []string) (string, bool) {
	key, e := t.resolveKey(value, namespaces)
	if e == nil {
		return "", false
	}
	t.markUsed(key, e)
	return e.value, true
}

// ResolveWith resolves primary key and its siblings formed by appending each
// of nested suffixes ("--text-sm" + "--line-height"). Missing siblings are
// not reported.
func (t *Theme) ResolveWith(value string, namespaces, nested []string) (string, map[string]string, bool) {
	key, e := t.resolveKey(value, namespaces)
	if e == nil {
		return "", nil, false
	}
	t.markUsed(key, e)

	extra := make(map[string]string, len(nested))
	for _, suffix := range nested {
		nestedKey := key + suffix
		ne, ok := t.values[nestedKey]
		if !ok {
			continue
		}
		t.markUsed(nestedKey, ne)
		if ne.flags.Has(FlagInline) {
			extra[suffix] = ne.value
		} else {
			extra[suffix] = t.varRef(nestedKey, ne)
		}
	}

	if e.flags.Has(FlagInline) {
		return e.value, extra, true
	}
	return t.varRef(key, e), extra, true
}

// Namespace returns all entries under namespace in insertion order. The
// namespace key itself is reported with empty Name.
func (t *Theme) Namespace(namespace string) []Entry {
	var result []Entry
	for _, key := range t.orderedKeys() {
		e := t.values[key]
		var name string
		switch {
		case key == namespace:
		case strings.HasPrefix(key, namespace+"-"):
			if isIgnoredKey(key, namespace) {
				continue
			}
			name = key[len(namespace)+1:]
		default:
			continue
		}
		result = append(result, Entry{Key: t.PrefixKey(key), Name: name, Value: e.value, Flags: e.allFlags()})
	}
	return result
}

// KeysInNamespaces returns names of tokens directly under any of namespaces,
// nested keys ("xs--line-height") excluded.
func (t *Theme) KeysInNamespaces(namespaces []string) []string {
	var names []string
	for _, namespace := range namespaces {
		prefix := namespace + "-"
		for _, key := range t.orderedKeys() {
			if !strings.HasPrefix(key, prefix) {
				continue
			}
			if strings.Contains(key[2:], "--") {
				continue
			}
			if isIgnoredKey(key, namespace) {
				continue
			}
			names = append(names, key[len(prefix):])
		}
	}
	return names
}

// Entries returns all tokens in insertion order with prefixed keys.
func (t *Theme) Entries() []Entry {
	result := make([]Entry, 0, len(t.values))
	for _, key := range t.orderedKeys() {
		e := t.values[key]
		result = append(result, Entry{Key: t.PrefixKey(key), Value: e.value, Flags: e.allFlags()})
	}
	return result
}

// Used returns externally visible keys of all used tokens in insertion order.
func (t *Theme) Used() []string {
	var keys []string
	for _, key := range t.orderedKeys() {
		if t.values[key].used.Load() {
			keys = append(keys, t.PrefixKey(key))
		}
	}
	return keys
}

func (t *Theme) orderedKeys() []string {
	keys := make([]string, 0, len(t.values))
	for key := range t.values {
		keys = append(keys, key)
	}
	slices.SortFunc(keys, func(a, b string) int {
		return int(t.values[a].seq) - int(t.values[b].seq)
	})
	return keys
}

// AddKeyframes records name of keyframes defined together with theme.
func (t *Theme) AddKeyframes(name string) {
	if !slices.Contains(t.keyframes, name) {
		t.keyframes = append(t.keyframes, name)
	}
}

// Keyframes returns recorded keyframes names.
func (t *Theme) Keyframes() []string {
	return slices.Clone(t.keyframes)
}

// PrefixKey converts internal key into externally visible one.
func (t *Theme) PrefixKey(key string) string {
	if t.prefix == "" {
		return key
	}
	return "--" + t.prefix + "-" + strings.TrimPrefix(key, "--")
}

func (t *Theme) unprefixKey(key string) string {
	if t.prefix == "" {
		return key
	}
	if rest, ok := strings.CutPrefix(key, "--"+t.prefix+"-"); ok {
		return "--" + rest
	}
	return key
}
