// Package utilities holds the catalog of utility families and the registry
// mapping class name roots to their resolution strategies.
package utilities

import (
	"errors"
	"fmt"
	"sort"

	"github.com/maruel/natural"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"twc/css"
	"twc/theme"
)

// ErrDuplicateUtility is returned in strict mode when a utility root is
// registered twice with the same kind.
var ErrDuplicateUtility = errors.New("duplicate utility")

// ArbitraryProperty is the registry key of the strategy handling bare
// arbitrary properties ("[color:red]"), which have no root.
const ArbitraryProperty = "[arbitrary-property]"

// ResolveFunc turns candidate into CSS nodes. Empty result means the
// candidate is not valid for this strategy.
type ResolveFunc func(c Candidate, th *theme.Theme) []css.Node

// Strategy is a registered resolution function together with its kind.
type Strategy struct {
	Kind    Kind
	Resolve ResolveFunc
}

// SuggestionGroup describes values one root accepts, for completion.
type SuggestionGroup struct {
	Values            []string
	Modifiers         []string
	SupportsNegative  bool
	SupportsFractions bool
	HasDefaultValue   bool
}

// SuggestFunc produces completion metadata on demand.
type SuggestFunc func() []SuggestionGroup

// Registry maps utility roots to strategies. A root may have one static and
// one functional strategy ("flex" is both "display: flex" and "flex: 1").
// Registration must complete before resolution starts.
type Registry struct {
	log         *zap.Logger
	strict      bool
	utilities   map[string][]Strategy
	suggestions map[string]SuggestFunc
}

// NewRegistry creates empty registry. In strict mode duplicate registrations
// are errors, otherwise later registration replaces earlier one.
func NewRegistry(log *zap.Logger, strict bool) *Registry {
	if log == nil {
		log = zap.NewNop()
	}
	return &Registry{
		log:         log.Named("registry"),
		strict:      strict,
		utilities:   make(map[string][]Strategy),
		suggestions: make(map[string]SuggestFunc),
	}
}

// Static registers strategy for roots used without value ("flex", "sr-only").
func (r *Registry) Static(name string, resolve ResolveFunc) error {
	return r.register(name, KindStatic, resolve)
}

// Functional registers strategy for roots taking a value ("mt-4", "bg-[red]").
func (r *Registry) Functional(name string, resolve ResolveFunc) error {
	return r.register(name, KindFunctional, resolve)
}

// Arbitrary registers strategy for arbitrary properties.
func (r *Registry) Arbitrary(resolve ResolveFunc) error {
	return r.register(ArbitraryProperty, KindArbitrary, resolve)
}

func (r *Registry) register(name string, kind Kind, resolve ResolveFunc) error {
	strategies := r.utilities[name]
	idx := lo.IndexOf(lo.Map(strategies, func(s Strategy, _ int) Kind { return s.Kind }), kind)
	if idx < 0 {
		r.utilities[name] = append(strategies, Strategy{Kind: kind, Resolve: resolve})
		return nil
	}
	if r.strict {
		return fmt.Errorf("%w: %s (%s)", ErrDuplicateUtility, name, kind)
	}
	r.log.Debug("Utility registration replaced", zap.String("name", name), zap.Stringer("kind", kind))
	strategies[idx].Resolve = resolve
	return nil
}

// Has reports whether root has strategy of the given kind.
func (r *Registry) Has(name string, kind Kind) bool {
	return lo.ContainsBy(r.utilities[name], func(s Strategy) bool { return s.Kind == kind })
}

// Get returns all strategies registered under root.
func (r *Registry) Get(name string) []Strategy {
	return r.utilities[name]
}

// Lookup returns strategy of the given kind.
func (r *Registry) Lookup(name string, kind Kind) (Strategy, bool) {
	return lo.Find(r.utilities[name], func(s Strategy) bool { return s.Kind == kind })
}

// Kind returns kinds registered under root.
func (r *Registry) Kind(name string) []Kind {
	return lo.Map(r.utilities[name], func(s Strategy, _ int) Kind { return s.Kind })
}

// Keys returns registered roots of the given kind in natural order.
func (r *Registry) Keys(kind Kind) []string {
	keys := lo.Filter(lo.Keys(r.utilities), func(name string, _ int) bool {
		return name != ArbitraryProperty && r.Has(name, kind)
	})
	sort.Sort(natural.StringSlice(keys))
	return keys
}

// Suggest registers completion supplier for root, replacing previous one.
func (r *Registry) Suggest(name string, supplier SuggestFunc) {
	r.suggestions[name] = supplier
}

// Suggestions returns completion metadata for root.
func (r *Registry) Suggestions(name string) []SuggestionGroup {
	if supplier, ok := r.suggestions[name]; ok {
		return supplier()
	}
	return nil
}
