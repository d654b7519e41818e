// Package compiler is the resolution layer: it dispatches parsed candidates to
// strategies registered in the utility catalog and collects produced nodes.
package compiler

import (
	"context"
	"fmt"
	"sort"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/maruel/natural"
	"github.com/samber/lo"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"twc/common"
	"twc/css"
	"twc/theme"
	"twc/utilities"
)

// Source is a theme token source applied on top of built-in tokens.
type Source struct {
	Name   string
	Format common.ThemeFormat
	Data   []byte
}

// Options controls how compiler is assembled.
type Options struct {
	Prefix       string
	Strict       bool
	Important    bool // mark every declaration !important
	Defaults     bool // start from built-in theme
	Sources      []Source
	HintDistance int // maximum edit distance of "did you mean" hints, 0 disables
}

// Compiler owns one theme and one utility registry. Compilers are
// independent of each other.
type Compiler struct {
	log      *zap.Logger
	opts     Options
	theme    *theme.Theme
	registry *utilities.Registry
	roots    []string
}

// New builds theme from options and registers the utility catalog. Returned
// error aggregates every configuration problem found.
func New(opts Options, log *zap.Logger) (*Compiler, error) {
	if log == nil {
		log = zap.NewNop()
	}

	var (
		th  *theme.Theme
		err error
	)
	if opts.Defaults {
		if th, err = theme.Default(log); err != nil {
			return nil, err
		}
	} else {
		th = theme.New(log)
	}

	parser := css.NewParser(log)
	for _, src := range opts.Sources {
		switch src.Format {
		case common.ThemeFormatToml:
			err = multierr.Append(err, theme.LoadTOML(th, src.Data, src.Name))
		default:
			err = multierr.Append(err, theme.LoadCSS(th, src.Data, parser, src.Name))
		}
	}
	if err != nil {
		return nil, fmt.Errorf("unable to load theme: %w", err)
	}
	th.SetPrefix(opts.Prefix)

	registry := utilities.NewRegistry(log, opts.Strict)
	if err := utilities.Register(registry, th); err != nil {
		return nil, fmt.Errorf("unable to register utilities: %w", err)
	}

	roots := lo.Uniq(append(registry.Keys(utilities.KindStatic), registry.Keys(utilities.KindFunctional)...))
	sort.Sort(natural.StringSlice(roots))

	c := &Compiler{
		log:      log.Named("compiler"),
		opts:     opts,
		theme:    th,
		registry: registry,
		roots:    roots,
	}
	c.log.Debug("Compiler ready", zap.Int("tokens", th.Size()), zap.Int("roots", len(roots)), zap.String("prefix", opts.Prefix))
	return c, nil
}

// Theme returns theme used for resolution.
func (c *Compiler) Theme() *theme.Theme {
	return c.theme
}

// Registry returns utility registry.
func (c *Compiler) Registry() *utilities.Registry {
	return c.registry
}

// Output is the result of a single resolved candidate.
type Output struct {
	Candidate utilities.Candidate
	Nodes     []css.Node
}

// Unknown is a candidate whose root has no registered strategy.
type Unknown struct {
	Candidate utilities.Candidate
	Hint      string // closest registered root, may be empty
}

// Result collects compilation outcome in candidate order.
type Result struct {
	Outputs []Output
	Unknown []Unknown
	Skipped []utilities.Candidate // known root, but no strategy produced output
}

// Nodes returns all produced nodes in candidate order.
func (r *Result) Nodes() []css.Node {
	var nodes []css.Node
	for _, o := range r.Outputs {
		nodes = append(nodes, o.Nodes...)
	}
	return nodes
}

// Compile resolves candidates in order and marks theme tokens referenced by
// produced nodes as used. Resolution misses are not errors, only
// cancellation is.
func (c *Compiler) Compile(ctx context.Context, candidates []utilities.Candidate) (*Result, error) {
	res := &Result{}
	for _, cand := range candidates {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		nodes, known := c.Resolve(cand)
		switch {
		case !known:
			u := Unknown{Candidate: cand, Hint: c.hint(cand.Root)}
			if u.Hint != "" {
				c.log.Warn("Unknown utility", zap.Stringer("candidate", cand), zap.String("did you mean", u.Hint))
			} else {
				c.log.Warn("Unknown utility", zap.Stringer("candidate", cand))
			}
			res.Unknown = append(res.Unknown, u)
		case len(nodes) == 0:
			c.log.Debug("Utility produced no output", zap.Stringer("candidate", cand))
			res.Skipped = append(res.Skipped, cand)
		default:
			res.Outputs = append(res.Outputs, Output{Candidate: cand, Nodes: nodes})
		}
	}
	c.theme.TrackUsedVariables(res.Nodes())
	return res, nil
}

// Resolve resolves single candidate. The second result is false when no
// strategy is registered for candidate root.
func (c *Compiler) Resolve(cand utilities.Candidate) ([]css.Node, bool) {
	strategies, cand := c.strategies(cand)
	if len(strategies) == 0 {
		return nil, false
	}
	for _, s := range strategies {
		if nodes := s.Resolve(cand, c.theme); len(nodes) > 0 {
			if cand.Important || c.opts.Important {
				markImportant(nodes)
			}
			return nodes, true
		}
	}
	return nil, true
}

// strategies returns strategies to try for candidate, in order. Negated
// keywords ("-translate-full") are registered as separate static utilities,
// for them candidate is returned with negation consumed.
func (c *Compiler) strategies(cand utilities.Candidate) ([]utilities.Strategy, utilities.Candidate) {
	switch cand.Kind {
	case utilities.KindArbitrary:
		if s, ok := c.registry.Lookup(utilities.ArbitraryProperty, utilities.KindArbitrary); ok {
			return []utilities.Strategy{s}, cand
		}
		return nil, cand
	case utilities.KindStatic:
		if cand.Negative {
			if s, ok := c.registry.Lookup("-"+cand.Root, utilities.KindStatic); ok {
				cand.Negative = false
				return []utilities.Strategy{s}, cand
			}
		}
		var result []utilities.Strategy
		if s, ok := c.registry.Lookup(cand.Root, utilities.KindStatic); ok {
			result = append(result, s)
		}
		// bare "shadow" is a functional utility without value
		if s, ok := c.registry.Lookup(cand.Root, utilities.KindFunctional); ok && !cand.Value.IsPresent() {
			result = append(result, s)
		}
		return result, cand
	default:
		if s, ok := c.registry.Lookup(cand.Root, utilities.KindFunctional); ok {
			return []utilities.Strategy{s}, cand
		}
		return nil, cand
	}
}

func markImportant(nodes []css.Node) {
	css.Walk(nodes, func(n css.Node) css.WalkAction {
		switch v := n.(type) {
		case *css.AtRoot:
			// @property scaffolding is not part of the utility
			return css.WalkSkipChildren
		case *css.Declaration:
			v.Important = true
		}
		return css.WalkContinue
	})
}

// hint returns registered root closest to root by edit distance.
func (c *Compiler) hint(root string) string {
	if c.opts.HintDistance <= 0 || root == "" || len(c.roots) == 0 {
		return ""
	}
	best := lo.MinBy(c.roots, func(a, b string) bool {
		return levenshtein.Distance(root, a) < levenshtein.Distance(root, b)
	})
	if levenshtein.Distance(root, best) > c.opts.HintDistance {
		return ""
	}
	return best
}

// Suggestion is completion metadata of one utility root.
type Suggestion struct {
	Root   string
	Kinds  []utilities.Kind
	Groups []utilities.SuggestionGroup
}

// Suggest returns completion metadata for roots fuzzy matching query, all
// roots when query is empty. Roots are in natural order.
func (c *Compiler) Suggest(query string) []Suggestion {
	roots := lo.Filter(c.roots, func(root string, _ int) bool {
		return query == "" || fuzzy.Match(query, root)
	})
	return lo.Map(roots, func(root string, _ int) Suggestion {
		return Suggestion{
			Root:   root,
			Kinds:  c.registry.Kind(root),
			Groups: c.registry.Suggestions(root),
		}
	})
}
