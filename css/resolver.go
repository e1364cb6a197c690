package css

import (
	"sort"

	"go.uber.org/zap"
)

// Resolver matches stylesheet rules against element queries and folds the
// winners into property blocks. A resolver is immutable after creation
// and safe for concurrent use; resolution never mutates the stylesheet.
type Resolver struct {
	log      *zap.Logger
	defaults *PropertyBlock
	theme    []Rule
}

// NewResolver creates a resolver with the registry defaults block.
func NewResolver(log *zap.Logger) *Resolver {
	if log == nil {
		log = zap.NewNop()
	}
	return &Resolver{
		log:      log.Named("css-resolver"),
		defaults: DefaultBlock(),
	}
}

// WithTheme derives a resolver that carries the theme's variables in its
// defaults chain and considers the theme's rules before stylesheet rules.
func (r *Resolver) WithTheme(t *Theme) *Resolver {
	if t == nil {
		return r
	}
	bb := newBlockBuilder()
	bb.overlay(r.defaults)
	for name, v := range t.Variables {
		bb.set(name, v, 0)
	}
	return &Resolver{
		log:      r.log,
		defaults: bb.freeze(nil, nil),
		theme:    append(append([]Rule(nil), r.theme...), t.Rules...),
	}
}

// Defaults exposes the registry defaults block the resolver folds under
// every resolution.
func (r *Resolver) Defaults() *PropertyBlock {
	return r.defaults
}

type candidate struct {
	block *PropertyBlock
	spec  int
	order int
}

// Resolve computes the property block for the query: media rules are
// spliced in when their query matches the context, candidates are scored
// by specificity, sorted ascending with document order breaking ties, and
// overlaid in that order. The result chains to the query's parent block
// for inheritance and to the resolver defaults for everything else.
func (r *Resolver) Resolve(sheet *Stylesheet, q Query) *PropertyBlock {
	var cands []candidate
	order := 0
	var collect func(rules []Rule)
	collect = func(rules []Rule) {
		for i := range rules {
			rule := &rules[i]
			if rule.Media != nil {
				if rule.Media.Matches(q.Media) {
					collect(rule.Rules)
				}
				continue
			}
			if s := rule.Selector.Specificity(q); s > 0 {
				cands = append(cands, candidate{block: rule.Block, spec: s, order: order})
			}
			order++
		}
	}
	collect(r.theme)
	if sheet != nil {
		collect(sheet.Rules)
	}

	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].spec != cands[j].spec {
			return cands[i].spec < cands[j].spec
		}
		return cands[i].order < cands[j].order
	})

	bb := newBlockBuilder()
	if sheet != nil {
		for name, v := range sheet.Variables {
			bb.set(name, v, 0)
		}
	}
	for _, c := range cands {
		bb.overlay(c.block)
	}

	r.log.Debug("resolved query",
		zap.String("type", q.Type),
		zap.String("id", q.ID),
		zap.Strings("classes", q.Classes),
		zap.Int("matched", len(cands)))

	return bb.freeze(q.Parent, r.defaults)
}
