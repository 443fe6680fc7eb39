package formkit

import (
	"slices"
	"strings"

	"github.com/dmitrymomot/formkit/pkg/cache"
	"github.com/dmitrymomot/formkit/pkg/fields"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

const (
	ruleSeparator   = "|"
	paramsMarker    = ":"
	paramSeparator  = ","
	referencePrefix = "@"
)

// ruleDescriptor is the static part of a rule token.
type ruleDescriptor struct {
	name      string
	params    []string
	validator validator.Func
}

// rule is a descriptor with parameter values resolved for one call.
type rule struct {
	name      string
	params    []any
	validator validator.Func
}

// resolver turns the rule chains declared on a group into runnable rules.
// Descriptors are cached per token; parameter values never are, since
// referenced fields change between calls.
type resolver struct {
	attr     string
	registry *validator.Registry
	store    *fields.Store
	cache    *cache.LRUCache[string, ruleDescriptor]
}

func newResolver(attr string, registry *validator.Registry, store *fields.Store, size int) *resolver {
	return &resolver{
		attr:     attr,
		registry: registry,
		store:    store,
		cache:    cache.NewLRUCache[string, ruleDescriptor](size),
	}
}

// chain returns the union of the tokens declared by the members of name, in
// first-seen order.
func (r *resolver) chain(name string) []string {
	var tokens []string
	for _, f := range r.store.Group(name) {
		for _, tok := range splitChain(f.GetAttr(r.attr)) {
			if !slices.Contains(tokens, tok) {
				tokens = append(tokens, tok)
			}
		}
	}
	return tokens
}

func splitChain(declared string) []string {
	var tokens []string
	for tok := range strings.SplitSeq(declared, ruleSeparator) {
		if tok = strings.TrimSpace(tok); tok != "" {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

// resolve returns the rules of name with parameters bound to current values.
func (r *resolver) resolve(name string) []rule {
	tokens := r.chain(name)
	rules := make([]rule, 0, len(tokens))
	for _, tok := range tokens {
		d := r.descriptor(tok)
		rules = append(rules, rule{
			name:      d.name,
			params:    r.bind(d.params),
			validator: d.validator,
		})
	}
	return rules
}

func (r *resolver) descriptor(token string) ruleDescriptor {
	if d, ok := r.cache.Get(token); ok {
		return d
	}

	d := parseToken(token)
	fn, ok := r.registry.Lookup(d.name)
	if !ok {
		// not cached, so a rule registered later is picked up
		return d
	}
	d.validator = fn
	r.cache.Put(token, d)
	return d
}

func parseToken(token string) ruleDescriptor {
	name, rawParams, hasParams := strings.Cut(token, paramsMarker)
	d := ruleDescriptor{name: strings.TrimSpace(name)}
	if !hasParams {
		return d
	}
	for p := range strings.SplitSeq(rawParams, paramSeparator) {
		d.params = append(d.params, strings.TrimSpace(p))
	}
	return d
}

func (r *resolver) bind(params []string) []any {
	if len(params) == 0 {
		return nil
	}
	out := make([]any, len(params))
	for i, p := range params {
		if ref, ok := strings.CutPrefix(p, referencePrefix); ok {
			out[i] = r.store.FieldValue(ref)
			continue
		}
		out[i] = p
	}
	return out
}

func (r *resolver) reset() {
	r.cache.Clear()
}
