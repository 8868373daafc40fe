// Package values resolves base utilities into CSS declarations. The registry
// is a pure function table built once at startup and passed explicitly to the
// rule composer: a map of static utilities plus per-family resolver functions
// dispatched by longest-prefix match over the utility name.
package values

import (
	"sort"
	"strings"
)

// Declaration is one property/value pair produced for a utility.
type Declaration struct {
	Property string
	Value    string
}

// Request carries the dissected utility to a family resolver.
type Request struct {
	Family      string // matched family prefix, e.g. "bg"
	Value       string // value token after the prefix, e.g. "blue-500"; empty for bare utilities
	Negative    bool   // utility began with '-'
	IsArbitrary bool   // value token is a bracketed payload
	Arbitrary   string // unescaped bracket payload, set iff IsArbitrary
}

// Resolver produces declarations for one utility family. A false return
// means the value token is not recognized by this family.
type Resolver func(Request) ([]Declaration, bool)

// Registry dispatches utilities to their family resolvers. Built once, never
// mutated afterwards, safe for concurrent use.
type Registry struct {
	statics  map[string][]Declaration
	families map[string]Resolver
	prefixes []string // family prefixes, longest first
}

// NewRegistry builds the registry with the full built-in utility table.
func NewRegistry() *Registry {
	r := &Registry{
		statics:  staticUtilities(),
		families: make(map[string]Resolver),
	}
	registerSpacing(r)
	registerSizing(r)
	registerColors(r)
	registerTypography(r)
	registerFlexGrid(r)
	registerBorders(r)
	registerEffects(r)

	r.prefixes = make([]string, 0, len(r.families))
	for p := range r.families {
		r.prefixes = append(r.prefixes, p)
	}
	sort.Slice(r.prefixes, func(i, j int) bool {
		if len(r.prefixes[i]) != len(r.prefixes[j]) {
			return len(r.prefixes[i]) > len(r.prefixes[j])
		}
		return r.prefixes[i] < r.prefixes[j]
	})
	return r
}

// register adds one family resolver. Later registrations of the same prefix
// are a programming error and panic immediately.
func (r *Registry) register(prefix string, fn Resolver) {
	if _, dup := r.families[prefix]; dup {
		panic("duplicate utility family: " + prefix)
	}
	r.families[prefix] = fn
}

// Resolve maps a base utility to its declarations. A false return means the
// utility is unrecognized: the caller emits no rule and moves on.
func (r *Registry) Resolve(utility string, isArbitrary bool, arbitrary string) ([]Declaration, bool) {
	u := utility
	negative := false
	if strings.HasPrefix(u, "-") {
		negative = true
		u = u[1:]
	}

	if decls, ok := r.statics[u]; ok && !negative {
		out := make([]Declaration, len(decls))
		copy(out, decls)
		return out, true
	}

	for _, p := range r.prefixes {
		req := Request{Family: p, Negative: negative, IsArbitrary: isArbitrary, Arbitrary: arbitrary}
		switch {
		case u == p:
			// bare utility, e.g. "border"
		case strings.HasPrefix(u, p+"-"):
			req.Value = u[len(p)+1:]
		default:
			continue
		}
		if decls, ok := r.families[p](req); ok {
			return decls, true
		}
	}
	return nil, false
}

// arbitraryValue unescapes a bracket payload: underscores stand for spaces
// in class attribute tokens.
func arbitraryValue(payload string) string {
	return strings.ReplaceAll(payload, "_", " ")
}

func one(property, value string) []Declaration {
	return []Declaration{{Property: property, Value: value}}
}
