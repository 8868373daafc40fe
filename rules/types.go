// Package rules composes parsed utility classes into CSS rules and owns the
// accumulated rule set for one build: composition, deduplication,
// deterministic ordering and final serialization.
package rules

import "ucss/values"

// Rule is the unit of CSS output. It is fully determined by one parsed class
// name, owns its declarations and wrapper strings exclusively, and is never
// mutated after insertion into a Set.
type Rule struct {
	Selector       string               // escaped "." + raw class name
	Declarations   []values.Declaration // ordered, unique per property (last write wins)
	Pseudo         string               // accumulated pseudo-class/element/attribute suffix
	ParentSelector string               // accumulated dark/group/peer prefix, ends with a combinator
	Media          string               // media wrapper query, empty when unwrapped
	Container      string               // container wrapper query, independent of Media
	MediaWidth     int                  // named breakpoint sort key, zero otherwise
	Important      bool                 // append !important to every declaration at render time
}

// setDeclaration writes one declaration, replacing an earlier value for the
// same property while keeping first-write position.
func (r *Rule) setDeclaration(d values.Declaration) {
	for i := range r.Declarations {
		if r.Declarations[i].Property == d.Property {
			r.Declarations[i].Value = d.Value
			return
		}
	}
	r.Declarations = append(r.Declarations, d)
}

// DarkStrategy selects how the dark: variant resolves.
type DarkStrategy int

const (
	// DarkStrategyMedia wraps dark rules in a prefers-color-scheme query.
	DarkStrategyMedia DarkStrategy = iota
	// DarkStrategyClass scopes dark rules under an ancestor class selector.
	DarkStrategyClass
)

// Options carries build-wide composition settings.
type Options struct {
	Dark         DarkStrategy
	DarkSelector string // ancestor class for DarkStrategyClass; "dark" when empty
}

func (o Options) darkSelector() string {
	if o.DarkSelector == "" {
		return "dark"
	}
	return o.DarkSelector
}
