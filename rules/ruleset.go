package rules

import "sort"

// ruleKey identifies a rule for deduplication. Declarations are deliberately
// not part of the key: the selector is derived from the literal raw class
// token, so identical keys imply identical declarations by construction.
type ruleKey struct {
	selector  string
	media     string
	pseudo    string
	important bool
}

// Set accumulates the rules of one build. Add keeps first-seen rules and
// drops later duplicates; Sort establishes the final deterministic order and
// must run exactly once, after all producers have finished.
type Set struct {
	rules []*Rule
	seen  map[ruleKey]struct{}
}

// NewSet creates an empty rule set.
func NewSet() *Set {
	return &Set{seen: make(map[ruleKey]struct{})}
}

// Add inserts a rule unless an equal-keyed rule was added before.
// Returns true when the rule was kept.
func (s *Set) Add(r *Rule) bool {
	k := ruleKey{selector: r.Selector, media: r.Media, pseudo: r.Pseudo, important: r.Important}
	if _, dup := s.seen[k]; dup {
		return false
	}
	s.seen[k] = struct{}{}
	s.rules = append(s.rules, r)
	return true
}

// Len returns the number of retained rules.
func (s *Set) Len() int {
	return len(s.rules)
}

// Rules exposes the retained rules in their current order.
func (s *Set) Rules() []*Rule {
	return s.rules
}

// priority tiers, ascending. Plain CSS resolves same-specificity utility
// rules by source order, so later breakpoints and more specific shapes must
// come later in the stream.
const (
	tierPlain = iota
	tierVariant
	tierResponsive
	tierImportant
)

func tier(r *Rule) int {
	switch {
	case r.Important:
		return tierImportant
	case r.Media != "" || r.Container != "":
		return tierResponsive
	case r.Pseudo != "" || r.ParentSelector != "":
		return tierVariant
	default:
		return tierPlain
	}
}

// mediaOrder ranks rules within the responsive tier: named breakpoints by
// their width key (max-width sentinels included), anything else last.
func mediaOrder(r *Rule) int {
	if r.Media != "" && r.MediaWidth == 0 {
		return 1 << 30
	}
	return r.MediaWidth
}

// Sort establishes the total output order: shape tier, then breakpoint
// width, then lexicographic selector for full determinism. Sorting the same
// set twice yields byte-identical order.
func (s *Set) Sort() {
	sort.SliceStable(s.rules, func(i, j int) bool {
		a, b := s.rules[i], s.rules[j]
		if ta, tb := tier(a), tier(b); ta != tb {
			return ta < tb
		}
		if ma, mb := mediaOrder(a), mediaOrder(b); ma != mb {
			return ma < mb
		}
		return a.Selector < b.Selector
	})
}
