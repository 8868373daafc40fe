package class

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidClassName is returned for input that is empty after trimming.
// It is the only hard failure class name parsing can produce - anything else
// is left for later stages to recognize or silently skip.
var ErrInvalidClassName = errors.New("invalid class name")

// Parse turns one raw class name string into its structured form.
//
// A ':' separates variants only at bracket depth zero, so arbitrary payloads
// may contain colons ("[@media(min-width:900px)]:flex"). The last top-level
// ':' divides variants from the base utility.
func Parse(raw string) (*Parsed, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidClassName, raw)
	}

	p := &Parsed{Raw: s}

	body := s
	if body[0] == '!' {
		p.IsImportant = true
		body = body[1:]
		if body == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidClassName, raw)
		}
	}

	// Collect positions of top-level variant separators.
	var seps []int
	depth := 0
	for i := 0; i < len(body); i++ {
		switch body[i] {
		case '[':
			depth++
		case ']':
			if depth > 0 {
				depth--
			}
		case ':':
			if depth == 0 {
				seps = append(seps, i)
			}
		}
	}

	start := 0
	for _, sep := range seps {
		p.Variants = append(p.Variants, splitVariant(body[start:sep]))
		start = sep + 1
	}
	p.Utility = strings.Clone(body[start:])

	// Arbitrary value payload: substring strictly between the first '[' and
	// the last ']' of the utility, raw and unescaped.
	if open := strings.IndexByte(p.Utility, '['); open >= 0 {
		if close := strings.LastIndexByte(p.Utility, ']'); close > open {
			p.IsArbitrary = true
			p.ArbitraryValue = p.Utility[open+1 : close]
		}
	}
	return p, nil
}

// splitVariant separates a variant segment into token and optional slash
// qualifier ("group/sidebar" -> "group", "sidebar"). The slash is recognized
// only outside brackets so arbitrary variant payloads keep theirs.
func splitVariant(seg string) Variant {
	depth := 0
	for i := 0; i < len(seg); i++ {
		switch seg[i] {
		case '[':
			depth++
		case ']':
			if depth > 0 {
				depth--
			}
		case '/':
			if depth == 0 {
				return Variant{Token: strings.Clone(seg[:i]), Name: strings.Clone(seg[i+1:])}
			}
		}
	}
	return Variant{Token: strings.Clone(seg)}
}

// SplitUtility divides a base utility into family name and value token at the
// first '-' that is not at position 0. A leading '-' marks a negative-value
// utility ("-mt-4"): it is stripped before splitting and reported separately.
func SplitUtility(utility string) (name, value string, negative bool) {
	u := utility
	if strings.HasPrefix(u, "-") {
		negative = true
		u = u[1:]
	}
	if i := strings.IndexByte(u, '-'); i > 0 {
		return u[:i], u[i+1:], negative
	}
	return u, "", negative
}
