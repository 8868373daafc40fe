package variant

import (
	"strings"

	"ucss/class"
)

// Resolve classifies one variant token into its Effect. Unknown tokens come
// back as Unsupported so callers can skip the transform while still emitting
// the base utility.
func Resolve(v class.Variant) Effect {
	tok := v.Token

	if sel, ok := pseudoClasses[tok]; ok {
		return Effect{Kind: PseudoClass, Selector: sel}
	}
	if sel, ok := pseudoElements[tok]; ok {
		return Effect{Kind: PseudoElement, Selector: sel}
	}
	if bp, ok := breakpoints[tok]; ok {
		return Effect{Kind: Breakpoint, Query: bp.query, Width: bp.width}
	}
	if q, ok := mediaFeatures[tok]; ok {
		return Effect{Kind: Breakpoint, Query: q}
	}
	if q, ok := containers[tok]; ok {
		return Effect{Kind: Container, Query: q}
	}
	if tok == "dark" {
		return Effect{Kind: DarkMode}
	}
	if state, ok := strings.CutPrefix(tok, "group-"); ok {
		if sel, ok := pseudoClasses[state]; ok {
			return Effect{Kind: Group, Selector: sel, Name: v.Name}
		}
		return Effect{Kind: Unsupported}
	}
	if state, ok := strings.CutPrefix(tok, "peer-"); ok {
		if sel, ok := pseudoClasses[state]; ok {
			return Effect{Kind: Peer, Selector: sel, Name: v.Name}
		}
		return Effect{Kind: Unsupported}
	}
	if attr, ok := ariaAttributes[tok]; ok {
		return Effect{Kind: Attribute, Attr: attr}
	}
	if attr, ok := dataAttributes[tok]; ok {
		return Effect{Kind: Attribute, Attr: attr}
	}
	if e, ok := resolveArbitraryMedia(tok); ok {
		return e
	}
	return Effect{Kind: Unsupported}
}

// resolveArbitraryMedia handles bracketed media variants: "min-[900px]",
// "max-[600px]" and raw "[@media_...]" tokens. Underscores in bracket
// payloads stand for spaces, the usual escape for class attribute tokens.
func resolveArbitraryMedia(tok string) (Effect, bool) {
	if v, ok := bracketPayload(tok, "min-"); ok {
		return Effect{Kind: ArbitraryMedia, Query: "@media (min-width: " + v + ")"}, true
	}
	if v, ok := bracketPayload(tok, "max-"); ok {
		return Effect{Kind: ArbitraryMedia, Query: "@media (max-width: " + v + ")"}, true
	}
	if strings.HasPrefix(tok, "[@media") && strings.HasSuffix(tok, "]") {
		q := strings.ReplaceAll(tok[1:len(tok)-1], "_", " ")
		return Effect{Kind: ArbitraryMedia, Query: q}, true
	}
	return Effect{}, false
}

func bracketPayload(tok, prefix string) (string, bool) {
	rest, ok := strings.CutPrefix(tok, prefix)
	if !ok || len(rest) < 2 || rest[0] != '[' || rest[len(rest)-1] != ']' {
		return "", false
	}
	return strings.ReplaceAll(rest[1:len(rest)-1], "_", " "), true
}
