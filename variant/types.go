// Package variant classifies variant tokens of a utility class name into the
// selector or query transformation each one stands for. Resolution is a pure
// table lookup with no side effects.
package variant

// Kind tags the transformation a resolved variant performs.
type Kind int

const (
	// Unsupported marks an unrecognized variant token. The composer treats
	// it as a no-op: the base utility still applies, without this variant.
	Unsupported Kind = iota
	PseudoClass
	PseudoElement
	Breakpoint
	ArbitraryMedia
	Container
	DarkMode
	Group
	Peer
	Attribute
)

// Effect is the resolved transformation for one variant token. Only the
// fields relevant for its Kind are set.
type Effect struct {
	Kind     Kind
	Selector string // pseudo suffix (":hover", "::before"); group/peer marker state
	Query    string // media or container query for Breakpoint/ArbitraryMedia/Container
	Width    int    // named breakpoint sort key; zero for anything else
	Attr     string // attribute selector body for Attribute ("aria-checked=\"true\"")
	Name     string // slash qualifier carried over for named group/peer variants
}
