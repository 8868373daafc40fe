// Package class parses raw utility class names (e.g. "md:hover:bg-blue-500/50")
// into their structured form: ordered variant stack, base utility, arbitrary
// value payload and importance flag. Parsing is pure - all returned strings are
// independent copies and no shared state is touched, so Parse is safe to call
// concurrently.
package class

// Variant is a single variant prefix of a class name, in the order written.
type Variant struct {
	Token string // variant token as written, e.g. "hover", "md", "group-focus"
	Name  string // slash qualifier for named group/peer variants ("group/sidebar" -> "sidebar")
}

// Parsed is the structured form of one class name occurrence. It is
// constructed once by Parse and never mutated afterwards.
type Parsed struct {
	Raw            string    // trimmed original class name, used verbatim (escaped) as the CSS selector token
	Variants       []Variant // outermost first, written left-to-right order
	Utility        string    // remaining string after the last variant separator
	IsArbitrary    bool      // true when Utility carries a bracketed payload
	ArbitraryValue string    // unescaped bracket payload, set iff IsArbitrary
	IsImportant    bool      // class began with '!'
}
