package variant

// breakpoint holds a named responsive threshold. Width doubles as the sort
// key used by the rule set: min-width breakpoints carry their pixel width,
// max-width breakpoints carry a sentinel above 1536 chosen so that ascending
// order yields largest max-width first.
type breakpoint struct {
	query string
	width int
}

const maxWidthSentinelBase = 2000

var pseudoClasses = map[string]string{
	"hover":             ":hover",
	"focus":             ":focus",
	"focus-within":      ":focus-within",
	"focus-visible":     ":focus-visible",
	"active":            ":active",
	"visited":           ":visited",
	"target":            ":target",
	"first":             ":first-child",
	"last":              ":last-child",
	"only":              ":only-child",
	"odd":               ":nth-child(odd)",
	"even":              ":nth-child(even)",
	"first-of-type":     ":first-of-type",
	"last-of-type":      ":last-of-type",
	"only-of-type":      ":only-of-type",
	"empty":             ":empty",
	"disabled":          ":disabled",
	"enabled":           ":enabled",
	"checked":           ":checked",
	"indeterminate":     ":indeterminate",
	"default":           ":default",
	"required":          ":required",
	"optional":          ":optional",
	"valid":             ":valid",
	"invalid":           ":invalid",
	"in-range":          ":in-range",
	"out-of-range":      ":out-of-range",
	"placeholder-shown": ":placeholder-shown",
	"autofill":          ":autofill",
	"read-only":         ":read-only",
}

var pseudoElements = map[string]string{
	"before":       "::before",
	"after":        "::after",
	"placeholder":  "::placeholder",
	"selection":    "::selection",
	"marker":       "::marker",
	"backdrop":     "::backdrop",
	"first-line":   "::first-line",
	"first-letter": "::first-letter",
	"file":         "::file-selector-button",
}

var breakpoints = map[string]breakpoint{
	"sm":  {query: "@media (min-width: 640px)", width: 640},
	"md":  {query: "@media (min-width: 768px)", width: 768},
	"lg":  {query: "@media (min-width: 1024px)", width: 1024},
	"xl":  {query: "@media (min-width: 1280px)", width: 1280},
	"2xl": {query: "@media (min-width: 1536px)", width: 1536},

	"max-sm":  {query: "@media (max-width: 639.98px)", width: maxWidthSentinelBase + 1536 - 640},
	"max-md":  {query: "@media (max-width: 767.98px)", width: maxWidthSentinelBase + 1536 - 768},
	"max-lg":  {query: "@media (max-width: 1023.98px)", width: maxWidthSentinelBase + 1536 - 1024},
	"max-xl":  {query: "@media (max-width: 1279.98px)", width: maxWidthSentinelBase + 1536 - 1280},
	"max-2xl": {query: "@media (max-width: 1535.98px)", width: maxWidthSentinelBase},
}

// mediaFeatures are non-breakpoint media variants. They wrap the rule in a
// media query but carry no width, so they sort last within the responsive
// tier.
var mediaFeatures = map[string]string{
	"motion-safe":    "@media (prefers-reduced-motion: no-preference)",
	"motion-reduce":  "@media (prefers-reduced-motion: reduce)",
	"print":          "@media print",
	"portrait":       "@media (orientation: portrait)",
	"landscape":      "@media (orientation: landscape)",
	"contrast-more":  "@media (prefers-contrast: more)",
	"contrast-less":  "@media (prefers-contrast: less)",
	"forced-colors":  "@media (forced-colors: active)",
	"pointer-fine":   "@media (pointer: fine)",
	"pointer-coarse": "@media (pointer: coarse)",
}

// containers are named container-query variants ("@sm:flex").
var containers = map[string]string{
	"@sm":  "@container (min-width: 640px)",
	"@md":  "@container (min-width: 768px)",
	"@lg":  "@container (min-width: 1024px)",
	"@xl":  "@container (min-width: 1280px)",
	"@2xl": "@container (min-width: 1536px)",
}

// ariaAttributes maps boolean ARIA state variants to attribute selectors.
var ariaAttributes = map[string]string{
	"aria-busy":     `aria-busy="true"`,
	"aria-checked":  `aria-checked="true"`,
	"aria-disabled": `aria-disabled="true"`,
	"aria-expanded": `aria-expanded="true"`,
	"aria-hidden":   `aria-hidden="true"`,
	"aria-pressed":  `aria-pressed="true"`,
	"aria-readonly": `aria-readonly="true"`,
	"aria-required": `aria-required="true"`,
	"aria-selected": `aria-selected="true"`,
}

// dataAttributes maps supported boolean data-state variants to bare
// attribute presence selectors.
var dataAttributes = map[string]string{
	"data-active":   "data-active",
	"data-open":     "data-open",
	"data-closed":   "data-closed",
	"data-disabled": "data-disabled",
	"data-selected": "data-selected",
	"data-loading":  "data-loading",
}

// DarkSchemeQuery wraps dark: rules when the media dark mode strategy is
// configured.
const DarkSchemeQuery = "@media (prefers-color-scheme: dark)"
