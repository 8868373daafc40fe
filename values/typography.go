package values

// fontSizes maps text size steps to font-size and paired line-height.
var fontSizes = map[string][2]string{
	"xs":   {"0.75rem", "1rem"},
	"sm":   {"0.875rem", "1.25rem"},
	"base": {"1rem", "1.5rem"},
	"lg":   {"1.125rem", "1.75rem"},
	"xl":   {"1.25rem", "1.75rem"},
	"2xl":  {"1.5rem", "2rem"},
	"3xl":  {"1.875rem", "2.25rem"},
	"4xl":  {"2.25rem", "2.5rem"},
	"5xl":  {"3rem", "1"},
	"6xl":  {"3.75rem", "1"},
	"7xl":  {"4.5rem", "1"},
	"8xl":  {"6rem", "1"},
	"9xl":  {"8rem", "1"},
}

var fontWeights = map[string]string{
	"thin":       "100",
	"extralight": "200",
	"light":      "300",
	"normal":     "400",
	"medium":     "500",
	"semibold":   "600",
	"bold":       "700",
	"extrabold":  "800",
	"black":      "900",
}

var fontFamilies = map[string]string{
	"sans":  `ui-sans-serif, system-ui, sans-serif`,
	"serif": `ui-serif, Georgia, serif`,
	"mono":  `ui-monospace, SFMono-Regular, Menlo, monospace`,
}

var letterSpacings = map[string]string{
	"tighter": "-0.05em",
	"tight":   "-0.025em",
	"normal":  "0em",
	"wide":    "0.025em",
	"wider":   "0.05em",
	"widest":  "0.1em",
}

var lineHeights = map[string]string{
	"none":    "1",
	"tight":   "1.25",
	"snug":    "1.375",
	"normal":  "1.5",
	"relaxed": "1.625",
	"loose":   "2",
	"3":       ".75rem",
	"4":       "1rem",
	"5":       "1.25rem",
	"6":       "1.5rem",
	"7":       "1.75rem",
	"8":       "2rem",
	"9":       "2.25rem",
	"10":      "2.5rem",
}

func registerTypography(r *Registry) {
	// "text" covers alignment, the size scale and colors; which one applies
	// is decided by the value token.
	r.register("text", func(req Request) ([]Declaration, bool) {
		if req.Negative {
			return nil, false
		}
		if req.IsArbitrary {
			v := arbitraryValue(req.Arbitrary)
			if looksLikeColor(v) {
				return one("color", v), true
			}
			return one("font-size", v), true
		}
		switch req.Value {
		case "left", "center", "right", "justify", "start", "end":
			return one("text-align", req.Value), true
		}
		if fs, ok := fontSizes[req.Value]; ok {
			return []Declaration{
				{Property: "font-size", Value: fs[0]},
				{Property: "line-height", Value: fs[1]},
			}, true
		}
		if v, ok := colorValue(req.Value); ok {
			return one("color", v), true
		}
		return nil, false
	})

	r.register("font", func(req Request) ([]Declaration, bool) {
		if req.Negative {
			return nil, false
		}
		if req.IsArbitrary {
			return one("font-family", arbitraryValue(req.Arbitrary)), true
		}
		if w, ok := fontWeights[req.Value]; ok {
			return one("font-weight", w), true
		}
		if f, ok := fontFamilies[req.Value]; ok {
			return one("font-family", f), true
		}
		return nil, false
	})

	r.register("tracking", func(req Request) ([]Declaration, bool) {
		if req.IsArbitrary {
			return one("letter-spacing", arbitraryValue(req.Arbitrary)), true
		}
		if v, ok := letterSpacings[req.Value]; ok {
			return one("letter-spacing", negate(v, req.Negative)), true
		}
		return nil, false
	})

	r.register("leading", func(req Request) ([]Declaration, bool) {
		if req.Negative {
			return nil, false
		}
		if req.IsArbitrary {
			return one("line-height", arbitraryValue(req.Arbitrary)), true
		}
		if v, ok := lineHeights[req.Value]; ok {
			return one("line-height", v), true
		}
		return nil, false
	})

	r.register("whitespace", func(req Request) ([]Declaration, bool) {
		switch req.Value {
		case "normal", "nowrap", "pre", "pre-line", "pre-wrap", "break-spaces":
			return one("white-space", req.Value), true
		}
		return nil, false
	})
}
