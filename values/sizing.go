package values

// maxWidthScale holds the named max-width steps that do not follow the
// spacing scale.
var maxWidthScale = map[string]string{
	"none":  "none",
	"xs":    "20rem",
	"sm":    "24rem",
	"md":    "28rem",
	"lg":    "32rem",
	"xl":    "36rem",
	"2xl":   "42rem",
	"3xl":   "48rem",
	"4xl":   "56rem",
	"5xl":   "64rem",
	"6xl":   "72rem",
	"7xl":   "80rem",
	"prose": "65ch",
}

// size builds a resolver for one dimension property: spacing scale plus the
// handful of keyword sizes, with an optional screen length for w/h.
func size(property, screen string) Resolver {
	return func(req Request) ([]Declaration, bool) {
		if req.Negative {
			return nil, false
		}
		if req.IsArbitrary {
			return one(property, arbitraryValue(req.Arbitrary)), true
		}
		switch req.Value {
		case "auto":
			return one(property, "auto"), true
		case "full":
			return one(property, "100%"), true
		case "screen":
			if screen == "" {
				return nil, false
			}
			return one(property, screen), true
		case "min":
			return one(property, "min-content"), true
		case "max":
			return one(property, "max-content"), true
		case "fit":
			return one(property, "fit-content"), true
		}
		v, ok := spacingLength(req.Value)
		if !ok {
			return nil, false
		}
		return one(property, v), true
	}
}

func registerSizing(r *Registry) {
	r.register("w", size("width", "100vw"))
	r.register("h", size("height", "100vh"))
	r.register("min-w", size("min-width", ""))
	r.register("min-h", size("min-height", "100vh"))
	r.register("max-h", size("max-height", "100vh"))

	r.register("max-w", func(req Request) ([]Declaration, bool) {
		if req.Negative {
			return nil, false
		}
		if req.IsArbitrary {
			return one("max-width", arbitraryValue(req.Arbitrary)), true
		}
		if v, ok := maxWidthScale[req.Value]; ok {
			return one("max-width", v), true
		}
		if v, ok := spacingLength(req.Value); ok {
			return one("max-width", v), true
		}
		return nil, false
	})
}
