package values

// borderRadii maps rounded steps to lengths. The empty key is the bare
// "rounded" utility.
var borderRadii = map[string]string{
	"":     "0.25rem",
	"none": "0px",
	"sm":   "0.125rem",
	"md":   "0.375rem",
	"lg":   "0.5rem",
	"xl":   "0.75rem",
	"2xl":  "1rem",
	"3xl":  "1.5rem",
	"full": "9999px",
}

var borderWidths = map[string]string{
	"":  "1px",
	"0": "0px",
	"2": "2px",
	"4": "4px",
	"8": "8px",
}

// borderSide builds a resolver for border-<side> width utilities.
func borderSide(property string) Resolver {
	return func(req Request) ([]Declaration, bool) {
		if req.Negative {
			return nil, false
		}
		if req.IsArbitrary {
			return one(property, arbitraryValue(req.Arbitrary)), true
		}
		if w, ok := borderWidths[req.Value]; ok {
			return one(property, w), true
		}
		return nil, false
	}
}

func registerBorders(r *Registry) {
	r.register("border", func(req Request) ([]Declaration, bool) {
		if req.Negative {
			return nil, false
		}
		if req.IsArbitrary {
			v := arbitraryValue(req.Arbitrary)
			if looksLikeColor(v) {
				return one("border-color", v), true
			}
			return one("border-width", v), true
		}
		if w, ok := borderWidths[req.Value]; ok {
			return one("border-width", w), true
		}
		switch req.Value {
		case "solid", "dashed", "dotted", "double", "none":
			return one("border-style", req.Value), true
		}
		if c, ok := colorValue(req.Value); ok {
			return one("border-color", c), true
		}
		return nil, false
	})

	r.register("border-t", borderSide("border-top-width"))
	r.register("border-r", borderSide("border-right-width"))
	r.register("border-b", borderSide("border-bottom-width"))
	r.register("border-l", borderSide("border-left-width"))

	r.register("rounded", func(req Request) ([]Declaration, bool) {
		if req.Negative {
			return nil, false
		}
		if req.IsArbitrary {
			return one("border-radius", arbitraryValue(req.Arbitrary)), true
		}
		if v, ok := borderRadii[req.Value]; ok {
			return one("border-radius", v), true
		}
		return nil, false
	})
}
