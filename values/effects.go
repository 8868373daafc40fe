package values

import "strconv"

var boxShadows = map[string]string{
	"":     "0 1px 3px 0 rgb(0 0 0 / 0.1), 0 1px 2px -1px rgb(0 0 0 / 0.1)",
	"sm":   "0 1px 2px 0 rgb(0 0 0 / 0.05)",
	"md":   "0 4px 6px -1px rgb(0 0 0 / 0.1), 0 2px 4px -2px rgb(0 0 0 / 0.1)",
	"lg":   "0 10px 15px -3px rgb(0 0 0 / 0.1), 0 4px 6px -4px rgb(0 0 0 / 0.1)",
	"xl":   "0 20px 25px -5px rgb(0 0 0 / 0.1), 0 8px 10px -6px rgb(0 0 0 / 0.1)",
	"2xl":  "0 25px 50px -12px rgb(0 0 0 / 0.25)",
	"none": "0 0 #0000",
}

var timingFunctions = map[string]string{
	"linear": "linear",
	"in":     "cubic-bezier(0.4, 0, 1, 1)",
	"out":    "cubic-bezier(0, 0, 0.2, 1)",
	"in-out": "cubic-bezier(0.4, 0, 0.2, 1)",
}

func registerEffects(r *Registry) {
	r.register("opacity", func(req Request) ([]Declaration, bool) {
		if req.IsArbitrary {
			return one("opacity", arbitraryValue(req.Arbitrary)), true
		}
		n, err := strconv.Atoi(req.Value)
		if err != nil || n < 0 || n > 100 {
			return nil, false
		}
		return one("opacity", formatFloat(float64(n)/100)), true
	})

	r.register("shadow", func(req Request) ([]Declaration, bool) {
		if req.IsArbitrary {
			return one("box-shadow", arbitraryValue(req.Arbitrary)), true
		}
		if v, ok := boxShadows[req.Value]; ok {
			return one("box-shadow", v), true
		}
		return nil, false
	})

	r.register("z", func(req Request) ([]Declaration, bool) {
		if req.Value == "auto" {
			return one("z-index", "auto"), true
		}
		if _, err := strconv.Atoi(req.Value); err != nil {
			return nil, false
		}
		return one("z-index", negate(req.Value, req.Negative)), true
	})

	r.register("overflow", func(req Request) ([]Declaration, bool) {
		switch req.Value {
		case "auto", "hidden", "clip", "visible", "scroll":
			return one("overflow", req.Value), true
		}
		return nil, false
	})
	r.register("overflow-x", func(req Request) ([]Declaration, bool) {
		switch req.Value {
		case "auto", "hidden", "clip", "visible", "scroll":
			return one("overflow-x", req.Value), true
		}
		return nil, false
	})
	r.register("overflow-y", func(req Request) ([]Declaration, bool) {
		switch req.Value {
		case "auto", "hidden", "clip", "visible", "scroll":
			return one("overflow-y", req.Value), true
		}
		return nil, false
	})

	r.register("cursor", func(req Request) ([]Declaration, bool) {
		switch req.Value {
		case "auto", "default", "pointer", "wait", "text", "move", "help", "not-allowed", "grab", "grabbing":
			return one("cursor", req.Value), true
		}
		return nil, false
	})

	r.register("transition", func(req Request) ([]Declaration, bool) {
		if req.IsArbitrary {
			return one("transition-property", arbitraryValue(req.Arbitrary)), true
		}
		var prop string
		switch req.Value {
		case "":
			prop = "color, background-color, border-color, text-decoration-color, fill, stroke, opacity, box-shadow, transform, filter, backdrop-filter"
		case "none":
			return one("transition-property", "none"), true
		case "all":
			prop = "all"
		case "colors":
			prop = "color, background-color, border-color, text-decoration-color, fill, stroke"
		case "opacity":
			prop = "opacity"
		case "shadow":
			prop = "box-shadow"
		case "transform":
			prop = "transform"
		default:
			return nil, false
		}
		return []Declaration{
			{Property: "transition-property", Value: prop},
			{Property: "transition-timing-function", Value: timingFunctions["in-out"]},
			{Property: "transition-duration", Value: "150ms"},
		}, true
	})

	r.register("duration", func(req Request) ([]Declaration, bool) {
		if req.IsArbitrary {
			return one("transition-duration", arbitraryValue(req.Arbitrary)), true
		}
		if _, err := strconv.Atoi(req.Value); err != nil {
			return nil, false
		}
		return one("transition-duration", req.Value+"ms"), true
	})

	r.register("delay", func(req Request) ([]Declaration, bool) {
		if _, err := strconv.Atoi(req.Value); err != nil {
			return nil, false
		}
		return one("transition-delay", req.Value+"ms"), true
	})

	r.register("ease", func(req Request) ([]Declaration, bool) {
		if req.IsArbitrary {
			return one("transition-timing-function", arbitraryValue(req.Arbitrary)), true
		}
		if v, ok := timingFunctions[req.Value]; ok {
			return one("transition-timing-function", v), true
		}
		return nil, false
	})
}
