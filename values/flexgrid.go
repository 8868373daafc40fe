package values

import "strconv"

func registerFlexGrid(r *Registry) {
	r.register("flex", func(req Request) ([]Declaration, bool) {
		if req.Negative {
			return nil, false
		}
		if req.IsArbitrary {
			return one("flex", arbitraryValue(req.Arbitrary)), true
		}
		switch req.Value {
		case "row":
			return one("flex-direction", "row"), true
		case "row-reverse":
			return one("flex-direction", "row-reverse"), true
		case "col":
			return one("flex-direction", "column"), true
		case "col-reverse":
			return one("flex-direction", "column-reverse"), true
		case "wrap":
			return one("flex-wrap", "wrap"), true
		case "wrap-reverse":
			return one("flex-wrap", "wrap-reverse"), true
		case "nowrap":
			return one("flex-wrap", "nowrap"), true
		case "1":
			return one("flex", "1 1 0%"), true
		case "auto":
			return one("flex", "1 1 auto"), true
		case "initial":
			return one("flex", "0 1 auto"), true
		case "none":
			return one("flex", "none"), true
		}
		return nil, false
	})

	r.register("grow", func(req Request) ([]Declaration, bool) {
		switch req.Value {
		case "":
			return one("flex-grow", "1"), true
		case "0":
			return one("flex-grow", "0"), true
		}
		return nil, false
	})

	r.register("shrink", func(req Request) ([]Declaration, bool) {
		switch req.Value {
		case "":
			return one("flex-shrink", "1"), true
		case "0":
			return one("flex-shrink", "0"), true
		}
		return nil, false
	})

	r.register("justify", func(req Request) ([]Declaration, bool) {
		switch req.Value {
		case "start":
			return one("justify-content", "flex-start"), true
		case "end":
			return one("justify-content", "flex-end"), true
		case "center":
			return one("justify-content", "center"), true
		case "between":
			return one("justify-content", "space-between"), true
		case "around":
			return one("justify-content", "space-around"), true
		case "evenly":
			return one("justify-content", "space-evenly"), true
		}
		return nil, false
	})

	r.register("items", func(req Request) ([]Declaration, bool) {
		switch req.Value {
		case "start":
			return one("align-items", "flex-start"), true
		case "end":
			return one("align-items", "flex-end"), true
		case "center", "baseline", "stretch":
			return one("align-items", req.Value), true
		}
		return nil, false
	})

	r.register("self", func(req Request) ([]Declaration, bool) {
		switch req.Value {
		case "auto", "center", "stretch", "baseline":
			return one("align-self", req.Value), true
		case "start":
			return one("align-self", "flex-start"), true
		case "end":
			return one("align-self", "flex-end"), true
		}
		return nil, false
	})

	r.register("grid-cols", func(req Request) ([]Declaration, bool) {
		if req.Negative {
			return nil, false
		}
		if req.IsArbitrary {
			return one("grid-template-columns", arbitraryValue(req.Arbitrary)), true
		}
		if req.Value == "none" {
			return one("grid-template-columns", "none"), true
		}
		n, err := strconv.Atoi(req.Value)
		if err != nil || n < 1 {
			return nil, false
		}
		return one("grid-template-columns", "repeat("+req.Value+", minmax(0, 1fr))"), true
	})

	r.register("col-span", func(req Request) ([]Declaration, bool) {
		if req.Value == "full" {
			return one("grid-column", "1 / -1"), true
		}
		n, err := strconv.Atoi(req.Value)
		if err != nil || n < 1 {
			return nil, false
		}
		return one("grid-column", "span "+req.Value+" / span "+req.Value), true
	})

	r.register("order", func(req Request) ([]Declaration, bool) {
		switch req.Value {
		case "first":
			return one("order", "-9999"), true
		case "last":
			return one("order", "9999"), true
		case "none":
			return one("order", "0"), true
		}
		if _, err := strconv.Atoi(req.Value); err != nil {
			return nil, false
		}
		return one("order", negate(req.Value, req.Negative)), true
	})
}
