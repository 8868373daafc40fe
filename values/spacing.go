package values

import (
	"strconv"
	"strings"
)

// spacingLength maps a spacing token to a CSS length. Numeric tokens follow
// the 0.25rem step scale, "px" is literal one pixel, simple fractions become
// percentages.
func spacingLength(token string) (string, bool) {
	switch token {
	case "0":
		return "0px", true
	case "px":
		return "1px", true
	case "full":
		return "100%", true
	}
	if num, den, ok := strings.Cut(token, "/"); ok {
		n, err1 := strconv.Atoi(num)
		d, err2 := strconv.Atoi(den)
		if err1 != nil || err2 != nil || d == 0 || n <= 0 || n >= d {
			return "", false
		}
		return formatFloat(float64(n)/float64(d)*100) + "%", true
	}
	f, err := strconv.ParseFloat(token, 64)
	if err != nil || f < 0 {
		return "", false
	}
	return formatFloat(f*0.25) + "rem", true
}

// formatFloat renders a scale number the way stylesheets expect: no
// exponent, no trailing zeros.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if len(s) > 8 {
		s = strconv.FormatFloat(f, 'f', 6, 64)
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	return s
}

// negate prefixes a computed length for negative-value utilities.
func negate(v string, negative bool) string {
	if !negative || v == "0px" {
		return v
	}
	return "-" + v
}

// sides builds a resolver emitting the same computed length for each of the
// given properties. allowAuto admits the "auto" token (margins only).
func sides(allowAuto bool, properties ...string) Resolver {
	return func(req Request) ([]Declaration, bool) {
		var v string
		switch {
		case req.IsArbitrary:
			v = arbitraryValue(req.Arbitrary)
			if req.Negative {
				v = "-" + v
			}
		case allowAuto && req.Value == "auto":
			v = "auto"
		default:
			length, ok := spacingLength(req.Value)
			if !ok {
				return nil, false
			}
			v = negate(length, req.Negative)
		}
		decls := make([]Declaration, len(properties))
		for i, p := range properties {
			decls[i] = Declaration{Property: p, Value: v}
		}
		return decls, true
	}
}

func registerSpacing(r *Registry) {
	r.register("p", sides(false, "padding"))
	r.register("px", sides(false, "padding-left", "padding-right"))
	r.register("py", sides(false, "padding-top", "padding-bottom"))
	r.register("pt", sides(false, "padding-top"))
	r.register("pr", sides(false, "padding-right"))
	r.register("pb", sides(false, "padding-bottom"))
	r.register("pl", sides(false, "padding-left"))

	r.register("m", sides(true, "margin"))
	r.register("mx", sides(true, "margin-left", "margin-right"))
	r.register("my", sides(true, "margin-top", "margin-bottom"))
	r.register("mt", sides(true, "margin-top"))
	r.register("mr", sides(true, "margin-right"))
	r.register("mb", sides(true, "margin-bottom"))
	r.register("ml", sides(true, "margin-left"))

	r.register("gap", sides(false, "gap"))
	r.register("gap-x", sides(false, "column-gap"))
	r.register("gap-y", sides(false, "row-gap"))

	r.register("inset", sides(true, "inset"))
	r.register("top", sides(true, "top"))
	r.register("right", sides(true, "right"))
	r.register("bottom", sides(true, "bottom"))
	r.register("left", sides(true, "left"))
}
