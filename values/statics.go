package values

// staticUtilities lists utilities that are a fixed name with no value token.
func staticUtilities() map[string][]Declaration {
	return map[string][]Declaration{
		// display
		"block":        one("display", "block"),
		"inline-block": one("display", "inline-block"),
		"inline":       one("display", "inline"),
		"flex":         one("display", "flex"),
		"inline-flex":  one("display", "inline-flex"),
		"grid":         one("display", "grid"),
		"inline-grid":  one("display", "inline-grid"),
		"flow-root":    one("display", "flow-root"),
		"contents":     one("display", "contents"),
		"hidden":       one("display", "none"),

		// position
		"static":   one("position", "static"),
		"fixed":    one("position", "fixed"),
		"absolute": one("position", "absolute"),
		"relative": one("position", "relative"),
		"sticky":   one("position", "sticky"),

		// visibility and stacking
		"visible":   one("visibility", "visible"),
		"invisible": one("visibility", "hidden"),
		"isolate":   one("isolation", "isolate"),

		// typography toggles
		"italic":       one("font-style", "italic"),
		"not-italic":   one("font-style", "normal"),
		"underline":    one("text-decoration-line", "underline"),
		"overline":     one("text-decoration-line", "overline"),
		"line-through": one("text-decoration-line", "line-through"),
		"no-underline": one("text-decoration-line", "none"),
		"uppercase":    one("text-transform", "uppercase"),
		"lowercase":    one("text-transform", "lowercase"),
		"capitalize":   one("text-transform", "capitalize"),
		"normal-case":  one("text-transform", "none"),
		"antialiased": {
			{Property: "-webkit-font-smoothing", Value: "antialiased"},
			{Property: "-moz-osx-font-smoothing", Value: "grayscale"},
		},
		"truncate": {
			{Property: "overflow", Value: "hidden"},
			{Property: "text-overflow", Value: "ellipsis"},
			{Property: "white-space", Value: "nowrap"},
		},

		// interactivity
		"pointer-events-none": one("pointer-events", "none"),
		"pointer-events-auto": one("pointer-events", "auto"),
		"select-none":         one("user-select", "none"),
		"select-text":         one("user-select", "text"),
		"select-all":          one("user-select", "all"),
	}
}
