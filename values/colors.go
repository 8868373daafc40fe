package values

import (
	"strconv"
	"strings"
)

// palette is the built-in color table, keyed by "<name>-<shade>" plus a few
// standalone entries. Values are kept as authored hex strings and passed
// through untouched unless an opacity modifier forces rgb() form.
var palette = buildPalette()

func buildPalette() map[string]string {
	p := map[string]string{
		"black":       "#000",
		"white":       "#fff",
		"transparent": "transparent",
		"current":     "currentColor",
		"inherit":     "inherit",
	}
	shades := []string{"50", "100", "200", "300", "400", "500", "600", "700", "800", "900"}
	families := map[string][]string{
		"slate":  {"#f8fafc", "#f1f5f9", "#e2e8f0", "#cbd5e1", "#94a3b8", "#64748b", "#475569", "#334155", "#1e293b", "#0f172a"},
		"gray":   {"#f9fafb", "#f3f4f6", "#e5e7eb", "#d1d5db", "#9ca3af", "#6b7280", "#4b5563", "#374151", "#1f2937", "#111827"},
		"red":    {"#fef2f2", "#fee2e2", "#fecaca", "#fca5a5", "#f87171", "#ef4444", "#dc2626", "#b91c1c", "#991b1b", "#7f1d1d"},
		"yellow": {"#fefce8", "#fef9c3", "#fef08a", "#fde047", "#facc15", "#eab308", "#ca8a04", "#a16207", "#854d0e", "#713f12"},
		"green":  {"#f0fdf4", "#dcfce7", "#bbf7d0", "#86efac", "#4ade80", "#22c55e", "#16a34a", "#15803d", "#166534", "#14532d"},
		"blue":   {"#eff6ff", "#dbeafe", "#bfdbfe", "#93c5fd", "#60a5fa", "#3b82f6", "#2563eb", "#1d4ed8", "#1e40af", "#1e3a8a"},
		"indigo": {"#eef2ff", "#e0e7ff", "#c7d2fe", "#a5b4fc", "#818cf8", "#6366f1", "#4f46e5", "#4338ca", "#3730a3", "#312e81"},
		"purple": {"#faf5ff", "#f3e8ff", "#e9d5ff", "#d8b4fe", "#c084fc", "#a855f7", "#9333ea", "#7e22ce", "#6b21a8", "#581c87"},
		"pink":   {"#fdf2f8", "#fce7f3", "#fbcfe8", "#f9a8d4", "#f472b6", "#ec4899", "#db2777", "#be185d", "#9d174d", "#831843"},
	}
	for name, hexes := range families {
		for i, shade := range shades {
			p[name+"-"+shade] = hexes[i]
		}
	}
	return p
}

// colorValue resolves a color token with optional "/NN" opacity modifier.
// With a modifier the palette hex is re-rendered as rgb(r g b / a); keyword
// colors do not take a modifier.
func colorValue(token string) (string, bool) {
	name, opacity, hasOpacity := strings.Cut(token, "/")
	hex, ok := palette[name]
	if !ok {
		return "", false
	}
	if !hasOpacity {
		return hex, true
	}
	n, err := strconv.Atoi(opacity)
	if err != nil || n < 0 || n > 100 {
		return "", false
	}
	rr, gg, bb, ok := hexRGB(hex)
	if !ok {
		return "", false
	}
	return "rgb(" + strconv.Itoa(rr) + " " + strconv.Itoa(gg) + " " + strconv.Itoa(bb) +
		" / " + formatFloat(float64(n)/100) + ")", true
}

// hexRGB expands #rgb and #rrggbb notations.
func hexRGB(hex string) (r, g, b int, ok bool) {
	s := strings.TrimPrefix(hex, "#")
	switch len(s) {
	case 3:
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	case 6:
	default:
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return int(v >> 16), int(v >> 8 & 0xff), int(v & 0xff), true
}

// looksLikeColor reports whether an arbitrary payload is a color rather
// than a length or image reference.
func looksLikeColor(payload string) bool {
	return strings.HasPrefix(payload, "#") ||
		strings.HasPrefix(payload, "rgb(") || strings.HasPrefix(payload, "rgba(") ||
		strings.HasPrefix(payload, "hsl(") || strings.HasPrefix(payload, "hsla(") ||
		strings.HasPrefix(payload, "oklch(") || strings.HasPrefix(payload, "color-mix(")
}

func registerColors(r *Registry) {
	r.register("bg", func(req Request) ([]Declaration, bool) {
		if req.Negative {
			return nil, false
		}
		if req.IsArbitrary {
			v := arbitraryValue(req.Arbitrary)
			if strings.HasPrefix(v, "url(") {
				return one("background-image", v), true
			}
			return one("background-color", v), true
		}
		switch req.Value {
		case "cover", "contain", "auto":
			return one("background-size", req.Value), true
		case "center", "top", "bottom", "left", "right":
			return one("background-position", req.Value), true
		case "repeat", "no-repeat", "repeat-x", "repeat-y":
			return one("background-repeat", req.Value), true
		case "fixed", "local", "scroll":
			return one("background-attachment", req.Value), true
		case "none":
			return one("background-image", "none"), true
		}
		if v, ok := colorValue(req.Value); ok {
			return one("background-color", v), true
		}
		return nil, false
	})
}
