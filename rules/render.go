package rules

import "strings"

// Render serializes one rule to CSS text: the declaration block, wrapped in
// its container query when present, wrapped in its media query when present
// (container nests inside media).
func Render(r *Rule) string {
	var b strings.Builder
	indent := ""

	if r.Media != "" {
		b.WriteString(r.Media)
		b.WriteString(" {\n")
		indent = "  "
	}
	if r.Container != "" {
		b.WriteString(indent)
		b.WriteString(r.Container)
		b.WriteString(" {\n")
		indent += "  "
	}

	b.WriteString(indent)
	b.WriteString(r.ParentSelector)
	b.WriteString(r.Selector)
	b.WriteString(r.Pseudo)
	b.WriteString(" {\n")
	for _, d := range r.Declarations {
		b.WriteString(indent)
		b.WriteString("  ")
		b.WriteString(d.Property)
		b.WriteString(": ")
		b.WriteString(d.Value)
		if r.Important {
			b.WriteString(" !important")
		}
		b.WriteString(";\n")
	}
	b.WriteString(indent)
	b.WriteString("}")

	if r.Container != "" {
		indent = indent[:len(indent)-2]
		b.WriteString("\n")
		b.WriteString(indent)
		b.WriteString("}")
	}
	if r.Media != "" {
		b.WriteString("\n}")
	}
	return b.String()
}

// RenderAll renders the whole set in its current order as one newline-joined
// CSS blob. Call Sort first for the deterministic build order.
func (s *Set) RenderAll() string {
	blocks := make([]string, 0, len(s.rules))
	for _, r := range s.rules {
		blocks = append(blocks, Render(r))
	}
	return strings.Join(blocks, "\n")
}
