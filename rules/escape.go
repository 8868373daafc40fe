package rules

import "strings"

// escapeClassToken escapes a raw class attribute token for use as a CSS
// class identifier: a leading '-' and every bracket, slash, colon, bang,
// percent, dot, hash, parenthesis and space get a preceding backslash. This
// must match how browsers read the unescaped token from a class attribute.
func escapeClassToken(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 8)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '[', ']', '/', ':', '!', '%', '.', '#', '(', ')', ' ', '@', ',':
			b.WriteByte('\\')
		case '-':
			if i == 0 {
				b.WriteByte('\\')
			}
		}
		b.WriteByte(c)
	}
	return b.String()
}

// UnescapeClassToken reverses escapeClassToken. Round-tripping any raw class
// token through escape and unescape returns the original string.
func UnescapeClassToken(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
