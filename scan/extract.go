package scan

import (
	"bytes"
	"path/filepath"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/html"
)

// Extract returns class candidates found in file content. Markup files are
// tokenized properly and only class attributes are considered, everything
// else is treated as text and mined for class shaped tokens.
func (s *Scanner) Extract(path string, data []byte) []string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm", ".xhtml", ".vue", ".svelte":
		return extractMarkup(data)
	default:
		return extractTokens(data)
	}
}

// extractMarkup picks whitespace separated values of class attributes.
func extractMarkup(data []byte) []string {

	var classes []string

	l := html.NewLexer(parse.NewInput(bytes.NewReader(data)))
	for {
		tt, _ := l.Next()
		switch tt {
		case html.ErrorToken:
			// either EOF or broken markup, in both cases we are done
			return classes
		case html.AttributeToken:
			name := strings.ToLower(string(l.Text()))
			if name != "class" && name != "classname" {
				continue
			}
			val := bytes.TrimSpace(l.AttrVal())
			if len(val) >= 2 && (val[0] == '"' || val[0] == '\'') {
				val = val[1 : len(val)-1]
			}
			for f := range strings.FieldsSeq(string(val)) {
				classes = append(classes, f)
			}
		}
	}
}

// extractTokens is a conservative candidate miner for non-markup sources
// (templates, scripts, markdown). It picks runs of class name characters
// and filters out ones which cannot possibly be a utility class. Garbage
// surviving the filter is harmless, the compiler drops what it cannot
// resolve.
func extractTokens(data []byte) []string {

	var (
		classes []string
		start   = -1
	)

	flush := func(end int) {
		if start < 0 {
			return
		}
		tok := string(data[start:end])
		start = -1
		if plausibleClass(tok) {
			classes = append(classes, tok)
		}
	}

	for i := range data {
		if isTokenByte(data[i]) {
			if start < 0 {
				start = i
			}
			continue
		}
		flush(i)
	}
	flush(len(data))

	return classes
}

func isTokenByte(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	}
	return strings.IndexByte("-_:/.![]@%#(),&'", c) >= 0
}

const maxClassLen = 128

func plausibleClass(tok string) bool {
	if len(tok) == 0 || len(tok) > maxClassLen {
		return false
	}

	switch tok[0] {
	case '/', ':', '.', ',', '#', '%', '(', ')', '\'', '&', '_':
		return false
	}
	switch tok[len(tok)-1] {
	case ':', '/', '.', ',', '-', '(', '\'', '&', '_':
		return false
	}

	var letters, depth int
	for i := 0; i < len(tok); i++ {
		switch c := tok[i]; {
		case c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z':
			letters++
		case c == '[':
			depth++
		case c == ']':
			depth--
			if depth < 0 {
				return false
			}
		}
	}
	return letters > 0 && depth == 0
}
