package build

import (
	"bytes"
	"errors"
	"io"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// sheetInfo is a shallow summary of a CSS document.
type sheetInfo struct {
	Rulesets     int
	Declarations int
	Broken       bool // parser gave up before the end of input
}

// inspectSheet runs a CSS document through the parser without keeping the
// result. Injected sheets are passed into the output byte for byte, this is
// only to warn the user early about files which do not look like CSS at all.
func inspectSheet(data []byte) sheetInfo {

	var info sheetInfo

	p := css.NewParser(parse.NewInput(bytes.NewReader(data)), false)
	for {
		gt, _, _ := p.Next()
		switch gt {
		case css.ErrorGrammar:
			if err := p.Err(); err != nil && !errors.Is(err, io.EOF) {
				info.Broken = true
			}
			return info
		case css.BeginRulesetGrammar:
			info.Rulesets++
		case css.DeclarationGrammar, css.CustomPropertyGrammar:
			info.Declarations++
		}
	}
}
