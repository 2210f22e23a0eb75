package modes

import (
	"strings"

	"github.com/pipe01/htmlfold/internal/lexer"
)

type embeddedRegion struct {
	start, end     int
	modeID         string
	attributeValue bool
}

var javaScriptTypes = map[string]struct{}{
	"":                       {},
	"module":                 {},
	"text/javascript":        {},
	"application/javascript": {},
	"text/ecmascript":        {},
	"application/ecmascript": {},
	"text/babel":             {},
}

func isJavaScriptType(typ string) bool {
	_, ok := javaScriptTypes[strings.ToLower(strings.TrimSpace(typ))]
	return ok
}

// findEmbeddedRegions returns, in document order, the parts of an HTML
// document written in another language.
func findEmbeddedRegions(text string) []embeddedRegion {
	var regions []embeddedRegion
	var lastTag, lastAttr, scriptType string

	l := lexer.NewString(text)

	for {
		tk := l.Next()

		switch tk.Type {
		case lexer.TokenEOF:
			return regions

		case lexer.TokenStartTag:
			lastTag = strings.ToLower(tk.Contents)
			lastAttr = ""
			scriptType = ""

		case lexer.TokenAttributeName:
			lastAttr = strings.ToLower(tk.Contents)

		case lexer.TokenAttributeValue:
			start, end := unquotedBounds(tk)

			if lastTag == "script" && lastAttr == "type" {
				scriptType = text[start:end]
			}

			switch {
			case lastAttr == "style":
				regions = append(regions, embeddedRegion{start: start, end: end, modeID: ModeCSS, attributeValue: true})
			case strings.HasPrefix(lastAttr, "on"):
				regions = append(regions, embeddedRegion{start: start, end: end, modeID: ModeJavaScript, attributeValue: true})
			}

		case lexer.TokenStyles:
			regions = append(regions, embeddedRegion{start: tk.Offset, end: tk.End(), modeID: ModeCSS})

		case lexer.TokenScript:
			if isJavaScriptType(scriptType) {
				regions = append(regions, embeddedRegion{start: tk.Offset, end: tk.End(), modeID: ModeJavaScript})
			}
		}
	}
}

// unquotedBounds returns the offsets of an attribute value without its quotes.
func unquotedBounds(tk lexer.Token) (start, end int) {
	start, end = tk.Offset, tk.End()

	if v := tk.Contents; len(v) > 0 && (v[0] == '"' || v[0] == '\'') {
		start++
		if len(v) > 1 && v[len(v)-1] == v[0] {
			end--
		}
	}

	return start, end
}
