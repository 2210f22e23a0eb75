package modes

import (
	"github.com/pipe01/htmlfold/internal/document"
	"github.com/pipe01/htmlfold/internal/folding"
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/js"
)

type javascriptMode struct{}

func (*javascriptMode) ID() string {
	return ModeJavaScript
}

// FoldingRanges folds object literals, blocks, arrays and comments. The
// lexer stops at the first syntax error, everything found up to it is kept.
func (*javascriptMode) FoldingRanges(doc *document.Document, r document.Range) []folding.Range {
	l := js.NewLexer(parse.NewInputString(doc.Slice(r)))
	f := blockFolder{
		lines: shiftedLines{doc: doc, base: r.Start},
	}

	offset := 0
	for {
		tt, data := l.Next()
		if tt == js.ErrorToken {
			break
		}

		switch tt {
		case js.OpenBraceToken, js.OpenBracketToken:
			f.open(offset)
		case js.CloseBraceToken, js.CloseBracketToken:
			f.close(offset)
		case js.CommentToken, js.CommentLineTerminatorToken:
			f.comment(offset, string(data))
		}

		offset += len(data)
	}

	return f.ranges
}
