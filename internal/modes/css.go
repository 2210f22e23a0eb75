package modes

import (
	"github.com/pipe01/htmlfold/internal/document"
	"github.com/pipe01/htmlfold/internal/folding"
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

type cssMode struct{}

func (*cssMode) ID() string {
	return ModeCSS
}

func (*cssMode) FoldingRanges(doc *document.Document, r document.Range) []folding.Range {
	l := css.NewLexer(parse.NewInputString(doc.Slice(r)))
	f := blockFolder{
		lines: shiftedLines{doc: doc, base: r.Start},
	}

	offset := 0
	for {
		tt, data := l.Next()
		if tt == css.ErrorToken {
			break
		}

		switch tt {
		case css.LeftBraceToken:
			f.open(offset)
		case css.RightBraceToken:
			f.close(offset)
		case css.CommentToken:
			f.comment(offset, string(data))
		}

		offset += len(data)
	}

	return f.ranges
}
