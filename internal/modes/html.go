package modes

import (
	"github.com/pipe01/htmlfold/internal/document"
	"github.com/pipe01/htmlfold/internal/folding"
	"github.com/pipe01/htmlfold/internal/lexer"
)

type htmlMode struct{}

func (*htmlMode) ID() string {
	return ModeHTML
}

func (*htmlMode) FoldingRanges(doc *document.Document, r document.Range) []folding.Range {
	l := lexer.NewString(doc.Slice(r))

	return folding.ExtractRanges(l, shiftedLines{doc: doc, base: r.Start})
}
