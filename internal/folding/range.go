// Package folding computes folding ranges from an HTML token stream and
// limits a range list to a maximum size without losing the outer structure.
package folding

import (
	"fmt"

	"github.com/pipe01/htmlfold/internal/lexer"
)

// Kind values match the ones used by the language server protocol.
type Kind string

const (
	KindNone    Kind = ""
	KindComment Kind = "comment"
	KindRegion  Kind = "region"
)

// Range is an inclusive, 0-based span of lines that can be collapsed.
// EndLine is always greater than StartLine.
type Range struct {
	StartLine int  `json:"startLine"`
	EndLine   int  `json:"endLine"`
	Kind      Kind `json:"kind,omitempty"`
}

func (r Range) String() string {
	if r.Kind == KindNone {
		return fmt.Sprintf("%d-%d", r.StartLine, r.EndLine)
	}
	return fmt.Sprintf("%d-%d %s", r.StartLine, r.EndLine, r.Kind)
}

type TokenSource interface {
	Next() lexer.Token
}

type LineIndex interface {
	LineAt(offset int) int
}
