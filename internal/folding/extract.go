package folding

import "github.com/pipe01/htmlfold/internal/lexer"

type extractor struct {
	lines LineIndex

	ranges []Range
	stack  frameStack

	// Start line of the last range that was emitted, -1 if none
	lastStartLine int

	// Name of the last start or end tag seen, the next close token refers to it
	pendingTag string
}

// ExtractRanges consumes tokens until TokenEOF and returns the element,
// comment and region ranges found, in the order they were closed.
//
// Unbalanced markup is never an error: open tags without a matching close
// are dropped, as are stray end tags and #endregion markers.
func ExtractRanges(tokens TokenSource, lines LineIndex) []Range {
	e := extractor{
		lines:         lines,
		lastStartLine: -1,
	}

	for {
		tk := tokens.Next()
		if tk.Type == lexer.TokenEOF {
			break
		}

		e.visit(tk)
	}

	return e.ranges
}

func (e *extractor) visit(tk lexer.Token) {
	switch tk.Type {
	case lexer.TokenStartTag:
		e.stack.push(frame{
			kind:      frameElement,
			startLine: e.lines.LineAt(tk.Offset),
			tag:       tk.Contents,
		})
		e.pendingTag = tk.Contents

	case lexer.TokenEndTag:
		e.pendingTag = tk.Contents

	case lexer.TokenStartTagClose:
		if IsVoidElement(e.pendingTag) {
			e.closeElement(tk)
		}

	case lexer.TokenEndTagClose, lexer.TokenStartTagSelfClose:
		e.closeElement(tk)

	case lexer.TokenComment:
		e.visitComment(tk)
	}
}

func (e *extractor) closeElement(tk lexer.Token) {
	i := e.stack.lastElement(e.pendingTag)
	if i < 0 {
		return
	}

	f := e.stack.closeAt(i)
	endLine := e.lines.LineAt(tk.Offset) - 1

	e.addDeduped(Range{
		StartLine: f.startLine,
		EndLine:   endLine,
		Kind:      KindNone,
	})
}

func (e *extractor) visitComment(tk lexer.Token) {
	startLine := e.lines.LineAt(tk.Offset)

	switch MatchRegionMarker(tk.Contents) {
	case MarkerStart:
		e.stack.push(frame{
			kind:      frameRegion,
			startLine: startLine,
		})

	case MarkerEnd:
		i := e.stack.lastRegion()
		if i < 0 {
			return
		}

		f := e.stack.closeAt(i)

		e.addDeduped(Range{
			StartLine: f.startLine,
			EndLine:   startLine,
			Kind:      KindRegion,
		})

	default:
		// Plain comments are never deduplicated, but later ranges are still
		// checked against them
		endLine := e.lines.LineAt(tk.End())
		if startLine < endLine {
			e.add(Range{
				StartLine: startLine,
				EndLine:   endLine,
				Kind:      KindComment,
			})
		}
	}
}

func (e *extractor) add(r Range) {
	e.ranges = append(e.ranges, r)
	e.lastStartLine = r.StartLine
}

// addDeduped adds r unless it is empty or starts on the same line as the
// previously added range.
func (e *extractor) addDeduped(r Range) {
	if r.EndLine <= r.StartLine || r.StartLine == e.lastStartLine {
		return
	}

	e.add(r)
}
