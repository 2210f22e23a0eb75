package modes

import (
	"strings"

	"github.com/pipe01/htmlfold/internal/folding"
)

// blockFolder folds bracketed blocks and comments for C-like languages.
type blockFolder struct {
	lines folding.LineIndex

	ranges  []folding.Range
	blocks  []int
	regions []int
}

func (f *blockFolder) open(offset int) {
	f.blocks = append(f.blocks, f.lines.LineAt(offset))
}

// close folds the innermost open block up to the line before the closing
// bracket. Unbalanced closing brackets are ignored.
func (f *blockFolder) close(offset int) {
	if len(f.blocks) == 0 {
		return
	}

	startLine := f.blocks[len(f.blocks)-1]
	f.blocks = f.blocks[:len(f.blocks)-1]

	endLine := f.lines.LineAt(offset) - 1
	if endLine > startLine {
		f.ranges = append(f.ranges, folding.Range{
			StartLine: startLine,
			EndLine:   endLine,
		})
	}
}

func (f *blockFolder) comment(offset int, text string) {
	text = strings.TrimRight(text, "\r\n")
	startLine := f.lines.LineAt(offset)

	switch folding.MatchRegionMarker(commentBody(text)) {
	case folding.MarkerStart:
		f.regions = append(f.regions, startLine)

	case folding.MarkerEnd:
		if len(f.regions) == 0 {
			return
		}

		regionStart := f.regions[len(f.regions)-1]
		f.regions = f.regions[:len(f.regions)-1]

		if startLine > regionStart {
			f.ranges = append(f.ranges, folding.Range{
				StartLine: regionStart,
				EndLine:   startLine,
				Kind:      folding.KindRegion,
			})
		}

	default:
		endLine := f.lines.LineAt(offset + len(text))
		if endLine > startLine {
			f.ranges = append(f.ranges, folding.Range{
				StartLine: startLine,
				EndLine:   endLine,
				Kind:      folding.KindComment,
			})
		}
	}
}

func commentBody(text string) string {
	if strings.HasPrefix(text, "//") {
		return text[2:]
	}

	text = strings.TrimPrefix(text, "/*")
	return strings.TrimSuffix(text, "*/")
}
