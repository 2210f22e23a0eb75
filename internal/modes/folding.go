package modes

import (
	"context"

	"github.com/pipe01/htmlfold/internal/document"
	"github.com/pipe01/htmlfold/internal/folding"
)

// FoldingRanges folds the HTML in r and every embedded language region in it
// that has its own provider. Ranges from different providers are appended in
// the order the providers ran, overlaps are left alone.
//
// If maxRanges is positive the result is limited with folding.LimitRanges.
// ctx is only checked before each provider runs.
func FoldingRanges(ctx context.Context, lm LanguageModes, doc *document.Document, r document.Range, maxRanges int) ([]folding.Range, error) {
	var ranges []folding.Range

	primary := lm.Mode(ModeHTML)

	if p, ok := primary.(FoldingProvider); ok {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		ranges = append(ranges, p.FoldingRanges(doc, r)...)
	}

	for _, mr := range lm.ModesInRange(doc, r) {
		if mr.Mode == nil || mr.AttributeValue {
			continue
		}
		if primary != nil && mr.Mode.ID() == primary.ID() {
			continue
		}

		p, ok := mr.Mode.(FoldingProvider)
		if !ok {
			continue
		}

		if err := ctx.Err(); err != nil {
			return nil, err
		}

		found := p.FoldingRanges(doc, mr.Range())
		logger().Debugf("%s: %d folding ranges from %s at [%d, %d)", doc.URI(), len(found), mr.Mode.ID(), mr.Start, mr.End)

		ranges = append(ranges, found...)
	}

	if maxRanges > 0 && len(ranges) > maxRanges {
		logger().Infof("%s: limiting %d folding ranges to %d", doc.URI(), len(ranges), maxRanges)
		ranges = folding.LimitRanges(ranges, maxRanges)
	}

	return ranges, nil
}
