// Package modes splits an HTML document into the languages embedded in it
// and folds each part with the provider for its language.
package modes

import (
	"github.com/pipe01/htmlfold/internal/document"
	"github.com/pipe01/htmlfold/internal/folding"
	"github.com/tliron/commonlog"
)

const (
	ModeHTML       = "html"
	ModeCSS        = "css"
	ModeJavaScript = "javascript"
)

func logger() commonlog.Logger {
	return commonlog.GetLogger("htmlfold.modes")
}

type Mode interface {
	ID() string
}

// FoldingProvider is implemented by modes that can fold their own language.
// Only the part of doc inside r must be looked at.
type FoldingProvider interface {
	FoldingRanges(doc *document.Document, r document.Range) []folding.Range
}

// ModeRange is a part of a document owned by a single mode.
type ModeRange struct {
	Start, End int
	Mode       Mode

	// Set when the range is the value of an attribute, like style="..."
	AttributeValue bool
}

func (m ModeRange) Range() document.Range {
	return document.Range{Start: m.Start, End: m.End}
}

type LanguageModes interface {
	// Mode returns the mode with the given ID, or nil if there is none.
	Mode(id string) Mode

	// ModesInRange splits r into consecutive ranges, each owned by one mode.
	ModesInRange(doc *document.Document, r document.Range) []ModeRange
}

// Registry is the LanguageModes implementation for HTML documents with
// embedded CSS and JavaScript.
type Registry struct {
	modes map[string]Mode
}

var _ LanguageModes = (*Registry)(nil)

func New() *Registry {
	r := &Registry{
		modes: make(map[string]Mode),
	}

	r.Register(&htmlMode{})
	r.Register(&cssMode{})
	r.Register(&javascriptMode{})

	return r
}

// Register adds a mode, replacing any previous mode with the same ID.
func (r *Registry) Register(m Mode) {
	r.modes[m.ID()] = m
}

func (r *Registry) Mode(id string) Mode {
	return r.modes[id]
}

func (r *Registry) ModesInRange(doc *document.Document, rng document.Range) []ModeRange {
	var result []ModeRange

	html := r.Mode(ModeHTML)
	pos := rng.Start

	for _, region := range findEmbeddedRegions(doc.Text()) {
		start := max(region.start, rng.Start)
		end := min(region.end, rng.End)
		if start >= end {
			continue
		}

		mode := r.Mode(region.modeID)
		if mode == nil {
			continue
		}

		if start > pos {
			result = append(result, ModeRange{Start: pos, End: start, Mode: html})
		}

		result = append(result, ModeRange{
			Start:          start,
			End:            end,
			Mode:           mode,
			AttributeValue: region.attributeValue,
		})
		pos = end
	}

	if pos < rng.End {
		result = append(result, ModeRange{Start: pos, End: rng.End, Mode: html})
	}

	return result
}

// shiftedLines resolves offsets relative to base in doc.
type shiftedLines struct {
	doc  *document.Document
	base int
}

func (s shiftedLines) LineAt(offset int) int {
	return s.doc.LineAt(s.base + offset)
}
