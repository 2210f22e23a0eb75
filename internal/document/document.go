// Package document holds a text document together with the line index the
// folding engine needs to turn byte offsets into line numbers.
package document

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Position is a 0-based line and byte column.
type Position struct {
	Line, Character int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line+1, p.Character+1)
}

// Range is a half-open span of byte offsets.
type Range struct {
	Start, End int
}

func (r Range) Len() int {
	return r.End - r.Start
}

func (r Range) Contains(offset int) bool {
	return offset >= r.Start && offset < r.End
}

type Document struct {
	uri     string
	version int32
	text    string

	// Byte offset at which each line starts, lineOffsets[0] is always 0
	lineOffsets []int
}

func New(uri string, version int32, text string) *Document {
	return &Document{
		uri:         uri,
		version:     version,
		text:        text,
		lineOffsets: computeLineOffsets(text),
	}
}

func computeLineOffsets(text string) []int {
	offsets := []int{0}

	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\r':
			if i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
			offsets = append(offsets, i+1)

		case '\n':
			offsets = append(offsets, i+1)
		}
	}

	return offsets
}

func (d *Document) URI() string {
	return d.uri
}

func (d *Document) Version() int32 {
	return d.version
}

func (d *Document) Text() string {
	return d.text
}

func (d *Document) LineCount() int {
	return len(d.lineOffsets)
}

func (d *Document) clamp(offset int) int {
	if offset < 0 {
		return 0
	}
	if offset > len(d.text) {
		return len(d.text)
	}
	return offset
}

// LineAt returns the line containing offset. Out of range offsets are clamped.
func (d *Document) LineAt(offset int) int {
	offset = d.clamp(offset)

	line, found := slices.BinarySearch(d.lineOffsets, offset)
	if !found {
		line--
	}

	return line
}

func (d *Document) PositionAt(offset int) Position {
	offset = d.clamp(offset)
	line := d.LineAt(offset)

	return Position{
		Line:      line,
		Character: offset - d.lineOffsets[line],
	}
}

// OffsetAt converts a position back to an offset. Characters past the end of
// the line are clamped to the line end, lines past the end of the document
// to the document end.
func (d *Document) OffsetAt(pos Position) int {
	if pos.Line < 0 {
		return 0
	}
	if pos.Line >= len(d.lineOffsets) {
		return len(d.text)
	}

	lineStart := d.lineOffsets[pos.Line]
	lineEnd := len(d.text)
	if pos.Line+1 < len(d.lineOffsets) {
		lineEnd = d.lineOffsets[pos.Line+1]
	}

	if pos.Character < 0 {
		return lineStart
	}

	return min(lineStart+pos.Character, lineEnd)
}

func (d *Document) FullRange() Range {
	return Range{Start: 0, End: len(d.text)}
}

// LineRange returns the span from the start of startLine up to the end of
// endLine, inclusive.
func (d *Document) LineRange(startLine, endLine int) Range {
	return Range{
		Start: d.OffsetAt(Position{Line: startLine}),
		End:   d.OffsetAt(Position{Line: endLine + 1}),
	}
}

func (d *Document) Slice(r Range) string {
	return d.text[d.clamp(r.Start):d.clamp(r.End)]
}
