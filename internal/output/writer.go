// Package output prints folding range reports for the command line.
package output

import (
	"fmt"
	"io"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/pipe01/htmlfold/internal/folding"
	"golang.org/x/exp/slices"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

var Formats = []string{string(FormatText), string(FormatJSON)}

type Writer struct {
	w      io.Writer
	format Format

	indentation int
}

func NewWriter(w io.Writer, format Format) (*Writer, error) {
	switch format {
	case FormatText, FormatJSON:
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}

	return &Writer{w: w, format: format}, nil
}

type report struct {
	File   string          `json:"file"`
	Ranges []folding.Range `json:"ranges"`
}

// WriteReport prints the ranges found in a file. In text mode ranges are
// sorted and indented by their nesting level, JSON reports keep the given
// order.
func (w *Writer) WriteReport(name string, ranges []folding.Range) error {
	if w.format == FormatJSON {
		if ranges == nil {
			ranges = []folding.Range{}
		}

		b, err := json.Marshal(report{File: name, Ranges: ranges})
		if err != nil {
			return fmt.Errorf("marshal report: %w", err)
		}

		_, err = fmt.Fprintf(w.w, "%s\n", b)
		return err
	}

	return w.writeText(name, ranges)
}

func (w *Writer) writeText(name string, ranges []folding.Range) error {
	if _, err := fmt.Fprintf(w.w, "%s: %d ranges\n", name, len(ranges)); err != nil {
		return err
	}

	sorted := slices.Clone(ranges)
	folding.SortRanges(sorted)
	levels := folding.NestingLevels(sorted)

	for i, r := range sorted {
		w.indentation = 1 + max(levels[i], 0)
		w.writeIndentation()

		if _, err := fmt.Fprintln(w.w, r.String()); err != nil {
			return err
		}
	}

	w.indentation = 0
	return nil
}

func (w *Writer) writeIndentation() {
	fmt.Fprint(w.w, strings.Repeat("  ", w.indentation))
}
