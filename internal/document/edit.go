package document

import (
	"errors"
	"fmt"
)

var ErrInvalidRange = errors.New("invalid change range")

type EditError struct {
	Inner    error
	Position Position
}

func (e *EditError) Unwrap() error {
	return e.Inner
}

func (e *EditError) Error() string {
	return fmt.Sprintf("%s at %s", e.Inner, e.Position)
}

func (e *EditError) At() Position {
	return e.Position
}

// Change replaces the text in Range, or the whole document if Range is nil.
type Change struct {
	Range *Range
	Text  string
}

// Apply returns a new document with the given changes applied in order.
func (d *Document) Apply(version int32, changes ...Change) (*Document, error) {
	text := d.text
	cur := d

	for _, change := range changes {
		if change.Range == nil {
			text = change.Text
		} else {
			r := *change.Range

			if r.Start < 0 || r.End > len(text) || r.Start > r.End {
				return nil, &EditError{
					Inner:    fmt.Errorf("%w [%d, %d) in %d bytes", ErrInvalidRange, r.Start, r.End, len(text)),
					Position: cur.PositionAt(r.Start),
				}
			}

			text = text[:r.Start] + change.Text + text[r.End:]
		}

		cur = New(d.uri, version, text)
	}

	return cur, nil
}
