package output

import (
	"bytes"
	"testing"

	"github.com/pipe01/htmlfold/internal/folding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ranges = []folding.Range{
	{StartLine: 3, EndLine: 4, Kind: folding.KindComment},
	{StartLine: 1, EndLine: 2},
	{StartLine: 0, EndLine: 5},
}

func TestWriteReport(t *testing.T) {
	type testCase struct {
		name     string
		format   Format
		ranges   []folding.Range
		expected string
	}

	cases := []testCase{
		{
			name:   "text",
			format: FormatText,
			ranges: ranges,
			expected: "page.html: 3 ranges\n" +
				"  0-5\n" +
				"    1-2\n" +
				"    3-4 comment\n",
		},
		{
			name:     "text empty",
			format:   FormatText,
			expected: "page.html: 0 ranges\n",
		},
		{
			name:   "json",
			format: FormatJSON,
			ranges: ranges,
			expected: `{"file":"page.html","ranges":[` +
				`{"startLine":3,"endLine":4,"kind":"comment"},` +
				`{"startLine":1,"endLine":2},` +
				`{"startLine":0,"endLine":5}]}` + "\n",
		},
		{
			name:     "json empty",
			format:   FormatJSON,
			expected: `{"file":"page.html","ranges":[]}` + "\n",
		},
	}

	for _, c := range cases {
		c := c

		t.Run(c.name, func(t *testing.T) {
			var buf bytes.Buffer

			w, err := NewWriter(&buf, c.format)
			require.NoError(t, err)

			require.NoError(t, w.WriteReport("page.html", c.ranges))
			assert.Equal(t, c.expected, buf.String())
		})
	}
}

func TestWriteReportKeepsInput(t *testing.T) {
	in := append([]folding.Range(nil), ranges...)

	w, err := NewWriter(&bytes.Buffer{}, FormatText)
	require.NoError(t, err)
	require.NoError(t, w.WriteReport("page.html", in))

	assert.Equal(t, ranges, in)
}

func TestNewWriterUnknownFormat(t *testing.T) {
	_, err := NewWriter(&bytes.Buffer{}, "xml")
	require.Error(t, err)
}
