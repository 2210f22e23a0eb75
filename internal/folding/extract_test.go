package folding

import (
	"strings"
	"testing"

	"github.com/pipe01/htmlfold/internal/document"
	"github.com/pipe01/htmlfold/internal/lexer"
	"github.com/stretchr/testify/assert"
)

func extract(lines ...string) []Range {
	doc := document.New("", 0, strings.Join(lines, "\n"))
	return ExtractRanges(lexer.NewString(doc.Text()), doc)
}

func TestExtractRanges(t *testing.T) {
	type testCase struct {
		name  string
		lines []string
		want  []Range
	}

	cases := []testCase{
		{
			name:  "nested elements",
			lines: []string{"<div>", "  <span>", "    x", "  </span>", "</div>"},
			want: []Range{
				{StartLine: 1, EndLine: 2},
				{StartLine: 0, EndLine: 3},
			},
		},
		{
			name:  "single line element",
			lines: []string{"<p>x</p>"},
			want:  nil,
		},
		{
			name:  "element with one line body",
			lines: []string{"<p>", "x", "</p>"},
			want: []Range{
				{StartLine: 0, EndLine: 1},
			},
		},
		{
			name:  "element closed on the next line",
			lines: []string{"<p>x", "</p>"},
			want:  nil,
		},
		{
			name:  "void and self closing elements",
			lines: []string{"<div>", "  <br>", "  <img src=x>", "  <input/>", "  <BR>", "</div>"},
			want: []Range{
				{StartLine: 0, EndLine: 4},
			},
		},
		{
			name:  "unclosed inner element is dropped",
			lines: []string{"<div>", "  <p>", "  x", "  y", "</div>"},
			want: []Range{
				{StartLine: 0, EndLine: 3},
			},
		},
		{
			name:  "stray end tag",
			lines: []string{"</span>", "<div>", "", "</div>"},
			want: []Range{
				{StartLine: 1, EndLine: 2},
			},
		},
		{
			name:  "unclosed element",
			lines: []string{"<div>", "", "", ""},
			want:  nil,
		},
		{
			name:  "tag names match exactly",
			lines: []string{"<DIV>", "", "", "</div>"},
			want:  nil,
		},
		{
			name:  "same start line keeps first emitted",
			lines: []string{"x", "x", "x", "x", "x", "<div><p>", "a", "</p>", "b", "c", "</div>"},
			want: []Range{
				{StartLine: 5, EndLine: 6},
			},
		},
		{
			name:  "dedup only looks at the previous range",
			lines: []string{"<div><p>", "x", "</p>", "<span>", "y", "</span>", "</div>"},
			want: []Range{
				{StartLine: 0, EndLine: 1},
				{StartLine: 3, EndLine: 4},
				{StartLine: 0, EndLine: 5},
			},
		},
		{
			name:  "comment",
			lines: []string{"<p>", "</p>", "", "<!-- one", "two", "three", "four -->"},
			want: []Range{
				{StartLine: 3, EndLine: 6, Kind: KindComment},
			},
		},
		{
			name:  "single line comment",
			lines: []string{"<!-- one -->", ""},
			want:  nil,
		},
		{
			name:  "comment suppresses element on the same line",
			lines: []string{"<div><!-- a", "b -->", "c", "</div>"},
			want: []Range{
				{StartLine: 0, EndLine: 1, Kind: KindComment},
			},
		},
		{
			name:  "nested regions",
			lines: []string{"<!-- #region a -->", "<!--#region b-->", "x", "<!-- #endregion -->", "<!-- #endregion -->"},
			want: []Range{
				{StartLine: 1, EndLine: 3, Kind: KindRegion},
				{StartLine: 0, EndLine: 4, Kind: KindRegion},
			},
		},
		{
			name:  "end region without start",
			lines: []string{"<!-- #endregion -->", "", "<!-- #endregion -->"},
			want:  nil,
		},
		{
			name:  "element close drops regions opened inside it",
			lines: []string{"<div>", "<!-- #region -->", "x", "</div>", "<!-- #endregion -->"},
			want: []Range{
				{StartLine: 0, EndLine: 2},
			},
		},
		{
			name:  "region with element inside",
			lines: []string{"<!-- #region -->", "<ul>", "<li>a</li>", "<li>b</li>", "</ul>", "<!-- #endregion -->"},
			want: []Range{
				{StartLine: 1, EndLine: 3},
				{StartLine: 0, EndLine: 5, Kind: KindRegion},
			},
		},
		{
			name:  "not a region marker",
			lines: []string{"<!-- #regional", "stuff -->"},
			want: []Range{
				{StartLine: 0, EndLine: 1, Kind: KindComment},
			},
		},
	}

	for _, c := range cases {
		c := c

		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, extract(c.lines...))
		})
	}
}

func TestExtractRegionLines(t *testing.T) {
	lines := make([]string, 25)
	lines[10] = "<!-- #region -->"
	lines[20] = "<!-- #endregion -->"

	assert.Equal(t, []Range{{StartLine: 10, EndLine: 20, Kind: KindRegion}}, extract(lines...))
}

func TestExtractElementBody(t *testing.T) {
	// An element spanning [s, e] folds to [s, e-1]
	for s := 0; s < 4; s++ {
		for e := s + 2; e < 8; e++ {
			lines := make([]string, 10)
			lines[s] = "<section>"
			lines[e] = "</section>"

			assert.Equal(t, []Range{{StartLine: s, EndLine: e - 1}}, extract(lines...), "element at [%d, %d]", s, e)
		}
	}
}

func TestIsVoidElement(t *testing.T) {
	assert.True(t, IsVoidElement("br"))
	assert.True(t, IsVoidElement("IMG"))
	assert.True(t, IsVoidElement("wbr"))
	assert.False(t, IsVoidElement("div"))
	assert.False(t, IsVoidElement(""))
	assert.True(t, isSorted(voidElements), "void elements must be sorted")
}

func isSorted(s []string) bool {
	for i := 1; i < len(s); i++ {
		if s[i-1] >= s[i] {
			return false
		}
	}
	return true
}

func TestMatchRegionMarker(t *testing.T) {
	assert.Equal(t, MarkerStart, MatchRegionMarker(" #region"))
	assert.Equal(t, MarkerStart, MatchRegionMarker("#region foo"))
	assert.Equal(t, MarkerEnd, MatchRegionMarker("\t#endregion "))
	assert.Equal(t, MarkerNone, MatchRegionMarker("#regions"))
	assert.Equal(t, MarkerNone, MatchRegionMarker("x #region"))
	assert.Equal(t, MarkerNone, MatchRegionMarker(""))
}
