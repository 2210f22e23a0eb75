package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func types(tks []Token) []TokenType {
	ret := make([]TokenType, len(tks))
	for i, tk := range tks {
		ret[i] = tk.Type
	}
	return ret
}

func TestLexer(t *testing.T) {
	type testCase struct {
		name  string
		input string
		want  []TokenType
	}

	cases := []testCase{
		{
			name:  "empty",
			input: "",
			want:  []TokenType{TokenEOF},
		},
		{
			name:  "text only",
			input: "hello < world",
			want:  []TokenType{TokenContent, TokenEOF},
		},
		{
			name:  "element",
			input: "<div>x</div>",
			want: []TokenType{
				TokenStartTagOpen, TokenStartTag, TokenStartTagClose,
				TokenContent,
				TokenEndTagOpen, TokenEndTag, TokenEndTagClose,
				TokenEOF,
			},
		},
		{
			name:  "self closing",
			input: "<br/>",
			want:  []TokenType{TokenStartTagOpen, TokenStartTag, TokenStartTagSelfClose, TokenEOF},
		},
		{
			name:  "attributes",
			input: `<a href="x" id=y disabled>`,
			want: []TokenType{
				TokenStartTagOpen, TokenStartTag,
				TokenWhitespace, TokenAttributeName, TokenDelimiterAssign, TokenAttributeValue,
				TokenWhitespace, TokenAttributeName, TokenDelimiterAssign, TokenAttributeValue,
				TokenWhitespace, TokenAttributeName,
				TokenStartTagClose,
				TokenEOF,
			},
		},
		{
			name:  "comment",
			input: "<!-- hi -->",
			want:  []TokenType{TokenStartCommentTag, TokenComment, TokenEndCommentTag, TokenEOF},
		},
		{
			name:  "unterminated comment",
			input: "<!-- hi",
			want:  []TokenType{TokenStartCommentTag, TokenComment, TokenEOF},
		},
		{
			name:  "doctype",
			input: "<!DOCTYPE html>",
			want:  []TokenType{TokenStartDoctypeTag, TokenDoctype, TokenEndDoctypeTag, TokenEOF},
		},
		{
			name:  "interrupted start tag",
			input: "<div<p>",
			want: []TokenType{
				TokenStartTagOpen, TokenStartTag, TokenStartTagClose,
				TokenStartTagOpen, TokenStartTag, TokenStartTagClose,
				TokenEOF,
			},
		},
		{
			name:  "script body",
			input: "<script>if (a < b) {}</SCRIPT>",
			want: []TokenType{
				TokenStartTagOpen, TokenStartTag, TokenStartTagClose,
				TokenScript,
				TokenEndTagOpen, TokenEndTag, TokenEndTagClose,
				TokenEOF,
			},
		},
		{
			name:  "style body",
			input: "<style>a { color: red }</style>",
			want: []TokenType{
				TokenStartTagOpen, TokenStartTag, TokenStartTagClose,
				TokenStyles,
				TokenEndTagOpen, TokenEndTag, TokenEndTagClose,
				TokenEOF,
			},
		},
		{
			name:  "garbage in end tag",
			input: "</div foo>",
			want:  []TokenType{TokenEndTagOpen, TokenEndTag, TokenWhitespace, TokenUnknown, TokenEndTagClose, TokenEOF},
		},
	}

	for _, c := range cases {
		c := c

		t.Run(c.name, func(t *testing.T) {
			tks := NewString(c.input).Collect()
			assert.Equal(t, c.want, types(tks))
		})
	}
}

func TestLexerOffsets(t *testing.T) {
	src := "<div>\n  <!--a\nb-->\n</div>"
	tks := NewString(src).Collect()

	for _, tk := range tks {
		require.Equal(t, src[tk.Offset:tk.End()], tk.Contents, "token %s", tk.Type)
	}

	var comment Token
	for _, tk := range tks {
		if tk.Type == TokenComment {
			comment = tk
		}
	}
	assert.Equal(t, "a\nb", comment.Contents)
	assert.Equal(t, 12, comment.Offset)
	assert.Equal(t, 3, comment.Length)
}

func TestLexerTokensCoverInput(t *testing.T) {
	src := `<!DOCTYPE html><html lang="en"><body onload='go()'>
<p class=x>Hi <b>there</b><br></p>
<script type="module">const x = "</p>";</script>
</body></html>`

	tks := NewString(src).Collect()

	offset := 0
	for _, tk := range tks {
		require.Equal(t, offset, tk.Offset, "gap before %s %q", tk.Type, tk.Contents)
		offset = tk.End()
	}
	require.Equal(t, len(src), offset)
}

func TestLexerEOFRepeats(t *testing.T) {
	l := NewString("<p>")
	l.Collect()

	tk := l.Next()
	assert.Equal(t, TokenEOF, tk.Type)
	assert.Equal(t, 3, tk.Offset)
}
