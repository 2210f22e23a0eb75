package lexer

type TokenType int

const (
	TokenStartTagOpen TokenType = iota
	TokenStartTag
	TokenStartTagClose
	TokenStartTagSelfClose

	TokenEndTagOpen
	TokenEndTag
	TokenEndTagClose

	TokenStartCommentTag
	TokenComment
	TokenEndCommentTag

	TokenStartDoctypeTag
	TokenDoctype
	TokenEndDoctypeTag

	TokenAttributeName
	TokenDelimiterAssign
	TokenAttributeValue

	TokenContent
	TokenScript
	TokenStyles

	TokenWhitespace
	TokenUnknown

	TokenEOF
)

func (t TokenType) String() string {
	switch t {
	case TokenStartTagOpen:
		return "Start tag open"
	case TokenStartTag:
		return "Start tag"
	case TokenStartTagClose:
		return "Start tag close"
	case TokenStartTagSelfClose:
		return "Start tag self close"

	case TokenEndTagOpen:
		return "End tag open"
	case TokenEndTag:
		return "End tag"
	case TokenEndTagClose:
		return "End tag close"

	case TokenStartCommentTag:
		return "Comment start"
	case TokenComment:
		return "Comment"
	case TokenEndCommentTag:
		return "Comment end"

	case TokenStartDoctypeTag:
		return "Doctype start"
	case TokenDoctype:
		return "Doctype"
	case TokenEndDoctypeTag:
		return "Doctype end"

	case TokenAttributeName:
		return "Attribute name"
	case TokenDelimiterAssign:
		return "Equals"
	case TokenAttributeValue:
		return "Attribute value"

	case TokenContent:
		return "Content"
	case TokenScript:
		return "Script"
	case TokenStyles:
		return "Styles"

	case TokenWhitespace:
		return "Whitespace"
	case TokenUnknown:
		return "Unknown"

	case TokenEOF:
		return "EOF"
	}

	return "<unknown>"
}

// Token is a slice of the source text. Offset and Length are in bytes.
type Token struct {
	Type     TokenType
	Offset   int
	Length   int
	Contents string
}

// End returns the offset right after the token.
func (t Token) End() int {
	return t.Offset + t.Length
}
