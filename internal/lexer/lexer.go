package lexer

import (
	"bytes"
	"strings"
)

var (
	commentOpen  = []byte("<!--")
	commentClose = []byte("-->")
	endTagOpen   = []byte("</")
	doctypeOpen  = []byte("<!")
	selfClose    = []byte("/>")

	scriptClose = []byte("</script")
	styleClose  = []byte("</style")
)

type stateFunc func() stateFunc

// Lexer scans HTML into tokens. It never fails: anything it can't make sense
// of becomes content or a TokenUnknown.
type Lexer struct {
	file []byte

	start, pos int

	state   stateFunc
	pending []Token

	lastTag string
}

func New(file []byte) *Lexer {
	lexer := &Lexer{
		file:    file,
		pending: make([]Token, 0, 4),
	}
	lexer.state = lexer.lexContent

	return lexer
}

func NewString(s string) *Lexer {
	return New([]byte(s))
}

// Next returns the next token. Once the input is exhausted it keeps
// returning TokenEOF.
func (l *Lexer) Next() Token {
	for len(l.pending) == 0 {
		if l.state == nil {
			return Token{
				Type:   TokenEOF,
				Offset: len(l.file),
			}
		}

		l.state = l.state()
	}

	tk := l.pending[0]
	l.pending = l.pending[:copy(l.pending, l.pending[1:])]

	return tk
}

func (l *Lexer) Collect() []Token {
	tks := []Token{}

	for {
		t := l.Next()
		tks = append(tks, t)

		if t.Type == TokenEOF {
			return tks
		}
	}
}

func (l *Lexer) peek() (r byte, eof bool) {
	if l.pos >= len(l.file) {
		return 0, true
	}

	return l.file[l.pos], false
}

func (l *Lexer) hasPrefix(prefix []byte) bool {
	return bytes.HasPrefix(l.file[l.pos:], prefix)
}

func (l *Lexer) takeWhile(fn func(r byte) bool) (took bool) {
	for l.pos < len(l.file) && fn(l.file[l.pos]) {
		l.pos++
		took = true
	}

	return took
}

func (l *Lexer) takeWhitespace() {
	if l.takeWhile(isWhitespace) {
		l.emit(TokenWhitespace)
	}
}

// takeUntil advances up to the next occurrence of delim, or to the end of the
// file if there is none.
func (l *Lexer) takeUntil(delim []byte) (found bool) {
	idx := bytes.Index(l.file[l.pos:], delim)
	if idx < 0 {
		l.pos = len(l.file)
		return false
	}

	l.pos += idx
	return true
}

func (l *Lexer) emit(typ TokenType) {
	l.pending = append(l.pending, Token{
		Type:     typ,
		Offset:   l.start,
		Length:   l.pos - l.start,
		Contents: string(l.file[l.start:l.pos]),
	})

	l.start = l.pos
}

func (l *Lexer) emitIfNotEmpty(typ TokenType) {
	if !l.isEmpty() {
		l.emit(typ)
	}
}

func (l *Lexer) isEmpty() bool {
	return l.pos == l.start
}

func (l *Lexer) lexContent() stateFunc {
	for {
		idx := bytes.IndexByte(l.file[l.pos:], '<')
		if idx < 0 {
			l.pos = len(l.file)
			l.emitIfNotEmpty(TokenContent)
			return nil
		}

		l.pos += idx

		if l.hasPrefix(doctypeOpen) || l.hasPrefix(endTagOpen) ||
			(l.pos+1 < len(l.file) && isASCIILetter(l.file[l.pos+1])) {

			l.emitIfNotEmpty(TokenContent)
			return l.lexTagOpen
		}

		// A lone '<' is just text
		l.pos++
	}
}

func (l *Lexer) lexTagOpen() stateFunc {
	switch {
	case l.hasPrefix(commentOpen):
		l.pos += len(commentOpen)
		l.emit(TokenStartCommentTag)
		return l.lexComment

	case l.hasPrefix(endTagOpen):
		l.pos += len(endTagOpen)
		l.emit(TokenEndTagOpen)
		return l.lexEndTagName

	case l.hasPrefix(doctypeOpen):
		l.pos += len(doctypeOpen)
		l.emit(TokenStartDoctypeTag)
		return l.lexDoctype
	}

	l.pos++
	l.emit(TokenStartTagOpen)
	return l.lexStartTagName
}

func (l *Lexer) lexComment() stateFunc {
	found := l.takeUntil(commentClose)
	l.emitIfNotEmpty(TokenComment)

	if !found {
		return nil
	}

	l.pos += len(commentClose)
	l.emit(TokenEndCommentTag)
	return l.lexContent
}

func (l *Lexer) lexDoctype() stateFunc {
	found := l.takeUntil([]byte{'>'})
	l.emitIfNotEmpty(TokenDoctype)

	if !found {
		return nil
	}

	l.pos++
	l.emit(TokenEndDoctypeTag)
	return l.lexContent
}

func (l *Lexer) lexStartTagName() stateFunc {
	l.takeWhile(isNameChar)

	l.lastTag = strings.ToLower(string(l.file[l.start:l.pos]))
	l.emit(TokenStartTag)

	return l.lexWithinTag
}

func (l *Lexer) lexWithinTag() stateFunc {
	l.takeWhitespace()

	r, eof := l.peek()
	if eof {
		return nil
	}

	switch {
	case l.hasPrefix(selfClose):
		l.pos += len(selfClose)
		l.emit(TokenStartTagSelfClose)
		return l.lexContent

	case r == '>':
		l.pos++
		l.emit(TokenStartTagClose)

		switch l.lastTag {
		case "script":
			return l.lexRawText(scriptClose, TokenScript)
		case "style":
			return l.lexRawText(styleClose, TokenStyles)
		}

		return l.lexContent

	case r == '<':
		// The tag was never closed, close it right here without consuming anything
		l.emit(TokenStartTagClose)
		return l.lexContent

	case isNameChar(r):
		l.takeWhile(isNameChar)
		l.emit(TokenAttributeName)
		return l.lexAfterAttributeName
	}

	l.pos++
	l.emit(TokenUnknown)
	return l.lexWithinTag
}

func (l *Lexer) lexAfterAttributeName() stateFunc {
	l.takeWhitespace()

	if r, eof := l.peek(); !eof && r == '=' {
		l.pos++
		l.emit(TokenDelimiterAssign)
		return l.lexAttributeValue
	}

	return l.lexWithinTag
}

func (l *Lexer) lexAttributeValue() stateFunc {
	l.takeWhitespace()

	r, eof := l.peek()
	if eof {
		return nil
	}

	if r == '"' || r == '\'' {
		l.pos++
		if l.takeUntil([]byte{r}) {
			l.pos++
		}

		l.emit(TokenAttributeValue)
		return l.lexWithinTag
	}

	for l.pos < len(l.file) {
		r := l.file[l.pos]
		if isWhitespace(r) || r == '>' || r == '<' || l.hasPrefix(selfClose) {
			break
		}

		l.pos++
	}

	l.emitIfNotEmpty(TokenAttributeValue)
	return l.lexWithinTag
}

func (l *Lexer) lexEndTagName() stateFunc {
	l.takeWhitespace()

	if l.takeWhile(isNameChar) {
		l.emit(TokenEndTag)
	}

	return l.lexWithinEndTag
}

func (l *Lexer) lexWithinEndTag() stateFunc {
	l.takeWhitespace()

	r, eof := l.peek()
	if eof {
		return nil
	}

	switch r {
	case '>':
		l.pos++
		l.emit(TokenEndTagClose)
		return l.lexContent

	case '<':
		return l.lexContent
	}

	l.takeWhile(func(r byte) bool {
		return r != '>' && r != '<'
	})
	l.emit(TokenUnknown)

	return l.lexWithinEndTag
}

// lexRawText takes everything up to the closing tag as a single token, the
// way browsers treat script and style bodies.
func (l *Lexer) lexRawText(closing []byte, typ TokenType) stateFunc {
	return func() stateFunc {
		idx := indexFold(l.file[l.pos:], closing)
		if idx < 0 {
			l.pos = len(l.file)
		} else {
			l.pos += idx
		}

		l.emitIfNotEmpty(typ)

		if idx < 0 {
			return nil
		}
		return l.lexContent
	}
}
