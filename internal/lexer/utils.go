package lexer

import "bytes"

func isASCIILetter(r byte) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
}

func isWhitespace(r byte) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\f'
}

// isNameChar reports whether r can be part of a tag or attribute name.
func isNameChar(r byte) bool {
	switch r {
	case '>', '<', '/', '=', '"', '\'', '`':
		return false
	}

	return !isWhitespace(r)
}

// indexFold returns the index of the first case-insensitive occurrence
// of substr in s, or -1.
func indexFold(s, substr []byte) int {
	n := len(substr)

	for i := 0; i+n <= len(s); i++ {
		if bytes.EqualFold(s[i:i+n], substr) {
			return i
		}
	}

	return -1
}
