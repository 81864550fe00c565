package tokenizer

import (
	"unicode"
	"unicode/utf8"
)

// scan splits a non-empty s rune by rune.
func scan(s string) []Token {
	tokens := make([]Token, 0, len(s)/4+1)

	i := 0
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		start := i

		var typ TokenType
		switch {
		case unicode.IsSpace(r):
			typ = Space
			i = skipWhile(s, i, unicode.IsSpace)
		case r < utf8.RuneSelf && isDigitByte(byte(r)):
			typ = Number
			i = scanApostropheSuffix(s, scanNumber(s, i))
		case unicode.IsLetter(r):
			typ = Word
			i = scanApostropheSuffix(s, skipWhile(s, i, isWordRune))
		case unicode.IsPunct(r):
			typ = Punctuation
			i += size
		default:
			typ = Symbol
			i += size
		}
		tokens = append(tokens, Token{Text: s[start:i], Start: start, End: i, Type: typ})
	}
	return tokens
}

// isWordRune accepts the runes a word continues with. Digits are kept so
// identifiers like "A4" stay whole.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.Is(unicode.Mn, r)
}

func skipWhile(s string, pos int, ok func(rune) bool) int {
	for pos < len(s) {
		r, size := utf8.DecodeRuneInString(s[pos:])
		if !ok(r) {
			break
		}
		pos += size
	}
	return pos
}

// isApostrophe reports U+0027, U+2019 and U+02BC.
func isApostrophe(r rune) bool {
	return r == '\'' || r == '’' || r == 'ʼ'
}

// scanApostropheSuffix extends a token ending at pos over an apostrophe
// followed by letters. A typographic apostrophe is kept as written.
func scanApostropheSuffix(s string, pos int) int {
	if pos >= len(s) {
		return pos
	}
	r, size := utf8.DecodeRuneInString(s[pos:])
	if !isApostrophe(r) || pos+size >= len(s) {
		return pos
	}
	if nr, _ := utf8.DecodeRuneInString(s[pos+size:]); !unicode.IsLetter(nr) {
		return pos
	}
	return skipWhile(s, pos+size, unicode.IsLetter)
}

// scanNumber reads digits with thousand-separator dots (groups of exactly
// three) and an optional decimal comma.
func scanNumber(s string, pos int) int {
	i := pos
	for i < len(s) && isDigitByte(s[i]) {
		i++
	}

	for i+4 <= len(s) && s[i] == '.' &&
		isDigitByte(s[i+1]) && isDigitByte(s[i+2]) && isDigitByte(s[i+3]) &&
		(i+4 == len(s) || !isDigitByte(s[i+4])) {
		i += 4
	}

	if i+1 < len(s) && s[i] == ',' && isDigitByte(s[i+1]) {
		i++
		for i < len(s) && isDigitByte(s[i]) {
			i++
		}
	}
	return i
}

func isDigitByte(b byte) bool {
	return b >= '0' && b <= '9'
}
