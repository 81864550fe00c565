// Package tokenizer splits Turkish text into tokens with byte offsets so
// the words can be handed to the parser one at a time.
//
// The invariant s[t.Start:t.End] == t.Text holds for every token, and
// concatenating all token texts reconstructs the original string.
//
// Apostrophes that separate a proper noun or a number from its suffixes
// stay inside the token (Ali'ye, 3'te, 1.000'den), since the parser reads
// them as part of the word. Hyphens always split.
package tokenizer

import "fmt"

// TokenType classifies a token.
type TokenType int

const (
	Word        TokenType = iota // Letters, with an optional apostrophe suffix
	Number                       // Digits, with thousand-separator dots, a decimal comma or an apostrophe suffix
	Punctuation                  // . , ! ? : ; ( ) " - etc.
	Space                        // Contiguous whitespace
	Symbol                       // Anything else
)

func (t TokenType) String() string {
	switch t {
	case Word:
		return "Word"
	case Number:
		return "Number"
	case Punctuation:
		return "Punctuation"
	case Space:
		return "Space"
	case Symbol:
		return "Symbol"
	default:
		return fmt.Sprintf("TokenType(%d)", int(t))
	}
}

// Token is a piece of text with its position and classification.
type Token struct {
	Text  string
	Start int // inclusive byte offset
	End   int // exclusive byte offset
	Type  TokenType
}

// String returns a debug representation, e.g. Word("kitap")[0:5].
func (t Token) String() string {
	return fmt.Sprintf("%s(%q)[%d:%d]", t.Type, t.Text, t.Start, t.End)
}

// Tokens splits s into tokens of every type.
func Tokens(s string) []Token {
	if s == "" {
		return nil
	}
	return scan(s)
}

// Words returns the texts of the Word and Number tokens of s, the tokens
// the parser can analyze.
func Words(s string) []string {
	if s == "" {
		return nil
	}
	tokens := scan(s)
	words := make([]string, 0, len(tokens)/2)
	for _, t := range tokens {
		if t.Type == Word || t.Type == Number {
			words = append(words, t.Text)
		}
	}
	return words
}
