package morpheme

import (
	"github.com/az-ai-labs/turkmorph/lexicon"
	"github.com/az-ai-labs/turkmorph/phonetics"
)

// Root is a candidate lexical anchor: the surface string a suffix chain
// starts from, which may differ from the lexeme's root ("kitab" for
// "kitap").
type Root struct {
	Str    string
	Lexeme *lexicon.Lexeme
	// Attributes are the lexical attributes of this realisation.
	Attributes lexicon.AttributeSet
	// PhoneticAttributes drive harmony for the first suffix. They are
	// usually computed from Str but differ for inverse harmony, digits and
	// abbreviations.
	PhoneticAttributes phonetics.Attributes
	// Expectations constrain the first suffix with a surface, e.g. a
	// voiced root "kitab" needs a vowel next.
	Expectations phonetics.Expectations
}

// NewRoot returns a root whose phonetic attributes are computed from str.
func NewRoot(str string, lex *lexicon.Lexeme, attrs lexicon.AttributeSet) *Root {
	return &Root{
		Str:                str,
		Lexeme:             lex,
		Attributes:         attrs,
		PhoneticAttributes: phonetics.Calculate(str),
	}
}

func (r *Root) String() string {
	return r.Str + "(" + r.Lexeme.Lemma + ")"
}
