// Package rootfinder proposes candidate roots for a prefix of the word
// being parsed. The parser asks every finder about every prefix and
// concatenates the answers in finder order.
//
// Finders backed by the root map return shared roots. Finders that
// recognize numbers and proper nouns synthesize a root, and a lexeme, on
// the fly; those are owned by the parse that asked for them.
package rootfinder

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/az-ai-labs/turkmorph/internal/trcase"
	"github.com/az-ai-labs/turkmorph/lexicon"
	"github.com/az-ai-labs/turkmorph/morpheme"
	"github.com/az-ai-labs/turkmorph/numtext"
	"github.com/az-ai-labs/turkmorph/phonetics"
	"github.com/az-ai-labs/turkmorph/rootmap"
)

// Finder returns the roots whose string is partial, given the whole word.
type Finder interface {
	FindRoots(partial, whole string) []*morpheme.Root
}

// Word finds dictionary roots except numerals.
type Word struct {
	m *rootmap.Map
}

// NewWord returns a dictionary root finder.
func NewWord(m *rootmap.Map) *Word {
	return &Word{m: m}
}

// FindRoots implements Finder.
func (f *Word) FindRoots(partial, _ string) []*morpheme.Root {
	return filter(f.m.Lookup(partial), func(r *morpheme.Root) bool {
		return r.Lexeme.Category != lexicon.Numeral
	})
}

// TextNumeral finds numerals written as words (üç, kırk).
type TextNumeral struct {
	m *rootmap.Map
}

// NewTextNumeral returns a text numeral finder.
func NewTextNumeral(m *rootmap.Map) *TextNumeral {
	return &TextNumeral{m: m}
}

// FindRoots implements Finder.
func (f *TextNumeral) FindRoots(partial, _ string) []*morpheme.Root {
	return filter(f.m.Lookup(partial), func(r *morpheme.Root) bool {
		return r.Lexeme.Category == lexicon.Numeral
	})
}

func filter(roots []*morpheme.Root, keep func(*morpheme.Root) bool) []*morpheme.Root {
	var out []*morpheme.Root
	for _, r := range roots {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

// digitsRe matches a number with optional sign, "." thousands separators
// and "," decimal part.
var digitsRe = regexp.MustCompile(`^[-+]?[0-9]+(\.[0-9]{3})*(,[0-9]+)?$`)

// DigitNumeral recognizes numbers written with digits (3, 1.250, 3,14).
// Harmony follows the spoken form: 3 reads üç, so 3'te.
type DigitNumeral struct{}

// FindRoots implements Finder.
func (DigitNumeral) FindRoots(partial, whole string) []*morpheme.Root {
	if !digitsRe.MatchString(partial) {
		return nil
	}
	// Only the longest number is a root: "12" is not "1" followed by "2".
	if next, _ := utf8.DecodeRuneInString(whole[len(partial):]); unicode.IsDigit(next) {
		return nil
	}
	spoken := numtext.ConvertDigits(partial)
	if spoken == "" {
		return nil
	}

	lex := &lexicon.Lexeme{
		Lemma:     partial,
		Root:      partial,
		Category:  lexicon.Numeral,
		Secondary: lexicon.Digits,
	}
	root := morpheme.NewRoot(partial, lex, 0)
	root.PhoneticAttributes = phonetics.Calculate(spoken)
	return []*morpheme.Root{root}
}

// ProperNounFromApostrophe recognizes the capitalized part before an
// apostrophe as a proper noun (Ali'ye) or, when fully capitalized, an
// abbreviation (TBMM'de, A'da).
type ProperNounFromApostrophe struct{}

// FindRoots implements Finder.
func (ProperNounFromApostrophe) FindRoots(partial, whole string) []*morpheme.Root {
	if !strings.HasPrefix(whole[len(partial):], "'") || !isCapitalized(partial) {
		return nil
	}
	if trcase.IsAllUpper(partial) {
		return []*morpheme.Root{abbreviation(partial)}
	}
	return []*morpheme.Root{properNoun(partial)}
}

// ProperNounWithoutApostrophe recognizes a whole capitalized word as a
// proper noun when it carries no apostrophe (Ankara, TBMM).
type ProperNounWithoutApostrophe struct{}

// FindRoots implements Finder.
func (ProperNounWithoutApostrophe) FindRoots(partial, whole string) []*morpheme.Root {
	if strings.Contains(whole, "'") || utf8.RuneCountInString(partial) < 2 || !isCapitalized(partial) {
		return nil
	}
	if trcase.IsAllUpper(partial) {
		if partial != whole {
			return nil
		}
		return []*morpheme.Root{abbreviation(partial)}
	}
	return []*morpheme.Root{properNoun(partial)}
}

// isCapitalized reports whether s is all letters and starts with an
// uppercase one.
func isCapitalized(s string) bool {
	if s == "" || !trcase.IsUpperFirst(s) {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

func properNoun(s string) *morpheme.Root {
	lex := &lexicon.Lexeme{Lemma: s, Root: s, Category: lexicon.Noun, Secondary: lexicon.Proper}
	return morpheme.NewRoot(s, lex, 0)
}

func abbreviation(s string) *morpheme.Root {
	lex := &lexicon.Lexeme{Lemma: s, Root: s, Category: lexicon.Noun, Secondary: lexicon.Abbreviation}
	root := morpheme.NewRoot(s, lex, 0)
	root.PhoneticAttributes = phonetics.CalculateAbbreviation(s)
	return root
}
