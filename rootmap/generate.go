package rootmap

import (
	"unicode/utf8"

	"github.com/az-ai-labs/turkmorph/lexicon"
	"github.com/az-ai-labs/turkmorph/morpheme"
	"github.com/az-ai-labs/turkmorph/phonetics"
)

// pronounStems lists the irregular stems of pronouns ("ben" -> "bana").
var pronounStems = map[string]string{
	"ben": "ban",
	"sen": "san",
	"o":   "on",
	"bu":  "bun",
	"şu":  "şun",
}

// questionStems lists the harmony variants of the question particle.
var questionStems = []string{"mı", "mi", "mu", "mü"}

// Generate returns the roots of lex. A lexeme without stem changes yields
// a single root equal to lex.Root.
func Generate(lex *lexicon.Lexeme) []*morpheme.Root {
	attrs := lex.Attributes
	if lex.Category == lexicon.Verb {
		attrs = inferAorist(lex.Root, attrs)
	}

	var roots []*morpheme.Root
	switch {
	case lex.Category == lexicon.Question && lex.Root == "mi":
		for _, s := range questionStems {
			roots = append(roots, morpheme.NewRoot(s, lex, attrs))
		}
	case lex.Category == lexicon.Pronoun && pronounStems[lex.Root] != "":
		roots = append(roots,
			morpheme.NewRoot(lex.Root, lex, attrs),
			morpheme.NewRoot(pronounStems[lex.Root], lex, attrs))
	case lex.Category == lexicon.Verb && attrs.Has(lexicon.ProgressiveVowelDrop):
		roots = append(roots, morpheme.NewRoot(lex.Root, lex, attrs))
		if dropped := dropFinalVowel(lex.Root); dropped != lex.Root {
			roots = append(roots, morpheme.NewRoot(dropped, lex, attrs))
		}
	default:
		roots = stemVariants(lex, attrs)
	}

	if attrs.Has(lexicon.InverseHarmony) {
		for _, r := range roots {
			r.PhoneticAttributes = r.PhoneticAttributes.InvertHarmony()
		}
	}
	return roots
}

// stemVariants handles voicing, doubling and last vowel drop. Each yields
// the plain root, used before consonants, and a modified root, used
// before vowels.
func stemVariants(lex *lexicon.Lexeme, attrs lexicon.AttributeSet) []*morpheme.Root {
	modified := lex.Root
	if attrs.Has(lexicon.Voicing) && !attrs.Has(lexicon.NoVoicing) {
		modified = phonetics.VoiceStem(modified)
	}
	if attrs.Has(lexicon.Doubling) {
		modified += lastRune(modified)
	}
	if attrs.Has(lexicon.LastVowelDrop) {
		modified = dropNarrowVowel(modified)
	}

	plain := morpheme.NewRoot(lex.Root, lex, attrs)
	if modified == lex.Root {
		return []*morpheme.Root{plain}
	}
	plain.Expectations = phonetics.ConsonantStart
	changed := morpheme.NewRoot(modified, lex, attrs)
	changed.Expectations = phonetics.VowelStart
	return []*morpheme.Root{plain, changed}
}

// inferAorist marks verbs without an explicit aorist class: single-syllable
// verbs take -Ar, longer ones -Ir.
func inferAorist(root string, attrs lexicon.AttributeSet) lexicon.AttributeSet {
	if attrs.Has(lexicon.AoristA) || attrs.Has(lexicon.AoristI) {
		return attrs
	}
	if vowelCount(root) == 1 {
		return attrs.With(lexicon.AoristA)
	}
	return attrs.With(lexicon.AoristI)
}

func vowelCount(s string) int {
	n := 0
	for _, r := range s {
		if phonetics.IsVowel(r) {
			n++
		}
	}
	return n
}

func lastRune(s string) string {
	r, _ := utf8.DecodeLastRuneInString(s)
	if r == utf8.RuneError {
		return ""
	}
	return string(r)
}

func dropFinalVowel(s string) string {
	r, size := utf8.DecodeLastRuneInString(s)
	if !phonetics.IsVowel(r) || utf8.RuneCountInString(s) < 2 {
		return s
	}
	return s[:len(s)-size]
}

// dropNarrowVowel removes the vowel of a final consonant-vowel-consonant
// sequence (ağız -> ağz, şehir -> şehr).
func dropNarrowVowel(s string) string {
	runes := []rune(s)
	n := len(runes)
	if n < 3 || !phonetics.IsConsonant(runes[n-1]) || !phonetics.IsVowel(runes[n-2]) || !phonetics.IsConsonant(runes[n-3]) {
		return s
	}
	return string(runes[:n-2]) + string(runes[n-1])
}
