package phonetics

import (
	"unicode"

	"github.com/az-ai-labs/turkmorph/internal/trcase"
)

// backVowels contains Turkish back vowels (lowercase, circumflexed
// variants included).
var backVowels = map[rune]bool{
	'a':      true,
	'\u0131': true, // ı
	'o':      true,
	'u':      true,
	'\u00E2': true, // â
	'\u00FB': true, // û
}

// frontVowels contains Turkish front vowels (lowercase).
var frontVowels = map[rune]bool{
	'e':      true,
	'i':      true,
	'\u00F6': true, // ö
	'\u00FC': true, // ü
	'\u00EE': true, // î
}

// roundedVowels contains the rounded vowels (lowercase).
var roundedVowels = map[rune]bool{
	'o':      true,
	'u':      true,
	'\u00F6': true, // ö
	'\u00FC': true, // ü
	'\u00FB': true, // û
}

// voicelessCons contains the voiceless consonants (f, s, t, k, ç, ş, h, p).
var voicelessCons = map[rune]bool{
	'f':      true,
	's':      true,
	't':      true,
	'k':      true,
	'\u00E7': true, // ç
	'\u015F': true, // ş
	'h':      true,
	'p':      true,
}

// voicelessStops is the subset of voicelessCons that voice before a vowel.
var voicelessStops = map[rune]bool{
	'p':      true,
	'\u00E7': true, // ç
	't':      true,
	'k':      true,
}

var voicing = map[rune]rune{
	'p':      'b',
	'\u00E7': 'c',      // ç -> c
	't':      'd',
	'k':      '\u011F', // k -> ğ
	'g':      '\u011F', // g -> ğ
}

var devoicing = map[rune]rune{
	'd': 't',
	'c': '\u00E7', // c -> ç
	'g': 'k',
	'b': 'p',
}

// IsVowel reports whether r is a Turkish vowel. Case-insensitive.
func IsVowel(r rune) bool {
	r = trcase.Lower(r)
	return backVowels[r] || frontVowels[r]
}

// IsConsonant reports whether r is a letter that is not a vowel.
func IsConsonant(r rune) bool {
	return unicode.IsLetter(r) && !IsVowel(r)
}

// IsVoiceless reports whether r is a voiceless consonant. Case-insensitive.
func IsVoiceless(r rune) bool {
	return voicelessCons[trcase.Lower(r)]
}

// Voice returns the voiced counterpart of r (p->b, ç->c, t->d, k->ğ, g->ğ),
// or r itself when it has none. Expects lowercase input.
func Voice(r rune) rune {
	if v, ok := voicing[r]; ok {
		return v
	}
	return r
}

// Devoice returns the voiceless counterpart of r (d->t, c->ç, g->k, b->p),
// or r itself when it has none. Expects lowercase input.
func Devoice(r rune) rune {
	if v, ok := devoicing[r]; ok {
		return v
	}
	return r
}

// VoiceStem voices the final voiceless stop of stem. A final "nk" becomes
// "ng" rather than "nğ" (renk -> reng). Stems not ending in p, ç, t or k are
// returned unchanged.
func VoiceStem(stem string) string {
	runes := []rune(stem)
	n := len(runes)
	if n == 0 || !voicelessStops[runes[n-1]] {
		return stem
	}
	if runes[n-1] == 'k' && n > 1 && runes[n-2] == 'n' {
		runes[n-1] = 'g'
	} else {
		runes[n-1] = Voice(runes[n-1])
	}
	return string(runes)
}

// isTemplateVowel reports whether a template rune stands for a vowel:
// a harmony placeholder (A, I) or a literal vowel.
func isTemplateVowel(r rune) bool {
	return r == 'A' || r == 'I' || IsVowel(r)
}
