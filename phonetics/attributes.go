// Package phonetics implements the Turkish phonology used when attaching
// suffixes: vowel harmony, consonant voicing and devoicing, optional
// letters, vowel drop and doubling.
//
// Suffix templates use a small notation:
//
//   - A resolves to a or e (two-way harmony).
//   - I resolves to ı, i, u or ü (four-way harmony).
//   - +X marks the leading letter X as optional. A leading optional vowel
//     is dropped after a vowel; a leading optional consonant is dropped
//     after a consonant ("+yA": kapı-ya, ev-e).
//   - ! before the leading consonant disables suffix-initial devoicing.
//
// All functions are pure and safe for concurrent use.
package phonetics

import (
	"strings"
	"unicode"

	"github.com/az-ai-labs/turkmorph/internal/trcase"
)

// Attribute is one phonetic property of a surface string.
type Attribute uint16

const (
	LastLetterVowel Attribute = 1 << iota
	LastLetterConsonant
	LastVowelFrontal
	LastVowelBack
	LastVowelRounded
	LastVowelUnrounded
	LastLetterVoiceless
	LastLetterNotVoiceless
	LastLetterVoicelessStop
)

var attributeNames = []struct {
	attr Attribute
	name string
}{
	{LastLetterVowel, "LLV"},
	{LastLetterConsonant, "LLC"},
	{LastVowelFrontal, "LVF"},
	{LastVowelBack, "LVB"},
	{LastVowelRounded, "LVR"},
	{LastVowelUnrounded, "LVU"},
	{LastLetterVoiceless, "LLVless"},
	{LastLetterNotVoiceless, "LLNotVless"},
	{LastLetterVoicelessStop, "LLVlessStop"},
}

// Attributes is a set of phonetic attributes.
type Attributes uint16

// Has reports whether a is in the set.
func (s Attributes) Has(a Attribute) bool {
	return s&Attributes(a) != 0
}

// With returns a copy of s including a.
func (s Attributes) With(a Attribute) Attributes {
	return s | Attributes(a)
}

// Without returns a copy of s excluding a.
func (s Attributes) Without(a Attribute) Attributes {
	return s &^ Attributes(a)
}

// String returns the abbreviated attribute names joined by commas,
// e.g. "LLC,LVB,LVU,LLVless,LLVlessStop".
func (s Attributes) String() string {
	var names []string
	for _, an := range attributeNames {
		if s.Has(an.attr) {
			names = append(names, an.name)
		}
	}
	return strings.Join(names, ",")
}

// InvertHarmony returns s with its back/front vowel class flipped to
// front. Used for roots marked InverseHarmony ("saat" -> "saatler").
func (s Attributes) InvertHarmony() Attributes {
	if !s.Has(LastVowelBack) {
		return s
	}
	return s.Without(LastVowelBack).With(LastVowelFrontal)
}

// Calculate returns the phonetic attributes of s. Non-letter runes are
// ignored. A string without vowels is treated as front and unrounded.
// Returns 0 when s contains no letter at all.
func Calculate(s string) Attributes {
	var lastLetter, lastVowel rune
	for _, r := range s {
		if !unicode.IsLetter(r) {
			continue
		}
		r = trcase.Lower(r)
		lastLetter = r
		if backVowels[r] || frontVowels[r] {
			lastVowel = r
		}
	}
	if lastLetter == 0 {
		return 0
	}

	var attrs Attributes
	if lastLetter == lastVowel {
		attrs = attrs.With(LastLetterVowel)
	} else {
		attrs = attrs.With(LastLetterConsonant)
	}

	switch {
	case lastVowel == 0:
		attrs = attrs.With(LastVowelFrontal).With(LastVowelUnrounded)
	default:
		if backVowels[lastVowel] {
			attrs = attrs.With(LastVowelBack)
		} else {
			attrs = attrs.With(LastVowelFrontal)
		}
		if roundedVowels[lastVowel] {
			attrs = attrs.With(LastVowelRounded)
		} else {
			attrs = attrs.With(LastVowelUnrounded)
		}
	}

	if voicelessCons[lastLetter] {
		attrs = attrs.With(LastLetterVoiceless)
		if voicelessStops[lastLetter] {
			attrs = attrs.With(LastLetterVoicelessStop)
		}
	} else {
		attrs = attrs.With(LastLetterNotVoiceless)
	}
	return attrs
}

// CalculateAbbreviation returns the attributes of an abbreviation as it
// is read aloud. A consonant-final abbreviation is spelled letter by
// letter and ends in a name like "be" or "ce", so it harmonises as if "e"
// were appended ("TBMM'ye", "THY'ye").
func CalculateAbbreviation(s string) Attributes {
	lower := trcase.ToLower(s)
	var last rune
	for _, r := range lower {
		if unicode.IsLetter(r) {
			last = r
		}
	}
	if last != 0 && !IsVowel(last) {
		return Calculate(lower + "e")
	}
	return Calculate(lower)
}
