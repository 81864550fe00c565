package phonetics

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/az-ai-labs/turkmorph/lexicon"
)

// progressive is the template of the progressive tense. Its leading I is
// dropped after a vowel; stems marked ProgressiveVowelDrop lose their
// final vowel instead.
const progressive = "Iyor"

// Expectations are forward constraints on the first letter of the next
// suffix that has a surface.
type Expectations uint8

const (
	VowelStart Expectations = 1 << iota
	ConsonantStart
)

// Has reports whether x is in the set.
func (e Expectations) Has(x Expectations) bool {
	return e&x != 0
}

func (e Expectations) String() string {
	switch {
	case e.Has(VowelStart) && e.Has(ConsonantStart):
		return "VowelStart,ConsonantStart"
	case e.Has(VowelStart):
		return "VowelStart"
	case e.Has(ConsonantStart):
		return "ConsonantStart"
	default:
		return ""
	}
}

// Apply resolves template against a stem with phonetic attributes attrs.
// It returns the stem as modified by the lexical attributes (voicing,
// doubling, vowel drop) and the resolved suffix form. An empty template
// returns the stem unchanged and an empty form.
func Apply(stem string, attrs Attributes, template string, lexAttrs lexicon.AttributeSet) (string, string) {
	if template == "" {
		return stem, ""
	}

	t := template
	noDevoice := false
	if strings.HasPrefix(t, "!") {
		noDevoice = true
		t = t[1:]
	}

	switch {
	case strings.HasPrefix(t, progressive) && attrs.Has(LastLetterVowel):
		if lexAttrs.Has(lexicon.ProgressiveVowelDrop) {
			stem = dropLastVowel(stem)
			attrs = Calculate(stem)
		} else {
			t = t[1:]
		}
	case strings.HasPrefix(t, "+"):
		t = resolveOptional(t[1:], attrs)
	}
	if t == "" {
		return stem, ""
	}

	first, size := utf8.DecodeRuneInString(t)
	if isTemplateVowel(first) {
		stem = modifyBeforeVowel(stem, lexAttrs)
	} else if !noDevoice && attrs.Has(LastLetterVoiceless) {
		if d := Devoice(first); d != first {
			t = string(d) + t[size:]
		}
	}
	return stem, harmonize(t, attrs)
}

// resolveOptional keeps or drops the optional leading letter of t.
func resolveOptional(t string, attrs Attributes) string {
	if t == "" {
		return t
	}
	first, size := utf8.DecodeRuneInString(t)
	switch {
	case isTemplateVowel(first) && attrs.Has(LastLetterVowel):
		return t[size:]
	case !isTemplateVowel(first) && attrs.Has(LastLetterConsonant):
		return t[size:]
	default:
		return t
	}
}

// modifyBeforeVowel applies the stem changes a vowel-initial suffix
// triggers for the given lexical attributes.
func modifyBeforeVowel(stem string, lexAttrs lexicon.AttributeSet) string {
	if lexAttrs == 0 {
		return stem
	}
	if lexAttrs.Has(lexicon.Voicing) && !lexAttrs.Has(lexicon.NoVoicing) {
		stem = VoiceStem(stem)
	}
	if lexAttrs.Has(lexicon.Doubling) {
		stem = doubleLast(stem)
	}
	if lexAttrs.Has(lexicon.LastVowelDrop) {
		stem = dropNarrowVowel(stem)
	}
	return stem
}

// doubleLast repeats the final consonant unless it is already doubled
// (hak -> hakk).
func doubleLast(stem string) string {
	runes := []rune(stem)
	n := len(runes)
	if n < 2 || !IsConsonant(runes[n-1]) || runes[n-1] == runes[n-2] {
		return stem
	}
	return stem + string(runes[n-1])
}

// dropNarrowVowel removes the vowel of a final consonant-vowel-consonant
// sequence (ağız -> ağz).
func dropNarrowVowel(stem string) string {
	runes := []rune(stem)
	n := len(runes)
	if n < 3 || !IsConsonant(runes[n-1]) || !IsVowel(runes[n-2]) || !IsConsonant(runes[n-3]) {
		return stem
	}
	return string(runes[:n-2]) + string(runes[n-1])
}

func dropLastVowel(stem string) string {
	r, size := utf8.DecodeLastRuneInString(stem)
	if !IsVowel(r) {
		return stem
	}
	return stem[:len(stem)-size]
}

// harmonize resolves the A and I placeholders of t. Each resolved or
// literal vowel becomes the reference for the placeholders after it.
func harmonize(t string, attrs Attributes) string {
	back := attrs.Has(LastVowelBack)
	rounded := attrs.Has(LastVowelRounded)

	var b strings.Builder
	b.Grow(len(t) + 4)
	for _, r := range t {
		switch r {
		case 'A':
			if back {
				r = 'a'
			} else {
				r = 'e'
			}
		case 'I':
			switch {
			case back && rounded:
				r = 'u'
			case back:
				r = '\u0131' // ı
			case rounded:
				r = '\u00FC' // ü
			default:
				r = 'i'
			}
		}
		if backVowels[r] || frontVowels[r] {
			back = backVowels[r]
			rounded = roundedVowels[r]
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ApplicationMatches reports whether word starts with applied, the stem so
// far followed by a resolved suffix form. When voicingAllowed is set the
// last letter of applied may appear voiced in word (kitapçık ->
// kitapçığı); callers pass false when the suffix leads to a verb root.
func ApplicationMatches(word, applied string, voicingAllowed bool) bool {
	if strings.HasPrefix(word, applied) {
		return true
	}
	if !voicingAllowed || applied == "" {
		return false
	}
	last, size := utf8.DecodeLastRuneInString(applied)
	voiced := Voice(last)
	if voiced == last {
		return false
	}
	return strings.HasPrefix(word, applied[:len(applied)-size]+string(voiced))
}

// ExpectationsSatisfied reports whether a suffix with the given template
// can satisfy the pending expectations. Empty templates always pass; the
// expectations then carry over to the next suffix. A template with an
// optional leading letter passes if either of its variants does.
func ExpectationsSatisfied(exps Expectations, template string) bool {
	if exps == 0 || template == "" {
		return true
	}
	t := strings.TrimPrefix(template, "!")
	if strings.HasPrefix(t, progressive) {
		// Iyor surfaces as "iyor" or, after a vowel, "yor".
		return startSatisfies(exps, t) || startSatisfies(exps, t[1:])
	}
	if rest, ok := strings.CutPrefix(t, "+"); ok {
		_, size := utf8.DecodeRuneInString(rest)
		return startSatisfies(exps, rest) || startSatisfies(exps, rest[size:])
	}
	return startSatisfies(exps, t)
}

// startSatisfies checks the first letter of a resolved variant. An empty
// variant leaves the expectations to the next suffix.
func startSatisfies(exps Expectations, t string) bool {
	if t == "" {
		return true
	}
	first, _ := utf8.DecodeRuneInString(t)
	switch {
	case isTemplateVowel(first):
		return !exps.Has(ConsonantStart)
	case unicode.IsLetter(first):
		return !exps.Has(VowelStart)
	default:
		return false
	}
}

// IsSuffixFormApplicable is a cheap pre-filter: a vowel-initial template
// cannot follow a vowel-final stem unless its leading vowel is optional.
func IsSuffixFormApplicable(stem, template string) bool {
	if template == "" || stem == "" {
		return true
	}
	t := strings.TrimPrefix(template, "!")
	if strings.HasPrefix(t, "+") || strings.HasPrefix(t, progressive) {
		return true
	}
	last, _ := utf8.DecodeLastRuneInString(stem)
	if !unicode.IsLetter(last) {
		return true
	}
	first, _ := utf8.DecodeRuneInString(t)
	return !(isTemplateVowel(first) && IsVowel(last))
}
