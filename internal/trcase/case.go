// Package trcase provides Turkish case conversion.
//
// Turkish uses dotted/dotless I variants:
//   - I (U+0049) lowercases to ı (U+0131, dotless small i)
//   - İ (U+0130, dotted capital I) lowercases to i (U+0069)
//   - i (U+0069) uppercases to İ (U+0130, dotted capital I)
//   - ı (U+0131, dotless small i) uppercases to I (U+0049)
//
// All other runes use standard Unicode case mapping.
//
// All functions are safe for concurrent use.
package trcase

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Lower returns the Turkish-aware lowercase form of r.
func Lower(r rune) rune {
	switch r {
	case 'I':
		return 'ı' // I -> ı
	case 'İ':
		return 'i' // İ -> i
	default:
		return unicode.ToLower(r)
	}
}

// Upper returns the Turkish-aware uppercase form of r.
func Upper(r rune) rune {
	switch r {
	case 'i':
		return 'İ' // i -> İ
	case 'ı':
		return 'I' // ı -> I
	default:
		return unicode.ToUpper(r)
	}
}

// ToLower returns s with Turkish-aware lowercasing applied to every rune.
func ToLower(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		b.WriteRune(Lower(r))
	}
	return b.String()
}

// LowerFirst lowercases only the first rune of s.
func LowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(Lower(r)) + s[size:]
}

// IsUpperFirst reports whether s starts with an uppercase letter.
func IsUpperFirst(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsUpper(r)
}

// IsAllUpper reports whether every letter of s is uppercase and s has at
// least one letter.
func IsAllUpper(s string) bool {
	letters := 0
	for _, r := range s {
		if !unicode.IsLetter(r) {
			continue
		}
		letters++
		if !unicode.IsUpper(r) {
			return false
		}
	}
	return letters > 0
}
