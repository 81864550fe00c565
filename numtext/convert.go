// Unexported conversion functions for Turkish number-to-text conversion.
package numtext

import (
	"strconv"
	"strings"
)

const (
	growConvert = 64  // estimated bytes for a full cardinal conversion
	growDigits  = 128 // estimated bytes for a digit-string conversion
	groupDigits = 3   // digits between thousands separators
)

// convert converts an int64 to Turkish cardinal text.
// Returns "" if abs(n) exceeds maxAbs.
func convert(n int64) string {
	if n > maxAbs || n < -maxAbs {
		return ""
	}
	if n == 0 {
		return wordZero
	}

	negative := n < 0
	if negative {
		n = -n
	}

	var b strings.Builder
	b.Grow(growConvert)

	if negative {
		b.WriteString(wordNegative)
	}

	for _, mag := range magnitudes {
		count := n / mag.value
		if count > 0 {
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			// "bir bin" -> "bin"; "bir milyon" keeps "bir"
			if mag.word == wordThousand && count == 1 {
				b.WriteString(mag.word)
			} else {
				writeGroup(&b, count)
				b.WriteByte(' ')
				b.WriteString(mag.word)
			}
			n %= mag.value
		}
	}

	if n > 0 {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		writeGroup(&b, n)
	}

	return b.String()
}

// writeGroup writes a number in [1, 999] as Turkish text into b.
func writeGroup(b *strings.Builder, n int64) {
	h := n / hundred
	if h == 1 {
		b.WriteString(wordHundred)
	} else if h > 1 {
		b.WriteString(ones[h])
		b.WriteByte(' ')
		b.WriteString(wordHundred)
	}

	r := n % hundred
	t := r / 10
	o := r % 10

	if t > 0 {
		if h > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(tens[t])
	}

	if o > 0 {
		if h > 0 || t > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(ones[o])
	}
}

// convertDigits converts a Turkish-formatted digit string to text.
func convertDigits(s string) string {
	if s == "" {
		return ""
	}

	negative := false
	switch s[0] {
	case '-':
		negative = true
		s = s[1:]
	case '+':
		s = s[1:]
	}

	wholePart, fracPart, hasFrac := strings.Cut(s, ",")
	if hasFrac && !allDigits(fracPart) {
		return ""
	}

	whole, ok := stripGroupSeparators(wholePart)
	if !ok {
		return ""
	}
	wholeVal, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return ""
	}
	if negative {
		wholeVal = -wholeVal
	}

	wholeText := convert(wholeVal)
	if wholeText == "" {
		return ""
	}
	if !hasFrac {
		return wholeText
	}

	var b strings.Builder
	b.Grow(growDigits)
	if negative && wholeVal == 0 {
		b.WriteString(wordNegative)
		b.WriteByte(' ')
	}
	b.WriteString(wholeText)
	b.WriteByte(' ')
	b.WriteString(wordComma)

	// Leading zeros are read one by one.
	rest := strings.TrimLeft(fracPart, "0")
	for range len(fracPart) - len(rest) {
		b.WriteByte(' ')
		b.WriteString(wordZero)
	}
	if rest != "" {
		fracVal, err := strconv.ParseInt(rest, 10, 64)
		if err != nil {
			return ""
		}
		fracText := convert(fracVal)
		if fracText == "" {
			return ""
		}
		b.WriteByte(' ')
		b.WriteString(fracText)
	}
	return b.String()
}

// stripGroupSeparators removes "." thousands separators from s after
// checking that they split s into a leading group of 1-3 digits followed
// by groups of exactly three. A string without separators only has to be
// all digits.
func stripGroupSeparators(s string) (string, bool) {
	if !strings.Contains(s, ".") {
		return s, allDigits(s)
	}
	groups := strings.Split(s, ".")
	if len(groups[0]) > groupDigits || !allDigits(groups[0]) {
		return "", false
	}
	for _, g := range groups[1:] {
		if len(g) != groupDigits || !allDigits(g) {
			return "", false
		}
	}
	return strings.Join(groups, ""), true
}

// allDigits reports whether s consists entirely of ASCII digit characters.
// An empty string returns false.
func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
