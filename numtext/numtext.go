// Package numtext converts numbers to Turkish text.
//
//   - Convert turns an integer into cardinal Turkish text.
//   - ConvertDigits reads a number written with Turkish separators
//     ("1.250", "-3,14") the way it is spoken.
//
// The analyzer uses the spoken form to decide vowel harmony and voicing
// for suffixes attached to digits: "3'te" (üç-te), "40'a" (kırk-a).
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations:
//
//   - Integer range is limited to ±10^18 (kentilyon).
//   - Fractional digits are read as one number after "virgül"; leading
//     zeros are read one by one ("3,05" -> "üç virgül sıfır beş").
package numtext

// Convert returns the Turkish cardinal text for n.
// Zero returns "sıfır". Negative numbers are prefixed with "eksi".
// Numbers with absolute value exceeding 10^18 return an empty string.
func Convert(n int64) string {
	return convert(n)
}

// ConvertDigits converts a digit string to Turkish text. The input may
// carry a leading sign, "." thousands separators between groups of three
// digits and a "," fractional separator.
//
// Returns an empty string for invalid input (empty, non-numeric, misplaced
// separators, out of range).
func ConvertDigits(s string) string {
	return convertDigits(s)
}
