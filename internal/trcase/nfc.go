package trcase

import "strings"

// nfcReplacer composes known Turkish NFD pairs in a single pass.
var nfcReplacer = strings.NewReplacer(
	// Lowercase
	"o\u0308", "\u00f6", // o + diaeresis  -> ö
	"u\u0308", "\u00fc", // u + diaeresis  -> ü
	"c\u0327", "\u00e7", // c + cedilla    -> ç
	"s\u0327", "\u015f", // s + cedilla    -> ş
	"g\u0306", "\u011f", // g + breve      -> ğ
	"a\u0302", "\u00e2", // a + circumflex -> â
	"i\u0302", "\u00ee", // i + circumflex -> î
	"u\u0302", "\u00fb", // u + circumflex -> û
	// Uppercase
	"O\u0308", "\u00d6", // O + diaeresis  -> Ö
	"U\u0308", "\u00dc", // U + diaeresis  -> Ü
	"C\u0327", "\u00c7", // C + cedilla    -> Ç
	"S\u0327", "\u015e", // S + cedilla    -> Ş
	"G\u0306", "\u011e", // G + breve      -> Ğ
	"I\u0307", "\u0130", // I + dot above  -> İ
	"A\u0302", "\u00c2", // A + circumflex -> Â
)

// ComposeNFC replaces known NFD decomposed sequences for the Turkish
// letters with diacritics: ö, ü, ç, ş, ğ, İ and the circumflexed â, î, û.
// This is NOT full Unicode NFC.
func ComposeNFC(s string) string {
	hasCombiner := false
	for _, r := range s {
		if r == 0x0302 || r == 0x0306 || r == 0x0307 || r == 0x0308 || r == 0x0327 {
			hasCombiner = true
			break
		}
	}
	if !hasCombiner {
		return s
	}

	return nfcReplacer.Replace(s)
}
