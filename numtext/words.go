// Word tables for Turkish number-to-text conversion.
package numtext

const (
	maxAbs  int64 = 1_000_000_000_000_000_000
	hundred int64 = 100

	wordNegative = "eksi"
	wordHundred  = "yüz"
	wordThousand = "bin"
	wordComma    = "virgül"
	wordZero     = "sıfır"
)

var ones = [10]string{
	"sıfır",
	"bir",
	"iki",
	"üç",
	"dört",
	"beş",
	"altı",
	"yedi",
	"sekiz",
	"dokuz",
}

// tens is indexed by tens digit (1–9); index 0 is unused.
var tens = [10]string{
	"",
	"on",
	"yirmi",
	"otuz",
	"kırk",
	"elli",
	"altmış",
	"yetmiş",
	"seksen",
	"doksan",
}

type magnitude struct {
	value int64
	word  string
}

// magnitudes lists named powers of ten from largest to smallest.
// yüz (100) is handled separately within group conversion and is not listed here.
var magnitudes = []magnitude{
	{value: 1_000_000_000_000_000_000, word: "kentilyon"},
	{value: 1_000_000_000_000_000, word: "katrilyon"},
	{value: 1_000_000_000_000, word: "trilyon"},
	{value: 1_000_000_000, word: "milyar"},
	{value: 1_000_000, word: "milyon"},
	{value: 1_000, word: wordThousand},
}
