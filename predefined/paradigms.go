package predefined

import "github.com/az-ai-labs/turkmorph/suffixgraph"

// paradigm lists the inflected forms of a pronoun per number.
type paradigm []number

// number is an agreement with its literal ending and the case forms built
// on it.
type number struct {
	agreement string
	ending    string
	cases     []caseForm
}

// caseForm is a case ending attached to a root string of the pronoun.
type caseForm struct {
	root   string
	suffix string
	ending string
}

// declension returns the seven case forms of a pronoun whose nominative
// is nom and whose other cases attach to oblique, except the dative which
// attaches to dative. Endings are literal.
func declension(nom, oblique, dative string, endings ...string) []caseForm {
	return []caseForm{
		{nom, "Nom", ""},
		{oblique, "Acc", endings[0]},
		{dative, "Dat", endings[1]},
		{oblique, "Loc", endings[2]},
		{oblique, "Abl", endings[3]},
		{oblique, "Gen", endings[4]},
		{oblique, "Ins", endings[5]},
	}
}

var personal = map[string]paradigm{
	"ben":   {{"A1sg", "", declension("ben", "ben", "ban", "i", "a", "de", "den", "im", "imle")}},
	"sen":   {{"A2sg", "", declension("sen", "sen", "san", "i", "a", "de", "den", "in", "inle")}},
	"o":     {{"A3sg", "", declension("o", "on", "on", "u", "a", "da", "dan", "un", "unla")}},
	"biz":   {{"A1pl", "", declension("biz", "biz", "biz", "i", "e", "de", "den", "im", "imle")}},
	"siz":   {{"A2pl", "", declension("siz", "siz", "siz", "i", "e", "de", "den", "in", "inle")}},
	"onlar": {{"A3pl", "", declension("onlar", "onlar", "onlar", "ı", "a", "da", "dan", "ın", "la")}},
}

var demonstrative = map[string]paradigm{
	"bu": demonstrativeParadigm("bu", "bun"),
	"şu": demonstrativeParadigm("şu", "şun"),
	"o":  demonstrativeParadigm("o", "on"),
}

// demonstrativeParadigm builds the singular and plural forms of a
// demonstrative. The plural attaches -lar to the oblique stem: bunlar,
// onlara.
func demonstrativeParadigm(nom, oblique string) paradigm {
	return paradigm{
		{"A3sg", "", declension(nom, oblique, oblique, "u", "a", "da", "dan", "un", "unla")},
		{"A3pl", "lar", declension(oblique, oblique, oblique, "ı", "a", "da", "dan", "ın", "la")},
	}
}

// questionStems are the harmony variants of the question particle.
var questionStems = []string{"mı", "mi", "mu", "mü"}

// questionTense is a tense of the question particle with the agreements
// it takes. Forms are templates resolved against each stem.
type questionTense struct {
	suffix     string
	form       string
	agreements []agreementForm
}

type agreementForm struct {
	suffix string
	form   string
}

var questionTenses = []questionTense{
	{suffixgraph.Present, "", []agreementForm{
		{"A3sg", ""},
		{"A1sg", "+yIm"},
		{"A2sg", "sIn"},
		{"A1pl", "+yIz"},
		{"A2pl", "sInIz"},
	}},
	{suffixgraph.Past, "+ydI", []agreementForm{
		{"A3sg", ""},
		{"A1sg", "m"},
		{"A2sg", "n"},
		{"A1pl", "k"},
		{"A2pl", "nIz"},
	}},
	{suffixgraph.Narrative, "+ymIş", []agreementForm{
		{"A3sg", ""},
		{"A1sg", "+Im"},
		{"A2sg", "sIn"},
		{"A1pl", "+Iz"},
		{"A2pl", "sInIz"},
	}},
}
