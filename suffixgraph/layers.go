package suffixgraph

import (
	"sort"
	"strings"

	"github.com/az-ai-labs/turkmorph/lexicon"
	"github.com/az-ai-labs/turkmorph/morpheme"
)

var registry = map[string]func() Layer{
	"basic":        Basic,
	"proper_nouns": ProperNouns,
	"numerals":     Numerals,
	"copula":       Copula,
}

// LayerByName returns the layer registered under name.
func LayerByName(name string) (Layer, bool) {
	f, ok := registry[name]
	if !ok {
		return nil, false
	}
	return f(), true
}

// LayerNames returns the known layer names, sorted.
func LayerNames() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultLayers returns every layer in dependency order.
func DefaultLayers() []Layer {
	return []Layer{Basic(), ProperNouns(), Numerals(), Copula()}
}

type properNouns struct{}

// ProperNouns routes proper nouns and abbreviations to their own root
// state. With an apostrophe they continue as regular nouns (Ali'ye);
// without one they only take the nominative (Ali).
func ProperNouns() Layer { return properNouns{} }

func (properNouns) Name() string { return "proper_nouns" }

func (properNouns) Register(b *Builder) {
	root := b.State(ProperNounRoot, morpheme.Transfer, lexicon.Noun)
	withAgreement := b.State("PROPER_NOUN_WITH_AGREEMENT", morpheme.Transfer, lexicon.Noun)
	withPossession := b.State("PROPER_NOUN_WITH_POSSESSION", morpheme.Transfer, lexicon.Noun)

	b.Edge(root, b.FindSuffix(Apostrophe), b.Lookup(NounRoot))
	b.Edge(root, b.FindSuffix("A3sg"), withAgreement)
	b.Edge(withAgreement, b.FindSuffix("Pnon"), withPossession)
	b.Edge(withPossession, b.FindSuffix("Nom"), b.Lookup("NOUN_WITH_CASE"))

	b.Route(func(r *morpheme.Root) *morpheme.State {
		if r.Lexeme.Category != lexicon.Noun {
			return nil
		}
		switch r.Lexeme.Secondary {
		case lexicon.Proper, lexicon.Abbreviation:
			return root
		}
		return nil
	})
}

type numerals struct{}

// Numerals adds cardinal and digit numeral roots. Both can be used as
// adjectives and take ordinal and distributive derivations; digits need an
// apostrophe before any suffix (3'te, 5'inci).
func Numerals() Layer { return numerals{} }

func (numerals) Name() string { return "numerals" }

func (numerals) Register(b *Builder) {
	ord := b.Suffix("Ord", nil, "Ord").AddForm("+IncI")
	dist := b.Suffix("Dist", nil, "Dist").AddForm("+şAr")
	zero := b.FindSuffix(Zero)
	adj := b.Lookup(AdjectiveRoot)

	card := numeralStates(b, NumeralCardinalRoot, "NUMERAL_CARDINAL")
	b.Free("Num_Card_Deriv_Transition", card.root, card.deriv)

	digits := numeralStates(b, NumeralDigitsRoot, "NUMERAL_DIGITS")
	b.Edge(digits.root, b.FindSuffix(Apostrophe), digits.deriv)

	for _, deriv := range []*morpheme.State{card.deriv, digits.deriv} {
		b.Edge(deriv, zero, adj)
		b.Edge(deriv, ord, adj)
		b.Edge(deriv, dist, adj)
	}

	b.Route(func(r *morpheme.Root) *morpheme.State {
		if r.Lexeme.Category != lexicon.Numeral {
			return nil
		}
		if r.Lexeme.Secondary == lexicon.Digits {
			return digits.root
		}
		return card.root
	})
}

type numeralChain struct {
	root, deriv *morpheme.State
}

func numeralStates(b *Builder, rootName, prefix string) numeralChain {
	c := numeralChain{
		root:  b.State(rootName, morpheme.Transfer, lexicon.Numeral),
		deriv: b.State(prefix+"_DERIV", morpheme.Derivational, lexicon.Numeral),
	}
	transfer := b.State(prefix+"_TERMINAL_TRANSFER", morpheme.Transfer, lexicon.Numeral)
	terminal := b.State(prefix+"_TERMINAL", morpheme.Terminal, lexicon.Numeral)
	b.Free(prefix+"_Free_Transition_1", c.root, transfer)
	b.Free(prefix+"_Free_Transition_2", transfer, terminal)
	return c
}

type copula struct{}

// Copula lets nominals act as predicates: kitaptır, evdeyim, güzeldi.
// Every nominal terminal-transfer state registered so far gets a zero
// derivation into a copular verb chain.
func Copula() Layer { return copula{} }

func (copula) Name() string { return "copula" }

// copulaSources are the states that may take the copula when present.
var copulaSources = []string{
	"NOUN_TERMINAL_TRANSFER",
	"ADJECTIVE_TERMINAL_TRANSFER",
	"ADVERB_TERMINAL_TRANSFER",
	"PRONOUN_TERMINAL_TRANSFER",
	"NUMERAL_CARDINAL_TERMINAL_TRANSFER",
	"NUMERAL_DIGITS_TERMINAL_TRANSFER",
}

func (copula) Register(b *Builder) {
	tenses := b.Group(tenseGroup)
	agreements := b.Group(agreementGroup)

	withoutTense := b.State(VerbCopulaWithoutTense, morpheme.Transfer, lexicon.Verb)
	withTense := b.State("VERB_COPULA_WITH_TENSE", morpheme.Transfer, lexicon.Verb)
	withAgreement := b.State("VERB_COPULA_WITH_AGREEMENT", morpheme.Transfer, lexicon.Verb)
	terminal := b.State("VERB_COPULA_TERMINAL", morpheme.Terminal, lexicon.Verb)

	zero := b.FindSuffix(Zero)
	for _, name := range copulaSources {
		if !b.Has(name) {
			continue
		}
		src := b.Lookup(name)
		deriv := b.State(strings.TrimSuffix(name, "_TERMINAL_TRANSFER")+"_COPULA_DERIV", morpheme.Derivational, src.Category)
		b.Free("Copula_Transition_"+name, src, deriv)
		b.Edge(deriv, zero, withoutTense)
	}

	past := b.Suffix("Cop_Past", tenses, "Past").AddForm("+ydI")
	narr := b.Suffix("Cop_Narr", tenses, "Narr").AddForm("+ymIş")
	cond := b.Suffix("Cop_Cond", tenses, "Cond").AddForm("+ysA")
	for _, s := range []*morpheme.Suffix{b.FindSuffix(Present), past, narr, cond} {
		b.Edge(withoutTense, s, withTense)
	}

	a3sg := b.Suffix("Cop_A3sg", agreements, "A3sg").AddForm("")
	a3pl := b.Suffix("Cop_A3pl", agreements, "A3pl").AddForm("lAr")
	p := personSuffixes(b, "Cop_", a3sg, a3pl, []*morpheme.Suffix{past, cond}, nil)
	for _, s := range p.all() {
		b.Edge(withTense, s, withAgreement)
	}

	cop := b.Suffix("Cop_Cop", nil, "Cop").
		AddForm("dIr", morpheme.Pre(morpheme.Not(morpheme.ComesAfter(past, cond))))
	b.Edge(withAgreement, cop, terminal)
	b.Free("Copula_Free_Transition", withAgreement, terminal)
}
