package suffixgraph

import (
	"github.com/az-ai-labs/turkmorph/lexicon"
	"github.com/az-ai-labs/turkmorph/morpheme"
)

// Suffix group names.
const (
	agreementGroup  = "Agreements"
	possessiveGroup = "Possessives"
	caseGroup       = "Cases"
	polarityGroup   = "Polarities"
	tenseGroup      = "Tenses"
)

type basic struct{}

// Basic returns the core layer: nouns, adjectives, adverbs, verbs,
// pronouns, the question particle and the closed classes.
func Basic() Layer { return basic{} }

func (basic) Name() string { return "basic" }

func (basic) Register(b *Builder) {
	g := &grammar{b: b}
	g.states()
	g.derivations()
	g.nominalInflection()
	g.verbalInflection()

	g.nouns()
	g.adjectives()
	g.adverbs()
	g.verbs()
	g.pronouns()
	g.closedClasses()
	g.routes()
}

// grammar holds the states and suffixes of the basic layer while they are
// wired together.
type grammar struct {
	b *Builder

	nounRoot, nounWithAgreement, nounWithPossession, nounWithCase   *morpheme.State
	nounNomDeriv, nounCaseDeriv, nounTerminalTransfer, nounTerminal *morpheme.State

	adjRoot, adjDeriv, adjTerminalTransfer, adjTerminal *morpheme.State
	advRoot, advTerminalTransfer, advTerminal           *morpheme.State

	verbRoot, verbPlainDeriv, verbWithPolarity, verbPolarityDeriv *morpheme.State
	verbWithTense, verbTenseDeriv, verbImperative                 *morpheme.State
	verbTerminalTransfer, verbTerminal                            *morpheme.State

	pronRoot, pronWithAgreement, pronWithPossession, pronWithCase *morpheme.State
	pronTerminalTransfer, pronTerminal                            *morpheme.State

	quesRoot, quesWithTense, quesWithAgreement, quesTerminal *morpheme.State

	det, conj, interj, postp, punc, dup *morpheme.State

	// derivations
	zero, dim, agt, ness, with, without, become, acquire, rel, ly *morpheme.Suffix
	caus, pass, able                                              *morpheme.Suffix
	inf1, inf2, inf3, pastPart, presPart, futPart                 *morpheme.Suffix
	afterDoingSo, byDoingSo, when, while                          *morpheme.Suffix

	// nominal inflection
	a3sg, a3pl                                  *morpheme.Suffix
	pnon, p1sg, p2sg, p3sg, p1pl, p2pl, p3pl    *morpheme.Suffix
	nom, nomDeriv, acc, dat, loc, abl, gen, ins *morpheme.Suffix
	equ                                         *morpheme.Suffix

	// verbal inflection
	pos, neg                                             *morpheme.Suffix
	prog1, prog2, past, narr, fut, aor, cond, neces, opt *morpheme.Suffix
	imp, pres                                            *morpheme.Suffix
	persons                                              persons
	impA2sg, impA3sg, impA2pl, impA3pl, cop              *morpheme.Suffix
	apos                                                 *morpheme.Suffix
}

func (g *grammar) states() {
	b := g.b
	g.nounRoot = b.State(NounRoot, morpheme.Transfer, lexicon.Noun)
	g.nounWithAgreement = b.State("NOUN_WITH_AGREEMENT", morpheme.Transfer, lexicon.Noun)
	g.nounWithPossession = b.State("NOUN_WITH_POSSESSION", morpheme.Transfer, lexicon.Noun)
	g.nounWithCase = b.State("NOUN_WITH_CASE", morpheme.Transfer, lexicon.Noun)
	g.nounNomDeriv = b.State("NOUN_NOM_DERIV", morpheme.Derivational, lexicon.Noun)
	g.nounCaseDeriv = b.State("NOUN_CASE_DERIV", morpheme.Derivational, lexicon.Noun)
	g.nounTerminalTransfer = b.State("NOUN_TERMINAL_TRANSFER", morpheme.Transfer, lexicon.Noun)
	g.nounTerminal = b.State("NOUN_TERMINAL", morpheme.Terminal, lexicon.Noun)

	g.adjRoot = b.State(AdjectiveRoot, morpheme.Transfer, lexicon.Adjective)
	g.adjDeriv = b.State("ADJECTIVE_DERIV", morpheme.Derivational, lexicon.Adjective)
	g.adjTerminalTransfer = b.State("ADJECTIVE_TERMINAL_TRANSFER", morpheme.Transfer, lexicon.Adjective)
	g.adjTerminal = b.State("ADJECTIVE_TERMINAL", morpheme.Terminal, lexicon.Adjective)

	g.advRoot = b.State(AdverbRoot, morpheme.Transfer, lexicon.Adverb)
	g.advTerminalTransfer = b.State("ADVERB_TERMINAL_TRANSFER", morpheme.Transfer, lexicon.Adverb)
	g.advTerminal = b.State("ADVERB_TERMINAL", morpheme.Terminal, lexicon.Adverb)

	g.verbRoot = b.State(VerbRoot, morpheme.Transfer, lexicon.Verb)
	g.verbPlainDeriv = b.State("VERB_PLAIN_DERIV", morpheme.Derivational, lexicon.Verb)
	g.verbWithPolarity = b.State(VerbWithPolarity, morpheme.Transfer, lexicon.Verb)
	g.verbPolarityDeriv = b.State("VERB_POLARITY_DERIV", morpheme.Derivational, lexicon.Verb)
	g.verbWithTense = b.State(VerbWithTense, morpheme.Transfer, lexicon.Verb)
	g.verbTenseDeriv = b.State("VERB_TENSE_DERIV", morpheme.Derivational, lexicon.Verb)
	g.verbImperative = b.State("VERB_IMPERATIVE", morpheme.Transfer, lexicon.Verb)
	g.verbTerminalTransfer = b.State("VERB_TERMINAL_TRANSFER", morpheme.Transfer, lexicon.Verb)
	g.verbTerminal = b.State("VERB_TERMINAL", morpheme.Terminal, lexicon.Verb)

	g.pronRoot = b.State(PronounRoot, morpheme.Transfer, lexicon.Pronoun)
	g.pronWithAgreement = b.State(PronounWithAgreement, morpheme.Transfer, lexicon.Pronoun)
	g.pronWithPossession = b.State(PronounWithPossession, morpheme.Transfer, lexicon.Pronoun)
	g.pronWithCase = b.State(PronounWithCase, morpheme.Transfer, lexicon.Pronoun)
	g.pronTerminalTransfer = b.State("PRONOUN_TERMINAL_TRANSFER", morpheme.Transfer, lexicon.Pronoun)
	g.pronTerminal = b.State("PRONOUN_TERMINAL", morpheme.Terminal, lexicon.Pronoun)

	g.quesRoot = b.State(QuestionRoot, morpheme.Transfer, lexicon.Question)
	g.quesWithTense = b.State(QuestionWithTense, morpheme.Transfer, lexicon.Question)
	g.quesWithAgreement = b.State(QuestionWithAgreement, morpheme.Transfer, lexicon.Question)
	g.quesTerminal = b.State("QUESTION_TERMINAL", morpheme.Terminal, lexicon.Question)

	g.det = b.State("DETERMINER_ROOT_TERMINAL", morpheme.Terminal, lexicon.Determiner)
	g.conj = b.State("CONJUNCTION_ROOT_TERMINAL", morpheme.Terminal, lexicon.Conjunction)
	g.interj = b.State("INTERJECTION_ROOT_TERMINAL", morpheme.Terminal, lexicon.Interjection)
	g.postp = b.State("POSTPOSITION_ROOT_TERMINAL", morpheme.Terminal, lexicon.Postposition)
	g.punc = b.State("PUNC_ROOT_TERMINAL", morpheme.Terminal, lexicon.Punctuation)
	g.dup = b.State("DUP_ROOT_TERMINAL", morpheme.Terminal, lexicon.Duplicator)
}

func (g *grammar) derivations() {
	b := g.b
	g.zero = b.Suffix(Zero, nil, "Zero").AddForm("")
	g.zero.AllowRepetition = true

	g.dim = b.Suffix("Dim", nil, "Dim").AddForm("cIk")
	g.agt = b.Suffix("Agt", nil, "Agt").AddForm("cI")
	g.ness = b.Suffix("Ness", nil, "Ness").AddForm("lIk")
	g.with = b.Suffix("With", nil, "With").AddForm("lI")
	g.without = b.Suffix("Without", nil, "Without").AddForm("sIz")
	g.become = b.Suffix("Become", nil, "Become").AddForm("lAş")
	g.acquire = b.Suffix("Acquire", nil, "Acquire").AddForm("lAn")
	g.rel = b.Suffix("Rel", nil, "Rel").AddForm("ki")
	g.ly = b.Suffix("Ly", nil, "Ly").AddForm("cA")

	g.caus = b.Suffix("Caus", nil, "Caus").
		AddForm("t", morpheme.Pre(morpheme.LastLetterIsVowel())).
		AddForm("dIr", morpheme.Pre(morpheme.LastLetterIsConsonant()))
	g.caus.AllowRepetition = true

	g.pass = b.Suffix("Pass", nil, "Pass").
		AddForm("n", morpheme.Pre(morpheme.LastLetterIsVowel())).
		AddForm("In", morpheme.Pre(morpheme.LastLetterIs("l"))).
		AddForm("Il", morpheme.Pre(morpheme.And(
			morpheme.LastLetterIsConsonant(),
			morpheme.Not(morpheme.LastLetterIs("l")))))

	// Able takes its short form only before negation: yapamaz, okuyamıyor.
	g.able = b.Suffix("Able", nil, "Able").AddForm("+yAbil")

	g.inf1 = b.Suffix("Inf1", nil, "Inf1").AddForm("mAk")
	g.inf2 = b.Suffix("Inf2", nil, "Inf2").AddForm("mA")
	g.inf3 = b.Suffix("Inf3", nil, "Inf3").AddForm("+yIş")
	g.pastPart = b.Suffix("PastPart", nil, "PastPart").AddForm("dIk")
	g.presPart = b.Suffix("PresPart", nil, "PresPart").AddForm("+yAn")
	g.futPart = b.Suffix("FutPart", nil, "FutPart").AddForm("+yAcAk")
	g.afterDoingSo = b.Suffix("AfterDoingSo", nil, "AfterDoingSo").AddForm("+yIp")
	g.byDoingSo = b.Suffix("ByDoingSo", nil, "ByDoingSo").AddForm("+yArAk")
	g.when = b.Suffix("When", nil, "When").AddForm("+yIncA")
	g.while = b.Suffix("While", nil, "While").AddForm("ken")

	g.apos = b.Suffix(Apostrophe, nil, "Apos").AddForm("'")
}

func (g *grammar) nominalInflection() {
	b := g.b
	agreements := b.Group(agreementGroup)
	possessives := b.Group(possessiveGroup)
	cases := b.Group(caseGroup)

	// Plural and possessed nouns do not take diminutive or
	// category-changing derivations directly.
	underived := morpheme.PostDerivation(morpheme.Not(morpheme.FollowedBy(
		g.dim, g.agt, g.ness, g.with, g.without, g.become, g.acquire)))

	g.a3sg = b.Suffix("A3sg", agreements, "A3sg").AddForm("")
	g.a3pl = b.Suffix("A3pl", agreements, "A3pl").AddForm("lAr", underived)

	g.pnon = b.Suffix("Pnon", possessives, "Pnon").AddForm("")
	g.p1sg = b.Suffix("P1sg", possessives, "P1sg").AddForm("+Im", underived)
	g.p2sg = b.Suffix("P2sg", possessives, "P2sg").AddForm("+In", underived)
	g.p3sg = b.Suffix("P3sg", possessives, "P3sg").AddForm("+sI", underived)
	g.p1pl = b.Suffix("P1pl", possessives, "P1pl").AddForm("+ImIz", underived)
	g.p2pl = b.Suffix("P2pl", possessives, "P2pl").AddForm("+InIz", underived)
	g.p3pl = b.Suffix("P3pl", possessives, "P3pl").
		AddForm("lArI", morpheme.Pre(morpheme.Not(morpheme.ComesAfter(g.a3pl))), underived).
		AddForm("+I", morpheme.Pre(morpheme.ComesAfter(g.a3pl)), underived)

	// Third person possessives insert n before case endings.
	afterP3 := morpheme.ComesAfter(g.p3sg, g.p3pl)
	plain := morpheme.Pre(morpheme.Not(afterP3))
	pronominal := morpheme.Pre(afterP3)

	g.nom = b.Suffix("Nom", cases, "Nom").AddForm("")
	g.nomDeriv = b.Suffix("Nom_Deriv", cases, "Nom").AddForm("")
	g.acc = b.Suffix("Acc", cases, "Acc").AddForm("+yI", plain).AddForm("nI", pronominal)
	g.dat = b.Suffix("Dat", cases, "Dat").AddForm("+yA", plain).AddForm("nA", pronominal)
	g.loc = b.Suffix("Loc", cases, "Loc").AddForm("dA", plain).AddForm("ndA", pronominal)
	g.abl = b.Suffix("Abl", cases, "Abl").AddForm("dAn", plain).AddForm("ndAn", pronominal)
	g.gen = b.Suffix("Gen", cases, "Gen").AddForm("+nIn")
	g.ins = b.Suffix("Ins", cases, "Ins").AddForm("+ylA")
	g.equ = b.Suffix("Equ", cases, "Equ").AddForm("cA", plain).AddForm("ncA", pronominal)
}

func (g *grammar) verbalInflection() {
	b := g.b
	polarities := b.Group(polarityGroup)
	tenses := b.Group(tenseGroup)
	agreements := b.Group(agreementGroup)

	g.prog1 = b.Suffix(Progressive, tenses, "Prog1").AddForm("Iyor")
	g.pos = b.Suffix(Positive, polarities, "Pos").AddForm("")
	g.neg = b.Suffix("Neg", polarities, "Neg").
		AddForm("mA").
		AddForm("m", morpheme.Post(morpheme.FollowedBy(g.prog1)))

	g.prog2 = b.Suffix("Prog2", tenses, "Prog2").AddForm("mAktA")
	g.past = b.Suffix(Past, tenses, "Past").AddForm("dI")
	g.narr = b.Suffix(Narrative, tenses, "Narr").AddForm("mIş")
	g.fut = b.Suffix("Fut", tenses, "Fut").AddForm("+yAcAk")
	g.cond = b.Suffix("Cond", tenses, "Cond").AddForm("sA")
	g.neces = b.Suffix("Neces", tenses, "Neces").AddForm("mAlI")
	g.opt = b.Suffix("Opt", tenses, "Opt").AddForm("+yA")
	g.imp = b.Suffix("Imp", tenses, "Imp").AddForm("")
	g.pres = b.Suffix(Present, tenses, "Pres").AddForm("")

	g.persons = personSuffixes(b, "", g.a3sg, g.a3pl, []*morpheme.Suffix{g.past, g.cond}, g.opt)

	afterNeg := morpheme.ComesAfter(g.neg)
	g.aor = b.Suffix("Aor", tenses, "Aor").
		AddForm("+Ar", morpheme.Pre(morpheme.And(
			morpheme.HasLexemeAttribute(lexicon.AoristA), morpheme.Not(afterNeg)))).
		AddForm("+Ir", morpheme.Pre(morpheme.And(
			morpheme.Not(morpheme.HasLexemeAttribute(lexicon.AoristA)), morpheme.Not(afterNeg)))).
		AddForm("z", morpheme.Pre(afterNeg),
			morpheme.Post(morpheme.Not(morpheme.FollowedBy(g.persons.a1sg, g.persons.a1pl))))

	g.able.AddForm("+yA", morpheme.Post(morpheme.FollowedBy(g.neg)))

	g.impA2sg = b.Suffix("Imp_A2sg", agreements, "A2sg").AddForm("")
	g.impA3sg = b.Suffix("Imp_A3sg", agreements, "A3sg").AddForm("sIn")
	g.impA2pl = b.Suffix("Imp_A2pl", agreements, "A2pl").AddForm("+yIn").AddForm("+yInIz")
	g.impA3pl = b.Suffix("Imp_A3pl", agreements, "A3pl").AddForm("sInlAr")

	g.cop = b.Suffix("Cop", nil, "Cop").
		AddForm("dIr", morpheme.Pre(morpheme.Not(morpheme.ComesAfter(g.past, g.cond, g.opt, g.imp))))
}

func (g *grammar) nouns() {
	b := g.b
	b.Edge(g.nounRoot, g.a3sg, g.nounWithAgreement)
	b.Edge(g.nounRoot, g.a3pl, g.nounWithAgreement)

	for _, s := range []*morpheme.Suffix{g.pnon, g.p1sg, g.p2sg, g.p3sg, g.p1pl, g.p2pl, g.p3pl} {
		b.Edge(g.nounWithAgreement, s, g.nounWithPossession)
	}
	for _, s := range []*morpheme.Suffix{g.nom, g.acc, g.dat, g.loc, g.abl, g.gen, g.ins, g.equ} {
		b.Edge(g.nounWithPossession, s, g.nounWithCase)
	}
	b.Edge(g.nounWithPossession, g.nomDeriv, g.nounNomDeriv)

	b.Free("Noun_Free_Transition_1", g.nounWithCase, g.nounTerminalTransfer)
	b.Free("Noun_Free_Transition_2", g.nounTerminalTransfer, g.nounTerminal)
	b.Free("Noun_Case_Deriv_Transition", g.nounWithCase, g.nounCaseDeriv,
		morpheme.Pre(morpheme.ComesAfter(g.loc, g.gen)))

	b.Edge(g.nounNomDeriv, g.dim, g.nounRoot)
	b.Edge(g.nounNomDeriv, g.agt, g.nounRoot)
	b.Edge(g.nounNomDeriv, g.ness, g.nounRoot)
	b.Edge(g.nounNomDeriv, g.with, g.adjRoot)
	b.Edge(g.nounNomDeriv, g.without, g.adjRoot)
	b.Edge(g.nounNomDeriv, g.become, g.verbRoot)
	b.Edge(g.nounNomDeriv, g.acquire, g.verbRoot)

	b.Edge(g.nounCaseDeriv, g.rel, g.adjRoot)
}

func (g *grammar) adjectives() {
	b := g.b
	b.Free("Adj_Free_Transition_1", g.adjRoot, g.adjTerminalTransfer)
	b.Free("Adj_Free_Transition_2", g.adjTerminalTransfer, g.adjTerminal)
	b.Free("Adj_Deriv_Transition", g.adjRoot, g.adjDeriv)

	b.Edge(g.adjDeriv, g.zero, g.nounRoot)
	b.Edge(g.adjDeriv, g.ly, g.advRoot)
	b.Edge(g.adjDeriv, g.ness, g.nounRoot)
	b.Edge(g.adjDeriv, g.become, g.verbRoot)
}

func (g *grammar) adverbs() {
	b := g.b
	b.Free("Adv_Free_Transition_1", g.advRoot, g.advTerminalTransfer)
	b.Free("Adv_Free_Transition_2", g.advTerminalTransfer, g.advTerminal)
}

func (g *grammar) verbs() {
	b := g.b
	b.Edge(g.verbRoot, g.pos, g.verbWithPolarity)
	b.Edge(g.verbRoot, g.neg, g.verbWithPolarity)
	b.Free("Verb_Plain_Deriv_Transition", g.verbRoot, g.verbPlainDeriv)

	b.Edge(g.verbPlainDeriv, g.caus, g.verbRoot)
	b.Edge(g.verbPlainDeriv, g.pass, g.verbRoot)
	b.Edge(g.verbPlainDeriv, g.able, g.verbRoot)

	for _, s := range []*morpheme.Suffix{g.prog1, g.prog2, g.past, g.narr, g.fut, g.aor, g.cond, g.neces, g.opt} {
		b.Edge(g.verbWithPolarity, s, g.verbWithTense)
	}
	b.Edge(g.verbWithPolarity, g.imp, g.verbImperative)
	b.Free("Verb_Polarity_Deriv_Transition", g.verbWithPolarity, g.verbPolarityDeriv)

	b.Edge(g.verbPolarityDeriv, g.inf1, g.nounRoot)
	b.Edge(g.verbPolarityDeriv, g.inf2, g.nounRoot)
	b.Edge(g.verbPolarityDeriv, g.inf3, g.nounRoot)
	b.Edge(g.verbPolarityDeriv, g.pastPart, g.nounRoot)
	b.Edge(g.verbPolarityDeriv, g.presPart, g.adjRoot)
	b.Edge(g.verbPolarityDeriv, g.futPart, g.adjRoot)
	b.Edge(g.verbPolarityDeriv, g.afterDoingSo, g.advRoot)
	b.Edge(g.verbPolarityDeriv, g.byDoingSo, g.advRoot)
	b.Edge(g.verbPolarityDeriv, g.when, g.advRoot)

	for _, s := range g.persons.all() {
		b.Edge(g.verbWithTense, s, g.verbTerminalTransfer)
	}
	b.Free("Verb_Tense_Deriv_Transition", g.verbWithTense, g.verbTenseDeriv,
		morpheme.Pre(morpheme.ComesAfter(g.aor, g.prog1, g.narr, g.fut)))
	b.Edge(g.verbTenseDeriv, g.while, g.advRoot)

	for _, s := range []*morpheme.Suffix{g.impA2sg, g.impA3sg, g.impA2pl, g.impA3pl} {
		b.Edge(g.verbImperative, s, g.verbTerminalTransfer)
	}

	b.Edge(g.verbTerminalTransfer, g.cop, g.verbTerminal)
	b.Free("Verb_Free_Transition", g.verbTerminalTransfer, g.verbTerminal)
}

func (g *grammar) pronouns() {
	b := g.b
	b.Edge(g.pronRoot, g.a3sg, g.pronWithAgreement)
	b.Edge(g.pronRoot, g.a3pl, g.pronWithAgreement)
	for _, s := range []*morpheme.Suffix{g.pnon, g.p1sg, g.p2sg, g.p3sg, g.p1pl, g.p2pl, g.p3pl} {
		b.Edge(g.pronWithAgreement, s, g.pronWithPossession)
	}
	for _, s := range []*morpheme.Suffix{g.nom, g.acc, g.dat, g.loc, g.abl, g.gen, g.ins} {
		b.Edge(g.pronWithPossession, s, g.pronWithCase)
	}
	b.Free("Pron_Free_Transition_1", g.pronWithCase, g.pronTerminalTransfer)
	b.Free("Pron_Free_Transition_2", g.pronTerminalTransfer, g.pronTerminal)
}

func (g *grammar) closedClasses() {
	b := g.b
	b.Edge(g.quesRoot, g.pres, g.quesWithTense)
	b.Edge(g.quesWithTense, g.a3sg, g.quesWithAgreement)
	b.Free("Ques_Free_Transition", g.quesWithAgreement, g.quesTerminal)
}

func (g *grammar) routes() {
	byCategory := map[lexicon.Category]*morpheme.State{
		lexicon.Noun:         g.nounRoot,
		lexicon.Adjective:    g.adjRoot,
		lexicon.Numeral:      g.adjRoot,
		lexicon.Adverb:       g.advRoot,
		lexicon.Verb:         g.verbRoot,
		lexicon.Pronoun:      g.pronRoot,
		lexicon.Question:     g.quesRoot,
		lexicon.Determiner:   g.det,
		lexicon.Conjunction:  g.conj,
		lexicon.Interjection: g.interj,
		lexicon.Postposition: g.postp,
		lexicon.Punctuation:  g.punc,
		lexicon.Duplicator:   g.dup,
	}
	g.b.Route(func(r *morpheme.Root) *morpheme.State {
		return byCategory[r.Lexeme.Category]
	})
}

// persons is a set of person agreement suffixes.
type persons struct {
	a1sg, a2sg, a3sg, a1pl, a2pl, a3pl *morpheme.Suffix
}

func (p persons) all() []*morpheme.Suffix {
	return []*morpheme.Suffix{p.a1sg, p.a2sg, p.a3sg, p.a1pl, p.a2pl, p.a3pl}
}

// personSuffixes registers first and second person agreements named with
// prefix. They take their short forms (-m, -n, -k, -nIz) after the
// suffixes in short, and A1pl takes -lIm after opt when opt is not nil.
func personSuffixes(b *Builder, prefix string, a3sg, a3pl *morpheme.Suffix, short []*morpheme.Suffix, opt *morpheme.Suffix) persons {
	agreements := b.Group(agreementGroup)
	afterShort := morpheme.ComesAfter(short...)
	long := morpheme.Not(afterShort)

	p := persons{a3sg: a3sg, a3pl: a3pl}
	p.a1sg = b.Suffix(prefix+"A1sg", agreements, "A1sg").
		AddForm("+Im", morpheme.Pre(afterShort)).
		AddForm("+yIm", morpheme.Pre(long))
	p.a2sg = b.Suffix(prefix+"A2sg", agreements, "A2sg").
		AddForm("n", morpheme.Pre(afterShort)).
		AddForm("sIn", morpheme.Pre(long))
	p.a1pl = b.Suffix(prefix+"A1pl", agreements, "A1pl").
		AddForm("k", morpheme.Pre(afterShort))
	if opt != nil {
		p.a1pl.
			AddForm("lIm", morpheme.Pre(morpheme.ComesAfter(opt))).
			AddForm("+yIz", morpheme.Pre(morpheme.And(long, morpheme.Not(morpheme.ComesAfter(opt)))))
	} else {
		p.a1pl.AddForm("+yIz", morpheme.Pre(long))
	}
	p.a2pl = b.Suffix(prefix+"A2pl", agreements, "A2pl").
		AddForm("nIz", morpheme.Pre(afterShort)).
		AddForm("sInIz", morpheme.Pre(long))
	return p
}
