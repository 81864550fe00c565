package suffixgraph

// State names other packages refer to.
const (
	NounRoot         = "NOUN_ROOT"
	AdjectiveRoot    = "ADJECTIVE_ROOT"
	AdverbRoot       = "ADVERB_ROOT"
	VerbRoot         = "VERB_ROOT"
	VerbWithPolarity = "VERB_WITH_POLARITY"
	VerbWithTense    = "VERB_WITH_TENSE"

	PronounRoot            = "PRONOUN_ROOT"
	PronounWithAgreement   = "PRONOUN_WITH_AGREEMENT"
	PronounWithPossession  = "PRONOUN_WITH_POSSESSION"
	PronounWithCase        = "PRONOUN_WITH_CASE"
	QuestionRoot           = "QUESTION_ROOT"
	QuestionWithTense      = "QUESTION_WITH_TENSE"
	QuestionWithAgreement  = "QUESTION_WITH_AGREEMENT"
	ProperNounRoot         = "PROPER_NOUN_ROOT"
	NumeralCardinalRoot    = "NUMERAL_CARDINAL_ROOT"
	NumeralDigitsRoot      = "NUMERAL_DIGITS_ROOT"
	VerbCopulaWithoutTense = "VERB_COPULA_WITHOUT_TENSE"
)

// Suffix names other packages refer to.
const (
	Positive    = "Pos"
	Progressive = "Prog1"
	Present     = "Pres"
	Past        = "Past"
	Narrative   = "Narr"
	Apostrophe  = "Apos"
	Zero        = "Zero"
)
