// Package lexicon defines the dictionary-side vocabulary of the analyzer:
// syntactic categories, lexical attributes and lexemes.
//
// Lexemes are produced by an external loader and are immutable once
// built. The parser only borrows references to them. Sample returns a
// small built-in lexicon that is enough to exercise every grammar layer.
package lexicon

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Category is the primary syntactic category of a lexeme or graph state.
type Category int

const (
	CategoryNone Category = iota
	Noun
	Adjective
	Adverb
	Verb
	Pronoun
	Determiner
	Conjunction
	Interjection
	Postposition
	Question
	Numeral
	Punctuation
	Duplicator
)

var categoryNames = map[Category]string{
	CategoryNone: "",
	Noun:         "Noun",
	Adjective:    "Adj",
	Adverb:       "Adv",
	Verb:         "Verb",
	Pronoun:      "Pron",
	Determiner:   "Det",
	Conjunction:  "Conj",
	Interjection: "Interj",
	Postposition: "Postp",
	Question:     "Ques",
	Numeral:      "Num",
	Punctuation:  "Punc",
	Duplicator:   "Dup",
}

// String returns the short display name, e.g. "Noun", "Adj".
func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// MarshalJSON encodes the category as its display name.
func (c Category) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// SecondaryCategory refines a Category, e.g. Noun+Prop or Num+Digits.
type SecondaryCategory int

const (
	SecondaryNone SecondaryCategory = iota
	Proper
	Abbreviation
	Personal
	Demonstrative
	Reflexive
	Quantitative
	QuestionPron
	Time
	Digits
	Card
	Ord
	Dist
)

var secondaryNames = map[SecondaryCategory]string{
	SecondaryNone: "",
	Proper:        "Prop",
	Abbreviation:  "Abbr",
	Personal:      "Pers",
	Demonstrative: "Demons",
	Reflexive:     "Reflex",
	Quantitative:  "Quant",
	QuestionPron:  "Ques",
	Time:          "Time",
	Digits:        "Digits",
	Card:          "Card",
	Ord:           "Ord",
	Dist:          "Dist",
}

// String returns the short display name, e.g. "Prop".
func (s SecondaryCategory) String() string {
	if name, ok := secondaryNames[s]; ok {
		return name
	}
	return fmt.Sprintf("SecondaryCategory(%d)", int(s))
}

// MarshalJSON encodes the secondary category as its display name.
func (s SecondaryCategory) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// Attribute is a lexical property that changes how a root behaves
// under suffixation.
type Attribute int

const (
	Voicing Attribute = iota + 1
	NoVoicing
	Doubling
	LastVowelDrop
	ProgressiveVowelDrop
	InverseHarmony
	AoristA
	AoristI
	CausativeT
	CausativeIr
	CausativeAr
	PassiveIn
	PassiveInIl
)

var attributeNames = map[Attribute]string{
	Voicing:              "Voicing",
	NoVoicing:            "NoVoicing",
	Doubling:             "Doubling",
	LastVowelDrop:        "LastVowelDrop",
	ProgressiveVowelDrop: "ProgressiveVowelDrop",
	InverseHarmony:       "InverseHarmony",
	AoristA:              "Aorist_A",
	AoristI:              "Aorist_I",
	CausativeT:           "Causative_t",
	CausativeIr:          "Causative_Ir",
	CausativeAr:          "Causative_Ar",
	PassiveIn:            "Passive_In",
	PassiveInIl:          "Passive_InIl",
}

// String returns the attribute name as used in lexicon files.
func (a Attribute) String() string {
	if name, ok := attributeNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Attribute(%d)", int(a))
}

// AttributeSet is an immutable-by-convention bit set of attributes.
type AttributeSet uint32

// NewAttributeSet returns a set holding attrs.
func NewAttributeSet(attrs ...Attribute) AttributeSet {
	var s AttributeSet
	for _, a := range attrs {
		s = s.With(a)
	}
	return s
}

// Has reports whether a is in the set.
func (s AttributeSet) Has(a Attribute) bool {
	return s&(1<<uint(a)) != 0
}

// With returns a copy of s including a.
func (s AttributeSet) With(a Attribute) AttributeSet {
	return s | 1<<uint(a)
}

// Without returns a copy of s excluding a.
func (s AttributeSet) Without(a Attribute) AttributeSet {
	return s &^ (1 << uint(a))
}

// Slice returns the attributes in ascending order.
func (s AttributeSet) Slice() []Attribute {
	var out []Attribute
	for a := range attributeNames {
		if s.Has(a) {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// String returns the attribute names joined by commas.
func (s AttributeSet) String() string {
	attrs := s.Slice()
	names := make([]string, len(attrs))
	for i, a := range attrs {
		names[i] = a.String()
	}
	return strings.Join(names, ",")
}

// Lexeme is a dictionary entry.
//
// Lemma is the citation form ("kitap", "gelmek"); Root is the form that
// suffixes attach to ("kitap", "gel").
type Lexeme struct {
	Lemma      string
	Root       string
	Category   Category
	Secondary  SecondaryCategory
	Attributes AttributeSet
}

// String returns a debug representation, e.g. kitap[Noun;Voicing].
func (l *Lexeme) String() string {
	var sb strings.Builder
	sb.WriteString(l.Lemma)
	sb.WriteByte('[')
	sb.WriteString(l.Category.String())
	if l.Secondary != SecondaryNone {
		sb.WriteByte(',')
		sb.WriteString(l.Secondary.String())
	}
	if l.Attributes != 0 {
		sb.WriteByte(';')
		sb.WriteString(l.Attributes.String())
	}
	sb.WriteByte(']')
	return sb.String()
}

// New returns a lexeme whose root equals its lemma.
func New(lemma string, cat Category, sec SecondaryCategory, attrs ...Attribute) *Lexeme {
	return &Lexeme{
		Lemma:      lemma,
		Root:       lemma,
		Category:   cat,
		Secondary:  sec,
		Attributes: NewAttributeSet(attrs...),
	}
}

// NewVerb returns a verb lexeme from its infinitive ("gelmek" -> root "gel").
// A lemma without the -mak/-mek ending is used as the root unchanged.
func NewVerb(infinitive string, attrs ...Attribute) *Lexeme {
	root := infinitive
	if strings.HasSuffix(root, "mak") || strings.HasSuffix(root, "mek") {
		root = root[:len(root)-len("mak")]
	}
	return &Lexeme{
		Lemma:      infinitive,
		Root:       root,
		Category:   Verb,
		Attributes: NewAttributeSet(attrs...),
	}
}
