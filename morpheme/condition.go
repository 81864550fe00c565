package morpheme

import (
	"strings"
	"unicode/utf8"

	"github.com/az-ai-labs/turkmorph/lexicon"
	"github.com/az-ai-labs/turkmorph/phonetics"
)

// Condition is a predicate over a container's history. The zero value is
// unset and matches every container.
type Condition struct {
	desc  string
	match func(*Container) bool
}

// Matches reports whether c satisfies the condition.
func (cond Condition) Matches(c *Container) bool {
	if cond.match == nil {
		return true
	}
	return cond.match(c)
}

// IsSet reports whether the condition was built by a constructor.
func (cond Condition) IsSet() bool {
	return cond.match != nil
}

func (cond Condition) String() string {
	if cond.match == nil {
		return "always"
	}
	return cond.desc
}

// Always matches every container.
func Always() Condition {
	return Condition{desc: "always", match: func(*Container) bool { return true }}
}

// And matches when every condition matches.
func And(conds ...Condition) Condition {
	return Condition{
		desc: join("&", conds),
		match: func(c *Container) bool {
			for _, cond := range conds {
				if !cond.Matches(c) {
					return false
				}
			}
			return true
		},
	}
}

// Or matches when any condition matches.
func Or(conds ...Condition) Condition {
	return Condition{
		desc: join("|", conds),
		match: func(c *Container) bool {
			for _, cond := range conds {
				if cond.Matches(c) {
					return true
				}
			}
			return false
		},
	}
}

// Not negates cond.
func Not(cond Condition) Condition {
	return Condition{
		desc:  "~(" + cond.String() + ")",
		match: func(c *Container) bool { return !cond.Matches(c) },
	}
}

// ComesAfter matches when one of suffixes was applied since the last
// derivational boundary.
func ComesAfter(suffixes ...*Suffix) Condition {
	return Condition{
		desc: "comes_after(" + suffixNames(suffixes) + ")",
		match: func(c *Container) bool {
			for _, t := range c.TransitionsSinceDerivation() {
				if containsSuffix(suffixes, t.Suffix()) {
					return true
				}
			}
			return false
		},
	}
}

// ComesAfterGroup matches when a member of g was applied since the last
// derivational boundary.
func ComesAfterGroup(g *SuffixGroup) Condition {
	return Condition{
		desc: "comes_after_group(" + g.Name + ")",
		match: func(c *Container) bool {
			for _, t := range c.TransitionsSinceDerivation() {
				if t.Suffix().Group == g {
					return true
				}
			}
			return false
		},
	}
}

// ComesAfterDerivation matches when the most recent derivation used one of
// suffixes.
func ComesAfterDerivation(suffixes ...*Suffix) Condition {
	return Condition{
		desc: "comes_after_derivation(" + suffixNames(suffixes) + ")",
		match: func(c *Container) bool {
			t, ok := c.LastDerivation()
			return ok && containsSuffix(suffixes, t.Suffix())
		},
	}
}

// FollowedBy matches when the last transition used one of suffixes. Used
// as a postcondition it constrains the suffix that comes next.
func FollowedBy(suffixes ...*Suffix) Condition {
	return Condition{
		desc: "followed_by(" + suffixNames(suffixes) + ")",
		match: func(c *Container) bool {
			t, ok := c.LastTransition()
			return ok && containsSuffix(suffixes, t.Suffix())
		},
	}
}

// FollowedByGroup matches when the last transition used a member of g.
func FollowedByGroup(g *SuffixGroup) Condition {
	return Condition{
		desc: "followed_by_group(" + g.Name + ")",
		match: func(c *Container) bool {
			t, ok := c.LastTransition()
			return ok && t.Suffix().Group == g
		},
	}
}

// FollowedByDerivation matches when the last transition is a derivation
// with one of suffixes.
func FollowedByDerivation(suffixes ...*Suffix) Condition {
	return Condition{
		desc: "followed_by_derivation(" + suffixNames(suffixes) + ")",
		match: func(c *Container) bool {
			t, ok := c.LastTransition()
			return ok && t.IsDerivation() && containsSuffix(suffixes, t.Suffix())
		},
	}
}

// HasLexemeAttribute matches when the container still carries the root's
// lexical attribute a.
func HasLexemeAttribute(a lexicon.Attribute) Condition {
	return Condition{
		desc:  "has_lexeme_attribute(" + a.String() + ")",
		match: func(c *Container) bool { return c.LexemeAttributes().Has(a) },
	}
}

// HasRootForm matches when the root surface string is one of forms.
func HasRootForm(forms ...string) Condition {
	return Condition{
		desc: "has_root_form(" + strings.Join(forms, ",") + ")",
		match: func(c *Container) bool {
			for _, f := range forms {
				if c.Root().Str == f {
					return true
				}
			}
			return false
		},
	}
}

// RootCategoryIs matches when the root lexeme has category cat.
func RootCategoryIs(cat lexicon.Category) Condition {
	return Condition{
		desc:  "root_category_is(" + cat.String() + ")",
		match: func(c *Container) bool { return c.Root().Lexeme.Category == cat },
	}
}

// SecondaryCategoryIs matches when the root lexeme has secondary category
// sec.
func SecondaryCategoryIs(sec lexicon.SecondaryCategory) Condition {
	return Condition{
		desc:  "secondary_category_is(" + sec.String() + ")",
		match: func(c *Container) bool { return c.Root().Lexeme.Secondary == sec },
	}
}

// LastLetterIsVowel matches when the surface so far ends in a vowel.
func LastLetterIsVowel() Condition {
	return Condition{
		desc: "last_letter_is_vowel",
		match: func(c *Container) bool {
			return c.PhoneticAttributes().Has(phonetics.LastLetterVowel)
		},
	}
}

// LastLetterIsConsonant matches when the surface so far ends in a
// consonant.
func LastLetterIsConsonant() Condition {
	return Condition{
		desc: "last_letter_is_consonant",
		match: func(c *Container) bool {
			return c.PhoneticAttributes().Has(phonetics.LastLetterConsonant)
		},
	}
}

// LastLetterIs matches when the surface so far ends in one of letters.
func LastLetterIs(letters string) Condition {
	return Condition{
		desc: "last_letter_is(" + letters + ")",
		match: func(c *Container) bool {
			r, _ := utf8.DecodeLastRuneInString(c.Surface())
			return r != utf8.RuneError && strings.ContainsRune(letters, r)
		},
	}
}

// NewCondition wraps a custom predicate. desc names it in String.
func NewCondition(desc string, match func(*Container) bool) Condition {
	return Condition{desc: desc, match: match}
}

func containsSuffix(suffixes []*Suffix, s *Suffix) bool {
	for _, x := range suffixes {
		if x == s {
			return true
		}
	}
	return false
}

func suffixNames(suffixes []*Suffix) string {
	names := make([]string, len(suffixes))
	for i, s := range suffixes {
		names[i] = s.Name
	}
	return strings.Join(names, ",")
}

func join(op string, conds []Condition) string {
	parts := make([]string, len(conds))
	for i, c := range conds {
		parts[i] = c.String()
	}
	return "(" + strings.Join(parts, op) + ")"
}
