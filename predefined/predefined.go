// Package predefined builds the fixed parses of words whose inflection the
// suffix graph does not describe: the personal and demonstrative pronouns
// (bana, onu, bunlar) and the question particle (miyim, mıydın).
//
// Paths are built once by walking literal suffix forms through the graph
// with the regular applier, so they obey the same rules as any other
// parse. A root with paths never starts a generic parse.
package predefined

import (
	"github.com/pkg/errors"

	"github.com/az-ai-labs/turkmorph/applier"
	"github.com/az-ai-labs/turkmorph/lexicon"
	"github.com/az-ai-labs/turkmorph/morpheme"
	"github.com/az-ai-labs/turkmorph/phonetics"
	"github.com/az-ai-labs/turkmorph/rootmap"
	"github.com/az-ai-labs/turkmorph/suffixgraph"
)

// Paths holds the predefined containers keyed by root. It is read-only
// after Build.
type Paths struct {
	byRoot  map[*morpheme.Root][]*morpheme.Container
	lexemes map[*lexicon.Lexeme]bool
	count   int
}

// step is one suffix of a path: the suffix name, its literal form or
// template, and the state it leads to.
type step struct {
	suffix string
	form   string
	to     string
}

// Build creates the paths of every lexeme in lexemes that has an
// irregular paradigm. A path that does not apply is a programming error.
func Build(g *suffixgraph.Graph, roots *rootmap.Map, lexemes []*lexicon.Lexeme, a *applier.Applier) (*Paths, error) {
	b := &builder{
		g: g,
		a: a,
		paths: &Paths{
			byRoot:  make(map[*morpheme.Root][]*morpheme.Container),
			lexemes: make(map[*lexicon.Lexeme]bool),
		},
	}
	for _, lex := range lexemes {
		var err error
		switch {
		case lex.Category == lexicon.Pronoun && lex.Secondary == lexicon.Personal:
			err = b.pronoun(roots, lex, personal[lex.Root])
		case lex.Category == lexicon.Pronoun && lex.Secondary == lexicon.Demonstrative:
			err = b.pronoun(roots, lex, demonstrative[lex.Root])
		case lex.Category == lexicon.Question:
			err = b.question(roots, lex)
		}
		if err != nil {
			return nil, err
		}
	}
	return b.paths, nil
}

// HasPaths reports whether lex has predefined paths. Its roots must not
// start a generic parse.
func (p *Paths) HasPaths(lex *lexicon.Lexeme) bool {
	return p.lexemes[lex]
}

// ForRoot returns the paths starting at root. The slice is shared and must
// not be modified.
func (p *Paths) ForRoot(root *morpheme.Root) []*morpheme.Container {
	return p.byRoot[root]
}

// Len returns the number of paths.
func (p *Paths) Len() int {
	return p.count
}

type builder struct {
	g     *suffixgraph.Graph
	a     *applier.Applier
	paths *Paths
}

func (b *builder) pronoun(roots *rootmap.Map, lex *lexicon.Lexeme, p paradigm) error {
	for _, number := range p {
		for _, c := range number.cases {
			root := roots.Find(c.root, lex)
			if root == nil {
				return errors.Errorf("predefined: %s: no root %q", lex, c.root)
			}
			steps := []step{
				{number.agreement, number.ending, suffixgraph.PronounWithAgreement},
				{"Pnon", "", suffixgraph.PronounWithPossession},
				{c.suffix, c.ending, suffixgraph.PronounWithCase},
			}
			if err := b.add(root, suffixgraph.PronounRoot, steps); err != nil {
				return err
			}
		}
	}
	return nil
}

func (b *builder) question(roots *rootmap.Map, lex *lexicon.Lexeme) error {
	for _, form := range questionStems {
		root := roots.Find(form, lex)
		if root == nil {
			continue
		}
		for _, tense := range questionTenses {
			for _, agr := range tense.agreements {
				steps := []step{
					{tense.suffix, tense.form, suffixgraph.QuestionWithTense},
					{agr.suffix, agr.form, suffixgraph.QuestionWithAgreement},
				}
				if err := b.add(root, suffixgraph.QuestionRoot, steps); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// add walks steps from state, resolving each form against the surface
// built so far.
func (b *builder) add(root *morpheme.Root, state string, steps []step) error {
	start := b.g.State(state)
	if start == nil {
		return errors.Errorf("predefined: %s: unknown state %s", root, state)
	}
	c := morpheme.NewContainer(root, start, "")
	for _, s := range steps {
		suffix, to := b.g.Suffix(s.suffix), b.g.State(s.to)
		if suffix == nil || to == nil {
			return errors.Errorf("predefined: %s: unknown suffix %s or state %s", root, s.suffix, s.to)
		}
		_, applied := phonetics.Apply(c.Surface(), c.PhoneticAttributes(), s.form, c.LexemeAttributes())
		word := c.Surface() + applied
		next := b.a.TrySuffixForm(c.WithRemaining(applied), morpheme.NewForm(suffix, s.form), to, word)
		if next == nil {
			return errors.Errorf("predefined: %s: %s(%s) does not apply after %s", root, s.suffix, s.form, c.FormatNoSurface())
		}
		c = next
	}
	b.paths.byRoot[root] = append(b.paths.byRoot[root], c)
	b.paths.lexemes[root.Lexeme] = true
	b.paths.count++
	return nil
}
