// Package parser finds every morphological analysis of a single word
// without looking at its context.
//
// A parse proposes roots for every prefix of the word, starts a branch per
// root at the state the suffix graph routes it to (or at the predefined
// paths of irregular roots) and expands all branches breadth-first until
// none is left. Branches that reach a terminal state with the whole word
// consumed are the results.
//
// The graph, root map and predefined paths are shared read-only, so a
// ContextlessParser is safe for concurrent use.
package parser

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/az-ai-labs/turkmorph/applier"
	"github.com/az-ai-labs/turkmorph/lexicon"
	"github.com/az-ai-labs/turkmorph/morpheme"
	"github.com/az-ai-labs/turkmorph/phonetics"
	"github.com/az-ai-labs/turkmorph/predefined"
	"github.com/az-ai-labs/turkmorph/rootfinder"
	"github.com/az-ai-labs/turkmorph/suffixgraph"
)

// Parser returns the analyses of a word. An empty result with a nil error
// means the word has no analysis.
type Parser interface {
	Parse(word string) ([]*morpheme.Container, error)
}

// ErrFrontierInvariant is wrapped by Parse when the traversal ends in a
// state the grammar should make impossible. It points at a bug in the
// graph or the applier, never at the input.
var ErrFrontierInvariant = errors.New("parser: frontier invariant violated")

const (
	// maxWordBytes bounds the input; longer words have no analysis.
	maxWordBytes = 256
	// maxTraversalRounds bounds the breadth-first expansion. Every round
	// applies one suffix, so a legitimate parse of a maxWordBytes word
	// ends well before it.
	maxTraversalRounds = 8 * maxWordBytes
)

// ContextlessParser is the core parser.
type ContextlessParser struct {
	graph   *suffixgraph.Graph
	finders []rootfinder.Finder
	paths   *predefined.Paths
	applier *applier.Applier
	logger  *slog.Logger

	positive, progressive *morpheme.Suffix
	withPolarity          *morpheme.State
	withTense             *morpheme.State
}

// Option configures a ContextlessParser.
type Option func(*ContextlessParser)

// WithLogger sets the logger for debug output. The default discards
// everything.
func WithLogger(l *slog.Logger) Option {
	return func(p *ContextlessParser) {
		if l != nil {
			p.logger = l
		}
	}
}

// New returns a parser over g. Finders are asked in order for every
// prefix of the word. paths may be nil when no lexeme has predefined
// paths.
func New(g *suffixgraph.Graph, finders []rootfinder.Finder, paths *predefined.Paths, a *applier.Applier, opts ...Option) *ContextlessParser {
	p := &ContextlessParser{
		graph:        g,
		finders:      finders,
		paths:        paths,
		applier:      a,
		logger:       slog.New(slog.DiscardHandler),
		positive:     g.Suffix(suffixgraph.Positive),
		progressive:  g.Suffix(suffixgraph.Progressive),
		withPolarity: g.State(suffixgraph.VerbWithPolarity),
		withTense:    g.State(suffixgraph.VerbWithTense),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse returns every analysis of word in a deterministic order. The
// returned containers are read-only.
func (p *ContextlessParser) Parse(word string) ([]*morpheme.Container, error) {
	if word == "" || len(word) > maxWordBytes {
		return nil, nil
	}

	candidates := p.initialCandidates(word)
	results, frontier := partition(nil, nil, candidates)

	for round := 0; len(frontier) > 0; round++ {
		if round == maxTraversalRounds {
			return nil, errors.Wrapf(ErrFrontierInvariant, "%q: %d branches left after %d rounds, first %s",
				word, len(frontier), round, frontier[0].FormatNoSurface())
		}
		var next []*morpheme.Container
		for _, c := range frontier {
			if c.LastState().Type == morpheme.Terminal {
				return nil, errors.Wrapf(ErrFrontierInvariant, "%q: terminal branch %s in frontier", word, c.FormatNoSurface())
			}
			for _, e := range p.graph.ApplicableSuffixes(c.LastState(), c) {
				results, next = partition(results, next, p.applier.TrySuffix(c, e.Suffix, e.To, word))
			}
		}
		frontier = next
	}

	if p.logger.Enabled(context.Background(), slog.LevelDebug) {
		p.logger.Debug("parsed",
			slog.String("word", word),
			slog.Int("candidates", len(candidates)),
			slog.Int("results", len(results)),
		)
	}
	return results, nil
}

// partition appends finished branches in cs to results and unfinished
// ones to frontier. A branch in a terminal state with input left, or
// still expecting a vowel, is a dead end.
func partition(results, frontier, cs []*morpheme.Container) ([]*morpheme.Container, []*morpheme.Container) {
	for _, c := range cs {
		switch {
		case c.LastState().Type != morpheme.Terminal:
			frontier = append(frontier, c)
		case c.Remaining() == "" && !c.Expectations().Has(phonetics.VowelStart):
			results = append(results, c)
		}
	}
	return results, frontier
}

// initialCandidates builds one branch per discovered root, or the
// predefined branches of roots that have them.
func (p *ContextlessParser) initialCandidates(word string) []*morpheme.Container {
	var out []*morpheme.Container
	for end := 0; end < len(word); {
		_, size := utf8.DecodeRuneInString(word[end:])
		end += size
		partial := word[:end]

		for _, f := range p.finders {
			for _, root := range f.FindRoots(partial, word) {
				out = append(out, p.startRoot(root, word)...)
			}
		}
	}
	return out
}

func (p *ContextlessParser) startRoot(root *morpheme.Root, word string) []*morpheme.Container {
	if p.paths != nil && p.paths.HasPaths(root.Lexeme) {
		var out []*morpheme.Container
		for _, c := range p.paths.ForRoot(root) {
			if strings.HasPrefix(word, c.Surface()) {
				out = append(out, c.WithRemaining(word[len(c.Surface()):]))
			}
		}
		return out
	}

	state := p.graph.DefaultRootState(root)
	if state == nil {
		return nil
	}
	c := morpheme.NewContainer(root, state, word[len(root.Str):])
	if droppedProgressiveVowel(root) {
		return p.forceProgressive(c, word)
	}
	return []*morpheme.Container{c}
}

// droppedProgressiveVowel reports whether root is the vowel-dropped stem
// of a verb like başlamak (başl-ıyor).
func droppedProgressiveVowel(root *morpheme.Root) bool {
	lex := root.Lexeme
	return lex.Category == lexicon.Verb &&
		root.Attributes.Has(lexicon.ProgressiveVowelDrop) &&
		utf8.RuneCountInString(root.Str) == utf8.RuneCountInString(lex.Root)-1
}

// forceProgressive applies Pos and Prog1 to a vowel-dropped verb root.
// Such a root takes nothing else.
func (p *ContextlessParser) forceProgressive(c *morpheme.Container, word string) []*morpheme.Container {
	if p.positive == nil || p.progressive == nil || p.withPolarity == nil || p.withTense == nil {
		return nil
	}
	var out []*morpheme.Container
	for _, pos := range p.applier.TrySuffix(c, p.positive, p.withPolarity, word) {
		out = append(out, p.applier.TrySuffix(pos, p.progressive, p.withTense, word)...)
	}
	return out
}
