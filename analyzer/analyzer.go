// Package analyzer assembles a ready-to-use morphological parser from a
// lexicon and a Config: the root map, the suffix graph, the predefined
// paths, the root finders and the optional upper-case and caching
// wrappers.
//
// Basic usage:
//
//	a, err := analyzer.Default()
//	if err != nil { ... }
//	results, err := a.Parse("kitaplarımdan")
//	for _, r := range results {
//		fmt.Println(r.Format())
//	}
package analyzer

import (
	"log/slog"
	"sync"

	"github.com/pkg/errors"

	"github.com/az-ai-labs/turkmorph/applier"
	"github.com/az-ai-labs/turkmorph/lexicon"
	"github.com/az-ai-labs/turkmorph/morpheme"
	"github.com/az-ai-labs/turkmorph/parser"
	"github.com/az-ai-labs/turkmorph/predefined"
	"github.com/az-ai-labs/turkmorph/rootmap"
	"github.com/az-ai-labs/turkmorph/suffixgraph"
)

// Analyzer parses single words. It is read-only after New and safe for
// concurrent use.
type Analyzer struct {
	cfg    Config
	graph  *suffixgraph.Graph
	roots  *rootmap.Map
	paths  *predefined.Paths
	parser parser.Parser
	cache  parser.Cache
}

// New builds an Analyzer over lexemes. A nil logger discards everything.
func New(cfg Config, lexemes []*lexicon.Lexeme, logger *slog.Logger) (*Analyzer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(lexemes) == 0 {
		return nil, errors.New("analyzer: empty lexicon")
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	g, err := suffixgraph.Build(cfg.layers()...)
	if err != nil {
		return nil, errors.Wrap(err, "analyzer: building suffix graph")
	}
	roots := rootmap.New(lexemes)
	app := applier.New(logger)
	paths, err := predefined.Build(g, roots, lexemes, app)
	if err != nil {
		return nil, errors.Wrap(err, "analyzer: building predefined paths")
	}

	var p parser.Parser = parser.New(g, cfg.finders(roots), paths, app, parser.WithLogger(logger))
	if cfg.UpperCase {
		p = parser.NewUpperCase(p)
	}

	a := &Analyzer{cfg: cfg, graph: g, roots: roots, paths: paths}
	switch cfg.Cache.Kind {
	case CacheLRU:
		a.cache, err = parser.NewLRUCache(cfg.Cache.Size)
		if err != nil {
			return nil, err
		}
	case CacheTTL:
		a.cache = parser.NewTTLCache(cfg.Cache.TTL, cfg.Cache.Cleanup)
	}
	if a.cache != nil {
		p = parser.NewCaching(p, a.cache)
	}
	a.parser = p

	logger.Debug("analyzer ready",
		"layers", g.Layers(),
		"roots", roots.Len(),
		"predefined", paths.Len(),
		"cache", cfg.Cache.Kind,
	)
	return a, nil
}

// MustNew is like New but panics on error.
func MustNew(cfg Config, lexemes []*lexicon.Lexeme, logger *slog.Logger) *Analyzer {
	a, err := New(cfg, lexemes, logger)
	if err != nil {
		panic(err)
	}
	return a
}

// Default returns a shared Analyzer over the built-in sample lexicon with
// DefaultConfig. It is built on first use.
func Default() (*Analyzer, error) {
	defaultOnce.Do(func() {
		defaultAnalyzer, defaultErr = New(DefaultConfig(), lexicon.Sample(), nil)
	})
	return defaultAnalyzer, defaultErr
}

var (
	defaultAnalyzer *Analyzer
	defaultOnce     sync.Once
	defaultErr      error
)

// Parse returns every analysis of word. The containers are shared with the
// cache and must not be modified.
func (a *Analyzer) Parse(word string) ([]*morpheme.Container, error) {
	return a.parser.Parse(word)
}

// Analyses returns the formatted analyses of word.
func (a *Analyzer) Analyses(word string) ([]string, error) {
	results, err := a.Parse(word)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.Format()
	}
	return out, nil
}

// Config returns the configuration a was built with.
func (a *Analyzer) Config() Config { return a.cfg }

// Graph returns the suffix graph.
func (a *Analyzer) Graph() *suffixgraph.Graph { return a.graph }

// Roots returns the root map.
func (a *Analyzer) Roots() *rootmap.Map { return a.roots }

// CacheLen returns the number of cached words, or 0 without a cache.
func (a *Analyzer) CacheLen() int {
	if a.cache == nil {
		return 0
	}
	return a.cache.Len()
}
