package analyzer

import (
	"os"
	"slices"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/az-ai-labs/turkmorph/rootfinder"
	"github.com/az-ai-labs/turkmorph/rootmap"
	"github.com/az-ai-labs/turkmorph/suffixgraph"
)

// Cache kinds.
const (
	CacheNone = "none"
	CacheLRU  = "lru"
	CacheTTL  = "ttl"
)

// Config selects the grammar, the root finders and the result cache of an
// Analyzer. The zero value is not valid; start from DefaultConfig.
type Config struct {
	// Grammar lists suffix graph layers in build order.
	Grammar []string `yaml:"grammar"`
	// RootFinders lists root finders in the order they are asked.
	RootFinders []string `yaml:"root_finders"`
	// UpperCase also parses capitalized words with a lowercase first
	// letter.
	UpperCase bool        `yaml:"upper_case"`
	Cache     CacheConfig `yaml:"cache"`
}

// CacheConfig configures the parse result cache.
type CacheConfig struct {
	Kind string `yaml:"kind"`
	// Size is the number of words an lru cache holds.
	Size int `yaml:"size"`
	// TTL is how long a ttl cache keeps an entry; zero keeps it forever.
	TTL time.Duration `yaml:"ttl"`
	// Cleanup is how often a ttl cache purges expired entries.
	Cleanup time.Duration `yaml:"cleanup"`
}

var finderNames = []string{
	"word",
	"text_numeral",
	"digit_numeral",
	"proper_noun_apostrophe",
	"proper_noun_no_apostrophe",
}

// DefaultConfig returns the full grammar with every root finder, upper
// case handling and a 10000 word LRU cache.
func DefaultConfig() Config {
	return Config{
		Grammar:     []string{"basic", "proper_nouns", "numerals", "copula"},
		RootFinders: slices.Clone(finderNames),
		UpperCase:   true,
		Cache: CacheConfig{
			Kind:    CacheLRU,
			Size:    10000,
			TTL:     10 * time.Minute,
			Cleanup: time.Minute,
		},
	}
}

// LoadConfig reads a YAML config from path. Fields missing from the file
// keep their DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "analyzer: reading config")
	}
	return ParseConfig(data)
}

// ParseConfig decodes a YAML config. Fields missing from data keep their
// DefaultConfig values.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(err, "analyzer: parsing config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first unknown name or invalid value in c.
func (c Config) Validate() error {
	if len(c.Grammar) == 0 {
		return errors.New("analyzer: no grammar layers")
	}
	for _, name := range c.Grammar {
		if _, ok := suffixgraph.LayerByName(name); !ok {
			return errors.Errorf("analyzer: unknown grammar layer %q, want one of %v", name, suffixgraph.LayerNames())
		}
	}
	if len(c.RootFinders) == 0 {
		return errors.New("analyzer: no root finders")
	}
	for _, name := range c.RootFinders {
		if !slices.Contains(finderNames, name) {
			return errors.Errorf("analyzer: unknown root finder %q, want one of %v", name, finderNames)
		}
	}

	switch c.Cache.Kind {
	case "", CacheNone:
	case CacheLRU:
		if c.Cache.Size <= 0 {
			return errors.Errorf("analyzer: lru cache size must be positive, got %d", c.Cache.Size)
		}
	case CacheTTL:
		if c.Cache.TTL < 0 {
			return errors.Errorf("analyzer: negative cache ttl %s", c.Cache.TTL)
		}
	default:
		return errors.Errorf("analyzer: unknown cache kind %q", c.Cache.Kind)
	}
	return nil
}

func (c Config) layers() []suffixgraph.Layer {
	out := make([]suffixgraph.Layer, 0, len(c.Grammar))
	for _, name := range c.Grammar {
		l, _ := suffixgraph.LayerByName(name)
		out = append(out, l)
	}
	return out
}

func (c Config) finders(roots *rootmap.Map) []rootfinder.Finder {
	out := make([]rootfinder.Finder, 0, len(c.RootFinders))
	for _, name := range c.RootFinders {
		switch name {
		case "word":
			out = append(out, rootfinder.NewWord(roots))
		case "text_numeral":
			out = append(out, rootfinder.NewTextNumeral(roots))
		case "digit_numeral":
			out = append(out, rootfinder.DigitNumeral{})
		case "proper_noun_apostrophe":
			out = append(out, rootfinder.ProperNounFromApostrophe{})
		case "proper_noun_no_apostrophe":
			out = append(out, rootfinder.ProperNounWithoutApostrophe{})
		}
	}
	return out
}
