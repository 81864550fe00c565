package parser

import (
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/patrickmn/go-cache"
	"github.com/pkg/errors"

	"github.com/az-ai-labs/turkmorph/morpheme"
)

// Cache stores parse results by word. Implementations must be safe for
// concurrent use. Cached slices are shared between callers.
type Cache interface {
	Get(word string) ([]*morpheme.Container, bool)
	Add(word string, results []*morpheme.Container)
	Len() int
}

type lruCache struct {
	c *lru.Cache[string, []*morpheme.Container]
}

// NewLRUCache returns a cache holding the results of the size most
// recently parsed words.
func NewLRUCache(size int) (Cache, error) {
	c, err := lru.New[string, []*morpheme.Container](size)
	if err != nil {
		return nil, errors.Wrapf(err, "parser: lru cache of size %d", size)
	}
	return &lruCache{c: c}, nil
}

func (l *lruCache) Get(word string) ([]*morpheme.Container, bool) {
	return l.c.Get(word)
}

func (l *lruCache) Add(word string, results []*morpheme.Container) {
	l.c.Add(word, results)
}

func (l *lruCache) Len() int { return l.c.Len() }

type ttlCache struct {
	c *cache.Cache
}

// NewTTLCache returns a cache whose entries expire ttl after they were
// added. Expired entries are purged every cleanup; a cleanup of zero or
// less never purges them.
func NewTTLCache(ttl, cleanup time.Duration) Cache {
	return &ttlCache{c: cache.New(ttl, cleanup)}
}

func (t *ttlCache) Get(word string) ([]*morpheme.Container, bool) {
	v, ok := t.c.Get(word)
	if !ok {
		return nil, false
	}
	results, ok := v.([]*morpheme.Container)
	return results, ok
}

func (t *ttlCache) Add(word string, results []*morpheme.Container) {
	t.c.SetDefault(word, results)
}

func (t *ttlCache) Len() int { return t.c.ItemCount() }

// CachingParser remembers the results of another parser. Errors are not
// cached.
type CachingParser struct {
	p     Parser
	cache Cache
}

// NewCaching wraps p with cache.
func NewCaching(p Parser, cache Cache) *CachingParser {
	return &CachingParser{p: p, cache: cache}
}

// Parse implements Parser. Callers must not modify the returned slice.
func (c *CachingParser) Parse(word string) ([]*morpheme.Container, error) {
	if results, ok := c.cache.Get(word); ok {
		return results, nil
	}
	results, err := c.p.Parse(word)
	if err != nil {
		return nil, err
	}
	c.cache.Add(word, results)
	return results, nil
}
