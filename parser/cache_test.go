package parser

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/az-ai-labs/turkmorph/lexicon"
	"github.com/az-ai-labs/turkmorph/morpheme"
)

// countingParser returns one fixed container per word and counts calls.
type countingParser struct {
	mu    sync.Mutex
	calls map[string]int
	err   error
}

func (c *countingParser) Parse(word string) ([]*morpheme.Container, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.calls == nil {
		c.calls = map[string]int{}
	}
	c.calls[word]++
	if c.err != nil {
		return nil, c.err
	}
	root := morpheme.NewRoot(word, lexicon.New(word, lexicon.Noun, lexicon.SecondaryNone), 0)
	return []*morpheme.Container{morpheme.NewContainer(root, morpheme.NewState("S", morpheme.Terminal, lexicon.Noun), "")}, nil
}

func (c *countingParser) count(word string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls[word]
}

func newCaches(t *testing.T) map[string]Cache {
	t.Helper()
	lru, err := NewLRUCache(16)
	if err != nil {
		t.Fatalf("NewLRUCache: %v", err)
	}
	return map[string]Cache{
		"lru": lru,
		"ttl": NewTTLCache(time.Minute, 0),
	}
}

func TestCachingParser(t *testing.T) {
	t.Parallel()

	for name, cache := range newCaches(t) {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			inner := &countingParser{}
			p := NewCaching(inner, cache)

			first, err := p.Parse("ev")
			if err != nil {
				t.Fatal(err)
			}
			second, err := p.Parse("ev")
			if err != nil {
				t.Fatal(err)
			}
			if n := inner.count("ev"); n != 1 {
				t.Errorf("inner parser called %d times, want 1", n)
			}
			if len(first) != 1 || len(second) != 1 || first[0] != second[0] {
				t.Errorf("cached results differ: %v vs %v", first, second)
			}
			if cache.Len() != 1 {
				t.Errorf("Len() = %d, want 1", cache.Len())
			}
		})
	}
}

func TestCachingParserDoesNotCacheErrors(t *testing.T) {
	t.Parallel()

	cache, err := NewLRUCache(4)
	if err != nil {
		t.Fatal(err)
	}
	boom := errors.New("boom")
	inner := &countingParser{err: boom}
	p := NewCaching(inner, cache)

	for range 2 {
		if _, err := p.Parse("ev"); !errors.Is(err, boom) {
			t.Fatalf("Parse error = %v, want %v", err, boom)
		}
	}
	if n := inner.count("ev"); n != 2 {
		t.Errorf("inner parser called %d times, want 2", n)
	}
	if cache.Len() != 0 {
		t.Errorf("Len() = %d, want 0", cache.Len())
	}
}

func TestLRUCacheEviction(t *testing.T) {
	t.Parallel()

	cache, err := NewLRUCache(2)
	if err != nil {
		t.Fatal(err)
	}
	inner := &countingParser{}
	p := NewCaching(inner, cache)
	for _, w := range []string{"ev", "el", "göz", "ev"} {
		if _, err := p.Parse(w); err != nil {
			t.Fatal(err)
		}
	}
	if n := inner.count("ev"); n != 2 {
		t.Errorf("evicted word parsed %d times, want 2", n)
	}
}

func TestTTLCacheExpiry(t *testing.T) {
	t.Parallel()

	cache := NewTTLCache(time.Millisecond, 0)
	inner := &countingParser{}
	p := NewCaching(inner, cache)

	if _, err := p.Parse("ev"); err != nil {
		t.Fatal(err)
	}
	time.Sleep(5 * time.Millisecond)
	if _, err := p.Parse("ev"); err != nil {
		t.Fatal(err)
	}
	if n := inner.count("ev"); n != 2 {
		t.Errorf("expired word parsed %d times, want 2", n)
	}
}

func TestNewLRUCacheInvalidSize(t *testing.T) {
	t.Parallel()
	if _, err := NewLRUCache(0); err == nil {
		t.Error("NewLRUCache(0) succeeded, want error")
	}
}

func BenchmarkParseCached(b *testing.B) {
	cache, err := NewLRUCache(1024)
	if err != nil {
		b.Fatal(err)
	}
	p := NewCaching(newFixture(b).parser(), cache)
	for b.Loop() {
		if _, err := p.Parse("kitaplarımızdan"); err != nil {
			b.Fatal(err)
		}
	}
}
