// Package rootmap turns lexemes into the roots the parser starts from and
// indexes them by surface string.
//
// One lexeme may yield several roots: "kitap" gives "kitap" (before a
// consonant) and "kitab" (before a vowel), "başlamak" gives "başla" and
// the progressive stem "başl". The Map is built once and is read-only
// afterwards.
package rootmap

import (
	"github.com/az-ai-labs/turkmorph/lexicon"
	"github.com/az-ai-labs/turkmorph/morpheme"
)

// Map indexes roots by their surface string.
type Map struct {
	roots map[string][]*morpheme.Root
	count int
}

// New generates the roots of every lexeme and indexes them. Roots sharing
// a surface string keep lexicon order.
func New(lexemes []*lexicon.Lexeme) *Map {
	m := &Map{roots: make(map[string][]*morpheme.Root, len(lexemes)*2)}
	for _, lex := range lexemes {
		for _, r := range Generate(lex) {
			m.roots[r.Str] = append(m.roots[r.Str], r)
			m.count++
		}
	}
	return m
}

// Lookup returns the roots whose surface string is s. The slice is shared
// and must not be modified.
func (m *Map) Lookup(s string) []*morpheme.Root {
	return m.roots[s]
}

// Find returns the root with surface string s generated from lex, or nil.
func (m *Map) Find(s string, lex *lexicon.Lexeme) *morpheme.Root {
	for _, r := range m.roots[s] {
		if r.Lexeme == lex {
			return r
		}
	}
	return nil
}

// Len returns the number of roots.
func (m *Map) Len() int {
	return m.count
}
