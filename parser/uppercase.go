package parser

import (
	"slices"

	"github.com/az-ai-labs/turkmorph/internal/trcase"
	"github.com/az-ai-labs/turkmorph/morpheme"
)

// UpperCaseParser also parses a capitalized word with its first letter
// lowered, so sentence-initial words get their common analyses (Kitaplar
// -> kitaplar). Results of the word as written come first.
type UpperCaseParser struct {
	p Parser
}

// NewUpperCase wraps p.
func NewUpperCase(p Parser) *UpperCaseParser {
	return &UpperCaseParser{p: p}
}

// Parse implements Parser.
func (u *UpperCaseParser) Parse(word string) ([]*morpheme.Container, error) {
	results, err := u.p.Parse(word)
	if err != nil {
		return nil, err
	}
	if !trcase.IsUpperFirst(word) {
		return results, nil
	}
	lower := trcase.LowerFirst(word)
	if lower == word {
		return results, nil
	}
	more, err := u.p.Parse(lower)
	if err != nil {
		return nil, err
	}
	if len(more) == 0 {
		return results, nil
	}
	return slices.Concat(results, more), nil
}
