package morpheme

import (
	"unicode"

	"github.com/az-ai-labs/turkmorph/lexicon"
	"github.com/az-ai-labs/turkmorph/phonetics"
)

// Transition records one applied suffix form.
type Transition struct {
	From *State
	To   *State
	Form *SuffixForm
	// Applied is the phonologically resolved form ("ya" for "+yA").
	Applied string
	// Matched is the literal substring of the input that the form
	// consumed. It differs from Applied when the last letter was voiced
	// ("çığ" for "çık").
	Matched string
}

// Suffix returns the suffix the applied form belongs to.
func (t Transition) Suffix() *Suffix {
	return t.Form.Suffix
}

// IsDerivation reports whether the transition leaves a derivational state.
func (t Transition) IsDerivation() bool {
	return t.From.Type == Derivational
}

// link is a node of the persistent transition list. Containers share
// their common prefix through prev.
type link struct {
	t          Transition
	prev       *link
	surfaceLen int // len(surface) after this transition
}

// Container accumulates one parse branch: a root, the transitions applied
// so far and the input still to consume. Containers are immutable; Advance
// returns a new one and leaves the receiver usable for sibling branches.
//
// For a container built while parsing word w,
// Surface() + Remaining() == w holds at every step.
type Container struct {
	root      *Root
	lastState *State

	tail      *link
	lastDeriv *link
	count     int

	surface   string
	remaining string

	phonAttrs    phonetics.Attributes
	expectations phonetics.Expectations
	lexAttrs     lexicon.AttributeSet
}

// NewContainer returns a container positioned at state for root, with
// remaining the unconsumed input after the root string.
func NewContainer(root *Root, state *State, remaining string) *Container {
	return &Container{
		root:         root,
		lastState:    state,
		surface:      root.Str,
		remaining:    remaining,
		phonAttrs:    root.PhoneticAttributes,
		expectations: root.Expectations,
		lexAttrs:     root.Attributes,
	}
}

// Advance returns a new container with t appended. t.Matched must be a
// prefix of Remaining. expect adds forward expectations for the next
// suffix with a surface.
func (c *Container) Advance(t Transition, expect phonetics.Expectations) *Container {
	n := *c
	n.surface = c.surface + t.Matched
	n.remaining = c.remaining[len(t.Matched):]
	n.tail = &link{t: t, prev: c.tail, surfaceLen: len(n.surface)}
	n.count++
	n.lastState = t.To

	if t.IsDerivation() {
		n.lastDeriv = n.tail
		n.lexAttrs = 0
	}
	if t.Matched != "" {
		n.lexAttrs = 0
		n.expectations = 0
		if hasLetter(t.Matched) {
			n.phonAttrs = phonetics.Calculate(n.surface)
		}
	}
	n.expectations |= expect
	return &n
}

// WithRemaining returns a copy of c with a different unconsumed input.
func (c *Container) WithRemaining(remaining string) *Container {
	n := *c
	n.remaining = remaining
	return &n
}

// Root returns the root the branch started from.
func (c *Container) Root() *Root { return c.root }

// LastState returns the state reached by the last transition.
func (c *Container) LastState() *State { return c.lastState }

// Remaining returns the input not consumed yet.
func (c *Container) Remaining() string { return c.remaining }

// Surface returns the root string followed by every matched suffix.
func (c *Container) Surface() string { return c.surface }

// PhoneticAttributes returns the attributes of the surface so far.
func (c *Container) PhoneticAttributes() phonetics.Attributes { return c.phonAttrs }

// Expectations returns the constraints pending on the next suffix with a
// surface.
func (c *Container) Expectations() phonetics.Expectations { return c.expectations }

// LexemeAttributes returns the root's lexical attributes until the first
// suffix with a surface or the first derivation, and nothing afterwards.
func (c *Container) LexemeAttributes() lexicon.AttributeSet { return c.lexAttrs }

// Len returns the number of transitions.
func (c *Container) Len() int { return c.count }

// Transitions returns the applied transitions in order.
func (c *Container) Transitions() []Transition {
	return collect(c.tail, nil, c.count)
}

// TransitionsSinceDerivation returns the transitions applied after the most
// recent derivation, excluding the derivation itself.
func (c *Container) TransitionsSinceDerivation() []Transition {
	return collect(c.tail, c.lastDeriv, c.count)
}

// LastTransition returns the most recent transition.
func (c *Container) LastTransition() (Transition, bool) {
	if c.tail == nil {
		return Transition{}, false
	}
	return c.tail.t, true
}

// LastDerivation returns the most recent derivation.
func (c *Container) LastDerivation() (Transition, bool) {
	if c.lastDeriv == nil {
		return Transition{}, false
	}
	return c.lastDeriv.t, true
}

// SurfaceCategory returns the category of the last state.
func (c *Container) SurfaceCategory() lexicon.Category {
	return c.lastState.Category
}

// SurfaceSecondaryCategory returns the root's secondary category while no
// derivation happened.
func (c *Container) SurfaceSecondaryCategory() lexicon.SecondaryCategory {
	if c.lastDeriv != nil {
		return lexicon.SecondaryNone
	}
	return c.root.Lexeme.Secondary
}

// Stem returns the surface up to and including the most recent derivation.
func (c *Container) Stem() string {
	if c.lastDeriv == nil {
		return c.root.Str
	}
	return c.surface[:c.lastDeriv.surfaceLen]
}

// StemCategory returns the category produced by the most recent derivation,
// or the root's category.
func (c *Container) StemCategory() lexicon.Category {
	if c.lastDeriv == nil {
		return c.root.Lexeme.Category
	}
	return c.lastDeriv.t.To.Category
}

// StemSecondaryCategory returns the root's secondary category when there is
// no derivation.
func (c *Container) StemSecondaryCategory() lexicon.SecondaryCategory {
	return c.SurfaceSecondaryCategory()
}

// LemmaRoot returns the dictionary root of the lexeme ("kitap" for a parse
// starting at "kitab").
func (c *Container) LemmaRoot() string {
	return c.root.Lexeme.Root
}

// LemmaRootCategory returns the lexeme's category.
func (c *Container) LemmaRootCategory() lexicon.Category {
	return c.root.Lexeme.Category
}

// LemmaRootSecondaryCategory returns the lexeme's secondary category.
func (c *Container) LemmaRootSecondaryCategory() lexicon.SecondaryCategory {
	return c.root.Lexeme.Secondary
}

// collect walks the list from tail back to stop (exclusive) and returns
// the transitions in application order.
func collect(tail, stop *link, hint int) []Transition {
	out := make([]Transition, 0, hint)
	for l := tail; l != nil && l != stop; l = l.prev {
		out = append(out, l.t)
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
