// Package applier decides whether a suffix form can follow a parse branch
// and, when it can, produces the extended branch.
//
// A form is tried in a fixed order: its precondition, the pending phonetic
// expectations of the branch, the cheap applicability filter, phonetic
// application and matching against the input, the postcondition of the
// previous transition and, when the branch leaves a derivational state,
// the post-derivation conditions of the closing window.
package applier

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/az-ai-labs/turkmorph/morpheme"
	"github.com/az-ai-labs/turkmorph/phonetics"
	"github.com/az-ai-labs/turkmorph/suffixgraph"
)

// Applier applies suffix forms to containers. It holds no per-parse state
// and is safe for concurrent use.
type Applier struct {
	logger *slog.Logger
}

// New returns an Applier that logs rejected forms at debug level. A nil
// logger discards everything.
func New(logger *slog.Logger) *Applier {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Applier{logger: logger}
}

// TrySuffix tries every form of suffix and returns the containers of the
// forms that fit, in form order.
func (a *Applier) TrySuffix(c *morpheme.Container, suffix *morpheme.Suffix, to *morpheme.State, word string) []*morpheme.Container {
	if !TransitionAllowed(c, suffix) {
		a.reject(c, suffix.Name, "", "suffix group or repetition")
		return nil
	}
	var out []*morpheme.Container
	for _, form := range suffix.Forms() {
		if next := a.TrySuffixForm(c, form, to, word); next != nil {
			out = append(out, next)
		}
	}
	return out
}

// TrySuffixForm applies a single form, which need not be registered on its
// suffix. It returns nil when the form does not fit.
func (a *Applier) TrySuffixForm(c *morpheme.Container, form *morpheme.SuffixForm, to *morpheme.State, word string) *morpheme.Container {
	if !form.Precondition.Matches(c) {
		a.reject(c, form.Suffix.Name, form.Template, "precondition "+form.Precondition.String())
		return nil
	}
	if !phonetics.ExpectationsSatisfied(c.Expectations(), form.Template) {
		a.reject(c, form.Suffix.Name, form.Template, "expectations "+c.Expectations().String())
		return nil
	}
	if !phonetics.IsSuffixFormApplicable(c.Surface(), form.Template) {
		a.reject(c, form.Suffix.Name, form.Template, "not applicable")
		return nil
	}

	stem, applied := phonetics.Apply(c.Surface(), c.PhoneticAttributes(), form.Template, c.LexemeAttributes())
	// Stem changes are realized as separate roots, so a form that needs
	// one does not fit this branch.
	if stem != c.Surface() {
		a.reject(c, form.Suffix.Name, form.Template, "stem changes to "+stem)
		return nil
	}

	candidate := c.Surface() + applied
	var (
		matched = applied
		expect  phonetics.Expectations
	)
	if !strings.HasPrefix(word, candidate) {
		if !phonetics.ApplicationMatches(word, candidate, to.Name != suffixgraph.VerbRoot) {
			a.reject(c, form.Suffix.Name, form.Template, "no match for "+applied)
			return nil
		}
		last, size := utf8.DecodeLastRuneInString(applied)
		matched = applied[:len(applied)-size] + string(phonetics.Voice(last))
		expect = phonetics.VowelStart
	}
	if !strings.HasPrefix(c.Remaining(), matched) {
		a.reject(c, form.Suffix.Name, form.Template, "input mismatch")
		return nil
	}

	next := c.Advance(morpheme.Transition{
		From:    c.LastState(),
		To:      to,
		Form:    form,
		Applied: applied,
		Matched: matched,
	}, expect)

	if prev, ok := c.LastTransition(); ok && !prev.Form.Postcondition.Matches(next) {
		a.reject(c, form.Suffix.Name, form.Template, "postcondition of "+prev.Form.String())
		return nil
	}
	if c.LastState().Type == morpheme.Derivational {
		for _, t := range c.TransitionsSinceDerivation() {
			if !t.Form.PostDerivationCondition.Matches(next) {
				a.reject(c, form.Suffix.Name, form.Template, "post-derivation condition of "+t.Form.String())
				return nil
			}
		}
	}
	return next
}

// TransitionAllowed reports whether suffix may follow c: no member of its
// group may have been applied since the last derivation, and a suffix
// that disallows repetition may not directly follow itself as a
// derivation.
func TransitionAllowed(c *morpheme.Container, suffix *morpheme.Suffix) bool {
	if suffix.Group != nil {
		for _, t := range c.TransitionsSinceDerivation() {
			if t.Suffix().Group == suffix.Group {
				return false
			}
		}
	}
	if !suffix.AllowRepetition {
		if last, ok := c.LastDerivation(); ok && last.Suffix() == suffix {
			return false
		}
	}
	return true
}

func (a *Applier) reject(c *morpheme.Container, suffix, template, reason string) {
	if !a.logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	a.logger.Debug("suffix rejected",
		slog.String("branch", c.FormatNoSurface()),
		slog.String("suffix", suffix),
		slog.String("form", template),
		slog.String("reason", reason),
	)
}
