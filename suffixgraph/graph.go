// Package suffixgraph builds the finite-state suffix graph the parser
// walks. The graph is assembled from layers: Basic holds the core
// nominal, verbal and closed-class morphotactics, and ProperNouns,
// Numerals and Copula extend it with their own states, suffixes and root
// routes. Layers are applied in order and may extend states registered by
// earlier ones.
//
// A Graph is immutable after Build and safe for concurrent use.
package suffixgraph

import (
	"github.com/pkg/errors"

	"github.com/az-ai-labs/turkmorph/lexicon"
	"github.com/az-ai-labs/turkmorph/morpheme"
)

// Layer registers a group of states, suffixes and root routes.
type Layer interface {
	Name() string
	Register(b *Builder)
}

// RootRoute picks the initial state for a root, or returns nil when the
// root is not handled.
type RootRoute func(root *morpheme.Root) *morpheme.State

// Builder collects states, suffixes and edges while layers register
// themselves. The first error is kept and reported by Build; later calls
// are still safe.
type Builder struct {
	states   map[string]*morpheme.State
	order    []*morpheme.State
	suffixes map[string]*morpheme.Suffix
	groups   map[string]*morpheme.SuffixGroup
	routes   []RootRoute
	layer    string
	err      error
}

// Build applies layers in order and returns the resulting graph.
func Build(layers ...Layer) (*Graph, error) {
	if len(layers) == 0 {
		return nil, errors.New("suffixgraph: no layers")
	}
	b := &Builder{
		states:   make(map[string]*morpheme.State),
		suffixes: make(map[string]*morpheme.Suffix),
		groups:   make(map[string]*morpheme.SuffixGroup),
	}
	names := make([]string, 0, len(layers))
	for _, l := range layers {
		b.layer = l.Name()
		l.Register(b)
		if b.err != nil {
			return nil, b.err
		}
		names = append(names, l.Name())
	}
	for name, s := range b.suffixes {
		if len(s.Forms()) == 0 {
			return nil, errors.Errorf("suffixgraph: suffix %s has no forms", name)
		}
	}
	return &Graph{
		states:   b.states,
		order:    b.order,
		suffixes: b.suffixes,
		routes:   b.routes,
		layers:   names,
	}, nil
}

func (b *Builder) fail(format string, args ...any) {
	if b.err == nil {
		b.err = errors.Wrapf(errors.Errorf(format, args...), "suffixgraph: layer %s", b.layer)
	}
}

// State registers a new state.
func (b *Builder) State(name string, typ morpheme.StateType, cat lexicon.Category) *morpheme.State {
	if s, ok := b.states[name]; ok {
		b.fail("state %s registered twice", name)
		return s
	}
	s := morpheme.NewState(name, typ, cat)
	b.states[name] = s
	b.order = append(b.order, s)
	return s
}

// Lookup returns a state registered by this or an earlier layer.
func (b *Builder) Lookup(name string) *morpheme.State {
	s, ok := b.states[name]
	if !ok {
		b.fail("unknown state %s", name)
		return morpheme.NewState(name, morpheme.Transfer, lexicon.CategoryNone)
	}
	return s
}

// Has reports whether a state is registered.
func (b *Builder) Has(name string) bool {
	_, ok := b.states[name]
	return ok
}

// Suffix registers a new suffix. Forms are added on the returned value.
func (b *Builder) Suffix(name string, group *morpheme.SuffixGroup, pretty string) *morpheme.Suffix {
	if s, ok := b.suffixes[name]; ok {
		b.fail("suffix %s registered twice", name)
		return s
	}
	s := morpheme.NewSuffix(name, group, pretty)
	b.suffixes[name] = s
	return s
}

// FindSuffix returns a suffix registered by this or an earlier layer.
func (b *Builder) FindSuffix(name string) *morpheme.Suffix {
	s, ok := b.suffixes[name]
	if !ok {
		b.fail("unknown suffix %s", name)
		return morpheme.NewSuffix(name, nil, "")
	}
	return s
}

// Group returns the suffix group called name, creating it on first use.
func (b *Builder) Group(name string) *morpheme.SuffixGroup {
	g, ok := b.groups[name]
	if !ok {
		g = morpheme.NewGroup(name)
		b.groups[name] = g
	}
	return g
}

// Edge adds an output from one registered state to another.
func (b *Builder) Edge(from *morpheme.State, s *morpheme.Suffix, to *morpheme.State) {
	switch {
	case b.states[from.Name] != from:
		b.fail("edge %s: source state %s is not registered", s.Name, from.Name)
	case b.states[to.Name] != to:
		b.fail("edge %s: target state %s is not registered", s.Name, to.Name)
	case b.suffixes[s.Name] != s:
		b.fail("edge %s -> %s: suffix %s is not registered", from.Name, to.Name, s.Name)
	default:
		from.AddOutput(s, to)
	}
}

// Free registers a suffix with a single empty form and no pretty name and
// adds it as an edge. Free transitions move between states without
// consuming input or showing up in results.
func (b *Builder) Free(name string, from, to *morpheme.State, opts ...morpheme.FormOption) {
	s := b.Suffix(name, nil, "").AddForm("", opts...)
	b.Edge(from, s, to)
}

// Route adds a root route. Routes of later layers take precedence.
func (b *Builder) Route(r RootRoute) {
	b.routes = append(b.routes, r)
}

// Graph is the built suffix graph.
type Graph struct {
	states   map[string]*morpheme.State
	order    []*morpheme.State
	suffixes map[string]*morpheme.Suffix
	routes   []RootRoute
	layers   []string
}

// State returns the state called name, or nil.
func (g *Graph) State(name string) *morpheme.State {
	return g.states[name]
}

// Suffix returns the suffix called name, or nil.
func (g *Graph) Suffix(name string) *morpheme.Suffix {
	return g.suffixes[name]
}

// States returns all states in registration order.
func (g *Graph) States() []*morpheme.State {
	out := make([]*morpheme.State, len(g.order))
	copy(out, g.order)
	return out
}

// Layers returns the names of the layers the graph was built from.
func (g *Graph) Layers() []string {
	out := make([]string, len(g.layers))
	copy(out, g.layers)
	return out
}

// DefaultRootState returns the state a root starts from when it has no
// predefined paths, or nil when no layer routes it.
func (g *Graph) DefaultRootState(root *morpheme.Root) *morpheme.State {
	for i := len(g.routes) - 1; i >= 0; i-- {
		if s := g.routes[i](root); s != nil {
			return s
		}
	}
	return nil
}

// ApplicableSuffixes returns the outputs of state that c may still take:
// a suffix applied since the last derivational boundary is not offered
// again, and neither is any other member of its group.
func (g *Graph) ApplicableSuffixes(state *morpheme.State, c *morpheme.Container) []morpheme.Edge {
	window := c.TransitionsSinceDerivation()
	if len(window) == 0 {
		return state.Outputs()
	}

	out := make([]morpheme.Edge, 0, len(state.Outputs()))
	for _, e := range state.Outputs() {
		if !usedInWindow(window, e.Suffix) {
			out = append(out, e)
		}
	}
	return out
}

func usedInWindow(window []morpheme.Transition, s *morpheme.Suffix) bool {
	for _, t := range window {
		used := t.Suffix()
		if used == s || (s.Group != nil && used.Group == s.Group) {
			return true
		}
	}
	return false
}
