// Package morpheme holds the building blocks of a parse: graph states,
// suffixes with their templated forms and conditions, roots, and the
// Container that accumulates one parse branch.
//
// States, suffixes and roots are built once and shared read-only by all
// parses. Containers are immutable values; every successful suffix
// application produces a new Container that shares its history with the
// parent.
package morpheme

import (
	"fmt"

	"github.com/az-ai-labs/turkmorph/lexicon"
)

// StateType classifies a graph state.
type StateType int

const (
	// Transfer states pass the parse on without changing category.
	Transfer StateType = iota
	// Derivational states are followed by suffixes that change category.
	// Suffix-group bookkeeping restarts after leaving one.
	Derivational
	// Terminal states may end a parse once the input is consumed.
	Terminal
)

func (t StateType) String() string {
	switch t {
	case Transfer:
		return "TRANSFER"
	case Derivational:
		return "DERIVATIONAL"
	case Terminal:
		return "TERMINAL"
	default:
		return fmt.Sprintf("StateType(%d)", int(t))
	}
}

// State is a node of the suffix graph.
type State struct {
	Name     string
	Type     StateType
	Category lexicon.Category

	outputs []Edge
}

// Edge is an outgoing (suffix, target state) pair.
type Edge struct {
	Suffix *Suffix
	To     *State
}

// NewState returns a state without outputs.
func NewState(name string, typ StateType, cat lexicon.Category) *State {
	return &State{Name: name, Type: typ, Category: cat}
}

// AddOutput appends an outgoing edge. Only graph builders call it; a state
// must not be modified once parsing starts.
func (s *State) AddOutput(suffix *Suffix, to *State) {
	s.outputs = append(s.outputs, Edge{Suffix: suffix, To: to})
}

// Outputs returns the outgoing edges in registration order. The slice is
// shared and must not be modified.
func (s *State) Outputs() []Edge {
	return s.outputs
}

func (s *State) String() string {
	return s.Name
}
