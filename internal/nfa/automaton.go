package nfa

import (
	"fmt"
	"slices"
	"strings"
	"sync"
)

// Automaton is a Thompson NFA with exactly one start and one accept state.
//
// The transition table is flat: state s, symbol c lives at s*257+c. Entries
// are destination sets with no particular order.
type Automaton struct {
	delta     [][]StateID
	numStates int
	start     StateID
	accept    StateID

	// Set by EliminateEpsilon.
	reduced      bool
	startClosure []StateID

	runners sync.Pool // *Runner
}

// Stats summarizes the size of an automaton.
type Stats struct {
	States       int
	SymbolEdges  int // edges labelled with a concrete byte
	EpsilonEdges int
}

// Start returns the start state.
func (a *Automaton) Start() StateID { return a.start }

// Accept returns the accept state.
func (a *Automaton) Accept() StateID { return a.accept }

// NumStates returns the number of states.
func (a *Automaton) NumStates() int { return a.numStates }

// Reduced reports whether EliminateEpsilon has run.
func (a *Automaton) Reduced() bool { return a.reduced }

// Targets returns the destination set of (s, sym). The slice belongs to the
// automaton and must not be modified.
func (a *Automaton) Targets(s StateID, sym Symbol) []StateID {
	return a.delta[slot(s, sym)]
}

// StartClosure returns the epsilon-closure of the start state, or nil before
// EliminateEpsilon. The slice must not be modified.
func (a *Automaton) StartClosure() []StateID {
	return a.startClosure
}

// Stats counts states and edges.
func (a *Automaton) Stats() Stats {
	st := Stats{States: a.numStates}
	for s := 0; s < a.numStates; s++ {
		base := s * symbolSlots
		for c := 0; c < AlphabetSize; c++ {
			st.SymbolEdges += len(a.delta[base+c])
		}
		st.EpsilonEdges += len(a.delta[base+int(Epsilon)])
	}
	return st
}

// String dumps the automaton one edge list per line, sorted by state and
// symbol, for debugging and verbose output.
func (a *Automaton) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "start=%d accept=%d states=%d", a.start, a.accept, a.numStates)
	if a.reduced {
		sb.WriteString(" reduced")
	}
	sb.WriteByte('\n')
	for s := 0; s < a.numStates; s++ {
		for sym := Symbol(0); sym < symbolSlots; sym++ {
			targets := a.delta[slot(StateID(s), sym)]
			if len(targets) == 0 {
				continue
			}
			sorted := slices.Clone(targets)
			slices.Sort(sorted)
			fmt.Fprintf(&sb, "  %d -%s-> %v\n", s, sym, sorted)
		}
	}
	return sb.String()
}
