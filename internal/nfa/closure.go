package nfa

import "slices"

// EliminateEpsilon folds epsilon-closures into the byte transitions: every
// non-empty destination set D of (state, byte) becomes closure(D). Epsilon
// edges stay in the table; the matcher only uses them through the start
// state's closure, which is computed here as well.
//
// The pass runs once. Later calls do nothing, and afterwards the automaton is
// read-only.
func (a *Automaton) EliminateEpsilon() {
	if a.reduced {
		return
	}
	w := newClosureWalker(a.numStates)
	for s := 0; s < a.numStates; s++ {
		base := s * symbolSlots
		for c := 0; c < AlphabetSize; c++ {
			direct := a.delta[base+c]
			if len(direct) == 0 {
				continue
			}
			// Only epsilon slots are read by the walk, so rewriting byte
			// slots in place cannot affect later closures.
			a.delta[base+c] = w.closure(a, direct)
		}
	}
	a.startClosure = w.closure(a, []StateID{a.start})
	a.reduced = true
}

// EpsilonClosure returns, in ascending order, the states reachable from
// states by zero or more epsilon transitions.
func (a *Automaton) EpsilonClosure(states []StateID) []StateID {
	closure := newClosureWalker(a.numStates).closure(a, states)
	slices.Sort(closure)
	return closure
}

// closureWalker computes epsilon-closures with an explicit stack. The
// visited set makes it terminate on the epsilon cycles that repetition
// operators create.
type closureWalker struct {
	visited *stateSet
	stack   []StateID
}

func newClosureWalker(numStates int) *closureWalker {
	return &closureWalker{visited: newStateSet(numStates)}
}

func (w *closureWalker) closure(a *Automaton, roots []StateID) []StateID {
	w.visited.clear()
	w.stack = w.stack[:0]
	for _, s := range roots {
		if w.visited.insert(s) {
			w.stack = append(w.stack, s)
		}
	}
	for len(w.stack) > 0 {
		s := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]
		for _, t := range a.delta[slot(s, Epsilon)] {
			if w.visited.insert(t) {
				w.stack = append(w.stack, t)
			}
		}
	}
	return slices.Clone(w.visited.dense)
}
