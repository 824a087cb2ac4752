package nfa

// Accepts reports whether the whole of input is in the automaton's language.
// It panics if EliminateEpsilon has not run.
//
// Each call keeps its own state sets, so concurrent calls on one automaton
// do not interfere.
func (a *Automaton) Accepts(input []byte) bool {
	r := a.getRunner()
	defer a.runners.Put(r)
	for _, c := range input {
		if !r.step(c) {
			return false
		}
	}
	return r.Accepting()
}

// AcceptsString is Accepts for a string input.
func (a *Automaton) AcceptsString(input string) bool {
	r := a.getRunner()
	defer a.runners.Put(r)
	for i := 0; i < len(input); i++ {
		if !r.step(input[i]) {
			return false
		}
	}
	return r.Accepting()
}

func (a *Automaton) getRunner() *Runner {
	if r, ok := a.runners.Get().(*Runner); ok {
		r.Reset()
		return r
	}
	return a.NewRunner()
}

// Runner advances a set of active states one byte at a time. It lets input
// arrive in pieces, e.g. from a stream. A Runner is not safe for concurrent
// use; create one per goroutine.
type Runner struct {
	a       *Automaton
	current *stateSet
	next    *stateSet
}

// NewRunner returns a runner positioned before the first input byte. It
// panics if EliminateEpsilon has not run.
func (a *Automaton) NewRunner() *Runner {
	if !a.reduced {
		panic("nfa: matching requires EliminateEpsilon")
	}
	r := &Runner{
		a:       a,
		current: newStateSet(a.numStates),
		next:    newStateSet(a.numStates),
	}
	r.Reset()
	return r
}

// Reset rewinds the runner to the start state's epsilon-closure.
func (r *Runner) Reset() {
	r.current.clear()
	for _, s := range r.a.startClosure {
		r.current.insert(s)
	}
}

// Feed consumes p and reports whether any state is still active. Once it
// returns false no further input can lead to acceptance.
func (r *Runner) Feed(p []byte) bool {
	for _, c := range p {
		if !r.step(c) {
			return false
		}
	}
	return r.Alive()
}

// Alive reports whether any state is active.
func (r *Runner) Alive() bool {
	return r.current.len() > 0
}

// Accepting reports whether the input consumed so far is accepted.
func (r *Runner) Accepting() bool {
	return r.current.contains(r.a.accept)
}

func (r *Runner) step(c byte) bool {
	if r.current.len() == 0 {
		return false
	}
	r.next.clear()
	delta := r.a.delta
	for _, s := range r.current.dense {
		// Destination sets are already epsilon-closed.
		for _, t := range delta[slot(s, Symbol(c))] {
			r.next.insert(t)
		}
	}
	r.current, r.next = r.next, r.current
	return r.current.len() > 0
}
