package nfa

import "fmt"

// Builder is the mutable construction context used while assembling an
// automaton. It is not safe for concurrent use and is consumed by Build.
type Builder struct {
	delta     [][]StateID
	numStates int
	built     bool
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// NewState allocates the next state with an empty destination set for every
// symbol, Epsilon included.
func (b *Builder) NewState() StateID {
	b.mustBeOpen()
	id := StateID(b.numStates)
	b.numStates++
	b.delta = append(b.delta, make([][]StateID, symbolSlots)...)
	return id
}

// AddTransition records from -sym-> to. Adding an edge that already exists
// is a no-op. Both states must have been allocated by this builder.
func (b *Builder) AddTransition(from, to StateID, sym Symbol) {
	b.mustBeOpen()
	idx := slot(from, sym)
	for _, existing := range b.delta[idx] {
		if existing == to {
			return
		}
	}
	b.delta[idx] = append(b.delta[idx], to)
}

// NumStates returns the number of states allocated so far.
func (b *Builder) NumStates() int {
	return b.numStates
}

// Build seals the builder and returns the automaton with the given start and
// accept states. The builder must not be used afterwards.
func (b *Builder) Build(start, accept StateID) *Automaton {
	b.mustBeOpen()
	if !b.allocated(start) || !b.allocated(accept) {
		panic(fmt.Sprintf("nfa: Build(%d, %d) with %d allocated states", start, accept, b.numStates))
	}
	b.built = true
	a := &Automaton{
		delta:     b.delta,
		numStates: b.numStates,
		start:     start,
		accept:    accept,
	}
	b.delta = nil
	return a
}

func (b *Builder) allocated(s StateID) bool {
	return s.Valid() && int(s) < b.numStates
}

func (b *Builder) mustBeOpen() {
	if b.built {
		panic("nfa: Builder used after Build")
	}
}

func slot(s StateID, sym Symbol) int {
	return int(s)*symbolSlots + int(sym)
}
