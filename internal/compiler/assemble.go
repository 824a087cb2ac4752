package compiler

import (
	"fmt"

	"github.com/KromDaniel/thompson/internal/nfa"
	"github.com/KromDaniel/thompson/internal/syntax"
)

// Fragment is the entry/exit pair of an assembled sub-automaton. The
// language accepted between Start and Accept equals the language of the
// subtree it was built from.
type Fragment struct {
	Start  nfa.StateID
	Accept nfa.StateID
}

// Assemble applies Thompson's construction to expr, allocating states and
// edges in b. Every operator introduces exactly two fresh boundary states;
// groups reuse the fragment of their inner alternation. It never fails on a
// tree produced by the syntax package.
func Assemble(b *nfa.Builder, expr *syntax.Expression) Fragment {
	as := assembler{b: b}
	return as.alternation(expr.Alt)
}

type assembler struct {
	b *nfa.Builder
}

func (as *assembler) pair() (nfa.StateID, nfa.StateID) {
	return as.b.NewState(), as.b.NewState()
}

func (as *assembler) epsilon(from, to nfa.StateID) {
	as.b.AddTransition(from, to, nfa.Epsilon)
}

// alternation: q -ε-> each branch start, each branch accept -ε-> f.
func (as *assembler) alternation(alt *syntax.Alternation) Fragment {
	q, f := as.pair()
	for _, branch := range alt.Branches {
		frag := as.sequence(branch)
		as.epsilon(q, frag.Start)
		as.epsilon(frag.Accept, f)
	}
	return Fragment{Start: q, Accept: f}
}

// sequence: the Empty sequence is q -ε-> f; otherwise the terms are chained
// q -ε-> s1, a1 -ε-> s2, ..., an -ε-> f.
func (as *assembler) sequence(seq *syntax.Sequence) Fragment {
	q, f := as.pair()
	prev := q
	for _, rep := range seq.Terms {
		frag := as.repetition(rep)
		as.epsilon(prev, frag.Start)
		prev = frag.Accept
	}
	as.epsilon(prev, f)
	return Fragment{Start: q, Accept: f}
}

func (as *assembler) repetition(rep *syntax.Repetition) Fragment {
	inner := as.term(rep.Term)
	if rep.Op == syntax.RepeatNone {
		return inner
	}

	q, f := as.pair()
	switch rep.Op {
	case syntax.ZeroOrMore:
		as.epsilon(q, inner.Start)
		as.epsilon(q, f)
		as.epsilon(inner.Accept, inner.Start)
		as.epsilon(inner.Accept, f)
	case syntax.OneOrMore:
		as.epsilon(q, inner.Start)
		as.epsilon(inner.Accept, f)
		as.epsilon(inner.Accept, inner.Start)
	case syntax.ZeroOrOne:
		as.epsilon(q, inner.Start)
		as.epsilon(q, f)
		as.epsilon(inner.Accept, f)
	default:
		panic(fmt.Sprintf("compiler: unknown repetition operator %d", rep.Op))
	}
	return Fragment{Start: q, Accept: f}
}

func (as *assembler) term(t syntax.Term) Fragment {
	switch t := t.(type) {
	case *syntax.Literal:
		q, f := as.pair()
		as.b.AddTransition(q, f, nfa.ByteSymbol(t.Byte))
		return Fragment{Start: q, Accept: f}
	case *syntax.Group:
		return as.alternation(t.Alt)
	default:
		panic(fmt.Sprintf("compiler: unknown term %T", t))
	}
}
