// Package syntax turns pattern text into the tree consumed by the automaton
// compiler.
//
// The supported language is deliberately small: literal bytes, grouping with
// parentheses, alternation with '|', and the three postfix repetition
// operators '*', '+' and '?'. A backslash escapes the next byte. There are no
// character classes, anchors or captures.
//
// Every node exclusively owns its children and the tree is never mutated
// after Parse returns.
package syntax

import "strings"

// RepeatOp is the postfix operator applied to a term.
type RepeatOp uint8

const (
	RepeatNone RepeatOp = iota
	ZeroOrMore          // *
	OneOrMore           // +
	ZeroOrOne           // ?
)

func (op RepeatOp) String() string {
	switch op {
	case ZeroOrMore:
		return "*"
	case OneOrMore:
		return "+"
	case ZeroOrOne:
		return "?"
	}
	return ""
}

// Expression is the root of a parsed pattern.
type Expression struct {
	Alt *Alternation
}

// Alternation matches if any of its branches matches. It always has at
// least one branch.
type Alternation struct {
	Branches []*Sequence
}

// Sequence is the concatenation of its terms. A sequence with no terms is
// the Empty sequence and matches only the empty string.
type Sequence struct {
	Terms []*Repetition
}

// Repetition is a term with an optional repetition operator.
type Repetition struct {
	Term Term
	Op   RepeatOp
}

// Term is either a *Literal or a *Group. The set is closed; callers switch
// over the two concrete types.
type Term interface {
	term()
	writeTo(sb *strings.Builder)
}

// Literal matches exactly one byte.
type Literal struct {
	Byte byte
}

// Group is a parenthesized alternation.
type Group struct {
	Alt *Alternation
}

func (*Literal) term() {}
func (*Group) term()   {}

// String renders the tree back to pattern text. Operator bytes inside
// literals are escaped, so Parse(e.String()) yields an equivalent tree.
func (e *Expression) String() string {
	var sb strings.Builder
	e.Alt.writeTo(&sb)
	return sb.String()
}

func (a *Alternation) String() string {
	var sb strings.Builder
	a.writeTo(&sb)
	return sb.String()
}

func (a *Alternation) writeTo(sb *strings.Builder) {
	for i, branch := range a.Branches {
		if i > 0 {
			sb.WriteByte('|')
		}
		branch.writeTo(sb)
	}
}

func (s *Sequence) writeTo(sb *strings.Builder) {
	for _, rep := range s.Terms {
		rep.Term.writeTo(sb)
		sb.WriteString(rep.Op.String())
	}
}

func (l *Literal) writeTo(sb *strings.Builder) {
	if isMeta(l.Byte) {
		sb.WriteByte('\\')
	}
	sb.WriteByte(l.Byte)
}

func (g *Group) writeTo(sb *strings.Builder) {
	sb.WriteByte('(')
	g.Alt.writeTo(sb)
	sb.WriteByte(')')
}
