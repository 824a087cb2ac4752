// Package nfa holds the automaton produced by Thompson construction: a
// builder that allocates states and records transitions, the
// epsilon-elimination pass, and the subset-simulation matcher.
//
// An Automaton goes through two phases. While a Builder owns it, it grows
// monotonically and must not be shared. After Builder.Build and
// EliminateEpsilon it is immutable and safe for concurrent matching.
package nfa

import "fmt"

// StateID is a dense, 0-based state handle.
type StateID int32

// InvalidState marks an unset start or accept state.
const InvalidState StateID = -1

// Valid reports whether s refers to an allocated state slot.
func (s StateID) Valid() bool { return s >= 0 }

// Symbol labels a transition: either one concrete byte or Epsilon. Epsilon
// lives outside the byte range, so every byte value is usable as a literal.
type Symbol uint16

const (
	// AlphabetSize is the number of concrete symbols.
	AlphabetSize = 256

	// Epsilon labels transitions taken without consuming input.
	Epsilon Symbol = AlphabetSize

	// symbolSlots is the per-state width of the transition table.
	symbolSlots = AlphabetSize + 1
)

// ByteSymbol returns the concrete symbol for b.
func ByteSymbol(b byte) Symbol { return Symbol(b) }

// IsEpsilon reports whether s is the Epsilon marker.
func (s Symbol) IsEpsilon() bool { return s == Epsilon }

// Byte returns the concrete byte of s. It is meaningless for Epsilon.
func (s Symbol) Byte() byte { return byte(s) }

func (s Symbol) String() string {
	if s.IsEpsilon() {
		return "ε"
	}
	if s > Epsilon {
		return fmt.Sprintf("Symbol(%d)", uint16(s))
	}
	if b := byte(s); b >= 0x20 && b < 0x7f {
		return fmt.Sprintf("%q", rune(b))
	}
	return fmt.Sprintf(`'\x%02x'`, byte(s))
}
