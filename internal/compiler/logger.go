package compiler

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/KromDaniel/thompson/internal/nfa"
)

// Logger provides verbose output describing each compilation stage. Writes
// are serialized, so a Logger shared by goroutines does not interleave lines.
type Logger struct {
	enabled bool

	mu  sync.Mutex
	out io.Writer
}

// NewLogger creates a new logger instance writing to stderr.
func NewLogger(enabled bool) *Logger {
	return &Logger{
		enabled: enabled,
		out:     os.Stderr,
	}
}

// SetOutput sets the output writer for the logger. A nil writer keeps the
// current one.
func (l *Logger) SetOutput(w io.Writer) {
	if w == nil {
		return
	}
	l.mu.Lock()
	l.out = w
	l.mu.Unlock()
}

// Log prints a formatted message if verbose mode is enabled.
func (l *Logger) Log(format string, args ...interface{}) {
	if !l.enabled {
		return
	}
	l.write("[thompson] " + fmt.Sprintf(format, args...) + "\n")
}

// Section prints a section header if verbose mode is enabled.
func (l *Logger) Section(name string) {
	if !l.enabled {
		return
	}
	l.write("\n[thompson] === " + name + " ===\n")
}

// Automaton logs the size of a, and its full transition listing once
// epsilon edges have been folded in.
func (l *Logger) Automaton(a *nfa.Automaton) {
	if !l.enabled {
		return
	}
	st := a.Stats()
	if !a.Reduced() {
		l.Log("States: %d (start %d, accept %d)", st.States, a.Start(), a.Accept())
		l.Log("Edges: %d byte, %d epsilon", st.SymbolEdges, st.EpsilonEdges)
		return
	}
	l.Log("Byte edges after closure: %d", st.SymbolEdges)
	l.Log("Start closure: %v", a.StartClosure())
	l.Log("Automaton:\n%s", a)
}

// Enabled returns whether the logger is enabled.
func (l *Logger) Enabled() bool {
	return l.enabled
}

func (l *Logger) write(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	io.WriteString(l.out, s)
}
