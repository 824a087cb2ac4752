// Package compiler turns a parsed pattern into a reduced Thompson automaton
// and, optionally, into Go source for a standalone matcher.
package compiler

import (
	"fmt"
	"io"

	"github.com/KromDaniel/thompson/internal/nfa"
	"github.com/KromDaniel/thompson/internal/syntax"
)

// Config holds the configuration for compilation.
type Config struct {
	Pattern   string    // Source text, used in log output
	Verbose   bool      // Enable verbose logging of each compilation stage
	LogOutput io.Writer // Destination of verbose output (default stderr)
}

// Compiler runs assembly and epsilon elimination. A Compiler holds no
// per-pattern state between calls, but each call uses a fresh Builder, so
// one Compiler may be shared by goroutines.
type Compiler struct {
	config Config
	logger *Logger
}

// New creates a new compiler instance.
func New(config Config) *Compiler {
	logger := NewLogger(config.Verbose)
	logger.SetOutput(config.LogOutput)
	return &Compiler{
		config: config,
		logger: logger,
	}
}

// Logger returns the compiler's verbose logger.
func (c *Compiler) Logger() *Logger {
	return c.logger
}

// Compile assembles expr and eliminates epsilon transitions. The returned
// automaton is sealed and ready for matching.
func (c *Compiler) Compile(expr *syntax.Expression) *nfa.Automaton {
	return c.compile(expr, c.config.Pattern)
}

func (c *Compiler) compile(expr *syntax.Expression, pattern string) *nfa.Automaton {
	c.logger.Section("Assembly")
	if pattern == "" && c.logger.Enabled() {
		pattern = fmt.Sprintf("%q", expr.String())
	}
	c.logger.Log("Pattern: %s", pattern)

	b := nfa.NewBuilder()
	frag := Assemble(b, expr)
	a := b.Build(frag.Start, frag.Accept)

	c.logger.Automaton(a)

	c.logger.Section("Epsilon Elimination")
	a.EliminateEpsilon()
	c.logger.Automaton(a)
	return a
}

// CompilePattern parses pattern and compiles it. Parse errors are returned
// unchanged so callers can inspect them with errors.As.
func (c *Compiler) CompilePattern(pattern string) (*nfa.Automaton, error) {
	c.logger.Section("Parsing")
	expr, err := syntax.Parse(pattern)
	if err != nil {
		c.logger.Log("Parse failed: %v", err)
		return nil, err
	}
	return c.compile(expr, pattern), nil
}
