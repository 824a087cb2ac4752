// Package thompson compiles a small regular-expression language into a
// Thompson automaton and decides whole-input membership.
//
// The language has byte literals, concatenation, alternation (|), grouping
// and the postfix operators *, + and ?. A backslash makes the next byte a
// literal. A pattern matches an input only if the entire input is consumed;
// there is no substring search.
//
//	re := thompson.MustCompile("a*(b|c)d")
//	re.MatchString("aaacd") // true
//	re.MatchString("aaac")  // false
package thompson

import (
	"io"
	"strconv"

	"github.com/KromDaniel/thompson/internal/compiler"
	"github.com/KromDaniel/thompson/metrics"
	"github.com/KromDaniel/thompson/internal/nfa"
	"github.com/KromDaniel/thompson/internal/syntax"
	"github.com/KromDaniel/thompson/stream"
)

// Parse errors. Use errors.As to inspect the offending token.
type (
	UnexpectedTokenError = syntax.UnexpectedTokenError
	UnmatchedTokenError  = syntax.UnmatchedTokenError
	Token                = syntax.Token
	TokenKind            = syntax.TokenKind
)

// ErrNestingTooDeep is returned when groups nest deeper than MaxNestingDepth.
var ErrNestingTooDeep = syntax.ErrNestingTooDeep

// MaxNestingDepth is the deepest group nesting a pattern may use.
const MaxNestingDepth = syntax.MaxNestingDepth

// Options configures compilation.
type Options struct {
	// Verbose logs each compilation stage to LogOutput.
	Verbose bool

	// LogOutput receives verbose output (default os.Stderr).
	LogOutput io.Writer

	// Metrics records compile and match outcomes. May be nil.
	Metrics *metrics.Collector
}

// Regexp is a compiled pattern. It is safe for concurrent use.
type Regexp struct {
	pattern   string
	automaton *nfa.Automaton
	metrics   *metrics.Collector
}

// Compile parses pattern and builds its automaton.
func Compile(pattern string) (*Regexp, error) {
	return CompileWith(pattern, Options{})
}

// CompileWith is like Compile but takes options.
func CompileWith(pattern string, opts Options) (*Regexp, error) {
	c := compiler.New(compiler.Config{
		Pattern:   pattern,
		Verbose:   opts.Verbose,
		LogOutput: opts.LogOutput,
	})
	a, err := c.CompilePattern(pattern)
	if err != nil {
		opts.Metrics.RecordCompile(0, err)
		return nil, err
	}
	opts.Metrics.RecordCompile(a.NumStates(), nil)
	return &Regexp{
		pattern:   pattern,
		automaton: a,
		metrics:   opts.Metrics,
	}, nil
}

// MustCompile is like Compile but panics if the pattern cannot be parsed.
func MustCompile(pattern string) *Regexp {
	re, err := Compile(pattern)
	if err != nil {
		panic(`thompson: Compile(` + quote(pattern) + `): ` + err.Error())
	}
	return re
}

// MatchString reports whether s as a whole matches the pattern.
func (re *Regexp) MatchString(s string) bool {
	ok := re.automaton.AcceptsString(s)
	re.metrics.RecordMatch(ok)
	return ok
}

// Match reports whether b as a whole matches the pattern.
func (re *Regexp) Match(b []byte) bool {
	ok := re.automaton.Accepts(b)
	re.metrics.RecordMatch(ok)
	return ok
}

// MatchReader reports whether everything read from r matches the pattern.
// Reading stops early once no continuation can match.
func (re *Regexp) MatchReader(r io.Reader, cfg stream.Config) (bool, error) {
	ok, err := stream.Accepts(r, re.automaton.NewRunner(), cfg)
	if err != nil {
		return false, err
	}
	re.metrics.RecordMatch(ok)
	return ok, nil
}

// String returns the source pattern.
func (re *Regexp) String() string {
	return re.pattern
}

// NumStates returns the number of states in the compiled automaton.
func (re *Regexp) NumStates() int {
	return re.automaton.NumStates()
}

// Dump returns a human-readable listing of the automaton's transitions.
func (re *Regexp) Dump() string {
	return re.automaton.String()
}

func quote(s string) string {
	if strconv.CanBackquote(s) {
		return "`" + s + "`"
	}
	return strconv.Quote(s)
}
