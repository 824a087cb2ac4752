package syntax

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func lit(b byte) *Repetition { return &Repetition{Term: &Literal{Byte: b}} }

func rep(t Term, op RepeatOp) *Repetition { return &Repetition{Term: t, Op: op} }

func seq(reps ...*Repetition) *Sequence { return &Sequence{Terms: reps} }

func alt(seqs ...*Sequence) *Alternation { return &Alternation{Branches: seqs} }

func TestTokenize(t *testing.T) {
	tests := []struct {
		pattern string
		want    []Token
	}{
		{"", []Token{{Kind: TokenEOF, Pos: 0}}},
		{"a(b|c)d", []Token{
			{Kind: TokenLiteral, Byte: 'a', Pos: 0},
			{Kind: TokenLParen, Pos: 1},
			{Kind: TokenLiteral, Byte: 'b', Pos: 2},
			{Kind: TokenUnion, Pos: 3},
			{Kind: TokenLiteral, Byte: 'c', Pos: 4},
			{Kind: TokenRParen, Pos: 5},
			{Kind: TokenLiteral, Byte: 'd', Pos: 6},
			{Kind: TokenEOF, Pos: 7},
		}},
		{"a*+?", []Token{
			{Kind: TokenLiteral, Byte: 'a', Pos: 0},
			{Kind: TokenStar, Pos: 1},
			{Kind: TokenPlus, Pos: 2},
			{Kind: TokenQuestion, Pos: 3},
			{Kind: TokenEOF, Pos: 4},
		}},
		{`\*\\`, []Token{
			{Kind: TokenLiteral, Byte: '*', Pos: 0},
			{Kind: TokenLiteral, Byte: '\\', Pos: 2},
			{Kind: TokenEOF, Pos: 4},
		}},
		{`a\`, []Token{
			{Kind: TokenLiteral, Byte: 'a', Pos: 0},
			{Kind: TokenLiteral, Byte: '\\', Pos: 1},
			{Kind: TokenEOF, Pos: 2},
		}},
		{"\xff", []Token{
			{Kind: TokenLiteral, Byte: 0xff, Pos: 0},
			{Kind: TokenEOF, Pos: 1},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			got := Tokenize(tt.pattern)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Tokenize(%q) mismatch (-want +got):\n%s", tt.pattern, diff)
			}
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		pattern string
		want    *Alternation
	}{
		{"", alt(seq())},
		{"a", alt(seq(lit('a')))},
		{"ab", alt(seq(lit('a'), lit('b')))},
		{"a|b", alt(seq(lit('a')), seq(lit('b')))},
		{"a|", alt(seq(lit('a')), seq())},
		{"|", alt(seq(), seq())},
		{"()", alt(seq(rep(&Group{Alt: alt(seq())}, RepeatNone)))},
		{"a*", alt(seq(rep(&Literal{Byte: 'a'}, ZeroOrMore)))},
		{"a+b?", alt(seq(rep(&Literal{Byte: 'a'}, OneOrMore), rep(&Literal{Byte: 'b'}, ZeroOrOne)))},
		{"(ab)+", alt(seq(rep(&Group{Alt: alt(seq(lit('a'), lit('b')))}, OneOrMore)))},
		{"a*(b|c)d", alt(seq(
			rep(&Literal{Byte: 'a'}, ZeroOrMore),
			rep(&Group{Alt: alt(seq(lit('b')), seq(lit('c')))}, RepeatNone),
			lit('d'),
		))},
		{`\*`, alt(seq(lit('*')))},
		{`\(a\)`, alt(seq(lit('('), lit('a'), lit(')')))},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			got, err := Parse(tt.pattern)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.pattern, err)
			}
			if diff := cmp.Diff(&Expression{Alt: tt.want}, got); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.pattern, diff)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		pattern    string
		unexpected bool // UnexpectedTokenError, otherwise UnmatchedTokenError
		found      TokenKind
		pos        int
	}{
		{"*", false, TokenStar, 0},
		{"a**", false, TokenStar, 2},
		{"a|+", false, TokenPlus, 2},
		{"(?)", false, TokenQuestion, 1},
		{"(ab", false, TokenEOF, 3},
		{"((a)", false, TokenEOF, 4},
		{"a)", true, TokenRParen, 1},
		{"(a))", true, TokenRParen, 3},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			_, err := Parse(tt.pattern)
			if err == nil {
				t.Fatalf("Parse(%q) succeeded, want error", tt.pattern)
			}

			var found Token
			if tt.unexpected {
				var ue *UnexpectedTokenError
				if !errors.As(err, &ue) {
					t.Fatalf("Parse(%q) error = %T %v, want *UnexpectedTokenError", tt.pattern, err, err)
				}
				if ue.Expected != TokenEOF {
					t.Errorf("Expected = %s, want %s", ue.Expected, TokenEOF)
				}
				found = ue.Found
			} else {
				var ue *UnmatchedTokenError
				if !errors.As(err, &ue) {
					t.Fatalf("Parse(%q) error = %T %v, want *UnmatchedTokenError", tt.pattern, err, err)
				}
				found = ue.Found
			}
			if found.Kind != tt.found || found.Pos != tt.pos {
				t.Errorf("Found = %v@%d, want %v@%d", found.Kind, found.Pos, tt.found, tt.pos)
			}
		})
	}
}

func TestParseNestingDepth(t *testing.T) {
	ok := strings.Repeat("(", MaxNestingDepth) + "a" + strings.Repeat(")", MaxNestingDepth)
	if _, err := Parse(ok); err != nil {
		t.Fatalf("nesting at the limit: unexpected error %v", err)
	}

	deep := "(" + ok + ")"
	_, err := Parse(deep)
	if !errors.Is(err, ErrNestingTooDeep) {
		t.Fatalf("nesting beyond the limit: error = %v, want ErrNestingTooDeep", err)
	}
}

func TestParseTokensAppendsEOF(t *testing.T) {
	tokens := []Token{{Kind: TokenLiteral, Byte: 'x', Pos: 0}}
	got, err := ParseTokens(tokens)
	if err != nil {
		t.Fatalf("ParseTokens error: %v", err)
	}
	if got.String() != "x" {
		t.Errorf("String() = %q, want %q", got.String(), "x")
	}
	if len(tokens) != 1 {
		t.Errorf("ParseTokens modified its input: %v", tokens)
	}
}

func TestStringRoundTrip(t *testing.T) {
	patterns := []string{
		"", "a", "a|b", "a*(b|c)d", "(ab)+", "(ab)?", "a?a?aa",
		`\*`, `\\`, `\(\)`, "a||b", "(|a)*", "((a|b)*c)+",
	}

	for _, pattern := range patterns {
		t.Run(pattern, func(t *testing.T) {
			first, err := Parse(pattern)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", pattern, err)
			}
			rendered := first.String()
			second, err := Parse(rendered)
			if err != nil {
				t.Fatalf("Parse(%q) of rendered tree error: %v", rendered, err)
			}
			if diff := cmp.Diff(first, second); diff != "" {
				t.Errorf("round trip of %q via %q changed the tree (-first +second):\n%s", pattern, rendered, diff)
			}
		})
	}
}

func TestErrorMessages(t *testing.T) {
	_, err := Parse("a)")
	if got := err.Error(); !strings.Contains(got, "unexpected ')'") || !strings.Contains(got, "offset 1") {
		t.Errorf("UnexpectedTokenError message = %q", got)
	}

	_, err = Parse("(a")
	if got := err.Error(); !strings.Contains(got, "unmatched end of pattern") {
		t.Errorf("UnmatchedTokenError message = %q", got)
	}
}
