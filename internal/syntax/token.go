package syntax

import "fmt"

// TokenKind identifies the lexical class of a Token.
type TokenKind uint8

const (
	TokenLiteral  TokenKind = iota // a single byte matched literally
	TokenUnion                     // |
	TokenStar                      // *
	TokenPlus                      // +
	TokenQuestion                  // ?
	TokenLParen                    // (
	TokenRParen                    // )
	TokenEOF                       // end of pattern
)

var tokenKindNames = [...]string{
	TokenLiteral:  "literal",
	TokenUnion:    "'|'",
	TokenStar:     "'*'",
	TokenPlus:     "'+'",
	TokenQuestion: "'?'",
	TokenLParen:   "'('",
	TokenRParen:   "')'",
	TokenEOF:      "end of pattern",
}

func (k TokenKind) String() string {
	if int(k) < len(tokenKindNames) {
		return tokenKindNames[k]
	}
	return fmt.Sprintf("TokenKind(%d)", k)
}

// Token is one lexical unit of a pattern.
type Token struct {
	Kind TokenKind
	Byte byte // set for TokenLiteral only
	Pos  int  // byte offset of the token in the pattern text
}

func (t Token) String() string {
	if t.Kind == TokenLiteral {
		return fmt.Sprintf("literal %q", t.Byte)
	}
	return t.Kind.String()
}

// Tokenize splits pattern into tokens. The result always ends with a single
// TokenEOF. A backslash turns the following byte into a literal, whatever it
// is; a backslash at the very end of the pattern is a literal backslash.
//
// Tokenizing never fails: every byte sequence has a token stream.
func Tokenize(pattern string) []Token {
	tokens := make([]Token, 0, len(pattern)+1)
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		tok := Token{Pos: i}
		switch c {
		case '|':
			tok.Kind = TokenUnion
		case '*':
			tok.Kind = TokenStar
		case '+':
			tok.Kind = TokenPlus
		case '?':
			tok.Kind = TokenQuestion
		case '(':
			tok.Kind = TokenLParen
		case ')':
			tok.Kind = TokenRParen
		case '\\':
			tok.Kind = TokenLiteral
			tok.Byte = '\\'
			if i+1 < len(pattern) {
				i++
				tok.Byte = pattern[i]
			}
		default:
			tok.Kind = TokenLiteral
			tok.Byte = c
		}
		tokens = append(tokens, tok)
	}
	return append(tokens, Token{Kind: TokenEOF, Pos: len(pattern)})
}

// isMeta reports whether b has operator meaning and must be escaped to be
// read back as a literal.
func isMeta(b byte) bool {
	switch b {
	case '|', '*', '+', '?', '(', ')', '\\':
		return true
	}
	return false
}
