package syntax

import "fmt"

// MaxNestingDepth bounds how deeply groups may nest. Parsing and automaton
// assembly both recurse once per level.
const MaxNestingDepth = 1000

// Parse tokenizes and parses pattern.
//
// The grammar is:
//
//	expr := alt EOF
//	alt  := seq ('|' seq)*
//	seq  := rep*
//	rep  := term ('*' | '+' | '?')?
//	term := LITERAL | '(' alt ')'
//
// An empty pattern, an empty branch ("a|") and an empty group ("()") all
// denote the Empty sequence.
func Parse(pattern string) (*Expression, error) {
	return ParseTokens(Tokenize(pattern))
}

// ParseTokens parses an already tokenized pattern. A missing trailing
// TokenEOF is supplied.
func ParseTokens(tokens []Token) (*Expression, error) {
	if n := len(tokens); n == 0 || tokens[n-1].Kind != TokenEOF {
		pos := 0
		if n > 0 {
			pos = tokens[n-1].Pos + 1
		}
		tokens = append(tokens[:n:n], Token{Kind: TokenEOF, Pos: pos})
	}
	p := &parser{tokens: tokens}
	return p.expression()
}

type parser struct {
	tokens []Token
	pos    int
	depth  int
}

func (p *parser) peek() Token {
	return p.tokens[p.pos]
}

func (p *parser) next() Token {
	tok := p.tokens[p.pos]
	if tok.Kind != TokenEOF {
		p.pos++
	}
	return tok
}

func (p *parser) expect(kind TokenKind) error {
	tok := p.peek()
	if tok.Kind != kind {
		return &UnexpectedTokenError{Expected: kind, Found: tok}
	}
	p.next()
	return nil
}

func (p *parser) expression() (*Expression, error) {
	alt, err := p.alternation()
	if err != nil {
		return nil, err
	}
	if err := p.expect(TokenEOF); err != nil {
		return nil, err
	}
	return &Expression{Alt: alt}, nil
}

func (p *parser) alternation() (*Alternation, error) {
	seq, err := p.sequence()
	if err != nil {
		return nil, err
	}
	alt := &Alternation{Branches: []*Sequence{seq}}
	for p.peek().Kind == TokenUnion {
		p.next()
		if seq, err = p.sequence(); err != nil {
			return nil, err
		}
		alt.Branches = append(alt.Branches, seq)
	}
	return alt, nil
}

func (p *parser) sequence() (*Sequence, error) {
	seq := &Sequence{}
	for {
		switch p.peek().Kind {
		case TokenUnion, TokenRParen, TokenEOF:
			return seq, nil
		}
		rep, err := p.repetition()
		if err != nil {
			return nil, err
		}
		seq.Terms = append(seq.Terms, rep)
	}
}

func (p *parser) repetition() (*Repetition, error) {
	term, err := p.term()
	if err != nil {
		return nil, err
	}
	rep := &Repetition{Term: term}
	switch p.peek().Kind {
	case TokenStar:
		rep.Op = ZeroOrMore
	case TokenPlus:
		rep.Op = OneOrMore
	case TokenQuestion:
		rep.Op = ZeroOrOne
	default:
		return rep, nil
	}
	p.next()
	return rep, nil
}

func (p *parser) term() (Term, error) {
	tok := p.peek()
	switch tok.Kind {
	case TokenLiteral:
		p.next()
		return &Literal{Byte: tok.Byte}, nil
	case TokenLParen:
		if p.depth >= MaxNestingDepth {
			return nil, fmt.Errorf("offset %d: %w", tok.Pos, ErrNestingTooDeep)
		}
		p.depth++
		p.next()
		alt, err := p.alternation()
		if err != nil {
			return nil, err
		}
		// The only token that can stop an alternation short of ')' is EOF.
		if p.peek().Kind != TokenRParen {
			return nil, &UnmatchedTokenError{Found: p.peek()}
		}
		p.next()
		p.depth--
		return &Group{Alt: alt}, nil
	}
	return nil, &UnmatchedTokenError{Found: tok}
}
