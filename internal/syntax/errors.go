package syntax

import (
	"errors"
	"fmt"
)

// ErrNestingTooDeep is returned when groups are nested more than
// MaxNestingDepth levels deep.
var ErrNestingTooDeep = errors.New("syntax: group nesting too deep")

// UnexpectedTokenError reports that the grammar required one specific token
// and found another.
type UnexpectedTokenError struct {
	Expected TokenKind
	Found    Token
}

func (e *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("syntax: unexpected %s at offset %d, expected %s", e.Found, e.Found.Pos, e.Expected)
}

// UnmatchedTokenError reports a token no grammar rule accepts at its
// position, such as a stray operator or an unclosed group.
type UnmatchedTokenError struct {
	Found Token
}

func (e *UnmatchedTokenError) Error() string {
	return fmt.Sprintf("syntax: unmatched %s at offset %d", e.Found, e.Found.Pos)
}
