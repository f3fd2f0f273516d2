package parser

import (
	"errors"
	"fmt"

	"github.com/tinyrange/ucc/internal/lexer"
)

// ErrUnexpectedEOF is wrapped by every *EOFError.
var ErrUnexpectedEOF = errors.New("unexpected end of input")

// SyntaxError is a token of the wrong category where the grammar needs a
// specific one.
type SyntaxError struct {
	Expected string
	Got      lexer.Token
}

func (e *SyntaxError) Error() string {
	if e.Got.Lex == "" {
		return fmt.Sprintf("expected %s, got %v at %d:%d", e.Expected, e.Got.Type, e.Got.Line, e.Got.Col)
	}
	return fmt.Sprintf("expected %s, got %v %q at %d:%d", e.Expected, e.Got.Type, e.Got.Lex, e.Got.Line, e.Got.Col)
}

// EOFError means the token stream ran out before a rule was complete.
type EOFError struct {
	Expected string
}

func (e *EOFError) Error() string {
	return fmt.Sprintf("%v: expected %s", ErrUnexpectedEOF, e.Expected)
}

func (e *EOFError) Unwrap() error { return ErrUnexpectedEOF }

// LiteralError is an integer literal that does not fit in an int.
type LiteralError struct {
	Tok lexer.Token
	Err error
}

func (e *LiteralError) Error() string {
	return fmt.Sprintf("invalid integer literal %q at %d:%d: %v", e.Tok.Lex, e.Tok.Line, e.Tok.Col, e.Err)
}

func (e *LiteralError) Unwrap() error { return e.Err }
