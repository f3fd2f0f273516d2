package lexer

import "fmt"

type TokenType int

const (
	// Special
	EOF TokenType = iota
	ILLEGAL

	// Identifiers + literals
	IDENT
	INT

	// Keywords
	KW_INT
	KW_RETURN

	// Symbols
	LPAREN // (
	RPAREN // )
	LBRACE // {
	RBRACE // }
	SEMI   // ;

	// Unary operators
	MINUS // -
	TILDE // ~
	BANG  // !
)

var tokenNames = [...]string{
	EOF:       "EOF",
	ILLEGAL:   "ILLEGAL",
	IDENT:     "identifier",
	INT:       "int literal",
	KW_INT:    "'int'",
	KW_RETURN: "'return'",
	LPAREN:    "'('",
	RPAREN:    "')'",
	LBRACE:    "'{'",
	RBRACE:    "'}'",
	SEMI:      "';'",
	MINUS:     "'-'",
	TILDE:     "'~'",
	BANG:      "'!'",
}

func (t TokenType) String() string {
	if t >= 0 && int(t) < len(tokenNames) {
		return tokenNames[t]
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

// IsUnaryOp reports whether t is one of the prefix operators -, ~ or !.
func (t TokenType) IsUnaryOp() bool {
	return t == MINUS || t == TILDE || t == BANG
}

type Token struct {
	Type TokenType
	Lex  string
	Line int
	Col  int
}

func (t Token) Is(op TokenType) bool { return t.Type == op }

func (t Token) String() string {
	return fmt.Sprintf("%v %q at %d:%d", t.Type, t.Lex, t.Line, t.Col)
}
