package parser

import (
	"fmt"
	"strconv"

	"github.com/tinyrange/ucc/internal/ast"
	"github.com/tinyrange/ucc/internal/lexer"
)

// Parser consumes a token slice front to back. Each token is popped once;
// parseExpr is the only rule that peeks.
type Parser struct {
	toks []lexer.Token
}

func New(toks []lexer.Token) *Parser {
	return &Parser{toks: toks}
}

// ParseFile lexes and parses src. Errors are prefixed with filename.
func ParseFile(filename, src string) (*ast.Program, error) {
	toks, err := lexer.Tokenize(src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	prog, err := ParseTokens(toks)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return prog, nil
}

// ParseTokens builds a Program from toks, which must not contain EOF.
func ParseTokens(toks []lexer.Token) (*ast.Program, error) {
	return New(toks).ParseProgram()
}

func (p *Parser) pop(expected string) (lexer.Token, error) {
	if len(p.toks) == 0 {
		return lexer.Token{}, &EOFError{Expected: expected}
	}
	t := p.toks[0]
	p.toks = p.toks[1:]
	return t, nil
}

func (p *Parser) advance() { p.toks = p.toks[1:] }

func (p *Parser) peek() (lexer.Token, bool) {
	if len(p.toks) == 0 {
		return lexer.Token{}, false
	}
	return p.toks[0], true
}

func (p *Parser) expect(tt lexer.TokenType) (lexer.Token, error) {
	t, err := p.pop(tt.String())
	if err != nil {
		return lexer.Token{}, err
	}
	if t.Type != tt {
		return lexer.Token{}, &SyntaxError{Expected: tt.String(), Got: t}
	}
	return t, nil
}

// ParseProgram parses `Function EOF`.
func (p *Parser) ParseProgram() (*ast.Program, error) {
	fn, err := p.parseFunction()
	if err != nil {
		return nil, err
	}
	if t, ok := p.peek(); ok {
		return nil, &SyntaxError{Expected: lexer.EOF.String(), Got: t}
	}
	return &ast.Program{Func: fn}, nil
}

func (p *Parser) parseFunction() (*ast.Function, error) {
	if _, err := p.expect(lexer.KW_INT); err != nil {
		return nil, err
	}
	nameTok, err := p.expect(lexer.IDENT)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.LBRACE); err != nil {
		return nil, err
	}
	body, err := p.parseReturn()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RBRACE); err != nil {
		return nil, err
	}
	return &ast.Function{Name: nameTok.Lex, Body: body}, nil
}

func (p *Parser) parseReturn() (*ast.ReturnStmt, error) {
	if _, err := p.expect(lexer.KW_RETURN); err != nil {
		return nil, err
	}
	e, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.SEMI); err != nil {
		return nil, err
	}
	return &ast.ReturnStmt{Expr: e}, nil
}

// Expr grammar:
// expr = INT | unop expr
// unop = '-' | '~' | '!'
func (p *Parser) parseExpr() (ast.Expr, error) {
	const want = "expression"
	t, ok := p.peek()
	if !ok {
		return nil, &EOFError{Expected: want}
	}
	switch {
	case t.Type == lexer.INT:
		p.advance()
		v, err := strconv.ParseInt(t.Lex, 10, 32)
		if err != nil {
			return nil, &LiteralError{Tok: t, Err: err}
		}
		return &ast.IntLit{Value: int32(v)}, nil
	case t.Type.IsUnaryOp():
		p.advance()
		x, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpr{Op: unOpFromToken(t.Type), X: x}, nil
	default:
		return nil, &SyntaxError{Expected: want, Got: t}
	}
}

func unOpFromToken(t lexer.TokenType) ast.UnOp {
	switch t {
	case lexer.MINUS:
		return ast.OpNeg
	case lexer.TILDE:
		return ast.OpBitNot
	default:
		return ast.OpNot
	}
}
