package lexer

import (
	"fmt"
	"unicode"
)

// LexError reports text that matches no token category. Scanning stops at
// the first one.
type LexError struct {
	Lex  string
	Line int
	Col  int
}

func (e *LexError) Error() string {
	return fmt.Sprintf("unrecognized token %q at %d:%d", e.Lex, e.Line, e.Col)
}

type Lexer struct {
	src  []rune
	i    int
	ch   rune
	line int
	col  int
	eof  bool
}

func New(src string) *Lexer {
	l := &Lexer{src: []rune(src), line: 1}
	l.read()
	return l
}

func (l *Lexer) read() {
	if l.i >= len(l.src) {
		l.ch = 0
		l.eof = true
		return
	}
	l.ch = l.src[l.i]
	l.i++
	if l.ch == '\n' {
		l.line++
		l.col = 0
	} else {
		l.col++
	}
}

func isLetter(ch rune) bool { return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' }
func isDigit(ch rune) bool  { return ch >= '0' && ch <= '9' }

// Next scans one token. It returns EOF at the end of input and keeps
// returning EOF afterwards.
func (l *Lexer) Next() Token {
	for unicode.IsSpace(l.ch) {
		l.read()
	}
	tok := Token{Line: l.line, Col: l.col}
	if l.eof {
		tok.Type = EOF
		return tok
	}
	switch ch := l.ch; ch {
	case '(':
		tok.Type, tok.Lex = LPAREN, string(ch)
		l.read()
	case ')':
		tok.Type, tok.Lex = RPAREN, string(ch)
		l.read()
	case '{':
		tok.Type, tok.Lex = LBRACE, string(ch)
		l.read()
	case '}':
		tok.Type, tok.Lex = RBRACE, string(ch)
		l.read()
	case ';':
		tok.Type, tok.Lex = SEMI, string(ch)
		l.read()
	case '-':
		tok.Type, tok.Lex = MINUS, string(ch)
		l.read()
	case '~':
		tok.Type, tok.Lex = TILDE, string(ch)
		l.read()
	case '!':
		tok.Type, tok.Lex = BANG, string(ch)
		l.read()
	default:
		if isLetter(ch) {
			ident := []rune{ch}
			l.read()
			for isLetter(l.ch) {
				ident = append(ident, l.ch)
				l.read()
			}
			lex := string(ident)
			switch lex {
			case "int":
				tok.Type = KW_INT
			case "return":
				tok.Type = KW_RETURN
			default:
				tok.Type = IDENT
			}
			tok.Lex = lex
		} else if isDigit(ch) {
			num := []rune{ch}
			l.read()
			for isDigit(l.ch) {
				num = append(num, l.ch)
				l.read()
			}
			tok.Type, tok.Lex = INT, string(num)
		} else {
			tok.Type, tok.Lex = ILLEGAL, string(ch)
			l.read()
		}
	}
	return tok
}

// Tokenize scans src to the end. EOF is not included in the result. On the
// first ILLEGAL token it stops and returns the tokens scanned so far along
// with a *LexError.
func Tokenize(src string) ([]Token, error) {
	l := New(src)
	var toks []Token
	for {
		t := l.Next()
		switch t.Type {
		case EOF:
			return toks, nil
		case ILLEGAL:
			return toks, &LexError{Lex: t.Lex, Line: t.Line, Col: t.Col}
		}
		toks = append(toks, t)
	}
}
