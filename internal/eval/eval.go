// Package eval computes the value a program returns without running it.
// Arithmetic is on int32 with two's-complement wraparound, the same as the
// generated code.
package eval

import "github.com/tinyrange/ucc/internal/ast"

// Program returns the exit value of p's function.
func Program(p *ast.Program) int32 {
	return Expr(p.Func.Body.Expr)
}

func Expr(e ast.Expr) int32 {
	switch e := e.(type) {
	case *ast.IntLit:
		return e.Value
	case *ast.UnaryExpr:
		x := Expr(e.X)
		switch e.Op {
		case ast.OpNeg:
			return -x
		case ast.OpBitNot:
			return ^x
		case ast.OpNot:
			if x == 0 {
				return 1
			}
			return 0
		}
	}
	panic("eval: unknown expression")
}
