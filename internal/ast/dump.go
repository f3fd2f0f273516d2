package ast

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes an indented rendering of p to w, one node per line.
func Dump(w io.Writer, p *Program) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Program\n")
	fmt.Fprintf(&b, "  Function %s\n", p.Func.Name)
	fmt.Fprintf(&b, "    Return\n")
	dumpExpr(&b, p.Func.Body.Expr, 6)
	_, err := io.WriteString(w, b.String())
	return err
}

func dumpExpr(b *strings.Builder, e Expr, indent int) {
	pad := strings.Repeat(" ", indent)
	switch e := e.(type) {
	case *IntLit:
		fmt.Fprintf(b, "%sInt %d\n", pad, e.Value)
	case *UnaryExpr:
		fmt.Fprintf(b, "%sUnary %s\n", pad, e.Op)
		dumpExpr(b, e.X, indent+2)
	}
}
