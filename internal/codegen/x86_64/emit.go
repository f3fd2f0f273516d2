package x86_64

import (
	"fmt"
	"strings"

	"github.com/tinyrange/ucc/internal/ast"
)

// Accumulator holds every intermediate value. Nothing else is allocated.
const Accumulator = "%eax"

type Options struct {
	// Platform is the target OS name as in runtime.GOOS. On "darwin",
	// global symbols get a leading underscore.
	Platform string
}

// EmitProgram emits AT&T syntax x86_64 assembly for ELF targets.
func EmitProgram(p *ast.Program) string {
	return Emit(p, Options{})
}

// Emit emits AT&T syntax x86_64 assembly for p. It never fails on a tree the
// parser produced.
func Emit(p *ast.Program, opts Options) string {
	var b strings.Builder
	emitFunc(&b, p.Func, opts)
	return b.String()
}

func symbol(name string, opts Options) string {
	if opts.Platform == "darwin" {
		return "_" + name
	}
	return name
}

func emitFunc(b *strings.Builder, f *ast.Function, opts Options) {
	sym := symbol(f.Name, opts)
	fmt.Fprintf(b, " .globl %s\n%s:\n", sym, sym)
	emitExpr(b, f.Body.Expr)
	b.WriteString(" ret\n")
}

// emitExpr leaves the value of e in the accumulator. Operands are emitted
// before their operator.
func emitExpr(b *strings.Builder, e ast.Expr) {
	switch e := e.(type) {
	case *ast.IntLit:
		fmt.Fprintf(b, " movl $%d, %s\n", e.Value, Accumulator)
	case *ast.UnaryExpr:
		emitExpr(b, e.X)
		switch e.Op {
		case ast.OpNeg:
			fmt.Fprintf(b, " neg %s\n", Accumulator)
		case ast.OpBitNot:
			fmt.Fprintf(b, " not %s\n", Accumulator)
		case ast.OpNot:
			// movl leaves the flags from cmpl intact for sete.
			fmt.Fprintf(b, " cmpl $0, %s\n", Accumulator)
			fmt.Fprintf(b, " movl $0, %s\n", Accumulator)
			b.WriteString(" sete %al\n")
		}
	}
}
