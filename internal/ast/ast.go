package ast

// Program is a whole translation unit: exactly one function.
type Program struct {
	Func *Function
}

// Function is `int Name() { Body }`.
type Function struct {
	Name string
	Body *ReturnStmt
}

type ReturnStmt struct{ Expr Expr }

// Expr is either an *IntLit or a *UnaryExpr.
type Expr interface{ isExpr() }

type IntLit struct{ Value int32 }

func (*IntLit) isExpr() {}

type UnOp int

const (
	OpNeg    UnOp = iota // -
	OpBitNot             // ~
	OpNot                // !
)

func (op UnOp) String() string {
	switch op {
	case OpNeg:
		return "-"
	case OpBitNot:
		return "~"
	case OpNot:
		return "!"
	default:
		return "?"
	}
}

type UnaryExpr struct {
	Op UnOp
	X  Expr
}

func (*UnaryExpr) isExpr() {}

// Depth returns the number of unary operators wrapping the literal leaf.
func Depth(e Expr) int {
	n := 0
	for {
		u, ok := e.(*UnaryExpr)
		if !ok {
			return n
		}
		n++
		e = u.X
	}
}
