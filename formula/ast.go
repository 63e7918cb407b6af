package formula

import (
	"fmt"
	"strconv"

	"github.com/midbel/cells/formula/op"
	"github.com/midbel/cells/layout"
)

// Expr is a parsed cell content. A cell is either an opaque text, a
// number, a reference to another cell or an operator applied to
// sub-expressions.
type Expr interface {
	fmt.Stringer
}

type literal struct {
	value string
}

func NewLiteral(str string) Expr {
	return literal{
		value: str,
	}
}

func (e literal) String() string {
	return e.value
}

type number struct {
	value float64
}

func NewNumber(val float64) Expr {
	return number{
		value: val,
	}
}

func (e number) String() string {
	return strconv.FormatFloat(e.value, 'f', -1, 64)
}

type cellRef struct {
	pos layout.Position
}

func NewCellRef(pos layout.Position) Expr {
	return cellRef{
		pos: pos,
	}
}

func (e cellRef) String() string {
	return e.pos.Addr()
}

// unary holds exactly one operand and binary exactly two, so operator
// arity can not get out of shape once a node exists. The parser only
// ever builds unary nodes for op.Neg.
type unary struct {
	op   op.Op
	expr Expr
}

func NewUnary(expr Expr, oper op.Op) Expr {
	return unary{
		op:   oper,
		expr: expr,
	}
}

func (e unary) String() string {
	return fmt.Sprintf("%s%s", op.Symbol(e.op), e.expr)
}

type binary struct {
	op    op.Op
	left  Expr
	right Expr
}

func NewBinary(left, right Expr, oper op.Op) Expr {
	return binary{
		op:    oper,
		left:  left,
		right: right,
	}
}

func (e binary) String() string {
	return fmt.Sprintf("(%s %s %s)", e.left, op.Symbol(e.op), e.right)
}

// Number gives the numeric value of an evaluated expression.
func Number(expr Expr) (float64, bool) {
	n, ok := expr.(number)
	if !ok {
		return 0, false
	}
	return n.value, true
}

// Text gives the opaque text of a non evaluable expression.
func Text(expr Expr) (string, bool) {
	t, ok := expr.(literal)
	if !ok {
		return "", false
	}
	return t.value, true
}

// Equal compares two expressions structurally.
func Equal(left, right Expr) bool {
	switch e := left.(type) {
	case literal:
		other, ok := right.(literal)
		return ok && e.value == other.value
	case number:
		other, ok := right.(number)
		return ok && e.value == other.value
	case cellRef:
		other, ok := right.(cellRef)
		return ok && e.pos.Equal(other.pos)
	case unary:
		other, ok := right.(unary)
		return ok && e.op == other.op && Equal(e.expr, other.expr)
	case binary:
		other, ok := right.(binary)
		return ok && e.op == other.op && Equal(e.left, other.left) && Equal(e.right, other.right)
	default:
		return left == nil && right == nil
	}
}
