package formula

import (
	"fmt"
	"math"

	"github.com/midbel/cells/formula/op"
	"github.com/midbel/cells/layout"
)

// EvalAll computes every cell of the table in dependency order and
// returns the fully resolved expression per cell: formulas and numbers
// collapse to their numeric value, references to the referenced cell's
// result and texts stay themselves. The input table is left untouched
// and nothing partial is ever returned: the first failure aborts the
// whole pass.
func EvalAll(cells map[layout.Position]Expr) (map[layout.Position]Expr, error) {
	order, err := Sort(cells)
	if err != nil {
		return nil, err
	}
	var (
		values   = make(map[layout.Position]float64, len(order))
		computed = make(map[layout.Position]Expr, len(order))
	)
	for _, pos := range order {
		switch e := cells[pos].(type) {
		case literal:
			computed[pos] = e
		case number:
			values[pos] = e.value
			computed[pos] = e
		case cellRef:
			res, ok := computed[e.pos]
			if !ok {
				return nil, EmptyCellError{Ref: e.pos, In: pos}
			}
			if val, ok := values[e.pos]; ok {
				values[pos] = val
			}
			computed[pos] = res
		default:
			val, err := eval(cells[pos], values)
			if err != nil {
				return nil, err
			}
			values[pos] = val
			computed[pos] = NewNumber(val)
		}
	}
	return computed, nil
}

// eval folds a formula tree into a number, resolving references
// through the values computed so far. Arithmetic follows IEEE-754
// double semantics; dividing by zero gives an infinity or a NaN.
func eval(expr Expr, values map[layout.Position]float64) (float64, error) {
	switch e := expr.(type) {
	case number:
		return e.value, nil
	case literal:
		return 0, StringEvalError{Text: e.value}
	case cellRef:
		val, ok := values[e.pos]
		if !ok {
			return 0, UnresolvedRefError{Ref: e.pos}
		}
		return val, nil
	case unary:
		val, err := eval(e.expr, values)
		if err != nil {
			return 0, err
		}
		return -val, nil
	case binary:
		left, err := eval(e.left, values)
		if err != nil {
			return 0, err
		}
		right, err := eval(e.right, values)
		if err != nil {
			return 0, err
		}
		switch e.op {
		case op.Add:
			return left + right, nil
		case op.Sub:
			return left - right, nil
		case op.Mul:
			return left * right, nil
		case op.Div:
			return left / right, nil
		case op.Pow:
			return math.Pow(left, right), nil
		}
	}
	return 0, fmt.Errorf("expression can not eval (%T)", expr)
}
