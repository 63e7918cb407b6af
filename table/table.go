package table

import (
	"slices"

	"github.com/midbel/cells/formula"
	"github.com/midbel/cells/layout"
)

// Table owns the cells of a sheet: the raw text typed into each cell,
// the expression parsed from it and, once a full evaluation pass went
// through, the computed result per cell. Every mutation re-runs the
// whole parse/sort/eval pipeline: tables stay small enough that the
// simplest correct design wins over incremental recomputation.
type Table struct {
	inputs   map[layout.Position]string
	exprs    map[layout.Position]formula.Expr
	computed map[layout.Position]formula.Expr
}

func New() *Table {
	return &Table{
		inputs:   make(map[layout.Position]string),
		exprs:    make(map[layout.Position]formula.Expr),
		computed: make(map[layout.Position]formula.Expr),
	}
}

// Set stores the raw content of a cell and recomputes the table. Raw
// content that fails to parse as a formula is kept as an opaque text.
// When recomputation fails the previous results are left in place and
// the error is returned for the caller to report.
func (t *Table) Set(pos layout.Position, raw string) error {
	expr, err := formula.Parse(raw)
	if err != nil {
		expr = formula.NewLiteral(raw)
	}
	t.inputs[pos] = raw
	t.exprs[pos] = expr
	return t.Eval()
}

func (t *Table) Delete(pos layout.Position) error {
	delete(t.inputs, pos)
	delete(t.exprs, pos)
	delete(t.computed, pos)
	return t.Eval()
}

// Eval recomputes every cell. All or nothing: on failure the computed
// results of the previous pass are kept untouched.
func (t *Table) Eval() error {
	computed, err := formula.EvalAll(t.exprs)
	if err != nil {
		return err
	}
	t.computed = computed
	return nil
}

func (t *Table) Input(pos layout.Position) (string, bool) {
	raw, ok := t.inputs[pos]
	return raw, ok
}

func (t *Table) Expr(pos layout.Position) (formula.Expr, bool) {
	expr, ok := t.exprs[pos]
	return expr, ok
}

func (t *Table) Computed(pos layout.Position) (formula.Expr, bool) {
	expr, ok := t.computed[pos]
	return expr, ok
}

// Display gives what a grid should show for a cell: the computed
// number when there is one, the raw text otherwise.
func (t *Table) Display(pos layout.Position) string {
	if expr, ok := t.computed[pos]; ok {
		if _, ok := formula.Number(expr); ok {
			return expr.String()
		}
	}
	return t.inputs[pos]
}

func (t *Table) Len() int {
	return len(t.inputs)
}

// Positions lists the filled cells, ordered column first then row, so
// encoders and error reports stay deterministic.
func (t *Table) Positions() []layout.Position {
	list := make([]layout.Position, 0, len(t.inputs))
	for pos := range t.inputs {
		list = append(list, pos)
	}
	slices.SortFunc(list, func(a, b layout.Position) int {
		if a.Less(b) {
			return -1
		}
		if b.Less(a) {
			return 1
		}
		return 0
	})
	return list
}

// Bounds gives the smallest rectangle covering every filled cell.
func (t *Table) Bounds() layout.Range {
	var rg layout.Range
	for pos := range t.inputs {
		rg = rg.Extend(pos)
	}
	return rg
}
