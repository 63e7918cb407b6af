package formula

import (
	"fmt"
	"strings"

	"github.com/midbel/cells/layout"
)

// UnknownLexemeError reports a lexeme that is neither a number, a cell
// address, an operator nor a parenthesis.
type UnknownLexemeError struct {
	Lexeme string
	Input  string
}

func (e UnknownLexemeError) Error() string {
	return fmt.Sprintf("unknown lexem %q in %q", e.Lexeme, e.Input)
}

// ParenError reports an unbalanced parenthesis in a formula.
type ParenError struct {
	Input string
}

func (e ParenError) Error() string {
	return fmt.Sprintf("mismatched parenthesis in %q", e.Input)
}

// MalformedError reports a formula whose operators and operands do not
// line up, eg an operator with a missing operand.
type MalformedError struct {
	Input string
}

func (e MalformedError) Error() string {
	return fmt.Sprintf("malformed expression %q", e.Input)
}

// EmptyCellError reports a cell referencing another cell that holds
// nothing computable.
type EmptyCellError struct {
	Ref layout.Position
	In  layout.Position
}

func (e EmptyCellError) Error() string {
	return fmt.Sprintf("reference to an empty cell %s in cell %s", e.Ref, e.In)
}

// UnresolvedRefError reports a reference inside a formula to a cell
// with no numeric value.
type UnresolvedRefError struct {
	Ref layout.Position
}

func (e UnresolvedRefError) Error() string {
	return fmt.Sprintf("cannot resolve reference to %s", e.Ref)
}

// StringEvalError reports a text literal reached during numeric
// evaluation.
type StringEvalError struct {
	Text string
}

func (e StringEvalError) Error() string {
	return "cannot evaluate strings"
}

// CycleError reports the cells left with unresolved dependencies after
// a sorting pass: members of a reference cycle and cells stuck behind
// one.
type CycleError struct {
	Cells []layout.Position
}

func (e CycleError) Error() string {
	list := make([]string, len(e.Cells))
	for i := range e.Cells {
		list[i] = e.Cells[i].Addr()
	}
	return fmt.Sprintf("cycle or non-computable cell reference detected in cells: %s", strings.Join(list, ", "))
}
