package formula

import (
	"strconv"
	"strings"

	"github.com/midbel/cells/formula/op"
	"github.com/midbel/cells/layout"
)

// Parse turns the raw content of a cell into an expression. Content
// starting with = is parsed as a formula; otherwise a numeric content
// becomes a number and anything else an opaque text kept verbatim.
func Parse(raw string) (Expr, error) {
	str := strings.TrimSpace(raw)
	if !strings.HasPrefix(str, "=") {
		if x, err := strconv.ParseFloat(str, 64); err == nil {
			return NewNumber(x), nil
		}
		return NewLiteral(raw), nil
	}
	p := parser{
		scan:  ScanString(str[1:]),
		input: raw,
		prev:  op.Invalid,
	}
	return p.Parse()
}

// parser runs the shunting yard algorithm: operators wait on a stack
// until an operator with lower binding shows up, operands and applied
// operators meet on a value stack.
type parser struct {
	scan  *Scanner
	input string

	ops  []op.Op
	vals []Expr
	prev op.Op
}

func (p *parser) Parse() (Expr, error) {
	for {
		tok := p.scan.Scan()
		if tok.Type == op.EOF {
			break
		}
		if err := p.parseToken(tok); err != nil {
			return nil, err
		}
	}
	for len(p.ops) > 0 {
		oper := p.popOp()
		if oper == op.BegGrp {
			return nil, ParenError{Input: p.input}
		}
		if err := p.apply(oper); err != nil {
			return nil, err
		}
	}
	if len(p.vals) != 1 {
		return nil, MalformedError{Input: p.input}
	}
	return p.vals[0], nil
}

func (p *parser) parseToken(tok Token) error {
	defer func() {
		p.prev = tok.Type
	}()
	switch tok.Type {
	case op.Number:
		x, err := strconv.ParseFloat(tok.Literal, 64)
		if err != nil {
			return UnknownLexemeError{Lexeme: tok.Literal, Input: p.input}
		}
		p.push(NewNumber(x))
	case op.Cell:
		pos, err := layout.ParsePosition(tok.Literal)
		if err != nil {
			return UnknownLexemeError{Lexeme: tok.Literal, Input: p.input}
		}
		p.push(NewCellRef(pos))
	case op.BegGrp:
		p.pushOp(op.BegGrp)
	case op.EndGrp:
		for {
			if len(p.ops) == 0 {
				return ParenError{Input: p.input}
			}
			oper := p.popOp()
			if oper == op.BegGrp {
				break
			}
			if err := p.apply(oper); err != nil {
				return err
			}
		}
	case op.Add, op.Sub, op.Mul, op.Div, op.Pow:
		oper := tok.Type
		if oper == op.Sub && p.negContext() {
			oper = op.Neg
			tok.Type = op.Neg
		}
		if err := p.flush(oper); err != nil {
			return err
		}
		p.pushOp(oper)
	default:
		return UnknownLexemeError{Lexeme: tok.Literal, Input: p.input}
	}
	return nil
}

// negContext reports whether a minus negates instead of subtracting:
// at the start of the formula, right after an opening parenthesis or
// right after an operator that is not itself a negation.
func (p *parser) negContext() bool {
	if p.prev == op.Invalid || p.prev == op.BegGrp {
		return true
	}
	return op.IsOperator(p.prev) && p.prev != op.Neg
}

// flush pops waiting operators that bind at least as tight as the
// incoming one; a right associative incoming operator stays below
// operators of equal binding.
func (p *parser) flush(incoming op.Op) error {
	for len(p.ops) > 0 {
		top := p.ops[len(p.ops)-1]
		if top == op.BegGrp {
			break
		}
		stronger := op.Precedence(top) > op.Precedence(incoming)
		equal := op.Precedence(top) == op.Precedence(incoming)
		if !stronger && !(equal && !op.IsRightAssoc(incoming)) {
			break
		}
		if err := p.apply(p.popOp()); err != nil {
			return err
		}
	}
	return nil
}

func (p *parser) apply(oper op.Op) error {
	if oper == op.Neg {
		arg, err := p.pop()
		if err != nil {
			return err
		}
		p.push(NewUnary(arg, oper))
		return nil
	}
	right, err := p.pop()
	if err != nil {
		return err
	}
	left, err := p.pop()
	if err != nil {
		return err
	}
	p.push(NewBinary(left, right, oper))
	return nil
}

func (p *parser) push(expr Expr) {
	p.vals = append(p.vals, expr)
}

func (p *parser) pop() (Expr, error) {
	n := len(p.vals)
	if n == 0 {
		return nil, MalformedError{Input: p.input}
	}
	expr := p.vals[n-1]
	p.vals = p.vals[:n-1]
	return expr, nil
}

func (p *parser) pushOp(oper op.Op) {
	p.ops = append(p.ops, oper)
}

func (p *parser) popOp() op.Op {
	n := len(p.ops)
	oper := p.ops[n-1]
	p.ops = p.ops[:n-1]
	return oper
}
