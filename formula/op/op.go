package op

import "fmt"

type Op rune

const (
	Invalid Op = 0

	EOF Op = 1 << iota
	Number
	Literal
	Cell
	Neg
	Add
	Sub
	Mul
	Div
	Pow
	BegGrp
	EndGrp
)

var mapping = map[Op]string{
	Neg: "-",
	Add: "+",
	Sub: "-",
	Mul: "*",
	Div: "/",
	Pow: "^",
}

func Symbol(oper Op) string {
	return mapping[oper]
}

// FromSymbol gives the binary operator for one of the five symbols
// + - * / ^. The scanner decides later whether a - is a negation.
func FromSymbol(sym string) (Op, error) {
	switch sym {
	case "+":
		return Add, nil
	case "-":
		return Sub, nil
	case "*":
		return Mul, nil
	case "/":
		return Div, nil
	case "^":
		return Pow, nil
	default:
		return Invalid, fmt.Errorf("%q: invalid operator symbol", sym)
	}
}

// Precedence of the six operators: additive < multiplicative < power
// and negation.
func Precedence(oper Op) int {
	switch oper {
	case Add, Sub:
		return 1
	case Mul, Div:
		return 2
	case Neg, Pow:
		return 3
	default:
		return 0
	}
}

// IsRightAssoc reports whether the operator groups to the right.
// 2^3^2 is 2^(3^2) and -2^2 is -(2^2); everything else groups left.
func IsRightAssoc(oper Op) bool {
	return oper == Neg || oper == Pow
}

func IsOperator(oper Op) bool {
	switch oper {
	case Neg, Add, Sub, Mul, Div, Pow:
		return true
	default:
		return false
	}
}

func (o Op) String() string {
	switch o {
	case Invalid:
		return "<invalid>"
	case EOF:
		return "<eof>"
	case Number:
		return "<number>"
	case Literal:
		return "<literal>"
	case Cell:
		return "<cell>"
	case Neg:
		return "<negate>"
	case Add:
		return "<add>"
	case Sub:
		return "<subtract>"
	case Mul:
		return "<multiply>"
	case Div:
		return "<divide>"
	case Pow:
		return "<power>"
	case BegGrp:
		return "<beg-group>"
	case EndGrp:
		return "<end-group>"
	}
	return "<unknown>"
}
