package formula

import (
	"bytes"
	"strconv"
	"unicode/utf8"

	"github.com/midbel/cells/formula/op"
	"github.com/midbel/cells/layout"
)

type Token struct {
	Literal string
	Type    op.Op
}

func (t Token) String() string {
	switch t.Type {
	case op.Number, op.Cell, op.Invalid:
		return t.Literal
	default:
		return t.Type.String()
	}
}

// Scanner splits a formula body into numbers, cell addresses, operator
// symbols and parentheses. Anything between two separators that is
// neither a number nor a cell address comes out as an op.Invalid token
// carrying the offending lexeme.
type Scanner struct {
	input []byte
	pos   int
	next  int
	char  rune

	buf bytes.Buffer
}

func ScanString(str string) *Scanner {
	var scan Scanner
	scan.input = []byte(str)
	scan.read()
	return &scan
}

func (s *Scanner) Scan() Token {
	s.skipBlanks()

	var tok Token
	if s.done() {
		tok.Type = op.EOF
		return tok
	}
	defer s.reset()
	switch {
	case isOperator(s.char):
		s.scanOperator(&tok)
	case isDelimiter(s.char):
		s.scanDelimiter(&tok)
	default:
		s.scanLexeme(&tok)
	}
	return tok
}

func (s *Scanner) scanOperator(tok *Token) {
	tok.Literal = string(s.char)
	oper, err := op.FromSymbol(tok.Literal)
	if err != nil {
		oper = op.Invalid
	}
	tok.Type = oper
	s.read()
}

func (s *Scanner) scanDelimiter(tok *Token) {
	switch s.char {
	case lparen:
		tok.Type = op.BegGrp
	case rparen:
		tok.Type = op.EndGrp
	}
	tok.Literal = string(s.char)
	s.read()
}

func (s *Scanner) scanLexeme(tok *Token) {
	for !s.done() && !isSeparator(s.char) {
		s.write()
		s.read()
	}
	tok.Literal = s.literal()
	switch {
	case isNumber(tok.Literal):
		tok.Type = op.Number
	case layout.IsAddress(tok.Literal):
		tok.Type = op.Cell
	default:
		tok.Type = op.Invalid
	}
}

func (s *Scanner) literal() string {
	return s.buf.String()
}

func (s *Scanner) write() {
	s.buf.WriteRune(s.char)
}

func (s *Scanner) reset() {
	s.buf.Reset()
}

func (s *Scanner) read() {
	if s.next >= len(s.input) {
		s.char = 0
		s.pos = len(s.input)
		return
	}
	r, n := utf8.DecodeRune(s.input[s.next:])
	if r == utf8.RuneError {
		s.char = 0
		s.next = len(s.input)
		return
	}
	s.char, s.pos, s.next = r, s.next, s.next+n
}

func (s *Scanner) done() bool {
	return s.char == 0
}

func (s *Scanner) skipBlanks() {
	for isBlank(s.char) && !s.done() {
		s.read()
	}
}

func isNumber(str string) bool {
	_, err := strconv.ParseFloat(str, 64)
	return err == nil
}

const (
	lparen = '('
	rparen = ')'
	space  = ' '
	tab    = '\t'
	plus   = '+'
	minus  = '-'
	star   = '*'
	slash  = '/'
	caret  = '^'
	equal  = '='
)

func isBlank(c rune) bool {
	return c == space || c == tab || c == '\n' || c == '\r'
}

func isOperator(c rune) bool {
	return c == plus || c == minus || c == star || c == slash || c == caret
}

func isDelimiter(c rune) bool {
	return c == lparen || c == rparen
}

func isSeparator(c rune) bool {
	return isOperator(c) || isDelimiter(c) || isBlank(c)
}
