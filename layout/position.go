package layout

import (
	"fmt"
	"strconv"
)

// Position identifies a cell by its column letter and its row number.
// The canonical text form is the column letter followed by the row,
// zero padded to two digits: A18, Z01, Z105.
type Position struct {
	Column byte
	Row    int
}

const (
	MinColumn = 'A'
	MaxColumn = 'Z'
)

func ParsePosition(addr string) (Position, error) {
	var pos Position
	if len(addr) == 0 {
		return pos, AddressError{Input: addr, kind: errAddrEmpty}
	}
	if addr[0] < MinColumn || addr[0] > MaxColumn {
		return pos, AddressError{Input: addr, kind: errAddrColumn}
	}
	row, err := strconv.Atoi(addr[1:])
	if err != nil || row <= 0 {
		return pos, AddressError{Input: addr, kind: errAddrRow}
	}
	pos.Column = addr[0]
	pos.Row = row
	return pos, nil
}

func IsAddress(addr string) bool {
	_, err := ParsePosition(addr)
	return err == nil
}

func (p Position) Addr() string {
	return fmt.Sprintf("%c%02d", p.Column, p.Row)
}

func (p Position) String() string {
	return p.Addr()
}

func (p Position) Equal(other Position) bool {
	return p.Column == other.Column && p.Row == other.Row
}

// Less orders positions column first then row. The engine itself never
// relies on an ordering; it keeps rendered output and error messages
// deterministic.
func (p Position) Less(other Position) bool {
	if p.Column != other.Column {
		return p.Column < other.Column
	}
	return p.Row < other.Row
}

type addrErrorKind int8

const (
	errAddrEmpty addrErrorKind = iota + 1
	errAddrColumn
	errAddrRow
)

// AddressError reports a cell address that can not be decoded. The
// offending input is kept so callers can render it where they see fit.
type AddressError struct {
	Input string
	kind  addrErrorKind
}

func (e AddressError) Error() string {
	switch e.kind {
	case errAddrEmpty:
		return "malformed cell address: cannot be empty"
	case errAddrColumn:
		return fmt.Sprintf("malformed cell address %q: should start with an ASCII uppercase single char column name", e.Input)
	default:
		return fmt.Sprintf("malformed cell address %q: missing or non-existent row (should be a positive integer)", e.Input)
	}
}
