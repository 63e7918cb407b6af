package layout

import (
	"fmt"
	"iter"
)

// Range is an inclusive rectangle of cell positions.
type Range struct {
	Starts Position
	Ends   Position
}

func NewRange(starts, ends Position) Range {
	r := Range{
		Starts: starts,
		Ends:   ends,
	}
	return r.Normalize()
}

func (r Range) Contains(pos Position) bool {
	ok := pos.Row >= r.Starts.Row && pos.Row <= r.Ends.Row
	if !ok {
		return false
	}
	return pos.Column >= r.Starts.Column && pos.Column <= r.Ends.Column
}

func (r Range) Width() int {
	return int(r.Ends.Column-r.Starts.Column) + 1
}

func (r Range) Height() int {
	return r.Ends.Row - r.Starts.Row + 1
}

func (r Range) String() string {
	if r.Starts.Equal(r.Ends) {
		return r.Starts.Addr()
	}
	return fmt.Sprintf("%s:%s", r.Starts.Addr(), r.Ends.Addr())
}

func (r Range) Normalize() Range {
	x := r
	x.Starts.Row = min(r.Starts.Row, r.Ends.Row)
	x.Starts.Column = min(r.Starts.Column, r.Ends.Column)
	x.Ends.Row = max(r.Starts.Row, r.Ends.Row)
	x.Ends.Column = max(r.Starts.Column, r.Ends.Column)
	return x
}

// Positions yields every position of the rectangle, row major.
func (r Range) Positions() iter.Seq[Position] {
	r = r.Normalize()
	return func(yield func(Position) bool) {
		for row := r.Starts.Row; row <= r.Ends.Row; row++ {
			for col := r.Starts.Column; col <= r.Ends.Column; col++ {
				pos := Position{
					Column: col,
					Row:    row,
				}
				if !yield(pos) {
					return
				}
			}
		}
	}
}

// Extend grows the range to cover pos. The zero Range adopts pos as
// both corners.
func (r Range) Extend(pos Position) Range {
	var zero Range
	if r == zero {
		return NewRange(pos, pos)
	}
	r.Starts.Row = min(r.Starts.Row, pos.Row)
	r.Starts.Column = min(r.Starts.Column, pos.Column)
	r.Ends.Row = max(r.Ends.Row, pos.Row)
	r.Ends.Column = max(r.Ends.Column, pos.Column)
	return r
}
