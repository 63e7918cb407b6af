package table_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/midbel/cells/formula"
	"github.com/midbel/cells/layout"
	"github.com/midbel/cells/table"
)

type TableSuite struct {
	suite.Suite
}

func TestTableSuite(t *testing.T) {
	suite.Run(t, new(TableSuite))
}

func (s *TableSuite) pos(addr string) layout.Position {
	pos, err := layout.ParsePosition(addr)
	s.Require().NoError(err, addr)
	return pos
}

func (s *TableSuite) TestSetAndDisplay() {
	t := table.New()
	s.Require().NoError(t.Set(s.pos("A1"), "12"))
	s.Require().NoError(t.Set(s.pos("B1"), "=A1 * 2 + 1"))
	s.Require().NoError(t.Set(s.pos("C1"), "hello world"))

	s.Equal("25", t.Display(s.pos("B1")))
	s.Equal("12", t.Display(s.pos("A1")))
	s.Equal("hello world", t.Display(s.pos("C1")))
	s.Equal(3, t.Len())

	expr, ok := t.Computed(s.pos("B1"))
	s.Require().True(ok)
	val, ok := formula.Number(expr)
	s.Require().True(ok)
	s.Equal(25.0, val)
}

func (s *TableSuite) TestBadFormulaDegradesToText() {
	t := table.New()
	s.Require().NoError(t.Set(s.pos("A1"), "=bottom + 1"))
	s.Equal("=bottom + 1", t.Display(s.pos("A1")))
}

func (s *TableSuite) TestEvalFailureKeepsPrevious() {
	t := table.New()
	s.Require().NoError(t.Set(s.pos("A1"), "2"))
	s.Require().NoError(t.Set(s.pos("B1"), "=A1 ^ 10"))
	s.Equal("1024", t.Display(s.pos("B1")))

	// introducing a cycle must fail and leave B01 as it was
	err := t.Set(s.pos("A1"), "=B1")
	s.Require().Error(err)
	var cycle formula.CycleError
	s.Require().ErrorAs(err, &cycle)
	s.Equal("1024", t.Display(s.pos("B1")))

	// breaking the cycle recovers
	s.Require().NoError(t.Set(s.pos("A1"), "3"))
	s.Equal("59049", t.Display(s.pos("B1")))
}

func (s *TableSuite) TestDelete() {
	t := table.New()
	s.Require().NoError(t.Set(s.pos("A1"), "2"))
	s.Require().NoError(t.Set(s.pos("B1"), "4"))
	s.Require().NoError(t.Delete(s.pos("B1")))
	s.Equal(1, t.Len())
	_, ok := t.Computed(s.pos("B1"))
	s.False(ok)
}

func (s *TableSuite) TestBoundsAndPositions() {
	t := table.New()
	s.Require().NoError(t.Set(s.pos("B2"), "1"))
	s.Require().NoError(t.Set(s.pos("D7"), "2"))
	s.Require().NoError(t.Set(s.pos("C1"), "3"))

	rg := t.Bounds()
	s.Equal("B01:D07", rg.String())

	var addrs []string
	for _, pos := range t.Positions() {
		addrs = append(addrs, pos.Addr())
	}
	s.Equal([]string{"B02", "C01", "D07"}, addrs)
}

func (s *TableSuite) TestLoadStoreRoundTrip() {
	const doc = `{"inputs": {"A01": "12", "A02": "500.5", "B01": "= A1 + A2", "C01": "notes"}}`

	t, err := table.Load(strings.NewReader(doc))
	s.Require().NoError(err)
	s.Equal("512.5", t.Display(s.pos("B1")))

	var buf strings.Builder
	s.Require().NoError(t.Store(&buf))

	again, err := table.Load(strings.NewReader(buf.String()))
	s.Require().NoError(err)
	s.Equal(t.Len(), again.Len())
	for _, pos := range t.Positions() {
		want, _ := t.Input(pos)
		got, ok := again.Input(pos)
		s.Require().True(ok, pos.Addr())
		s.Equal(want, got, pos.Addr())
	}
	s.Equal("512.5", again.Display(s.pos("B1")))
}

func (s *TableSuite) TestLoadBadAddress() {
	_, err := table.Load(strings.NewReader(`{"inputs": {"a1": "12"}}`))
	s.Require().Error(err)
	var addr layout.AddressError
	s.ErrorAs(err, &addr)
}

func (s *TableSuite) TestLoadCycleReported() {
	_, err := table.Load(strings.NewReader(`{"inputs": {"A01": "=B1", "B01": "=A1"}}`))
	var cycle formula.CycleError
	s.Require().ErrorAs(err, &cycle)
	s.Len(cycle.Cells, 2)
}

func (s *TableSuite) TestLoadFileYAML() {
	dir := s.T().TempDir()
	file := filepath.Join(dir, "cells.yaml")
	doc := "inputs:\n  A01: \"12\"\n  B01: \"=A1 / 4\"\n"
	s.Require().NoError(os.WriteFile(file, []byte(doc), 0o644))

	t, err := table.LoadFile(file)
	s.Require().NoError(err)
	s.Equal("3", t.Display(s.pos("B1")))
}
