package formula

import (
	"errors"
	"math"
	"testing"

	"github.com/midbel/cells/formula/op"
	"github.com/midbel/cells/layout"
)

func evalTable(t *testing.T, inputs map[string]string) (map[layout.Position]Expr, error) {
	t.Helper()
	cells := make(map[layout.Position]Expr)
	for addr, input := range inputs {
		cells[mustPos(t, addr)] = mustParse(t, input)
	}
	return EvalAll(cells)
}

func numberAt(t *testing.T, computed map[layout.Position]Expr, addr string) float64 {
	t.Helper()
	expr, ok := computed[mustPos(t, addr)]
	if !ok {
		t.Fatalf("%s: no computed value", addr)
	}
	val, ok := Number(expr)
	if !ok {
		t.Fatalf("%s: computed value is not a number (%s)", addr, expr)
	}
	return val
}

func TestEvalAll(t *testing.T) {
	computed, err := evalTable(t, map[string]string{
		"A1": "12",
		"A2": "500.5",
		"A3": "-3.1415",
		"B1": "2",
		"C1": "0.2187456",
		"D1": "=A1 - (A2 - A3^B1/2.5) + C1",
	})
	if err != nil {
		t.Fatalf("fail to eval: %s", err)
	}
	if got := numberAt(t, computed, "D1"); got != -484.33364550000005 {
		t.Errorf("D01 mismatched! want %v, got %v", -484.33364550000005, got)
	}
	if got := numberAt(t, computed, "A2"); got != 500.5 {
		t.Errorf("A02 mismatched! want 500.5, got %v", got)
	}
}

func TestEvalAllRefChain(t *testing.T) {
	computed, err := evalTable(t, map[string]string{
		"A1": "21",
		"B1": "=A1",
		"C1": "=B1 * 2",
		"D1": "=C1",
	})
	if err != nil {
		t.Fatalf("fail to eval: %s", err)
	}
	if got := numberAt(t, computed, "B1"); got != 21 {
		t.Errorf("B01 mismatched! want 21, got %v", got)
	}
	if got := numberAt(t, computed, "D1"); got != 42 {
		t.Errorf("D01 mismatched! want 42, got %v", got)
	}
}

func TestEvalAllStrings(t *testing.T) {
	computed, err := evalTable(t, map[string]string{
		"A1": "hello",
		"B1": "=A1",
	})
	if err != nil {
		t.Fatalf("fail to eval: %s", err)
	}
	str, ok := Text(computed[mustPos(t, "B1")])
	if !ok || str != "hello" {
		t.Errorf("B01 mismatched! want hello, got %s", computed[mustPos(t, "B1")])
	}
}

func TestEvalAllStringArithmetic(t *testing.T) {
	_, err := evalTable(t, map[string]string{
		"A1": "hello",
		"B1": "=A1 + 1",
	})
	var ref UnresolvedRefError
	if !errors.As(err, &ref) {
		t.Fatalf("unresolved reference error expected, got %v", err)
	}
	if ref.Ref.Addr() != "A01" {
		t.Errorf("reference mismatched! want A01, got %s", ref.Ref)
	}
}

func TestEvalAllEmptyCell(t *testing.T) {
	_, err := evalTable(t, map[string]string{
		"A1": "=B1",
	})
	var empty EmptyCellError
	if !errors.As(err, &empty) {
		t.Fatalf("empty cell error expected, got %v", err)
	}
	want := "reference to an empty cell B01 in cell A01"
	if empty.Error() != want {
		t.Errorf("message mismatched! want %q, got %q", want, empty.Error())
	}
}

func TestEvalAllUnresolvedInFormula(t *testing.T) {
	_, err := evalTable(t, map[string]string{
		"A1": "=B1 + 1",
	})
	var ref UnresolvedRefError
	if !errors.As(err, &ref) {
		t.Fatalf("unresolved reference error expected, got %v", err)
	}
}

func TestEvalAllCycle(t *testing.T) {
	_, err := evalTable(t, map[string]string{
		"A1": "=B1",
		"B1": "=A1",
	})
	var cycle CycleError
	if !errors.As(err, &cycle) {
		t.Fatalf("cycle error expected, got %v", err)
	}
	want := "cycle or non-computable cell reference detected in cells: A01, B01"
	if cycle.Error() != want {
		t.Errorf("message mismatched! want %q, got %q", want, cycle.Error())
	}
}

func TestEvalAllDivByZero(t *testing.T) {
	computed, err := evalTable(t, map[string]string{
		"A1": "0",
		"B1": "=1 / A1",
		"C1": "=0 / A1",
	})
	if err != nil {
		t.Fatalf("fail to eval: %s", err)
	}
	if got := numberAt(t, computed, "B1"); !math.IsInf(got, 1) {
		t.Errorf("B01 mismatched! want +Inf, got %v", got)
	}
	if got := numberAt(t, computed, "C1"); !math.IsNaN(got) {
		t.Errorf("C01 mismatched! want NaN, got %v", got)
	}
}

func TestEvalAllPowRightAssoc(t *testing.T) {
	computed, err := evalTable(t, map[string]string{
		"A1": "=2^3^2",
	})
	if err != nil {
		t.Fatalf("fail to eval: %s", err)
	}
	if got := numberAt(t, computed, "A1"); got != 512 {
		t.Errorf("A01 mismatched! want 512, got %v", got)
	}
}

func TestEvalAllIdempotent(t *testing.T) {
	computed, err := evalTable(t, map[string]string{
		"A1": "12",
		"A2": "500.5",
		"A3": "-3.1415",
		"B1": "2",
		"C1": "0.2187456",
		"D1": "=A1 - (A2 - A3^B1/2.5) + C1",
		"E1": "hello",
	})
	if err != nil {
		t.Fatalf("fail to eval: %s", err)
	}
	again, err := EvalAll(computed)
	if err != nil {
		t.Fatalf("fail to eval computed table: %s", err)
	}
	if len(again) != len(computed) {
		t.Fatalf("table size mismatched! want %d, got %d", len(computed), len(again))
	}
	for pos, want := range computed {
		if !Equal(want, again[pos]) {
			t.Errorf("%s: result changed on re-evaluation! want %s, got %s", pos, want, again[pos])
		}
	}
}

func TestEvalAllIsPure(t *testing.T) {
	cells := map[layout.Position]Expr{
		mustPos(t, "A1"): mustParse(t, "1"),
		mustPos(t, "B1"): mustParse(t, "=A1 + 1"),
	}
	if _, err := EvalAll(cells); err != nil {
		t.Fatalf("fail to eval: %s", err)
	}
	if !Equal(cells[mustPos(t, "B1")], NewBinary(NewCellRef(mustPos(t, "A1")), NewNumber(1), op.Add)) {
		t.Errorf("input table was mutated")
	}
}
