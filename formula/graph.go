package formula

import (
	"slices"

	"github.com/midbel/cells/layout"
)

// Dependencies collects the set of cells referenced by an expression,
// in first appearance order. Texts and numbers contribute nothing.
func Dependencies(expr Expr) []layout.Position {
	var (
		list []layout.Position
		seen = make(map[layout.Position]struct{})
	)
	walkRefs(expr, func(pos layout.Position) {
		if _, ok := seen[pos]; ok {
			return
		}
		seen[pos] = struct{}{}
		list = append(list, pos)
	})
	return list
}

func walkRefs(expr Expr, visit func(layout.Position)) {
	switch e := expr.(type) {
	case cellRef:
		visit(e.pos)
	case unary:
		walkRefs(e.expr, visit)
	case binary:
		walkRefs(e.left, visit)
		walkRefs(e.right, visit)
	}
}

// graphState is the one shot state of a sorting pass. Each cell of the
// table gets a dense id so resolving a dependency is an array write
// instead of a map removal.
type graphState struct {
	addrs      []layout.Position
	remaining  []int
	dependents [][]int
	noDeps     []int
	blocked    int
}

// buildState indexes the table and records, per cell, how many of its
// references point at cells of the table together with the transpose
// adjacency. References to absent cells put no edge in the graph: the
// sorter does not validate that referenced cells exist, the evaluator
// does. Self references and diamonds need no special handling, a self
// loop is just a cycle of one.
func buildState(cells map[layout.Position]Expr) *graphState {
	st := graphState{
		addrs:      make([]layout.Position, 0, len(cells)),
		remaining:  make([]int, len(cells)),
		dependents: make([][]int, len(cells)),
	}
	ids := make(map[layout.Position]int, len(cells))
	for pos := range cells {
		ids[pos] = len(st.addrs)
		st.addrs = append(st.addrs, pos)
	}
	for pos, expr := range cells {
		var (
			id    = ids[pos]
			count int
		)
		for _, dep := range Dependencies(expr) {
			ref, ok := ids[dep]
			if !ok {
				continue
			}
			st.dependents[ref] = append(st.dependents[ref], id)
			count++
		}
		st.remaining[id] = count
		if count == 0 {
			st.noDeps = append(st.noDeps, id)
		} else {
			st.blocked++
		}
	}
	return &st
}

// Sort produces an evaluation order over the table using Kahn's
// algorithm: cells with no unresolved references are popped off a
// worklist and resolved for their dependents. Relative order among
// independent cells is unspecified. Cells still blocked when the
// worklist drains are reported, sorted, in a CycleError.
func Sort(cells map[layout.Position]Expr) ([]layout.Position, error) {
	var (
		st    = buildState(cells)
		order = make([]layout.Position, 0, len(st.addrs))
		work  = st.noDeps
	)
	for len(work) > 0 {
		id := work[len(work)-1]
		work = work[:len(work)-1]
		order = append(order, st.addrs[id])
		for _, dep := range st.dependents[id] {
			st.remaining[dep]--
			if st.remaining[dep] == 0 {
				work = append(work, dep)
				st.blocked--
			}
		}
	}
	if st.blocked > 0 {
		var stuck []layout.Position
		for id, left := range st.remaining {
			if left > 0 {
				stuck = append(stuck, st.addrs[id])
			}
		}
		slices.SortFunc(stuck, func(a, b layout.Position) int {
			if a.Less(b) {
				return -1
			}
			if b.Less(a) {
				return 1
			}
			return 0
		})
		return nil, CycleError{Cells: stuck}
	}
	return order, nil
}
