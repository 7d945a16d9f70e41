package algorithms

import "github.com/san-kum/sortvis/internal/sorting"

type span struct{ lo, hi int }

// Quick is an iterative Lomuto quicksort driven by an explicit span stack.
// Every scan position of a partition is one Advance, as is the final pivot
// placement.
type Quick struct {
	data  *sorting.Dataset
	dir   sorting.Direction
	stack []span

	active bool
	lo, hi int
	i, j   int
	pivot  int

	done bool
}

func NewQuick(data *sorting.Dataset, dir sorting.Direction) *Quick {
	mustBind(data, dir)
	q := &Quick{data: data, dir: dir}
	if n := data.Len(); n > 1 {
		q.stack = append(q.stack, span{0, n - 1})
	}
	return q
}

func (q *Quick) Advance() (sorting.Step, bool) {
	if q.done {
		return sorting.Step{}, false
	}

	if !q.active {
		if len(q.stack) == 0 {
			q.done = true
			return sorting.Step{}, false
		}
		top := q.stack[len(q.stack)-1]
		q.stack = q.stack[:len(q.stack)-1]
		q.lo, q.hi = top.lo, top.hi
		q.i, q.j = top.lo-1, top.lo
		q.pivot = q.data.At(top.hi)
		q.active = true
	}

	if q.j < q.hi {
		j := q.j
		q.j++
		mutated := false
		if q.dir.InOrder(q.data.At(j), q.pivot) {
			q.i++
			if q.i != j {
				q.data.Swap(q.i, j)
				mutated = true
			}
		}
		return sorting.Step{
			Marks: []sorting.Mark{
				{Index: q.i, Role: sorting.RolePrimary},
				{Index: j, Role: sorting.RoleScan},
				{Index: q.lo, Role: sorting.RolePivotLow},
				{Index: q.hi, Role: sorting.RolePivotHigh},
			},
			Mutated: mutated,
		}, true
	}

	p := q.i + 1
	mutated := p != q.hi
	if mutated {
		q.data.Swap(p, q.hi)
	}
	q.active = false
	if p-1 > q.lo {
		q.stack = append(q.stack, span{q.lo, p - 1})
	}
	if p+1 < q.hi {
		q.stack = append(q.stack, span{p + 1, q.hi})
	}
	return sorting.Step{
		Marks: []sorting.Mark{
			{Index: p, Role: sorting.RolePrimary},
			{Index: q.lo, Role: sorting.RolePivotLow},
			{Index: q.hi, Role: sorting.RolePivotHigh},
		},
		Mutated: mutated,
	}, true
}
