package algorithms

import "github.com/san-kum/sortvis/internal/sorting"

// Bubble compares adjacent pairs, one comparison per Advance. It always runs
// the full n-1 passes; there is no early exit on a pass without swaps.
type Bubble struct {
	data *sorting.Dataset
	dir  sorting.Direction
	pass int
	j    int
	done bool
}

func NewBubble(data *sorting.Dataset, dir sorting.Direction) *Bubble {
	mustBind(data, dir)
	return &Bubble{data: data, dir: dir}
}

func (b *Bubble) Advance() (sorting.Step, bool) {
	n := b.data.Len()
	for !b.done {
		if b.pass >= n-1 {
			b.done = true
			break
		}
		if b.j >= n-1-b.pass {
			b.pass++
			b.j = 0
			continue
		}

		j := b.j
		b.j++
		swapped := b.dir.OutOfOrder(b.data.At(j), b.data.At(j+1))
		if swapped {
			b.data.Swap(j, j+1)
		}
		return sorting.Step{
			Marks: []sorting.Mark{
				{Index: j, Role: sorting.RolePrimary},
				{Index: j + 1, Role: sorting.RoleSecondary},
			},
			Mutated: swapped,
		}, true
	}
	return sorting.Step{}, false
}
