package algorithms

import "github.com/san-kum/sortvis/internal/sorting"

type mergePhase int

const (
	phaseMerge mergePhase = iota
	phaseDrain
	phaseCopy
)

// Merge is a bottom-up merge sort. Runs of width 1, 2, 4, ... are merged
// pairwise into a scratch buffer one cell per Advance, then copied back one
// cell per Advance. Ties take the left run, which keeps the sort stable.
//
// The scratch buffer mirrors the dataset outside the block being merged, so
// the tail of the right run, already in its final place, is never rewritten.
type Merge struct {
	data    *sorting.Dataset
	dir     sorting.Direction
	scratch []int

	width int
	start int

	inBlock    bool
	phase      mergePhase
	from, mid  int
	to         int
	i, j, k, c int

	done bool
}

func NewMerge(data *sorting.Dataset, dir sorting.Direction) *Merge {
	mustBind(data, dir)
	return &Merge{
		data:    data,
		dir:     dir,
		scratch: data.Values(),
		width:   1,
	}
}

func (m *Merge) Advance() (sorting.Step, bool) {
	high := m.data.Len() - 1
	for !m.done {
		if !m.inBlock {
			if m.width > high {
				m.done = true
				break
			}
			if m.start >= high {
				m.width *= 2
				m.start = 0
				continue
			}
			m.from = m.start
			m.mid = m.start + m.width - 1
			m.to = min(m.start+2*m.width-1, high)
			m.i, m.j, m.k = m.from, m.mid+1, m.from
			m.phase = phaseMerge
			m.inBlock = true
			m.start += 2 * m.width
		}

		switch m.phase {
		case phaseMerge:
			if m.i <= m.mid && m.j <= m.to {
				left, right := m.data.At(m.i), m.data.At(m.j)
				if m.dir.InOrder(left, right) {
					m.scratch[m.k] = left
					m.i++
				} else {
					m.scratch[m.k] = right
					m.j++
				}
				m.k++
				return m.step(m.i, false), true
			}
			m.phase = phaseDrain

		case phaseDrain:
			if m.i <= m.mid && m.i <= high {
				m.scratch[m.k] = m.data.At(m.i)
				m.k++
				m.i++
				return m.step(m.i, false), true
			}
			m.phase = phaseCopy
			m.c = m.from

		case phaseCopy:
			if m.c <= m.to {
				c := m.c
				m.c++
				changed := m.data.At(c) != m.scratch[c]
				m.data.Set(c, m.scratch[c])
				return m.step(c, changed), true
			}
			m.inBlock = false
		}
	}
	return sorting.Step{}, false
}

func (m *Merge) step(primary int, mutated bool) sorting.Step {
	return sorting.Step{
		Marks: []sorting.Mark{
			{Index: primary, Role: sorting.RolePrimary},
			{Index: m.j, Role: sorting.RoleScan},
			{Index: m.k, Role: sorting.RoleMergeCursor},
			{Index: m.width, Role: sorting.RolePivotLow},
		},
		Mutated: mutated,
	}
}
