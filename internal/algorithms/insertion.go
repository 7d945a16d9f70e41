package algorithms

import "github.com/san-kum/sortvis/internal/sorting"

// Insertion grows a sorted prefix. Each Advance shifts the element being
// inserted one position to the left; elements already in place are passed
// over without producing a step.
type Insertion struct {
	data     *sorting.Dataset
	dir      sorting.Direction
	boundary int
	pos      int
	scanning bool
	done     bool
}

func NewInsertion(data *sorting.Dataset, dir sorting.Direction) *Insertion {
	mustBind(data, dir)
	return &Insertion{data: data, dir: dir, boundary: 1}
}

func (s *Insertion) Advance() (sorting.Step, bool) {
	for !s.done {
		if !s.scanning {
			if s.boundary >= s.data.Len() {
				s.done = true
				break
			}
			s.pos = s.boundary
			s.scanning = true
		}

		if s.pos > 0 && s.dir.OutOfOrder(s.data.At(s.pos-1), s.data.At(s.pos)) {
			s.data.Swap(s.pos-1, s.pos)
			s.pos--
			return sorting.Step{
				Marks: []sorting.Mark{
					{Index: s.pos, Role: sorting.RolePrimary},
					{Index: s.pos + 1, Role: sorting.RoleSecondary},
				},
				Mutated: true,
			}, true
		}

		s.scanning = false
		s.boundary++
	}
	return sorting.Step{}, false
}
