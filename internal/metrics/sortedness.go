package metrics

import "github.com/san-kum/sortvis/internal/sorting"

// Sortedness reports how sorted the dataset was after the latest step.
type Sortedness struct {
	name    string
	dir     sorting.Direction
	current float64
	samples int
}

func NewSortedness(dir sorting.Direction) *Sortedness {
	return &Sortedness{
		name: "sortedness",
		dir:  dir,
	}
}

func (s *Sortedness) Name() string { return s.name }

func (s *Sortedness) Observe(step sorting.Step, data *sorting.Dataset) {
	s.current = sorting.Sortedness(data.Values(), s.dir)
	s.samples++
}

func (s *Sortedness) Value() float64 {
	if s.samples == 0 {
		return 0
	}
	return s.current
}

func (s *Sortedness) Reset() {
	s.current = 0
	s.samples = 0
}

// Monotonicity is the fraction of steps after which sortedness did not drop.
// Exchange and insertion sorts score 1; merge copy-back and partition swaps
// can briefly make the dataset less sorted.
type Monotonicity struct {
	name        string
	dir         sorting.Direction
	prev        float64
	regressions int
	samples     int
}

func NewMonotonicity(dir sorting.Direction) *Monotonicity {
	return &Monotonicity{
		name: "monotonicity",
		dir:  dir,
		prev: -1,
	}
}

func (m *Monotonicity) Name() string {
	return m.name
}

func (m *Monotonicity) Observe(step sorting.Step, data *sorting.Dataset) {
	m.samples++
	if !step.Mutated {
		return
	}
	cur := sorting.Sortedness(data.Values(), m.dir)
	if m.prev >= 0 && cur < m.prev {
		m.regressions++
	}
	m.prev = cur
}

func (m *Monotonicity) Value() float64 {
	if m.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(m.regressions)/float64(m.samples)
}

func (m *Monotonicity) Reset() {
	m.prev = -1
	m.regressions = 0
	m.samples = 0
}
