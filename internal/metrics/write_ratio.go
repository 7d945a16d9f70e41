package metrics

import "github.com/san-kum/sortvis/internal/sorting"

// WriteRatio is the fraction of steps that changed the dataset.
type WriteRatio struct {
	name    string
	writes  int
	samples int
}

func NewWriteRatio() *WriteRatio {
	return &WriteRatio{
		name: "write_ratio",
	}
}

func (w *WriteRatio) Name() string {
	return w.name
}

func (w *WriteRatio) Observe(step sorting.Step, data *sorting.Dataset) {
	if step.Mutated {
		w.writes++
	}
	w.samples++
}

func (w *WriteRatio) Value() float64 {
	if w.samples == 0 {
		return 0
	}
	return float64(w.writes) / float64(w.samples)
}

func (w *WriteRatio) Reset() {
	w.writes = 0
	w.samples = 0
}

// Coverage is the fraction of positions that were ever the primary mark.
type Coverage struct {
	name    string
	touched map[int]struct{}
	size    int
}

func NewCoverage() *Coverage {
	return &Coverage{
		name:    "coverage",
		touched: make(map[int]struct{}),
	}
}

func (c *Coverage) Name() string { return c.name }

func (c *Coverage) Observe(step sorting.Step, data *sorting.Dataset) {
	c.size = data.Len()
	for _, m := range step.Marks {
		if m.Role == sorting.RolePrimary && m.Index >= 0 && m.Index < c.size {
			c.touched[m.Index] = struct{}{}
		}
	}
}

func (c *Coverage) Value() float64 {
	if c.size == 0 {
		return 0
	}
	return float64(len(c.touched)) / float64(c.size)
}

func (c *Coverage) Reset() {
	clear(c.touched)
	c.size = 0
}
