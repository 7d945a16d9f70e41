package registry

import (
	"fmt"

	"github.com/san-kum/sortvis/internal/algorithms"
	"github.com/san-kum/sortvis/internal/sorting"
)

type Factory func(data *sorting.Dataset, dir sorting.Direction) sorting.Producer

// Entry describes one selectable algorithm.
type Entry struct {
	Key  string
	Name string
	New  Factory
}

type Registry struct {
	entries map[string]Entry
	order   []string
}

func NewRegistry() *Registry {
	r := &Registry{entries: make(map[string]Entry)}

	r.add("bubble", "Bubble Sort", func(d *sorting.Dataset, dir sorting.Direction) sorting.Producer {
		return algorithms.NewBubble(d, dir)
	})
	r.add("insertion", "Insertion Sort", func(d *sorting.Dataset, dir sorting.Direction) sorting.Producer {
		return algorithms.NewInsertion(d, dir)
	})
	r.add("quick", "Quick Sort", func(d *sorting.Dataset, dir sorting.Direction) sorting.Producer {
		return algorithms.NewQuick(d, dir)
	})
	r.add("merge", "Merge Sort", func(d *sorting.Dataset, dir sorting.Direction) sorting.Producer {
		return algorithms.NewMerge(d, dir)
	})

	return r
}

func (r *Registry) add(key, name string, fn Factory) {
	r.entries[key] = Entry{Key: key, Name: name, New: fn}
	r.order = append(r.order, key)
}

func (r *Registry) Get(key string) (Entry, error) {
	e, ok := r.entries[key]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %s", sorting.ErrUnknownAlgorithm, key)
	}
	return e, nil
}

// List returns the entries in registration order.
func (r *Registry) List() []Entry {
	out := make([]Entry, 0, len(r.order))
	for _, k := range r.order {
		out = append(out, r.entries[k])
	}
	return out
}

func (r *Registry) Keys() []string {
	keys := make([]string, len(r.order))
	copy(keys, r.order)
	return keys
}
