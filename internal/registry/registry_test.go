package registry

import (
	"errors"
	"testing"

	"github.com/san-kum/sortvis/internal/sorting"
)

func TestRegistryEntries(t *testing.T) {
	r := NewRegistry()

	tests := []struct {
		key  string
		name string
	}{
		{"bubble", "Bubble Sort"},
		{"insertion", "Insertion Sort"},
		{"quick", "Quick Sort"},
		{"merge", "Merge Sort"},
	}

	for _, tt := range tests {
		e, err := r.Get(tt.key)
		if err != nil {
			t.Fatalf("%s: %v", tt.key, err)
		}
		if e.Name != tt.name {
			t.Errorf("%s: expected name %q, got %q", tt.key, tt.name, e.Name)
		}

		data := sorting.NewDataset([]int{2, 1, 3}, 0, 3)
		p := e.New(data, sorting.Ascending)
		for _, ok := p.Advance(); ok; _, ok = p.Advance() {
		}
		if !sorting.IsSorted(data.Values(), sorting.Ascending) {
			t.Errorf("%s: producer did not sort: %v", tt.key, data.Values())
		}
	}
}

func TestRegistryUnknown(t *testing.T) {
	_, err := NewRegistry().Get("bogo")
	if !errors.Is(err, sorting.ErrUnknownAlgorithm) {
		t.Errorf("expected ErrUnknownAlgorithm, got %v", err)
	}
}

func TestRegistryOrder(t *testing.T) {
	keys := NewRegistry().Keys()
	want := []string{"bubble", "insertion", "quick", "merge"}
	if len(keys) != len(want) {
		t.Fatalf("expected %d keys, got %v", len(want), keys)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], keys[i])
		}
	}
}
