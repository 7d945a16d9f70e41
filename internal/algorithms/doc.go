// Package algorithms provides the step producers for each sorting algorithm.
//
// Each producer implements [sorting.Producer]. The loop state that a
// straight-line sort would keep on its stack lives in the producer struct, so
// every Advance performs one action and returns:
//
//   - [Bubble]: exchange sort, one comparison per step
//   - [Insertion]: insertion sort, one shift per step
//   - [Quick]: iterative Lomuto quicksort, one scan position per step
//   - [Merge]: bottom-up merge sort, one scratch or copy-back write per step
//
// # Example
//
//	p := algorithms.NewQuick(data, sorting.Descending)
//	for step, ok := p.Advance(); ok; step, ok = p.Advance() {
//	    draw(data, step.Roles(data.Len()))
//	}
package algorithms

import (
	"fmt"

	"github.com/san-kum/sortvis/internal/sorting"
)

// mustBind panics on arguments no producer can run with.
func mustBind(data *sorting.Dataset, dir sorting.Direction) {
	if data == nil || data.Len() == 0 {
		panic(sorting.ErrEmptyDataset)
	}
	if !dir.Valid() {
		panic(fmt.Errorf("%w: %d", sorting.ErrInvalidDirection, int(dir)))
	}
}
