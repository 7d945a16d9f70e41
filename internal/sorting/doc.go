// Package sorting provides the core primitives of the stepwise sort model.
//
// The package defines the types shared by every algorithm and front end:
//
//   - [Dataset]: the mutable sequence of values being sorted
//   - [Generator]: seeded source of fresh datasets
//   - [Direction]: ascending or descending target order
//   - [Step]: highlight marks produced by one producer activation
//   - [Producer]: resumable computation performing one mutation per Advance
//
// # Example
//
//	gen := sorting.NewGenerator(42, 50, 0, 100)
//	data := gen.Generate()
//	p := algorithms.NewBubble(data, sorting.Ascending)
//	for {
//		step, ok := p.Advance()
//		if !ok {
//			break
//		}
//		_ = step.Roles(data.Len())
//	}
//
// # Thread Safety
//
// Datasets and producers are NOT thread-safe. A dataset is owned by exactly
// one producer at a time; use [Dataset.Clone] to run producers in parallel.
package sorting
