package sorting

import "errors"

// Domain errors for sorting runs.
var (
	// ErrEmptyDataset indicates a producer was bound to a nil or empty dataset.
	ErrEmptyDataset = errors.New("sorting: dataset is empty")

	// ErrInvalidDirection indicates a direction outside Ascending/Descending.
	ErrInvalidDirection = errors.New("sorting: invalid direction")

	// ErrInvalidRange indicates a value range with max below min.
	ErrInvalidRange = errors.New("sorting: invalid value range")

	// ErrUnknownAlgorithm indicates an algorithm key missing from the registry.
	ErrUnknownAlgorithm = errors.New("sorting: unknown algorithm")

	// ErrRunActive indicates an operation that is only legal while idle.
	ErrRunActive = errors.New("sorting: run in progress")

	// ErrNoDataset indicates a run was requested before any dataset existed.
	ErrNoDataset = errors.New("sorting: no dataset")
)
