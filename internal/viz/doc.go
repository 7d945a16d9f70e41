// Package viz renders a dataset as bars and drives the terminal front end.
//
// Rendering is split in two: [Project] turns a dataset, its highlights and
// the active algorithm into a [Frame] in viewport pixels, and painters draw
// that frame. The terminal painter scales the bar field onto a [Canvas] of
// eighth-block cells; the window front end in internal/gui draws the frame
// as is.
//
// # Key Bindings
//
//	R     - Reset with a fresh dataset
//	Space - Start sorting
//	A / D - Ascending / Descending
//	I B Q M - Insertion / Bubble / Quick / Merge sort
//	T     - Cycle color themes
//	?     - Show help
//	Esc   - Quit
package viz
