// Package life provides the grid model and generation rule for Conway's
// Game of Life on a bounded field.
//
//   - [Cell]: a single life-state holder
//   - [Field]: a width × height grid of cells with the B3/S23 update rule
//
// Edges do not wrap: positions outside the field are treated as absent,
// so border and corner cells have fewer neighbours.
//
// # Example
//
//	f, _ := life.New(15, 10)
//	f.ToggleCell(1, 0)
//	f.ToggleCell(1, 1)
//	f.ToggleCell(1, 2)
//	f.Update()
//
// # Thread Safety
//
// Field is NOT thread-safe. It is meant to be driven from a single logical
// thread, such as the callbacks of a [sim.App].
package life
