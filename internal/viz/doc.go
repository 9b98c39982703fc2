// Package viz provides the interactive terminal board built on Bubble Tea.
//
// The App's ticks are delivered through [Scheduler], which turns timer
// expiries into messages so that every callback runs inside Model.Update.
//
// # Key Bindings
//
//	Space - Start/stop the loop
//	N     - Step one generation while stopped
//	C     - Clear the field
//	R     - Fill with a new random soup
//	T     - Cycle color themes
//	?     - Toggle help
//	Q     - Stop and quit
//
// A left click toggles the cell under the pointer.
package viz
