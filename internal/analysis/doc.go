// Package analysis inspects population series from finished runs.
//
// Populations of oscillators and spaceships repeat; [DominantPeriod] finds
// that repetition from the frequency spectrum, which also works on noisy
// soups that never settle into an exact grid cycle.
package analysis
