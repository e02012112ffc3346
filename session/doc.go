// Package session is the host-side context for one grid: it owns the
// GridGraph, the active tool, the start and end cells, the selected search
// variant and speed, and the scheduler of the current run.
//
// A Session is built once per grid lifetime and rebuilt by Resize. While a
// run is active (prepared and not yet Done or Stopped) every edit is
// refused with ErrRunning, so the structure a search is walking never
// changes under it.
//
// Placing the start or end on a wall clears that wall and remembers it;
// moving the endpoint elsewhere puts the wall back. Resetting the traversal
// forgets those walls.
//
// Hooks passed through WithSchedulerOptions run after the scheduler lock is
// released, so they may call Session methods. View reads the grid under the
// session lock.
package session
