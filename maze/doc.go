// Package maze paints walls onto a grid: scattered random walls, or a
// recursive-division maze whose open cells stay connected.
//
// Generators write through the small Grid interface, which
// *gridgraph.GridGraph satisfies, and never touch cells for which the Skip
// predicate returns true (typically the start and end cells).
//
// Randomness comes from a caller-owned *rand.Rand so a seed reproduces the
// same layout.
package maze
