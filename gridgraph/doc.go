// Package gridgraph treats a rectangular grid of cells as an undirected,
// unit-weight graph with 4-directional adjacency, and lets walls be painted
// and erased at run time.
//
// What:
//
//   - GridGraph holds Rows×Cols Nodes; each Node links to at most four
//     neighbours (Up, Left, Down, Right).
//   - SeverEdges / RestoreEdges cut or re-create the links of one cell and
//     its immediate neighbours, symmetrically.
//   - SetWall / ClearWall combine the structural change with the Wall/Clear
//     state tag.
//   - Regions lists connected regions of walkable cells.
//
// Why:
//
//   - Walls are structural, so a search never needs to test "is this a
//     wall?" on the hot path; it simply never sees the edge.
//   - Node.State carries the small cosmetic tag a host needs to render
//     progress (Traversed, Path, Error), keyed by Node.ID.
//
// Complexity:
//
//   - New:                  O(R×C) time and memory.
//   - SeverEdges/RestoreEdges: O(1).
//   - Regions, ClearAll:    O(R×C).
//
// Errors:
//
//   - ErrEmptyGrid: rows or cols < 1.
//   - ErrOutOfBounds: coordinate outside the grid.
package gridgraph
