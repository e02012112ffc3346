package gridgraph

import (
	"fmt"

	"github.com/google/uuid"
)

// New allocates a rows×cols grid and links every node to its in-bounds
// 4-neighbours. All nodes start Clear.
// Returns ErrEmptyGrid if rows < 1 or cols < 1.
// Complexity: O(rows×cols) time and memory.
func New(rows, cols int) (*GridGraph, error) {
	if rows < 1 || cols < 1 {
		return nil, ErrEmptyGrid
	}
	gg := &GridGraph{Rows: rows, Cols: cols}
	gg.nodes = make([][]*Node, rows)
	for r := 0; r < rows; r++ {
		row := make([]*Node, cols)
		for c := 0; c < cols; c++ {
			row[c] = &Node{
				ID:    uuid.New(),
				Row:   r,
				Col:   c,
				Index: gg.Index(r, c),
				State: Clear,
			}
		}
		gg.nodes[r] = row
	}
	// Linking only Down and Right visits every edge exactly once.
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			n := gg.nodes[r][c]
			if r+1 < rows {
				link(n, gg.nodes[r+1][c], Down)
			}
			if c+1 < cols {
				link(n, gg.nodes[r][c+1], Right)
			}
		}
	}
	return gg, nil
}

// InBounds reports whether (r,c) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(r, c int) bool {
	return r >= 0 && r < gg.Rows && c >= 0 && c < gg.Cols
}

// Size returns Rows and Cols.
func (gg *GridGraph) Size() (rows, cols int) {
	return gg.Rows, gg.Cols
}

// NodeCount returns Rows*Cols.
func (gg *GridGraph) NodeCount() int {
	return gg.Rows * gg.Cols
}

// Node returns the node at (r,c) or ErrOutOfBounds.
func (gg *GridGraph) Node(r, c int) (*Node, error) {
	if !gg.InBounds(r, c) {
		return nil, fmt.Errorf("%w: (%d,%d) in %dx%d grid", ErrOutOfBounds, r, c, gg.Rows, gg.Cols)
	}
	return gg.nodes[r][c], nil
}

// MustNode is like Node but panics on an out-of-bounds coordinate.
// Intended for tests and for callers that already validated (r,c).
func (gg *GridGraph) MustNode(r, c int) *Node {
	n, err := gg.Node(r, c)
	if err != nil {
		panic(err)
	}
	return n
}

// Each calls fn for every node in row-major order.
func (gg *GridGraph) Each(fn func(n *Node)) {
	for _, row := range gg.nodes {
		for _, n := range row {
			fn(n)
		}
	}
}

// SeverEdges cuts every edge between node(r,c) and its neighbours, on both
// sides. Severing an already isolated node is a no-op.
// Only node(r,c) and its immediate neighbours are touched.
// Complexity: O(1).
func (gg *GridGraph) SeverEdges(r, c int) error {
	n, err := gg.Node(r, c)
	if err != nil {
		return err
	}
	for d, nb := range n.adj {
		if nb == nil {
			continue
		}
		nb.adj[Direction(d).opposite()] = nil
		n.adj[d] = nil
	}
	return nil
}

// RestoreEdges re-links node(r,c) to each in-bounds neighbour that is not a
// wall. Restoring an already linked edge is a no-op, so the call is
// idempotent, and SeverEdges followed by RestoreEdges yields the original
// neighbour set.
// Complexity: O(1).
func (gg *GridGraph) RestoreEdges(r, c int) error {
	n, err := gg.Node(r, c)
	if err != nil {
		return err
	}
	for d, off := range offsets {
		nr, nc := r+off[0], c+off[1]
		if !gg.InBounds(nr, nc) {
			continue
		}
		nb := gg.nodes[nr][nc]
		if nb.IsWall() {
			continue
		}
		link(n, nb, Direction(d))
	}
	return nil
}

// SetWall severs node(r,c) and tags it Wall.
func (gg *GridGraph) SetWall(r, c int) error {
	if err := gg.SeverEdges(r, c); err != nil {
		return err
	}
	gg.nodes[r][c].State = Wall
	return nil
}

// ClearWall tags node(r,c) Clear and restores its edges.
func (gg *GridGraph) ClearWall(r, c int) error {
	n, err := gg.Node(r, c)
	if err != nil {
		return err
	}
	n.State = Clear
	return gg.RestoreEdges(r, c)
}

// ResetTraversal turns every Traversed or Path node back to Clear.
// Walls, endpoints and Error nodes are kept.
func (gg *GridGraph) ResetTraversal() {
	gg.Each(func(n *Node) {
		if n.State == Traversed || n.State == Path {
			n.State = Clear
		}
	})
}

// FixWalls re-severs every wall and turns Error nodes back into walls.
// Call it before a run so that no wall is reachable.
func (gg *GridGraph) FixWalls() {
	gg.Each(func(n *Node) {
		if !n.IsWall() {
			return
		}
		n.State = Wall
		_ = gg.SeverEdges(n.Row, n.Col)
	})
}

// ClearAll resets every node to Clear and restores full 4-adjacency.
// Complexity: O(Rows×Cols).
func (gg *GridGraph) ClearAll() {
	gg.Each(func(n *Node) { n.State = Clear })
	gg.Each(func(n *Node) { _ = gg.RestoreEdges(n.Row, n.Col) })
}

// Walls returns the number of nodes currently tagged as walls.
func (gg *GridGraph) Walls() int {
	count := 0
	gg.Each(func(n *Node) {
		if n.IsWall() {
			count++
		}
	})
	return count
}

// Index maps (r,c) to a row-major index: r*Cols + c.
// Complexity: O(1).
func (gg *GridGraph) Index(r, c int) int {
	return r*gg.Cols + c
}

// Coordinate converts a row-major index back to (r,c).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (r, c int) {
	return idx / gg.Cols, idx % gg.Cols
}

// link connects a→b in direction d and b→a in the opposite direction.
func link(a, b *Node, d Direction) {
	a.adj[d] = b
	b.adj[d.opposite()] = a
}
