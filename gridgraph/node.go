package gridgraph

// Neighbors returns the current neighbours of n in Up, Left, Down, Right order.
// Complexity: O(1).
func (n *Node) Neighbors() []*Node {
	out := make([]*Node, 0, 4)
	for _, nb := range n.adj {
		if nb != nil {
			out = append(out, nb)
		}
	}
	return out
}

// Degree reports how many edges n currently has (0..4).
func (n *Node) Degree() int {
	d := 0
	for _, nb := range n.adj {
		if nb != nil {
			d++
		}
	}
	return d
}

// Neighbor returns the neighbour in direction d, or nil.
func (n *Node) Neighbor(d Direction) *Node {
	return n.adj[d]
}

// IsWall reports whether n is tagged as a wall (or a wall reached in error).
func (n *Node) IsWall() bool {
	return n.State == Wall || n.State == Error
}

// MarkTraversed tags n as finalized by a traversal. Start and End keep
// their tags. A wall should never be reachable; if it is, n becomes Error.
func (n *Node) MarkTraversed() {
	switch n.State {
	case Start, End, Error:
		return
	case Wall:
		n.State = Error
		return
	}
	n.State = Traversed
}

// MarkPath promotes a Traversed node to Path. Other states are left alone,
// so the start and end cells keep their tags during replay.
func (n *Node) MarkPath() {
	if n.State == Traversed {
		n.State = Path
	}
}

// MarkError tags n as an inconsistent wall.
func (n *Node) MarkError() { n.State = Error }

// MarkClear resets n to Clear.
func (n *Node) MarkClear() { n.State = Clear }
