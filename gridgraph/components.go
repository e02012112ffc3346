package gridgraph

// Regions finds all connected regions of non-wall nodes, following the
// current adjacency (so severed edges split regions).
// Returns a slice of regions; each region lists its nodes in BFS order,
// and regions are ordered by their first node in row-major order.
//
// Time:   O(Rows·Cols).
// Memory: O(Rows·Cols) for seen flags and output.
func (gg *GridGraph) Regions() [][]*Node {
	seen := make([]bool, gg.NodeCount())
	var regions [][]*Node

	gg.Each(func(root *Node) {
		if root.IsWall() || seen[root.Index] {
			return
		}
		queue := []*Node{root}
		seen[root.Index] = true
		for qi := 0; qi < len(queue); qi++ {
			for _, nb := range queue[qi].Neighbors() {
				if !seen[nb.Index] {
					seen[nb.Index] = true
					queue = append(queue, nb)
				}
			}
		}
		regions = append(regions, queue)
	})
	return regions
}

// Connected reports whether a and b lie in the same region.
// Complexity: O(Rows·Cols) worst case.
func (gg *GridGraph) Connected(a, b *Node) bool {
	if a == b {
		return true
	}
	seen := make([]bool, gg.NodeCount())
	queue := []*Node{a}
	seen[a.Index] = true
	for qi := 0; qi < len(queue); qi++ {
		for _, nb := range queue[qi].Neighbors() {
			if nb == b {
				return true
			}
			if !seen[nb.Index] {
				seen[nb.Index] = true
				queue = append(queue, nb)
			}
		}
	}
	return false
}
