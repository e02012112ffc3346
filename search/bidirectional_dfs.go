package search

import (
	"github.com/google/uuid"

	"github.com/raj457036/Path-Finding-Visualizer/frontier"
	"github.com/raj457036/Path-Finding-Visualizer/gridgraph"
)

// dive is one direction of a bidirectional depth-first search.
type dive struct {
	root    *gridgraph.Node
	stack   *frontier.Stack[*gridgraph.Node]
	visited map[uuid.UUID]bool
	parent  map[uuid.UUID]*gridgraph.Node
	depth   map[uuid.UUID]int
}

func newDive(root *gridgraph.Node) *dive {
	d := &dive{
		root:    root,
		stack:   frontier.NewStack[*gridgraph.Node](64),
		visited: make(map[uuid.UUID]bool),
		parent:  make(map[uuid.UUID]*gridgraph.Node),
		depth:   map[uuid.UUID]int{root.ID: 0},
	}
	d.stack.Push(root)
	return d
}

// seen reports whether this side already owns n: its root or a node it
// finalized.
func (d *dive) seen(n *gridgraph.Node) bool {
	return n == d.root || d.visited[n.ID]
}

// bidirectionalDFS runs one DFS from start and one from end, alternating one
// pop per side per step. The fronts meet when either side pops a node the
// other side already owns.
type bidirectionalDFS struct {
	runner

	fwd, bwd *dive
}

func newBidirectionalDFS(opts Options) *bidirectionalDFS {
	a := &bidirectionalDFS{}
	a.runner = newRunner(string(BidirectionalDFS), opts, a.setup, a.advance, a.discard)
	return a
}

func (a *bidirectionalDFS) setup() {
	a.fwd = newDive(a.start)
	a.bwd = newDive(a.end)
}

func (a *bidirectionalDFS) advance() {
	if a.expand(a.fwd, a.bwd) {
		return
	}
	a.expand(a.bwd, a.fwd)
}

// expand pops one live node of `side`. It returns true when the run finished.
func (a *bidirectionalDFS) expand(side, other *dive) bool {
	var cur *gridgraph.Node
	for {
		n, ok := side.stack.Pop()
		if !ok {
			// one whole region explored without touching the other side
			a.finish(nil)
			return true
		}
		if !side.visited[n.ID] {
			cur = n
			break
		}
	}

	side.visited[cur.ID] = true
	a.visit(cur, side.depth[cur.ID])

	if other.seen(cur) {
		a.finish(func() ([]*gridgraph.Node, error) {
			return join(a.fwd.parent, a.bwd.parent, a.start, a.end, cur, cur)
		})
		return true
	}

	for _, nb := range cur.Neighbors() {
		if side.visited[nb.ID] {
			continue
		}
		side.parent[nb.ID] = cur
		side.depth[nb.ID] = side.depth[cur.ID] + 1
		side.stack.Push(nb)
	}
	return false
}

func (a *bidirectionalDFS) discard() {
	if a.fwd != nil {
		a.fwd.stack.Reset()
	}
	if a.bwd != nil {
		a.bwd.stack.Reset()
	}
}
