package search

import (
	"github.com/google/uuid"

	"github.com/raj457036/Path-Finding-Visualizer/frontier"
	"github.com/raj457036/Path-Finding-Visualizer/gridgraph"
)

// dfs explores depth-first with a LIFO stack. A node is pushed again every
// time it is rediscovered; stale entries are skipped at pop time.
type dfs struct {
	runner

	stack   *frontier.Stack[*gridgraph.Node]
	visited map[uuid.UUID]bool
	parent  map[uuid.UUID]*gridgraph.Node
	depth   map[uuid.UUID]int
}

func newDFS(opts Options) *dfs {
	a := &dfs{}
	a.runner = newRunner(string(DFS), opts, a.setup, a.advance, a.discard)
	return a
}

func (a *dfs) setup() {
	a.stack = frontier.NewStack[*gridgraph.Node](64)
	a.visited = make(map[uuid.UUID]bool)
	a.parent = make(map[uuid.UUID]*gridgraph.Node)
	a.depth = map[uuid.UUID]int{a.start.ID: 0}
	a.stack.Push(a.start)
}

func (a *dfs) advance() {
	// lazy deletion: drop entries for nodes finalized since they were pushed
	var cur *gridgraph.Node
	for {
		n, ok := a.stack.Pop()
		if !ok {
			a.finish(nil)
			return
		}
		if !a.visited[n.ID] {
			cur = n
			break
		}
	}

	a.visited[cur.ID] = true
	a.visit(cur, a.depth[cur.ID])
	if cur == a.end {
		a.finish(func() ([]*gridgraph.Node, error) {
			return walk(a.parent, a.end, a.start)
		})
		return
	}

	for _, nb := range cur.Neighbors() {
		if a.visited[nb.ID] {
			continue
		}
		// the most recent push wins the parent slot
		a.parent[nb.ID] = cur
		a.depth[nb.ID] = a.depth[cur.ID] + 1
		a.stack.Push(nb)
	}
}

func (a *dfs) discard() {
	if a.stack != nil {
		a.stack.Reset()
	}
}
