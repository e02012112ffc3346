package search

import (
	"github.com/google/uuid"

	"github.com/raj457036/Path-Finding-Visualizer/frontier"
	"github.com/raj457036/Path-Finding-Visualizer/gridgraph"
)

// bfs explores level by level with a FIFO queue. The parent of a node is
// fixed on its first discovery.
type bfs struct {
	runner

	queue  *frontier.Queue[*gridgraph.Node]
	depth  map[uuid.UUID]int // doubles as the discovered set
	parent map[uuid.UUID]*gridgraph.Node
}

func newBFS(opts Options) *bfs {
	a := &bfs{}
	a.runner = newRunner(string(BFS), opts, a.setup, a.advance, a.discard)
	return a
}

func (a *bfs) setup() {
	a.queue = frontier.NewQueue[*gridgraph.Node](64)
	a.depth = map[uuid.UUID]int{a.start.ID: 0}
	a.parent = make(map[uuid.UUID]*gridgraph.Node)
	a.queue.Enqueue(a.start)
}

func (a *bfs) advance() {
	cur, ok := a.queue.Dequeue()
	if !ok {
		a.finish(nil)
		return
	}

	d := a.depth[cur.ID]
	a.visit(cur, d)
	if cur == a.end {
		a.finish(func() ([]*gridgraph.Node, error) {
			return walk(a.parent, a.end, a.start)
		})
		return
	}

	for _, nb := range cur.Neighbors() {
		if _, seen := a.depth[nb.ID]; seen {
			continue
		}
		a.depth[nb.ID] = d + 1
		a.parent[nb.ID] = cur
		a.queue.Enqueue(nb)
	}
}

func (a *bfs) discard() {
	if a.queue != nil {
		a.queue.Reset()
	}
}
