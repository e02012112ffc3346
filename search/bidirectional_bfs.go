package search

import (
	"math"

	"github.com/google/uuid"

	"github.com/raj457036/Path-Finding-Visualizer/frontier"
	"github.com/raj457036/Path-Finding-Visualizer/gridgraph"
)

// front is one direction of a bidirectional breadth-first search.
type front struct {
	root   *gridgraph.Node
	queue  *frontier.Queue[*gridgraph.Node]
	depth  map[uuid.UUID]int
	parent map[uuid.UUID]*gridgraph.Node
}

func newFront(root *gridgraph.Node) *front {
	f := &front{
		root:   root,
		queue:  frontier.NewQueue[*gridgraph.Node](64),
		depth:  map[uuid.UUID]int{root.ID: 0},
		parent: make(map[uuid.UUID]*gridgraph.Node),
	}
	f.queue.Enqueue(root)
	return f
}

// head returns the depth of the next node to dequeue, or MaxInt when empty.
func (f *front) head() int {
	n, ok := f.queue.Front()
	if !ok {
		return math.MaxInt
	}
	return f.depth[n.ID]
}

// bidirectionalBFS runs one BFS from start and one from end, alternating one
// dequeue per side per step. Every scanned edge whose far node is labelled
// by the other side is a meeting candidate; the shortest one is kept and
// the search stops once the sum of the two front depths reaches it.
type bidirectionalBFS struct {
	runner

	fwd, bwd *front

	best     int
	meetFrom *gridgraph.Node // reached from start
	meetTo   *gridgraph.Node // reached from end
}

func newBidirectionalBFS(opts Options) *bidirectionalBFS {
	a := &bidirectionalBFS{}
	a.runner = newRunner(string(BidirectionalBFS), opts, a.setup, a.advance, a.discard)
	return a
}

func (a *bidirectionalBFS) setup() {
	a.fwd = newFront(a.start)
	a.bwd = newFront(a.end)
	a.best = math.MaxInt
	a.meetFrom, a.meetTo = nil, nil
}

func (a *bidirectionalBFS) advance() {
	if a.expand(a.fwd, a.bwd, true) {
		return
	}
	a.expand(a.bwd, a.fwd, false)
}

// expand dequeues one node of `side` and scans its edges. It returns true
// when the run finished.
func (a *bidirectionalBFS) expand(side, other *front, forward bool) bool {
	cur, ok := side.queue.Dequeue()
	if !ok {
		// this side's region is exhausted
		if a.best == math.MaxInt {
			a.finish(nil)
		} else {
			a.done()
		}
		return true
	}

	d := side.depth[cur.ID]
	a.visit(cur, d)

	for _, nb := range cur.Neighbors() {
		if od, ok := other.depth[nb.ID]; ok {
			if cand := d + 1 + od; cand < a.best {
				a.best = cand
				if forward {
					a.meetFrom, a.meetTo = cur, nb
				} else {
					a.meetFrom, a.meetTo = nb, cur
				}
			}
		}
		if _, seen := side.depth[nb.ID]; seen {
			continue
		}
		side.depth[nb.ID] = d + 1
		side.parent[nb.ID] = cur
		side.queue.Enqueue(nb)
	}
	return a.settled()
}

// settled finishes the run when no unexplored edge can beat the best
// meeting found so far.
func (a *bidirectionalBFS) settled() bool {
	if a.best == math.MaxInt {
		return false
	}
	hf, hb := a.fwd.head(), a.bwd.head()
	if hf != math.MaxInt && hb != math.MaxInt && hf+hb < a.best {
		return false
	}
	a.done()
	return true
}

func (a *bidirectionalBFS) done() {
	a.finish(func() ([]*gridgraph.Node, error) {
		return join(a.fwd.parent, a.bwd.parent, a.start, a.end, a.meetFrom, a.meetTo)
	})
}

func (a *bidirectionalBFS) discard() {
	if a.fwd != nil {
		a.fwd.queue.Reset()
	}
	if a.bwd != nil {
		a.bwd.queue.Reset()
	}
}
