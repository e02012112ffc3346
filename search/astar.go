package search

import (
	"slices"

	"github.com/google/uuid"

	"github.com/raj457036/Path-Finding-Visualizer/gridgraph"
)

// openEntry is one node of the A* open set. h is computed once, already
// scaled by the admissible weight.
type openEntry struct {
	node *gridgraph.Node
	h    float64
}

// astar settles the open node with the smallest f = g + w·h per step.
// Ties prefer the smaller h, then the node that was opened first.
type astar struct {
	runner

	open   []openEntry // insertion order
	g      map[uuid.UUID]int
	closed map[uuid.UUID]bool
	parent map[uuid.UUID]*gridgraph.Node
}

func newAStar(opts Options) *astar {
	a := &astar{}
	a.runner = newRunner(string(AStar), opts, a.setup, a.advance, a.discard)
	return a
}

// estimate returns the weighted heuristic from n to the end node.
func (a *astar) estimate(n *gridgraph.Node) float64 {
	return a.opts.AdmissibleWeight * a.opts.Heuristic.Estimate(n, a.end, a.opts.DiagonalCost)
}

func (a *astar) setup() {
	a.open = []openEntry{{node: a.start, h: a.estimate(a.start)}}
	a.g = map[uuid.UUID]int{a.start.ID: 0}
	a.closed = make(map[uuid.UUID]bool)
	a.parent = make(map[uuid.UUID]*gridgraph.Node)
}

func (a *astar) f(e openEntry) float64 {
	return float64(a.g[e.node.ID]) + e.h
}

func (a *astar) advance() {
	if len(a.open) == 0 {
		a.finish(nil)
		return
	}

	best := 0
	for i := 1; i < len(a.open); i++ {
		fi, fb := a.f(a.open[i]), a.f(a.open[best])
		if fi < fb || (fi == fb && a.open[i].h < a.open[best].h) {
			best = i
		}
	}
	cur := a.open[best].node
	a.open = slices.Delete(a.open, best, best+1)

	a.closed[cur.ID] = true
	g := a.g[cur.ID]
	a.visit(cur, g)
	if cur == a.end {
		a.finish(func() ([]*gridgraph.Node, error) {
			return walk(a.parent, a.end, a.start)
		})
		return
	}

	for _, nb := range cur.Neighbors() {
		if a.closed[nb.ID] {
			continue
		}
		old, known := a.g[nb.ID]
		if known && g+1 >= old {
			continue
		}
		a.g[nb.ID] = g + 1
		a.parent[nb.ID] = cur
		if !known {
			a.open = append(a.open, openEntry{node: nb, h: a.estimate(nb)})
		}
	}
}

func (a *astar) discard() {
	clear(a.open)
	a.open = a.open[:0]
}
