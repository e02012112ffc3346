package search

import (
	"slices"

	"github.com/google/uuid"

	"github.com/raj457036/Path-Finding-Visualizer/gridgraph"
)

// dijkstra settles one node per step: the undecided node with the smallest
// tentative distance, found by a linear scan. Ties go to the node that
// entered the tentative set first. Edges all weigh 1.
type dijkstra struct {
	runner

	tentative []*gridgraph.Node // insertion order
	dist      map[uuid.UUID]int
	settled   map[uuid.UUID]bool
	parent    map[uuid.UUID]*gridgraph.Node
}

func newDijkstra(opts Options) *dijkstra {
	a := &dijkstra{}
	a.runner = newRunner(string(Dijkstra), opts, a.setup, a.advance, a.discard)
	return a
}

func (a *dijkstra) setup() {
	a.tentative = []*gridgraph.Node{a.start}
	a.dist = map[uuid.UUID]int{a.start.ID: 0}
	a.settled = make(map[uuid.UUID]bool)
	a.parent = make(map[uuid.UUID]*gridgraph.Node)
}

func (a *dijkstra) advance() {
	if len(a.tentative) == 0 {
		a.finish(nil)
		return
	}

	best := 0
	for i := 1; i < len(a.tentative); i++ {
		if a.dist[a.tentative[i].ID] < a.dist[a.tentative[best].ID] {
			best = i
		}
	}
	cur := a.tentative[best]
	a.tentative = slices.Delete(a.tentative, best, best+1)

	a.settled[cur.ID] = true
	d := a.dist[cur.ID]
	a.visit(cur, d)
	if cur == a.end {
		a.finish(func() ([]*gridgraph.Node, error) {
			return walk(a.parent, a.end, a.start)
		})
		return
	}

	for _, nb := range cur.Neighbors() {
		if a.settled[nb.ID] {
			continue
		}
		old, known := a.dist[nb.ID]
		if known && d+1 >= old {
			continue
		}
		a.dist[nb.ID] = d + 1
		a.parent[nb.ID] = cur
		if !known {
			a.tentative = append(a.tentative, nb)
		}
	}
}

func (a *dijkstra) discard() {
	clear(a.tentative)
	a.tentative = a.tentative[:0]
}
