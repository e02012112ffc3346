package search

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/raj457036/Path-Finding-Visualizer/gridgraph"
)

// MaxPathHops bounds a parent-chain walk. A longer chain is treated as
// corrupted and reconstruction aborts with ErrPathRunaway.
const MaxPathHops = 1_000_000

// Algorithm is the frame-by-frame contract shared by every search variant.
//
// Start performs the one-time setup and the first unit of work. Step does
// one more unit and reports whether the search has finished; after that it
// is a no-op returning (true, nil). ReplayStep pops one node off the
// reconstructed path, nearest the start first, and tags it Path.
type Algorithm interface {
	Name() string
	SetEndpoints(start, end *gridgraph.Node) error
	Start() (done bool, err error)
	Step() (done bool, err error)
	Stop()
	Finished() bool
	Found() bool
	Elapsed() time.Duration
	Path() []*gridgraph.Node
	ReplayStep() bool
	Remaining() int
	Visited() int
	Err() error
}

// runner carries the state every variant shares: endpoints, timing, the
// terminal flags, the path and its replay cursor. Variants embed it and
// plug in their own firstFrame, perFrame and dropFrontier functions.
type runner struct {
	name string
	opts Options

	start, end *gridgraph.Node

	started  bool
	finished bool
	found    bool
	begun    time.Time
	elapsed  time.Duration
	visited  int
	err      error
	path     []*gridgraph.Node
	replayed int

	firstFrame   func()
	perFrame     func()
	dropFrontier func()
}

func newRunner(name string, opts Options, firstFrame, perFrame, dropFrontier func()) runner {
	return runner{
		name:         name,
		opts:         opts,
		firstFrame:   firstFrame,
		perFrame:     perFrame,
		dropFrontier: dropFrontier,
	}
}

// Name returns the registry name of the variant.
func (r *runner) Name() string { return r.name }

// SetEndpoints assigns start and end and clears any previous run.
func (r *runner) SetEndpoints(start, end *gridgraph.Node) error {
	if start == nil || end == nil {
		return ErrNilEndpoint
	}
	r.start, r.end = start, end
	r.reset()
	return nil
}

// Start initializes the frontier and performs the first step.
// Calling Start again restarts the search from scratch.
func (r *runner) Start() (bool, error) {
	if r.start == nil || r.end == nil {
		return false, ErrNoEndpoints
	}
	r.reset()
	r.started = true
	r.begun = r.opts.Clock()
	r.firstFrame()

	if r.start == r.end {
		r.finish(func() ([]*gridgraph.Node, error) { return nil, nil })
		return true, nil
	}
	r.perFrame()
	return r.finished, nil
}

// Step performs one unit of exploration.
func (r *runner) Step() (bool, error) {
	if r.start == nil || r.end == nil {
		return false, ErrNoEndpoints
	}
	if !r.started {
		return false, ErrNotStarted
	}
	if r.finished {
		return true, nil
	}
	r.perFrame()
	return r.finished, nil
}

// Stop discards the frontier and marks the run finished without a path.
// Stopping a finished or never started run does nothing.
func (r *runner) Stop() {
	if !r.started || r.finished {
		return
	}
	r.dropFrontier()
	r.finished = true
	r.found = false
	r.elapsed = r.opts.Clock().Sub(r.begun)
	r.opts.Logger.Debug("search stopped",
		zap.String("algorithm", r.name),
		zap.Int("visited", r.visited),
		zap.Duration("elapsed", r.elapsed),
	)
}

// Finished reports whether the run reached a terminal state.
func (r *runner) Finished() bool { return r.finished }

// Found reports whether a path to the end node was reconstructed.
func (r *runner) Found() bool { return r.found }

// Elapsed returns the run time: end minus start once finished, time so far
// while running, zero before Start.
func (r *runner) Elapsed() time.Duration {
	switch {
	case r.finished:
		return r.elapsed
	case r.started:
		return r.opts.Clock().Sub(r.begun)
	default:
		return 0
	}
}

// Path returns a copy of the reconstructed path, end node first.
func (r *runner) Path() []*gridgraph.Node {
	out := make([]*gridgraph.Node, len(r.path))
	copy(out, r.path)
	return out
}

// ReplayStep tags the next path node Path. It returns false when every
// node has been replayed.
func (r *runner) ReplayStep() bool {
	if r.replayed >= len(r.path) {
		return false
	}
	r.replayed++
	r.path[len(r.path)-r.replayed].MarkPath()
	return true
}

// Remaining reports how many path nodes ReplayStep has not consumed yet.
func (r *runner) Remaining() int { return len(r.path) - r.replayed }

// Visited reports the number of nodes finalized so far.
func (r *runner) Visited() int { return r.visited }

// Err returns the reconstruction failure of the last run, if any.
func (r *runner) Err() error { return r.err }

func (r *runner) reset() {
	if r.dropFrontier != nil {
		r.dropFrontier()
	}
	r.started = false
	r.finished = false
	r.found = false
	r.elapsed = 0
	r.visited = 0
	r.err = nil
	r.path = nil
	r.replayed = 0
}

// visit finalizes n: cosmetic tag, counter and hook.
func (r *runner) visit(n *gridgraph.Node, cost int) {
	r.visited++
	n.MarkTraversed()
	r.opts.OnVisit(n, cost)
}

// finish records the terminal state. build is nil when the frontier ran dry.
func (r *runner) finish(build func() ([]*gridgraph.Node, error)) {
	r.finished = true
	r.elapsed = r.opts.Clock().Sub(r.begun)

	if build != nil {
		path, err := build()
		if err != nil {
			r.err = err
			r.opts.Logger.Warn("path reconstruction failed",
				zap.String("algorithm", r.name),
				zap.Error(err),
			)
		} else {
			r.found = true
			r.path = path
		}
	}
	r.dropFrontier()

	r.opts.Logger.Debug("search finished",
		zap.String("algorithm", r.name),
		zap.Bool("found", r.found),
		zap.Int("visited", r.visited),
		zap.Int("path", len(r.path)),
		zap.Duration("elapsed", r.elapsed),
	)
}

// walk follows parent pointers from `from` until it reaches `to` and returns
// the nodes seen, `from` first and `to` excluded.
func walk(parent map[uuid.UUID]*gridgraph.Node, from, to *gridgraph.Node) ([]*gridgraph.Node, error) {
	var path []*gridgraph.Node
	for cur := from; cur != to; {
		if len(path) >= MaxPathHops {
			return nil, fmt.Errorf("%w: more than %d hops", ErrPathRunaway, MaxPathHops)
		}
		path = append(path, cur)
		p, ok := parent[cur.ID]
		if !ok || p == nil {
			return nil, fmt.Errorf("%w: no parent for (%d,%d)", ErrBrokenPath, cur.Row, cur.Col)
		}
		cur = p
	}
	return path, nil
}

// join builds the path of a bidirectional search that met on the edge u–v,
// where u was reached from start and v from end. u == v means the fronts
// met on a single node. The result is end first, start excluded, and the
// meeting node appears once.
func join(
	fromStart, fromEnd map[uuid.UUID]*gridgraph.Node,
	start, end, u, v *gridgraph.Node,
) ([]*gridgraph.Node, error) {
	endSide, err := walk(fromEnd, v, end)
	if err != nil {
		return nil, err
	}
	startSide, err := walk(fromStart, u, start)
	if err != nil {
		return nil, err
	}
	if u == v {
		switch {
		case len(startSide) > 0:
			startSide = startSide[1:]
		case len(endSide) > 0:
			// met on the start node itself
			endSide = endSide[1:]
		}
	}

	path := make([]*gridgraph.Node, 0, 1+len(endSide)+len(startSide))
	path = append(path, end)
	for i := len(endSide) - 1; i >= 0; i-- {
		path = append(path, endSide[i])
	}
	return append(path, startSide...), nil
}
