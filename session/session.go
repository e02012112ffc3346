package session

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/raj457036/Path-Finding-Visualizer/gridgraph"
	"github.com/raj457036/Path-Finding-Visualizer/maze"
	"github.com/raj457036/Path-Finding-Visualizer/scheduler"
	"github.com/raj457036/Path-Finding-Visualizer/search"
)

// Session is the explicit context of one interactive grid.
type Session struct {
	mu sync.Mutex

	grid *gridgraph.GridGraph
	tool Tool

	start, end *gridgraph.Node
	// walls cleared to make room for an endpoint
	underStart, underEnd *gridgraph.Node

	opts  Options
	sched *scheduler.Scheduler
}

// New builds a rows×cols grid and a session around it.
func New(rows, cols int, opts ...Option) (*Session, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if _, err := search.New(o.Algorithm, o.SearchOptions...); err != nil {
		return nil, err
	}
	gg, err := gridgraph.New(rows, cols)
	if err != nil {
		return nil, err
	}
	return &Session{grid: gg, tool: ToolWall, opts: o}, nil
}

// Grid returns the current grid. It is replaced by Resize.
func (s *Session) Grid() *gridgraph.GridGraph {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid
}

// View calls fn with the grid while holding the session lock, so no
// session edit can change node states while fn reads them.
func (s *Session) View(fn func(*gridgraph.GridGraph)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.grid)
}

// Resize stops any run and rebuilds an empty rows×cols grid.
func (s *Session) Resize(rows, cols int) error {
	gg, err := gridgraph.New(rows, cols)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
	s.grid = gg
	s.start, s.end = nil, nil
	s.underStart, s.underEnd = nil, nil
	s.sched = nil
	s.opts.Logger.Info("grid rebuilt", zap.Int("rows", rows), zap.Int("cols", cols))
	return nil
}

// SetTool selects the active tool.
func (s *Session) SetTool(t Tool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tool = t
}

// Tool returns the active tool.
func (s *Session) Tool() Tool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tool
}

// Endpoints returns the start and end cells; either may be nil.
func (s *Session) Endpoints() (start, end *gridgraph.Node) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.start, s.end
}

// Apply uses the active tool on cell (r,c).
//
//	ToolStart / ToolTarget: move the endpoint; the other endpoint's cell is locked.
//	ToolWall: toggle wall ↔ clear; endpoints, traversed and path cells are locked.
//
// Returns ErrRunning during a run and gridgraph.ErrOutOfBounds for bad
// coordinates.
func (s *Session) Apply(r, c int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.runningLocked() {
		return ErrRunning
	}
	n, err := s.grid.Node(r, c)
	if err != nil {
		return err
	}

	switch s.tool {
	case ToolStart:
		if n == s.end {
			return fmt.Errorf("%w: (%d,%d) holds the end", ErrCellLocked, r, c)
		}
		return s.placeStart(n)
	case ToolTarget:
		if n == s.start {
			return fmt.Errorf("%w: (%d,%d) holds the start", ErrCellLocked, r, c)
		}
		return s.placeEnd(n)
	default:
		if n == s.start || n == s.end || n.State == gridgraph.Traversed || n.State == gridgraph.Path {
			return fmt.Errorf("%w: (%d,%d) is %s", ErrCellLocked, r, c, n.State)
		}
		if n.IsWall() {
			return s.grid.ClearWall(r, c)
		}
		return s.grid.SetWall(r, c)
	}
}

func (s *Session) placeStart(n *gridgraph.Node) error {
	var err error
	s.start, s.underStart, err = s.moveEndpoint(s.start, s.underStart, n, gridgraph.Start)
	return err
}

func (s *Session) placeEnd(n *gridgraph.Node) error {
	var err error
	s.end, s.underEnd, err = s.moveEndpoint(s.end, s.underEnd, n, gridgraph.End)
	return err
}

// moveEndpoint untags old, re-walls the cell it had cleared, clears a wall
// under n if needed and tags n.
func (s *Session) moveEndpoint(old, under, n *gridgraph.Node, tag gridgraph.NodeState) (*gridgraph.Node, *gridgraph.Node, error) {
	if old != nil && old.State == tag {
		old.MarkClear()
	}
	if under != nil {
		if err := s.grid.SetWall(under.Row, under.Col); err != nil {
			return old, under, err
		}
		under = nil
	}
	if n.IsWall() {
		if err := s.grid.ClearWall(n.Row, n.Col); err != nil {
			return old, under, err
		}
		under = n
	}
	n.State = tag
	return n, under, nil
}

// SelectAlgorithm stops any run, switches the variant and clears the last
// traversal.
func (s *Session) SelectAlgorithm(name search.Name, opts ...search.Option) error {
	if _, err := search.New(name, opts...); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
	s.opts.Algorithm = name
	s.opts.SearchOptions = opts
	s.resetTraversalLocked()
	return nil
}

// Algorithm returns the selected variant.
func (s *Session) Algorithm() search.Name {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.opts.Algorithm
}

// SetSpeed changes the cadence of future runs and of the current one.
func (s *Session) SetSpeed(sp scheduler.Speed) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.opts.Speed = sp
	if s.sched != nil {
		s.sched.SetSpeed(sp)
	}
}

// Speed returns the configured cadence.
func (s *Session) Speed() scheduler.Speed {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.opts.Speed
}

// Prepare clears the last traversal, re-severs every wall, builds the
// selected algorithm on the current endpoints and returns an Idle scheduler
// for it. The session counts as running until that scheduler is Done or
// Stopped.
func (s *Session) Prepare() (*scheduler.Scheduler, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.runningLocked() {
		return nil, ErrRunning
	}
	if s.start == nil || s.end == nil {
		return nil, ErrNoEndpoints
	}

	s.resetTraversalLocked()
	s.grid.FixWalls()

	searchOpts := append([]search.Option{search.WithLogger(s.opts.Logger)}, s.opts.SearchOptions...)
	alg, err := search.New(s.opts.Algorithm, searchOpts...)
	if err != nil {
		return nil, err
	}
	if err := alg.SetEndpoints(s.start, s.end); err != nil {
		return nil, err
	}

	schedOpts := append([]scheduler.Option{
		scheduler.WithSpeed(s.opts.Speed),
		scheduler.WithMaxReplayFrames(s.opts.MaxReplayFrames),
		scheduler.WithLogger(s.opts.Logger),
		scheduler.WithMetrics(s.opts.Metrics),
	}, s.opts.SchedulerOptions...)
	sched, err := scheduler.New(alg, schedOpts...)
	if err != nil {
		return nil, err
	}
	s.sched = sched

	s.opts.Logger.Debug("run prepared",
		zap.String("algorithm", alg.Name()),
		zap.Int("startRow", s.start.Row), zap.Int("startCol", s.start.Col),
		zap.Int("endRow", s.end.Row), zap.Int("endCol", s.end.Col),
	)
	return sched, nil
}

// Running reports whether a prepared run has not reached Done or Stopped.
func (s *Session) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.runningLocked()
}

func (s *Session) runningLocked() bool {
	return s.sched != nil && !s.sched.Phase().Terminal()
}

// Stop stops the current run, if any. Safe to call repeatedly.
func (s *Session) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
}

func (s *Session) stopLocked() {
	if s.sched != nil {
		s.sched.Stop()
	}
}

// ResetTraversal turns traversed and path cells back to clear.
func (s *Session) ResetTraversal() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.runningLocked() {
		return ErrRunning
	}
	s.resetTraversalLocked()
	return nil
}

func (s *Session) resetTraversalLocked() {
	s.grid.ResetTraversal()
	s.underStart, s.underEnd = nil, nil
}

// ClearGrid stops any run, removes both endpoints and every wall.
func (s *Session) ClearGrid() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
	s.grid.ClearAll()
	s.start, s.end = nil, nil
	s.underStart, s.underEnd = nil, nil
	s.sched = nil
}

// Generate replaces every wall with the layout produced by gen. Endpoints
// stay where they are and are never walled.
func (s *Session) Generate(gen maze.Generator) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.runningLocked() {
		return ErrRunning
	}
	s.grid.ClearAll()
	s.underStart, s.underEnd = nil, nil
	if s.start != nil {
		s.start.State = gridgraph.Start
	}
	if s.end != nil {
		s.end.State = gridgraph.End
	}

	skip := func(r, c int) bool {
		return (s.start != nil && s.start.Row == r && s.start.Col == c) ||
			(s.end != nil && s.end.Row == r && s.end.Col == c)
	}
	if err := gen(s.grid, skip); err != nil {
		return err
	}
	s.opts.Logger.Debug("walls generated", zap.Int("walls", s.grid.Walls()))
	return nil
}
