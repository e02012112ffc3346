package session_test

import (
	"context"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raj457036/Path-Finding-Visualizer/gridgraph"
	"github.com/raj457036/Path-Finding-Visualizer/maze"
	"github.com/raj457036/Path-Finding-Visualizer/scheduler"
	"github.com/raj457036/Path-Finding-Visualizer/search"
	"github.com/raj457036/Path-Finding-Visualizer/session"
)

func place(t *testing.T, s *session.Session, tool session.Tool, r, c int) {
	t.Helper()
	s.SetTool(tool)
	require.NoError(t, s.Apply(r, c))
}

func newSession(t *testing.T, rows, cols int, opts ...session.Option) *session.Session {
	t.Helper()
	s, err := session.New(rows, cols, opts...)
	require.NoError(t, err)
	return s
}

func TestNew_Errors(t *testing.T) {
	_, err := session.New(0, 5)
	assert.ErrorIs(t, err, gridgraph.ErrEmptyGrid)

	_, err = session.New(5, 5, session.WithAlgorithm("greedy"))
	assert.ErrorIs(t, err, search.ErrUnknownAlgorithm)
}

func TestApply_WallToggle(t *testing.T) {
	s := newSession(t, 3, 3)
	assert.Equal(t, session.ToolWall, s.Tool())

	require.NoError(t, s.Apply(1, 1))
	n := s.Grid().MustNode(1, 1)
	assert.Equal(t, gridgraph.Wall, n.State)
	assert.Equal(t, 0, n.Degree())

	require.NoError(t, s.Apply(1, 1))
	assert.Equal(t, gridgraph.Clear, n.State)
	assert.Equal(t, 4, n.Degree())

	assert.ErrorIs(t, s.Apply(3, 0), gridgraph.ErrOutOfBounds)
}

func TestApply_Endpoints(t *testing.T) {
	s := newSession(t, 4, 4)
	place(t, s, session.ToolStart, 0, 0)
	place(t, s, session.ToolTarget, 3, 3)

	start, end := s.Endpoints()
	assert.Equal(t, gridgraph.Start, start.State)
	assert.Equal(t, gridgraph.End, end.State)

	// the two endpoints never share a cell
	s.SetTool(session.ToolStart)
	assert.ErrorIs(t, s.Apply(3, 3), session.ErrCellLocked)
	s.SetTool(session.ToolTarget)
	assert.ErrorIs(t, s.Apply(0, 0), session.ErrCellLocked)

	// walls cannot be painted over endpoints
	s.SetTool(session.ToolWall)
	assert.ErrorIs(t, s.Apply(0, 0), session.ErrCellLocked)

	// moving the start untags the old cell
	place(t, s, session.ToolStart, 1, 1)
	assert.Equal(t, gridgraph.Clear, s.Grid().MustNode(0, 0).State)
	start, _ = s.Endpoints()
	assert.Same(t, s.Grid().MustNode(1, 1), start)
}

// TestEndpointOnWall clears the wall under an endpoint and puts it back
// when the endpoint moves away.
func TestEndpointOnWall(t *testing.T) {
	s := newSession(t, 3, 3)
	place(t, s, session.ToolWall, 1, 1)

	place(t, s, session.ToolStart, 1, 1)
	n := s.Grid().MustNode(1, 1)
	assert.Equal(t, gridgraph.Start, n.State)
	assert.Equal(t, 4, n.Degree())

	place(t, s, session.ToolStart, 0, 0)
	assert.Equal(t, gridgraph.Wall, n.State)
	assert.Equal(t, 0, n.Degree())

	// same for the target
	place(t, s, session.ToolTarget, 1, 1)
	assert.Equal(t, gridgraph.End, n.State)
	place(t, s, session.ToolTarget, 2, 2)
	assert.Equal(t, gridgraph.Wall, n.State)
}

func TestPrepare_NoEndpoints(t *testing.T) {
	s := newSession(t, 3, 3)
	_, err := s.Prepare()
	assert.ErrorIs(t, err, session.ErrNoEndpoints)

	place(t, s, session.ToolStart, 0, 0)
	_, err = s.Prepare()
	assert.ErrorIs(t, err, session.ErrNoEndpoints)
}

// TestRunLifecycle prepares a run, checks edits are refused while it is
// active, runs it and checks traversed cells stay locked afterwards.
func TestRunLifecycle(t *testing.T) {
	s := newSession(t, 5, 5, session.WithAlgorithm(search.BFS))
	place(t, s, session.ToolStart, 0, 0)
	place(t, s, session.ToolTarget, 4, 4)

	sched, err := s.Prepare()
	require.NoError(t, err)
	assert.True(t, s.Running())

	s.SetTool(session.ToolWall)
	assert.ErrorIs(t, s.Apply(2, 2), session.ErrRunning)
	assert.ErrorIs(t, s.ResetTraversal(), session.ErrRunning)
	_, err = s.Prepare()
	assert.ErrorIs(t, err, session.ErrRunning)

	require.NoError(t, sched.Run(context.Background()))
	assert.False(t, s.Running())
	assert.Len(t, sched.Algorithm().Path(), 8)

	// (2,2) was traversed by BFS
	assert.ErrorIs(t, s.Apply(2, 2), session.ErrCellLocked)
	require.NoError(t, s.ResetTraversal())
	require.NoError(t, s.Apply(2, 2))
	assert.True(t, s.Grid().MustNode(2, 2).IsWall())
}

// TestPrepare_FixesInconsistentWalls re-severs walls before a run.
func TestPrepare_FixesInconsistentWalls(t *testing.T) {
	s := newSession(t, 1, 3, session.WithAlgorithm(search.BFS))
	place(t, s, session.ToolStart, 0, 0)
	place(t, s, session.ToolTarget, 0, 2)

	mid := s.Grid().MustNode(0, 1)
	mid.State = gridgraph.Error // linked cell tagged by an earlier run

	sched, err := s.Prepare()
	require.NoError(t, err)
	assert.Equal(t, gridgraph.Wall, mid.State)
	assert.Equal(t, 0, mid.Degree())

	require.NoError(t, sched.Run(context.Background()))
	assert.False(t, sched.Algorithm().Found())
}

func TestStopAndSelect(t *testing.T) {
	s := newSession(t, 6, 6)
	place(t, s, session.ToolStart, 0, 0)
	place(t, s, session.ToolTarget, 5, 5)

	sched, err := s.Prepare()
	require.NoError(t, err)
	_, err = sched.Next()
	require.NoError(t, err)

	s.Stop()
	s.Stop()
	assert.False(t, s.Running())
	assert.Equal(t, scheduler.Stopped, sched.Phase())

	assert.ErrorIs(t, s.SelectAlgorithm("nope"), search.ErrUnknownAlgorithm)
	require.NoError(t, s.SelectAlgorithm(search.BidirectionalBFS))
	assert.Equal(t, search.BidirectionalBFS, s.Algorithm())
	s.Grid().Each(func(n *gridgraph.Node) {
		assert.NotEqual(t, gridgraph.Traversed, n.State)
	})

	s.SetSpeed(scheduler.Manual)
	assert.Equal(t, scheduler.Manual, s.Speed())
	sched, err = s.Prepare()
	require.NoError(t, err)
	assert.Equal(t, scheduler.Manual, sched.Speed())
	assert.ErrorIs(t, sched.Run(context.Background()), scheduler.ErrManualMode)
}

func TestClearGridAndResize(t *testing.T) {
	s := newSession(t, 4, 4)
	place(t, s, session.ToolWall, 1, 1)
	place(t, s, session.ToolStart, 0, 0)
	place(t, s, session.ToolTarget, 3, 3)

	s.ClearGrid()
	start, end := s.Endpoints()
	assert.Nil(t, start)
	assert.Nil(t, end)
	assert.Equal(t, 0, s.Grid().Walls())

	require.NoError(t, s.Resize(7, 9))
	rows, cols := s.Grid().Size()
	assert.Equal(t, 7, rows)
	assert.Equal(t, 9, cols)
	assert.ErrorIs(t, s.Resize(0, 1), gridgraph.ErrEmptyGrid)
}

// TestGenerate keeps endpoints open and leaves them connected in a
// recursive-division maze.
func TestGenerate(t *testing.T) {
	s := newSession(t, 15, 21, session.WithAlgorithm(search.BFS))
	place(t, s, session.ToolStart, 0, 0)
	place(t, s, session.ToolTarget, 14, 20)

	require.NoError(t, s.Generate(maze.RecursiveDivision(rand.New(rand.NewSource(3)))))
	start, end := s.Endpoints()
	assert.Equal(t, gridgraph.Start, start.State)
	assert.Equal(t, gridgraph.End, end.State)
	assert.Greater(t, s.Grid().Walls(), 0)

	sched, err := s.Prepare()
	require.NoError(t, err)
	require.NoError(t, sched.Run(context.Background()))
	assert.True(t, sched.Algorithm().Found())

	require.NoError(t, s.Generate(maze.Random(rand.New(rand.NewSource(3)), 0)))
	assert.False(t, start.IsWall())
	assert.False(t, end.IsWall())
}

func TestParseTool(t *testing.T) {
	for in, want := range map[string]session.Tool{
		"wall": session.ToolWall, "Start": session.ToolStart, "target": session.ToolTarget, "end": session.ToolTarget,
	} {
		got, err := session.ParseTool(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := session.ParseTool("eraser")
	assert.ErrorIs(t, err, session.ErrUnknownTool)
}

// TestFrameHookWhileSelecting switches algorithm from another goroutine
// while the frame hook of the running search reads the session.
func TestFrameHookWhileSelecting(t *testing.T) {
	var s *session.Session
	var once sync.Once
	selected := make(chan error, 1)
	frames := 0
	hook := func(scheduler.Phase) {
		once.Do(func() {
			go func() { selected <- s.SelectAlgorithm(search.DFS) }()
			time.Sleep(20 * time.Millisecond)
		})
		s.View(func(gg *gridgraph.GridGraph) { frames += gg.NodeCount() })
		_ = s.Running()
	}

	s, err := session.New(6, 6,
		session.WithAlgorithm(search.BFS),
		session.WithSpeed(scheduler.Manual),
		session.WithSchedulerOptions(scheduler.WithOnFrame(hook)),
	)
	require.NoError(t, err)
	place(t, s, session.ToolStart, 0, 0)
	place(t, s, session.ToolTarget, 5, 5)
	sched, err := s.Prepare()
	require.NoError(t, err)

	ticked := make(chan error, 1)
	go func() {
		_, err := sched.Tick()
		ticked <- err
	}()

	select {
	case err := <-ticked:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Tick blocked")
	}
	select {
	case err := <-selected:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("SelectAlgorithm blocked")
	}

	assert.Equal(t, 36, frames)
	assert.Equal(t, scheduler.Stopped, sched.Phase())
	assert.Equal(t, search.DFS, s.Algorithm())
	assert.False(t, s.Running())
}
