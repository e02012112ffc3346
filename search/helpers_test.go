package search_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/raj457036/Path-Finding-Visualizer/gridgraph"
	"github.com/raj457036/Path-Finding-Visualizer/search"
)

type rc struct{ r, c int }

// grid builds rows×cols with the given walls and tags the endpoints.
func grid(t *testing.T, rows, cols int, walls []rc, start, end rc) (*gridgraph.GridGraph, *gridgraph.Node, *gridgraph.Node) {
	t.Helper()
	gg, err := gridgraph.New(rows, cols)
	require.NoError(t, err)
	for _, w := range walls {
		require.NoError(t, gg.SetWall(w.r, w.c))
	}
	s := gg.MustNode(start.r, start.c)
	e := gg.MustNode(end.r, end.c)
	s.State = gridgraph.Start
	e.State = gridgraph.End
	return gg, s, e
}

// runToEnd drives alg until it reports done and returns the step count.
func runToEnd(t *testing.T, alg search.Algorithm, gg *gridgraph.GridGraph, s, e *gridgraph.Node) int {
	t.Helper()
	require.NoError(t, alg.SetEndpoints(s, e))
	done, err := alg.Start()
	require.NoError(t, err)
	steps := 1
	for !done {
		require.LessOrEqual(t, steps, 4*gg.NodeCount()+4, "%s did not terminate", alg.Name())
		done, err = alg.Step()
		require.NoError(t, err)
		steps++
	}
	require.True(t, alg.Finished())
	return steps
}

func mustNew(t *testing.T, name search.Name, opts ...search.Option) search.Algorithm {
	t.Helper()
	alg, err := search.New(name, opts...)
	require.NoError(t, err)
	return alg
}

func adjacent(a, b *gridgraph.Node) bool {
	for _, nb := range a.Neighbors() {
		if nb == b {
			return true
		}
	}
	return false
}

// requireValidPath checks orientation, adjacency and simplicity: the path
// starts at end, excludes start, and every hop is a live edge.
func requireValidPath(t *testing.T, path []*gridgraph.Node, s, e *gridgraph.Node) {
	t.Helper()
	require.NotEmpty(t, path)
	require.Same(t, e, path[0], "path must begin at the end node")

	seen := make(map[*gridgraph.Node]bool, len(path))
	for i, n := range path {
		require.NotSame(t, s, n, "path must exclude the start node")
		require.False(t, seen[n], "node (%d,%d) repeated", n.Row, n.Col)
		seen[n] = true
		if i > 0 {
			require.True(t, adjacent(path[i-1], n), "hop %d is not an edge", i)
		}
	}
	require.True(t, adjacent(path[len(path)-1], s), "last node must touch start")
}
