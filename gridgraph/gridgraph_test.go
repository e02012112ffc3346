package gridgraph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raj457036/Path-Finding-Visualizer/gridgraph"
)

//----------------------------------------------------------------------------//
// New and InBounds Tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects empty dimensions.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name       string
		rows, cols int
	}{
		{"ZeroRows", 0, 3},
		{"ZeroCols", 3, 0},
		{"Negative", -1, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.New(tc.rows, tc.cols)
			if !errors.Is(err, gridgraph.ErrEmptyGrid) {
				t.Errorf("New(%d,%d) error = %v; want ErrEmptyGrid", tc.rows, tc.cols, err)
			}
		})
	}
}

// TestNew_NodeCountAndIDs checks rows×cols nodes with unique IDs and
// consistent coordinates.
func TestNew_NodeCountAndIDs(t *testing.T) {
	gg, err := gridgraph.New(4, 7)
	require.NoError(t, err)
	assert.Equal(t, 28, gg.NodeCount())

	ids := make(map[string]bool)
	count := 0
	gg.Each(func(n *gridgraph.Node) {
		count++
		ids[n.ID.String()] = true
		r, c := gg.Coordinate(n.Index)
		assert.Equal(t, n.Row, r)
		assert.Equal(t, n.Col, c)
		assert.Equal(t, gridgraph.Clear, n.State)
	})
	assert.Equal(t, 28, count)
	assert.Len(t, ids, 28, "node IDs must be unique")
}

// TestNew_Degrees checks the boundary property: corners have 2 neighbours,
// non-corner edge cells 3, interior cells 4.
func TestNew_Degrees(t *testing.T) {
	gg, err := gridgraph.New(5, 6)
	require.NoError(t, err)

	gg.Each(func(n *gridgraph.Node) {
		onRowEdge := n.Row == 0 || n.Row == gg.Rows-1
		onColEdge := n.Col == 0 || n.Col == gg.Cols-1
		want := 4
		switch {
		case onRowEdge && onColEdge:
			want = 2
		case onRowEdge || onColEdge:
			want = 3
		}
		if got := n.Degree(); got != want {
			t.Errorf("Degree(%d,%d) = %d; want %d", n.Row, n.Col, got, want)
		}
	})
}

// TestNew_SingleCell covers the 1×1 and 1×N corner cases.
func TestNew_SingleCell(t *testing.T) {
	gg, err := gridgraph.New(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, gg.MustNode(0, 0).Degree())

	line, err := gridgraph.New(1, 3)
	require.NoError(t, err)
	assert.Equal(t, 1, line.MustNode(0, 0).Degree())
	assert.Equal(t, 2, line.MustNode(0, 1).Degree())
}

// TestInBounds checks InBounds and Node on a 3×2 grid.
func TestInBounds(t *testing.T) {
	gg, err := gridgraph.New(3, 2)
	require.NoError(t, err)

	for _, rc := range [][2]int{{0, 0}, {2, 1}, {1, 1}} {
		assert.True(t, gg.InBounds(rc[0], rc[1]), "InBounds(%d,%d)", rc[0], rc[1])
	}
	for _, rc := range [][2]int{{-1, 0}, {3, 0}, {1, 2}, {2, -1}} {
		assert.False(t, gg.InBounds(rc[0], rc[1]), "InBounds(%d,%d)", rc[0], rc[1])
		_, err := gg.Node(rc[0], rc[1])
		assert.ErrorIs(t, err, gridgraph.ErrOutOfBounds)
	}
	assert.Panics(t, func() { gg.MustNode(5, 5) })
}

//----------------------------------------------------------------------------//
// Wall editing Tests
//----------------------------------------------------------------------------//

func neighborSet(n *gridgraph.Node) map[*gridgraph.Node]bool {
	out := make(map[*gridgraph.Node]bool)
	for _, nb := range n.Neighbors() {
		out[nb] = true
	}
	return out
}

// assertSymmetric fails if any adjacency link is one-way.
func assertSymmetric(t *testing.T, gg *gridgraph.GridGraph) {
	t.Helper()
	gg.Each(func(n *gridgraph.Node) {
		for _, nb := range n.Neighbors() {
			if !neighborSet(nb)[n] {
				t.Errorf("edge (%d,%d)->(%d,%d) is not symmetric", n.Row, n.Col, nb.Row, nb.Col)
			}
		}
	})
}

// TestSeverEdges_Symmetric ensures severing isolates the cell on both sides
// and leaves the rest of the grid untouched.
func TestSeverEdges_Symmetric(t *testing.T) {
	gg, err := gridgraph.New(3, 3)
	require.NoError(t, err)

	corner := gg.MustNode(0, 0)
	require.NoError(t, gg.SeverEdges(1, 1))

	center := gg.MustNode(1, 1)
	assert.Equal(t, 0, center.Degree())
	assert.Equal(t, 2, gg.MustNode(0, 1).Degree())
	assert.Equal(t, 2, gg.MustNode(1, 0).Degree())
	assert.Equal(t, 2, corner.Degree(), "corner is not adjacent to the severed cell")
	assertSymmetric(t, gg)

	// Double sever is a no-op, not an error.
	require.NoError(t, gg.SeverEdges(1, 1))
	assert.Equal(t, 0, center.Degree())
}

// TestRestoreEdges_RoundTrip checks SeverEdges followed by RestoreEdges
// restores exactly the original neighbour set.
func TestRestoreEdges_RoundTrip(t *testing.T) {
	gg, err := gridgraph.New(4, 4)
	require.NoError(t, err)

	for _, rc := range [][2]int{{0, 0}, {0, 2}, {2, 2}, {3, 3}} {
		n := gg.MustNode(rc[0], rc[1])
		before := neighborSet(n)

		require.NoError(t, gg.SeverEdges(rc[0], rc[1]))
		require.NoError(t, gg.RestoreEdges(rc[0], rc[1]))

		assert.Equal(t, before, neighborSet(n), "round trip at (%d,%d)", rc[0], rc[1])
	}
	assertSymmetric(t, gg)
}

// TestRestoreEdges_Idempotent checks that two restores equal one.
func TestRestoreEdges_Idempotent(t *testing.T) {
	gg, err := gridgraph.New(3, 3)
	require.NoError(t, err)
	require.NoError(t, gg.SeverEdges(1, 1))

	require.NoError(t, gg.RestoreEdges(1, 1))
	once := neighborSet(gg.MustNode(1, 1))
	require.NoError(t, gg.RestoreEdges(1, 1))
	twice := neighborSet(gg.MustNode(1, 1))

	assert.Equal(t, once, twice)
	assert.Len(t, twice, 4)
}

// TestRestoreEdges_SkipsWalls ensures a cleared cell does not re-link into
// an adjacent wall.
func TestRestoreEdges_SkipsWalls(t *testing.T) {
	gg, err := gridgraph.New(1, 3)
	require.NoError(t, err)

	require.NoError(t, gg.SetWall(0, 1))
	require.NoError(t, gg.SetWall(0, 2))
	require.NoError(t, gg.ClearWall(0, 1))

	mid := gg.MustNode(0, 1)
	assert.Equal(t, gridgraph.Clear, mid.State)
	assert.Equal(t, 1, mid.Degree(), "only the left neighbour is walkable")
	assert.Equal(t, 0, gg.MustNode(0, 2).Degree())
}

// TestWallEdits_OutOfBounds verifies every editing entry point rejects bad
// coordinates.
func TestWallEdits_OutOfBounds(t *testing.T) {
	gg, err := gridgraph.New(2, 2)
	require.NoError(t, err)

	assert.ErrorIs(t, gg.SeverEdges(2, 0), gridgraph.ErrOutOfBounds)
	assert.ErrorIs(t, gg.RestoreEdges(0, -1), gridgraph.ErrOutOfBounds)
	assert.ErrorIs(t, gg.SetWall(9, 9), gridgraph.ErrOutOfBounds)
	assert.ErrorIs(t, gg.ClearWall(-1, 0), gridgraph.ErrOutOfBounds)
}

// TestFixWallsAndReset covers the pre-run housekeeping helpers.
func TestFixWallsAndReset(t *testing.T) {
	gg, err := gridgraph.New(3, 3)
	require.NoError(t, err)

	require.NoError(t, gg.SetWall(1, 1))
	// Simulate an inconsistent wall: re-linked and then reached by a search.
	require.NoError(t, gg.RestoreEdges(1, 1))
	gg.MustNode(1, 1).MarkTraversed()
	assert.Equal(t, gridgraph.Error, gg.MustNode(1, 1).State)

	gg.MustNode(0, 0).MarkTraversed()
	gg.MustNode(0, 1).MarkTraversed()
	gg.MustNode(0, 1).MarkPath()

	gg.FixWalls()
	assert.Equal(t, gridgraph.Wall, gg.MustNode(1, 1).State)
	assert.Equal(t, 0, gg.MustNode(1, 1).Degree())

	gg.ResetTraversal()
	assert.Equal(t, gridgraph.Clear, gg.MustNode(0, 0).State)
	assert.Equal(t, gridgraph.Clear, gg.MustNode(0, 1).State)
	assert.Equal(t, gridgraph.Wall, gg.MustNode(1, 1).State)
	assert.Equal(t, 1, gg.Walls())

	gg.ClearAll()
	assert.Equal(t, 0, gg.Walls())
	assert.Equal(t, 4, gg.MustNode(1, 1).Degree())
	assertSymmetric(t, gg)
}

// TestNodeMarks verifies the cosmetic state transitions.
func TestNodeMarks(t *testing.T) {
	gg, err := gridgraph.New(1, 2)
	require.NoError(t, err)
	n := gg.MustNode(0, 0)

	n.MarkPath()
	assert.Equal(t, gridgraph.Clear, n.State, "only traversed nodes become path")

	n.MarkTraversed()
	n.MarkPath()
	assert.Equal(t, gridgraph.Path, n.State)

	n.State = gridgraph.End
	n.MarkPath()
	assert.Equal(t, gridgraph.End, n.State)

	n.MarkError()
	assert.True(t, n.IsWall())
	n.MarkClear()
	assert.Equal(t, "clear", n.State.String())
}
