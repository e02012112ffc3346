package search

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raj457036/Path-Finding-Visualizer/gridgraph"
)

func node(r, c int) *gridgraph.Node {
	return &gridgraph.Node{ID: uuid.New(), Row: r, Col: c}
}

// TestWalk_Runaway feeds a cyclic parent chain; the walk must stop at the
// hop cap instead of looping.
func TestWalk_Runaway(t *testing.T) {
	start, a, b := node(0, 0), node(0, 1), node(0, 2)
	parent := map[uuid.UUID]*gridgraph.Node{a.ID: b, b.ID: a}

	path, err := walk(parent, a, start)
	assert.ErrorIs(t, err, ErrPathRunaway)
	assert.Nil(t, path)
}

func TestWalk_Broken(t *testing.T) {
	start, a, b := node(0, 0), node(0, 1), node(0, 2)
	parent := map[uuid.UUID]*gridgraph.Node{b.ID: a}

	_, err := walk(parent, b, start)
	assert.ErrorIs(t, err, ErrBrokenPath)
}

// TestFinish_RunawayReported checks that a failed reconstruction ends the run
// with no path and the error exposed through Err.
func TestFinish_RunawayReported(t *testing.T) {
	start, end := node(0, 0), node(0, 1)
	r := newRunner("stub", DefaultOptions(), func() {}, func() {}, func() {})
	require.NoError(t, r.SetEndpoints(start, end))
	r.started = true

	r.finish(func() ([]*gridgraph.Node, error) {
		return walk(map[uuid.UUID]*gridgraph.Node{end.ID: end}, end, start)
	})
	assert.True(t, r.Finished())
	assert.False(t, r.Found())
	assert.Empty(t, r.Path())
	assert.ErrorIs(t, r.Err(), ErrPathRunaway)
}

// TestJoin covers the meeting shapes of the bidirectional variants.
func TestJoin(t *testing.T) {
	// line: s - a - m - b - e
	s, a, m, b, e := node(0, 0), node(0, 1), node(0, 2), node(0, 3), node(0, 4)
	fromStart := map[uuid.UUID]*gridgraph.Node{a.ID: s, m.ID: a, b.ID: m, e.ID: b}
	fromEnd := map[uuid.UUID]*gridgraph.Node{b.ID: e, m.ID: b, a.ID: m, s.ID: a}
	want := []*gridgraph.Node{e, b, m, a}

	cases := []struct {
		name string
		u, v *gridgraph.Node
	}{
		{"node meeting in the middle", m, m},
		{"edge meeting", a, m},
		{"meeting on end", e, e},
		{"meeting on start", s, s},
		{"edge touching both roots", b, e},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := join(fromStart, fromEnd, s, e, tc.u, tc.v)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

// TestDiscard_ReleasesNodes checks that stopping a run drops the node
// pointers held by the open sets, not only their length.
func TestDiscard_ReleasesNodes(t *testing.T) {
	gg, err := gridgraph.New(4, 4)
	require.NoError(t, err)
	start, end := gg.MustNode(0, 0), gg.MustNode(3, 3)

	d := newDijkstra(DefaultOptions())
	require.NoError(t, d.SetEndpoints(start, end))
	_, err = d.Start()
	require.NoError(t, err)
	_, err = d.Step()
	require.NoError(t, err)
	require.NotEmpty(t, d.tentative)

	d.Stop()
	assert.Empty(t, d.tentative)
	for i, n := range d.tentative[:cap(d.tentative)] {
		assert.Nil(t, n, "tentative slot %d", i)
	}

	a := newAStar(DefaultOptions())
	require.NoError(t, a.SetEndpoints(start, end))
	_, err = a.Start()
	require.NoError(t, err)
	_, err = a.Step()
	require.NoError(t, err)
	require.NotEmpty(t, a.open)

	a.Stop()
	assert.Empty(t, a.open)
	for i, e := range a.open[:cap(a.open)] {
		assert.Nil(t, e.node, "open slot %d", i)
	}
}
