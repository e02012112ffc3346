package gridgraph

import (
	"github.com/google/uuid"
)

// NodeState is the traversal/cosmetic tag carried by every Node.
// The numeric values follow the host's box types so that a presentation
// layer can map them one-to-one.
type NodeState int

const (
	// Wall marks a node whose edges are severed (impassable).
	Wall NodeState = iota
	// Clear is a plain, walkable node.
	Clear
	// Start marks the search origin.
	Start
	// End marks the search target.
	End
	// Traversed marks a node finalized by a running algorithm.
	Traversed
	// Path marks a traversed node that lies on the replayed path.
	Path
	// Error marks a wall that was reached by a traversal.
	Error
)

// String returns the lower-case name of s.
func (s NodeState) String() string {
	switch s {
	case Wall:
		return "wall"
	case Clear:
		return "clear"
	case Start:
		return "start"
	case End:
		return "end"
	case Traversed:
		return "traversed"
	case Path:
		return "path"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Direction indexes the four adjacency slots of a Node.
type Direction int

const (
	Up Direction = iota
	Left
	Down
	Right
)

// offsets is indexed by Direction: {dRow, dCol}.
var offsets = [4][2]int{
	Up:    {-1, 0},
	Left:  {0, -1},
	Down:  {1, 0},
	Right: {0, 1},
}

// opposite returns the slot a neighbour uses to point back at us.
func (d Direction) opposite() Direction {
	return (d + 2) % 4
}

// Node is one grid cell: a graph vertex with at most four neighbours.
//
// ID is a stable unique identifier (UUIDv4) used as the key of parent maps.
// Row, Col and Index locate the cell; Index is row-major.
// adj holds the neighbour in each Direction, or nil when the edge is absent
// (grid boundary or severed by a wall). Adjacency is always symmetric.
type Node struct {
	ID    uuid.UUID
	Row   int
	Col   int
	Index int
	State NodeState

	adj [4]*Node
}

// GridGraph is a rows×cols matrix of Nodes linked to their in-bounds
// 4-neighbours. NodeCount() == Rows*Cols at all times.
type GridGraph struct {
	Rows, Cols int
	nodes      [][]*Node
}
