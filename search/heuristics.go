package search

import (
	"fmt"
	"math"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/raj457036/Path-Finding-Visualizer/gridgraph"
)

// Heuristic selects the A* distance estimate.
type Heuristic int

const (
	// Manhattan is |dx| + |dy|.
	Manhattan Heuristic = iota
	// Euclidean is the straight-line distance between cell centres.
	Euclidean
	// Diagonal is D*(dx+dy) + (D2-2D)*min(dx,dy) with D = 1.
	Diagonal
)

// String returns the configuration name of h.
func (h Heuristic) String() string {
	switch h {
	case Manhattan:
		return "manhattan"
	case Euclidean:
		return "euclidean"
	case Diagonal:
		return "diagonal"
	default:
		return fmt.Sprintf("heuristic(%d)", int(h))
	}
}

func (h Heuristic) valid() bool {
	return h >= Manhattan && h <= Diagonal
}

// ParseHeuristic maps a configuration string to a Heuristic.
// Matching is case-insensitive.
func ParseHeuristic(s string) (Heuristic, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "manhattan", "":
		return Manhattan, nil
	case "euclidean":
		return Euclidean, nil
	case "diagonal":
		return Diagonal, nil
	}
	return Manhattan, fmt.Errorf("%w: %q", ErrUnknownHeuristic, s)
}

// Estimate returns the unweighted distance estimate between a and b.
// diagonalCost is only read by Diagonal.
func (h Heuristic) Estimate(a, b *gridgraph.Node, diagonalCost float64) float64 {
	dx := math.Abs(float64(a.Col - b.Col))
	dy := math.Abs(float64(a.Row - b.Row))
	switch h {
	case Euclidean:
		return planar.Distance(point(a), point(b))
	case Diagonal:
		const d = 1.0
		return d*(dx+dy) + (diagonalCost-2*d)*math.Min(dx, dy)
	default:
		return dx + dy
	}
}

// point places a node on the plane with x = column, y = row.
func point(n *gridgraph.Node) orb.Point {
	return orb.Point{float64(n.Col), float64(n.Row)}
}
