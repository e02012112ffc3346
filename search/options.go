package search

import (
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/raj457036/Path-Finding-Visualizer/gridgraph"
)

// Weight bounds accepted by WithAdmissibleWeight.
const (
	MinAdmissibleWeight = 1.0
	MaxAdmissibleWeight = 100.0
)

// DefaultDiagonalCost is the cost of one diagonal move used by the Diagonal
// heuristic when none is configured.
var DefaultDiagonalCost = math.Sqrt2

// Option configures an Algorithm via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds the hooks and tuning knobs shared by every variant.
type Options struct {
	// OnVisit is called for every finalized node with its cost from the
	// start: BFS/DFS depth, Dijkstra distance or A* g-score.
	OnVisit func(n *gridgraph.Node, cost int)

	// Clock supplies timestamps for Elapsed. Tests inject a fake clock.
	Clock func() time.Time

	// Logger receives one debug entry per finished run.
	Logger *zap.Logger

	// Heuristic, DiagonalCost and AdmissibleWeight are read by A* only.
	Heuristic        Heuristic
	DiagonalCost     float64
	AdmissibleWeight float64

	err error
}

// DefaultOptions returns Options with:
//   - a no-op OnVisit hook
//   - time.Now as clock
//   - a no-op logger
//   - Manhattan heuristic, diagonal cost √2, admissible weight 1.
func DefaultOptions() Options {
	return Options{
		OnVisit:          func(*gridgraph.Node, int) {},
		Clock:            time.Now,
		Logger:           zap.NewNop(),
		Heuristic:        Manhattan,
		DiagonalCost:     DefaultDiagonalCost,
		AdmissibleWeight: MinAdmissibleWeight,
	}
}

// WithOnVisit registers a callback invoked on node finalization.
func WithOnVisit(fn func(n *gridgraph.Node, cost int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(o *Options) {
		if now != nil {
			o.Clock = now
		}
	}
}

// WithLogger sets the structured logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithHeuristic selects the A* distance estimate.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if !h.valid() {
			o.err = fmt.Errorf("%w: heuristic %d", ErrOptionViolation, int(h))
			return
		}
		o.Heuristic = h
	}
}

// WithDiagonalCost sets D2 for the Diagonal heuristic.
//
//	cost > 0: used as is
//	cost <= 0 or NaN: ErrOptionViolation
func WithDiagonalCost(cost float64) Option {
	return func(o *Options) {
		if !(cost > 0) || math.IsInf(cost, 0) {
			o.err = fmt.Errorf("%w: diagonal cost must be positive and finite (%v)", ErrOptionViolation, cost)
			return
		}
		o.DiagonalCost = cost
	}
}

// WithAdmissibleWeight sets the heuristic multiplier. Values outside
// [MinAdmissibleWeight, MaxAdmissibleWeight] fall back to 1.
func WithAdmissibleWeight(w float64) Option {
	return func(o *Options) {
		o.AdmissibleWeight = ClampWeight(w)
	}
}

// ClampWeight returns w when it lies in [1,100] and 1 otherwise.
func ClampWeight(w float64) float64 {
	if math.IsNaN(w) || w < MinAdmissibleWeight || w > MaxAdmissibleWeight {
		return MinAdmissibleWeight
	}
	return w
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o, o.err
}
