package session

import (
	"go.uber.org/zap"

	"github.com/raj457036/Path-Finding-Visualizer/scheduler"
	"github.com/raj457036/Path-Finding-Visualizer/search"
)

// Option configures a Session.
type Option func(*Options)

// Options holds the run defaults a Session hands to search and scheduler.
type Options struct {
	Algorithm        search.Name
	SearchOptions    []search.Option
	Speed            scheduler.Speed
	MaxReplayFrames  int
	SchedulerOptions []scheduler.Option
	Logger           *zap.Logger
	Metrics          *scheduler.Metrics
}

// DefaultOptions selects A* at Fast speed with the default replay cap.
func DefaultOptions() Options {
	return Options{
		Algorithm:       search.AStar,
		Speed:           scheduler.Fast,
		MaxReplayFrames: scheduler.DefaultMaxReplayFrames,
		Logger:          zap.NewNop(),
	}
}

// WithAlgorithm selects the variant and its options.
func WithAlgorithm(name search.Name, opts ...search.Option) Option {
	return func(o *Options) {
		o.Algorithm = name
		o.SearchOptions = opts
	}
}

// WithSpeed sets the scheduler cadence.
func WithSpeed(sp scheduler.Speed) Option {
	return func(o *Options) { o.Speed = sp }
}

// WithMaxReplayFrames sets the scheduler replay cap.
func WithMaxReplayFrames(n int) Option {
	return func(o *Options) { o.MaxReplayFrames = n }
}

// WithSchedulerOptions appends options (hooks, ticker factory) passed to
// every scheduler the session prepares.
func WithSchedulerOptions(opts ...scheduler.Option) Option {
	return func(o *Options) {
		o.SchedulerOptions = append(o.SchedulerOptions, opts...)
	}
}

// WithLogger sets the structured logger shared with search and scheduler.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMetrics attaches scheduler metrics.
func WithMetrics(m *scheduler.Metrics) Option {
	return func(o *Options) { o.Metrics = m }
}
