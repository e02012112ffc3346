package scheduler

import (
	"fmt"

	"go.uber.org/zap"
)

// Option configures a Scheduler via functional arguments.
type Option func(*Options)

// Options holds the cadence, replay cap, hooks and observability sinks.
type Options struct {
	Speed           Speed
	MaxReplayFrames int

	// NewTicker builds the tick source for Medium and Slow.
	NewTicker TickerFactory

	// Hooks run after the scheduler lock is released, so they may call
	// Phase, Stop or a host lock that is held around Stop. They must not
	// block on a Tick of the same scheduler.

	// OnStart runs once, after the tick that starts the search.
	OnStart func()
	// OnFrame runs after every tick with the resulting phase.
	OnFrame func(Phase)
	// OnStop runs once, when the run reaches Done or Stopped.
	OnStop func(Phase)

	Logger  *zap.Logger
	Metrics *Metrics

	err error
}

// DefaultOptions returns Options with Fast speed, a 400 frame replay cap,
// time.Ticker ticks, no-op hooks, a no-op logger and no metrics.
func DefaultOptions() Options {
	return Options{
		Speed:           Fast,
		MaxReplayFrames: DefaultMaxReplayFrames,
		NewTicker:       NewTimeTicker,
		OnStart:         func() {},
		OnFrame:         func(Phase) {},
		OnStop:          func(Phase) {},
		Logger:          zap.NewNop(),
	}
}

// WithSpeed sets the cadence of Run.
func WithSpeed(s Speed) Option {
	return func(o *Options) {
		if s < Fast || s > Manual {
			o.err = fmt.Errorf("%w: speed %d", ErrOptionViolation, int(s))
			return
		}
		o.Speed = s
	}
}

// WithMaxReplayFrames caps the replay phase.
//
//	n > 0: cap at n frames
//	n == 0: skip replay entirely
//	n < 0: ErrOptionViolation
func WithMaxReplayFrames(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxReplayFrames cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxReplayFrames = n
	}
}

// WithTickerFactory replaces the time.Ticker based tick source.
func WithTickerFactory(f TickerFactory) Option {
	return func(o *Options) {
		if f != nil {
			o.NewTicker = f
		}
	}
}

// WithOnStart registers the start hook.
func WithOnStart(fn func()) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStart = fn
		}
	}
}

// WithOnFrame registers the per-tick hook.
func WithOnFrame(fn func(Phase)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnFrame = fn
		}
	}
}

// WithOnStop registers the terminal hook.
func WithOnStop(fn func(Phase)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStop = fn
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

// WithMetrics attaches a Prometheus collector set.
func WithMetrics(m *Metrics) Option {
	return func(o *Options) {
		o.Metrics = m
	}
}
