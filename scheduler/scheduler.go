package scheduler

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/raj457036/Path-Finding-Visualizer/search"
)

// Scheduler drives one search.Algorithm through exploration and replay.
type Scheduler struct {
	mu   sync.Mutex
	alg  search.Algorithm
	opts Options

	phase    Phase
	budget   int  // replay frames left
	replayed int  // replay frames done
	recorded bool // run outcome already reported

	running bool
	cancel  context.CancelFunc

	// hooks queued under mu, run by unlock
	pending []func()
}

// New returns an Idle scheduler for alg. The algorithm must already have
// its endpoints set.
func New(alg search.Algorithm, opts ...Option) (*Scheduler, error) {
	if alg == nil {
		return nil, ErrNilAlgorithm
	}
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.err != nil {
		return nil, o.err
	}
	return &Scheduler{alg: alg, opts: o, phase: Idle}, nil
}

// Algorithm returns the driven algorithm.
func (s *Scheduler) Algorithm() search.Algorithm { return s.alg }

// Phase returns the current lifecycle stage.
func (s *Scheduler) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Speed returns the configured cadence.
func (s *Scheduler) Speed() Speed {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.opts.Speed
}

// SetSpeed changes the cadence. It takes effect on the next Run.
func (s *Scheduler) SetSpeed(sp Speed) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.opts.Speed = sp
}

// ReplayedFrames reports how many path nodes have been replayed.
func (s *Scheduler) ReplayedFrames() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.replayed
}

// Running reports whether a Run loop is active.
func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Tick performs exactly one logical tick and returns the resulting phase.
// Ticking a Done or Stopped scheduler does nothing.
func (s *Scheduler) Tick() (Phase, error) {
	s.mu.Lock()
	p, err := s.tick()
	s.unlock()
	return p, err
}

// unlock releases mu, then runs the hooks queued while it was held.
func (s *Scheduler) unlock() {
	hooks := s.pending
	s.pending = nil
	s.mu.Unlock()
	for _, h := range hooks {
		h()
	}
}

func (s *Scheduler) queue(h func()) {
	s.pending = append(s.pending, h)
}

// Next is the host's explicit single step, used with Manual speed.
func (s *Scheduler) Next() (Phase, error) {
	return s.Tick()
}

func (s *Scheduler) tick() (Phase, error) {
	switch s.phase {
	case Idle:
		s.queue(s.opts.OnStart)
		s.opts.Logger.Info("run started",
			zap.String("algorithm", s.alg.Name()),
			zap.Stringer("speed", s.opts.Speed),
		)
		done, err := s.alg.Start()
		if err != nil {
			return s.phase, err
		}
		s.phase = Exploring
		s.opts.Metrics.step(s.alg.Name())
		if done {
			s.explored()
		}

	case Exploring:
		done, err := s.alg.Step()
		if err != nil {
			return s.phase, err
		}
		s.opts.Metrics.step(s.alg.Name())
		if done {
			s.explored()
		}

	case Replaying:
		if s.budget > 0 && s.alg.ReplayStep() {
			s.budget--
			s.replayed++
			s.opts.Metrics.replay(s.alg.Name())
		}
		if s.budget <= 0 || s.alg.Remaining() == 0 {
			s.end(Done)
		}

	default:
		return s.phase, nil
	}

	p := s.phase
	s.queue(func() { s.opts.OnFrame(p) })
	return p, nil
}

// explored switches from exploration to replay once the search finished.
func (s *Scheduler) explored() {
	outcome := OutcomeUnreachable
	switch {
	case s.alg.Found():
		outcome = OutcomeFound
	case s.alg.Err() != nil:
		outcome = OutcomeFailed
	}
	s.record(outcome)

	s.budget = min(s.alg.Remaining(), s.opts.MaxReplayFrames)
	if s.budget == 0 {
		s.end(Done)
		return
	}
	s.phase = Replaying
}

func (s *Scheduler) record(outcome string) {
	if s.recorded {
		return
	}
	s.recorded = true
	s.opts.Metrics.run(s.alg.Name(), outcome, s.alg.Visited(), len(s.alg.Path()), s.alg.Elapsed())

	fields := []zap.Field{
		zap.String("algorithm", s.alg.Name()),
		zap.String("outcome", outcome),
		zap.Int("visited", s.alg.Visited()),
		zap.Int("path", len(s.alg.Path())),
		zap.Duration("elapsed", s.alg.Elapsed()),
	}
	if err := s.alg.Err(); err != nil {
		s.opts.Logger.Warn("run finished", append(fields, zap.Error(err))...)
		return
	}
	s.opts.Logger.Info("run finished", fields...)
}

func (s *Scheduler) end(p Phase) {
	s.phase = p
	if s.cancel != nil {
		s.cancel()
	}
	s.queue(func() { s.opts.OnStop(p) })
}

// Stop cancels an active Run, discards the frontier and parks the scheduler
// in Stopped. Stopping a Done or Stopped scheduler does nothing.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if s.phase.Terminal() {
		s.mu.Unlock()
		return
	}
	s.alg.Stop()
	s.record(OutcomeStopped)
	s.end(Stopped)
	s.unlock()
}

// Run ticks until the run is Done or Stopped, or ctx is cancelled. Fast
// speed ticks back to back; Medium and Slow wait on one ticker. A cancelled
// ctx stops the scheduler and returns ctx.Err(); Stop makes Run return nil.
func (s *Scheduler) Run(ctx context.Context) error {
	s.mu.Lock()
	switch {
	case s.opts.Speed == Manual:
		s.mu.Unlock()
		return ErrManualMode
	case s.running:
		s.mu.Unlock()
		return ErrAlreadyRunning
	case s.phase.Terminal():
		s.mu.Unlock()
		return nil
	}
	runCtx, cancel := context.WithCancel(ctx)
	s.running = true
	s.cancel = cancel
	delay := s.opts.Speed.Delay()
	newTicker := s.opts.NewTicker
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.running = false
		s.cancel = nil
		s.mu.Unlock()
		cancel()
	}()

	var tick <-chan time.Time
	if delay > 0 {
		t := newTicker(delay)
		defer t.Stop()
		tick = t.C()
	}

	for {
		if tick != nil {
			select {
			case <-runCtx.Done():
				return s.interrupted(ctx)
			case <-tick:
			}
		} else if runCtx.Err() != nil {
			return s.interrupted(ctx)
		}

		phase, err := s.Tick()
		if err != nil {
			return err
		}
		if phase.Terminal() {
			return nil
		}
	}
}

// interrupted resolves why the run context ended.
func (s *Scheduler) interrupted(parent context.Context) error {
	if parent.Err() == nil {
		return nil
	}
	s.Stop()
	return parent.Err()
}
