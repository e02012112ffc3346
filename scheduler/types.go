package scheduler

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Sentinel errors for scheduler execution.
var (
	// ErrNilAlgorithm is returned by New when no algorithm is supplied.
	ErrNilAlgorithm = errors.New("scheduler: algorithm is nil")

	// ErrManualMode is returned by Run when the speed is Manual.
	ErrManualMode = errors.New("scheduler: manual speed, drive with Next")

	// ErrAlreadyRunning is returned by Run while another Run is active.
	ErrAlreadyRunning = errors.New("scheduler: already running")

	// ErrUnknownSpeed is returned by ParseSpeed.
	ErrUnknownSpeed = errors.New("scheduler: unknown speed")

	// ErrOptionViolation is returned by New when an Option is invalid.
	ErrOptionViolation = errors.New("scheduler: invalid option supplied")
)

// DefaultMaxReplayFrames caps how many path nodes are replayed one by one.
const DefaultMaxReplayFrames = 400

// Speed selects the cadence of Run.
type Speed int

const (
	// Fast ticks back to back.
	Fast Speed = iota
	// Medium waits 128ms between ticks.
	Medium
	// Slow waits 512ms between ticks.
	Slow
	// Manual never ticks on its own; the host calls Next.
	Manual
)

// Delay returns the pause between two ticks at speed s.
func (s Speed) Delay() time.Duration {
	switch s {
	case Medium:
		return 128 * time.Millisecond
	case Slow:
		return 512 * time.Millisecond
	default:
		return 0
	}
}

func (s Speed) String() string {
	switch s {
	case Fast:
		return "fast"
	case Medium:
		return "medium"
	case Slow:
		return "slow"
	case Manual:
		return "manual"
	default:
		return fmt.Sprintf("speed(%d)", int(s))
	}
}

// ParseSpeed maps a configuration string to a Speed.
func ParseSpeed(s string) (Speed, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fast", "":
		return Fast, nil
	case "medium":
		return Medium, nil
	case "slow":
		return Slow, nil
	case "manual", "step":
		return Manual, nil
	}
	return Fast, fmt.Errorf("%w: %q", ErrUnknownSpeed, s)
}

// Phase is the lifecycle stage of a Scheduler.
type Phase int

const (
	Idle Phase = iota
	Exploring
	Replaying
	Done
	Stopped
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Exploring:
		return "exploring"
	case Replaying:
		return "replaying"
	case Done:
		return "done"
	case Stopped:
		return "stopped"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Terminal reports whether no further tick can change the phase.
func (p Phase) Terminal() bool {
	return p == Done || p == Stopped
}

// Ticker is the single repeating tick source used by Run.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// TickerFactory builds a Ticker firing every d.
type TickerFactory func(d time.Duration) Ticker

type timeTicker struct{ t *time.Ticker }

func (t timeTicker) C() <-chan time.Time { return t.t.C }
func (t timeTicker) Stop()               { t.t.Stop() }

// NewTimeTicker is the default TickerFactory, backed by time.Ticker.
func NewTimeTicker(d time.Duration) Ticker {
	return timeTicker{t: time.NewTicker(d)}
}
