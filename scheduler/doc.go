// Package scheduler animates a search.Algorithm one logical tick at a time.
//
// A run moves through the phases
//
//	Idle → Exploring → Replaying → Done
//
// and may jump to Stopped from any phase before Done. The first tick calls
// Algorithm.Start, later ticks call Step until the search finishes. If a path
// was found, each following tick replays one path node, up to
// MaxReplayFrames; path nodes beyond the cap are not animated.
//
// Ticks come from one of two places:
//
//   - Run drives ticks from a single tick source until the run ends or the
//     context is cancelled. Fast speed ticks back to back; Medium and Slow
//     wait for a ticker built by the configured TickerFactory.
//   - Tick / Next perform exactly one tick on demand. This is how a host
//     implements Manual speed, and how tests drive a run without time.
//
// All ticks and Stop are serialised by one mutex, so exactly one step runs
// at a time. Stop is idempotent: it cancels an active Run, discards the
// algorithm's frontier and parks the scheduler in Stopped.
//
// Hooks (OnStart, OnFrame, OnStop) are queued while the mutex is held and
// run after it is released, in order, on the goroutine that ticked or
// stopped. They may read the Scheduler or call Stop.
package scheduler
