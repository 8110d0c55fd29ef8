// Package engine implements drift-free interval timekeeping. A running
// interval is stored as the absolute wall-clock instant it ends, never as a
// counter decremented per tick, so remaining time stays correct no matter how
// long the process was suspended between reads.
package engine

import "time"

// Engine measures the time left in a single interval. It keeps no goroutine
// and no ticker of its own; callers poll it at whatever cadence they like.
//
// At most one of intervalEnd and pausedRemaining is set at a time. Both zero
// means idle.
type Engine struct {
	now             func() time.Time
	intervalEnd     time.Time
	pausedRemaining time.Duration
}

// New returns an engine reading the system wall clock.
func New() *Engine {
	return &Engine{now: time.Now}
}

// NewWithClock returns an engine reading time through now. Tests use this to
// simulate suspension gaps without sleeping.
func NewWithClock(now func() time.Time) *Engine {
	if now == nil {
		now = time.Now
	}
	return &Engine{now: now}
}

// StartInterval begins a new interval of the given length, replacing any
// running or paused interval. Non-positive durations are ignored.
func (e *Engine) StartInterval(d time.Duration) {
	if d <= 0 {
		return
	}
	e.intervalEnd = e.now().Add(d)
	e.pausedRemaining = 0
}

// ContinueInterval begins the next interval at the instant the current one
// ends, keeping chained intervals anchored to the original schedule even
// when the transition is observed late or after a long suspension. If the
// new end instant is already in the past, HasIntervalEnded stays true and
// the caller can keep chaining. Falls back to StartInterval when nothing is
// running. Non-positive durations are ignored.
func (e *Engine) ContinueInterval(d time.Duration) {
	if d <= 0 {
		return
	}
	if e.intervalEnd.IsZero() {
		e.StartInterval(d)
		return
	}
	e.intervalEnd = e.intervalEnd.Add(d)
	e.pausedRemaining = 0
}

// IsRunning reports whether an interval is counting down.
func (e *Engine) IsRunning() bool {
	return !e.intervalEnd.IsZero()
}

// IsPaused reports whether an interval is paused with time left on it.
func (e *Engine) IsPaused() bool {
	return e.pausedRemaining > 0
}

// TimeRemaining returns the time left in the current interval: the distance
// to the end instant while running, the captured remainder while paused, and
// zero when idle. It is never negative.
//
// Known limitation: if the wall clock is set backward while an interval is
// running, the distance to the end instant grows and the reported remainder
// is stale until the clock passes the original end instant again.
func (e *Engine) TimeRemaining() time.Duration {
	if e.IsRunning() {
		rem := e.intervalEnd.Sub(e.now())
		if rem < 0 {
			return 0
		}
		return rem
	}
	return e.pausedRemaining
}

// HasIntervalEnded reports whether a running interval has reached its end
// instant. A paused or idle engine never reports an ended interval.
func (e *Engine) HasIntervalEnded() bool {
	return e.IsRunning() && !e.now().Before(e.intervalEnd)
}

// Pause captures the current remainder and stops the countdown. Ignored
// unless an interval is running.
func (e *Engine) Pause() {
	if !e.IsRunning() {
		return
	}
	rem := e.intervalEnd.Sub(e.now())
	if rem < 0 {
		rem = 0
	}
	e.pausedRemaining = rem
	e.intervalEnd = time.Time{}
}

// Resume restarts the countdown from the paused remainder. Ignored unless
// paused with time left.
func (e *Engine) Resume() {
	if e.pausedRemaining <= 0 {
		return
	}
	e.intervalEnd = e.now().Add(e.pausedRemaining)
	e.pausedRemaining = 0
}

// Reset returns the engine to idle, discarding any running or paused
// interval.
func (e *Engine) Reset() {
	e.intervalEnd = time.Time{}
	e.pausedRemaining = 0
}

// Progress returns completion of an interval of length total as a fraction
// in [0, 1]. A non-positive total yields 0.
func (e *Engine) Progress(total time.Duration) float64 {
	if total <= 0 {
		return 0
	}
	p := float64(total-e.TimeRemaining()) / float64(total)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// ElapsedTime returns total minus the current remainder. It can go negative
// if the caller passes a total shorter than the running interval; that is a
// caller error and is not defended against.
func (e *Engine) ElapsedTime(total time.Duration) time.Duration {
	return total - e.TimeRemaining()
}
