// Package workout owns the interval state machine: it translates engine
// interval-end events into phase transitions, keeps the round and set
// position, and fast-forwards through phase boundaries that elapsed while
// the process was suspended.
package workout

import (
	"time"

	"github.com/avandriel/rounds/internal/engine"
)

// Event describes one phase transition. Round and Set are 1-indexed.
type Event struct {
	Phase Phase
	Round int
	Set   int
}

// Listener receives phase-transition events. Listeners are invoked
// synchronously on the caller's goroutine, in subscription order.
type Listener func(Event)

// Snapshot is the read-only view the presentation layer polls each tick.
type Snapshot struct {
	Phase         Phase
	TimeRemaining time.Duration
	Progress      float64
	Round         int
	TotalRounds   int
	Set           int
	TotalSets     int
}

// Orchestrator drives a workout through its phases. It is not safe for
// concurrent mutation; the host is expected to serialize commands and ticks
// onto one goroutine, which a bubbletea update loop does naturally.
type Orchestrator struct {
	engine *engine.Engine

	cfg        Configuration
	configured bool

	phase            Phase
	phaseBeforePause Phase
	round            int
	set              int

	// Length of the interval currently on the engine, for progress display.
	intervalTotal time.Duration

	listeners []Listener
	sources   []CommandSource
}

// New returns an idle orchestrator driving eng. A nil eng gets a
// system-clock engine.
func New(eng *engine.Engine) *Orchestrator {
	if eng == nil {
		eng = engine.New()
	}
	return &Orchestrator{
		engine: eng,
		phase:  PhaseIdle,
		round:  1,
		set:    1,
	}
}

// Subscribe registers a listener for phase-transition events.
func (o *Orchestrator) Subscribe(l Listener) {
	if l != nil {
		o.listeners = append(o.listeners, l)
	}
}

// Configure installs cfg for the next Start. An invalid configuration is
// rejected and leaves all state untouched.
func (o *Orchestrator) Configure(cfg Configuration) bool {
	if !cfg.Valid() {
		return false
	}
	o.cfg = cfg
	o.configured = true
	return true
}

// Configuration returns the currently installed configuration.
func (o *Orchestrator) Configuration() Configuration {
	return o.cfg
}

// Start begins the workout: into Countdown when a pre-roll is configured,
// straight into Work otherwise. Ignored unless configured and idle.
func (o *Orchestrator) Start() bool {
	if !o.configured || o.phase != PhaseIdle {
		return false
	}
	o.round = 1
	o.set = 1
	if o.cfg.Countdown > 0 {
		o.beginInterval(PhaseCountdown, o.cfg.Countdown)
	} else {
		o.beginInterval(PhaseWork, o.cfg.WorkDuration)
	}
	return true
}

// Pause freezes the running interval. Ignored unless the current phase is
// pausable, so a redundant tap never disturbs the workout.
//
// A boundary may have passed since the last tick observed the engine.
// Pausing at that moment would capture a zero remainder and leave nothing
// for Resume to restart, so any pending transitions are applied first; the
// paused interval then always has time left on it.
func (o *Orchestrator) Pause() bool {
	if !o.phase.CanPause() {
		return false
	}
	if o.engine.HasIntervalEnded() {
		o.SynchronizeAfterGap()
		if !o.phase.CanPause() {
			return false
		}
	}
	o.phaseBeforePause = o.phase
	o.engine.Pause()
	o.setPhase(PhasePaused)
	return true
}

// Resume restores the phase that was interrupted by Pause. Ignored unless
// paused.
func (o *Orchestrator) Resume() bool {
	if !o.phase.CanResume() {
		return false
	}
	o.engine.Resume()
	o.setPhase(o.phaseBeforePause)
	return true
}

// Reset abandons the workout and returns to Idle. Ignored when already idle.
func (o *Orchestrator) Reset() bool {
	if !o.phase.CanReset() {
		return false
	}
	o.engine.Reset()
	o.round = 1
	o.set = 1
	o.intervalTotal = 0
	o.setPhase(PhaseIdle)
	return true
}

// Observe is the periodic tick entry point. It drains attached command
// sources, applies at most one phase transition, then returns the current
// snapshot for display.
func (o *Orchestrator) Observe() Snapshot {
	o.drainCommands()
	if o.engine.HasIntervalEnded() {
		o.advance()
	}
	return o.Snapshot()
}

// SynchronizeAfterGap fast-forwards through every phase boundary that
// silently elapsed while the process was suspended, so the phase, round and
// set reflect the true current position rather than a stale one. Paused and
// finished workouts are untouched; a paused remainder does not drain while
// the process sleeps.
func (o *Orchestrator) SynchronizeAfterGap() Snapshot {
	// One transition per phase of the configured workout, with headroom for
	// countdown and final bookkeeping. Bounds the loop even if a future
	// phase forgets to terminate it.
	limit := o.cfg.Rounds*2*o.cfg.Sets + o.cfg.Sets + 2
	for i := 0; i < limit; i++ {
		if o.phase == PhaseFinished || o.phase == PhasePaused || o.phase == PhaseIdle {
			break
		}
		if !o.engine.HasIntervalEnded() {
			break
		}
		o.advance()
	}
	return o.Snapshot()
}

// Snapshot returns the read-only view of the current position.
func (o *Orchestrator) Snapshot() Snapshot {
	return Snapshot{
		Phase:         o.phase,
		TimeRemaining: o.engine.TimeRemaining(),
		Progress:      o.engine.Progress(o.intervalTotal),
		Round:         o.round,
		TotalRounds:   o.cfg.Rounds,
		Set:           o.set,
		TotalSets:     o.cfg.Sets,
	}
}

// advance applies exactly one transition from the state table. Callers have
// already checked that the current interval ended.
func (o *Orchestrator) advance() {
	switch o.phase {
	case PhaseCountdown:
		o.beginInterval(PhaseWork, o.cfg.WorkDuration)
	case PhaseWork:
		o.afterWork()
	case PhaseRest:
		o.nextRound()
	case PhaseRestBetweenSets:
		o.nextSet()
	}
}

// afterWork decides what follows a finished work interval. The final round
// of a set has no trailing rest, so set and workout boundaries are checked
// before rest.
func (o *Orchestrator) afterWork() {
	lastRound := o.round >= o.cfg.Rounds
	lastSet := o.set >= o.cfg.Sets
	switch {
	case lastRound && lastSet:
		o.finish()
	case lastRound:
		if o.cfg.RestBetweenSets > 0 {
			o.beginInterval(PhaseRestBetweenSets, o.cfg.RestBetweenSets)
		} else {
			o.nextSet()
		}
	case o.cfg.RestDuration > 0:
		o.beginInterval(PhaseRest, o.cfg.RestDuration)
	default:
		o.nextRound()
	}
}

func (o *Orchestrator) nextRound() {
	if o.round >= o.cfg.Rounds {
		// A rest ending on the final round only happens if the
		// configuration changed underneath us; close out rather than
		// overrun the round counter.
		if o.set >= o.cfg.Sets {
			o.finish()
		} else {
			o.nextSet()
		}
		return
	}
	o.round++
	o.beginInterval(PhaseWork, o.cfg.WorkDuration)
}

func (o *Orchestrator) nextSet() {
	o.set++
	o.round = 1
	o.beginInterval(PhaseWork, o.cfg.WorkDuration)
}

func (o *Orchestrator) finish() {
	o.engine.Reset()
	o.intervalTotal = 0
	o.setPhase(PhaseFinished)
}

// beginInterval puts the next interval on the engine. ContinueInterval
// anchors it to the previous interval's end instant, so a late tick or a
// suspension gap never stretches the schedule; at Start the engine is idle
// and the interval anchors to now.
func (o *Orchestrator) beginInterval(p Phase, d time.Duration) {
	o.engine.ContinueInterval(d)
	o.intervalTotal = d
	o.setPhase(p)
}

func (o *Orchestrator) setPhase(p Phase) {
	o.phase = p
	ev := Event{Phase: p, Round: o.round, Set: o.set}
	for _, l := range o.listeners {
		l(ev)
	}
}
