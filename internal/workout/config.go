package workout

import "time"

// Configuration describes one workout. It is supplied once, before Start,
// and never mutated by the orchestrator.
type Configuration struct {
	WorkDuration    time.Duration
	RestDuration    time.Duration
	RestBetweenSets time.Duration
	Countdown       time.Duration
	Rounds          int
	Sets            int
}

// Valid reports whether the configuration describes a runnable workout.
// Work and rest must be positive; rest-between-sets and countdown may be
// zero, which skips those phases.
func (c Configuration) Valid() bool {
	return c.WorkDuration > 0 && c.RestDuration > 0 && c.Rounds > 0 && c.Sets > 0
}

// TotalDuration returns the active length of the workout: every round's work
// plus the rests between rounds (the final round of a set has no trailing
// rest) plus the rests between sets. The countdown pre-roll is not counted.
// A single-set workout never includes a rest-between-sets contribution.
func (c Configuration) TotalDuration() time.Duration {
	if c.Rounds < 1 || c.Sets < 1 {
		return 0
	}
	perSet := (c.WorkDuration+c.RestDuration)*time.Duration(c.Rounds) - c.RestDuration
	total := perSet * time.Duration(c.Sets)
	if c.Sets > 1 {
		total += c.RestBetweenSets * time.Duration(c.Sets-1)
	}
	return total
}
