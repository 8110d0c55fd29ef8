package workout

// Phase is the current state-machine value of a workout.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseCountdown
	PhaseWork
	PhaseRest
	PhaseRestBetweenSets
	PhasePaused
	PhaseFinished
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseCountdown:
		return "countdown"
	case PhaseWork:
		return "work"
	case PhaseRest:
		return "rest"
	case PhaseRestBetweenSets:
		return "set rest"
	case PhasePaused:
		return "paused"
	case PhaseFinished:
		return "finished"
	}
	return "unknown"
}

// CanPause reports whether the phase has a running interval to pause.
func (p Phase) CanPause() bool {
	switch p {
	case PhaseCountdown, PhaseWork, PhaseRest, PhaseRestBetweenSets:
		return true
	}
	return false
}

// CanResume reports whether the phase can be resumed.
func (p Phase) CanResume() bool {
	return p == PhasePaused
}

// CanReset reports whether a reset would change anything.
func (p Phase) CanReset() bool {
	return p != PhaseIdle
}
