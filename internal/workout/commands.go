package workout

// Command is a control action arriving from any trigger source: in-process
// key handling or an out-of-process control surface.
type Command int

const (
	CommandStart Command = iota + 1
	CommandPause
	CommandResume
	CommandToggle
	CommandReset
)

// CommandSource hands pending commands to the orchestrator. Next returns
// false when no command is waiting. Sources are polled on the tick
// goroutine, so implementations bridging another goroutine should hand off
// through a buffered channel.
type CommandSource interface {
	Next() (Command, bool)
}

// Attach registers a command source drained at the start of every Observe.
func (o *Orchestrator) Attach(src CommandSource) {
	if src != nil {
		o.sources = append(o.sources, src)
	}
}

// Apply executes one command. Commands that are illegal in the current
// phase are ignored and reported as such, never escalated; a redundant tap
// on any surface must not disturb the workout.
func (o *Orchestrator) Apply(cmd Command) bool {
	switch cmd {
	case CommandStart:
		return o.Start()
	case CommandPause:
		return o.Pause()
	case CommandResume:
		return o.Resume()
	case CommandToggle:
		if o.phase.CanPause() {
			return o.Pause()
		}
		return o.Resume()
	case CommandReset:
		return o.Reset()
	}
	return false
}

func (o *Orchestrator) drainCommands() {
	for _, src := range o.sources {
		for {
			cmd, ok := src.Next()
			if !ok {
				break
			}
			o.Apply(cmd)
		}
	}
}
