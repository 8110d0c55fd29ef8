package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/avandriel/rounds/internal/config"
	"github.com/avandriel/rounds/internal/database"
	"github.com/avandriel/rounds/internal/models"
	"github.com/avandriel/rounds/internal/util"
	"github.com/avandriel/rounds/internal/workout"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

// transitionLog collects phase-transition events emitted by the
// orchestrator. Bubbletea models are values, so the listener writes through
// a shared pointer and the update loop drains it each tick.
type transitionLog struct {
	events []workout.Event
}

func (l *transitionLog) record(ev workout.Event) {
	l.events = append(l.events, ev)
}

func (l *transitionLog) drain() []workout.Event {
	evs := l.events
	l.events = nil
	return evs
}

// RunModel drives one workout from countdown to finish.
type RunModel struct {
	db          database.Repository
	orc         *workout.Orchestrator
	transitions *transitionLog
	snap        workout.Snapshot
	progress    progress.Model
	sessionID   int64
	lastTick    time.Time
	closed      bool
	width       int
	height      int
}

func NewRunModel(db database.Repository, cfg workout.Configuration, presetName *string) RunModel {
	return newRunModel(db, cfg, presetName, workout.New(nil))
}

// newRunModel lets tests supply an orchestrator built on a fake clock.
func newRunModel(db database.Repository, cfg workout.Configuration, presetName *string, orc *workout.Orchestrator) RunModel {
	orc.Configure(cfg)

	transitions := &transitionLog{}
	orc.Subscribe(transitions.record)

	m := RunModel{
		db:          db,
		orc:         orc,
		transitions: transitions,
		progress:    progress.New(progress.WithDefaultGradient()),
	}
	m.progress.Width = config.ProgressBarWidth

	session := models.Session{
		PresetName:     presetName,
		WorkSeconds:    int(cfg.WorkDuration.Seconds()),
		RestSeconds:    int(cfg.RestDuration.Seconds()),
		SetRestSeconds: int(cfg.RestBetweenSets.Seconds()),
		Rounds:         cfg.Rounds,
		Sets:           cfg.Sets,
		StartedAt:      time.Now(),
	}
	id, err := db.StartSession(session)
	if err != nil {
		util.LogError("recording session start", err)
	}
	m.sessionID = id

	orc.Start()
	m.snap = orc.Snapshot()
	return m
}

func (m RunModel) Init() tea.Cmd {
	return tickCmd()
}

func (m RunModel) Update(msg tea.Msg) (RunModel, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		now := time.Time(msg)
		if !m.lastTick.IsZero() && now.Sub(m.lastTick) > config.SuspensionGapThreshold {
			// The process slept; fast-forward through every boundary that
			// elapsed instead of stepping one phase per tick.
			m.snap = m.orc.SynchronizeAfterGap()
		} else {
			m.snap = m.orc.Observe()
		}
		m.lastTick = now
		cmds := m.consumeTransitions()
		cmds = append(cmds, tickCmd())
		return m, tea.Batch(cmds...)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		w := msg.Width - config.MinReadoutWidth
		if w > config.ProgressBarWidth {
			w = config.ProgressBarWidth
		}
		if w > 0 {
			m.progress.Width = w
		}
		return m, nil

	case tea.ResumeMsg:
		// Back from ctrl+z; the pending tick keeps the loop alive, we only
		// need to catch up immediately.
		m.snap = m.orc.SynchronizeAfterGap()
		return m, tea.Batch(m.consumeTransitions()...)

	case tea.KeyMsg:
		switch msg.String() {
		case " ":
			m.orc.Apply(workout.CommandToggle)
			m.snap = m.orc.Snapshot()
			return m, tea.Batch(m.consumeTransitions()...)
		case "r":
			m.recordAbandoned()
			m.orc.Reset()
			return m, func() tea.Msg { return backToSetupMsg{status: "Workout reset"} }
		case "q", "esc":
			if m.snap.Phase == workout.PhaseFinished {
				return m, func() tea.Msg { return backToSetupMsg{} }
			}
			m.recordAbandoned()
			m.orc.Reset()
			return m, func() tea.Msg { return backToSetupMsg{status: "Workout abandoned"} }
		case "enter":
			if m.snap.Phase == workout.PhaseFinished {
				return m, func() tea.Msg { return backToSetupMsg{status: "Workout complete"} }
			}
		}
	}
	return m, nil
}

// consumeTransitions turns queued phase-transition events into side
// effects: an audible cue per transition and closing the session record
// when the workout finishes.
func (m *RunModel) consumeTransitions() []tea.Cmd {
	var cmds []tea.Cmd
	for _, ev := range m.transitions.drain() {
		if ev.Phase != workout.PhasePaused {
			cmds = append(cmds, bellCmd)
		}
		if ev.Phase == workout.PhaseFinished && !m.closed && m.sessionID > 0 {
			if err := m.db.FinishSession(m.sessionID, true, ev.Round, ev.Set); err != nil {
				util.LogError("recording session finish", err)
			}
			m.closed = true
		}
	}
	return cmds
}

// recordAbandoned closes the session record with the position reached when
// the workout is reset or quit before finishing.
func (m *RunModel) recordAbandoned() {
	if m.closed || m.sessionID == 0 {
		return
	}
	snap := m.orc.Snapshot()
	if err := m.db.FinishSession(m.sessionID, false, snap.Round, snap.Set); err != nil {
		util.LogError("recording session abandon", err)
	}
	m.closed = true
}

// bellCmd rings the terminal bell, the whole of this app's audio story.
func bellCmd() tea.Msg {
	fmt.Print("\a")
	return nil
}

func (m RunModel) View() string {
	theme := CurrentTheme
	snap := m.snap
	style := phaseStyle(theme, snap.Phase.String())

	var b strings.Builder
	b.WriteString(theme.Header.Render("ROUNDS"))
	b.WriteString("\n\n")

	banner := strings.ToUpper(snap.Phase.String())
	if snap.Phase == workout.PhasePaused {
		banner = "PAUSED"
	}
	b.WriteString("  " + style.Render(banner) + "\n\n")

	switch snap.Phase {
	case workout.PhaseFinished:
		b.WriteString("  " + theme.Finished.Render("Workout complete") + "\n\n")
		b.WriteString("  " + theme.Dim.Render(FormatPosition(snap.Round, snap.TotalRounds, snap.Set, snap.TotalSets)) + "\n\n")
		b.WriteString(theme.Dim.Render("  enter/q back to setup · ctrl+c quit"))
	default:
		compact := m.width > 0 && m.width < config.CompactModeThreshold
		b.WriteString("  " + style.Render(FormatTimeRemaining(snap.TimeRemaining)) + "\n\n")
		b.WriteString("  " + m.progress.ViewAs(snap.Progress) + "\n\n")
		b.WriteString("  " + theme.Highlight.Render(FormatPosition(snap.Round, snap.TotalRounds, snap.Set, snap.TotalSets)) + "\n")
		if compact {
			break
		}
		b.WriteString("  " + theme.Dim.Render(fmt.Sprintf("Total workout: %s", FormatDuration(m.orc.Configuration().TotalDuration()))) + "\n\n")

		help := "space pause/resume · r reset · q abandon · ctrl+c quit"
		if snap.Phase == workout.PhasePaused {
			help = "space resume · r reset · q abandon · ctrl+c quit"
		}
		b.WriteString(theme.Dim.Render(truncate("  "+help, m.width)))
	}

	return theme.Base.Render(b.String())
}
