package tui

import (
	"time"

	"github.com/avandriel/rounds/internal/config"
	"github.com/avandriel/rounds/internal/database"
	"github.com/avandriel/rounds/internal/workout"
	tea "github.com/charmbracelet/bubbletea"
)

// SessionState defines the high-level mode of the application.
type SessionState int

const (
	StateSetup SessionState = iota
	StateRun
	StateHistory
)

// --- Messages ---

type TickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(config.TickInterval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// startWorkoutMsg moves from setup into a running workout.
type startWorkoutMsg struct {
	cfg        workout.Configuration
	presetName *string
}

type showHistoryMsg struct{}

// backToSetupMsg returns to setup, optionally with a status line.
type backToSetupMsg struct {
	status string
}

// MainModel is the root bubbletea model that switches between sub-models.
type MainModel struct {
	state   SessionState
	db      database.Repository
	setup   SetupModel
	run     RunModel
	history HistoryModel
	width   int
	height  int
}

func NewMainModel(db database.Repository) MainModel {
	if theme, err := db.GetSetting("theme"); err == nil {
		SetTheme(theme)
	}
	return MainModel{
		state: StateSetup,
		db:    db,
		setup: NewSetupModel(db),
	}
}

func (m MainModel) Init() tea.Cmd {
	return m.setup.Init()
}

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			if m.state == StateRun {
				m.run.recordAbandoned()
			}
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.setup.width, m.setup.height = msg.Width, msg.Height
		m.run.width, m.run.height = msg.Width, msg.Height
		m.history.width, m.history.height = msg.Width, msg.Height
	case startWorkoutMsg:
		m.state = StateRun
		m.run = NewRunModel(m.db, msg.cfg, msg.presetName)
		m.run.width, m.run.height = m.width, m.height
		return m, m.run.Init()
	case showHistoryMsg:
		m.state = StateHistory
		m.history = NewHistoryModel(m.db)
		m.history.width, m.history.height = m.width, m.height
		return m, nil
	case backToSetupMsg:
		m.state = StateSetup
		m.setup.status = msg.status
		m.setup.width, m.setup.height = m.width, m.height
		return m, m.setup.Init()
	}

	switch m.state {
	case StateSetup:
		next, cmd := m.setup.Update(msg)
		m.setup = next
		return m, cmd
	case StateRun:
		next, cmd := m.run.Update(msg)
		m.run = next
		return m, cmd
	case StateHistory:
		next, cmd := m.history.Update(msg)
		m.history = next
		return m, cmd
	}
	return m, nil
}

func (m MainModel) View() string {
	switch m.state {
	case StateSetup:
		return m.setup.View()
	case StateRun:
		return m.run.View()
	case StateHistory:
		return m.history.View()
	}
	return ""
}
