package tui

import (
	"fmt"
	"strings"

	"github.com/avandriel/rounds/internal/config"
	"github.com/avandriel/rounds/internal/database"
	"github.com/avandriel/rounds/internal/models"
	"github.com/avandriel/rounds/internal/util"
	tea "github.com/charmbracelet/bubbletea"
)

// HistoryModel lists past workout sessions.
type HistoryModel struct {
	db       database.Repository
	sessions []models.Session
	scroll   int
	status   string
	width    int
	height   int
}

func NewHistoryModel(db database.Repository) HistoryModel {
	sessions, err := db.GetSessions(0)
	if err != nil {
		util.LogError("loading session history", err)
	}
	return HistoryModel{db: db, sessions: sessions}
}

func (m HistoryModel) Update(msg tea.Msg) (HistoryModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc":
			return m, func() tea.Msg { return backToSetupMsg{} }
		case "up", "k":
			if m.scroll > 0 {
				m.scroll--
			}
		case "down", "j":
			if m.scroll < len(m.sessions)-config.MaxVisibleSessions {
				m.scroll++
			}
		case "e":
			path, err := GeneratePDFReport(m.db)
			if err != nil {
				m.status = fmt.Sprintf("export failed: %v", err)
			} else {
				m.status = fmt.Sprintf("Exported %s", path)
			}
		}
	}
	return m, nil
}

func (m HistoryModel) View() string {
	theme := CurrentTheme
	var b strings.Builder

	b.WriteString(theme.Header.Render("SESSION HISTORY"))
	b.WriteString("\n\n")

	if len(m.sessions) == 0 {
		b.WriteString(theme.Dim.Render("  No workouts recorded yet.") + "\n")
	}

	end := m.scroll + config.MaxVisibleSessions
	if end > len(m.sessions) {
		end = len(m.sessions)
	}
	for _, s := range m.sessions[m.scroll:end] {
		b.WriteString("  " + truncate(formatSessionLine(s, theme), m.width-4) + "\n")
	}
	if end < len(m.sessions) {
		b.WriteString(theme.Dim.Render(fmt.Sprintf("  … %d more", len(m.sessions)-end)) + "\n")
	}

	if m.status != "" {
		b.WriteString("\n" + theme.Highlight.Render("  "+m.status) + "\n")
	}
	b.WriteString("\n" + theme.Dim.Render("  e export pdf · j/k scroll · q back"))

	return theme.Base.Render(b.String())
}

func formatSessionLine(s models.Session, theme Theme) string {
	name := util.Deref(s.PresetName)
	if name == "" {
		name = "custom"
	}
	var outcome string
	if s.Completed {
		outcome = theme.Finished.Render("completed")
	} else {
		outcome = theme.Dim.Render(fmt.Sprintf("stopped R%d S%d", s.RoundsReached, s.SetsReached))
	}
	return fmt.Sprintf("%s  %-14s %s  %s",
		s.StartedAt.Format("2006-01-02 15:04"),
		name,
		describeSession(s),
		outcome)
}

// describeSession renders the configuration snapshot, e.g. "8x30s/10s" or
// "3x5x40s/20s" for a multi-set workout.
func describeSession(s models.Session) string {
	if s.Sets > 1 {
		return fmt.Sprintf("%dx%dx%ds/%ds", s.Sets, s.Rounds, s.WorkSeconds, s.RestSeconds)
	}
	return fmt.Sprintf("%dx%ds/%ds", s.Rounds, s.WorkSeconds, s.RestSeconds)
}
