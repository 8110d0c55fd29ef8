package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name      string
	Base      lipgloss.Style
	Border    lipgloss.Color
	Header    lipgloss.Style
	Work      lipgloss.Style
	Rest      lipgloss.Style
	SetRest   lipgloss.Style
	Countdown lipgloss.Style
	Paused    lipgloss.Style
	Finished  lipgloss.Style
	Input     lipgloss.Style
	Focused   lipgloss.Style
	Dim       lipgloss.Style
	Highlight lipgloss.Style
	Error     lipgloss.Style
}

var Themes = map[string]Theme{
	"default": {
		Name:      "Default",
		Base:      lipgloss.NewStyle().Margin(1, 2),
		Border:    lipgloss.Color("63"),
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Align(lipgloss.Center),
		Work:      lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		Rest:      lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Bold(true),
		SetRest:   lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		Countdown: lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true),
		Paused:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Bold(true),
		Finished:  lipgloss.NewStyle().Foreground(lipgloss.Color("120")).Bold(true),
		Input:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("205")).Padding(0, 1).Width(28),
		Focused:   lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	},
	"dracula": {
		Name:      "Dracula",
		Base:      lipgloss.NewStyle().Margin(1, 2),
		Border:    lipgloss.Color("62"),
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true).Align(lipgloss.Center),
		Work:      lipgloss.NewStyle().Foreground(lipgloss.Color("210")).Bold(true),
		Rest:      lipgloss.NewStyle().Foreground(lipgloss.Color("120")).Bold(true),
		SetRest:   lipgloss.NewStyle().Foreground(lipgloss.Color("117")).Bold(true),
		Countdown: lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true),
		Paused:    lipgloss.NewStyle().Foreground(lipgloss.Color("60")).Bold(true),
		Finished:  lipgloss.NewStyle().Foreground(lipgloss.Color("84")).Bold(true),
		Input:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("50")).Padding(0, 1).Width(28),
		Focused:   lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("62")),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	},
}

// CurrentTheme holds the currently active theme.
// We initialize it to default to avoid nil pointer dereferences.
var CurrentTheme = Themes["default"]

func SetTheme(name string) {
	if t, ok := Themes[name]; ok {
		CurrentTheme = t
	}
}

// phaseStyle maps a workout phase onto its display style.
func phaseStyle(t Theme, name string) lipgloss.Style {
	switch name {
	case "work":
		return t.Work
	case "rest":
		return t.Rest
	case "set rest":
		return t.SetRest
	case "countdown":
		return t.Countdown
	case "paused":
		return t.Paused
	case "finished":
		return t.Finished
	}
	return t.Dim
}
