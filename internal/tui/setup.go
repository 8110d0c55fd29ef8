package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/avandriel/rounds/internal/config"
	"github.com/avandriel/rounds/internal/database"
	"github.com/avandriel/rounds/internal/models"
	"github.com/avandriel/rounds/internal/util"
	"github.com/avandriel/rounds/internal/workout"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Setup form fields, in focus order.
const (
	fieldWork = iota
	fieldRest
	fieldSetRest
	fieldCountdown
	fieldRounds
	fieldSets
	fieldPresetName
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Work (s)",
	"Rest (s)",
	"Set rest (s)",
	"Countdown (s)",
	"Rounds",
	"Sets",
	"Preset name",
}

// SetupModel collects a workout configuration before starting.
type SetupModel struct {
	db        database.Repository
	inputs    []textinput.Model
	focus     int
	presets   []models.Preset
	presetIdx int
	status    string
	errMsg    string
	width     int
	height    int
}

func NewSetupModel(db database.Repository) SetupModel {
	defaults := [fieldCount]string{
		strconv.Itoa(int(config.DefaultWorkDuration.Seconds())),
		strconv.Itoa(int(config.DefaultRestDuration.Seconds())),
		strconv.Itoa(int(config.DefaultSetRestDuration.Seconds())),
		strconv.Itoa(int(config.DefaultCountdown.Seconds())),
		strconv.Itoa(config.DefaultRounds),
		strconv.Itoa(config.DefaultSets),
		"",
	}

	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		ti := textinput.New()
		ti.SetValue(defaults[i])
		ti.CharLimit = 4
		ti.Width = 10
		inputs[i] = ti
	}
	inputs[fieldPresetName].CharLimit = config.MaxPresetNameLength
	inputs[fieldPresetName].Width = 24
	inputs[fieldPresetName].Placeholder = "optional"
	inputs[fieldWork].Focus()

	m := SetupModel{
		db:        db,
		inputs:    inputs,
		presetIdx: -1,
	}
	m.reloadPresets()
	return m
}

func (m *SetupModel) reloadPresets() {
	presets, err := m.db.GetPresets()
	if err != nil {
		util.LogError("loading presets", err)
		return
	}
	m.presets = presets
}

func (m SetupModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m SetupModel) Update(msg tea.Msg) (SetupModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEnter:
			cfg, err := m.buildConfiguration()
			if err != nil {
				m.errMsg = err.Error()
				return m, nil
			}
			m.errMsg = ""
			name := m.appliedPresetName()
			return m, func() tea.Msg { return startWorkoutMsg{cfg: cfg, presetName: name} }
		case tea.KeyTab, tea.KeyDown:
			m.setFocus((m.focus + 1) % fieldCount)
			return m, nil
		case tea.KeyShiftTab, tea.KeyUp:
			m.setFocus((m.focus + fieldCount - 1) % fieldCount)
			return m, nil
		case tea.KeyCtrlP:
			m.cyclePreset()
			return m, nil
		case tea.KeyCtrlS:
			m.savePreset()
			return m, nil
		case tea.KeyCtrlH:
			return m, func() tea.Msg { return showHistoryMsg{} }
		case tea.KeyCtrlT:
			m.cycleTheme()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *SetupModel) setFocus(idx int) {
	m.inputs[m.focus].Blur()
	m.focus = idx
	m.inputs[m.focus].Focus()
}

// appliedPresetName returns the name of the preset the form currently
// mirrors, nil when the values were edited by hand.
func (m SetupModel) appliedPresetName() *string {
	if m.presetIdx < 0 || m.presetIdx >= len(m.presets) {
		return nil
	}
	p := m.presets[m.presetIdx]
	cfg, err := m.buildConfiguration()
	if err != nil || p.Configuration() != cfg {
		return nil
	}
	return util.Ptr(p.Name)
}

func (m *SetupModel) cyclePreset() {
	if len(m.presets) == 0 {
		m.status = "No saved presets yet (ctrl+s saves one)"
		return
	}
	m.presetIdx = (m.presetIdx + 1) % len(m.presets)
	p := m.presets[m.presetIdx]
	m.inputs[fieldWork].SetValue(strconv.Itoa(p.WorkSeconds))
	m.inputs[fieldRest].SetValue(strconv.Itoa(p.RestSeconds))
	m.inputs[fieldSetRest].SetValue(strconv.Itoa(p.SetRestSeconds))
	m.inputs[fieldCountdown].SetValue(strconv.Itoa(p.CountdownSeconds))
	m.inputs[fieldRounds].SetValue(strconv.Itoa(p.Rounds))
	m.inputs[fieldSets].SetValue(strconv.Itoa(p.Sets))
	m.inputs[fieldPresetName].SetValue(p.Name)
	m.status = fmt.Sprintf("Loaded preset %q", p.Name)
	m.errMsg = ""
}

func (m *SetupModel) savePreset() {
	name := strings.TrimSpace(m.inputs[fieldPresetName].Value())
	if name == "" {
		m.errMsg = "name the preset before saving"
		return
	}
	cfg, err := m.buildConfiguration()
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	if _, err := m.db.SavePreset(models.PresetFromConfiguration(name, cfg)); err != nil {
		m.errMsg = fmt.Sprintf("saving preset: %v", err)
		return
	}
	m.reloadPresets()
	m.status = fmt.Sprintf("Saved preset %q", name)
	m.errMsg = ""
}

func (m *SetupModel) cycleTheme() {
	names := make([]string, 0, len(Themes))
	for name := range Themes {
		names = append(names, name)
	}
	// Map order is random; pick the first name that isn't current.
	for _, name := range names {
		if Themes[name].Name != CurrentTheme.Name {
			SetTheme(name)
			if err := m.db.SetSetting("theme", name); err != nil {
				util.LogError("saving theme", err)
			}
			m.status = fmt.Sprintf("Theme: %s", CurrentTheme.Name)
			return
		}
	}
}

// buildConfiguration parses the form into a configuration, reporting the
// first problem found. Rounds and sets are clamped to sane bounds rather
// than rejected.
func (m SetupModel) buildConfiguration() (workout.Configuration, error) {
	var cfg workout.Configuration

	work, err := m.parseSeconds(fieldWork)
	if err != nil {
		return cfg, err
	}
	rest, err := m.parseSeconds(fieldRest)
	if err != nil {
		return cfg, err
	}
	setRest, err := m.parseSeconds(fieldSetRest)
	if err != nil {
		return cfg, err
	}
	countdown, err := m.parseSeconds(fieldCountdown)
	if err != nil {
		return cfg, err
	}
	rounds, err := m.parseCount(fieldRounds, config.MaxRounds)
	if err != nil {
		return cfg, err
	}
	sets, err := m.parseCount(fieldSets, config.MaxSets)
	if err != nil {
		return cfg, err
	}

	cfg = workout.Configuration{
		WorkDuration:    work,
		RestDuration:    rest,
		RestBetweenSets: setRest,
		Countdown:       countdown,
		Rounds:          rounds,
		Sets:            sets,
	}
	if !cfg.Valid() {
		return cfg, fmt.Errorf("work and rest must both be at least 1 second")
	}
	return cfg, nil
}

func (m SetupModel) parseSeconds(field int) (time.Duration, error) {
	raw := strings.TrimSpace(m.inputs[field].Value())
	if raw == "" {
		raw = "0"
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%s must be a whole number of seconds", strings.ToLower(fieldLabels[field]))
	}
	d := time.Duration(n) * time.Second
	if d > config.MaxIntervalDuration {
		return 0, fmt.Errorf("%s cannot exceed %s", strings.ToLower(fieldLabels[field]), FormatDuration(config.MaxIntervalDuration))
	}
	return d, nil
}

func (m SetupModel) parseCount(field, max int) (int, error) {
	raw := strings.TrimSpace(m.inputs[field].Value())
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number", strings.ToLower(fieldLabels[field]))
	}
	return util.Clamp(n, 1, max), nil
}

func (m SetupModel) View() string {
	theme := CurrentTheme
	var b strings.Builder

	b.WriteString(theme.Header.Render("ROUNDS - interval timer"))
	b.WriteString("\n\n")

	for i, input := range m.inputs {
		label := fieldLabels[i]
		style := theme.Dim
		if i == m.focus {
			style = theme.Focused
		}
		b.WriteString(fmt.Sprintf("  %s  %s\n", style.Width(14).Render(label), input.View()))
	}

	if cfg, err := m.buildConfiguration(); err == nil {
		b.WriteString("\n")
		b.WriteString(theme.Highlight.Render(
			fmt.Sprintf("  Total workout: %s", FormatDuration(cfg.TotalDuration()))))
		b.WriteString("\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n" + theme.Error.Render("  "+m.errMsg) + "\n")
	}
	if m.status != "" {
		b.WriteString("\n" + theme.Dim.Render("  "+m.status) + "\n")
	}

	help := "enter start · tab next field · ctrl+p preset · ctrl+s save · ctrl+h history · ctrl+t theme · ctrl+c quit"
	b.WriteString("\n" + theme.Dim.Render(truncate(help, m.width)))

	return theme.Base.Render(b.String())
}
