package testutil

import (
	"time"

	"github.com/avandriel/rounds/internal/models"
)

// PresetBuilder provides a fluent API for creating test presets.
type PresetBuilder struct {
	preset models.Preset
}

func NewPreset() *PresetBuilder {
	return &PresetBuilder{
		preset: models.Preset{
			Name:        "Test Preset",
			WorkSeconds: 30,
			RestSeconds: 10,
			Rounds:      8,
			Sets:        1,
			CreatedAt:   time.Now(),
		},
	}
}

func (b *PresetBuilder) WithName(name string) *PresetBuilder {
	b.preset.Name = name
	return b
}

func (b *PresetBuilder) WithWork(seconds int) *PresetBuilder {
	b.preset.WorkSeconds = seconds
	return b
}

func (b *PresetBuilder) WithRest(seconds int) *PresetBuilder {
	b.preset.RestSeconds = seconds
	return b
}

func (b *PresetBuilder) WithSetRest(seconds int) *PresetBuilder {
	b.preset.SetRestSeconds = seconds
	return b
}

func (b *PresetBuilder) WithCountdown(seconds int) *PresetBuilder {
	b.preset.CountdownSeconds = seconds
	return b
}

func (b *PresetBuilder) WithRounds(n int) *PresetBuilder {
	b.preset.Rounds = n
	return b
}

func (b *PresetBuilder) WithSets(n int) *PresetBuilder {
	b.preset.Sets = n
	return b
}

func (b *PresetBuilder) Build() models.Preset {
	return b.preset
}

// SessionBuilder provides a fluent API for creating test sessions.
type SessionBuilder struct {
	session models.Session
}

func NewSession() *SessionBuilder {
	return &SessionBuilder{
		session: models.Session{
			WorkSeconds: 30,
			RestSeconds: 10,
			Rounds:      8,
			Sets:        1,
			StartedAt:   time.Now(),
		},
	}
}

func (b *SessionBuilder) WithPresetName(name string) *SessionBuilder {
	b.session.PresetName = &name
	return b
}

func (b *SessionBuilder) WithRounds(n int) *SessionBuilder {
	b.session.Rounds = n
	return b
}

func (b *SessionBuilder) WithSets(n int) *SessionBuilder {
	b.session.Sets = n
	return b
}

func (b *SessionBuilder) Completed(rounds, sets int) *SessionBuilder {
	now := time.Now()
	b.session.FinishedAt = &now
	b.session.Completed = true
	b.session.RoundsReached = rounds
	b.session.SetsReached = sets
	return b
}

func (b *SessionBuilder) Build() models.Session {
	return b.session
}
