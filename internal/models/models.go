package models

import (
	"time"

	"github.com/avandriel/rounds/internal/workout"
)

// Preset is a named, saved workout configuration.
type Preset struct {
	ID               int64
	Name             string
	WorkSeconds      int
	RestSeconds      int
	SetRestSeconds   int
	CountdownSeconds int
	Rounds           int
	Sets             int
	CreatedAt        time.Time
}

// Configuration converts the stored seconds into a runnable configuration.
func (p Preset) Configuration() workout.Configuration {
	return workout.Configuration{
		WorkDuration:    time.Duration(p.WorkSeconds) * time.Second,
		RestDuration:    time.Duration(p.RestSeconds) * time.Second,
		RestBetweenSets: time.Duration(p.SetRestSeconds) * time.Second,
		Countdown:       time.Duration(p.CountdownSeconds) * time.Second,
		Rounds:          p.Rounds,
		Sets:            p.Sets,
	}
}

// PresetFromConfiguration snapshots a configuration under a name.
func PresetFromConfiguration(name string, cfg workout.Configuration) Preset {
	return Preset{
		Name:             name,
		WorkSeconds:      int(cfg.WorkDuration.Seconds()),
		RestSeconds:      int(cfg.RestDuration.Seconds()),
		SetRestSeconds:   int(cfg.RestBetweenSets.Seconds()),
		CountdownSeconds: int(cfg.Countdown.Seconds()),
		Rounds:           cfg.Rounds,
		Sets:             cfg.Sets,
	}
}

// Session records one started workout. FinishedAt is nil while the workout
// is in progress or was abandoned without a clean reset.
type Session struct {
	ID             int64
	PresetName     *string
	WorkSeconds    int
	RestSeconds    int
	SetRestSeconds int
	Rounds         int
	Sets           int
	StartedAt      time.Time
	FinishedAt     *time.Time
	Completed      bool
	RoundsReached  int
	SetsReached    int
}
