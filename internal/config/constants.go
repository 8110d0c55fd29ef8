package config

import "time"

// Timer defaults and cadence.
const (
	TickInterval           = 100 * time.Millisecond
	DefaultWorkDuration    = 30 * time.Second
	DefaultRestDuration    = 10 * time.Second
	DefaultSetRestDuration = 60 * time.Second
	DefaultCountdown       = 5 * time.Second
	DefaultRounds          = 8
	DefaultSets            = 1
)

// Input bounds for the setup form.
const (
	MaxRounds           = 99
	MaxSets             = 20
	MaxIntervalDuration = 2 * time.Hour
	MaxPresetNameLength = 40
)

// SuspensionGapThreshold separates a late tick from a suspension. A gap
// longer than this triggers a full resynchronization instead of a single
// transition step.
const SuspensionGapThreshold = 2 * time.Second

// Database/application settings.
const (
	AppName    = "rounds"
	DBFileName = "rounds.db"
)
