package database

import (
	"github.com/avandriel/rounds/internal/models"
)

// PresetRepository defines saved-configuration operations.
type PresetRepository interface {
	SavePreset(p models.Preset) (int64, error)
	GetPresets() ([]models.Preset, error)
	GetPreset(name string) (models.Preset, error)
	DeletePreset(id int64) error
}

// SessionRepository defines workout-history operations.
type SessionRepository interface {
	StartSession(s models.Session) (int64, error)
	FinishSession(id int64, completed bool, roundsReached, setsReached int) error
	GetSessions(limit int) ([]models.Session, error)
}

// SettingsRepository defines key/value settings operations.
type SettingsRepository interface {
	GetSetting(key string) (string, error)
	SetSetting(key, value string) error
}

// Repository combines all repository interfaces.
//
//go:generate mockgen -source=interface.go -destination=../tui/mock_repository_test.go -package=tui
type Repository interface {
	PresetRepository
	SessionRepository
	SettingsRepository
}

var _ Repository = (*Database)(nil)
