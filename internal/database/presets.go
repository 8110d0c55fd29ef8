package database

import (
	"database/sql"
	"strings"

	"github.com/avandriel/rounds/internal/models"
)

// SavePreset stores a named configuration and returns its ID. Saving under
// an existing name replaces that preset's values.
func (d *Database) SavePreset(p models.Preset) (int64, error) {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return 0, wrapPresetErr("save", 0, ErrInvalidPresetName)
	}
	res, err := d.DB.Exec(`
		INSERT INTO presets (name, work_seconds, rest_seconds, set_rest_seconds, countdown_seconds, rounds, sets)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			work_seconds = excluded.work_seconds,
			rest_seconds = excluded.rest_seconds,
			set_rest_seconds = excluded.set_rest_seconds,
			countdown_seconds = excluded.countdown_seconds,
			rounds = excluded.rounds,
			sets = excluded.sets`,
		name, p.WorkSeconds, p.RestSeconds, p.SetRestSeconds, p.CountdownSeconds, p.Rounds, p.Sets)
	if err != nil {
		return 0, wrapPresetErr("save", 0, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, wrapPresetErr("save", 0, err)
	}
	// An upsert that updated reports the rowid of the existing row on
	// recent sqlite versions; look it up explicitly to be sure.
	if err := d.DB.QueryRow("SELECT id FROM presets WHERE name = ?", name).Scan(&id); err != nil {
		return 0, wrapPresetErr("save", 0, err)
	}
	return id, nil
}

// GetPresets returns all presets ordered by name.
func (d *Database) GetPresets() ([]models.Preset, error) {
	rows, err := d.DB.Query(`
		SELECT id, name, work_seconds, rest_seconds, set_rest_seconds, countdown_seconds, rounds, sets, created_at
		FROM presets
		ORDER BY name ASC`)
	if err != nil {
		return nil, wrapPresetErr("list", 0, err)
	}
	defer rows.Close()

	var presets []models.Preset
	for rows.Next() {
		var p models.Preset
		err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.WorkSeconds,
			&p.RestSeconds,
			&p.SetRestSeconds,
			&p.CountdownSeconds,
			&p.Rounds,
			&p.Sets,
			&p.CreatedAt,
		)
		if err != nil {
			return nil, wrapPresetErr("list", 0, err)
		}
		presets = append(presets, p)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapPresetErr("list", 0, err)
	}
	return presets, nil
}

// GetPreset retrieves one preset by name.
func (d *Database) GetPreset(name string) (models.Preset, error) {
	var p models.Preset
	err := d.DB.QueryRow(`
		SELECT id, name, work_seconds, rest_seconds, set_rest_seconds, countdown_seconds, rounds, sets, created_at
		FROM presets WHERE name = ?`, name).
		Scan(&p.ID, &p.Name, &p.WorkSeconds, &p.RestSeconds, &p.SetRestSeconds, &p.CountdownSeconds, &p.Rounds, &p.Sets, &p.CreatedAt)
	if err == sql.ErrNoRows {
		return p, wrapPresetErr("get", 0, ErrPresetNotFound)
	}
	if err != nil {
		return p, wrapPresetErr("get", 0, err)
	}
	return p, nil
}

// DeletePreset removes a preset by ID.
func (d *Database) DeletePreset(id int64) error {
	res, err := d.DB.Exec("DELETE FROM presets WHERE id = ?", id)
	if err != nil {
		return wrapPresetErr("delete", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return wrapPresetErr("delete", id, ErrPresetNotFound)
	}
	return nil
}
