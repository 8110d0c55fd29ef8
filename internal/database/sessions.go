package database

import (
	"github.com/avandriel/rounds/internal/models"
)

// StartSession records a workout beginning and returns the session ID.
func (d *Database) StartSession(s models.Session) (int64, error) {
	res, err := d.DB.Exec(`
		INSERT INTO sessions (preset_name, work_seconds, rest_seconds, set_rest_seconds, rounds, sets)
		VALUES (?, ?, ?, ?, ?, ?)`,
		s.PresetName, s.WorkSeconds, s.RestSeconds, s.SetRestSeconds, s.Rounds, s.Sets)
	if err != nil {
		return 0, wrapSessionErr("start", 0, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, wrapSessionErr("start", 0, err)
	}
	return id, nil
}

// FinishSession closes a session, recording whether the workout ran to
// completion and how far it got.
func (d *Database) FinishSession(id int64, completed bool, roundsReached, setsReached int) error {
	res, err := d.DB.Exec(`
		UPDATE sessions
		SET finished_at = CURRENT_TIMESTAMP,
		    completed = ?,
		    rounds_reached = ?,
		    sets_reached = ?
		WHERE id = ?`, completed, roundsReached, setsReached, id)
	if err != nil {
		return wrapSessionErr("finish", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return wrapSessionErr("finish", id, ErrSessionNotFound)
	}
	return nil
}

// GetSessions returns the most recent sessions, newest first. A limit of 0
// returns everything.
func (d *Database) GetSessions(limit int) ([]models.Session, error) {
	query := `
		SELECT id, preset_name, work_seconds, rest_seconds, set_rest_seconds, rounds, sets,
		       started_at, finished_at, completed, rounds_reached, sets_reached
		FROM sessions
		ORDER BY started_at DESC, id DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}
	rows, err := d.DB.Query(query, args...)
	if err != nil {
		return nil, wrapSessionErr("list", 0, err)
	}
	defer rows.Close()

	var sessions []models.Session
	for rows.Next() {
		var s models.Session
		err := rows.Scan(
			&s.ID,
			&s.PresetName,
			&s.WorkSeconds,
			&s.RestSeconds,
			&s.SetRestSeconds,
			&s.Rounds,
			&s.Sets,
			&s.StartedAt,
			&s.FinishedAt,
			&s.Completed,
			&s.RoundsReached,
			&s.SetsReached,
		)
		if err != nil {
			return nil, wrapSessionErr("list", 0, err)
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapSessionErr("list", 0, err)
	}
	return sessions, nil
}
