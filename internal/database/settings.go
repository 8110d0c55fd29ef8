package database

import "database/sql"

// GetSetting returns the stored value for key. A key that was never set
// reports ErrSettingNotFound; any other error is a real storage failure.
func (d *Database) GetSetting(key string) (string, error) {
	var value sql.NullString
	err := d.DB.QueryRow("SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", wrapSettingErr("get", ErrSettingNotFound)
	}
	if err != nil {
		return "", wrapSettingErr("get", err)
	}
	if !value.Valid {
		return "", wrapSettingErr("get", ErrSettingNotFound)
	}
	return value.String, nil
}

// SetSetting stores a value under key, replacing any previous value.
func (d *Database) SetSetting(key, value string) error {
	_, err := d.DB.Exec(`
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	return wrapSettingErr("set", err)
}
