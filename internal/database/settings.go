package database

import (
	"context"
	"database/sql"
	"errors"
)

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// GetSetting returns the stored value and whether the key exists.
func (d *Database) GetSetting(ctx context.Context, key string) (string, bool, error) {
	var value sql.NullString
	err := d.withDBContext(ctx, func(ctx context.Context) error {
		return d.DB.QueryRowContext(ctx, "SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, wrapErr(EntitySetting, "get "+key, err)
	}
	return value.String, value.Valid, nil
}

// SetSetting inserts or replaces a value.
func (d *Database) SetSetting(ctx context.Context, key, value string) error {
	return d.withDBContext(ctx, func(ctx context.Context) error {
		return wrapErr(EntitySetting, "set "+key, setSetting(ctx, d.DB, key, value))
	})
}

// DeleteSetting removes a key. Deleting a missing key is not an error.
func (d *Database) DeleteSetting(ctx context.Context, key string) error {
	return d.withDBContext(ctx, func(ctx context.Context) error {
		return wrapErr(EntitySetting, "delete "+key, deleteSetting(ctx, d.DB, key))
	})
}

func setSetting(ctx context.Context, ex execer, key, value string) error {
	_, err := ex.ExecContext(ctx,
		"INSERT INTO settings (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP) "+
			"ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at",
		key, value)
	return err
}

func deleteSetting(ctx context.Context, ex execer, key string) error {
	_, err := ex.ExecContext(ctx, "DELETE FROM settings WHERE key = ?", key)
	return err
}
