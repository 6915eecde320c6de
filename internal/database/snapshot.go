package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/akyairhashvil/resultpro/internal/config"
	"github.com/akyairhashvil/resultpro/internal/models"
	"github.com/akyairhashvil/resultpro/internal/util"
)

// SaveSnapshot overwrites the name, courses and result keys in one transaction.
func (d *Database) SaveSnapshot(ctx context.Context, name string, courses []models.Course, result string) error {
	if courses == nil {
		courses = []models.Course{}
	}
	encoded, err := json.Marshal(courses)
	if err != nil {
		return wrapErr(EntitySnapshot, "encode", err)
	}
	err = d.WithTx(ctx, func(tx *sql.Tx) error {
		if err := setSetting(ctx, tx, config.KeyName, name); err != nil {
			return err
		}
		if err := setSetting(ctx, tx, config.KeyCourses, string(encoded)); err != nil {
			return err
		}
		return setSetting(ctx, tx, config.KeyResult, result)
	})
	return wrapErr(EntitySnapshot, "save", err)
}

// LoadSnapshot reads the three keys. Missing keys leave their field unset.
// Courses that fail to decode are dropped with a warning so start-up can
// continue with an empty form.
func (d *Database) LoadSnapshot(ctx context.Context) (models.Snapshot, error) {
	var snap models.Snapshot

	name, ok, err := d.GetSetting(ctx, config.KeyName)
	if err != nil {
		return snap, wrapErr(EntitySnapshot, "load", err)
	}
	if ok {
		snap.Name = util.Ptr(name)
	}

	raw, ok, err := d.GetSetting(ctx, config.KeyCourses)
	if err != nil {
		return snap, wrapErr(EntitySnapshot, "load", err)
	}
	if ok {
		courses, err := decodeCourses(raw)
		if err != nil {
			d.log.Warn("ignoring saved courses", "key", config.KeyCourses, "err", err)
		} else {
			snap.Courses = courses
		}
	}

	result, ok, err := d.GetSetting(ctx, config.KeyResult)
	if err != nil {
		return snap, wrapErr(EntitySnapshot, "load", err)
	}
	if ok {
		snap.Result = util.Ptr(result)
	}
	return snap, nil
}

// ClearSnapshot removes all three keys.
func (d *Database) ClearSnapshot(ctx context.Context) error {
	err := d.WithTx(ctx, func(tx *sql.Tx) error {
		for _, key := range []string{config.KeyName, config.KeyCourses, config.KeyResult} {
			if err := deleteSetting(ctx, tx, key); err != nil {
				return err
			}
		}
		return nil
	})
	return wrapErr(EntitySnapshot, "clear", err)
}

func decodeCourses(raw string) ([]models.Course, error) {
	if raw == "" || raw == "null" {
		return nil, nil
	}
	var courses []models.Course
	if err := json.Unmarshal([]byte(raw), &courses); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSnapshotCorrupted, err)
	}
	return courses, nil
}
