// Package database persists the form snapshot in a local sqlite file.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/akyairhashvil/resultpro/internal/config"
)

// Database wraps the sqlite handle.
type Database struct {
	DB     *sql.DB
	dbFile string
	log    *slog.Logger
}

// Option configures Open.
type Option func(*Database)

// WithLogger sets the logger used for degraded reads.
func WithLogger(l *slog.Logger) Option {
	return func(d *Database) {
		if l != nil {
			d.log = l
		}
	}
}

// Open creates the data directory if needed, opens the database file and
// brings the schema up to date.
func Open(ctx context.Context, path string, opts ...Option) (*Database, error) {
	if err := os.MkdirAll(filepath.Dir(path), config.DefaultDirPerm); err != nil {
		return nil, wrapErr(EntityDatabase, "create dir", err)
	}
	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_foreign_keys=on")
	if err != nil {
		return nil, wrapErr(EntityDatabase, "open", err)
	}
	// A single writer keeps sqlite from returning SQLITE_BUSY on overlapping saves.
	db.SetMaxOpenConns(1)

	d := &Database{DB: db, dbFile: path, log: slog.Default()}
	for _, opt := range opts {
		opt(d)
	}

	if err := d.withDBContext(ctx, func(ctx context.Context) error {
		return db.PingContext(ctx)
	}); err != nil {
		_ = db.Close()
		return nil, wrapErr(EntityDatabase, "ping", err)
	}
	if err := d.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return d, nil
}

// Close releases the handle.
func (d *Database) Close() error {
	if d == nil || d.DB == nil {
		return nil
	}
	return d.DB.Close()
}

// Path returns the database file location.
func (d *Database) Path() string {
	return d.dbFile
}

func (d *Database) migrate(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
	}
	return d.withDBContext(ctx, func(ctx context.Context) error {
		for _, query := range queries {
			if _, err := d.DB.ExecContext(ctx, query); err != nil {
				return wrapErr(EntityDatabase, "migrate", fmt.Errorf("%w: %s", err, query))
			}
		}
		return nil
	})
}

// WithTx runs fn in a transaction, rolling back when fn fails.
func (d *Database) WithTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	return d.withDBContext(ctx, func(ctx context.Context) error {
		tx, err := d.DB.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		if err := fn(tx); err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				d.log.Warn("rollback failed", "err", rbErr)
			}
			return err
		}
		return tx.Commit()
	})
}

// withDBContext bounds fn by DBOperationTimeout unless ctx already has a deadline.
func (d *Database) withDBContext(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, config.DBOperationTimeout)
		defer cancel()
	}
	return fn(ctx)
}
