package database

import (
	"context"

	"github.com/akyairhashvil/resultpro/internal/models"
)

// SnapshotStore persists the form snapshot as a whole.
type SnapshotStore interface {
	LoadSnapshot(ctx context.Context) (models.Snapshot, error)
	SaveSnapshot(ctx context.Context, name string, courses []models.Course, result string) error
	ClearSnapshot(ctx context.Context) error
}

var _ SnapshotStore = (*Database)(nil)
