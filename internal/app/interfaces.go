package app

import (
	"context"

	"github.com/akyairhashvil/resultpro/internal/models"
)

//go:generate mockgen -source=interfaces.go -destination=mock_interfaces_test.go -package=app

// Store persists the form snapshot.
type Store interface {
	LoadSnapshot(ctx context.Context) (models.Snapshot, error)
	SaveSnapshot(ctx context.Context, name string, courses []models.Course, result string) error
	ClearSnapshot(ctx context.Context) error
}

// Remote is the GPA service.
type Remote interface {
	CalculateGPA(ctx context.Context, data models.StudentData) (models.GPAResult, error)
	GeneratePDF(ctx context.Context, data models.StudentData) ([]byte, error)
}

// Saver writes a downloaded document and returns where it landed.
type Saver interface {
	Save(name string, data []byte) (string, error)
}
