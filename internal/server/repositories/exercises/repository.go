package exercises

import (
	"context"

	"github.com/nick-0037/workout-tracker-api/internal/server/models"
)

// Repository reads the exercise catalog. GetByID returns
// common.ErrorNotFound for unknown ids.
type Repository interface {
	GetAll(ctx context.Context) ([]*models.Exercise, error)
	GetByID(ctx context.Context, id int64) (*models.Exercise, error)
}
