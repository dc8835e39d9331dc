package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/nick-0037/workout-tracker-api/internal/common"
	"github.com/nick-0037/workout-tracker-api/internal/server/models"
	"github.com/nick-0037/workout-tracker-api/internal/server/repositories/repomanager"
)

// ExerciseService serves the read-only exercise catalog.
type ExerciseService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewExerciseService constructs an ExerciseService.
func NewExerciseService(db *sql.DB, m repomanager.RepositoryManager) *ExerciseService {
	return &ExerciseService{db: db, repomanager: m}
}

// GetAll returns the full catalog ordered by id.
func (s *ExerciseService) GetAll(ctx context.Context) ([]*models.Exercise, error) {
	repo := s.repomanager.Exercises(s.db)
	list, err := repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing exercises: %v", err)
	}
	return list, nil
}

// GetByID returns one catalog entry. Unknown ids yield common.ErrorNotFound.
func (s *ExerciseService) GetByID(ctx context.Context, id int64) (*models.Exercise, error) {
	repo := s.repomanager.Exercises(s.db)
	ex, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error fetching exercise: %v", err)
	}
	return ex, nil
}
