package workouts

import (
	"context"

	"github.com/nick-0037/workout-tracker-api/internal/server/models"
)

// Repository persists workout plans, their exercises, and sessions. All
// lookups are scoped by the owning user; rows owned by someone else behave
// as absent (common.ErrorNotFound).
type Repository interface {
	CreatePlan(ctx context.Context, plan *models.WorkoutPlan) (*models.WorkoutPlan, error)
	GetPlan(ctx context.Context, userID, planID int64) (*models.WorkoutPlan, error)
	ListPlans(ctx context.Context, userID int64) ([]*models.WorkoutPlan, error)
	UpdatePlan(ctx context.Context, plan *models.WorkoutPlan) error
	DeletePlan(ctx context.Context, userID, planID int64) error

	AddPlanExercise(ctx context.Context, planID int64, ex models.PlanExercise) error
	ListPlanExercises(ctx context.Context, planID int64) ([]models.PlanExercise, error)
	DeletePlanExercises(ctx context.Context, planID int64) error

	CreateSession(ctx context.Context, session *models.WorkoutSession) (*models.WorkoutSession, error)
	ListSessions(ctx context.Context, userID int64) ([]*models.WorkoutSession, error)
}
