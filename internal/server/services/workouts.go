package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/nick-0037/workout-tracker-api/internal/common"
	"github.com/nick-0037/workout-tracker-api/internal/dbx"
	"github.com/nick-0037/workout-tracker-api/internal/server/models"
	"github.com/nick-0037/workout-tracker-api/internal/server/repositories/repomanager"
)

// WorkoutService manages user-owned workout plans and their sessions. Plan
// writes that touch the exercise list run inside a single transaction so a
// plan is never visible with half its exercises.
type WorkoutService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewWorkoutService constructs a WorkoutService.
func NewWorkoutService(db *sql.DB, m repomanager.RepositoryManager) *WorkoutService {
	return &WorkoutService{db: db, repomanager: m}
}

// CreatePlan persists a plan with its exercises and returns the stored copy.
// Exercise ids are validated against the catalog before anything is written.
func (s *WorkoutService) CreatePlan(ctx context.Context, plan *models.WorkoutPlan) (*models.WorkoutPlan, error) {
	if err := s.checkExercises(ctx, plan.Exercises); err != nil {
		return nil, err
	}

	var created *models.WorkoutPlan
	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Workouts(tx)
		p, err := repo.CreatePlan(ctx, plan)
		if err != nil {
			return fmt.Errorf("error creating plan: %v", err)
		}
		for _, ex := range plan.Exercises {
			if err := repo.AddPlanExercise(ctx, p.ID, ex); err != nil {
				return fmt.Errorf("error adding plan exercise: %v", err)
			}
		}
		p.Exercises, err = repo.ListPlanExercises(ctx, p.ID)
		if err != nil {
			return fmt.Errorf("error reloading plan exercises: %v", err)
		}
		created = p
		return nil
	}); err != nil {
		return nil, err
	}
	return created, nil
}

// GetPlan returns one of the user's plans with its exercises loaded. Plans
// owned by someone else behave as absent.
func (s *WorkoutService) GetPlan(ctx context.Context, userID, planID int64) (*models.WorkoutPlan, error) {
	repo := s.repomanager.Workouts(s.db)
	plan, err := repo.GetPlan(ctx, userID, planID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error fetching plan: %v", err)
	}
	plan.Exercises, err = repo.ListPlanExercises(ctx, plan.ID)
	if err != nil {
		return nil, fmt.Errorf("error loading plan exercises: %v", err)
	}
	return plan, nil
}

// ListPlans returns all of the user's plans with exercises loaded.
func (s *WorkoutService) ListPlans(ctx context.Context, userID int64) ([]*models.WorkoutPlan, error) {
	repo := s.repomanager.Workouts(s.db)
	plans, err := repo.ListPlans(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing plans: %v", err)
	}
	for _, plan := range plans {
		plan.Exercises, err = repo.ListPlanExercises(ctx, plan.ID)
		if err != nil {
			return nil, fmt.Errorf("error loading plan exercises: %v", err)
		}
	}
	return plans, nil
}

// UpdatePlan replaces a plan's fields and its full exercise list in one
// transaction. Updating a plan the user does not own yields
// common.ErrorNotFound.
func (s *WorkoutService) UpdatePlan(ctx context.Context, plan *models.WorkoutPlan) (*models.WorkoutPlan, error) {
	if err := s.checkExercises(ctx, plan.Exercises); err != nil {
		return nil, err
	}

	var updated *models.WorkoutPlan
	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Workouts(tx)
		if err := repo.UpdatePlan(ctx, plan); err != nil {
			return err
		}
		if err := repo.DeletePlanExercises(ctx, plan.ID); err != nil {
			return fmt.Errorf("error clearing plan exercises: %v", err)
		}
		for _, ex := range plan.Exercises {
			if err := repo.AddPlanExercise(ctx, plan.ID, ex); err != nil {
				return fmt.Errorf("error adding plan exercise: %v", err)
			}
		}
		p, err := repo.GetPlan(ctx, plan.UserID, plan.ID)
		if err != nil {
			return fmt.Errorf("error reloading plan: %v", err)
		}
		p.Exercises, err = repo.ListPlanExercises(ctx, p.ID)
		if err != nil {
			return fmt.Errorf("error reloading plan exercises: %v", err)
		}
		updated = p
		return nil
	}); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, err
	}
	return updated, nil
}

// DeletePlan removes one of the user's plans; child rows go with it via
// ON DELETE CASCADE.
func (s *WorkoutService) DeletePlan(ctx context.Context, userID, planID int64) error {
	repo := s.repomanager.Workouts(s.db)
	if err := repo.DeletePlan(ctx, userID, planID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return fmt.Errorf("error deleting plan: %v", err)
	}
	return nil
}

// ScheduleSession records a session against one of the user's plans. The
// plan must exist and belong to the user; a missing status defaults to
// scheduled.
func (s *WorkoutService) ScheduleSession(ctx context.Context, session *models.WorkoutSession) (*models.WorkoutSession, error) {
	repo := s.repomanager.Workouts(s.db)

	if _, err := repo.GetPlan(ctx, session.UserID, session.WorkoutPlanID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error fetching plan: %v", err)
	}

	if session.Status == "" {
		session.Status = models.SessionStatusScheduled
	}
	created, err := repo.CreateSession(ctx, session)
	if err != nil {
		return nil, fmt.Errorf("error creating session: %v", err)
	}
	return created, nil
}

// ListSessions returns all of the user's sessions, newest first.
func (s *WorkoutService) ListSessions(ctx context.Context, userID int64) ([]*models.WorkoutSession, error) {
	repo := s.repomanager.Workouts(s.db)
	sessions, err := repo.ListSessions(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing sessions: %v", err)
	}
	return sessions, nil
}

// checkExercises verifies every referenced exercise id exists in the catalog.
func (s *WorkoutService) checkExercises(ctx context.Context, list []models.PlanExercise) error {
	repo := s.repomanager.Exercises(s.db)
	for _, ex := range list {
		if _, err := repo.GetByID(ctx, ex.ExerciseID); err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return common.ErrorNotFound
			}
			return fmt.Errorf("error checking exercise: %v", err)
		}
	}
	return nil
}
