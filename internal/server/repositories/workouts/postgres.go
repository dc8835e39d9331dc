package workouts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/nick-0037/workout-tracker-api/internal/common"
	"github.com/nick-0037/workout-tracker-api/internal/dbx"
	"github.com/nick-0037/workout-tracker-api/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CreatePlan(ctx context.Context, plan *models.WorkoutPlan) (*models.WorkoutPlan, error) {

	query :=
		`INSERT INTO workout_plans (user_id, name, description)
         VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		plan.UserID, plan.Name, plan.Description).Scan(&plan.ID, &plan.CreatedAt, &plan.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return plan, nil
}

func (r *PostgresRepository) GetPlan(ctx context.Context, userID, planID int64) (*models.WorkoutPlan, error) {
	query :=
		`SELECT id, user_id, name, description, created_at, updated_at FROM workout_plans
		 WHERE id = $1 AND user_id = $2
		 `

	plan := &models.WorkoutPlan{}
	err := r.db.QueryRowContext(ctx, query, planID, userID).Scan(
		&plan.ID, &plan.UserID, &plan.Name, &plan.Description, &plan.CreatedAt, &plan.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return plan, nil
}

func (r *PostgresRepository) ListPlans(ctx context.Context, userID int64) ([]*models.WorkoutPlan, error) {
	query :=
		`SELECT id, user_id, name, description, created_at, updated_at FROM workout_plans
		 WHERE user_id = $1
		 ORDER BY created_at DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.WorkoutPlan, 0)
	for rows.Next() {
		plan := &models.WorkoutPlan{}
		if err := rows.Scan(&plan.ID, &plan.UserID, &plan.Name, &plan.Description, &plan.CreatedAt, &plan.UpdatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, plan)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) UpdatePlan(ctx context.Context, plan *models.WorkoutPlan) error {
	query :=
		`UPDATE workout_plans SET name = $3, description = $4, updated_at = now()
		 WHERE id = $1 AND user_id = $2
		 `

	res, err := r.db.ExecContext(ctx, query, plan.ID, plan.UserID, plan.Name, plan.Description)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}

func (r *PostgresRepository) DeletePlan(ctx context.Context, userID, planID int64) error {
	query :=
		`DELETE FROM workout_plans
		 WHERE id = $1 AND user_id = $2
		 `

	res, err := r.db.ExecContext(ctx, query, planID, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}

func (r *PostgresRepository) AddPlanExercise(ctx context.Context, planID int64, ex models.PlanExercise) error {
	query :=
		`INSERT INTO workout_plan_exercises (workout_plan_id, exercise_id, sets, reps, weight, notes)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 `

	_, err := r.db.ExecContext(ctx, query, planID, ex.ExerciseID, ex.Sets, ex.Reps, ex.Weight, ex.Notes)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) ListPlanExercises(ctx context.Context, planID int64) ([]models.PlanExercise, error) {
	query :=
		`SELECT id, exercise_id, sets, reps, weight, notes FROM workout_plan_exercises
		 WHERE workout_plan_id = $1
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query, planID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]models.PlanExercise, 0)
	for rows.Next() {
		var ex models.PlanExercise
		if err := rows.Scan(&ex.ID, &ex.ExerciseID, &ex.Sets, &ex.Reps, &ex.Weight, &ex.Notes); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, ex)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) DeletePlanExercises(ctx context.Context, planID int64) error {
	query :=
		`DELETE FROM workout_plan_exercises
		 WHERE workout_plan_id = $1
		 `

	if _, err := r.db.ExecContext(ctx, query, planID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) CreateSession(ctx context.Context, session *models.WorkoutSession) (*models.WorkoutSession, error) {
	query :=
		`INSERT INTO workout_sessions (user_id, workout_plan_id, scheduled_date, completed_at, status, notes)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		session.UserID, session.WorkoutPlanID, session.ScheduledDate,
		session.CompletedAt, session.Status, session.Notes).Scan(&session.ID)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return session, nil
}

func (r *PostgresRepository) ListSessions(ctx context.Context, userID int64) ([]*models.WorkoutSession, error) {
	query :=
		`SELECT id, user_id, workout_plan_id, scheduled_date, completed_at, status, notes FROM workout_sessions
		 WHERE user_id = $1
		 ORDER BY id DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.WorkoutSession, 0)
	for rows.Next() {
		s := &models.WorkoutSession{}
		if err := rows.Scan(&s.ID, &s.UserID, &s.WorkoutPlanID, &s.ScheduledDate, &s.CompletedAt, &s.Status, &s.Notes); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
