package models

import "time"

// WorkoutPlan is a user-owned set of exercises with target volumes.
type WorkoutPlan struct {
	ID          int64
	UserID      int64
	Name        string
	Description string
	Exercises   []PlanExercise
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PlanExercise ties an exercise into a plan with its prescribed volume.
type PlanExercise struct {
	ID         int64
	ExerciseID int64
	Sets       int
	Reps       int
	Weight     float64
	Notes      string
}

// Session statuses.
const (
	SessionStatusScheduled = "scheduled"
	SessionStatusCompleted = "completed"
)

// WorkoutSession is one execution (scheduled or completed) of a plan.
type WorkoutSession struct {
	ID            int64
	UserID        int64
	WorkoutPlanID int64
	ScheduledDate *time.Time
	CompletedAt   *time.Time
	Status        string
	Notes         string
}
