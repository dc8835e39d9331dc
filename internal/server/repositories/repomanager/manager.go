package repomanager

import (
	"context"
	"database/sql"

	"github.com/nick-0037/workout-tracker-api/internal/dbx"
	"github.com/nick-0037/workout-tracker-api/internal/server/repositories/exercises"
	"github.com/nick-0037/workout-tracker-api/internal/server/repositories/users"
	"github.com/nick-0037/workout-tracker-api/internal/server/repositories/workouts"
)

// RepositoryManager vends per-table repositories bound to a DBTX (either the
// pooled *sql.DB or an open transaction) and exposes the schema migration hook.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Exercises(db dbx.DBTX) exercises.Repository
	Workouts(db dbx.DBTX) workouts.Repository
}
