package exercises

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

func (r *PostgresRepository) GetAll(ctx context.Context) ([]*models.Exercise, error) {
	query :=
		`SELECT id, name, description, category, muscle_group FROM exercises
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Exercise, 0)
	for rows.Next() {
		e := &models.Exercise{}
		if err := rows.Scan(&e.ID, &e.Name, &e.Description, &e.Category, &e.MuscleGroup); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Exercise, error) {
	query :=
		`SELECT id, name, description, category, muscle_group FROM exercises
		 WHERE id = $1
		 `

	e := &models.Exercise{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&e.ID, &e.Name, &e.Description, &e.Category, &e.MuscleGroup)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return e, nil
}
