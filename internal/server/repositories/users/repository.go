package users

import (
	"context"

	"github.com/nick-0037/workout-tracker-api/internal/server/models"
)

// Repository is the user store contract. Create fails with
// common.ErrDuplicateKey when username or email is already taken; GetByEmail
// returns common.ErrorNotFound for absent rows — absence is an expected
// outcome there, not a failure.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}
