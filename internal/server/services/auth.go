// Package services contains server-side business logic. This file implements
// AuthService, which handles user registration and credential login with
// bearer-token issuance.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/nick-0037/workout-tracker-api/internal/common"
	"github.com/nick-0037/workout-tracker-api/internal/server/hashing"
	"github.com/nick-0037/workout-tracker-api/internal/server/models"
	"github.com/nick-0037/workout-tracker-api/internal/server/repositories/repomanager"
)

// TokenIssuer mints a signed access token for an authenticated user.
type TokenIssuer interface {
	Issue(userID int64, email string) (string, error)
}

// Token is the login result handed back to the transport layer.
type Token struct {
	AccessToken string
	TokenType   string
}

// AuthService provides authentication-related operations:
// - Register: create users with digested passwords
// - Login: verify credentials and mint an access token
type AuthService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	hasher      hashing.Hasher
	tokens      TokenIssuer
}

// NewAuthService constructs an AuthService from its collaborators.
func NewAuthService(db *sql.DB, m repomanager.RepositoryManager, hasher hashing.Hasher, tokens TokenIssuer) *AuthService {
	return &AuthService{db: db, repomanager: m, hasher: hasher, tokens: tokens}
}

// Register creates a new user with a digested password. A taken email yields
// common.ErrEmailAlreadyRegistered; the store's unique constraints back the
// pre-check up, so a concurrent insert of the same email surfaces the same
// way. The returned user never carries the stored digest.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	repo := s.repomanager.Users(s.db)

	if _, err := repo.GetByEmail(ctx, email); err == nil {
		return nil, common.ErrEmailAlreadyRegistered
	} else if !errors.Is(err, common.ErrorNotFound) {
		return nil, fmt.Errorf("error checking email: %v", err)
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: s.hasher.Hash(password),
	}
	u, err := repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrDuplicateKey) {
			return nil, common.ErrEmailAlreadyRegistered
		}
		return nil, fmt.Errorf("error creating user: %v", err)
	}
	u.PasswordHash = ""
	return u, nil
}

// Login verifies the email/password pair and returns a bearer token. An
// unknown email and a wrong password are indistinguishable to the caller:
// both yield common.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (*Token, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error searching user: %v", err)
	}

	if !hashing.Equal(s.hasher.Hash(password), user.PasswordHash) {
		return nil, common.ErrInvalidCredentials
	}

	accessToken, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("error issuing token: %v", err)
	}
	return &Token{AccessToken: accessToken, TokenType: common.TokenTypeBearer}, nil
}
