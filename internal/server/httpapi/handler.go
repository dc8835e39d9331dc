// Package httpapi exposes the application services over REST. Handlers decode
// JSON requests, call the service layer, and translate its sentinel errors
// into status codes; unexpected errors answer 500 without leaking internals.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"net/mail"
	"strconv"

	"github.com/nick-0037/workout-tracker-api/internal/common"
	"github.com/nick-0037/workout-tracker-api/internal/logging"
	"github.com/nick-0037/workout-tracker-api/internal/server/models"
	"github.com/nick-0037/workout-tracker-api/internal/server/services"
)

// AuthService is the registration/login contract the handlers call.
type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*services.Token, error)
}

// ExerciseCatalog serves the read-only exercise catalog.
type ExerciseCatalog interface {
	GetAll(ctx context.Context) ([]*models.Exercise, error)
	GetByID(ctx context.Context, id int64) (*models.Exercise, error)
}

// WorkoutManager manages a user's plans and sessions.
type WorkoutManager interface {
	CreatePlan(ctx context.Context, plan *models.WorkoutPlan) (*models.WorkoutPlan, error)
	GetPlan(ctx context.Context, userID, planID int64) (*models.WorkoutPlan, error)
	ListPlans(ctx context.Context, userID int64) ([]*models.WorkoutPlan, error)
	UpdatePlan(ctx context.Context, plan *models.WorkoutPlan) (*models.WorkoutPlan, error)
	DeletePlan(ctx context.Context, userID, planID int64) error
	ScheduleSession(ctx context.Context, session *models.WorkoutSession) (*models.WorkoutSession, error)
	ListSessions(ctx context.Context, userID int64) ([]*models.WorkoutSession, error)
}

// Handler holds the service collaborators behind every route.
type Handler struct {
	auth      AuthService
	exercises ExerciseCatalog
	workouts  WorkoutManager
	logger    logging.Logger
}

// NewHandler constructs a Handler from its collaborators.
func NewHandler(auth AuthService, exercises ExerciseCatalog, workouts WorkoutManager, logger logging.Logger) *Handler {
	return &Handler{
		auth:      auth,
		exercises: exercises,
		workouts:  workouts,
		logger:    logger.With("module", "http_handler"),
	}
}

// Root — GET /
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"message": "Workout Tracker API"})
}

// Health — liveness probe
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// Register — POST /auth/register
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := readJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Username == "" || req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "username, email and password are required")
		return
	}
	if addr, err := mail.ParseAddress(req.Email); err != nil || addr.Address != req.Email {
		respondError(w, http.StatusBadRequest, "invalid email address")
		return
	}

	user, err := h.auth.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrEmailAlreadyRegistered) {
			respondError(w, http.StatusBadRequest, "Email already registered")
			return
		}
		h.logger.Error(r.Context(), "register failed", "error", err.Error())
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	respondJSON(w, http.StatusCreated, toUserResponse(user))
}

// Login — POST /auth/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := readJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			respondError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		h.logger.Error(r.Context(), "login failed", "error", err.Error())
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	respondJSON(w, http.StatusOK, tokenResponse{AccessToken: token.AccessToken, TokenType: token.TokenType})
}

// ListExercises — GET /exercises
func (h *Handler) ListExercises(w http.ResponseWriter, r *http.Request) {
	list, err := h.exercises.GetAll(r.Context())
	if err != nil {
		h.logger.Error(r.Context(), "list exercises failed", "error", err.Error())
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	out := []exerciseResponse{}
	for _, ex := range list {
		out = append(out, toExerciseResponse(ex))
	}
	respondJSON(w, http.StatusOK, out)
}

// GetExercise — GET /exercises/{id}
func (h *Handler) GetExercise(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid exercise id")
		return
	}

	ex, err := h.exercises.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			respondError(w, http.StatusNotFound, "Exercise not found")
			return
		}
		h.logger.Error(r.Context(), "get exercise failed", "error", err.Error())
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	respondJSON(w, http.StatusOK, toExerciseResponse(ex))
}

// CreatePlan — POST /workouts
func (h *Handler) CreatePlan(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "user not found in context")
		return
	}

	var req planRequest
	if err := readJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}

	plan, err := h.workouts.CreatePlan(r.Context(), req.toModel(userID, 0))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			respondError(w, http.StatusNotFound, "Exercise not found")
			return
		}
		h.logger.Error(r.Context(), "create plan failed", "error", err.Error())
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	respondJSON(w, http.StatusCreated, toPlanResponse(plan))
}

// ListPlans — GET /workouts
func (h *Handler) ListPlans(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "user not found in context")
		return
	}

	plans, err := h.workouts.ListPlans(r.Context(), userID)
	if err != nil {
		h.logger.Error(r.Context(), "list plans failed", "error", err.Error())
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	out := []planResponse{}
	for _, p := range plans {
		out = append(out, toPlanResponse(p))
	}
	respondJSON(w, http.StatusOK, out)
}

// GetPlan — GET /workouts/{id}
func (h *Handler) GetPlan(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "user not found in context")
		return
	}
	planID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid workout id")
		return
	}

	plan, err := h.workouts.GetPlan(r.Context(), userID, planID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			respondError(w, http.StatusNotFound, "Workout plan not found")
			return
		}
		h.logger.Error(r.Context(), "get plan failed", "error", err.Error())
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	respondJSON(w, http.StatusOK, toPlanResponse(plan))
}

// UpdatePlan — PUT /workouts/{id}
func (h *Handler) UpdatePlan(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "user not found in context")
		return
	}
	planID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid workout id")
		return
	}

	var req planRequest
	if err := readJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}

	plan, err := h.workouts.UpdatePlan(r.Context(), req.toModel(userID, planID))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			respondError(w, http.StatusNotFound, "Workout plan not found")
			return
		}
		h.logger.Error(r.Context(), "update plan failed", "error", err.Error())
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	respondJSON(w, http.StatusOK, toPlanResponse(plan))
}

// DeletePlan — DELETE /workouts/{id}
func (h *Handler) DeletePlan(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "user not found in context")
		return
	}
	planID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid workout id")
		return
	}

	if err := h.workouts.DeletePlan(r.Context(), userID, planID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			respondError(w, http.StatusNotFound, "Workout plan not found")
			return
		}
		h.logger.Error(r.Context(), "delete plan failed", "error", err.Error())
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CreateSession — POST /workouts/{id}/sessions
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "user not found in context")
		return
	}
	planID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid workout id")
		return
	}

	var req sessionRequest
	if err := readJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	// empty status is allowed; the service defaults it to scheduled
	if req.Status != "" && req.Status != models.SessionStatusScheduled && req.Status != models.SessionStatusCompleted {
		respondError(w, http.StatusBadRequest, "invalid session status")
		return
	}

	session, err := h.workouts.ScheduleSession(r.Context(), &models.WorkoutSession{
		UserID:        userID,
		WorkoutPlanID: planID,
		ScheduledDate: req.ScheduledDate,
		Status:        req.Status,
		Notes:         req.Notes,
	})
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			respondError(w, http.StatusNotFound, "Workout plan not found")
			return
		}
		h.logger.Error(r.Context(), "create session failed", "error", err.Error())
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	respondJSON(w, http.StatusCreated, toSessionResponse(session))
}

// ListSessions — GET /sessions
func (h *Handler) ListSessions(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "user not found in context")
		return
	}

	sessions, err := h.workouts.ListSessions(r.Context(), userID)
	if err != nil {
		h.logger.Error(r.Context(), "list sessions failed", "error", err.Error())
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	out := []sessionResponse{}
	for _, s := range sessions {
		out = append(out, toSessionResponse(s))
	}
	respondJSON(w, http.StatusOK, out)
}
