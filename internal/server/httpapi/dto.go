package httpapi

import (
	"time"

	"github.com/nick-0037/workout-tracker-api/internal/server/models"
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type exerciseResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	MuscleGroup string `json:"muscle_group"`
}

type planExerciseRequest struct {
	ExerciseID int64   `json:"exercise_id"`
	Sets       int     `json:"sets"`
	Reps       int     `json:"reps"`
	Weight     float64 `json:"weight"`
	Notes      string  `json:"notes"`
}

type planRequest struct {
	Name        string                `json:"name"`
	Description string                `json:"description"`
	Exercises   []planExerciseRequest `json:"exercises"`
}

type planExerciseResponse struct {
	ID         int64   `json:"id"`
	ExerciseID int64   `json:"exercise_id"`
	Sets       int     `json:"sets"`
	Reps       int     `json:"reps"`
	Weight     float64 `json:"weight"`
	Notes      string  `json:"notes"`
}

type planResponse struct {
	ID          int64                  `json:"id"`
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Exercises   []planExerciseResponse `json:"exercises"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
}

type sessionRequest struct {
	ScheduledDate *time.Time `json:"scheduled_date"`
	Status        string     `json:"status"`
	Notes         string     `json:"notes"`
}

type sessionResponse struct {
	ID            int64      `json:"id"`
	WorkoutPlanID int64      `json:"workout_plan_id"`
	ScheduledDate *time.Time `json:"scheduled_date"`
	CompletedAt   *time.Time `json:"completed_at"`
	Status        string     `json:"status"`
	Notes         string     `json:"notes"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func toUserResponse(u *models.User) userResponse {
	return userResponse{ID: u.ID, Username: u.Username, Email: u.Email, CreatedAt: u.CreatedAt}
}

func toExerciseResponse(e *models.Exercise) exerciseResponse {
	return exerciseResponse{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		Category:    e.Category,
		MuscleGroup: e.MuscleGroup,
	}
}

func toPlanResponse(p *models.WorkoutPlan) planResponse {
	out := planResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Exercises:   []planExerciseResponse{},
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	for _, ex := range p.Exercises {
		out.Exercises = append(out.Exercises, planExerciseResponse{
			ID:         ex.ID,
			ExerciseID: ex.ExerciseID,
			Sets:       ex.Sets,
			Reps:       ex.Reps,
			Weight:     ex.Weight,
			Notes:      ex.Notes,
		})
	}
	return out
}

func toSessionResponse(s *models.WorkoutSession) sessionResponse {
	return sessionResponse{
		ID:            s.ID,
		WorkoutPlanID: s.WorkoutPlanID,
		ScheduledDate: s.ScheduledDate,
		CompletedAt:   s.CompletedAt,
		Status:        s.Status,
		Notes:         s.Notes,
	}
}

func (r planRequest) toModel(userID, planID int64) *models.WorkoutPlan {
	plan := &models.WorkoutPlan{
		ID:          planID,
		UserID:      userID,
		Name:        r.Name,
		Description: r.Description,
	}
	for _, ex := range r.Exercises {
		plan.Exercises = append(plan.Exercises, models.PlanExercise{
			ExerciseID: ex.ExerciseID,
			Sets:       ex.Sets,
			Reps:       ex.Reps,
			Weight:     ex.Weight,
			Notes:      ex.Notes,
		})
	}
	return plan
}
