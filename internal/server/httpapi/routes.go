package httpapi

import "net/http"

// Routes registers every endpoint on router. Workout and session routes sit
// behind the bearer-token middleware; auth, catalog, root, and health are
// public.
func Routes(router *http.ServeMux, h *Handler, decoder TokenDecoder) {
	router.HandleFunc("GET /{$}", h.Root)
	router.HandleFunc("GET /health", h.Health)

	router.HandleFunc("POST /auth/register", h.Register)
	router.HandleFunc("POST /auth/login", h.Login)

	router.HandleFunc("GET /exercises", h.ListExercises)
	router.HandleFunc("GET /exercises/{id}", h.GetExercise)

	protect := authMiddleware(decoder, h.logger)
	router.Handle("POST /workouts", protect(http.HandlerFunc(h.CreatePlan)))
	router.Handle("GET /workouts", protect(http.HandlerFunc(h.ListPlans)))
	router.Handle("GET /workouts/{id}", protect(http.HandlerFunc(h.GetPlan)))
	router.Handle("PUT /workouts/{id}", protect(http.HandlerFunc(h.UpdatePlan)))
	router.Handle("DELETE /workouts/{id}", protect(http.HandlerFunc(h.DeletePlan)))
	router.Handle("POST /workouts/{id}/sessions", protect(http.HandlerFunc(h.CreateSession)))
	router.Handle("GET /sessions", protect(http.HandlerFunc(h.ListSessions)))
}

// NewRouter builds the full route table wrapped with request-id tagging.
func NewRouter(h *Handler, decoder TokenDecoder) http.Handler {
	router := http.NewServeMux()
	Routes(router, h, decoder)
	return requestIDMiddleware(router)
}
