package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/nick-0037/workout-tracker-api/internal/common"
	"github.com/nick-0037/workout-tracker-api/internal/logging"
	"github.com/nick-0037/workout-tracker-api/internal/server/auth"
)

// TokenDecoder verifies an access token and returns its claims.
type TokenDecoder interface {
	Decode(tokenString string) (*auth.Claims, error)
}

type contextKey string

const (
	contextKeyUserID    contextKey = "user_id"
	contextKeyUserEmail contextKey = "user_email"
	contextKeyRequestID contextKey = "request_id"
)

// requestIDMiddleware tags every request with a unique id, echoed back in the
// X-Request-Id header and available to handlers via the request context.
func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", id)
		ctx := context.WithValue(r.Context(), contextKeyRequestID, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// authMiddleware requires a valid "Bearer <token>" Authorization header and
// puts the authenticated user's id and email into the request context. Missing,
// malformed, invalid, and expired tokens all answer 401.
func authMiddleware(decoder TokenDecoder, logger logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get(common.AuthorizationHeaderName)
			if header == "" {
				respondError(w, http.StatusUnauthorized, "missing authorization header")
				return
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				respondError(w, http.StatusUnauthorized, "invalid authorization header format")
				return
			}

			claims, err := decoder.Decode(parts[1])
			if err != nil {
				logger.Warn(r.Context(), "token rejected", "error", err.Error())
				respondError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), contextKeyUserID, claims.UserID)
			ctx = context.WithValue(ctx, contextKeyUserEmail, claims.Email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// userIDFromContext extracts the authenticated user's id set by authMiddleware.
func userIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(contextKeyUserID).(int64)
	return id, ok
}

// RequestIDFromContext extracts the request id set by requestIDMiddleware.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(contextKeyRequestID).(string)
	return id, ok
}
