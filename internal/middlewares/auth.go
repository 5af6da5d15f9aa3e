package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/ghuser/swapspace/internal/jwt"
	"github.com/ghuser/swapspace/internal/logger"
	"github.com/ghuser/swapspace/internal/models"
)

// Tokener defines the minimal token interface needed by the middleware.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// UserResolver confirms that a token's user id still resolves to a stored
// user. Returns (nil, nil) when it does not.
type UserResolver interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// contextKey is an unexported type for keys in context
type contextKey struct{}

var userIDKey contextKey

// WithUserID stores the authenticated user id in the context.
func WithUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext retrieves the authenticated user id from the context.
func UserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(userIDKey).(uuid.UUID)
	return userID, ok
}

type authError struct {
	Message string `json:"message"`
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(authError{Message: message})
}

// AuthMiddleware returns the single auth guard applied to protected routes.
// It extracts the Bearer token, verifies it, confirms the encoded user still
// exists, and attaches the user id to the request context.
func AuthMiddleware(tokener Tokener, users UserResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Infow("authorization failed", "err", err)
				unauthorized(w, "Authentication required")
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				logger.Log.Infow("authorization failed", "err", err)
				unauthorized(w, "Please authenticate")
				return
			}

			user, err := users.GetByID(ctx, claims.UserID)
			if err != nil {
				logger.Log.Errorw("failed to resolve token user", "user_id", claims.UserID, "err", err)
				unauthorized(w, "Please authenticate")
				return
			}
			if user == nil {
				logger.Log.Infow("token user no longer exists", "user_id", claims.UserID)
				unauthorized(w, "Please authenticate")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(ctx, user.UserID)))
		})
	}
}
