package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/ghuser/swapspace/internal/logger"
	"github.com/ghuser/swapspace/internal/middlewares"
	"github.com/ghuser/swapspace/internal/models"
	"github.com/ghuser/swapspace/internal/services"
)

// UserGetter defines the interface that the profile service must implement.
type UserGetter interface {
	Get(ctx context.Context, userID uuid.UUID) (*models.User, error)
}

// NewMeHandler returns an HTTP handler for the current-user endpoint.
// @Summary Get current user
// @Description Returns the public fields of the authenticated user.
// @Tags users
// @Produce json
// @Success 200 {object} models.User "Current user"
// @Failure 401 {object} handlers.ErrorResponse "Unauthenticated"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /users/me [get]
// @Security BearerAuth
func NewMeHandler(svc UserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, ok := middlewares.UserIDFromContext(ctx)
		if !ok {
			writeError(w, http.StatusUnauthorized, "Authentication required")
			return
		}

		user, err := svc.Get(ctx, userID)
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				writeError(w, http.StatusUnauthorized, "Please authenticate")
				return
			}
			logger.Log.Errorw("failed to load current user", "err", err)
			writeError(w, http.StatusInternalServerError, "Server error")
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}
