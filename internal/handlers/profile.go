package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/ghuser/swapspace/internal/logger"
	"github.com/ghuser/swapspace/internal/middlewares"
	"github.com/ghuser/swapspace/internal/models"
	"github.com/ghuser/swapspace/internal/services"
)

// ProfileUpdater defines the interface that the profile service must implement.
type ProfileUpdater interface {
	UpdateProfile(ctx context.Context, userID uuid.UUID, name, bio, location string) (*models.User, error)
}

// UpdateProfileRequest represents the JSON body for a profile update.
// Omitted or empty fields are left unchanged.
// swagger:model UpdateProfileRequest
type UpdateProfileRequest struct {
	// Display name
	// default: Jane Doe
	Name string `json:"name"`

	// Short bio
	Bio string `json:"bio"`

	// Free-text location
	// default: Berlin
	Location string `json:"location"`
}

// NewUpdateProfileHandler returns an HTTP handler for profile updates.
// @Summary Update current user's profile
// @Description Overwrites each supplied non-empty field; email is immutable.
// @Tags users
// @Accept json
// @Produce json
// @Param updateProfileRequest body handlers.UpdateProfileRequest true "Profile update request"
// @Success 200 {object} models.User "Updated user"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Unauthenticated"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /users/me [put]
// @Security BearerAuth
func NewUpdateProfileHandler(svc ProfileUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, ok := middlewares.UserIDFromContext(ctx)
		if !ok {
			writeError(w, http.StatusUnauthorized, "Authentication required")
			return
		}

		var req UpdateProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		user, err := svc.UpdateProfile(ctx, userID, req.Name, req.Bio, req.Location)
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				writeError(w, http.StatusUnauthorized, "Please authenticate")
				return
			}
			logger.Log.Errorw("failed to update profile", "err", err)
			writeError(w, http.StatusInternalServerError, "Server error")
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}
