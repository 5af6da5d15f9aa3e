package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ghuser/swapspace/internal/logger"
	"github.com/ghuser/swapspace/internal/models"
	"github.com/ghuser/swapspace/internal/services"
	"github.com/ghuser/swapspace/internal/validation"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, email, password string) (*models.User, string, error)
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Email
	// required: true
	// default: jane@example.com
	Email string `json:"email" validate:"required,email"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password" validate:"required"`
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Authenticates a user and returns the public user fields with a session token.
// @Tags users
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login request"
// @Success 200 {object} handlers.AuthResponse "Login successful"
// @Failure 400 {object} handlers.ErrorResponse "Invalid email or password"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /users/login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if err := validation.Validate(req); err != nil {
			writeError(w, http.StatusBadRequest, validation.Message(err))
			return
		}

		user, token, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, services.ErrInvalidCredentials) {
				// Deliberately the same message for unknown email and
				// wrong password.
				writeError(w, http.StatusBadRequest, "Invalid email or password")
				return
			}
			logger.Log.Errorw("login failed", "err", err)
			writeError(w, http.StatusInternalServerError, "Server error")
			return
		}

		writeJSON(w, http.StatusOK, AuthResponse{User: user, Token: token})
	}
}
