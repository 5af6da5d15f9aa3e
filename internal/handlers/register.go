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

// Registerer defines the interface that the registration service must implement.
type Registerer interface {
	Register(ctx context.Context, name, email, password string) (*models.User, string, error)
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Display name
	// required: true
	// default: Jane Doe
	Name string `json:"name" validate:"required"`

	// Email
	// required: true
	// default: jane@example.com
	Email string `json:"email" validate:"required,email"`

	// Password, at least 6 characters
	// required: true
	// default: secret123
	Password string `json:"password" validate:"required,min=6"`
}

// AuthResponse carries the public user fields and a fresh session token
// swagger:model AuthResponse
type AuthResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates an account, hashes the password and returns the public user fields with a session token.
// @Tags users
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 201 {object} handlers.AuthResponse "User registered"
// @Failure 400 {object} handlers.ErrorResponse "Validation failure or email already in use"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /users/register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if err := validation.Validate(req); err != nil {
			writeError(w, http.StatusBadRequest, validation.Message(err))
			return
		}

		user, token, err := svc.Register(r.Context(), req.Name, req.Email, req.Password)
		if err != nil {
			if errors.Is(err, services.ErrEmailAlreadyExists) {
				writeError(w, http.StatusBadRequest, "Email already in use")
				return
			}
			logger.Log.Errorw("registration failed", "err", err)
			writeError(w, http.StatusInternalServerError, "Server error")
			return
		}

		writeJSON(w, http.StatusCreated, AuthResponse{User: user, Token: token})
	}
}
