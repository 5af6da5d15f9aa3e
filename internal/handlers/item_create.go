package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/ghuser/swapspace/internal/logger"
	"github.com/ghuser/swapspace/internal/middlewares"
	"github.com/ghuser/swapspace/internal/models"
	"github.com/ghuser/swapspace/internal/validation"
)

// ItemCreator defines the interface that the item service must implement.
type ItemCreator interface {
	Create(ctx context.Context, ownerID uuid.UUID, in models.ItemUpdate) (*models.Item, error)
}

// CreateItemRequest represents the JSON body for creating an item
// swagger:model CreateItemRequest
type CreateItemRequest struct {
	// Title
	// required: true
	// default: Mountain bike
	Title string `json:"title" validate:"required"`

	// Description
	// required: true
	Description string `json:"description" validate:"required"`

	// Image URLs, at least one
	// required: true
	Images []string `json:"images" validate:"required,min=1"`

	// Category
	// required: true
	// default: Sports
	Category string `json:"category" validate:"required"`

	// Condition
	// required: true
	// default: Good
	Condition string `json:"condition" validate:"required"`

	// What the owner wants in exchange
	LookingFor string `json:"lookingFor"`

	// Free-text location
	Location string `json:"location"`
}

// NewCreateItemHandler returns an HTTP handler for creating items.
// @Summary Create an item
// @Description Creates a listing owned by the authenticated user. The owner is never taken from the body.
// @Tags items
// @Accept json
// @Produce json
// @Param createItemRequest body handlers.CreateItemRequest true "Item to create"
// @Success 201 {object} models.Item "Created item with expanded owner"
// @Failure 400 {object} handlers.ErrorResponse "Validation failure"
// @Failure 401 {object} handlers.ErrorResponse "Unauthenticated"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /items [post]
// @Security BearerAuth
func NewCreateItemHandler(svc ItemCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, ok := middlewares.UserIDFromContext(ctx)
		if !ok {
			writeError(w, http.StatusUnauthorized, "Authentication required")
			return
		}

		var req CreateItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if err := validation.Validate(req); err != nil {
			writeError(w, http.StatusBadRequest, validation.Message(err))
			return
		}

		item, err := svc.Create(ctx, userID, models.ItemUpdate{
			Title:       req.Title,
			Description: req.Description,
			Images:      req.Images,
			Category:    req.Category,
			Condition:   req.Condition,
			LookingFor:  req.LookingFor,
			Location:    req.Location,
		})
		if err != nil {
			logger.Log.Errorw("failed to create item", "err", err)
			writeError(w, http.StatusInternalServerError, "Server error")
			return
		}

		writeJSON(w, http.StatusCreated, item)
	}
}
