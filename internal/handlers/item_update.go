package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/swapspace/internal/logger"
	"github.com/ghuser/swapspace/internal/middlewares"
	"github.com/ghuser/swapspace/internal/models"
	"github.com/ghuser/swapspace/internal/services"
)

// ItemUpdater defines the interface that the item service must implement.
type ItemUpdater interface {
	Update(ctx context.Context, itemID, callerID uuid.UUID, upd models.ItemUpdate) (*models.Item, error)
}

// UpdateItemRequest represents the JSON body for a partial item update.
// Omitted or empty fields keep their stored values.
// swagger:model UpdateItemRequest
type UpdateItemRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
	Category    string   `json:"category"`
	Condition   string   `json:"condition"`
	LookingFor  string   `json:"lookingFor"`
	Location    string   `json:"location"`
}

// NewUpdateItemHandler returns an HTTP handler for updating items.
// @Summary Update an item
// @Description Applies a partial update; only the owner may update an item. updatedAt is always refreshed.
// @Tags items
// @Accept json
// @Produce json
// @Param id path string true "Item id"
// @Param updateItemRequest body handlers.UpdateItemRequest true "Fields to overwrite"
// @Success 200 {object} models.Item "Updated item"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Unauthenticated"
// @Failure 403 {object} handlers.ErrorResponse "Caller does not own the item"
// @Failure 404 {object} handlers.ErrorResponse "Item not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /items/{id} [put]
// @Security BearerAuth
func NewUpdateItemHandler(svc ItemUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, ok := middlewares.UserIDFromContext(ctx)
		if !ok {
			writeError(w, http.StatusUnauthorized, "Authentication required")
			return
		}

		itemID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusNotFound, "Item not found")
			return
		}

		var req UpdateItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		item, err := svc.Update(ctx, itemID, userID, models.ItemUpdate{
			Title:       req.Title,
			Description: req.Description,
			Images:      req.Images,
			Category:    req.Category,
			Condition:   req.Condition,
			LookingFor:  req.LookingFor,
			Location:    req.Location,
		})
		if err != nil {
			switch {
			case errors.Is(err, services.ErrItemNotFound):
				writeError(w, http.StatusNotFound, "Item not found")
			case errors.Is(err, services.ErrNotItemOwner):
				writeError(w, http.StatusForbidden, "Not authorized to update this item")
			default:
				logger.Log.Errorw("failed to update item", "item_id", itemID, "err", err)
				writeError(w, http.StatusInternalServerError, "Server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, item)
	}
}
