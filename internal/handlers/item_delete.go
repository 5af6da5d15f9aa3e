package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/swapspace/internal/logger"
	"github.com/ghuser/swapspace/internal/middlewares"
	"github.com/ghuser/swapspace/internal/services"
)

// ItemDeleter defines the interface that the item service must implement.
type ItemDeleter interface {
	Delete(ctx context.Context, itemID, callerID uuid.UUID) error
}

// DeleteItemResponse confirms a deletion
// swagger:model DeleteItemResponse
type DeleteItemResponse struct {
	// Confirmation message
	// default: Item deleted successfully
	Message string `json:"message"`
}

// NewDeleteItemHandler returns an HTTP handler for deleting items.
// @Summary Delete an item
// @Description Permanently removes an item; only the owner may delete it.
// @Tags items
// @Produce json
// @Param id path string true "Item id"
// @Success 200 {object} handlers.DeleteItemResponse "Item deleted"
// @Failure 401 {object} handlers.ErrorResponse "Unauthenticated"
// @Failure 403 {object} handlers.ErrorResponse "Caller does not own the item"
// @Failure 404 {object} handlers.ErrorResponse "Item not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /items/{id} [delete]
// @Security BearerAuth
func NewDeleteItemHandler(svc ItemDeleter) http.HandlerFunc {
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

		if err := svc.Delete(ctx, itemID, userID); err != nil {
			switch {
			case errors.Is(err, services.ErrItemNotFound):
				writeError(w, http.StatusNotFound, "Item not found")
			case errors.Is(err, services.ErrNotItemOwner):
				writeError(w, http.StatusForbidden, "Not authorized to delete this item")
			default:
				logger.Log.Errorw("failed to delete item", "item_id", itemID, "err", err)
				writeError(w, http.StatusInternalServerError, "Server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, DeleteItemResponse{Message: "Item deleted successfully"})
	}
}
