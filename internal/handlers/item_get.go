package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/swapspace/internal/logger"
	"github.com/ghuser/swapspace/internal/models"
	"github.com/ghuser/swapspace/internal/services"
)

// ItemGetter defines the interface that the item service must implement.
type ItemGetter interface {
	Get(ctx context.Context, itemID uuid.UUID) (*models.Item, error)
}

// NewGetItemHandler returns an HTTP handler for reading a single item.
// @Summary Get an item
// @Description Returns one item with its owner expanded.
// @Tags items
// @Produce json
// @Param id path string true "Item id"
// @Success 200 {object} models.Item "Item"
// @Failure 404 {object} handlers.ErrorResponse "Item not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /items/{id} [get]
func NewGetItemHandler(svc ItemGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		itemID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			// A malformed id cannot name an existing item.
			writeError(w, http.StatusNotFound, "Item not found")
			return
		}

		item, err := svc.Get(r.Context(), itemID)
		if err != nil {
			if errors.Is(err, services.ErrItemNotFound) {
				writeError(w, http.StatusNotFound, "Item not found")
				return
			}
			logger.Log.Errorw("failed to get item", "item_id", itemID, "err", err)
			writeError(w, http.StatusInternalServerError, "Server error")
			return
		}

		writeJSON(w, http.StatusOK, item)
	}
}
