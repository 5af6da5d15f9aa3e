package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/swapspace/internal/logger"
	"github.com/ghuser/swapspace/internal/models"
)

// OwnerItemsLister defines the interface that the item service must implement.
type OwnerItemsLister interface {
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Item, error)
}

// NewUserItemsHandler returns an HTTP handler listing one user's items.
// @Summary List a user's items
// @Description Returns every item of one owner, newest first. Unknown owners yield an empty list.
// @Tags items
// @Produce json
// @Param id path string true "User id"
// @Success 200 {array} models.Item "The user's items"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /users/{id}/items [get]
func NewUserItemsHandler(svc OwnerItemsLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			// A malformed id owns nothing.
			writeJSON(w, http.StatusOK, []models.Item{})
			return
		}

		items, err := svc.ListByOwner(r.Context(), ownerID)
		if err != nil {
			logger.Log.Errorw("failed to list user items", "owner_id", ownerID, "err", err)
			writeError(w, http.StatusInternalServerError, "Server error")
			return
		}

		writeJSON(w, http.StatusOK, items)
	}
}
