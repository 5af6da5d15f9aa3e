package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/ghuser/swapspace/internal/logger"
	"github.com/ghuser/swapspace/internal/models"
)

// ItemLister defines the interface that the item service must implement.
type ItemLister interface {
	List(ctx context.Context, filter models.ItemFilter) ([]models.Item, error)
}

// NewListItemsHandler returns an HTTP handler for browsing items.
// @Summary List items
// @Description Returns items newest first, optionally filtered by category, condition and free-text search, paginated with limit/page.
// @Tags items
// @Produce json
// @Param category query string false "Exact category match"
// @Param condition query string false "Exact condition match"
// @Param search query string false "Case-insensitive match against title or description"
// @Param limit query int false "Page size" default(20)
// @Param page query int false "1-indexed page" default(1)
// @Success 200 {array} models.Item "Matching items"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /items [get]
func NewListItemsHandler(svc ItemLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		filter := models.ItemFilter{
			Category:  q.Get("category"),
			Condition: q.Get("condition"),
			Search:    q.Get("search"),
		}
		// Unparsable numbers fall back to the service defaults.
		if limit, err := strconv.Atoi(q.Get("limit")); err == nil {
			filter.Limit = limit
		}
		if page, err := strconv.Atoi(q.Get("page")); err == nil {
			filter.Page = page
		}

		items, err := svc.List(r.Context(), filter)
		if err != nil {
			logger.Log.Errorw("failed to list items", "err", err)
			writeError(w, http.StatusInternalServerError, "Server error")
			return
		}

		writeJSON(w, http.StatusOK, items)
	}
}
