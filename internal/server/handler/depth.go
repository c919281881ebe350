package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/amapara27/Horizon/internal/domain"
)

// DepthService defines the methods that the depth handler requires from the
// depth aggregation layer.
type DepthService interface {
	EventDepth(ctx context.Context, eventID string, maxOutcomes int) []domain.OutcomeDepth
}

// BookService resolves full order-book statistics for an event.
type BookService interface {
	EventBooksByID(ctx context.Context, eventID string) []domain.BookDepth
}

// DepthHandler serves market depth endpoints.
type DepthHandler struct {
	depth  DepthService
	books  BookService
	logger *slog.Logger
}

// NewDepthHandler creates a DepthHandler with the given services and logger.
func NewDepthHandler(depth DepthService, books BookService, logger *slog.Logger) *DepthHandler {
	return &DepthHandler{
		depth:  depth,
		books:  books,
		logger: logger,
	}
}

// MarketDepth returns the liquidity-ranked outcome depth for an event.
// Fetch failures degrade to an empty array rather than an error status.
// GET /api/event/{id}/market-depth?limit=10
func (h *DepthHandler) MarketDepth(w http.ResponseWriter, r *http.Request) {
	id := pathParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing event id")
		return
	}
	limit := queryInt(r, "limit", 0)

	depths := h.depth.EventDepth(r.Context(), id, limit)
	if depths == nil {
		depths = []domain.OutcomeDepth{}
	}

	writeJSON(w, http.StatusOK, depths)
}

// OrderBooks returns bid/ask order-book statistics per outcome.
// GET /api/event/{id}/order-books
func (h *DepthHandler) OrderBooks(w http.ResponseWriter, r *http.Request) {
	id := pathParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing event id")
		return
	}

	books := h.books.EventBooksByID(r.Context(), id)
	if books == nil {
		books = []domain.BookDepth{}
	}

	writeJSON(w, http.StatusOK, books)
}
