package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/amapara27/Horizon/internal/analysis"
	"github.com/amapara27/Horizon/internal/domain"
)

// EventCatalog defines the methods that the events handler requires from the
// listing layer. It is declared locally so the handler package does not depend
// on the concrete catalog implementation.
type EventCatalog interface {
	ListCategory(ctx context.Context, category analysis.Category, limit int) ([]domain.Event, error)
}

// EventFinder fetches a single event by ID.
type EventFinder interface {
	GetEvent(ctx context.Context, id string) (domain.Event, error)
}

// EventsHandler serves event listing and lookup endpoints.
type EventsHandler struct {
	catalog EventCatalog
	events  EventFinder
	logger  *slog.Logger
}

// NewEventsHandler creates an EventsHandler with the given catalog, finder
// and logger.
func NewEventsHandler(catalog EventCatalog, events EventFinder, logger *slog.Logger) *EventsHandler {
	return &EventsHandler{
		catalog: catalog,
		events:  events,
		logger:  logger,
	}
}

// ListNew returns the most recently created open events.
// GET /api/new-events?limit=5
func (h *EventsHandler) ListNew(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, analysis.CategoryNew)
}

// ListTrending returns open events ordered by 24-hour volume.
// GET /api/trending-events?limit=20
func (h *EventsHandler) ListTrending(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, analysis.CategoryTrending)
}

// ListCrypto returns the most recent open crypto-tagged events.
// GET /api/crypto-events?limit=5
func (h *EventsHandler) ListCrypto(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, analysis.CategoryCrypto)
}

func (h *EventsHandler) list(w http.ResponseWriter, r *http.Request, category analysis.Category) {
	limit := queryInt(r, "limit", 0)

	events, err := h.catalog.ListCategory(r.Context(), category, limit)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "handler: list events failed",
			slog.String("category", string(category)),
			slog.String("error", err.Error()),
		)
		writeError(w, upstreamStatus(err), "failed to fetch events")
		return
	}

	writeJSON(w, http.StatusOK, events)
}

// GetEvent returns a single event by its ID.
// GET /api/event/{id}
func (h *EventsHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	id := pathParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing event id")
		return
	}

	event, err := h.events.GetEvent(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "event not found")
			return
		}
		h.logger.ErrorContext(r.Context(), "handler: get event failed",
			slog.String("event_id", id),
			slog.String("error", err.Error()),
		)
		writeError(w, upstreamStatus(err), "failed to fetch event")
		return
	}

	writeJSON(w, http.StatusOK, event)
}

// upstreamStatus maps upstream failure sentinels to HTTP status codes.
func upstreamStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(err, domain.ErrUpstreamUnavailable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
