package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/amapara27/Horizon/internal/domain"
)

// SentimentService defines the sentiment operations the handler requires
// from the orchestration layer.
type SentimentService interface {
	EventSentiment(ctx context.Context, eventID string) (domain.SentimentResult, error)
	CombinedSentiment(ctx context.Context, eventID string) (domain.CombinedSentiment, error)
}

// SentimentHandler serves news-sentiment and combined-sentiment endpoints.
type SentimentHandler struct {
	sentiment SentimentService
	logger    *slog.Logger
}

// NewSentimentHandler creates a SentimentHandler with the given service and
// logger.
func NewSentimentHandler(sentiment SentimentService, logger *slog.Logger) *SentimentHandler {
	return &SentimentHandler{
		sentiment: sentiment,
		logger:    logger,
	}
}

// NewsSentiment returns the AI news-sentiment score for an event.
// GET /api/event/{id}/news-sentiment
func (h *SentimentHandler) NewsSentiment(w http.ResponseWriter, r *http.Request) {
	id := pathParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing event id")
		return
	}

	result, err := h.sentiment.EventSentiment(r.Context(), id)
	if err != nil {
		h.sentimentError(w, r, id, "news sentiment", err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// CombinedSentiment returns the weighted blend of news sentiment and smart
// wallet positioning for an event.
// GET /api/event/{id}/combined-sentiment
func (h *SentimentHandler) CombinedSentiment(w http.ResponseWriter, r *http.Request) {
	id := pathParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing event id")
		return
	}

	result, err := h.sentiment.CombinedSentiment(r.Context(), id)
	if err != nil {
		h.sentimentError(w, r, id, "combined sentiment", err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *SentimentHandler) sentimentError(w http.ResponseWriter, r *http.Request, id, op string, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		writeError(w, http.StatusNotFound, "event not found")
		return
	}
	h.logger.ErrorContext(r.Context(), "handler: "+op+" failed",
		slog.String("event_id", id),
		slog.String("error", err.Error()),
	)
	writeError(w, upstreamStatus(err), "failed to compute "+op)
}
