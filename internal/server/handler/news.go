package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/amapara27/Horizon/internal/domain"
)

// NewsService resolves related news coverage for an event title.
type NewsService interface {
	EventNews(ctx context.Context, eventTitle string) domain.NewsResult
}

// NewsHandler serves the related-news endpoint.
type NewsHandler struct {
	events EventFinder
	news   NewsService
	logger *slog.Logger
}

// NewNewsHandler creates a NewsHandler with the given services and logger.
func NewNewsHandler(events EventFinder, news NewsService, logger *slog.Logger) *NewsHandler {
	return &NewsHandler{
		events: events,
		news:   news,
		logger: logger,
	}
}

// relatedNewsResponse is the payload for the related-news endpoint.
type relatedNewsResponse struct {
	Articles []domain.NewsArticle `json:"articles"`
	Query    string               `json:"query"`
}

// RelatedNews returns recent news articles related to an event's title.
// Unlike depth, a provider failure here surfaces as an error status so the
// caller can distinguish "no coverage" from "provider down".
// GET /api/event/{id}/news
func (h *NewsHandler) RelatedNews(w http.ResponseWriter, r *http.Request) {
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
		h.logger.ErrorContext(r.Context(), "handler: get event for news failed",
			slog.String("event_id", id),
			slog.String("error", err.Error()),
		)
		writeError(w, upstreamStatus(err), "failed to fetch event")
		return
	}

	result := h.news.EventNews(r.Context(), event.Title)
	if result.Failed() {
		h.logger.ErrorContext(r.Context(), "handler: news lookup failed",
			slog.String("event_id", id),
			slog.String("query", result.QueryUsed),
			slog.String("error", result.Err),
		)
		status := http.StatusBadGateway
		if result.Err == domain.ErrRateLimited.Error() {
			status = http.StatusTooManyRequests
		}
		writeError(w, status, "failed to fetch news")
		return
	}

	articles := result.Articles
	if articles == nil {
		articles = []domain.NewsArticle{}
	}

	writeJSON(w, http.StatusOK, relatedNewsResponse{
		Articles: articles,
		Query:    result.QueryUsed,
	})
}
