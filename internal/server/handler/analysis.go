package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/amapara27/Horizon/internal/domain"
)

// AnalysisService runs the full per-event analysis pipeline.
type AnalysisService interface {
	Analyze(ctx context.Context, eventID string) (domain.AnalysisReport, error)
}

// AnalysisHandler serves the full-analysis endpoint.
type AnalysisHandler struct {
	analysis AnalysisService
	logger   *slog.Logger
}

// NewAnalysisHandler creates an AnalysisHandler with the given service and
// logger.
func NewAnalysisHandler(analysis AnalysisService, logger *slog.Logger) *AnalysisHandler {
	return &AnalysisHandler{
		analysis: analysis,
		logger:   logger,
	}
}

// Analyze returns the complete analysis report for an event: liquidity-ranked
// outcomes, each with depth, news, sentiment and a summary.
// GET /api/event/{id}/analysis
func (h *AnalysisHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	id := pathParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing event id")
		return
	}

	report, err := h.analysis.Analyze(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "event not found or has no analyzable markets")
			return
		}
		h.logger.ErrorContext(r.Context(), "handler: analyze failed",
			slog.String("event_id", id),
			slog.String("error", err.Error()),
		)
		writeError(w, upstreamStatus(err), "analysis failed: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, report)
}
