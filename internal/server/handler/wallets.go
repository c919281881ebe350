package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/amapara27/Horizon/internal/domain"
)

// WalletService resolves smart wallet positioning for an event.
type WalletService interface {
	SmartWallets(ctx context.Context, eventID string) []domain.WalletPosition
}

// WalletsHandler serves the smart-wallets endpoint.
type WalletsHandler struct {
	wallets WalletService
	logger  *slog.Logger
}

// NewWalletsHandler creates a WalletsHandler with the given service and logger.
func NewWalletsHandler(wallets WalletService, logger *slog.Logger) *WalletsHandler {
	return &WalletsHandler{
		wallets: wallets,
		logger:  logger,
	}
}

// SmartWallets returns notable wallet positions for an event. Provider
// failures degrade to an empty array.
// GET /api/event/{id}/smart-wallets
func (h *WalletsHandler) SmartWallets(w http.ResponseWriter, r *http.Request) {
	id := pathParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing event id")
		return
	}

	positions := h.wallets.SmartWallets(r.Context(), id)
	if positions == nil {
		positions = []domain.WalletPosition{}
	}

	writeJSON(w, http.StatusOK, positions)
}
