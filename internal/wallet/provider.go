package wallet

import (
	"fmt"
	"log/slog"

	"github.com/amapara27/Horizon/internal/domain"
)

// Provider mode names accepted by Select.
const (
	ModeSynthetic = "synthetic"
	ModeLive      = "live"
)

// Select returns the configured WalletInsightProvider implementation. The
// choice is a deployment decision, not a runtime fallback chain.
func Select(mode string, books BookFetcher, maxWallets int, logger *slog.Logger) (domain.WalletInsightProvider, error) {
	switch mode {
	case ModeSynthetic, "":
		return NewSyntheticProvider(maxWallets), nil
	case ModeLive:
		if books == nil {
			return nil, fmt.Errorf("wallet: live provider requires a CLOB client")
		}
		return NewLiveProvider(books, maxWallets, logger), nil
	default:
		return nil, fmt.Errorf("wallet: unknown provider mode %q", mode)
	}
}
