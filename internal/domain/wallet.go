package domain

import "context"

// WalletPosition is one trading address holding a position on an event,
// together with the performance stats that make it "smart money".
type WalletPosition struct {
	Address     string  `json:"address"`
	Position    string  `json:"position"` // "YES" or "NO"
	Size        float64 `json:"size"`
	EntryPrice  float64 `json:"entry_price"`
	WinRate     float64 `json:"win_rate"`
	TotalProfit float64 `json:"total_profit"`
	Confidence  string  `json:"confidence"` // "high", "medium", "low"
}

// WalletInsightProvider supplies smart-wallet positions for an event. The
// live implementation derives them from order-book counterparties; the
// synthetic implementation fabricates a deterministic set seeded by the event
// ID. Selection is a config concern, not a fallback chain.
type WalletInsightProvider interface {
	EventWallets(ctx context.Context, event Event) ([]WalletPosition, error)
}
