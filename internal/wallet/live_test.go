package wallet

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/amapara27/Horizon/internal/domain"
	"github.com/amapara27/Horizon/internal/platform/polymarket"
)

// fakeBookFetcher serves canned books keyed by token ID.
type fakeBookFetcher struct {
	books map[string]polymarket.APIBook
	err   error
}

func (f *fakeBookFetcher) GetBook(ctx context.Context, tokenID string) (polymarket.APIBook, error) {
	if f.err != nil {
		return polymarket.APIBook{}, f.err
	}
	return f.books[tokenID], nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func order(addr, price, size string) polymarket.APIBookOrder {
	return polymarket.APIBookOrder{Price: price, Size: size, MakerAddress: addr}
}

const (
	addrA = "0x52908400098527886E0F7030069857D2E4169EE7"
	addrB = "0x8617E340B3D01FA5F11F306F4090FD50E238070D"
)

func TestLiveProviderAggregatesBySide(t *testing.T) {
	fetcher := &fakeBookFetcher{books: map[string]polymarket.APIBook{
		"tok1": {
			Bids: []polymarket.APIBookOrder{
				order(addrA, "0.60", "10000"), // yes notional 6000
			},
			Asks: []polymarket.APIBookOrder{
				order(addrB, "0.40", "5000"), // no notional 2000
			},
		},
	}}
	p := NewLiveProvider(fetcher, 4, testLogger())

	event := domain.Event{
		ID:      "1",
		Markets: []domain.Market{{TokenIDs: []string{"tok1"}}},
	}

	wallets, err := p.EventWallets(context.Background(), event)
	if err != nil {
		t.Fatalf("EventWallets: %v", err)
	}
	if len(wallets) != 2 {
		t.Fatalf("expected 2 wallets, got %d", len(wallets))
	}

	// Largest exposure first.
	if wallets[0].Address != addrA || wallets[0].Position != "YES" || wallets[0].Size != 6000 {
		t.Errorf("wallets[0] = %+v, want addrA YES 6000", wallets[0])
	}
	if wallets[1].Address != addrB || wallets[1].Position != "NO" || wallets[1].Size != 2000 {
		t.Errorf("wallets[1] = %+v, want addrB NO 2000", wallets[1])
	}
}

func TestLiveProviderSkipsInvalidAddresses(t *testing.T) {
	fetcher := &fakeBookFetcher{books: map[string]polymarket.APIBook{
		"tok1": {
			Bids: []polymarket.APIBookOrder{
				order("not-an-address", "0.50", "1000"),
				order("", "0.50", "1000"),
			},
		},
	}}
	p := NewLiveProvider(fetcher, 4, testLogger())

	event := domain.Event{
		ID:      "1",
		Markets: []domain.Market{{TokenIDs: []string{"tok1"}}},
	}

	wallets, err := p.EventWallets(context.Background(), event)
	if err != nil {
		t.Fatalf("EventWallets: %v", err)
	}
	if len(wallets) != 0 {
		t.Fatalf("expected no wallets from invalid addresses, got %d", len(wallets))
	}
}

func TestLiveProviderBookFailureDegrades(t *testing.T) {
	fetcher := &fakeBookFetcher{err: errors.New("boom")}
	p := NewLiveProvider(fetcher, 4, testLogger())

	event := domain.Event{
		ID:      "1",
		Markets: []domain.Market{{TokenIDs: []string{"tok1"}}},
	}

	wallets, err := p.EventWallets(context.Background(), event)
	if err != nil {
		t.Fatalf("expected degraded nil error, got %v", err)
	}
	if len(wallets) != 0 {
		t.Fatalf("expected empty wallets on book failure, got %d", len(wallets))
	}
}

func TestSelect(t *testing.T) {
	fetcher := &fakeBookFetcher{}

	if _, err := Select("", nil, 4, testLogger()); err != nil {
		t.Errorf("empty mode should default to synthetic: %v", err)
	}
	if _, err := Select(ModeSynthetic, nil, 4, testLogger()); err != nil {
		t.Errorf("synthetic: %v", err)
	}
	if _, err := Select(ModeLive, fetcher, 4, testLogger()); err != nil {
		t.Errorf("live with books: %v", err)
	}
	if _, err := Select(ModeLive, nil, 4, testLogger()); err == nil {
		t.Error("live without books should fail")
	}
	if _, err := Select("bogus", nil, 4, testLogger()); err == nil {
		t.Error("unknown mode should fail")
	}
}
