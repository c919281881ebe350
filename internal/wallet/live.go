package wallet

import (
	"context"
	"log/slog"
	"sort"

	"github.com/ethereum/go-ethereum/common"

	"github.com/amapara27/Horizon/internal/domain"
	"github.com/amapara27/Horizon/internal/platform/polymarket"
)

// BookFetcher is the slice of the CLOB client the live provider needs.
type BookFetcher interface {
	GetBook(ctx context.Context, tokenID string) (polymarket.APIBook, error)
}

// exposure tracks one address's resting notional per side.
type exposure struct {
	yes, no    float64
	entrySum   float64
	orderCount int
}

// LiveOrderBookProvider derives wallet positions from resting orders on the
// event's order books: each counterparty address that exposes one becomes a
// position sized by its resting notional. Performance stats (win rate,
// profit) are not available from the public book, so they are reported as
// zero and confidence is derived from size alone.
type LiveOrderBookProvider struct {
	books      BookFetcher
	maxWallets int
	logger     *slog.Logger
}

// NewLiveProvider creates a live provider returning up to maxWallets
// positions (default 4), largest first.
func NewLiveProvider(books BookFetcher, maxWallets int, logger *slog.Logger) *LiveOrderBookProvider {
	if maxWallets <= 0 {
		maxWallets = 4
	}
	return &LiveOrderBookProvider{
		books:      books,
		maxWallets: maxWallets,
		logger:     logger.With(slog.String("component", "wallet_live")),
	}
}

// EventWallets aggregates counterparty exposure across the first token of
// each market. A failed book fetch skips that market; an event whose books
// expose no addresses yields an empty list and a nil error.
func (p *LiveOrderBookProvider) EventWallets(ctx context.Context, event domain.Event) ([]domain.WalletPosition, error) {
	byAddr := make(map[string]*exposure)

	for _, m := range event.Markets {
		if len(m.TokenIDs) == 0 {
			continue
		}
		book, err := p.books.GetBook(ctx, m.TokenIDs[0])
		if err != nil {
			p.logger.WarnContext(ctx, "wallet: book fetch failed",
				slog.String("token_id", m.TokenIDs[0]),
				slog.String("error", err.Error()),
			)
			continue
		}

		// Bids back the YES side of the token; asks back NO.
		accumulate(byAddr, book.Bids, true)
		accumulate(byAddr, book.Asks, false)
	}

	wallets := make([]domain.WalletPosition, 0, len(byAddr))
	for addr, e := range byAddr {
		pos, size := "YES", e.yes
		if e.no > e.yes {
			pos, size = "NO", e.no
		}
		entry := 0.0
		if e.orderCount > 0 {
			entry = e.entrySum / float64(e.orderCount)
		}
		wallets = append(wallets, domain.WalletPosition{
			Address:    addr,
			Position:   pos,
			Size:       size,
			EntryPrice: entry,
			Confidence: confidenceForSize(size),
		})
	}

	sort.Slice(wallets, func(i, j int) bool { return wallets[i].Size > wallets[j].Size })
	if len(wallets) > p.maxWallets {
		wallets = wallets[:p.maxWallets]
	}

	return wallets, nil
}

// accumulate folds one book side into the per-address exposure map. Addresses
// are normalized through go-ethereum's checksummed hex form; orders without a
// counterparty field are skipped.
func accumulate(byAddr map[string]*exposure, orders []polymarket.APIBookOrder, yesSide bool) {
	for _, o := range orders {
		raw := o.Counterparty()
		if raw == "" || !common.IsHexAddress(raw) {
			continue
		}
		addr := common.HexToAddress(raw).Hex()

		e := byAddr[addr]
		if e == nil {
			e = &exposure{}
			byAddr[addr] = e
		}

		lvl := o.Level()
		notional := lvl.Price * lvl.Size
		if yesSide {
			e.yes += notional
		} else {
			e.no += notional
		}
		e.entrySum += lvl.Price
		e.orderCount++
	}
}
