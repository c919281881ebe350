package depth

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/amapara27/Horizon/internal/domain"
	"github.com/amapara27/Horizon/internal/platform/polymarket"
)

// BookFetcher is the slice of the CLOB client the book aggregator needs.
type BookFetcher interface {
	GetBook(ctx context.Context, tokenID string) (polymarket.APIBook, error)
}

// topOrders is how many orders per side count toward TopDepth.
const topOrders = 5

// BookAggregator computes live order-book statistics per outcome.
type BookAggregator struct {
	books  BookFetcher
	events EventFetcher
	logger *slog.Logger
}

// NewBookAggregator creates a BookAggregator over the given CLOB source. The
// event fetcher backs EventBooksByID lookups.
func NewBookAggregator(books BookFetcher, events EventFetcher, logger *slog.Logger) *BookAggregator {
	return &BookAggregator{
		books:  books,
		events: events,
		logger: logger.With(slog.String("component", "depth_book")),
	}
}

// EventBooksByID resolves the event and summarizes its order books. A failed
// event lookup degrades to an empty result, matching EventDepth.
func (b *BookAggregator) EventBooksByID(ctx context.Context, eventID string) []domain.BookDepth {
	event, err := b.events.GetEvent(ctx, eventID)
	if err != nil {
		b.logger.WarnContext(ctx, "depth: event fetch for books failed",
			slog.String("event_id", eventID),
			slog.String("error", err.Error()),
		)
		return []domain.BookDepth{}
	}
	return b.EventBooks(ctx, event)
}

// EventBooks fetches the live order book for each outcome's first token and
// summarizes it. Fetches run in parallel; an individual book failure skips
// that outcome (logged) while the rest complete, and results come back in the
// input outcome order.
func (b *BookAggregator) EventBooks(ctx context.Context, event domain.Event) []domain.BookDepth {
	multi := event.MultiOutcome()

	type slot struct {
		depth domain.BookDepth
		ok    bool
	}
	slots := make([]slot, len(event.Markets))

	g, gctx := errgroup.WithContext(ctx)
	for i, m := range event.Markets {
		if len(m.TokenIDs) == 0 {
			continue
		}
		i, m := i, m
		g.Go(func() error {
			book, err := b.books.GetBook(gctx, m.TokenIDs[0])
			if err != nil {
				// Skip this outcome, keep the siblings.
				b.logger.WarnContext(gctx, "depth: book fetch failed",
					slog.String("token_id", m.TokenIDs[0]),
					slog.String("error", err.Error()),
				)
				return nil
			}
			slots[i] = slot{depth: summarizeBook(outcomeName(m, multi), m.TokenIDs[0], book), ok: true}
			return nil
		})
	}
	_ = g.Wait() // workers never return errors; they degrade per slot

	out := make([]domain.BookDepth, 0, len(slots))
	for _, s := range slots {
		if s.ok {
			out = append(out, s.depth)
		}
	}
	return out
}

// summarizeBook reduces a raw book to its depth statistics. A missing side
// contributes zero to every aggregate.
func summarizeBook(outcome, tokenID string, book polymarket.APIBook) domain.BookDepth {
	d := domain.BookDepth{
		Outcome: outcome,
		TokenID: tokenID,
	}

	seen := make(map[string]struct{})

	for i, o := range book.Bids {
		lvl := o.Level()
		d.BidVolume += lvl.Size
		d.TotalLiquidity += lvl.Size * lvl.Price
		if lvl.Price > d.BestBid {
			d.BestBid = lvl.Price
		}
		if i < topOrders {
			d.TopDepth += lvl.Size
		}
		if addr := o.Counterparty(); addr != "" {
			seen[addr] = struct{}{}
		}
	}

	for i, o := range book.Asks {
		lvl := o.Level()
		d.AskVolume += lvl.Size
		d.TotalLiquidity += lvl.Size * lvl.Price
		if d.BestAsk == 0 || lvl.Price < d.BestAsk {
			d.BestAsk = lvl.Price
		}
		if i < topOrders {
			d.TopDepth += lvl.Size
		}
		if addr := o.Counterparty(); addr != "" {
			seen[addr] = struct{}{}
		}
	}

	if d.BestBid > 0 && d.BestAsk > 0 {
		d.Spread = d.BestAsk - d.BestBid
	}
	d.Counterparties = len(seen)

	return d
}
