package analysis

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/amapara27/Horizon/internal/domain"
	"github.com/amapara27/Horizon/internal/platform/polymarket"
)

// Category identifies a preset event listing.
type Category string

const (
	CategoryNew      Category = "new"
	CategoryTrending Category = "trending"
	CategoryCrypto   Category = "crypto"
)

// defaultCryptoTag is the Gamma tag used to scope listings to crypto events.
const defaultCryptoTag = "21"

// EventLister fetches event listings from the upstream markets API.
type EventLister interface {
	GetEvents(ctx context.Context, q polymarket.EventsQuery) ([]domain.Event, error)
}

// Catalog serves preset event listings (new, trending, crypto) on top of the
// Gamma events API.
type Catalog struct {
	events    EventLister
	cryptoTag string
	logger    *slog.Logger
}

// NewCatalog creates a Catalog backed by the given event lister. An empty
// cryptoTag selects the default Gamma crypto tag.
func NewCatalog(events EventLister, cryptoTag string, logger *slog.Logger) *Catalog {
	if cryptoTag == "" {
		cryptoTag = defaultCryptoTag
	}
	return &Catalog{
		events:    events,
		cryptoTag: cryptoTag,
		logger:    logger,
	}
}

// ListCategory returns open events for the given category preset. A limit of
// zero or less selects the category default (5 for new and crypto, 20 for
// trending).
func (c *Catalog) ListCategory(ctx context.Context, category Category, limit int) ([]domain.Event, error) {
	q := polymarket.EventsQuery{Closed: false}

	switch category {
	case CategoryNew:
		q.Order = "id"
		q.Ascending = false
		q.Limit = 5
	case CategoryTrending:
		q.Order = "volume24hr"
		q.Ascending = false
		q.Limit = 20
	case CategoryCrypto:
		q.Order = "id"
		q.Ascending = false
		q.Limit = 5
		q.TagID = c.cryptoTag
	default:
		return nil, fmt.Errorf("analysis: unknown event category %q", category)
	}

	if limit > 0 {
		q.Limit = limit
	}

	events, err := c.events.GetEvents(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("analysis: list %s events: %w", category, err)
	}

	c.logger.DebugContext(ctx, "event listing fetched",
		slog.String("category", string(category)),
		slog.Int("count", len(events)),
	)
	return events, nil
}
