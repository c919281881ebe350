package depth

import (
	"context"
	"log/slog"
	"math"
	"sort"
	"time"

	"github.com/amapara27/Horizon/internal/domain"
)

// EventFetcher is the slice of the Gamma client the aggregator needs.
type EventFetcher interface {
	GetEvent(ctx context.Context, id string) (domain.Event, error)
}

// DefaultMaxOutcomes caps how many markets of an event are scored when the
// caller does not pass an explicit cap.
const DefaultMaxOutcomes = 10

// fetchTimeout bounds the upstream event fetch.
const fetchTimeout = 10 * time.Second

// Aggregator derives ranked OutcomeDepth entries for an event.
type Aggregator struct {
	events EventFetcher
	logger *slog.Logger
}

// NewAggregator creates an Aggregator over the given event source.
func NewAggregator(events EventFetcher, logger *slog.Logger) *Aggregator {
	return &Aggregator{
		events: events,
		logger: logger.With(slog.String("component", "depth")),
	}
}

// EventDepth fetches the event and scores each market's liquidity, returning
// outcomes sorted by liquidity descending (ties keep original market order).
//
// "No market data" is a valid, non-fatal outcome: a fetch failure or an event
// with zero markets returns an empty slice and a nil error. The cause is
// logged, never raised.
func (a *Aggregator) EventDepth(ctx context.Context, eventID string, maxOutcomes int) []domain.OutcomeDepth {
	if maxOutcomes <= 0 {
		maxOutcomes = DefaultMaxOutcomes
	}

	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	event, err := a.events.GetEvent(ctx, eventID)
	if err != nil {
		a.logger.WarnContext(ctx, "depth: event fetch failed",
			slog.String("event_id", eventID),
			slog.String("error", err.Error()),
		)
		return []domain.OutcomeDepth{}
	}

	return a.FromEvent(event, maxOutcomes)
}

// FromEvent scores the markets of an already-fetched event. Split out so the
// orchestrator can reuse its one event fetch.
func (a *Aggregator) FromEvent(event domain.Event, maxOutcomes int) []domain.OutcomeDepth {
	if maxOutcomes <= 0 {
		maxOutcomes = DefaultMaxOutcomes
	}
	if len(event.Markets) == 0 {
		a.logger.Warn("depth: event has no markets", slog.String("event_id", event.ID))
		return []domain.OutcomeDepth{}
	}

	multi := event.MultiOutcome()

	out := make([]domain.OutcomeDepth, 0, min(len(event.Markets), maxOutcomes))
	for i, m := range event.Markets {
		if i >= maxOutcomes {
			break
		}

		name := outcomeName(m, multi)
		liquidity := m.Liquidity
		if liquidity < 0 || math.IsNaN(liquidity) {
			liquidity = 0
		}

		score, level, why := Score(liquidity)

		out = append(out, domain.OutcomeDepth{
			Outcome:        name,
			MarketQuestion: m.Question,
			Liquidity:      round2(liquidity),
			LiquidityScore: score,
			LiquidityLevel: level,
			Reasoning:      why,
			CurrentPrice:   round1(m.OutcomePrices[0] * 100),
		})
	}

	// Stable: tied liquidity amounts keep original market order.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Liquidity > out[j].Liquidity
	})

	return out
}

// outcomeName resolves the display name for a market's first outcome. For
// multi-outcome events the group label is the outcome name; a missing label
// falls back to the market question.
func outcomeName(m domain.Market, multi bool) string {
	if multi {
		if m.GroupTitle != "" {
			return m.GroupTitle
		}
		return m.Question
	}
	if m.Outcomes[0] != "" {
		return m.Outcomes[0]
	}
	return "Yes"
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round1(v float64) float64 { return math.Round(v*10) / 10 }
