// Package domain defines the core types shared across Horizon: events and
// markets fetched from the market-data provider, derived depth and sentiment
// results, and the sentinel errors used at component boundaries. Everything
// here is request-scoped; nothing is persisted or mutated after construction.
package domain

// Event is a top-level prediction-market question as served by the Gamma API.
// An event groups one or more binary markets; multi-outcome events carry one
// market per outcome slice. Events are fetched fresh per request and never
// cached or mutated locally.
type Event struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Slug        string   `json:"slug,omitempty"`
	Description string   `json:"description,omitempty"`
	Volume      float64  `json:"volume"`
	Liquidity   float64  `json:"liquidity"`
	Markets     []Market `json:"markets"`
}

// Market is one binary outcome slice of an Event with its own price and
// liquidity. GroupTitle is the outcome display name on multi-outcome events.
type Market struct {
	ID            string     `json:"id"`
	Question      string     `json:"question"`
	GroupTitle    string     `json:"group_title,omitempty"`
	Outcomes      [2]string  `json:"outcomes"`
	OutcomePrices [2]float64 `json:"outcome_prices"`
	Liquidity     float64    `json:"liquidity"`
	TokenIDs      []string   `json:"token_ids,omitempty"`
}

// MultiOutcome reports whether the event is a multi-outcome event: more than
// one market where the first market carries a non-empty group label.
func (e *Event) MultiOutcome() bool {
	return len(e.Markets) > 1 && e.Markets[0].GroupTitle != ""
}
