package polymarket

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/amapara27/Horizon/internal/domain"
)

// flexBool unmarshals from JSON bool or string ("true"/"false") so Gamma API
// responses work whether "active" is sent as bool or string.
type flexBool bool

func (f *flexBool) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*f = flexBool(b)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*f = flexBool(strings.EqualFold(s, "true") || s == "1")
	return nil
}

// flexFloat unmarshals from a JSON number or a numeric string. The Gamma API
// sends "liquidityNum" as a number but "volume" and "liquidity" as strings
// depending on endpoint revision; malformed values decode to zero rather than
// failing the surrounding record.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(data []byte) error {
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*f = flexFloat(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*f = 0
		return nil
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*f = 0
		return nil
	}
	*f = flexFloat(n)
	return nil
}

// --------------------------------------------------------------------------
// Gamma API DTOs
// --------------------------------------------------------------------------

// APIEvent represents an event as returned by the Polymarket Gamma API.
// An event groups one or more related markets.
type APIEvent struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Slug        string      `json:"slug"`
	Description string      `json:"description"`
	Active      flexBool    `json:"active"`
	Closed      bool        `json:"closed"`
	Volume      flexFloat   `json:"volume"`
	Liquidity   flexFloat   `json:"liquidity"`
	Markets     []APIMarket `json:"markets"`
}

// APIMarket represents a market as returned by the Polymarket Gamma API.
// Outcomes, OutcomePrices, and ClobTokenIDs arrive as JSON-encoded strings
// (e.g. "[\"Yes\",\"No\"]") and are decoded with safe defaults.
type APIMarket struct {
	ID             string    `json:"id"`
	Question       string    `json:"question"`
	GroupItemTitle string    `json:"groupItemTitle"`
	Outcomes       string    `json:"outcomes"`
	OutcomePrices  string    `json:"outcomePrices"`
	LiquidityNum   flexFloat `json:"liquidityNum"`
	ClobTokenIDs   string    `json:"clobTokenIds"`
	BestBid        flexFloat `json:"bestBid"`
	BestAsk        flexFloat `json:"bestAsk"`
	Active         flexBool  `json:"active"`
	Closed         bool      `json:"closed"`
}

// ToDomainEvent converts an APIEvent to a domain.Event, decoding each market
// with per-record defaults so one malformed market never drops the event.
func (e *APIEvent) ToDomainEvent() domain.Event {
	ev := domain.Event{
		ID:          e.ID,
		Title:       e.Title,
		Slug:        e.Slug,
		Description: e.Description,
		Volume:      float64(e.Volume),
		Liquidity:   float64(e.Liquidity),
	}
	for i := range e.Markets {
		ev.Markets = append(ev.Markets, e.Markets[i].ToDomainMarket())
	}
	return ev
}

// ToDomainMarket converts a Gamma APIMarket to a domain.Market. Missing or
// malformed outcome/price arrays degrade to "Yes"/"No" and zero prices.
func (m *APIMarket) ToDomainMarket() domain.Market {
	dm := domain.Market{
		ID:         m.ID,
		Question:   m.Question,
		GroupTitle: m.GroupItemTitle,
		Outcomes:   [2]string{"Yes", "No"},
		Liquidity:  float64(m.LiquidityNum),
	}

	if names := decodeStringArray(m.Outcomes); len(names) > 0 {
		for i := 0; i < 2 && i < len(names); i++ {
			dm.Outcomes[i] = names[i]
		}
	}

	for i, p := range decodeStringArray(m.OutcomePrices) {
		if i >= 2 {
			break
		}
		if v, err := strconv.ParseFloat(p, 64); err == nil {
			dm.OutcomePrices[i] = v
		}
	}

	dm.TokenIDs = decodeStringArray(m.ClobTokenIDs)

	return dm
}

// decodeStringArray decodes a JSON-encoded string array field. It returns nil
// for empty or malformed input; elements that are numbers are stringified.
func decodeStringArray(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	if err := json.Unmarshal([]byte(raw), &out); err == nil {
		return out
	}
	// Some revisions send ["0.5", 0.5] style mixed arrays.
	var mixed []any
	if err := json.Unmarshal([]byte(raw), &mixed); err != nil {
		return nil
	}
	for _, v := range mixed {
		switch t := v.(type) {
		case string:
			out = append(out, t)
		case float64:
			out = append(out, strconv.FormatFloat(t, 'f', -1, 64))
		}
	}
	return out
}

// --------------------------------------------------------------------------
// CLOB API DTOs
// --------------------------------------------------------------------------

// APIBook is an order-book snapshot as returned by the CLOB /book endpoint.
type APIBook struct {
	Market    string         `json:"market"`
	AssetID   string         `json:"asset_id"`
	Bids      []APIBookOrder `json:"bids"`
	Asks      []APIBookOrder `json:"asks"`
	Timestamp string         `json:"timestamp"`
}

// APIBookOrder is a single resting order. The counterparty address has moved
// between field names across CLOB revisions, so all known spellings are
// decoded and Counterparty picks the first non-empty one.
type APIBookOrder struct {
	Price        string `json:"price"`
	Size         string `json:"size"`
	MakerAddress string `json:"maker_address"`
	Owner        string `json:"owner"`
	Address      string `json:"address"`
}

// Counterparty returns the order's counterparty address, trying each known
// field name in turn. Empty string means the book does not expose one.
func (o APIBookOrder) Counterparty() string {
	for _, v := range []string{o.MakerAddress, o.Owner, o.Address} {
		if v != "" {
			return v
		}
	}
	return ""
}

// Level converts the order to a domain.PriceLevel, defaulting malformed
// numbers to zero.
func (o APIBookOrder) Level() domain.PriceLevel {
	p, _ := strconv.ParseFloat(o.Price, 64)
	s, _ := strconv.ParseFloat(o.Size, 64)
	return domain.PriceLevel{Price: p, Size: s}
}
