package domain

// LiquidityLevel is the qualitative bucket for a market's liquidity amount.
type LiquidityLevel string

const (
	LiquidityNone      LiquidityLevel = "No Liquidity"
	LiquidityVeryThin  LiquidityLevel = "Very Thin"
	LiquidityThin      LiquidityLevel = "Thin"
	LiquidityGood      LiquidityLevel = "Good"
	LiquidityExcellent LiquidityLevel = "Excellent"
)

// OutcomeDepth is the per-outcome liquidity view derived for a single request.
// Score and Level are a pure function of Liquidity; CurrentPrice is in cents
// (0-100).
type OutcomeDepth struct {
	Outcome        string         `json:"outcome"`
	MarketQuestion string         `json:"market_question"`
	Liquidity      float64        `json:"liquidity"`
	LiquidityScore int            `json:"liquidity_score"`
	LiquidityLevel LiquidityLevel `json:"liquidity_level"`
	Reasoning      string         `json:"reasoning"`
	CurrentPrice   float64        `json:"current_price"`
}

// PriceLevel is a single price+size entry in an order book side.
type PriceLevel struct {
	Price float64 `json:"price"`
	Size  float64 `json:"size"`
}

// BookDepth summarizes a live order book for one outcome token: aggregate
// volumes, notional liquidity over both sides, counterparty count, and the
// touch. A side that is missing contributes zero to the aggregates.
type BookDepth struct {
	Outcome        string  `json:"outcome"`
	TokenID        string  `json:"token_id"`
	BidVolume      float64 `json:"bid_volume"`
	AskVolume      float64 `json:"ask_volume"`
	TotalLiquidity float64 `json:"total_liquidity"`
	Counterparties int     `json:"counterparties"`
	BestBid        float64 `json:"best_bid"`
	BestAsk        float64 `json:"best_ask"`
	Spread         float64 `json:"spread"`
	TopDepth       float64 `json:"top_depth"` // size across the top 5 orders per side
}
