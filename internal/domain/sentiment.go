package domain

// SentimentResult is a -100..+100 judgement over news for one outcome.
// A score of 0 with a "no relevant news" reasoning is the mandatory result
// when no articles exist; negative scores are never derived from absence of
// information.
type SentimentResult struct {
	Score       int    `json:"score"`
	Reasoning   string `json:"reasoning"`
	Probability string `json:"probability_assessment,omitempty"`
}

// CombinedSentiment merges the news signal with the wallet signal into one
// weighted score plus a confidence label describing source agreement.
type CombinedSentiment struct {
	Score       int    `json:"score"`
	NewsScore   int    `json:"news_score"`
	WalletScore int    `json:"wallet_score"`
	Confidence  string `json:"confidence"` // "high", "medium", "low"
	Reasoning   string `json:"reasoning"`
	Probability string `json:"probability_assessment,omitempty"`
}

// OutcomeReport is the per-outcome slice of a full analysis response. It is
// assembled once per request and discarded after the response is written.
type OutcomeReport struct {
	Outcome      string          `json:"outcome"`
	CurrentPrice float64         `json:"current_price"`
	Depth        OutcomeDepth    `json:"market_depth"`
	News         NewsResult      `json:"news"`
	Sentiment    SentimentResult `json:"news_sentiment"`
	Summary      string          `json:"summary"`
	Degraded     []Degraded      `json:"degraded,omitempty"`
}

// AnalysisReport bundles the event passthrough data with the per-outcome
// reports, ordered by liquidity rank.
type AnalysisReport struct {
	Event    Event           `json:"event_data"`
	Outcomes []OutcomeReport `json:"outcomes"`
}
