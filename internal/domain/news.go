package domain

import "context"

// NewsArticle is one article returned by the news-search provider. Articles
// whose title was redacted by the provider are filtered out before they reach
// a NewsResult.
type NewsArticle struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Source      string `json:"source"`
	URL         string `json:"url"`
	PublishedAt string `json:"published_at"`
	ImageURL    string `json:"image_url,omitempty"`
}

// NewsResult is the outcome of one news retrieval. Err distinguishes "the
// provider failed" from "the query ran and matched nothing" -- both carry an
// empty Articles slice but only the former sets Err.
type NewsResult struct {
	Articles  []NewsArticle `json:"articles"`
	QueryUsed string        `json:"query_used"`
	Outcome   string        `json:"outcome_name,omitempty"`
	Question  string        `json:"market_question,omitempty"`
	Err       string        `json:"error,omitempty"`
}

// Failed reports whether the retrieval hit a provider error (as opposed to a
// clean zero-result run).
func (r NewsResult) Failed() bool { return r.Err != "" }

// NewsCache is an optional short-TTL cache for news retrievals keyed by the
// search query. Implementations must treat a miss as ErrNotFound.
type NewsCache interface {
	Get(ctx context.Context, query string) (NewsResult, error)
	Set(ctx context.Context, query string, res NewsResult) error
}

// RateLimiter gates outbound calls to an upstream identified by key.
type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}
