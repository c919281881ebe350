package news

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/amapara27/Horizon/internal/domain"
	"github.com/amapara27/Horizon/internal/platform/newsapi"
)

// Searcher is the slice of the news-search client the retriever needs.
type Searcher interface {
	Available() bool
	Search(ctx context.Context, q newsapi.SearchQuery) ([]domain.NewsArticle, error)
}

// redactedTitle marks articles the provider removed after indexing.
const redactedTitle = "[Removed]"

// Options configures a Retriever.
type Options struct {
	Language     string
	LookbackDays int // recency window for outcome-scoped queries
	MaxResults   int

	// Cache and Limiter are optional; nil disables them.
	Cache   domain.NewsCache
	Limiter domain.RateLimiter
}

// Retriever fetches articles for events and outcomes.
type Retriever struct {
	client Searcher
	opts   Options
	logger *slog.Logger
}

// NewRetriever creates a Retriever with defaults of English, a 30 day
// lookback, and 20 results.
func NewRetriever(client Searcher, opts Options, logger *slog.Logger) *Retriever {
	if opts.Language == "" {
		opts.Language = "en"
	}
	if opts.LookbackDays <= 0 {
		opts.LookbackDays = 30
	}
	if opts.MaxResults <= 0 {
		opts.MaxResults = 20
	}
	return &Retriever{
		client: client,
		opts:   opts,
		logger: logger.With(slog.String("component", "news")),
	}
}

// OutcomeNews fetches articles scoped to one outcome of an event. A
// degenerate query skips the network call and returns an empty result with
// the attempted query recorded; that is not an error. A provider failure
// returns an empty article list with the error marker set, which callers can
// tell apart from a clean zero-result run.
func (r *Retriever) OutcomeNews(ctx context.Context, eventTitle, marketQuestion, outcomeName string) domain.NewsResult {
	res := domain.NewsResult{
		Articles: []domain.NewsArticle{},
		Outcome:  outcomeName,
		Question: marketQuestion,
	}

	query := OutcomeQuery(eventTitle, outcomeName)
	res.QueryUsed = query
	if len(query) < 3 {
		return res
	}

	return r.run(ctx, query, res)
}

// EventNews fetches articles for the event as a whole using the broader
// OR-joined query.
func (r *Retriever) EventNews(ctx context.Context, eventTitle string) domain.NewsResult {
	res := domain.NewsResult{Articles: []domain.NewsArticle{}}
	res.QueryUsed = EventQuery(eventTitle)
	return r.run(ctx, res.QueryUsed, res)
}

// run executes the search for a prepared query, consulting the cache and
// rate limiter when configured.
func (r *Retriever) run(ctx context.Context, query string, res domain.NewsResult) domain.NewsResult {
	if !r.client.Available() {
		res.Err = "news provider not configured"
		return res
	}

	if r.opts.Cache != nil {
		if cached, err := r.opts.Cache.Get(ctx, query); err == nil {
			return cached
		} else if !errors.Is(err, domain.ErrNotFound) {
			r.logger.WarnContext(ctx, "news: cache read failed", slog.String("error", err.Error()))
		}
	}

	if r.opts.Limiter != nil {
		ok, err := r.opts.Limiter.Allow(ctx, "newsapi")
		if err != nil {
			r.logger.WarnContext(ctx, "news: rate limiter failed", slog.String("error", err.Error()))
		} else if !ok {
			res.Err = domain.ErrRateLimited.Error()
			return res
		}
	}

	from := time.Now().AddDate(0, 0, -r.opts.LookbackDays)
	articles, err := r.client.Search(ctx, newsapi.SearchQuery{
		Query:    query,
		Language: r.opts.Language,
		SortBy:   "publishedAt",
		PageSize: r.opts.MaxResults,
		From:     from,
	})
	if err != nil {
		r.logger.WarnContext(ctx, "news: search failed",
			slog.String("query", query),
			slog.String("error", err.Error()),
		)
		res.Err = err.Error()
		return res
	}

	res.Articles = FilterRedacted(articles)

	r.logger.InfoContext(ctx, "news: search complete",
		slog.String("query", query),
		slog.Int("articles", len(res.Articles)),
	)

	if r.opts.Cache != nil {
		if err := r.opts.Cache.Set(ctx, query, res); err != nil {
			r.logger.WarnContext(ctx, "news: cache write failed", slog.String("error", err.Error()))
		}
	}

	return res
}

// FilterRedacted drops articles whose title indicates the provider redacted
// them, plus articles with no title at all.
func FilterRedacted(articles []domain.NewsArticle) []domain.NewsArticle {
	out := make([]domain.NewsArticle, 0, len(articles))
	for _, a := range articles {
		if a.Title == "" || strings.Contains(a.Title, redactedTitle) {
			continue
		}
		out = append(out, a)
	}
	return out
}
