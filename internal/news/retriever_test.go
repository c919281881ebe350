package news

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/amapara27/Horizon/internal/domain"
	"github.com/amapara27/Horizon/internal/platform/newsapi"
)

// fakeSearcher records calls and serves canned articles or an error.
type fakeSearcher struct {
	available bool
	articles  []domain.NewsArticle
	err       error

	calls int
	lastQ newsapi.SearchQuery
}

func (f *fakeSearcher) Available() bool { return f.available }

func (f *fakeSearcher) Search(ctx context.Context, q newsapi.SearchQuery) ([]domain.NewsArticle, error) {
	f.calls++
	f.lastQ = q
	if f.err != nil {
		return nil, f.err
	}
	return f.articles, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestOutcomeNewsDegenerateQuerySkipsNetwork(t *testing.T) {
	searcher := &fakeSearcher{available: true}
	r := NewRetriever(searcher, Options{}, testLogger())

	res := r.OutcomeNews(context.Background(), "A b?", "A b?", "")
	if searcher.calls != 0 {
		t.Fatalf("expected no network call for degenerate query, got %d", searcher.calls)
	}
	if res.Failed() {
		t.Errorf("degenerate query should not be an error, got %q", res.Err)
	}
	if len(res.Articles) != 0 {
		t.Errorf("expected no articles, got %d", len(res.Articles))
	}
}

func TestOutcomeNewsRecordsQueryAndScope(t *testing.T) {
	searcher := &fakeSearcher{
		available: true,
		articles: []domain.NewsArticle{
			{Title: "Bitcoin climbs", Source: "wire"},
		},
	}
	r := NewRetriever(searcher, Options{LookbackDays: 30}, testLogger())

	res := r.OutcomeNews(context.Background(), "Will Bitcoin reach 100k?", "Will Bitcoin reach 100k?", "Yes")
	if res.QueryUsed == "" {
		t.Fatal("expected QueryUsed to be recorded")
	}
	if res.Outcome != "Yes" || res.Question != "Will Bitcoin reach 100k?" {
		t.Errorf("result scope = (%q, %q), want outcome and question echoed", res.Outcome, res.Question)
	}
	if searcher.lastQ.Query != res.QueryUsed {
		t.Errorf("search query %q does not match recorded query %q", searcher.lastQ.Query, res.QueryUsed)
	}
	if searcher.lastQ.From.IsZero() {
		t.Error("expected a recency bound on the search")
	}
	if len(res.Articles) != 1 {
		t.Errorf("expected 1 article, got %d", len(res.Articles))
	}
}

func TestRunProviderFailureSetsErr(t *testing.T) {
	searcher := &fakeSearcher{available: true, err: errors.New("boom")}
	r := NewRetriever(searcher, Options{}, testLogger())

	res := r.EventNews(context.Background(), "Will Bitcoin reach 100k?")
	if !res.Failed() {
		t.Fatal("expected Failed() after provider error")
	}
	if len(res.Articles) != 0 {
		t.Errorf("expected empty articles on failure, got %d", len(res.Articles))
	}
}

func TestRunUnconfiguredProvider(t *testing.T) {
	searcher := &fakeSearcher{available: false}
	r := NewRetriever(searcher, Options{}, testLogger())

	res := r.EventNews(context.Background(), "Will Bitcoin reach 100k?")
	if !res.Failed() {
		t.Fatal("expected Failed() when the provider is not configured")
	}
	if searcher.calls != 0 {
		t.Errorf("expected no search call, got %d", searcher.calls)
	}
}

// fakeCache is an in-memory NewsCache.
type fakeCache struct {
	store map[string]domain.NewsResult
	sets  int
}

func (c *fakeCache) Get(ctx context.Context, query string) (domain.NewsResult, error) {
	if res, ok := c.store[query]; ok {
		return res, nil
	}
	return domain.NewsResult{}, domain.ErrNotFound
}

func (c *fakeCache) Set(ctx context.Context, query string, res domain.NewsResult) error {
	c.sets++
	c.store[query] = res
	return nil
}

func TestRunConsultsCache(t *testing.T) {
	searcher := &fakeSearcher{
		available: true,
		articles:  []domain.NewsArticle{{Title: "hit", Source: "wire"}},
	}
	cache := &fakeCache{store: map[string]domain.NewsResult{}}
	r := NewRetriever(searcher, Options{Cache: cache}, testLogger())

	first := r.EventNews(context.Background(), "Will Bitcoin reach 100k?")
	if searcher.calls != 1 || cache.sets != 1 {
		t.Fatalf("first run: calls=%d sets=%d, want 1 and 1", searcher.calls, cache.sets)
	}

	second := r.EventNews(context.Background(), "Will Bitcoin reach 100k?")
	if searcher.calls != 1 {
		t.Fatalf("second run hit the provider; cache not consulted")
	}
	if len(second.Articles) != len(first.Articles) {
		t.Errorf("cached result differs: %d vs %d articles", len(second.Articles), len(first.Articles))
	}
}

// denyLimiter always refuses.
type denyLimiter struct{}

func (denyLimiter) Allow(ctx context.Context, key string) (bool, error) { return false, nil }

func TestRunRateLimited(t *testing.T) {
	searcher := &fakeSearcher{available: true}
	r := NewRetriever(searcher, Options{Limiter: denyLimiter{}}, testLogger())

	res := r.EventNews(context.Background(), "Will Bitcoin reach 100k?")
	if !res.Failed() {
		t.Fatal("expected Failed() when rate limited")
	}
	if searcher.calls != 0 {
		t.Errorf("expected no search call when rate limited, got %d", searcher.calls)
	}
}

func TestFilterRedacted(t *testing.T) {
	in := []domain.NewsArticle{
		{Title: "Real story"},
		{Title: "[Removed]"},
		{Title: ""},
		{Title: "Another real story"},
	}
	got := FilterRedacted(in)
	if len(got) != 2 {
		t.Fatalf("expected 2 articles after filtering, got %d", len(got))
	}
	if got[0].Title != "Real story" || got[1].Title != "Another real story" {
		t.Errorf("unexpected surviving titles: %q, %q", got[0].Title, got[1].Title)
	}
}
