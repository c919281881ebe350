package analysis

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/amapara27/Horizon/internal/depth"
	"github.com/amapara27/Horizon/internal/domain"
	"github.com/amapara27/Horizon/internal/news"
	"github.com/amapara27/Horizon/internal/platform/newsapi"
	"github.com/amapara27/Horizon/internal/platform/polymarket"
	"github.com/amapara27/Horizon/internal/sentiment"
)

// fakeEvents serves canned events keyed by ID.
type fakeEvents struct {
	events map[string]domain.Event
	err    error
}

func (f *fakeEvents) GetEvent(ctx context.Context, id string) (domain.Event, error) {
	if f.err != nil {
		return domain.Event{}, f.err
	}
	ev, ok := f.events[id]
	if !ok {
		return domain.Event{}, domain.ErrNotFound
	}
	return ev, nil
}

func (f *fakeEvents) GetEvents(ctx context.Context, q polymarket.EventsQuery) ([]domain.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]domain.Event, 0, len(f.events))
	for _, ev := range f.events {
		out = append(out, ev)
	}
	return out, nil
}

// fakeSearcher serves canned articles.
type fakeSearcher struct {
	articles []domain.NewsArticle
	err      error
}

func (f *fakeSearcher) Available() bool { return true }

func (f *fakeSearcher) Search(ctx context.Context, q newsapi.SearchQuery) ([]domain.NewsArticle, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.articles, nil
}

// fakeCompleter answers every prompt with the same JSON.
type fakeCompleter struct {
	response string
	err      error
}

func (f *fakeCompleter) Available() bool { return true }

func (f *fakeCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

// fakeWallets serves a fixed wallet list or an error.
type fakeWallets struct {
	wallets []domain.WalletPosition
	err     error
}

func (f *fakeWallets) EventWallets(ctx context.Context, event domain.Event) ([]domain.WalletPosition, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.wallets, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func buildOrchestrator(events *fakeEvents, searcher *fakeSearcher, llm *fakeCompleter, wallets *fakeWallets) *Orchestrator {
	logger := testLogger()
	return New(
		events,
		depth.NewAggregator(events, logger),
		news.NewRetriever(searcher, news.Options{}, logger),
		sentiment.NewAnalyzer(llm, logger),
		wallets,
		Options{},
		logger,
	)
}

func testEvent() domain.Event {
	return domain.Event{
		ID:    "903193",
		Title: "Will Bitcoin reach 100k before December?",
		Markets: []domain.Market{
			{
				ID:            "m1",
				Question:      "Will Bitcoin reach 100k before December?",
				Outcomes:      [2]string{"Yes", "No"},
				OutcomePrices: [2]float64{0.65, 0.35},
				Liquidity:     15000,
			},
		},
	}
}

func TestAnalyzeHappyPath(t *testing.T) {
	events := &fakeEvents{events: map[string]domain.Event{"903193": testEvent()}}
	searcher := &fakeSearcher{articles: []domain.NewsArticle{{Title: "Bitcoin rallies", Source: "wire"}}}
	llm := &fakeCompleter{response: `{"score": 40, "reasoning": "positive", "summary": "• Looks solid"}`}
	wallets := &fakeWallets{}

	o := buildOrchestrator(events, searcher, llm, wallets)

	report, err := o.Analyze(context.Background(), "903193")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if report.Event.ID != "903193" {
		t.Errorf("report event ID = %q", report.Event.ID)
	}
	if len(report.Outcomes) != 1 {
		t.Fatalf("expected 1 outcome report, got %d", len(report.Outcomes))
	}

	out := report.Outcomes[0]
	if out.Sentiment.Score != 40 {
		t.Errorf("sentiment score = %d, want 40", out.Sentiment.Score)
	}
	if out.Depth.LiquidityScore != 70 {
		t.Errorf("liquidity score = %d, want 70", out.Depth.LiquidityScore)
	}
	if len(out.Degraded) != 0 {
		t.Errorf("unexpected degradations: %+v", out.Degraded)
	}
}

func TestAnalyzeUnknownEvent(t *testing.T) {
	events := &fakeEvents{events: map[string]domain.Event{}}
	o := buildOrchestrator(events, &fakeSearcher{}, &fakeCompleter{}, &fakeWallets{})

	_, err := o.Analyze(context.Background(), "nope")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAnalyzeEventWithNoMarkets(t *testing.T) {
	events := &fakeEvents{events: map[string]domain.Event{
		"1": {ID: "1", Title: "Empty event"},
	}}
	o := buildOrchestrator(events, &fakeSearcher{}, &fakeCompleter{}, &fakeWallets{})

	_, err := o.Analyze(context.Background(), "1")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for zero markets, got %v", err)
	}
}

func TestAnalyzeNewsFailureDegradesNotFails(t *testing.T) {
	events := &fakeEvents{events: map[string]domain.Event{"903193": testEvent()}}
	searcher := &fakeSearcher{err: errors.New("provider down")}
	llm := &fakeCompleter{response: `{"score": 0, "reasoning": "n/a", "summary": "• No data"}`}

	o := buildOrchestrator(events, searcher, llm, &fakeWallets{})

	report, err := o.Analyze(context.Background(), "903193")
	if err != nil {
		t.Fatalf("Analyze should not fail on news trouble: %v", err)
	}

	out := report.Outcomes[0]
	if !out.News.Failed() {
		t.Error("expected the news result to carry its failure marker")
	}
	if out.Sentiment.Score != 0 {
		t.Errorf("sentiment score = %d, want neutral 0", out.Sentiment.Score)
	}

	var degradedNews bool
	for _, d := range out.Degraded {
		if d.Component == "news" {
			degradedNews = true
		}
	}
	if !degradedNews {
		t.Errorf("degradations %+v missing news entry", out.Degraded)
	}
}

func TestAnalyzeRanksAndCapsOutcomes(t *testing.T) {
	event := domain.Event{
		ID:    "1",
		Title: "Who wins?",
		Markets: []domain.Market{
			{Question: "A?", GroupTitle: "A", Outcomes: [2]string{"Yes", "No"}, Liquidity: 100},
			{Question: "B?", GroupTitle: "B", Outcomes: [2]string{"Yes", "No"}, Liquidity: 50000},
			{Question: "C?", GroupTitle: "C", Outcomes: [2]string{"Yes", "No"}, Liquidity: 2000},
			{Question: "D?", GroupTitle: "D", Outcomes: [2]string{"Yes", "No"}, Liquidity: 800},
		},
	}
	events := &fakeEvents{events: map[string]domain.Event{"1": event}}
	llm := &fakeCompleter{response: `{"score": 10, "reasoning": "r", "summary": "• s"}`}

	o := buildOrchestrator(events, &fakeSearcher{}, llm, &fakeWallets{})

	report, err := o.Analyze(context.Background(), "1")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if len(report.Outcomes) != DefaultTopOutcomes {
		t.Fatalf("expected top %d outcomes, got %d", DefaultTopOutcomes, len(report.Outcomes))
	}

	want := []string{"B", "C", "D"}
	for i, name := range want {
		if report.Outcomes[i].Outcome != name {
			t.Errorf("outcome[%d] = %q, want %q", i, report.Outcomes[i].Outcome, name)
		}
	}
}

func TestEventSentiment(t *testing.T) {
	events := &fakeEvents{events: map[string]domain.Event{"903193": testEvent()}}
	searcher := &fakeSearcher{articles: []domain.NewsArticle{{Title: "story", Source: "wire"}}}
	llm := &fakeCompleter{response: `{"score": -20, "reasoning": "bearish"}`}

	o := buildOrchestrator(events, searcher, llm, &fakeWallets{})

	got, err := o.EventSentiment(context.Background(), "903193")
	if err != nil {
		t.Fatalf("EventSentiment: %v", err)
	}
	if got.Score != -20 || got.Reasoning != "bearish" {
		t.Errorf("got (%d, %q)", got.Score, got.Reasoning)
	}
}

func TestCombinedSentimentWalletFailureDegrades(t *testing.T) {
	events := &fakeEvents{events: map[string]domain.Event{"903193": testEvent()}}
	searcher := &fakeSearcher{articles: []domain.NewsArticle{{Title: "story", Source: "wire"}}}
	llm := &fakeCompleter{response: `{"score": 50, "reasoning": "bullish"}`}
	wallets := &fakeWallets{err: errors.New("no wallet data")}

	o := buildOrchestrator(events, searcher, llm, wallets)

	got, err := o.CombinedSentiment(context.Background(), "903193")
	if err != nil {
		t.Fatalf("CombinedSentiment should degrade, not fail: %v", err)
	}
	if got.WalletScore != 0 {
		t.Errorf("wallet score = %d, want 0 after provider failure", got.WalletScore)
	}
	// 50*0.6 + 0*0.4 = 30
	if got.Score != 30 {
		t.Errorf("combined score = %d, want 30", got.Score)
	}
	if got.Confidence != "medium" {
		t.Errorf("confidence = %q, want medium", got.Confidence)
	}
}

func TestSmartWalletsDegradesToEmpty(t *testing.T) {
	events := &fakeEvents{events: map[string]domain.Event{"903193": testEvent()}}
	wallets := &fakeWallets{err: errors.New("boom")}

	o := buildOrchestrator(events, &fakeSearcher{}, &fakeCompleter{}, wallets)

	got := o.SmartWallets(context.Background(), "903193")
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", got)
	}

	missing := o.SmartWallets(context.Background(), "unknown")
	if missing == nil || len(missing) != 0 {
		t.Fatalf("expected empty slice for unknown event, got %v", missing)
	}
}

func TestCatalogPresets(t *testing.T) {
	events := &fakeEvents{events: map[string]domain.Event{"1": testEvent()}}
	c := NewCatalog(events, "", testLogger())

	for _, category := range []Category{CategoryNew, CategoryTrending, CategoryCrypto} {
		got, err := c.ListCategory(context.Background(), category, 0)
		if err != nil {
			t.Errorf("ListCategory(%s): %v", category, err)
		}
		if len(got) != 1 {
			t.Errorf("ListCategory(%s) returned %d events", category, len(got))
		}
	}

	if _, err := c.ListCategory(context.Background(), "bogus", 0); err == nil {
		t.Error("expected error for unknown category")
	}

	var sawTitle bool
	got, _ := c.ListCategory(context.Background(), CategoryNew, 3)
	for _, ev := range got {
		if strings.Contains(ev.Title, "Bitcoin") {
			sawTitle = true
		}
	}
	if !sawTitle {
		t.Error("listing lost event titles")
	}
}
