// Package analysis composes depth, news, sentiment, and wallet signals into
// one ranked, explainable report per event. Every sub-source degrades
// independently; the only terminal failure is an event with no market data.
package analysis

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/amapara27/Horizon/internal/depth"
	"github.com/amapara27/Horizon/internal/domain"
	"github.com/amapara27/Horizon/internal/news"
	"github.com/amapara27/Horizon/internal/sentiment"
)

// EventFetcher is the slice of the Gamma client the orchestrator needs.
type EventFetcher interface {
	GetEvent(ctx context.Context, id string) (domain.Event, error)
}

// DefaultTopOutcomes is how many liquidity-ranked outcomes get the full
// news -> sentiment -> summary pipeline.
const DefaultTopOutcomes = 3

// Options configures an Orchestrator.
type Options struct {
	TopOutcomes int // default 3
	MaxOutcomes int // cap passed to the depth aggregator, default 10
}

// Orchestrator runs the per-request analysis pipeline.
type Orchestrator struct {
	events  EventFetcher
	depth   *depth.Aggregator
	news    *news.Retriever
	scorer  *sentiment.Analyzer
	wallets domain.WalletInsightProvider
	opts    Options
	logger  *slog.Logger
}

// New creates an Orchestrator from its component dependencies.
func New(
	events EventFetcher,
	depthAgg *depth.Aggregator,
	retriever *news.Retriever,
	scorer *sentiment.Analyzer,
	wallets domain.WalletInsightProvider,
	opts Options,
	logger *slog.Logger,
) *Orchestrator {
	if opts.TopOutcomes <= 0 {
		opts.TopOutcomes = DefaultTopOutcomes
	}
	if opts.MaxOutcomes <= 0 {
		opts.MaxOutcomes = depth.DefaultMaxOutcomes
	}
	return &Orchestrator{
		events:  events,
		depth:   depthAgg,
		news:    retriever,
		scorer:  scorer,
		wallets: wallets,
		opts:    opts,
		logger:  logger.With(slog.String("component", "analysis")),
	}
}

// Analyze builds the full report for an event: fetch the event, rank outcomes
// by liquidity, then run the news -> sentiment -> summary pipeline for the
// top-K outcomes in parallel. Outcome sub-pipelines are isolated -- a failure
// on one never cancels its siblings -- and results are reassembled in
// liquidity-rank order.
//
// It returns domain.ErrNotFound when the event has no market data at all;
// upstream event-fetch failures propagate so the handler can surface the
// cause.
func (o *Orchestrator) Analyze(ctx context.Context, eventID string) (domain.AnalysisReport, error) {
	event, err := o.events.GetEvent(ctx, eventID)
	if err != nil {
		return domain.AnalysisReport{}, fmt.Errorf("analysis: fetch event %s: %w", eventID, err)
	}

	ranked := o.depth.FromEvent(event, o.opts.MaxOutcomes)
	if len(ranked) == 0 {
		return domain.AnalysisReport{}, fmt.Errorf("analysis: event %s: no market data: %w", eventID, domain.ErrNotFound)
	}

	top := ranked
	if len(top) > o.opts.TopOutcomes {
		top = top[:o.opts.TopOutcomes]
	}

	reports := make([]domain.OutcomeReport, len(top))
	g, gctx := errgroup.WithContext(ctx)
	for i, d := range top {
		i, d := i, d
		g.Go(func() error {
			reports[i] = o.outcomePipeline(gctx, event, d)
			return nil // sub-pipeline failures degrade in place, never cancel siblings
		})
	}
	_ = g.Wait()

	o.logger.InfoContext(ctx, "analysis: report assembled",
		slog.String("event_id", eventID),
		slog.Int("outcomes", len(reports)),
	)

	return domain.AnalysisReport{Event: event, Outcomes: reports}, nil
}

// outcomePipeline runs news -> sentiment -> summary for one ranked outcome
// and records which sources degraded.
func (o *Orchestrator) outcomePipeline(ctx context.Context, event domain.Event, d domain.OutcomeDepth) domain.OutcomeReport {
	newsRes := o.fetchNews(ctx, event.Title, d)
	sentRes := o.scoreNews(ctx, newsRes.Value, d)
	summary := o.scorer.Summarize(ctx, d.Outcome, sentRes.Value, d)

	report := domain.OutcomeReport{
		Outcome:      d.Outcome,
		CurrentPrice: d.CurrentPrice,
		Depth:        d,
		News:         newsRes.Value,
		Sentiment:    sentRes.Value,
		Summary:      summary,
	}
	for _, res := range []*domain.Degraded{newsRes.Note, sentRes.Note, summaryNote(summary)} {
		if res != nil {
			report.Degraded = append(report.Degraded, *res)
		}
	}
	return report
}

// fetchNews wraps the retriever in a Result so callers can see whether the
// articles are genuine or a provider-failure fallback.
func (o *Orchestrator) fetchNews(ctx context.Context, eventTitle string, d domain.OutcomeDepth) domain.Result[domain.NewsResult] {
	res := o.news.OutcomeNews(ctx, eventTitle, d.MarketQuestion, d.Outcome)
	if res.Failed() {
		return domain.Fallback(res, "news", res.Err)
	}
	return domain.OK(res)
}

// scoreNews wraps the analyzer in a Result. ScoreNews itself never errors;
// degraded runs are detected through their fixed reasoning shapes.
func (o *Orchestrator) scoreNews(ctx context.Context, n domain.NewsResult, d domain.OutcomeDepth) domain.Result[domain.SentimentResult] {
	res := o.scorer.ScoreNews(ctx, n.Articles, d.Outcome, d.MarketQuestion)
	if strings.HasPrefix(res.Reasoning, "Error") || strings.HasPrefix(res.Reasoning, "AI analysis unavailable") {
		return domain.Fallback(res, "sentiment", res.Reasoning)
	}
	return domain.OK(res)
}

func summaryNote(summary string) *domain.Degraded {
	if strings.HasPrefix(summary, "• Error") || strings.HasPrefix(summary, "• AI analysis unavailable") {
		return &domain.Degraded{Component: "summary", Reason: strings.TrimPrefix(summary, "• ")}
	}
	return nil
}

// EventSentiment fetches event-level news and scores it against the event as
// a whole. Used by the news-sentiment endpoint.
func (o *Orchestrator) EventSentiment(ctx context.Context, eventID string) (domain.SentimentResult, error) {
	event, err := o.events.GetEvent(ctx, eventID)
	if err != nil {
		return domain.SentimentResult{}, fmt.Errorf("analysis: fetch event %s: %w", eventID, err)
	}

	res := o.news.EventNews(ctx, event.Title)
	question := event.Title
	if len(event.Markets) > 0 {
		question = event.Markets[0].Question
	}
	return o.scorer.ScoreNews(ctx, res.Articles, event.Title, question), nil
}

// CombinedSentiment merges the event-level news signal with the smart-wallet
// signal under the fixed rubric. A wallet-provider failure degrades to the
// news-only signal.
func (o *Orchestrator) CombinedSentiment(ctx context.Context, eventID string) (domain.CombinedSentiment, error) {
	event, err := o.events.GetEvent(ctx, eventID)
	if err != nil {
		return domain.CombinedSentiment{}, fmt.Errorf("analysis: fetch event %s: %w", eventID, err)
	}

	res := o.news.EventNews(ctx, event.Title)
	question := event.Title
	if len(event.Markets) > 0 {
		question = event.Markets[0].Question
	}
	newsSent := o.scorer.ScoreNews(ctx, res.Articles, event.Title, question)

	wallets, err := o.wallets.EventWallets(ctx, event)
	if err != nil {
		o.logger.WarnContext(ctx, "analysis: wallet provider failed",
			slog.String("event_id", eventID),
			slog.String("error", err.Error()),
		)
		wallets = nil
	}

	return sentiment.Combine(newsSent, wallets), nil
}

// SmartWallets returns the wallet positions for an event. Failures degrade to
// an empty list; the endpoint contract is "empty/fallback array", never 5xx
// for wallet trouble alone.
func (o *Orchestrator) SmartWallets(ctx context.Context, eventID string) []domain.WalletPosition {
	event, err := o.events.GetEvent(ctx, eventID)
	if err != nil {
		o.logger.WarnContext(ctx, "analysis: fetch event for wallets failed",
			slog.String("event_id", eventID),
			slog.String("error", err.Error()),
		)
		return []domain.WalletPosition{}
	}

	wallets, err := o.wallets.EventWallets(ctx, event)
	if err != nil || wallets == nil {
		if err != nil {
			o.logger.WarnContext(ctx, "analysis: wallet provider failed",
				slog.String("event_id", eventID),
				slog.String("error", err.Error()),
			)
		}
		return []domain.WalletPosition{}
	}
	return wallets
}
