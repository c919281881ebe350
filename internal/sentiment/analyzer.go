// Package sentiment wraps the external text-completion service with the
// contracts Horizon enforces around it: empty news short-circuits to a
// neutral score without a call, unavailability and parse failures degrade to
// neutral results with explanatory reasoning, and the combined rubric merges
// news and wallet signals with fixed weights.
package sentiment

import (
	"context"
	"log/slog"

	"github.com/amapara27/Horizon/internal/domain"
)

// Completer is the slice of the completion client the analyzer needs.
type Completer interface {
	Available() bool
	Complete(ctx context.Context, prompt string) (string, error)
}

const (
	noNewsReasoning      = "No relevant news found in the last 30 days for this outcome."
	unavailableReasoning = "AI analysis unavailable. Configure a completion-service API key."
)

// Analyzer scores news and synthesizes outcome summaries.
type Analyzer struct {
	llm    Completer
	logger *slog.Logger
}

// NewAnalyzer creates an Analyzer over the given completion client.
func NewAnalyzer(llm Completer, logger *slog.Logger) *Analyzer {
	return &Analyzer{
		llm:    llm,
		logger: logger.With(slog.String("component", "sentiment")),
	}
}

// ScoreNews scores the given articles for an outcome. The invariants enforced
// here, in order:
//
//  1. No articles -> score 0 with a "no relevant news" reasoning, without
//     invoking the service. Absence of information is never negativity.
//  2. Service unavailable -> score 0 with an "unavailable" reasoning.
//  3. Unparseable response -> score 0 with an "error parsing" reasoning.
//
// ScoreNews never returns an error; every failure mode is a valid neutral
// result.
func (a *Analyzer) ScoreNews(ctx context.Context, articles []domain.NewsArticle, outcomeName, marketQuestion string) domain.SentimentResult {
	if len(articles) == 0 {
		return domain.SentimentResult{Score: 0, Reasoning: noNewsReasoning}
	}

	if !a.llm.Available() {
		return domain.SentimentResult{Score: 0, Reasoning: unavailableReasoning}
	}

	raw, err := a.llm.Complete(ctx, scorePrompt(articles, outcomeName, marketQuestion))
	if err != nil {
		a.logger.WarnContext(ctx, "sentiment: completion failed",
			slog.String("outcome", outcomeName),
			slog.String("error", err.Error()),
		)
		return domain.SentimentResult{Score: 0, Reasoning: "Error analyzing news: " + err.Error()}
	}

	var parsed struct {
		Score     int    `json:"score"`
		Reasoning string `json:"reasoning"`
	}
	if err := decodeJSON(raw, &parsed); err != nil {
		a.logger.WarnContext(ctx, "sentiment: unparseable response",
			slog.String("outcome", outcomeName),
			slog.String("error", err.Error()),
		)
		return domain.SentimentResult{Score: 0, Reasoning: "Error parsing sentiment response."}
	}

	return domain.SentimentResult{
		Score:     clampScore(parsed.Score),
		Reasoning: parsed.Reasoning,
	}
}

// Summarize synthesizes the fixed-shape bullet narrative from the news and
// liquidity sub-results. Degradation policy matches ScoreNews: every failure
// mode yields a single explanatory bullet rather than an error.
func (a *Analyzer) Summarize(ctx context.Context, outcomeName string, news domain.SentimentResult, d domain.OutcomeDepth) string {
	if !a.llm.Available() {
		return "• " + unavailableReasoning
	}

	raw, err := a.llm.Complete(ctx, summaryPrompt(outcomeName, news, d))
	if err != nil {
		a.logger.WarnContext(ctx, "sentiment: summary completion failed",
			slog.String("outcome", outcomeName),
			slog.String("error", err.Error()),
		)
		return "• Error generating summary: " + err.Error()
	}

	var parsed struct {
		Summary string `json:"summary"`
	}
	if err := decodeJSON(raw, &parsed); err != nil || parsed.Summary == "" {
		a.logger.WarnContext(ctx, "sentiment: unparseable summary",
			slog.String("outcome", outcomeName),
		)
		return "• Error parsing summary response."
	}

	return parsed.Summary
}
