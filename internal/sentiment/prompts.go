package sentiment

import (
	"fmt"
	"strings"

	"github.com/amapara27/Horizon/internal/domain"
)

// maxPromptArticles caps how many articles are embedded in one scoring prompt.
const maxPromptArticles = 10

// scorePrompt renders the news-scoring prompt. The rules section pins the
// "absence of news is never negative" policy on the model side too, even
// though the caller already short-circuits the empty case.
func scorePrompt(articles []domain.NewsArticle, outcomeName, marketQuestion string) string {
	var news strings.Builder
	for i, a := range articles {
		if i >= maxPromptArticles {
			break
		}
		if i > 0 {
			news.WriteString("\n\n")
		}
		desc := a.Description
		if desc == "" {
			desc = "N/A"
		}
		fmt.Fprintf(&news, "Title: %s\nDescription: %s\nSource: %s", a.Title, desc, a.Source)
	}

	return fmt.Sprintf(`Analyze these news articles for the specific outcome: %[1]q in the market: %[2]q

News Articles (last 30 days):
%[3]s

CRITICAL RULES:
1. If the news articles are NOT specifically about %[1]q, return a score of 0 and reasoning "No relevant news found."
2. Do NOT invent negative sentiment from a lack of news. Absence of news = score of 0, not negative.
3. Only return a non-zero score if the news is clearly relevant to this specific outcome.

Sentiment Score Guidelines:
- 0: No relevant news found
- +70 to +100: Very positive news strongly supporting this outcome
- +30 to +69: Moderately positive news
- +1 to +29: Slightly positive news
- -1 to -29: Slightly negative news
- -30 to -69: Moderately negative news
- -70 to -100: Very negative news contradicting this outcome

Respond with ONLY valid JSON (no markdown):
{
  "score": <integer from -100 to +100>,
  "reasoning": "<2-3 sentences explaining the news sentiment or stating 'No relevant news found.'>"
}`, outcomeName, marketQuestion, news.String())
}

// summaryPrompt renders the fixed-shape bullet narrative prompt from the two
// structured sub-results.
func summaryPrompt(outcomeName string, news domain.SentimentResult, d domain.OutcomeDepth) string {
	return fmt.Sprintf(`Synthesize a concise bullet-point summary for this prediction market outcome.

Outcome: %q

News Sentiment Analysis:
- Score: %d (range: -100 to +100, where 0 = no news)
- Reasoning: %s

Market Liquidity Analysis:
- Score: %d (range: 0-100, factual metric)
- Level: %s
- Reasoning: %s

Write a concise summary with 3-4 bullet points, each on a new line:
• Signal: State if positive, negative, or neutral
• News: Summarize news sentiment in one short phrase
• Liquidity: State liquidity level and trading risk
• Recommendation: One sentence on market attractiveness

Example format:
• Signal: Neutral - no clear direction
• News: No relevant coverage found in last 30 days
• Liquidity: Zero liquidity - extremely high risk
• Recommendation: Avoid trading; price is meaningless

IMPORTANT: Put each bullet on its own line (use \n between bullets, not blank lines).

Respond with ONLY valid JSON (no markdown):
{
  "summary": "<your bullet points here, each starting with • on a new line>"
}`, outcomeName, news.Score, news.Reasoning, d.LiquidityScore, d.LiquidityLevel, d.Reasoning)
}
