package sentiment

import (
	"fmt"
	"math"

	"github.com/amapara27/Horizon/internal/domain"
)

// Weights for the combined rubric. The historical revisions disagreed between
// 50/50 and 60/40; Horizon fixes 60/40 in favor of news (see DESIGN.md).
const (
	newsWeight   = 0.6
	walletWeight = 0.4
)

const (
	ProbabilityLikely    = "likely"
	ProbabilityUncertain = "uncertain"
	ProbabilityUnlikely  = "unlikely"
)

// WalletScore reduces smart-wallet positions to a -100..+100 directional
// signal: net YES-vs-NO exposure weighted by position size and win rate. An
// empty wallet list is a zero signal.
func WalletScore(wallets []domain.WalletPosition) int {
	if len(wallets) == 0 {
		return 0
	}

	var signal, total float64
	for _, w := range wallets {
		weight := w.Size * (w.WinRate / 100)
		total += weight
		if w.Position == "YES" {
			signal += weight
		} else {
			signal -= weight
		}
	}
	if total == 0 {
		return 0
	}

	return clampScore(int(math.Round(signal / total * 100)))
}

// Combine merges the news sentiment with the wallet signal under the fixed
// 60/40 rubric. Confidence reflects source agreement: two non-zero signals
// leaning the same way are "high", a single signal is "medium", and no signal
// at all is "low".
func Combine(news domain.SentimentResult, wallets []domain.WalletPosition) domain.CombinedSentiment {
	walletScore := WalletScore(wallets)

	combined := clampScore(int(math.Round(
		float64(news.Score)*newsWeight + float64(walletScore)*walletWeight,
	)))

	c := domain.CombinedSentiment{
		Score:       combined,
		NewsScore:   news.Score,
		WalletScore: walletScore,
		Confidence:  confidence(news.Score, walletScore),
		Probability: probabilityLabel(combined),
	}
	c.Reasoning = fmt.Sprintf(
		"Combined signal %+d (news %+d weighted %.0f%%, smart wallets %+d weighted %.0f%%). %s",
		combined, news.Score, newsWeight*100, walletScore, walletWeight*100, news.Reasoning,
	)
	return c
}

func confidence(newsScore, walletScore int) string {
	switch {
	case newsScore != 0 && walletScore != 0 && sameSign(newsScore, walletScore):
		return "high"
	case newsScore != 0 || walletScore != 0:
		return "medium"
	default:
		return "low"
	}
}

func sameSign(a, b int) bool {
	return (a > 0 && b > 0) || (a < 0 && b < 0)
}

func probabilityLabel(score int) string {
	switch {
	case score >= 30:
		return ProbabilityLikely
	case score <= -30:
		return ProbabilityUnlikely
	default:
		return ProbabilityUncertain
	}
}
