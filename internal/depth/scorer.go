// Package depth computes per-outcome liquidity metrics for an event: a fixed
// scoring rubric over the market's liquidity amount and an aggregator that
// ranks outcomes by it.
package depth

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/amapara27/Horizon/internal/domain"
)

// Score maps a non-negative liquidity amount to a 0-100 score, a qualitative
// level, and human-readable reasoning. It is pure: the same amount always
// yields the same triple.
//
// Thresholds (inclusive lower bounds):
//
//	0             -> 0, No Liquidity
//	(0, 1000)     -> 10, Very Thin
//	[1000, 10000) -> 30, Thin
//	[10000, 1e5)  -> 70, Good
//	>= 100000     -> 95, Excellent
func Score(amount float64) (int, domain.LiquidityLevel, string) {
	var (
		score int
		level domain.LiquidityLevel
	)
	switch {
	case amount <= 0:
		score, level = 0, domain.LiquidityNone
	case amount < 1_000:
		score, level = 10, domain.LiquidityVeryThin
	case amount < 10_000:
		score, level = 30, domain.LiquidityThin
	case amount < 100_000:
		score, level = 70, domain.LiquidityGood
	default:
		score, level = 95, domain.LiquidityExcellent
	}
	return score, level, reasoning(amount, score)
}

// amounts render with thousands separators, e.g. "$15,000".
var amountPrinter = message.NewPrinter(language.AmericanEnglish)

// reasoning renders the fixed explanation template for a score bucket.
func reasoning(amount float64, score int) string {
	switch {
	case score == 0:
		return "Market has zero liquidity. This is an extremely high-risk, illiquid market."
	case score <= 10:
		return amountPrinter.Sprintf("Market has very thin liquidity ($%.0f). High slippage risk.", amount)
	case score <= 30:
		return amountPrinter.Sprintf("Market has thin liquidity ($%.0f). Moderate slippage risk.", amount)
	case score <= 70:
		return amountPrinter.Sprintf("Market has good liquidity ($%.0f). Reasonable for trading.", amount)
	default:
		return amountPrinter.Sprintf("Market has excellent liquidity ($%.0f). Low slippage risk.", amount)
	}
}
