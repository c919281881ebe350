package depth

import (
	"strings"
	"testing"

	"github.com/amapara27/Horizon/internal/domain"
)

func TestScoreThresholds(t *testing.T) {
	tests := []struct {
		name      string
		amount    float64
		wantScore int
		wantLevel domain.LiquidityLevel
	}{
		{"zero", 0, 0, domain.LiquidityNone},
		{"negative clamps to none", -50, 0, domain.LiquidityNone},
		{"just above zero", 0.01, 10, domain.LiquidityVeryThin},
		{"below thin boundary", 999.99, 10, domain.LiquidityVeryThin},
		{"thin lower bound", 1000, 30, domain.LiquidityThin},
		{"below good boundary", 9999.99, 30, domain.LiquidityThin},
		{"good lower bound", 10000, 70, domain.LiquidityGood},
		{"below excellent boundary", 99999.99, 70, domain.LiquidityGood},
		{"excellent lower bound", 100000, 95, domain.LiquidityExcellent},
		{"very large", 5_000_000, 95, domain.LiquidityExcellent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, level, why := Score(tt.amount)
			if score != tt.wantScore {
				t.Errorf("Score(%v) score = %d, want %d", tt.amount, score, tt.wantScore)
			}
			if level != tt.wantLevel {
				t.Errorf("Score(%v) level = %q, want %q", tt.amount, level, tt.wantLevel)
			}
			if why == "" {
				t.Errorf("Score(%v) returned empty reasoning", tt.amount)
			}
		})
	}
}

func TestScoreIsPure(t *testing.T) {
	for i := 0; i < 3; i++ {
		s1, l1, r1 := Score(4321.5)
		s2, l2, r2 := Score(4321.5)
		if s1 != s2 || l1 != l2 || r1 != r2 {
			t.Fatalf("Score not deterministic: (%d,%q,%q) vs (%d,%q,%q)", s1, l1, r1, s2, l2, r2)
		}
	}
}

func TestScoreReasoningMentionsAmount(t *testing.T) {
	_, _, why := Score(15000)
	if !strings.Contains(why, "$15,000") {
		t.Errorf("reasoning %q does not mention the grouped amount", why)
	}

	_, _, smallWhy := Score(500)
	if !strings.Contains(smallWhy, "$500") {
		t.Errorf("reasoning %q does not mention the amount", smallWhy)
	}

	_, _, zeroWhy := Score(0)
	if !strings.Contains(zeroWhy, "zero liquidity") {
		t.Errorf("zero reasoning %q does not name the condition", zeroWhy)
	}
}
