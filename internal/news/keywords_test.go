package news

import "testing"

func TestOutcomeQuery(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		outcome string
		want    string
	}{
		{
			name:    "long title keeps first three long tokens",
			title:   "Will Bitcoin reach 100k before December 2026?",
			outcome: "Yes",
			want:    "Will Bitcoin reach Yes",
		},
		{
			name:    "short tokens skipped",
			title:   "Who will win the US election?",
			outcome: "Alice",
			want:    "will election Alice",
		},
		{
			name:    "punctuation stripped",
			title:   "Fed: rate-cut in March?!",
			outcome: "Yes",
			want:    "ratecut March Yes",
		},
		{
			name:    "empty inputs degenerate",
			title:   "",
			outcome: "",
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OutcomeQuery(tt.title, tt.outcome); got != tt.want {
				t.Errorf("OutcomeQuery(%q, %q) = %q, want %q", tt.title, tt.outcome, got, tt.want)
			}
		})
	}
}

func TestEventQuery(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{
			name:  "two keywords OR-joined",
			title: "Will Bitcoin reach 100k?",
			want:  `"Bitcoin" OR "reach"`,
		},
		{
			name:  "stop words dropped",
			title: "Will the Fed cut rates in March?",
			want:  `"Fed" OR "cut"`,
		},
		{
			name:  "single keyword quoted alone",
			title: "Will it be Bitcoin?",
			want:  `"Bitcoin"`,
		},
		{
			name:  "all stop words falls back to title",
			title: "Will it be?",
			want:  `"Will it be"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EventQuery(tt.title); got != tt.want {
				t.Errorf("EventQuery(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}
