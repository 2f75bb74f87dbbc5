package analytics

import (
	"testing"

	"compliance-backend/internal/providers"
)

func items(statuses ...string) []providers.ChecklistItem {
	out := make([]providers.ChecklistItem, 0, len(statuses))
	for i, s := range statuses {
		out = append(out, providers.ChecklistItem{Key: string(rune('a' + i)), Status: s})
	}
	return out
}

func TestScoreEmptyChecklistIsZero(t *testing.T) {
	if got := Score(nil); got != 0 {
		t.Fatalf("Score(nil) = %d, want 0", got)
	}
	if got := Score([]providers.ChecklistItem{}); got != 0 {
		t.Fatalf("Score(empty) = %d, want 0", got)
	}
}

func TestScoreCountsCompleteAliases(t *testing.T) {
	tests := []struct {
		name     string
		statuses []string
		want     int
	}{
		{"all complete", []string{"complete", "complete"}, 100},
		{"legacy alias", []string{"completed", "not_started"}, 50},
		{"mixed case", []string{"Complete", "COMPLETED", "in_progress", "not_started"}, 50},
		{"none complete", []string{"not_started", "in_progress"}, 0},
		{"rounding up", []string{"complete", "complete", "not_started"}, 67},
		{"rounding down", []string{"complete", "not_started", "not_started"}, 33},
		{"whitespace tolerated", []string{" complete ", "not_started"}, 50},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Score(items(tc.statuses...)); got != tc.want {
				t.Fatalf("Score(%v) = %d, want %d", tc.statuses, got, tc.want)
			}
		})
	}
}

func TestScoreHalfCompleteScenario(t *testing.T) {
	score := Score(items("complete", "complete", "not_started", "not_started"))
	if score != 50 {
		t.Fatalf("expected score 50, got %d", score)
	}
	risk, status := ClassifyRisk(score)
	if risk != RiskHigh {
		t.Fatalf("expected high risk, got %s", risk)
	}
	if status != StatusAtRisk {
		t.Fatalf("expected at_risk, got %s", status)
	}
}
