package analytics

import "testing"

func TestClassifyRiskBoundaries(t *testing.T) {
	tests := []struct {
		score      int
		wantRisk   RiskLevel
		wantStatus ReadinessStatus
	}{
		{0, RiskHigh, StatusAtRisk},
		{59, RiskHigh, StatusAtRisk},
		{60, RiskMedium, StatusInProgress},
		{79, RiskMedium, StatusInProgress},
		{80, RiskLow, StatusReady},
		{100, RiskLow, StatusReady},
	}
	for _, tc := range tests {
		risk, status := ClassifyRisk(tc.score)
		if risk != tc.wantRisk {
			t.Fatalf("ClassifyRisk(%d) risk = %s, want %s", tc.score, risk, tc.wantRisk)
		}
		if status != tc.wantStatus {
			t.Fatalf("ClassifyRisk(%d) status = %s, want %s", tc.score, status, tc.wantStatus)
		}
	}
}

func TestIssuesCountIsBinaryHighRiskSignal(t *testing.T) {
	if got := IssuesCount(RiskHigh); got != 1 {
		t.Fatalf("IssuesCount(high) = %d, want 1", got)
	}
	if got := IssuesCount(RiskMedium); got != 0 {
		t.Fatalf("IssuesCount(medium) = %d, want 0", got)
	}
	if got := IssuesCount(RiskLow); got != 0 {
		t.Fatalf("IssuesCount(low) = %d, want 0", got)
	}
}
