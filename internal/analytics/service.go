package analytics

import (
	"context"
	"fmt"
	"time"

	"compliance-backend/internal/history"
	"compliance-backend/internal/providers"
	"compliance-backend/internal/shared/telemetry"
)

// ProviderSource lists providers with their checklists. providers.Repo
// satisfies it; the narrower interface keeps the aggregator read-only over
// provider data.
type ProviderSource interface {
	List(ctx context.Context) ([]providers.Provider, error)
}

// historyWindowLimit covers the current month plus the two prior months the
// trend engine needs.
const historyWindowLimit = 3

// Service runs the portfolio aggregation.
type Service struct {
	Providers ProviderSource
	History   history.Repo
	now       func() time.Time
}

// NewService constructs the aggregation service.
func NewService(providerSource ProviderSource, ledger history.Repo) *Service {
	return &Service{
		Providers: providerSource,
		History:   ledger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// WithClock overrides the clock for tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Overview aggregates every provider into analytics rows and portfolio
// roll-ups. The provider fetch is all-or-nothing; per-provider ledger
// failures degrade to an empty history window and never abort the run.
// Re-running within the same month overwrites the same ledger rows, so the
// call is idempotent for unchanged checklist data.
func (s *Service) Overview(ctx context.Context) (Overview, error) {
	provs, err := s.Providers.List(ctx)
	if err != nil {
		return Overview{}, fmt.Errorf("list providers: %w", err)
	}

	monthKey := history.MonthKey(s.now())
	overview := Overview{
		Rows:         make([]Row, 0, len(provs)),
		StateSummary: make(map[string]StateSummary),
	}

	for _, p := range provs {
		row := s.buildRow(ctx, p, monthKey)
		overview.Rows = append(overview.Rows, row)

		overview.Totals.Providers++
		if row.Score > 0 {
			overview.Totals.WithScore++
		}
		if touched(p.Checklist) {
			overview.Totals.WithUpdates++
		}
		if row.IssuesCount > 0 {
			overview.Totals.WithIssues++
		}

		switch row.RiskLevel {
		case RiskHigh:
			overview.RiskSummary.High++
		case RiskMedium:
			overview.RiskSummary.Medium++
		case RiskLow:
			overview.RiskSummary.Low++
		}

		state := overview.StateSummary[row.State]
		state.Total++
		switch row.RiskLevel {
		case RiskHigh:
			state.High++
		case RiskMedium:
			state.Medium++
		case RiskLow:
			state.Low++
		}
		overview.StateSummary[row.State] = state

		if row.Declining {
			overview.TrendSummary.Declining++
		}
		if row.EscalationRisk {
			overview.TrendSummary.EscalationRisk++
		}
	}

	return overview, nil
}

func (s *Service) buildRow(ctx context.Context, p providers.Provider, monthKey string) Row {
	score := Score(p.Checklist)
	risk, status := ClassifyRisk(score)

	var window Window
	entries, err := s.History.Recent(ctx, p.ID, historyWindowLimit)
	if err != nil {
		telemetry.Warn("history.window_unavailable", map[string]any{
			"provider_id": p.ID,
			"error":       err.Error(),
		})
	} else {
		window = WindowFrom(entries, monthKey)
	}
	trend, declining, escalationRisk := window.Evaluate(score)

	if err := s.History.Upsert(ctx, history.MonthlyScore{
		ProviderID: p.ID,
		MonthKey:   monthKey,
		Score:      score,
	}); err != nil {
		telemetry.Warn("history.upsert_failed", map[string]any{
			"provider_id": p.ID,
			"month_key":   monthKey,
			"error":       err.Error(),
		})
	}

	state := p.JurisdictionCode
	if state == "" {
		state = Unassigned
	}

	return Row{
		ID:             p.ID,
		Name:           p.Name,
		Status:         status,
		State:          state,
		UpdatedAt:      p.UpdatedAt,
		Score:          score,
		RiskLevel:      risk,
		Trend:          trend,
		Declining:      declining,
		EscalationRisk: escalationRisk,
		IssuesCount:    IssuesCount(risk),
	}
}

func touched(items []providers.ChecklistItem) bool {
	for _, item := range items {
		if item.Status != providers.StatusNotStarted || item.Notes != "" {
			return true
		}
	}
	return false
}
