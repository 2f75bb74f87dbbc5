package analytics

import "time"

// Unassigned is the jurisdiction bucket for providers without a code.
const Unassigned = "UNASSIGNED"

// Row is the per-provider analytics view, computed fresh per request.
type Row struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Status         ReadinessStatus `json:"status"`
	State          string          `json:"state"`
	UpdatedAt      time.Time       `json:"updatedAt"`
	Score          int             `json:"score"`
	RiskLevel      RiskLevel       `json:"riskLevel"`
	Trend          Trend           `json:"trend"`
	Declining      bool            `json:"declining"`
	EscalationRisk bool            `json:"escalationRisk"`
	IssuesCount    int             `json:"issuesCount"`
}

// Totals summarizes the portfolio.
type Totals struct {
	Providers   int `json:"providers"`
	WithScore   int `json:"withScore"`
	WithUpdates int `json:"withUpdates"`
	WithIssues  int `json:"withIssues"`
}

// RiskSummary counts rows per tier. A struct rather than a map so every tier
// key is always present in the JSON payload, even at zero.
type RiskSummary struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

// StateSummary counts rows for one jurisdiction.
type StateSummary struct {
	Total  int `json:"total"`
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

// TrendSummary counts declining and escalation-risk rows.
type TrendSummary struct {
	Declining      int `json:"declining"`
	EscalationRisk int `json:"escalationRisk"`
}

// Overview is the aggregation summary payload.
type Overview struct {
	Totals       Totals                  `json:"totals"`
	RiskSummary  RiskSummary             `json:"riskSummary"`
	StateSummary map[string]StateSummary `json:"stateSummary"`
	TrendSummary TrendSummary            `json:"trendSummary"`
	Rows         []Row                   `json:"rows"`
}
