package history

import (
	"fmt"
	"time"
)

// MonthlyScore is one row of the per-provider monthly score ledger, keyed by
// (provider, month).
type MonthlyScore struct {
	ProviderID string `json:"providerId"`
	MonthKey   string `json:"monthKey"`
	Score      int    `json:"score"`
}

// MonthKey derives the YYYY-MM history bucket from the given wall-clock time.
// The bucket reflects when the aggregation runs, not when checklist data
// changed.
func MonthKey(t time.Time) string {
	return fmt.Sprintf("%04d-%02d", t.Year(), int(t.Month()))
}
