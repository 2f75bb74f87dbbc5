package analytics

import "compliance-backend/internal/history"

// Trend is the month-over-month direction indicator.
type Trend string

const (
	TrendUp   Trend = "↑"
	TrendDown Trend = "↓"
	TrendFlat Trend = "→"
)

// TrendFrom compares curr against prev. A nil prev means insufficient
// history and always yields flat.
func TrendFrom(prev *int, curr int) Trend {
	if prev == nil {
		return TrendFlat
	}
	switch {
	case curr > *prev:
		return TrendUp
	case curr < *prev:
		return TrendDown
	default:
		return TrendFlat
	}
}

// Window holds the two most recent prior months of a provider's ledger,
// excluding the current month bucket.
type Window struct {
	Last       *int
	PrevToLast *int
}

// WindowFrom builds a Window from ledger entries ordered newest month first.
// The current month key is excluded so a concurrent overwrite of the current
// bucket cannot shift the comparison baseline.
func WindowFrom(entries []history.MonthlyScore, currentMonthKey string) Window {
	var w Window
	for _, e := range entries {
		if e.MonthKey == currentMonthKey {
			continue
		}
		score := e.Score
		if w.Last == nil {
			w.Last = &score
			continue
		}
		if w.PrevToLast == nil {
			w.PrevToLast = &score
			break
		}
	}
	return w
}

// Evaluate computes the trend for the current score plus the declining and
// escalation-risk flags. Escalation requires two consecutive declines, which
// needs at least three distinct recorded months; a provider with less history
// is never flagged.
func (w Window) Evaluate(current int) (trend Trend, declining, escalationRisk bool) {
	trend = TrendFrom(w.Last, current)
	declining = trend == TrendDown
	if declining && w.Last != nil && w.PrevToLast != nil {
		escalationRisk = TrendFrom(w.PrevToLast, *w.Last) == TrendDown
	}
	return trend, declining, escalationRisk
}
