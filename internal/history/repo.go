package history

import (
	"context"
	"errors"
)

// ErrUnavailable wraps any backing-store failure. Callers degrade to an empty
// window instead of failing the whole aggregation.
var ErrUnavailable = errors.New("score history unavailable")

// Repo reads and writes the monthly score ledger.
type Repo interface {
	// Recent returns up to limit entries for the provider, newest month first.
	Recent(ctx context.Context, providerID string, limit int) ([]MonthlyScore, error)
	// Upsert writes the score for (provider, month), overwriting an existing
	// row for the same month. Idempotent within a month.
	Upsert(ctx context.Context, entry MonthlyScore) error
}
