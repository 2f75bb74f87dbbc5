package history

import (
	"context"
	"database/sql"
	"fmt"
)

// PGRepo is the Postgres-backed score ledger.
type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Recent(ctx context.Context, providerID string, limit int) ([]MonthlyScore, error) {
	if limit <= 0 {
		limit = 3
	}
	const query = `
SELECT provider_id, month_key, score
FROM score_history
WHERE provider_id = $1
ORDER BY month_key DESC
LIMIT $2`
	rows, err := r.DB.QueryContext(ctx, query, providerID, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer rows.Close()

	var entries []MonthlyScore
	for rows.Next() {
		var e MonthlyScore
		if err := rows.Scan(&e.ProviderID, &e.MonthKey, &e.Score); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return entries, nil
}

func (r *PGRepo) Upsert(ctx context.Context, entry MonthlyScore) error {
	const query = `
INSERT INTO score_history (provider_id, month_key, score, created_at, updated_at)
VALUES ($1, $2, $3, now(), now())
ON CONFLICT (provider_id, month_key) DO UPDATE SET
  score = EXCLUDED.score,
  updated_at = now()`
	if _, err := r.DB.ExecContext(ctx, query, entry.ProviderID, entry.MonthKey, entry.Score); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}
