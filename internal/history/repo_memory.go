package history

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory score ledger for dev and tests.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]map[string]int // providerID -> monthKey -> score
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[string]map[string]int)}
}

// Recent returns up to limit entries for the provider, newest month first.
func (r *MemoryRepo) Recent(ctx context.Context, providerID string, limit int) ([]MonthlyScore, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 3
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	months := r.data[providerID]
	keys := make([]string, 0, len(months))
	for k := range months {
		keys = append(keys, k)
	}
	// YYYY-MM keys sort lexicographically in chronological order.
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))
	if len(keys) > limit {
		keys = keys[:limit]
	}

	entries := make([]MonthlyScore, 0, len(keys))
	for _, k := range keys {
		entries = append(entries, MonthlyScore{ProviderID: providerID, MonthKey: k, Score: months[k]})
	}
	return entries, nil
}

// Upsert overwrites the score for (provider, month).
func (r *MemoryRepo) Upsert(ctx context.Context, entry MonthlyScore) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.data[entry.ProviderID] == nil {
		r.data[entry.ProviderID] = make(map[string]int)
	}
	r.data[entry.ProviderID][entry.MonthKey] = entry.Score
	return nil
}
