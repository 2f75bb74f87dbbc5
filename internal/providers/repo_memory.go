package providers

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo for dev and tests.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]Provider
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[string]Provider)}
}

// List returns all providers ordered by creation time.
func (r *MemoryRepo) List(ctx context.Context) ([]Provider, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]Provider, 0, len(r.data))
	for _, p := range r.data {
		list = append(list, cloneProvider(p))
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].ID < list[j].ID
		}
		return list[i].CreatedAt.Before(list[j].CreatedAt)
	})
	return list, nil
}

// GetByID returns a provider by ID.
func (r *MemoryRepo) GetByID(ctx context.Context, providerID string) (Provider, error) {
	if err := ctx.Err(); err != nil {
		return Provider{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.data[providerID]
	if !ok {
		return Provider{}, ErrNotFound
	}
	return cloneProvider(p), nil
}

// Create stores a new provider with its checklist.
func (r *MemoryRepo) Create(ctx context.Context, provider Provider) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[provider.ID] = cloneProvider(provider)
	return nil
}

// UpdateMeta overwrites provider metadata and onboarding fields.
func (r *MemoryRepo) UpdateMeta(ctx context.Context, provider Provider) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.data[provider.ID]
	if !ok {
		return ErrNotFound
	}
	stored.Name = provider.Name
	stored.ProviderTypeCode = provider.ProviderTypeCode
	stored.JurisdictionCode = provider.JurisdictionCode
	stored.Onboard = provider.Onboard
	stored.UpdatedAt = provider.UpdatedAt
	r.data[provider.ID] = stored
	return nil
}

// SaveChecklistItem overwrites a single checklist item.
func (r *MemoryRepo) SaveChecklistItem(ctx context.Context, providerID string, item ChecklistItem) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.data[providerID]
	if !ok {
		return ErrNotFound
	}
	for i := range stored.Checklist {
		if stored.Checklist[i].Key == item.Key {
			stored.Checklist[i] = item
			stored.UpdatedAt = item.UpdatedAt
			r.data[providerID] = stored
			return nil
		}
	}
	return ErrItemNotFound
}

func cloneProvider(p Provider) Provider {
	out := p
	out.Checklist = make([]ChecklistItem, len(p.Checklist))
	copy(out.Checklist, p.Checklist)
	for i := range out.Checklist {
		if p.Checklist[i].CompletedAt != nil {
			t := *p.Checklist[i].CompletedAt
			out.Checklist[i].CompletedAt = &t
		}
	}
	return out
}
