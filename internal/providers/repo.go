package providers

import "context"

// Repo persists providers and their checklists.
type Repo interface {
	List(ctx context.Context) ([]Provider, error)
	GetByID(ctx context.Context, providerID string) (Provider, error)
	Create(ctx context.Context, provider Provider) error
	UpdateMeta(ctx context.Context, provider Provider) error
	SaveChecklistItem(ctx context.Context, providerID string, item ChecklistItem) error
}
