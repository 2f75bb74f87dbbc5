package providers

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
)

// Service contains business logic for providers and their checklists.
type Service struct {
	Repo Repo
	now  func() time.Time
}

// NewService constructs a Service.
func NewService(repo Repo) *Service {
	return &Service{Repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

// WithClock overrides the clock for tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// List returns all providers with their checklists.
func (s *Service) List(ctx context.Context) ([]Provider, error) {
	return s.Repo.List(ctx)
}

// GetOrCreate returns the provider with the given ID, creating it with the
// standard checklist if it does not exist yet. Create-on-access is the
// contract: a GET for an unknown ID materializes the record.
func (s *Service) GetOrCreate(ctx context.Context, providerID string) (Provider, error) {
	providerID = strings.TrimSpace(providerID)
	if providerID == "" {
		return Provider{}, fmt.Errorf("%w: provider id required", ErrInvalidInput)
	}

	provider, err := s.Repo.GetByID(ctx, providerID)
	if err == nil {
		return provider, nil
	}
	if err != ErrNotFound {
		return Provider{}, err
	}

	now := s.now()
	provider = Provider{
		ID:        providerID,
		Onboard:   Onboarding{Status: OnboardNotStarted},
		Checklist: DefaultChecklist(now),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Repo.Create(ctx, provider); err != nil {
		return Provider{}, err
	}
	return provider, nil
}

// UpsertInput carries provider metadata for create/update.
type UpsertInput struct {
	ID               string
	Name             string
	ProviderTypeCode string
	JurisdictionCode string
}

// Upsert creates a provider (seeding the standard checklist) or updates the
// metadata of an existing one. When no ID is supplied one is derived from the
// name plus a timestamp, falling back to a UUID.
func (s *Service) Upsert(ctx context.Context, in UpsertInput) (Provider, error) {
	in.ID = strings.TrimSpace(in.ID)
	in.Name = strings.TrimSpace(in.Name)

	now := s.now()
	if in.ID == "" {
		in.ID = deriveID(in.Name, now)
	}

	provider, err := s.Repo.GetByID(ctx, in.ID)
	if err == ErrNotFound {
		provider = Provider{
			ID:               in.ID,
			Name:             in.Name,
			ProviderTypeCode: in.ProviderTypeCode,
			JurisdictionCode: in.JurisdictionCode,
			Onboard:          Onboarding{Status: OnboardNotStarted},
			Checklist:        DefaultChecklist(now),
			CreatedAt:        now,
			UpdatedAt:        now,
		}
		if err := s.Repo.Create(ctx, provider); err != nil {
			return Provider{}, err
		}
		return provider, nil
	}
	if err != nil {
		return Provider{}, err
	}

	if in.Name != "" {
		provider.Name = in.Name
	}
	if in.ProviderTypeCode != "" {
		provider.ProviderTypeCode = in.ProviderTypeCode
	}
	if in.JurisdictionCode != "" {
		provider.JurisdictionCode = in.JurisdictionCode
	}
	provider.UpdatedAt = now
	if err := s.Repo.UpdateMeta(ctx, provider); err != nil {
		return Provider{}, err
	}
	return provider, nil
}

// UpdateChecklistItem applies a status/notes change to one checklist item.
// CompletedAt is set on the first transition to complete and cleared on any
// transition away from complete.
func (s *Service) UpdateChecklistItem(ctx context.Context, providerID, itemKey, status string, notes *string) (ChecklistItem, error) {
	if !ValidStatus(status) {
		return ChecklistItem{}, fmt.Errorf("%w: status must be one of not_started, in_progress, complete", ErrInvalidInput)
	}

	provider, err := s.Repo.GetByID(ctx, strings.TrimSpace(providerID))
	if err != nil {
		return ChecklistItem{}, err
	}

	idx := -1
	for i := range provider.Checklist {
		if provider.Checklist[i].Key == itemKey {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ChecklistItem{}, ErrItemNotFound
	}

	now := s.now()
	item := provider.Checklist[idx]
	wasComplete := item.Status == StatusComplete
	item.Status = status
	item.UpdatedAt = now
	if notes != nil {
		item.Notes = *notes
	}
	if status == StatusComplete && !wasComplete && item.CompletedAt == nil {
		completedAt := now
		item.CompletedAt = &completedAt
	}
	if status != StatusComplete && wasComplete {
		item.CompletedAt = nil
	}

	if err := s.Repo.SaveChecklistItem(ctx, provider.ID, item); err != nil {
		return ChecklistItem{}, err
	}
	return item, nil
}

// OnboardingInput carries onboarding fields; empty strings leave the stored
// value unchanged, except Status which is validated when present.
type OnboardingInput struct {
	Status       string
	ContactName  string
	ContactEmail string
	ContactPhone string
	OrgName      string
	OrgNPI       string
}

// UpdateOnboarding applies onboarding status and contact/org fields.
func (s *Service) UpdateOnboarding(ctx context.Context, providerID string, in OnboardingInput) (Provider, error) {
	if in.Status != "" && !ValidStatus(in.Status) {
		return Provider{}, fmt.Errorf("%w: status must be one of not_started, in_progress, complete", ErrInvalidInput)
	}

	provider, err := s.Repo.GetByID(ctx, strings.TrimSpace(providerID))
	if err != nil {
		return Provider{}, err
	}

	if in.Status != "" {
		provider.Onboard.Status = in.Status
	}
	if in.ContactName != "" {
		provider.Onboard.ContactName = in.ContactName
	}
	if in.ContactEmail != "" {
		provider.Onboard.ContactEmail = in.ContactEmail
	}
	if in.ContactPhone != "" {
		provider.Onboard.ContactPhone = in.ContactPhone
	}
	if in.OrgName != "" {
		provider.Onboard.OrgName = in.OrgName
	}
	if in.OrgNPI != "" {
		provider.Onboard.OrgNPI = in.OrgNPI
	}
	provider.UpdatedAt = s.now()

	if err := s.Repo.UpdateMeta(ctx, provider); err != nil {
		return Provider{}, err
	}
	return provider, nil
}

func deriveID(name string, now time.Time) string {
	slug := slugify(name)
	if slug == "" {
		return uuid.NewString()
	}
	return fmt.Sprintf("%s-%d", slug, now.Unix())
}

func slugify(raw string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(strings.TrimSpace(raw)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteRune('-')
			lastDash = true
		}
	}
	return strings.Trim(b.String(), "-")
}
