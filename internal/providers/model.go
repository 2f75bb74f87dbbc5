package providers

import "time"

// Checklist item statuses.
const (
	StatusNotStarted = "not_started"
	StatusInProgress = "in_progress"
	StatusComplete   = "complete"
)

// Onboarding statuses mirror checklist statuses.
const (
	OnboardNotStarted = "not_started"
	OnboardInProgress = "in_progress"
	OnboardComplete   = "complete"
)

// ChecklistItem is a single trackable onboarding/compliance task.
// CompletedAt is set on the first transition to complete and cleared when the
// item moves away from complete.
type ChecklistItem struct {
	Key         string     `json:"key"`
	Title       string     `json:"title"`
	Status      string     `json:"status"`
	Notes       string     `json:"notes,omitempty"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// Onboarding holds the onboarding status plus contact/org sub-fields.
type Onboarding struct {
	Status       string `json:"status"`
	ContactName  string `json:"contactName,omitempty"`
	ContactEmail string `json:"contactEmail,omitempty"`
	ContactPhone string `json:"contactPhone,omitempty"`
	OrgName      string `json:"orgName,omitempty"`
	OrgNPI       string `json:"orgNpi,omitempty"`
}

// Provider is a healthcare provider tracked across jurisdictions.
type Provider struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	ProviderTypeCode string          `json:"providerTypeCode,omitempty"`
	JurisdictionCode string          `json:"jurisdictionCode,omitempty"`
	Onboard          Onboarding      `json:"onboard"`
	Checklist        []ChecklistItem `json:"checklist"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

// ValidStatus reports whether s is one of the tri-state checklist statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusComplete:
		return true
	default:
		return false
	}
}
