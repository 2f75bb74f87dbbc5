package providers

import "time"

// checklistTemplate is the standard Medicaid onboarding checklist every new
// provider starts with.
var checklistTemplate = []struct {
	Key   string
	Title string
}{
	{"npi_verified", "NPI verified in NPPES"},
	{"state_license", "State license current"},
	{"medicaid_application", "Medicaid enrollment application submitted"},
	{"caqh_attestation", "CAQH profile attested"},
	{"background_check", "Background check cleared"},
	{"w9_on_file", "W-9 on file"},
	{"eft_enrollment", "EFT/ERA enrollment complete"},
	{"site_visit", "Site visit completed"},
}

// DefaultChecklist returns a fresh copy of the standard checklist with every
// item not_started.
func DefaultChecklist(now time.Time) []ChecklistItem {
	items := make([]ChecklistItem, 0, len(checklistTemplate))
	for _, def := range checklistTemplate {
		items = append(items, ChecklistItem{
			Key:       def.Key,
			Title:     def.Title,
			Status:    StatusNotStarted,
			UpdatedAt: now,
		})
	}
	return items
}
