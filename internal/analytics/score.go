package analytics

import (
	"math"
	"strings"

	"compliance-backend/internal/providers"
)

// Score derives a 0-100 completion percentage from a checklist. An empty or
// nil checklist scores 0. Both "complete" and the legacy alias "completed"
// count, case-insensitively.
func Score(items []providers.ChecklistItem) int {
	if len(items) == 0 {
		return 0
	}
	complete := 0
	for _, item := range items {
		switch strings.ToLower(strings.TrimSpace(item.Status)) {
		case "complete", "completed":
			complete++
		}
	}
	return int(math.Round(100 * float64(complete) / float64(len(items))))
}
