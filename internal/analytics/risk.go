package analytics

// RiskLevel is the three-bucket classification derived from the score.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// ReadinessStatus is the human status label paired with each risk tier.
type ReadinessStatus string

const (
	StatusReady      ReadinessStatus = "ready"
	StatusInProgress ReadinessStatus = "in_progress"
	StatusAtRisk     ReadinessStatus = "at_risk"
)

// Tier thresholds, inclusive lower bounds.
const (
	readyThreshold      = 80
	inProgressThreshold = 60
)

// ClassifyRisk maps a score to its risk tier and status label.
func ClassifyRisk(score int) (RiskLevel, ReadinessStatus) {
	switch {
	case score >= readyThreshold:
		return RiskLow, StatusReady
	case score >= inProgressThreshold:
		return RiskMedium, StatusInProgress
	default:
		return RiskHigh, StatusAtRisk
	}
}

// IssuesCount is a binary high-risk signal, not an issue tally.
func IssuesCount(risk RiskLevel) int {
	if risk == RiskHigh {
		return 1
	}
	return 0
}
