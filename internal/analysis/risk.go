package analysis

// RiskTier is a coarse triage flag derived from a sentiment score.
// It is not a diagnostic instrument.
type RiskTier string

const (
	RiskLow    RiskTier = "low"
	RiskMedium RiskTier = "medium"
	RiskHigh   RiskTier = "high"
)

// Tier maps a sentiment score to its risk tier. The three bands partition
// the score range with closed lower bounds at 0.3 and 0.6.
func Tier(score float64) RiskTier {
	switch {
	case score < 0.3:
		return RiskHigh
	case score < 0.6:
		return RiskMedium
	default:
		return RiskLow
	}
}
