package analysis

import "testing"

func TestTier(t *testing.T) {
	tests := []struct {
		score float64
		want  RiskTier
	}{
		{0.0, RiskHigh},
		{0.2999, RiskHigh},
		{0.3, RiskMedium},
		{0.45, RiskMedium},
		{0.5999, RiskMedium},
		{0.6, RiskLow},
		{0.8, RiskLow},
		{1.0, RiskLow},
	}
	for _, tt := range tests {
		if got := Tier(tt.score); got != tt.want {
			t.Errorf("Tier(%v) = %v, want %v", tt.score, got, tt.want)
		}
	}
}

// The three bands must partition the score range with no gaps or overlaps.
func TestTierTotal(t *testing.T) {
	for i := 0; i <= 1000; i++ {
		score := float64(i) / 1000
		switch Tier(score) {
		case RiskLow, RiskMedium, RiskHigh:
		default:
			t.Fatalf("Tier(%v) returned an unknown tier", score)
		}
	}
}
