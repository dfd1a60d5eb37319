package analysis

import (
	"math/rand"
	"testing"
)

func TestBreakdownPrimaryEntry(t *testing.T) {
	tests := []struct {
		name     string
		result   Result
		wantPct  int
		wantName string
	}{
		{
			name:     "score maps to percentage",
			result:   Result{Score: 0.85, Emotion: "joy"},
			wantPct:  85,
			wantName: "Joy",
		},
		{
			name:     "low score floored at 20",
			result:   Result{Score: 0.1, Emotion: "sadness"},
			wantPct:  20,
			wantName: "Sadness",
		},
		{
			name:     "emotion label case normalized",
			result:   Result{Score: 0.5, Emotion: "NEUTRAL"},
			wantPct:  50,
			wantName: "Neutral",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := rand.New(rand.NewSource(1))
			entries := Breakdown(tt.result, rng)
			if len(entries) != 10 {
				t.Fatalf("got %d entries, want 10", len(entries))
			}
			// The primary emotion always sorts first: filler percentages are
			// bounded by (100-primary)/10, which is below the 20 floor.
			if entries[0].Emotion != tt.wantName {
				t.Errorf("top entry = %q, want %q", entries[0].Emotion, tt.wantName)
			}
			if entries[0].Percentage != tt.wantPct {
				t.Errorf("top percentage = %d, want %d", entries[0].Percentage, tt.wantPct)
			}
		})
	}
}

func TestBreakdownFillerBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 100; i++ {
		entries := Breakdown(Result{Score: 0.7, Emotion: "joy"}, rng)

		seen := make(map[string]bool, len(entries))
		for _, e := range entries {
			seen[e.Emotion] = true
			if e.Emotion == "Joy" {
				continue
			}
			if e.Percentage < 1 || e.Percentage > 3 { // (100-70)/10
				t.Fatalf("filler percentage %d for %s out of bounds", e.Percentage, e.Emotion)
			}
			if e.Percentage >= 70 {
				t.Fatalf("filler %s outranks primary", e.Emotion)
			}
		}
		if len(seen) != 10 {
			t.Fatalf("taxonomy not fully covered: %v", seen)
		}
	}
}

func TestBreakdownSortedDescending(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	entries := Breakdown(Result{Score: 0.4, Emotion: "fear"}, rng)
	for i := 1; i < len(entries); i++ {
		if entries[i].Percentage > entries[i-1].Percentage {
			t.Fatalf("entries not sorted descending at %d: %v", i, entries)
		}
	}
}

func TestBreakdownColorsAssigned(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for _, e := range Breakdown(Result{Score: 0.9, Emotion: "gratitude"}, rng) {
		if e.Color == "" {
			t.Errorf("entry %s missing color token", e.Emotion)
		}
	}
}
