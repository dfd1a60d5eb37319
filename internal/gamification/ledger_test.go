package gamification

import (
	"errors"
	"testing"
)

func TestTextSubmissionDelta(t *testing.T) {
	d, err := TextSubmission{SentimentScore: 0.9}.Delta()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Points != 10 {
		t.Errorf("points = %d, want 10", d.Points)
	}
	if d.MoodScore == nil || *d.MoodScore != 0.9 {
		t.Errorf("mood score = %v, want 0.9", d.MoodScore)
	}
	if d.IncrementStreak || d.IncrementCheckIns {
		t.Error("text submission should not touch streak or check-ins")
	}
}

func TestVoiceSubmissionDelta(t *testing.T) {
	d, err := VoiceSubmission{MoodScore: 0.7}.Delta()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Points != 15 {
		t.Errorf("points = %d, want 15", d.Points)
	}
	if d.MoodScore != nil {
		t.Errorf("voice submission should not write mood to metrics, got %v", *d.MoodScore)
	}
}

func TestFamilyFeedbackWeighting(t *testing.T) {
	tests := []struct {
		name         string
		relationship string
		raw          float64
		want         float64
	}{
		{"family weight applies", "family", 0.6, 0.9},
		{"family weight caps at one", "family", 0.8, 1.0},
		{"friend unweighted", "friend", 0.6, 0.6},
		{"unknown relationship unweighted", "coworker", 0.9, 0.9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := FamilyFeedback{Relationship: tt.relationship, RawSentiment: tt.raw}
			if got := e.WeightedScore(); got != tt.want {
				t.Errorf("weighted score = %v, want %v", got, tt.want)
			}
			d, err := e.Delta()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if d.Points != 20 {
				t.Errorf("points = %d, want 20", d.Points)
			}
			if d.MoodScore == nil || *d.MoodScore != tt.want {
				t.Errorf("mood score = %v, want %v", d.MoodScore, tt.want)
			}
		})
	}
}

func TestEnergyCheckInValidation(t *testing.T) {
	for _, level := range []int{0, -1, 6, 100} {
		d, err := EnergyCheckIn{Level: level}.Delta()
		if !errors.Is(err, ErrInvalidEnergyLevel) {
			t.Errorf("level %d: err = %v, want ErrInvalidEnergyLevel", level, err)
		}
		if d != (Delta{}) {
			t.Errorf("level %d: rejected check-in produced non-zero delta %+v", level, d)
		}
	}

	for level := 1; level <= 5; level++ {
		d, err := EnergyCheckIn{Level: level}.Delta()
		if err != nil {
			t.Fatalf("level %d: unexpected error: %v", level, err)
		}
		if d.Points != 5 {
			t.Errorf("level %d: points = %d, want 5", level, d.Points)
		}
		if d.EnergyLevel == nil || *d.EnergyLevel != level {
			t.Errorf("level %d: energy = %v", level, d.EnergyLevel)
		}
		if !d.IncrementCheckIns || !d.IncrementStreak {
			t.Errorf("level %d: check-in must bump streak and check-in count", level)
		}
	}
}

func TestPowerUpPoints(t *testing.T) {
	tests := []struct {
		activity string
		want     int
	}{
		{"breathing", 15},
		{"gratitude", 20},
		{"connection", 25},
		{"meditation", 10},
		{"", 10},
	}

	for _, tt := range tests {
		d, err := PowerUp{ActivityType: tt.activity}.Delta()
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", tt.activity, err)
		}
		if d.Points != tt.want {
			t.Errorf("%q: points = %d, want %d", tt.activity, d.Points, tt.want)
		}
	}
}

func TestPowerUpLogContent(t *testing.T) {
	got := PowerUp{ActivityType: "breathing"}.LogContent()
	if got != "Completed breathing power-up" {
		t.Errorf("log content = %q", got)
	}
}

func TestMockBatchDelta(t *testing.T) {
	tests := []struct {
		name       string
		avg        float64
		count      int
		wantPoints int
		wantEnergy int
	}{
		{"mid sentiment", 0.5, 10, 100, 3},
		{"high sentiment rounds", 0.9, 3, 30, 5},
		{"low sentiment clamps to floor", 0.05, 2, 20, 1},
		{"zero sentiment clamps to floor", 0.0, 1, 10, 1},
		{"full sentiment hits ceiling", 1.0, 4, 40, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := MockBatch{AvgSentiment: tt.avg, Count: tt.count}.Delta()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if d.Points != tt.wantPoints {
				t.Errorf("points = %d, want %d", d.Points, tt.wantPoints)
			}
			if d.EnergyLevel == nil || *d.EnergyLevel != tt.wantEnergy {
				t.Errorf("energy = %v, want %d", d.EnergyLevel, tt.wantEnergy)
			}
			if d.MoodScore == nil || *d.MoodScore != tt.avg {
				t.Errorf("mood score = %v, want %v", d.MoodScore, tt.avg)
			}
			if !d.IncrementCheckIns || !d.IncrementStreak {
				t.Error("batch must bump streak and check-in count")
			}
		})
	}
}

func TestPointsNeverNegative(t *testing.T) {
	events := []Event{
		TextSubmission{SentimentScore: 0},
		VoiceSubmission{MoodScore: 0},
		FamilyFeedback{Relationship: "family", RawSentiment: 0},
		EnergyCheckIn{Level: 1},
		PowerUp{ActivityType: "unknown"},
		MockBatch{AvgSentiment: 0, Count: 0},
	}
	for _, e := range events {
		d, err := e.Delta()
		if err != nil {
			t.Fatalf("%T: unexpected error: %v", e, err)
		}
		if d.Points < 0 {
			t.Errorf("%T: negative points %d", e, d.Points)
		}
	}
}
