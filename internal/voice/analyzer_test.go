package voice

import (
	"math/rand"
	"testing"
)

func TestAnalyzeScoreMatchesMood(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		a := Analyze(rng)
		want, ok := moodScores[a.Mood]
		if !ok {
			t.Fatalf("unknown mood %q", a.Mood)
		}
		if a.MoodScore != want {
			t.Errorf("mood %q: score = %v, want %v", a.Mood, a.MoodScore, want)
		}
		if a.Features.EnergyLevel != a.MoodScore {
			t.Errorf("mood %q: energy %v should equal score %v", a.Mood, a.Features.EnergyLevel, a.MoodScore)
		}
		if a.Features.Duration != 10.0 {
			t.Errorf("duration = %v, want 10.0", a.Features.Duration)
		}
	}
}

func TestAnalyzeDeterministicWithSeed(t *testing.T) {
	a := Analyze(rand.New(rand.NewSource(42)))
	b := Analyze(rand.New(rand.NewSource(42)))
	if a != b {
		t.Errorf("same seed produced different analyses: %+v vs %+v", a, b)
	}
}

func TestAnalyzeCoversAllMoods(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	seen := make(map[string]bool)
	for i := 0; i < 500; i++ {
		seen[Analyze(rng).Mood] = true
	}
	for _, m := range moods {
		if !seen[m] {
			t.Errorf("mood %q never drawn", m)
		}
	}
}
