// Package voice holds the placeholder voice-feature analyzer. Real signal
// processing (librosa-style features, speech-to-text) never shipped; the
// analyzer picks a plausible mood at random with a fixed score table, which
// is why voice analyses are stored without a risk tier.
package voice

import "math/rand"

// Features mirrors the feature block of the analysis payload.
type Features struct {
	Duration    float64 `json:"duration"`
	EnergyLevel float64 `json:"energy_level"`
}

// Analysis is the mood verdict for one recording.
type Analysis struct {
	Mood      string   `json:"mood"`
	MoodScore float64  `json:"mood_score"`
	Features  Features `json:"features"`
}

var moods = []string{"energetic", "calm", "balanced", "tired", "excited"}

var moodScores = map[string]float64{
	"energetic": 0.8,
	"excited":   0.9,
	"calm":      0.6,
	"balanced":  0.7,
	"tired":     0.3,
}

// Analyze produces a mock analysis for a recording. The rng is supplied by
// the caller so tests can pin the draw.
func Analyze(rng *rand.Rand) Analysis {
	mood := moods[rng.Intn(len(moods))]
	score := moodScores[mood]
	return Analysis{
		Mood:      mood,
		MoodScore: score,
		Features: Features{
			Duration:    10.0,
			EnergyLevel: score,
		},
	}
}
