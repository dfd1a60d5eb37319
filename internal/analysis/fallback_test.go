package analysis

import (
	"context"
	"math"
	"testing"
)

func TestKeywordClassifier(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		wantScore   float64
		wantEmotion string
		wantConf    float64
		wantRaw     string
	}{
		{
			name:        "two positive hits",
			text:        "I am happy and grateful",
			wantScore:   0.9,
			wantEmotion: "joy",
			wantConf:    0.8,
			wantRaw:     "POSITIVE",
		},
		{
			name:        "three negative hits",
			text:        "I feel sad and anxious and stressed",
			wantScore:   0.15,
			wantEmotion: "sadness",
			wantConf:    0.8,
			wantRaw:     "NEGATIVE",
		},
		{
			name:        "no hits",
			text:        "The weather is mild today",
			wantScore:   0.5,
			wantEmotion: "neutral",
			wantConf:    0.6,
			wantRaw:     "NEUTRAL",
		},
		{
			name:        "balanced hits",
			text:        "good day but stressed evening",
			wantScore:   0.5,
			wantEmotion: "neutral",
			wantConf:    0.6,
			wantRaw:     "NEUTRAL",
		},
		{
			name:        "positive score capped at 1",
			text:        "happy good great awesome excellent love amazing",
			wantScore:   1.0,
			wantEmotion: "joy",
			wantConf:    0.8,
			wantRaw:     "POSITIVE",
		},
		{
			name:        "case insensitive matching",
			text:        "HAPPY AND GRATEFUL",
			wantScore:   0.9,
			wantEmotion: "joy",
			wantConf:    0.8,
			wantRaw:     "POSITIVE",
		},
		{
			name:        "negative score floored at zero",
			text:        "sad bad terrible awful hate stressed anxious depressed",
			wantScore:   0.0,
			wantEmotion: "sadness",
			wantConf:    0.8,
			wantRaw:     "NEGATIVE",
		},
	}

	var c KeywordClassifier
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(context.Background(), tt.text)
			if math.Abs(got.Score-tt.wantScore) > 1e-9 {
				t.Errorf("score = %v, want %v", got.Score, tt.wantScore)
			}
			if got.Emotion != tt.wantEmotion {
				t.Errorf("emotion = %q, want %q", got.Emotion, tt.wantEmotion)
			}
			if got.Confidence != tt.wantConf {
				t.Errorf("confidence = %v, want %v", got.Confidence, tt.wantConf)
			}
			if got.RawLabel != tt.wantRaw {
				t.Errorf("raw label = %q, want %q", got.RawLabel, tt.wantRaw)
			}
		})
	}
}

func TestKeywordClassifierDeterministic(t *testing.T) {
	var c KeywordClassifier
	text := "Feeling isolated and lonely lately, but grateful for small wins"
	first := c.Classify(context.Background(), text)
	for i := 0; i < 10; i++ {
		if got := c.Classify(context.Background(), text); got != first {
			t.Fatalf("classification changed between calls: %+v vs %+v", got, first)
		}
	}
}
