package analysis

import (
	"context"
	"strings"
)

var positiveWords = []string{
	"happy", "good", "great", "awesome", "excellent", "love", "amazing",
	"wonderful", "fantastic", "excited", "joy", "grateful", "blessed",
}

var negativeWords = []string{
	"sad", "bad", "terrible", "awful", "hate", "stressed", "anxious",
	"depressed", "worried", "angry", "frustrated", "overwhelmed", "lonely",
}

// KeywordClassifier is the deterministic fallback: a case-insensitive scan
// against fixed positive and negative word sets. It is the default when no
// ML model is configured and the recovery path when one fails, so the same
// input must always yield the same Result.
type KeywordClassifier struct{}

func (KeywordClassifier) Classify(_ context.Context, text string) Result {
	lower := strings.ToLower(text)

	var positive, negative int
	for _, w := range positiveWords {
		if strings.Contains(lower, w) {
			positive++
		}
	}
	for _, w := range negativeWords {
		if strings.Contains(lower, w) {
			negative++
		}
	}

	switch {
	case positive > negative:
		return Result{
			Score:      min(1.0, 0.7+0.1*float64(positive)),
			Emotion:    "joy",
			Confidence: 0.8,
			RawLabel:   "POSITIVE",
		}
	case negative > positive:
		// Floor at zero: enough negative hits would otherwise push the
		// score below the valid range.
		return Result{
			Score:      max(0, 0.3-0.05*float64(negative)),
			Emotion:    "sadness",
			Confidence: 0.8,
			RawLabel:   "NEGATIVE",
		}
	default:
		return Result{
			Score:      0.5,
			Emotion:    "neutral",
			Confidence: 0.6,
			RawLabel:   "NEUTRAL",
		}
	}
}
