package analysis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tmc/langchaingo/llms"
	"go.uber.org/zap"
)

// fakeModel returns a canned response or error for every call.
type fakeModel struct {
	content string
	err     error
}

func (f *fakeModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: f.content}},
	}, nil
}

func (f *fakeModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return f.content, f.err
}

func TestModelClassifierQuantizesSentiment(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantScore float64
	}{
		{"positive label", `{"sentiment": "POSITIVE", "emotion": "joy", "confidence": 0.92}`, 0.8},
		{"negative label", `{"sentiment": "NEGATIVE", "emotion": "sadness", "confidence": 0.88}`, 0.2},
		{"neutral label", `{"sentiment": "NEUTRAL", "emotion": "neutral", "confidence": 0.5}`, 0.5},
		{"numbered label family", `{"sentiment": "LABEL_2", "emotion": "joy", "confidence": 0.7}`, 0.8},
		{"short label family", `{"sentiment": "neg", "emotion": "fear", "confidence": 0.6}`, 0.2},
		{"unknown label lands on neutral", `{"sentiment": "MIXED", "emotion": "surprise", "confidence": 0.4}`, 0.5},
		{"fenced output tolerated", "```json\n{\"sentiment\": \"POSITIVE\", \"emotion\": \"joy\", \"confidence\": 0.9}\n```", 0.8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewModelClassifier(&fakeModel{content: tt.content}, time.Second, zap.NewNop())
			got := c.Classify(context.Background(), "some text")
			if got.Score != tt.wantScore {
				t.Errorf("score = %v, want %v", got.Score, tt.wantScore)
			}
		})
	}
}

func TestModelClassifierFallsBack(t *testing.T) {
	tests := []struct {
		name string
		fake *fakeModel
	}{
		{"model error", &fakeModel{err: errors.New("inference backend down")}},
		{"malformed output", &fakeModel{content: "I'd rate this as quite positive overall."}},
		{"missing emotion", &fakeModel{content: `{"sentiment": "POSITIVE", "confidence": 0.9}`}},
		{"confidence out of range", &fakeModel{content: `{"sentiment": "POSITIVE", "emotion": "joy", "confidence": 12}`}},
	}

	want := KeywordClassifier{}.Classify(context.Background(), "I am happy and grateful")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewModelClassifier(tt.fake, time.Second, zap.NewNop())
			got := c.Classify(context.Background(), "I am happy and grateful")
			if got != want {
				t.Errorf("fallback result = %+v, want %+v", got, want)
			}
		})
	}
}

func TestModelClassifierPassesEmotionThrough(t *testing.T) {
	c := NewModelClassifier(&fakeModel{
		content: `{"sentiment": "NEGATIVE", "emotion": "Anger", "confidence": 0.77}`,
	}, time.Second, zap.NewNop())

	got := c.Classify(context.Background(), "some text")
	if got.Emotion != "anger" {
		t.Errorf("emotion = %q, want %q", got.Emotion, "anger")
	}
	if got.Confidence != 0.77 {
		t.Errorf("confidence = %v, want %v", got.Confidence, 0.77)
	}
	if got.RawLabel != "NEGATIVE" {
		t.Errorf("raw label = %q, want %q", got.RawLabel, "NEGATIVE")
	}
}
