package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/tmc/langchaingo/llms"
	"go.uber.org/zap"
)

// sentimentLevels quantizes the model's native sentiment label into exactly
// three score levels. Covers the label families emitted by the common
// sentiment heads; unknown labels land on neutral.
var sentimentLevels = map[string]float64{
	"LABEL_2": 0.8, "POSITIVE": 0.8, "POS": 0.8,
	"LABEL_0": 0.2, "NEGATIVE": 0.2, "NEG": 0.2,
	"LABEL_1": 0.5, "NEUTRAL": 0.5, "NEU": 0.5,
}

const classifyPrompt = `You are a text classification service for a mental-health journal.
Classify the sentiment and the dominant emotion of the user's text.
Respond with only a JSON object, no prose and no code fences:
{"sentiment": "POSITIVE"|"NEGATIVE"|"NEUTRAL", "emotion": "<one lowercase word, e.g. joy, sadness, anger, fear, surprise, neutral>", "confidence": <0..1>}`

// ModelClassifier asks an LLM for a sentiment/emotion verdict and quantizes
// it into the normalized Result. Every failure mode, including timeout and
// malformed output, recovers through the keyword fallback so callers never
// see a classification error.
type ModelClassifier struct {
	llm      llms.Model
	fallback KeywordClassifier
	timeout  time.Duration
	log      *zap.Logger
}

func NewModelClassifier(llm llms.Model, timeout time.Duration, log *zap.Logger) *ModelClassifier {
	return &ModelClassifier{llm: llm, timeout: timeout, log: log}
}

func (c *ModelClassifier) Classify(ctx context.Context, text string) Result {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	result, err := c.ask(ctx, text)
	if err != nil {
		c.log.Warn("ML classification failed, using keyword fallback", zap.Error(err))
		return c.fallback.Classify(ctx, text)
	}
	return result
}

type modelVerdict struct {
	Sentiment  string  `json:"sentiment"`
	Emotion    string  `json:"emotion"`
	Confidence float64 `json:"confidence"`
}

func (c *ModelClassifier) ask(ctx context.Context, text string) (Result, error) {
	messages := []llms.MessageContent{
		{
			Role:  llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{llms.TextPart(classifyPrompt)},
		},
		{
			Role:  llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{llms.TextPart(text)},
		},
	}

	resp, err := c.llm.GenerateContent(ctx, messages, llms.WithTemperature(0))
	if err != nil {
		return Result{}, err
	}
	if len(resp.Choices) == 0 {
		return Result{}, fmt.Errorf("model returned no choices")
	}

	raw := strings.TrimSpace(resp.Choices[0].Content)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")

	var verdict modelVerdict
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &verdict); err != nil {
		return Result{}, fmt.Errorf("malformed model output: %w", err)
	}
	if verdict.Emotion == "" {
		return Result{}, fmt.Errorf("model output missing emotion label")
	}

	label := strings.ToUpper(strings.TrimSpace(verdict.Sentiment))
	score, ok := sentimentLevels[label]
	if !ok {
		score = 0.5
	}

	confidence := verdict.Confidence
	if confidence < 0 || confidence > 1 {
		return Result{}, fmt.Errorf("model confidence %v out of range", verdict.Confidence)
	}

	return Result{
		Score:      score,
		Emotion:    strings.ToLower(verdict.Emotion),
		Confidence: confidence,
		RawLabel:   label,
	}, nil
}
