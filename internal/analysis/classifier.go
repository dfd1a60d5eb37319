package analysis

import (
	"context"
	"time"

	"mindgarden/internal/config"

	"github.com/tmc/langchaingo/llms/openai"
	"go.uber.org/zap"
)

// Result is the normalized output of one classification pass. Score is in
// [0,1], higher means more positive. Values are never mutated after creation.
type Result struct {
	Score      float64 `json:"sentiment_score"`
	Emotion    string  `json:"emotion"`
	Confidence float64 `json:"confidence"`
	RawLabel   string  `json:"raw_sentiment"`
}

// Classifier scores a piece of text. Implementations must recover from their
// own failures; callers always get a usable Result.
type Classifier interface {
	Classify(ctx context.Context, text string) Result
}

// Modes reported by the health endpoint.
const (
	ModeLoaded   = "loaded"
	ModeFallback = "fallback_mode"
)

// NewClassifier builds the classifier selected by configuration: a model
// adapter when an ML model is configured and reachable, the deterministic
// keyword classifier otherwise. The returned mode string is what the health
// endpoint reports.
func NewClassifier(cfg config.MLConfig, log *zap.Logger) (Classifier, string) {
	if cfg.Model == "" {
		log.Info("No ML model configured, using keyword fallback classifier")
		return KeywordClassifier{}, ModeFallback
	}

	opts := []openai.Option{
		openai.WithModel(cfg.Model),
		openai.WithToken(cfg.APIKey),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, openai.WithBaseURL(cfg.BaseURL))
	}

	llm, err := openai.New(opts...)
	if err != nil {
		log.Warn("Failed to initialize ML classifier, using keyword fallback", zap.Error(err))
		return KeywordClassifier{}, ModeFallback
	}

	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	log.Info("ML classifier loaded", zap.String("model", cfg.Model))
	return NewModelClassifier(llm, timeout, log), ModeLoaded
}
