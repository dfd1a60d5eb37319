package handlers

import (
	"net/http"
	"strconv"

	"mindgarden/internal/analysis"
	"mindgarden/internal/database"
	"mindgarden/internal/gamification"
	"mindgarden/internal/mockdata"
	"mindgarden/internal/models"
	"mindgarden/internal/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MockDataHandler bulk-loads the canned corpus for demos and testing.
type MockDataHandler struct {
	log        *zap.Logger
	classifier analysis.Classifier
}

func NewMockDataHandler(log *zap.Logger, classifier analysis.Classifier) *MockDataHandler {
	return &MockDataHandler{log: log, classifier: classifier}
}

// Generate inserts the corpus as scored submissions, then posts one batch
// event to the ledger. Conversation rows are risk-tiered; the anonymous
// feedback rows are stored without a tier.
func (h *MockDataHandler) Generate(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	var (
		totalSentiment float64
		count          int
		batchDelta     gamification.Delta
	)

	err = database.DB.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		for _, conv := range mockdata.Conversations {
			data := models.UserData{
				UserID:   userID,
				DataType: "mock_conversation",
				Content:  conv.Text,
			}
			if err := repository.InsertUserData(tx, &data); err != nil {
				return err
			}

			// Emotion and confidence come from the classifier; the canned
			// sentiment keeps analytics consistent across runs.
			result := h.classifier.Classify(c.Request.Context(), conv.Text)
			score := conv.Sentiment
			riskLevel := string(analysis.Tier(score))

			row := models.AnalysisResult{
				UserID:          userID,
				DataID:          data.ID,
				SentimentScore:  score,
				EmotionDetected: result.Emotion,
				RiskLevel:       &riskLevel,
				ConfidenceScore: result.Confidence,
			}
			if err := repository.InsertAnalysis(tx, &row); err != nil {
				return err
			}

			totalSentiment += score
			count++
		}

		for _, feedback := range mockdata.FamilyFeedback {
			data := models.UserData{
				UserID:   userID,
				DataType: "mock_family_feedback",
				Content:  feedback.Text,
			}
			if err := repository.InsertUserData(tx, &data); err != nil {
				return err
			}

			result := h.classifier.Classify(c.Request.Context(), feedback.Text)
			score := feedback.Sentiment

			row := models.AnalysisResult{
				UserID:          userID,
				DataID:          data.ID,
				SentimentScore:  score,
				EmotionDetected: result.Emotion,
				ConfidenceScore: result.Confidence,
			}
			if err := repository.InsertAnalysis(tx, &row); err != nil {
				return err
			}

			totalSentiment += score
			count++
		}

		avgSentiment := 0.5
		if count > 0 {
			avgSentiment = totalSentiment / float64(count)
		}

		event := gamification.MockBatch{AvgSentiment: avgSentiment, Count: count}
		delta, err := event.Delta()
		if err != nil {
			return err
		}
		batchDelta = delta

		return repository.ApplyDelta(tx, userID, delta)
	})
	if err != nil {
		h.log.Error("Failed to generate mock data", zap.Int("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate mock data"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":             "Mock data generated and processed successfully",
		"data_points":         count,
		"avg_sentiment":       *batchDelta.MoodScore,
		"energy_level":        *batchDelta.EnergyLevel,
		"total_points_earned": batchDelta.Points,
	})
}
