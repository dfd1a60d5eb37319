package handlers

import (
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"mindgarden/internal/analysis"
	"mindgarden/internal/config"
	"mindgarden/internal/database"
	"mindgarden/internal/gamification"
	"mindgarden/internal/models"
	"mindgarden/internal/repository"
	"mindgarden/internal/voice"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SubmissionHandler processes the three inbound data channels: journal text,
// voice recordings, and third-party feedback. All writes for one submission
// run in a single transaction.
type SubmissionHandler struct {
	log        *zap.Logger
	classifier analysis.Classifier
}

func NewSubmissionHandler(log *zap.Logger, classifier analysis.Classifier) *SubmissionHandler {
	return &SubmissionHandler{log: log, classifier: classifier}
}

type textMessageRequest struct {
	UserID  int    `json:"user_id" binding:"required"`
	Message string `json:"message" binding:"required"`
	Type    string `json:"type"`
}

// TextMessage scores a text submission, tiers it for risk, and credits the
// gamification ledger.
func (h *SubmissionHandler) TextMessage(c *gin.Context) {
	var req textMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}
	if req.Type == "" {
		req.Type = "manual_input"
	}

	result := h.classifier.Classify(c.Request.Context(), req.Message)
	riskLevel := string(analysis.Tier(result.Score))

	event := gamification.TextSubmission{SentimentScore: result.Score}
	delta, _ := event.Delta()

	var dataID int
	err := database.DB.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		data := models.UserData{
			UserID:   req.UserID,
			DataType: "text_" + req.Type,
			Content:  req.Message,
		}
		if err := repository.InsertUserData(tx, &data); err != nil {
			return err
		}
		dataID = data.ID

		row := models.AnalysisResult{
			UserID:          req.UserID,
			DataID:          data.ID,
			SentimentScore:  result.Score,
			EmotionDetected: result.Emotion,
			RiskLevel:       &riskLevel,
			ConfidenceScore: result.Confidence,
		}
		if err := repository.InsertAnalysis(tx, &row); err != nil {
			return err
		}

		return repository.ApplyDelta(tx, req.UserID, delta)
	})
	if err != nil {
		h.log.Error("Failed to process text submission", zap.Int("userID", req.UserID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process submission"})
		return
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	c.JSON(http.StatusCreated, gin.H{
		"status":            "processed",
		"data_id":           dataID,
		"analysis":          result,
		"risk_level":        riskLevel,
		"emotion_breakdown": analysis.Breakdown(result, rng),
		"points_earned":     delta.Points,
	})
}

// VoiceMessage stores an uploaded recording and its mock analysis. The
// analysis row carries the mood score; the metrics snapshot gets points only.
func (h *SubmissionHandler) VoiceMessage(c *gin.Context) {
	file, err := c.FormFile("voice_file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No voice file provided"})
		return
	}
	userID, err := strconv.Atoi(c.PostForm("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	filename := fmt.Sprintf("voice_%d_%s_%s.wav",
		userID, time.Now().Format("20060102_150405"), uuid.NewString()[:8])
	dest := filepath.Join(config.Conf.Uploads.Directory, "voice", filename)
	if err := c.SaveUploadedFile(file, dest); err != nil {
		h.log.Error("Failed to save voice file", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store recording"})
		return
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	voiceAnalysis := voice.Analyze(rng)

	event := gamification.VoiceSubmission{MoodScore: voiceAnalysis.MoodScore}
	delta, _ := event.Delta()

	var dataID int
	err = database.DB.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		data := models.UserData{
			UserID:   userID,
			DataType: "voice_message",
			FilePath: dest,
		}
		if err := repository.InsertUserData(tx, &data); err != nil {
			return err
		}
		dataID = data.ID

		row := models.AnalysisResult{
			UserID:          userID,
			DataID:          data.ID,
			SentimentScore:  voiceAnalysis.MoodScore,
			EmotionDetected: voiceAnalysis.Mood,
			ConfidenceScore: 0.7,
		}
		if err := repository.InsertAnalysis(tx, &row); err != nil {
			return err
		}

		return repository.ApplyDelta(tx, userID, delta)
	})
	if err != nil {
		h.log.Error("Failed to process voice submission", zap.Int("userID", userID), zap.Error(err))
		// The transaction rolled back; remove the orphaned upload.
		os.Remove(dest)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process submission"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":        "processed",
		"data_id":       dataID,
		"analysis":      voiceAnalysis,
		"points_earned": delta.Points,
	})
}

type familyFeedbackRequest struct {
	UserID       int    `json:"user_id" binding:"required"`
	Feedback     string `json:"feedback" binding:"required"`
	Relationship string `json:"relationship"`
}

// FamilyFeedback scores third-party feedback with the relationship weight
// applied before risk tiering.
func (h *SubmissionHandler) FamilyFeedback(c *gin.Context) {
	var req familyFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}
	if req.Relationship == "" {
		req.Relationship = "family"
	}

	result := h.classifier.Classify(c.Request.Context(), req.Feedback)

	event := gamification.FamilyFeedback{
		Relationship: req.Relationship,
		RawSentiment: result.Score,
	}
	weighted := event.WeightedScore()
	riskLevel := string(analysis.Tier(weighted))
	delta, _ := event.Delta()

	err := database.DB.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		data := models.UserData{
			UserID:   req.UserID,
			DataType: "feedback_" + req.Relationship,
			Content:  req.Feedback,
		}
		if err := repository.InsertUserData(tx, &data); err != nil {
			return err
		}

		row := models.AnalysisResult{
			UserID:          req.UserID,
			DataID:          data.ID,
			SentimentScore:  weighted,
			EmotionDetected: result.Emotion,
			RiskLevel:       &riskLevel,
			ConfidenceScore: result.Confidence,
		}
		if err := repository.InsertAnalysis(tx, &row); err != nil {
			return err
		}

		return repository.ApplyDelta(tx, req.UserID, delta)
	})
	if err != nil {
		h.log.Error("Failed to process family feedback", zap.Int("userID", req.UserID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process feedback"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":             "feedback_processed",
		"analysis":           result,
		"weighted_sentiment": weighted,
		"risk_level":         riskLevel,
		"points_earned":      delta.Points,
	})
}
