package handlers

import (
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"mindgarden/internal/analysis"
	"mindgarden/internal/config"
	"mindgarden/internal/database"
	"mindgarden/internal/models"
	"mindgarden/internal/notes"
	"mindgarden/internal/repository"
	"mindgarden/internal/voice"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ChatHandler manages the therapist chat lifecycle: sessions, messages with
// per-message emotion analysis, voice-call analyses, and the SOAP note
// generated when a session ends.
type ChatHandler struct {
	log        *zap.Logger
	classifier analysis.Classifier
}

func NewChatHandler(log *zap.Logger, classifier analysis.Classifier) *ChatHandler {
	return &ChatHandler{log: log, classifier: classifier}
}

type startSessionRequest struct {
	PatientID   int `json:"patient_id"`
	TherapistID int `json:"therapist_id"`
}

func (h *ChatHandler) StartSession(c *gin.Context) {
	var req startSessionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
	}
	if req.PatientID == 0 {
		req.PatientID = 1
	}
	if req.TherapistID == 0 {
		req.TherapistID = 1
	}

	sessionID, err := repository.StartSession(c.Request.Context(), req.PatientID, req.TherapistID)
	if err != nil {
		h.log.Error("Failed to start chat session", zap.Int("patientID", req.PatientID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start session"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"session_id": sessionID,
		"status":     models.SessionActive,
		"message":    "Chat session started",
	})
}

func (h *ChatHandler) ListSessions(c *gin.Context) {
	sessions, err := repository.ListSessions(c.Request.Context())
	if err != nil {
		h.log.Error("Failed to list chat sessions", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load sessions"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessions": sessions})
}

// SessionDetail returns the session header, the transcript with per-message
// emotions, the emotion timeline, and the SOAP note when one exists.
func (h *ChatHandler) SessionDetail(c *gin.Context) {
	sessionID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid session id"})
		return
	}

	ctx := c.Request.Context()

	overview, err := repository.GetSessionOverview(ctx, sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
			return
		}
		h.log.Error("Failed to load session", zap.Int("sessionID", sessionID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load session"})
		return
	}

	messages, err := repository.SessionMessages(ctx, sessionID)
	if err != nil {
		h.log.Error("Failed to load session messages", zap.Int("sessionID", sessionID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load session"})
		return
	}

	history, err := repository.SessionEmotionHistory(ctx, sessionID)
	if err != nil {
		h.log.Error("Failed to load emotion history", zap.Int("sessionID", sessionID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load session"})
		return
	}

	payload := gin.H{
		"session":         overview,
		"messages":        messages,
		"emotion_history": history,
	}
	if note, err := repository.GetNote(ctx, sessionID); err == nil {
		payload["soap_note"] = note
	}

	c.JSON(http.StatusOK, payload)
}

type chatMessageRequest struct {
	Content    string `json:"content" binding:"required"`
	SenderType string `json:"sender_type"`
	SenderID   int    `json:"sender_id"`
}

// SendMessage appends a transcript message. Patient messages are scored and
// feed the session's primary emotion and emotion timeline; therapist
// messages are stored as-is.
func (h *ChatHandler) SendMessage(c *gin.Context) {
	sessionID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid session id"})
		return
	}

	var req chatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}
	if req.SenderType == "" {
		req.SenderType = models.SenderTherapist
	}
	if req.SenderID == 0 {
		req.SenderID = 1
	}

	ctx := c.Request.Context()

	if _, err := repository.GetSession(ctx, sessionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
			return
		}
		h.log.Error("Failed to load session", zap.Int("sessionID", sessionID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send message"})
		return
	}

	var (
		messageID int
		result    *analysis.Result
	)
	err = database.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		msg := models.ChatMessage{
			SessionID:  sessionID,
			SenderType: req.SenderType,
			SenderID:   req.SenderID,
			Content:    req.Content,
			Timestamp:  time.Now(),
		}
		if err := repository.AppendMessage(tx, &msg); err != nil {
			return err
		}
		messageID = msg.ID

		if req.SenderType != models.SenderPatient {
			return nil
		}

		r := h.classifier.Classify(ctx, req.Content)
		if err := repository.RecordMessageEmotion(tx, sessionID, msg.ID, r); err != nil {
			return err
		}
		result = &r
		return nil
	})
	if err != nil {
		h.log.Error("Failed to send chat message", zap.Int("sessionID", sessionID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send message"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message_id": messageID,
		"analysis":   result,
		"status":     "sent",
	})
}

type endSessionRequest struct {
	DurationMinutes int `json:"duration_minutes"`
}

// EndSession completes the session and generates its SOAP note in the same
// transaction. The note is written exactly once; ending an already-completed
// session fails on the note's unique constraint and rolls back.
func (h *ChatHandler) EndSession(c *gin.Context) {
	sessionID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid session id"})
		return
	}

	req := endSessionRequest{DurationMinutes: 25}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
		if req.DurationMinutes <= 0 {
			req.DurationMinutes = 25
		}
	}

	var soapNote string
	err = database.DB.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		if err := repository.CompleteSession(tx, sessionID, req.DurationMinutes); err != nil {
			return err
		}

		snapshot, err := repository.NoteSnapshot(tx, sessionID)
		if err != nil {
			return err
		}

		soapNote = notes.Compose(time.Now(), snapshot)
		return repository.SaveNote(tx, &models.SoapNote{
			SessionID:   sessionID,
			Content:     soapNote,
			Emotions:    notes.Dedupe(snapshot.Emotions),
			GeneratedAt: time.Now(),
		})
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
			return
		}
		h.log.Error("Failed to end chat session", zap.Int("sessionID", sessionID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to end session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"session_id": sessionID,
		"status":     models.SessionCompleted,
		"soap_note":  soapNote,
	})
}

// VoiceAnalysis stores a call recording uploaded mid-session and attributes
// its mock analysis to the session's patient. No risk tier is recorded for
// voice analyses.
func (h *ChatHandler) VoiceAnalysis(c *gin.Context) {
	file, err := c.FormFile("audio_file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No audio file provided"})
		return
	}
	sessionID, err := strconv.Atoi(c.PostForm("session_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	ctx := c.Request.Context()

	session, err := repository.GetSession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
			return
		}
		h.log.Error("Failed to load session", zap.Int("sessionID", sessionID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to analyze call"})
		return
	}

	filename := fmt.Sprintf("call_%d_%s_%s.wav",
		sessionID, time.Now().Format("20060102_150405"), uuid.NewString()[:8])
	dest := filepath.Join(config.Conf.Uploads.Directory, "calls", filename)
	if err := c.SaveUploadedFile(file, dest); err != nil {
		h.log.Error("Failed to save call recording", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store recording"})
		return
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	voiceAnalysis := voice.Analyze(rng)

	err = database.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		data := models.UserData{
			UserID:   session.PatientID,
			DataType: "voice_call",
			FilePath: dest,
			Content:  fmt.Sprintf("Voice call analysis: %s", voiceAnalysis.Mood),
		}
		if err := repository.InsertUserData(tx, &data); err != nil {
			return err
		}

		row := models.AnalysisResult{
			UserID:          session.PatientID,
			DataID:          data.ID,
			SentimentScore:  voiceAnalysis.MoodScore,
			EmotionDetected: voiceAnalysis.Mood,
			ConfidenceScore: 0.8,
		}
		return repository.InsertAnalysis(tx, &row)
	})
	if err != nil {
		h.log.Error("Failed to store call analysis", zap.Int("sessionID", sessionID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to analyze call"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"analysis": voiceAnalysis,
		"status":   "analyzed",
	})
}
