package repository

import (
	"context"
	"time"

	"mindgarden/internal/analysis"
	"mindgarden/internal/database"
	"mindgarden/internal/models"
	"mindgarden/internal/notes"

	"gorm.io/gorm"
)

// StartSession creates a new active chat session and returns its id.
func StartSession(ctx context.Context, patientID, therapistID int) (int, error) {
	session := models.ChatSession{
		PatientID:   patientID,
		TherapistID: therapistID,
		SessionDate: time.Now(),
		Status:      models.SessionActive,
	}
	err := database.DB.WithContext(ctx).Create(&session).Error
	return session.ID, err
}

// SessionSummary is one row of the session list view.
type SessionSummary struct {
	SessionID         int       `json:"session_id"`
	PatientID         int       `json:"patient_id"`
	PatientName       string    `json:"patient_name"`
	Email             string    `json:"email"`
	SessionDate       time.Time `json:"session_date"`
	DurationMinutes   *int      `json:"duration_minutes"`
	Status            string    `json:"status"`
	PrimaryEmotion    *string   `json:"primary_emotion"`
	EmotionConfidence *float64  `json:"emotion_confidence"`
	MessageCount      int       `json:"message_count"`
}

// ListSessions returns every session with its patient and message count,
// newest first.
func ListSessions(ctx context.Context) ([]SessionSummary, error) {
	var sessions []SessionSummary
	err := database.DB.WithContext(ctx).Raw(`
		SELECT
			cs.id AS session_id,
			u.id AS patient_id,
			u.name AS patient_name,
			u.email,
			cs.session_date,
			cs.duration_minutes,
			cs.status,
			cs.primary_emotion,
			cs.emotion_confidence,
			COUNT(cm.id) AS message_count
		FROM chat_sessions cs
		JOIN users u ON cs.patient_id = u.id
		LEFT JOIN chat_messages cm ON cs.id = cm.session_id
		GROUP BY cs.id, u.id, u.name, u.email, cs.session_date,
		         cs.duration_minutes, cs.status, cs.primary_emotion, cs.emotion_confidence
		ORDER BY cs.session_date DESC`).Scan(&sessions).Error
	return sessions, err
}

// SessionOverview is the session header of the transcript view, including
// the patient's current metrics.
type SessionOverview struct {
	models.ChatSession
	PatientName string   `json:"patient_name"`
	Email       string   `json:"email"`
	EnergyLevel *int     `json:"energy_level"`
	MoodScore   *float64 `json:"mood_score"`
}

// GetSessionOverview loads one session with patient info, or
// gorm.ErrRecordNotFound when the id does not resolve.
func GetSessionOverview(ctx context.Context, sessionID int) (*SessionOverview, error) {
	var overview SessionOverview
	res := database.DB.WithContext(ctx).Raw(`
		SELECT cs.*, u.name AS patient_name, u.email,
		       hm.energy_level, hm.mood_score
		FROM chat_sessions cs
		JOIN users u ON cs.patient_id = u.id
		LEFT JOIN health_metrics hm ON u.id = hm.user_id
		WHERE cs.id = ?`, sessionID).Scan(&overview)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &overview, nil
}

// GetSession loads the bare session row.
func GetSession(ctx context.Context, sessionID int) (*models.ChatSession, error) {
	var session models.ChatSession
	if err := database.DB.WithContext(ctx).First(&session, sessionID).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

// MessageWithEmotion is a transcript message with its analysis, when one
// exists (therapist messages never have one).
type MessageWithEmotion struct {
	models.ChatMessage
	SentimentScore  *float64 `json:"sentiment_score"`
	EmotionDetected *string  `json:"emotion_detected"`
	ConfidenceScore *float64 `json:"confidence_score"`
}

// SessionMessages returns the session transcript in timestamp order.
func SessionMessages(ctx context.Context, sessionID int) ([]MessageWithEmotion, error) {
	var messages []MessageWithEmotion
	err := database.DB.WithContext(ctx).Raw(`
		SELECT cm.*, ea.sentiment_score, ea.emotion_detected, ea.confidence_score
		FROM chat_messages cm
		LEFT JOIN emotion_analysis ea ON cm.id = ea.message_id
		WHERE cm.session_id = ?
		ORDER BY cm."timestamp" ASC`, sessionID).Scan(&messages).Error
	return messages, err
}

// EmotionHistoryEntry is one point of the session's emotion timeline with
// the message that produced it.
type EmotionHistoryEntry struct {
	models.EmotionHistory
	MessageContent string `json:"message_content"`
}

// SessionEmotionHistory returns the session's emotion timeline, newest first.
func SessionEmotionHistory(ctx context.Context, sessionID int) ([]EmotionHistoryEntry, error) {
	var history []EmotionHistoryEntry
	err := database.DB.WithContext(ctx).Raw(`
		SELECT eh.*, cm.content AS message_content
		FROM emotion_history eh
		JOIN chat_messages cm ON eh.message_id = cm.id
		WHERE eh.session_id = ?
		ORDER BY eh."timestamp" DESC`, sessionID).Scan(&history).Error
	return history, err
}

// AppendMessage stores a transcript message inside the request transaction.
func AppendMessage(tx *gorm.DB, msg *models.ChatMessage) error {
	return tx.Create(msg).Error
}

// RecordMessageEmotion persists a patient message's verdict: the analysis
// row, the session's primary emotion, and the history timeline entry.
func RecordMessageEmotion(tx *gorm.DB, sessionID, messageID int, res analysis.Result) error {
	ea := models.EmotionAnalysis{
		MessageID:       messageID,
		SentimentScore:  res.Score,
		EmotionDetected: res.Emotion,
		ConfidenceScore: res.Confidence,
	}
	if err := tx.Create(&ea).Error; err != nil {
		return err
	}

	err := tx.Model(&models.ChatSession{}).
		Where("id = ?", sessionID).
		Updates(map[string]interface{}{
			"primary_emotion":    res.Emotion,
			"emotion_confidence": res.Confidence,
		}).Error
	if err != nil {
		return err
	}

	history := models.EmotionHistory{
		SessionID:  sessionID,
		MessageID:  messageID,
		Emotion:    res.Emotion,
		Confidence: res.Confidence,
		Timestamp:  time.Now(),
	}
	return tx.Create(&history).Error
}

// CompleteSession marks the session completed with its duration and end
// time. Returns gorm.ErrRecordNotFound for an unknown session.
func CompleteSession(tx *gorm.DB, sessionID, durationMinutes int) error {
	res := tx.Model(&models.ChatSession{}).
		Where("id = ?", sessionID).
		Updates(map[string]interface{}{
			"status":           models.SessionCompleted,
			"duration_minutes": durationMinutes,
			"end_time":         time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// NoteSnapshot gathers everything the SOAP composer reads: session metadata,
// the patient's name, and the emotions detected across patient messages in
// timestamp order.
func NoteSnapshot(tx *gorm.DB, sessionID int) (notes.Snapshot, error) {
	var header struct {
		PatientName     string
		DurationMinutes *int
		PrimaryEmotion  *string
	}
	res := tx.Raw(`
		SELECT u.name AS patient_name, cs.duration_minutes, cs.primary_emotion
		FROM chat_sessions cs
		JOIN users u ON cs.patient_id = u.id
		WHERE cs.id = ?`, sessionID).Scan(&header)
	if res.Error != nil {
		return notes.Snapshot{}, res.Error
	}
	if res.RowsAffected == 0 {
		return notes.Snapshot{}, gorm.ErrRecordNotFound
	}

	var emotions []string
	err := tx.Model(&models.ChatMessage{}).
		Joins("JOIN emotion_analysis ea ON chat_messages.id = ea.message_id").
		Where("chat_messages.session_id = ? AND chat_messages.sender_type = ?", sessionID, models.SenderPatient).
		Order(`chat_messages."timestamp"`).
		Pluck("ea.emotion_detected", &emotions).Error
	if err != nil {
		return notes.Snapshot{}, err
	}

	snapshot := notes.Snapshot{
		PatientName:     header.PatientName,
		DurationMinutes: header.DurationMinutes,
		Emotions:        emotions,
	}
	if header.PrimaryEmotion != nil {
		snapshot.PrimaryEmotion = *header.PrimaryEmotion
	}
	return snapshot, nil
}

// SaveNote stores the generated clinical note. The unique index on
// session_id enforces the generate-once rule.
func SaveNote(tx *gorm.DB, note *models.SoapNote) error {
	return tx.Create(note).Error
}

// GetNote returns the stored note for a session, if one was generated.
func GetNote(ctx context.Context, sessionID int) (*models.SoapNote, error) {
	var note models.SoapNote
	err := database.DB.WithContext(ctx).Where("session_id = ?", sessionID).First(&note).Error
	if err != nil {
		return nil, err
	}
	return &note, nil
}
