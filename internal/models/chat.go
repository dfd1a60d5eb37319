package models

import "time"

const (
	SessionActive    = "active"
	SessionCompleted = "completed"

	SenderPatient   = "patient"
	SenderTherapist = "therapist"
)

// ChatSession is a therapist/patient conversation. Status transitions once,
// active -> completed; primary emotion tracks the last scored patient message.
type ChatSession struct {
	ID                int        `gorm:"primaryKey" json:"id"`
	PatientID         int        `gorm:"index;not null" json:"patient_id"`
	TherapistID       int        `gorm:"not null" json:"therapist_id"`
	SessionDate       time.Time  `gorm:"not null" json:"session_date"`
	Status            string     `gorm:"not null" json:"status"`
	DurationMinutes   *int       `json:"duration_minutes,omitempty"`
	PrimaryEmotion    *string    `json:"primary_emotion,omitempty"`
	EmotionConfidence *float64   `json:"emotion_confidence,omitempty"`
	EndTime           *time.Time `json:"end_time,omitempty"`
}

func (ChatSession) TableName() string { return "chat_sessions" }

// ChatMessage is immutable once written, ordered by timestamp within a session.
type ChatMessage struct {
	ID         int       `gorm:"primaryKey" json:"id"`
	SessionID  int       `gorm:"index;not null" json:"session_id"`
	SenderType string    `gorm:"not null" json:"sender_type"`
	SenderID   int       `gorm:"not null" json:"sender_id"`
	Content    string    `gorm:"not null" json:"content"`
	Timestamp  time.Time `gorm:"not null" json:"timestamp"`
}

func (ChatMessage) TableName() string { return "chat_messages" }

// EmotionAnalysis holds the sentiment verdict for a single patient message.
// Therapist messages never get one.
type EmotionAnalysis struct {
	ID              int       `gorm:"primaryKey" json:"id"`
	MessageID       int       `gorm:"uniqueIndex;not null" json:"message_id"`
	SentimentScore  float64   `gorm:"not null" json:"sentiment_score"`
	EmotionDetected string    `gorm:"not null" json:"emotion_detected"`
	ConfidenceScore float64   `gorm:"not null" json:"confidence_score"`
	CreatedAt       time.Time `json:"created_at"`
}

func (EmotionAnalysis) TableName() string { return "emotion_analysis" }

// EmotionHistory is the per-session timeline of detected emotions.
type EmotionHistory struct {
	ID         int       `gorm:"primaryKey" json:"id"`
	SessionID  int       `gorm:"index;not null" json:"session_id"`
	MessageID  int       `gorm:"not null" json:"message_id"`
	Emotion    string    `gorm:"not null" json:"emotion"`
	Confidence float64   `gorm:"not null" json:"confidence"`
	Timestamp  time.Time `gorm:"not null" json:"timestamp"`
}

func (EmotionHistory) TableName() string { return "emotion_history" }
