package models

import "time"

// AnalysisResult is the scored counterpart of a UserData row.
// RiskLevel is populated for text and feedback submissions; voice and
// anonymous mock-feedback rows leave it NULL.
type AnalysisResult struct {
	ID              int       `gorm:"primaryKey" json:"id"`
	UserID          int       `gorm:"index;not null" json:"user_id"`
	DataID          int       `gorm:"not null" json:"data_id"`
	SentimentScore  float64   `gorm:"not null" json:"sentiment_score"`
	EmotionDetected string    `gorm:"not null" json:"emotion_detected"`
	RiskLevel       *string   `json:"risk_level,omitempty"`
	ConfidenceScore float64   `gorm:"not null" json:"confidence_score"`
	CreatedAt       time.Time `json:"created_at"`
}

func (AnalysisResult) TableName() string { return "analysis_results" }
