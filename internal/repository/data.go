package repository

import (
	"context"
	"time"

	"mindgarden/internal/database"
	"mindgarden/internal/models"

	"gorm.io/gorm"
)

// InsertUserData stores one raw submission row inside the request transaction.
func InsertUserData(tx *gorm.DB, row *models.UserData) error {
	return tx.Create(row).Error
}

// InsertAnalysis stores the scored counterpart of a submission.
func InsertAnalysis(tx *gorm.DB, row *models.AnalysisResult) error {
	return tx.Create(row).Error
}

// RecentAnalysis is one row of the dashboard's recent-activity feed.
type RecentAnalysis struct {
	ID              int       `json:"id"`
	DataID          int       `json:"data_id"`
	SentimentScore  float64   `json:"sentiment_score"`
	EmotionDetected string    `json:"emotion_detected"`
	RiskLevel       *string   `json:"risk_level"`
	ConfidenceScore float64   `json:"confidence_score"`
	CreatedAt       time.Time `json:"created_at"`
	DataType        string    `json:"data_type"`
	DataCreatedAt   time.Time `json:"data_created_at"`
}

// RecentAnalyses returns the user's latest scored submissions joined with
// their submission type.
func RecentAnalyses(ctx context.Context, userID, limit int) ([]RecentAnalysis, error) {
	var rows []RecentAnalysis
	err := database.DB.WithContext(ctx).Raw(`
		SELECT ar.id, ar.data_id, ar.sentiment_score, ar.emotion_detected,
		       ar.risk_level, ar.confidence_score, ar.created_at,
		       ud.data_type, ud.created_at AS data_created_at
		FROM analysis_results ar
		JOIN user_data ud ON ar.data_id = ud.id
		WHERE ar.user_id = ?
		ORDER BY ar.created_at DESC
		LIMIT ?`, userID, limit).Scan(&rows).Error
	return rows, err
}

// TypeCount is a per-submission-type tally.
type TypeCount struct {
	DataType string `json:"data_type"`
	Count    int    `json:"count"`
}

// DataCounts groups the user's submissions by type.
func DataCounts(ctx context.Context, userID int) ([]TypeCount, error) {
	var counts []TypeCount
	err := database.DB.WithContext(ctx).Raw(`
		SELECT data_type, COUNT(*) AS count
		FROM user_data
		WHERE user_id = ?
		GROUP BY data_type`, userID).Scan(&counts).Error
	return counts, err
}
