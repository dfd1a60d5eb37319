package repository

import (
	"context"
	"time"

	"mindgarden/internal/database"
)

// MoodTrendPoint is a daily average of sentiment scores.
type MoodTrendPoint struct {
	Date    time.Time `json:"date"`
	AvgMood float64   `json:"avg_mood"`
}

// MoodTrends returns the per-day average sentiment over the last 30 days.
func MoodTrends(ctx context.Context, userID int) ([]MoodTrendPoint, error) {
	var points []MoodTrendPoint
	err := database.DB.WithContext(ctx).Raw(`
		SELECT DATE(ar.created_at) AS date, AVG(ar.sentiment_score) AS avg_mood
		FROM analysis_results ar
		WHERE ar.user_id = ? AND ar.created_at >= NOW() - INTERVAL '30 days'
		GROUP BY DATE(ar.created_at)
		ORDER BY date`, userID).Scan(&points).Error
	return points, err
}

// EnergyTrendPoint is one recorded energy level over time.
type EnergyTrendPoint struct {
	Date        time.Time `json:"date"`
	EnergyLevel int       `json:"energy_level"`
}

// EnergyTrends returns the user's energy levels recorded in the last 30 days.
func EnergyTrends(ctx context.Context, userID int) ([]EnergyTrendPoint, error) {
	var points []EnergyTrendPoint
	err := database.DB.WithContext(ctx).Raw(`
		SELECT DATE(updated_at) AS date, energy_level
		FROM health_metrics
		WHERE user_id = ? AND updated_at >= NOW() - INTERVAL '30 days'
		ORDER BY updated_at`, userID).Scan(&points).Error
	return points, err
}

// RiskCount is the tally of one risk tier.
type RiskCount struct {
	RiskLevel string `json:"risk_level"`
	Count     int    `json:"count"`
}

// RiskDistribution groups the user's analyses by risk tier. Rows without a
// tier (voice, mock feedback) are excluded.
func RiskDistribution(ctx context.Context, userID int) ([]RiskCount, error) {
	var counts []RiskCount
	err := database.DB.WithContext(ctx).Raw(`
		SELECT risk_level, COUNT(*) AS count
		FROM analysis_results
		WHERE user_id = ? AND risk_level IS NOT NULL
		GROUP BY risk_level`, userID).Scan(&counts).Error
	return counts, err
}
