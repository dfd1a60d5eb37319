package repository

import (
	"context"

	"mindgarden/internal/database"
	"mindgarden/internal/gamification"
	"mindgarden/internal/models"

	"gorm.io/gorm"
)

// LatestMetrics returns the user's current metrics snapshot.
func LatestMetrics(ctx context.Context, userID int) (*models.HealthMetric, error) {
	var metrics models.HealthMetric
	err := database.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&metrics).Error
	if err != nil {
		return nil, err
	}
	return &metrics, nil
}

// DefaultMetrics is the snapshot reported for a user with no stored row yet.
func DefaultMetrics(userID int) models.HealthMetric {
	return models.HealthMetric{
		UserID:      userID,
		EnergyLevel: 3,
		MoodScore:   0.5,
	}
}

// ApplyDelta applies a ledger delta to the user's metrics as a single
// arithmetic UPDATE, so concurrent submissions for the same user serialize
// at the row and cannot lose point or streak increments. When no snapshot
// exists yet a fresh one is created with the delta applied to zero values.
func ApplyDelta(tx *gorm.DB, userID int, d gamification.Delta) error {
	updates := map[string]interface{}{
		"growth_points": gorm.Expr("growth_points + ?", d.Points),
	}
	if d.MoodScore != nil {
		updates["mood_score"] = *d.MoodScore
	}
	if d.EnergyLevel != nil {
		updates["energy_level"] = *d.EnergyLevel
	}
	if d.IncrementCheckIns {
		updates["check_ins"] = gorm.Expr("check_ins + 1")
	}
	if d.IncrementStreak {
		updates["energy_streak"] = gorm.Expr("energy_streak + 1")
	}

	res := tx.Model(&models.HealthMetric{}).
		Where("user_id = ?", userID).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}

	// No prior snapshot: streaks and check-ins count up from zero.
	fresh := DefaultMetrics(userID)
	fresh.GrowthPoints = d.Points
	if d.MoodScore != nil {
		fresh.MoodScore = *d.MoodScore
	}
	if d.EnergyLevel != nil {
		fresh.EnergyLevel = *d.EnergyLevel
	}
	if d.IncrementCheckIns {
		fresh.CheckIns = 1
	}
	if d.IncrementStreak {
		fresh.EnergyStreak = 1
	}
	return tx.Create(&fresh).Error
}
