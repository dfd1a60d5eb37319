package models

import "time"

// HealthMetric is the current gamification snapshot for a user. One row per
// user, created alongside the user and mutated in place by every scored
// submission, check-in and power-up.
type HealthMetric struct {
	ID           int       `gorm:"primaryKey" json:"id"`
	UserID       int       `gorm:"uniqueIndex;not null" json:"user_id"`
	EnergyLevel  int       `gorm:"not null;default:3" json:"energy_level"`
	GrowthPoints int       `gorm:"not null;default:0" json:"growth_points"`
	CheckIns     int       `gorm:"not null;default:0" json:"check_ins"`
	EnergyStreak int       `gorm:"not null;default:0" json:"energy_streak"`
	MoodScore    float64   `gorm:"not null;default:0.5" json:"mood_score"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (HealthMetric) TableName() string { return "health_metrics" }
