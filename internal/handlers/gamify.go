package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"mindgarden/internal/database"
	"mindgarden/internal/gamification"
	"mindgarden/internal/models"
	"mindgarden/internal/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// GamificationHandler serves the explicit engagement actions: energy
// check-ins and power-up completions.
type GamificationHandler struct {
	log *zap.Logger
}

func NewGamificationHandler(log *zap.Logger) *GamificationHandler {
	return &GamificationHandler{log: log}
}

type energyRequest struct {
	EnergyLevel int `json:"energy_level"`
}

// UpdateEnergy records a self-reported energy level, bumping the check-in
// streak. Levels outside 1..5 are rejected with no metrics mutation.
func (h *GamificationHandler) UpdateEnergy(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	var req energyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid energy level"})
		return
	}

	event := gamification.EnergyCheckIn{Level: req.EnergyLevel}
	delta, err := event.Delta()
	if err != nil {
		if errors.Is(err, gamification.ErrInvalidEnergyLevel) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid energy level"})
			return
		}
		h.log.Error("Failed to build check-in delta", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update energy"})
		return
	}

	var updated *models.HealthMetric
	err = database.DB.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		if err := repository.ApplyDelta(tx, userID, delta); err != nil {
			return err
		}
		var m models.HealthMetric
		if err := tx.Where("user_id = ?", userID).First(&m).Error; err != nil {
			return err
		}
		updated = &m
		return nil
	})
	if err != nil {
		h.log.Error("Failed to update energy", zap.Int("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update energy"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "Energy updated successfully",
		"energy_level":  updated.EnergyLevel,
		"streak":        updated.EnergyStreak,
		"checkins":      updated.CheckIns,
		"points_earned": delta.Points,
	})
}

type powerUpRequest struct {
	ActivityType string `json:"activity_type" binding:"required"`
}

// CompletePowerUp credits a wellness activity and appends an activity-log
// entry. Unrecognized activities earn the base reward.
func (h *GamificationHandler) CompletePowerUp(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	var req powerUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	event := gamification.PowerUp{ActivityType: req.ActivityType}
	delta, _ := event.Delta()

	err = database.DB.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		if err := repository.ApplyDelta(tx, userID, delta); err != nil {
			return err
		}
		log := models.UserData{
			UserID:   userID,
			DataType: "activity",
			Content:  event.LogContent(),
		}
		return repository.InsertUserData(tx, &log)
	})
	if err != nil {
		h.log.Error("Failed to complete power-up", zap.Int("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to complete power-up"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       fmt.Sprintf("%s power-up completed!", req.ActivityType),
		"points_earned": delta.Points,
	})
}
