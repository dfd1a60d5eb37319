package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"mindgarden/internal/repository"
	"mindgarden/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type UserHandler struct {
	log *zap.Logger
}

func NewUserHandler(log *zap.Logger) *UserHandler {
	return &UserHandler{log: log}
}

type createUserRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
}

// Create registers a new user and seeds their metrics snapshot.
func (h *UserHandler) Create(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}
	if !utils.IsValidEmail(req.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email address"})
		return
	}

	userID, err := repository.CreateUser(c.Request.Context(), req.Name, req.Email)
	if err != nil {
		h.log.Error("Failed to create user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user_id": userID,
		"message": "User created successfully",
	})
}

// Dashboard assembles the user's home view: metrics snapshot, recent scored
// submissions, per-type counts, and the garden status block.
func (h *UserHandler) Dashboard(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	ctx := c.Request.Context()

	user, err := repository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		h.log.Error("Failed to load user", zap.Int("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
		return
	}

	metrics, err := repository.LatestMetrics(ctx, userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			h.log.Error("Failed to load metrics", zap.Int("userID", userID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
			return
		}
		fallback := repository.DefaultMetrics(userID)
		metrics = &fallback
	}

	recent, err := repository.RecentAnalyses(ctx, userID, 10)
	if err != nil {
		h.log.Error("Failed to load recent analyses", zap.Int("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
		return
	}

	counts, err := repository.DataCounts(ctx, userID)
	if err != nil {
		h.log.Error("Failed to load data counts", zap.Int("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
		return
	}

	totalDataPoints := 0
	for _, tc := range counts {
		totalDataPoints += tc.Count
	}
	gardenProgress := min(68+totalDataPoints*2, 100)

	c.JSON(http.StatusOK, gin.H{
		"user":            user,
		"metrics":         metrics,
		"recent_analysis": recent,
		"data_counts":     counts,
		"garden_status": gin.H{
			"current_flower": "Resilience Rose",
			"bloom_progress": gardenProgress,
			"message":        "Your garden is blooming beautifully!",
		},
	})
}
