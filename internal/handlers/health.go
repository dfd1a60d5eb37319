package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	mlMode string
}

func NewHealthHandler(mlMode string) *HealthHandler {
	return &HealthHandler{mlMode: mlMode}
}

func (h *HealthHandler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"ml_models": h.mlMode,
	})
}
