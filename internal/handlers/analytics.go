package handlers

import (
	"net/http"
	"strconv"

	"mindgarden/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"go.uber.org/zap"
)

// AnalyticsHandler serves the chart/insight aggregations.
type AnalyticsHandler struct {
	log *zap.Logger
}

func NewAnalyticsHandler(log *zap.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{log: log}
}

// Analytics returns the dashboard aggregations as JSON for client-side charts.
func (h *AnalyticsHandler) Analytics(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	ctx := c.Request.Context()

	moodTrends, err := repository.MoodTrends(ctx, userID)
	if err != nil {
		h.log.Error("Failed to load mood trends", zap.Int("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load analytics"})
		return
	}

	energyTrends, err := repository.EnergyTrends(ctx, userID)
	if err != nil {
		h.log.Error("Failed to load energy trends", zap.Int("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load analytics"})
		return
	}

	dataDistribution, err := repository.DataCounts(ctx, userID)
	if err != nil {
		h.log.Error("Failed to load data distribution", zap.Int("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load analytics"})
		return
	}

	riskDistribution, err := repository.RiskDistribution(ctx, userID)
	if err != nil {
		h.log.Error("Failed to load risk distribution", zap.Int("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load analytics"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"mood_trends":       moodTrends,
		"energy_trends":     energyTrends,
		"data_distribution": dataDistribution,
		"risk_distribution": riskDistribution,
	})
}

// Chart renders the 30-day mood trend as a standalone HTML page.
func (h *AnalyticsHandler) Chart(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	moodTrends, err := repository.MoodTrends(c.Request.Context(), userID)
	if err != nil {
		h.log.Error("Failed to load mood trends", zap.Int("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load analytics"})
		return
	}

	line := generateMoodTrendChart(moodTrends)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := line.Render(c.Writer); err != nil {
		h.log.Error("Failed to render mood chart", zap.Int("userID", userID), zap.Error(err))
	}
}

func generateMoodTrendChart(data []repository.MoodTrendPoint) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Mood Over Time",
			Subtitle: "Average daily sentiment, last 30 days",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "category",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type:  "value",
			Scale: opts.Bool(true),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "slider"}),
	)

	dates := make([]string, 0, len(data))
	values := make([]opts.LineData, 0, len(data))
	for _, p := range data {
		dates = append(dates, p.Date.Format("2006-01-02"))
		values = append(values, opts.LineData{Value: p.AvgMood})
	}

	line.SetXAxis(dates).
		AddSeries("avg_mood", values).
		SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))
	return line
}
