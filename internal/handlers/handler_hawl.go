package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/zakatify/zakat_backend/internal/core/services"
	"github.com/zakatify/zakat_backend/internal/dto"
	"github.com/zakatify/zakat_backend/internal/middleware"
)

// registerHawlRoutes registers the holding-period evaluation route.
func registerHawlRoutes(rg *gin.RouterGroup) {
	hawl := rg.Group("/hawl")
	hawl.POST("/evaluate", evaluateHawl)
}

// evaluateHawl godoc
// @Summary Evaluate the Hawl holding period
// @Description Reports whether a full lunar year has elapsed since acquisition, using the Islamic civil calendar
// @Tags hawl
// @Accept  json
// @Produce  json
// @Param   evaluation body dto.HawlEvaluationRequest true "Acquisition and as-of dates"
// @Success 200 {object} dto.HawlEvaluationResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /hawl/evaluate [post]
func evaluateHawl(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.HawlEvaluationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for hawl evaluation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	acquired, err := time.Parse(time.DateOnly, req.AcquisitionDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid acquisitionDate: expected YYYY-MM-DD"})
		return
	}
	asOf := time.Now().UTC()
	if req.AsOfDate != "" {
		asOf, err = time.Parse(time.DateOnly, req.AsOfDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid asOfDate: expected YYYY-MM-DD"})
			return
		}
	}

	tracker := services.NewHawlTracker(asOf).AcquiredOn(acquired)
	resp := dto.ToHawlEvaluationResponse(tracker)

	logger.Info("Hawl evaluated",
		slog.Bool("satisfied", resp.Satisfied),
		slog.Int("days_elapsed", resp.DaysElapsed),
	)
	c.JSON(http.StatusOK, resp)
}
