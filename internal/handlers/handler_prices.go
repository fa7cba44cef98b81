package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/zakatify/zakat_backend/internal/apperrors"
	"github.com/zakatify/zakat_backend/internal/core/ports"
	"github.com/zakatify/zakat_backend/internal/dto"
	"github.com/zakatify/zakat_backend/internal/middleware"
)

// priceHandler handles the persisted Nisab threshold history.
type priceHandler struct {
	repo ports.NisabPriceRepository
}

// newPriceHandler creates a new priceHandler.
func newPriceHandler(repo ports.NisabPriceRepository) *priceHandler {
	return &priceHandler{repo: repo}
}

// registerPriceRoutes registers the price history routes.
func registerPriceRoutes(rg *gin.RouterGroup, repo ports.NisabPriceRepository) {
	h := newPriceHandler(repo)
	prices := rg.Group("/prices")
	{
		prices.POST("", h.saveNisabPrice)
		prices.GET("", h.listNisabPrices)
		prices.GET("/effective", h.getEffectiveThreshold)
	}
}

// saveNisabPrice godoc
// @Summary Record a Nisab threshold
// @Description Inserts or updates the threshold effective on a given day
// @Tags prices
// @Accept  json
// @Produce  json
// @Param   price body dto.SaveNisabPriceRequest true "Dated threshold"
// @Success 201 {object} dto.NisabPriceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to save price"
// @Router /prices [post]
func (h *priceHandler) saveNisabPrice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SaveNisabPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for save price", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	price, err := req.ToPort()
	if err != nil {
		respondCalculationError(c, logger, err)
		return
	}
	if price.Threshold.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Threshold must not be negative"})
		return
	}

	if err := h.repo.SaveNisabPrice(c.Request.Context(), price); err != nil {
		logger.Error("Failed to save nisab price", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save nisab price"})
		return
	}

	logger.Info("Nisab price saved", slog.String("effective_date", price.EffectiveDate.Format(time.DateOnly)))
	c.JSON(http.StatusCreated, dto.ToNisabPriceResponse(price))
}

// listNisabPrices godoc
// @Summary List recorded Nisab thresholds
// @Description Retrieves history entries within an optional from/to window
// @Tags prices
// @Produce  json
// @Param   from query string false "Window start (YYYY-MM-DD)"
// @Param   to query string false "Window end (YYYY-MM-DD)"
// @Success 200 {array} dto.NisabPriceResponse
// @Failure 400 {object} map[string]string "Invalid date"
// @Failure 500 {object} map[string]string "Failed to list prices"
// @Router /prices [get]
func (h *priceHandler) listNisabPrices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	from := time.Time{}
	to := time.Now().UTC()
	var err error
	if raw := c.Query("from"); raw != "" {
		from, err = time.Parse(time.DateOnly, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid from date: expected YYYY-MM-DD"})
			return
		}
	}
	if raw := c.Query("to"); raw != "" {
		to, err = time.Parse(time.DateOnly, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid to date: expected YYYY-MM-DD"})
			return
		}
	}

	prices, err := h.repo.ListNisabPrices(c.Request.Context(), from, to)
	if err != nil {
		logger.Error("Failed to list nisab prices", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list nisab prices"})
		return
	}

	logger.Info("Nisab prices listed", slog.Int("count", len(prices)))
	c.JSON(http.StatusOK, dto.ToNisabPriceResponseSlice(prices))
}

// getEffectiveThreshold godoc
// @Summary Resolve the threshold effective on a date
// @Description Returns the most recent threshold at or before the given date
// @Tags prices
// @Produce  json
// @Param   date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} dto.NisabPriceResponse
// @Failure 400 {object} map[string]string "Invalid date"
// @Failure 422 {object} map[string]string "No threshold on record"
// @Router /prices/effective [get]
func (h *priceHandler) getEffectiveThreshold(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	raw := c.Query("date")
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date query parameter is required"})
		return
	}
	date, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date: expected YYYY-MM-DD"})
		return
	}

	threshold, err := h.repo.NisabThresholdAt(c.Request.Context(), date)
	if err != nil {
		if errors.Is(err, apperrors.ErrConfiguration) {
			logger.Warn("No nisab threshold on record", slog.String("date", raw))
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to resolve nisab threshold", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve nisab threshold"})
		return
	}

	c.JSON(http.StatusOK, dto.NisabPriceResponse{
		EffectiveDate: date.Format(time.DateOnly),
		Threshold:     threshold.String(),
	})
}
