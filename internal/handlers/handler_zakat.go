package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zakatify/zakat_backend/internal/apperrors"
	"github.com/zakatify/zakat_backend/internal/core/ports"
	"github.com/zakatify/zakat_backend/internal/dto"
	"github.com/zakatify/zakat_backend/internal/middleware"
	"github.com/zakatify/zakat_backend/internal/platform/config"
)

// zakatHandler handles HTTP requests for the asset calculation endpoints.
type zakatHandler struct {
	cfg *config.Config
}

// newZakatHandler creates a new zakatHandler.
func newZakatHandler(cfg *config.Config) *zakatHandler {
	return &zakatHandler{cfg: cfg}
}

// registerZakatRoutes registers the per-asset calculation routes.
func registerZakatRoutes(rg *gin.RouterGroup, cfg *config.Config) {
	h := newZakatHandler(cfg)

	zakat := rg.Group("/zakat")
	{
		zakat.POST("/business", h.calculateBusiness)
		zakat.POST("/metals", h.calculateMetals)
		zakat.POST("/income", h.calculateIncome)
		zakat.POST("/investments", h.calculateInvestments)
		zakat.POST("/agriculture", h.calculateAgriculture)
		zakat.POST("/mining", h.calculateMining)
		zakat.POST("/fitrah", h.calculateFitrah)
		zakat.POST("/livestock", h.calculateLivestock)
	}
}

// respondCalculationError maps the error taxonomy to HTTP statuses: invalid
// input is the caller's fault (400), a missing price is a server-side setup
// problem (422), a failed arithmetic step is internal (500).
func respondCalculationError(c *gin.Context, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidInput):
		logger.Warn("Invalid calculation input", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrConfiguration):
		logger.Warn("Calculation configuration incomplete", slog.String("error", err.Error()))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrCalculation):
		logger.Error("Calculation failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		logger.Error("Unexpected calculation error", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to calculate zakat"})
	}
}

// run applies the request's config overrides, executes the calculator and
// writes the result.
func (h *zakatHandler) run(c *gin.Context, overrides *dto.ConfigOverridesRequest, calc ports.ZakatCalculator) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	cfg, err := overrides.Apply(h.cfg.ZakatConfig())
	if err != nil {
		respondCalculationError(c, logger, err)
		return
	}

	result, err := calc.Calculate(cfg)
	if err != nil {
		respondCalculationError(c, logger, err)
		return
	}

	logger.Info("Zakat calculated",
		slog.String("category", string(result.Category)),
		slog.Bool("payable", result.Payable),
	)
	c.JSON(http.StatusOK, dto.ToCalculationResponse(result))
}

// calculateBusiness godoc
// @Summary Calculate Zakat on trade goods
// @Description Computes Zakat on cash, inventory and receivables net of short-term liabilities
// @Tags zakat
// @Accept  json
// @Produce  json
// @Param   asset body dto.BusinessZakatRequest true "Business asset details"
// @Success 200 {object} dto.CalculationResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 422 {object} map[string]string "Missing price configuration"
// @Router /zakat/business [post]
func (h *zakatHandler) calculateBusiness(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.BusinessZakatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for business zakat", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	calc, err := req.ToCalculator()
	if err != nil {
		respondCalculationError(c, logger, err)
		return
	}
	h.run(c, req.Config, calc)
}

// calculateMetals godoc
// @Summary Calculate Zakat on gold and silver
// @Description Computes Zakat on the pure metal content, honoring the Madhab's jewelry exemption
// @Tags zakat
// @Accept  json
// @Produce  json
// @Param   asset body dto.MetalsZakatRequest true "Metal holding details"
// @Success 200 {object} dto.CalculationResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 422 {object} map[string]string "Missing price configuration"
// @Router /zakat/metals [post]
func (h *zakatHandler) calculateMetals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.MetalsZakatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for metals zakat", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	calc, err := req.ToCalculator()
	if err != nil {
		respondCalculationError(c, logger, err)
		return
	}
	h.run(c, req.Config, calc)
}

// calculateIncome godoc
// @Summary Calculate Zakat on earned income
// @Description Computes Zakat on income, gross or net of basic living expenses
// @Tags zakat
// @Accept  json
// @Produce  json
// @Param   asset body dto.IncomeZakatRequest true "Income details"
// @Success 200 {object} dto.CalculationResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 422 {object} map[string]string "Missing price configuration"
// @Router /zakat/income [post]
func (h *zakatHandler) calculateIncome(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.IncomeZakatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for income zakat", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	calc, err := req.ToCalculator()
	if err != nil {
		respondCalculationError(c, logger, err)
		return
	}
	h.run(c, req.Config, calc)
}

// calculateInvestments godoc
// @Summary Calculate Zakat on market investments
// @Description Computes Zakat on stocks, crypto or funds at market value, with optional purification
// @Tags zakat
// @Accept  json
// @Produce  json
// @Param   asset body dto.InvestmentZakatRequest true "Investment details"
// @Success 200 {object} dto.CalculationResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 422 {object} map[string]string "Missing price configuration"
// @Router /zakat/investments [post]
func (h *zakatHandler) calculateInvestments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.InvestmentZakatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for investment zakat", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	calc, err := req.ToCalculator()
	if err != nil {
		respondCalculationError(c, logger, err)
		return
	}
	h.run(c, req.Config, calc)
}

// calculateAgriculture godoc
// @Summary Calculate Zakat on harvests
// @Description Computes harvest Zakat at the irrigation-dependent rate against the 653kg Nisab
// @Tags zakat
// @Accept  json
// @Produce  json
// @Param   asset body dto.AgricultureZakatRequest true "Harvest details"
// @Success 200 {object} dto.CalculationResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 422 {object} map[string]string "Missing price configuration"
// @Router /zakat/agriculture [post]
func (h *zakatHandler) calculateAgriculture(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.AgricultureZakatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for agriculture zakat", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	calc, err := req.ToCalculator()
	if err != nil {
		respondCalculationError(c, logger, err)
		return
	}
	h.run(c, req.Config, calc)
}

// calculateMining godoc
// @Summary Calculate Zakat on mining wealth
// @Description Computes Zakat on extracted minerals (2.5%) or found treasure (20%, no threshold)
// @Tags zakat
// @Accept  json
// @Produce  json
// @Param   asset body dto.MiningZakatRequest true "Mining details"
// @Success 200 {object} dto.CalculationResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 422 {object} map[string]string "Missing price configuration"
// @Router /zakat/mining [post]
func (h *zakatHandler) calculateMining(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.MiningZakatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for mining zakat", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	calc, err := req.ToCalculator()
	if err != nil {
		respondCalculationError(c, logger, err)
		return
	}
	h.run(c, req.Config, calc)
}

// calculateFitrah godoc
// @Summary Calculate Zakat al-Fitr
// @Description Computes the per-person staple food obligation for a household
// @Tags zakat
// @Accept  json
// @Produce  json
// @Param   asset body dto.FitrahZakatRequest true "Household details"
// @Success 200 {object} dto.CalculationResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /zakat/fitrah [post]
func (h *zakatHandler) calculateFitrah(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.FitrahZakatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for fitrah zakat", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	calc, err := req.ToCalculator()
	if err != nil {
		respondCalculationError(c, logger, err)
		return
	}
	h.run(c, nil, calc)
}

// calculateLivestock godoc
// @Summary Calculate Zakat on herds
// @Description Computes the obligation in animals for sheep, cattle and camel herds
// @Tags zakat
// @Accept  json
// @Produce  json
// @Param   asset body dto.LivestockZakatRequest true "Herd details"
// @Success 200 {object} dto.CalculationResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 422 {object} map[string]string "Missing price configuration"
// @Router /zakat/livestock [post]
func (h *zakatHandler) calculateLivestock(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.LivestockZakatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for livestock zakat", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	calc, err := req.ToCalculator()
	if err != nil {
		respondCalculationError(c, logger, err)
		return
	}
	h.run(c, req.Config, calc)
}
