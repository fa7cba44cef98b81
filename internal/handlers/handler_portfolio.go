package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zakatify/zakat_backend/internal/dto"
	"github.com/zakatify/zakat_backend/internal/middleware"
	"github.com/zakatify/zakat_backend/internal/platform/config"
)

// portfolioHandler handles joint multi-asset calculations.
type portfolioHandler struct {
	cfg *config.Config
}

// newPortfolioHandler creates a new portfolioHandler.
func newPortfolioHandler(cfg *config.Config) *portfolioHandler {
	return &portfolioHandler{cfg: cfg}
}

// registerPortfolioRoutes registers the portfolio route.
func registerPortfolioRoutes(rg *gin.RouterGroup, cfg *config.Config) {
	h := newPortfolioHandler(cfg)
	rg.POST("/zakat/portfolio", h.calculatePortfolio)
}

// calculatePortfolio godoc
// @Summary Calculate Zakat on a whole portfolio
// @Description Evaluates every asset, pools monetary categories (Dam' al-Amwal) and reports per-item outcomes
// @Tags zakat
// @Accept  json
// @Produce  json
// @Param   portfolio body dto.PortfolioRequest true "Portfolio of assets"
// @Success 200 {object} dto.PortfolioResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 422 {object} map[string]string "Missing price configuration"
// @Router /zakat/portfolio [post]
func (h *portfolioHandler) calculatePortfolio(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.PortfolioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for portfolio", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	portfolio, err := req.ToPortfolio()
	if err != nil {
		respondCalculationError(c, logger, err)
		return
	}

	cfg, err := req.Config.Apply(h.cfg.ZakatConfig())
	if err != nil {
		respondCalculationError(c, logger, err)
		return
	}

	result, err := portfolio.CalculateTotal(cfg)
	if err != nil {
		respondCalculationError(c, logger, err)
		return
	}

	logger.Info("Portfolio calculated",
		slog.Int("items", portfolio.Len()),
		slog.String("status", string(result.Status)),
		slog.String("total_due", result.TotalDue.String()),
	)
	c.JSON(http.StatusOK, dto.ToPortfolioResponse(result))
}
