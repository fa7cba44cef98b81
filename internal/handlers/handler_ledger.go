package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zakatify/zakat_backend/internal/core/ports"
	"github.com/zakatify/zakat_backend/internal/core/services"
	"github.com/zakatify/zakat_backend/internal/dto"
	"github.com/zakatify/zakat_backend/internal/middleware"
)

// ledgerHandler handles the timeline simulation endpoint.
type ledgerHandler struct {
	// history is the persisted threshold source; nil when the service runs
	// without a database, in which case requests must carry inline prices.
	history ports.HistoricalNisabSource
}

// newLedgerHandler creates a new ledgerHandler.
func newLedgerHandler(history ports.HistoricalNisabSource) *ledgerHandler {
	return &ledgerHandler{history: history}
}

// registerLedgerRoutes registers the ledger simulation route.
func registerLedgerRoutes(rg *gin.RouterGroup, history ports.HistoricalNisabSource) {
	h := newLedgerHandler(history)
	ledger := rg.Group("/ledger")
	ledger.POST("/simulate", h.simulateTimeline)
}

// simulateTimeline godoc
// @Summary Simulate a daily balance timeline
// @Description Replays ledger events into a day-by-day balance, pairs each day with its Nisab threshold and judges Hawl continuity
// @Tags ledger
// @Accept  json
// @Produce  json
// @Param   simulation body dto.SimulateTimelineRequest true "Events, window and optional inline prices"
// @Success 200 {object} dto.TimelineResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 422 {object} map[string]string "Missing threshold history"
// @Router /ledger/simulate [post]
func (h *ledgerHandler) simulateTimeline(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SimulateTimelineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for timeline simulation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	start, end, err := req.Window()
	if err != nil {
		respondCalculationError(c, logger, err)
		return
	}
	events, err := req.DomainEvents()
	if err != nil {
		respondCalculationError(c, logger, err)
		return
	}

	// Inline prices take precedence over the persisted history.
	source := h.history
	if len(req.Prices) > 0 {
		points, err := req.PricePoints()
		if err != nil {
			respondCalculationError(c, logger, err)
			return
		}
		source = services.NewInMemoryNisabHistory(points)
	}
	if source == nil {
		logger.Warn("Timeline simulation requested without a threshold source")
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "No nisab threshold source: supply inline prices or configure the price history database"})
		return
	}

	verdict, days, err := services.NewLedgerService(source).EvaluateHawl(c.Request.Context(), events, start, end)
	if err != nil {
		respondCalculationError(c, logger, err)
		return
	}

	logger.Info("Timeline simulated",
		slog.Int("days", len(days)),
		slog.Int("events", len(events)),
		slog.Bool("hawl_due", verdict.IsDue),
	)
	c.JSON(http.StatusOK, dto.ToTimelineResponse(days, verdict))
}
