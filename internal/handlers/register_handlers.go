package handlers

import (
	"log/slog"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/zakatify/zakat_backend/internal/core/ports"
	"github.com/zakatify/zakat_backend/internal/middleware"
	"github.com/zakatify/zakat_backend/internal/platform/config"
	"github.com/zakatify/zakat_backend/internal/repositories/database/pgsql"
)

// RegisterRoutes sets up all application routes. The database pool is
// optional; without it the price history endpoints are not registered and
// timeline simulations must carry inline prices.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	dbPool *pgxpool.Pool,
	logger *slog.Logger,
) {
	r.Use(cors.Default())

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})
	r.GET("/", getHome)

	setupAPIV1Routes(r, cfg, dbPool, logger)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	dbPool *pgxpool.Pool,
	logger *slog.Logger,
) {
	v1 := r.Group("/api/v1", middleware.RateLimit(newRateLimiter(cfg, logger)))

	registerZakatRoutes(v1, cfg)
	registerPortfolioRoutes(v1, cfg)
	registerHawlRoutes(v1)

	var history ports.HistoricalNisabSource
	if dbPool != nil {
		repo := pgsql.NewNisabPriceRepository(dbPool)
		history = repo
		registerPriceRoutes(v1, repo)
	} else {
		logger.Warn("No database pool: price history endpoints disabled")
	}
	registerLedgerRoutes(v1, history)
}

// newRateLimiter builds an in-memory limiter from the configured rate.
func newRateLimiter(cfg *config.Config, logger *slog.Logger) *limiter.Limiter {
	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		logger.Warn("Invalid RATE_LIMIT, defaulting to 100-M", slog.String("value", cfg.RateLimit))
		rate, _ = limiter.NewRateFromFormatted("100-M")
	}
	return limiter.New(memory.NewStore(), rate)
}
