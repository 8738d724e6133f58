package api

import (
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/guttosm/dexboard/docs"
	"github.com/guttosm/dexboard/internal/metrics"
	"github.com/guttosm/dexboard/internal/middleware"
)

// RouterOptions tunes the cross-cutting middlewares.
type RouterOptions struct {
	AllowedOrigins []string
	RequestTimeout time.Duration
	RateLimit      int
}

// NewRouter creates a Gin engine with routes configured.
//
// Responsibilities:
//   - Registers global middlewares (RequestID, Logger, Recovery, ErrorHandler, CORS).
//   - Bounds every API request with opts.RequestTimeout.
//   - Mounts Swagger docs (/swagger/*any) and Prometheus metrics (/metrics).
//   - Configures API v1 routes (/api/v1), rate limited per client IP.
//
// Health and readiness endpoints are registered in app.InitializeApp().
func NewRouter(handler *Handler, opts RouterOptions) *gin.Engine {
	router := gin.New()

	// ─── Middlewares ───────────────────────────────
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.RecoveryMiddleware(),
		middleware.ErrorHandler,
		middleware.CORS(opts.AllowedOrigins),
	)

	// ─── Docs & metrics ───────────────────────────
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	// ─── API v1 ───────────────────────────────────
	v1 := router.Group("/api/v1",
		middleware.RateLimiterWith(opts.RateLimit, middleware.DefaultRateWindow),
		middleware.Timeout(opts.RequestTimeout),
	)
	{
		v1.POST("/leaderboard", handler.PostLeaderboard)
		v1.GET("/leaderboard", handler.GetLeaderboard)
		v1.GET("/runs", handler.ListRuns)
	}

	return router
}
