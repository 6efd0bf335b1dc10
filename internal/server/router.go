package server

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"fin-advisory/internal/common/logger"
)

// NewRouter assembles the gin engine. limiter may be nil when rate limiting
// is disabled.
func NewRouter(advisor Advisor, limiter RateLimiter, log logger.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestID())
	router.Use(RequestLogger(log))
	router.Use(CORS())

	handler := NewHandler(advisor, log)

	router.GET("/healthz", handler.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api/v1")
	if limiter != nil {
		api.Use(RateLimit(limiter))
	}
	api.POST("/advise", handler.Advise)

	return router
}
