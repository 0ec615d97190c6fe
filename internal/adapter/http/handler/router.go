package handler

import (
	"net/http"
	"time"

	"traveling-message/internal/adapter/http/middleware"
	"traveling-message/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

const maxRequestBodyBytes = 1 << 20

// RouterDeps bundles everything the router needs.
type RouterDeps struct {
	SubmissionSvc  ports.SubmissionService
	ReportingSvc   ports.ReportingService
	Counter        ports.AttemptCounter
	RateLimit      int64
	RateWindow     time.Duration
	HealthCheckers []ports.HealthChecker
	SiteDir        string
	Logger         zerolog.Logger
}

// SetupRouter wires middleware, API routes, and static site serving.
func SetupRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.Recovery(deps.Logger),
		middleware.RequestID(),
		middleware.RequestLogger(deps.Logger),
		middleware.MaxBodySize(maxRequestBodyBytes),
	)

	healthHandler := NewHealthHandler(deps.HealthCheckers...)
	r.GET("/health", healthHandler.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	submitHandler := NewSubmitHandler(deps.SubmissionSvc)
	logHandler := NewLogHandler(deps.ReportingSvc)
	statsHandler := NewStatsHandler(deps.ReportingSvc)

	api := r.Group("/api")
	{
		api.POST("/submit",
			middleware.RateLimiter(deps.Counter, deps.RateLimit, deps.RateWindow, deps.Logger),
			submitHandler.Submit,
		)
		api.GET("/log", logHandler.Log)
		api.GET("/stats", statsHandler.Stats)
	}

	// Everything else is the static site, including the exported artifact.
	if deps.SiteDir != "" {
		fileServer := http.FileServer(http.Dir(deps.SiteDir))
		r.NoRoute(func(c *gin.Context) {
			if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
				c.JSON(http.StatusNotFound, gin.H{"error": "Not found."})
				return
			}
			fileServer.ServeHTTP(c.Writer, c.Request)
		})
	}

	return r
}
