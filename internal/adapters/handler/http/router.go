package http

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/comitanigiacomo/kanso-weekly-grid/internal/adapters/handler/http/middleware"
)

type RouterDependencies struct {
	BoardHandler    *BoardHandler
	StatsHandler    *StatsHandler
	Logger          *zap.Logger
	Redis           *redis.Client
	RateLimit       int
	RateLimitWindow time.Duration
	StartTime       time.Time
}

func NewRouter(deps RouterDependencies) *gin.Engine {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger))
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Content-Length", "Accept-Encoding", middleware.RequestIDHeader},
		ExposeHeaders:   []string{middleware.RequestIDHeader, "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		MaxAge:          12 * time.Hour,
	}))

	if deps.Redis != nil && deps.RateLimit > 0 {
		router.Use(middleware.RateLimiter(deps.Redis, deps.RateLimit, deps.RateLimitWindow, logger))
	}

	router.GET("/health", func(c *gin.Context) {
		redisStatus := "disabled"
		if deps.Redis != nil {
			redisStatus = "connected"
			if err := deps.Redis.Ping(c.Request.Context()).Err(); err != nil {
				redisStatus = "unreachable"
			}
		}

		// Redis only backs rate limiting; it never fails the health check.
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"redis":  redisStatus,
			"uptime": time.Since(deps.StartTime).String(),
		})
	})

	apiV1 := router.Group("/api/v1")

	deps.BoardHandler.RegisterRoutes(apiV1)
	if deps.StatsHandler != nil {
		deps.StatsHandler.RegisterRoutes(apiV1)
	}

	return router
}
