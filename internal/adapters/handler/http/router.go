package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/comitanigiacomo/streak-radar/docs"
	"github.com/comitanigiacomo/streak-radar/internal/adapters/handler/http/middleware"
)

// HealthChecker reports the state of every connection behind the store.
type HealthChecker interface {
	Ping(ctx context.Context) map[string]error
}

type RouterDependencies struct {
	HabitHandler   *HabitHandler
	RoutineHandler *RoutineHandler
	StatsHandler   *StatsHandler
	StateHandler   *StateHandler

	Health  HealthChecker
	Backend string

	// Redis enables the rate limiter when RateLimitPerMinute is positive.
	Redis              *redis.Client
	RedisKeyPrefix     string
	RateLimitPerMinute int

	// Gatherer enables /metrics and request instrumentation.
	Gatherer   prometheus.Gatherer
	Registerer prometheus.Registerer

	Log       zerolog.Logger
	StartTime time.Time
}

func NewRouter(deps RouterDependencies) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(deps.Log))

	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PATCH, DELETE")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	if deps.Registerer != nil {
		router.Use(middleware.NewHTTPMetrics(deps.Registerer).Handler())
	}
	if deps.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	router.GET("/health", func(c *gin.Context) {
		status := http.StatusOK
		components := gin.H{}
		if deps.Health != nil {
			for name, err := range deps.Health.Ping(c.Request.Context()) {
				if err != nil {
					deps.Log.Warn().Err(err).Str("component", name).Msg("health check failed")
					components[name] = "unreachable"
					status = http.StatusServiceUnavailable
					continue
				}
				components[name] = "connected"
			}
		}

		c.JSON(status, gin.H{
			"status":     http.StatusText(status),
			"backend":    deps.Backend,
			"components": components,
			"uptime":     time.Since(deps.StartTime).String(),
		})
	})

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	apiV1 := router.Group("/api/v1")
	if deps.Redis != nil && deps.RateLimitPerMinute > 0 {
		apiV1.Use(middleware.RateLimiter(deps.Redis, deps.RedisKeyPrefix, deps.RateLimitPerMinute, time.Minute, deps.Log))
	}

	deps.HabitHandler.RegisterRoutes(apiV1)
	deps.RoutineHandler.RegisterRoutes(apiV1)
	deps.StatsHandler.RegisterRoutes(apiV1)
	deps.StateHandler.RegisterRoutes(apiV1)

	return router
}
