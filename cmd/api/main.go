// @title       Streak Radar API
// @version     1.0
// @description Local habit tracking engine: habits, streaks, routines and achievements.
// @BasePath    /api/v1
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	adapterHTTP "github.com/comitanigiacomo/streak-radar/internal/adapters/handler/http"
	"github.com/comitanigiacomo/streak-radar/internal/app"
	"github.com/comitanigiacomo/streak-radar/internal/config"
	"github.com/comitanigiacomo/streak-radar/internal/platform/logger"
)

func main() {
	startTime := time.Now()

	cfg, err := config.Load()
	if err != nil {
		zlog.Fatal().Err(err).Msg("Critical: invalid configuration")
	}

	log, err := logger.New(logger.Options{
		Service: config.AppName,
		Level:   cfg.LogLevel,
		File:    cfg.LogFile,
		Pretty:  cfg.LogPretty,
	})
	if err != nil {
		zlog.Fatal().Err(err).Msg("Critical: failed to set up logging")
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()
	application, err := app.New(ctx, cfg, app.Options{Background: true}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Critical: failed to initialise application")
	}
	if err := application.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("Critical: failed to start background workers")
	}

	router := newRouter(application, log, startTime)

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Str("backend", cfg.Backend).Msg("Streak Radar running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Critical server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Stop signal received. Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Forced shutdown")
	}
	if err := application.Close(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Failed to release store")
	}

	log.Info().Msg("Server stopped gracefully.")
}

func newRouter(a *app.App, log zerolog.Logger, startTime time.Time) *gin.Engine {
	deps := adapterHTTP.RouterDependencies{
		HabitHandler:       adapterHTTP.NewHabitHandler(a.Habits, log),
		RoutineHandler:     adapterHTTP.NewRoutineHandler(a.Routines, log),
		StatsHandler:       adapterHTTP.NewStatsHandler(a.Stats, a.Achievements, log),
		StateHandler:       adapterHTTP.NewStateHandler(a.State, a.Settings, log),
		Health:             a.Store,
		Backend:            a.Config.Backend,
		Redis:              a.Store.Redis,
		RedisKeyPrefix:     a.Config.RedisKeyPrefix,
		RateLimitPerMinute: a.Config.RateLimitPerMinute,
		Log:                log,
		StartTime:          startTime,
	}
	if a.Registry != nil {
		deps.Gatherer = a.Registry
		deps.Registerer = a.Registry
	}
	return adapterHTTP.NewRouter(deps)
}
