package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/comitanigiacomo/kanso-weekly-grid/internal/adapters/cache"
	adapterHTTP "github.com/comitanigiacomo/kanso-weekly-grid/internal/adapters/handler/http"
	"github.com/comitanigiacomo/kanso-weekly-grid/internal/adapters/logging"
	"github.com/comitanigiacomo/kanso-weekly-grid/internal/config"
	"github.com/comitanigiacomo/kanso-weekly-grid/internal/core/domain"
	"github.com/comitanigiacomo/kanso-weekly-grid/internal/core/services"
	"github.com/comitanigiacomo/kanso-weekly-grid/internal/core/workers"
)

type app struct {
	engine *services.HabitEngine
	worker *workers.StreakResetWorker
	router http.Handler
}

func newApp(cfg *config.Config, logger *zap.Logger, rdb *redis.Client, startTime time.Time) (*app, error) {
	clock := func() time.Time { return time.Now().In(cfg.Location) }

	var habits []domain.Habit
	if cfg.SeedDefaultHabits {
		habits = domain.DefaultHabits()
	}

	engine, err := services.NewHabitEngine(habits, domain.NewDayWindow(clock()), cfg.StreakResetHour)
	if err != nil {
		return nil, err
	}

	router := adapterHTTP.NewRouter(adapterHTTP.RouterDependencies{
		BoardHandler:    adapterHTTP.NewBoardHandler(engine, clock),
		StatsHandler:    adapterHTTP.NewStatsHandler(services.NewStatsService(engine)),
		Logger:          logger,
		Redis:           rdb,
		RateLimit:       cfg.RateLimit,
		RateLimitWindow: cfg.RateLimitWindow,
		StartTime:       startTime,
	})

	return &app{
		engine: engine,
		worker: workers.NewStreakResetWorker(engine, cfg.StreakCheckInterval, cfg.Location, logger),
		router: router,
	}, nil
}

func main() {
	startTime := time.Now()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Critical: failed to load configuration: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("Critical: failed to build logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var rdb *redis.Client
	if cfg.Redis.Enabled() {
		rdb, err = cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			logger.Warn("redis unavailable, rate limiting disabled", zap.Error(err))
			rdb = nil
		} else {
			defer rdb.Close()
			logger.Info("redis connected", zap.String("host", cfg.Redis.Host))
		}
	}

	a, err := newApp(cfg, logger, rdb, startTime)
	if err != nil {
		logger.Fatal("failed to initialise habit board", zap.Error(err))
	}

	a.worker.Start(ctx)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      a.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info("weekly grid running", zap.String("addr", "http://localhost:"+cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("critical server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("stop signal received, shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("forced shutdown", zap.Error(err))
	}

	<-a.worker.Done()
	logger.Info("server stopped gracefully")
}
