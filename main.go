package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"mortgage-power/config"
	httpLayer "mortgage-power/http"
	"mortgage-power/logger"
	"mortgage-power/repository"
	"mortgage-power/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		zap.NewExample().Fatal("failed to load configuration", zap.Error(err))
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer func() { _ = log.Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	cache := newCache(ctx, cfg, log)
	repo := newAssessmentRepository(ctx, cfg, log)
	cancel()

	affordabilityService := service.NewAffordabilityService(cache, repo, log, cfg.Cache.TTL)
	affordabilityHandler, err := httpLayer.NewAffordabilityHandler(affordabilityService, log)
	if err != nil {
		log.Fatal("failed to build affordability handler", zap.Error(err))
	}

	loanService := service.NewLoanService(log)
	loanHandler := httpLayer.NewLoanHandler(loanService, log)
	termHandler := httpLayer.NewTermRecommendationHandler(service.NewTermRecommendationService(loanService, log), log)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimit.Capacity, cfg.RateLimit.Refill)
	defer rateLimiter.Stop()

	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      httpLayer.NewRouter(rateLimiter, affordabilityHandler, loanHandler, termHandler),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("server listening", zap.String("addr", cfg.Server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Error("error starting server", zap.Error(err))
		return
	case <-quit:
		log.Info("shutting down server")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("error during server shutdown", zap.Error(err))
	}

	log.Info("server exited")
}

// newCache falls back to the in-memory cache when Redis is disabled or down.
func newCache(ctx context.Context, cfg *config.Config, log *zap.Logger) repository.CacheRepository {
	if !cfg.Redis.Enabled {
		return repository.NewMemoryCache()
	}

	cache := repository.NewRedisCache(repository.RedisOptions{
		Address:  cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		Prefix:   cfg.Redis.Prefix,
	})
	if err := cache.Ping(ctx); err != nil {
		log.Warn("redis unavailable, using in-memory cache", zap.Error(err))
		_ = cache.Close()
		return repository.NewMemoryCache()
	}
	return cache
}

func newAssessmentRepository(ctx context.Context, cfg *config.Config, log *zap.Logger) repository.AssessmentRepository {
	if !cfg.Postgres.Enabled {
		return repository.NewAssessmentRepositoryMemory()
	}

	db, err := repository.OpenPostgres(ctx, repository.PostgresOptions{
		DSN:            cfg.Postgres.GetDSN(),
		MaxConnections: cfg.Postgres.MaxConnections,
		MaxIdle:        cfg.Postgres.MaxIdle,
	})
	if err != nil {
		log.Fatal("failed to connect to postgres", zap.Error(err))
	}

	repo := repository.NewPostgresAssessmentRepository(db)
	if err := repo.EnsureSchema(ctx); err != nil {
		log.Fatal("failed to prepare assessment schema", zap.Error(err))
	}
	return repo
}
