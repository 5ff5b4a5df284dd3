package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lender-match/config"
	httpLayer "lender-match/http"
	"lender-match/repository"
	"lender-match/service"

	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "path to configuration file")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		os.Exit(1)
	}
	defer logger.Sync()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	var cache repository.CacheRepository
	if cfg.RedisAddr != "" {
		cache = repository.NewRedisCache(cfg.RedisAddr)
		logger.Info("using redis catalog cache", zap.String("addr", cfg.RedisAddr))
	} else {
		cache = repository.NewMemoryCache()
		logger.Info("using in-memory catalog cache")
	}

	catalog := service.NewCatalogService(cfg.CatalogURL, cache, cfg.CatalogCacheTTL, logger)
	recommendations := service.NewRecommendationService(catalog, logger)

	recommendationHandler := httpLayer.NewRecommendationHandler(recommendations, logger)
	catalogHandler := httpLayer.NewCatalogHandler(catalog, logger)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimitBurst, cfg.RateLimitWindow)
	defer rateLimiter.Stop()

	mux := http.NewServeMux()
	mux.HandleFunc("/health", httpLayer.Health)
	mux.Handle(
		"/recommendations",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			logger,
			http.HandlerFunc(recommendationHandler.Recommend),
		),
	)
	mux.Handle(
		"/products",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			logger,
			http.HandlerFunc(catalogHandler.ListProducts),
		),
	)
	mux.Handle(
		"/products/refresh",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			logger,
			http.HandlerFunc(catalogHandler.RefreshProducts),
		),
	)

	server := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      mux,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("lender-match API listening", zap.String("addr", cfg.ServerAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		logger.Error("server error", zap.Error(err))
		return
	case sig := <-quit:
		logger.Info("received shutdown signal", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
	}

	logger.Info("server exited")
}
