// ABOUTME: Main entry point for the ML Catalog API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/time/rate"

	"mlcatalog-api/api"
	"mlcatalog-api/api/handlers"
	"mlcatalog-api/api/middleware"
	"mlcatalog-api/core/enrichment"
	"mlcatalog-api/core/fetch"
	"mlcatalog-api/core/github"
	"mlcatalog-api/core/interfaces"
	"mlcatalog-api/core/modelhub"
	"mlcatalog-api/core/workers"
	"mlcatalog-api/infrastructure/cache/memory"
	"mlcatalog-api/infrastructure/cache/redis"
	stdhttp "mlcatalog-api/infrastructure/http/standard"
	logruslogger "mlcatalog-api/infrastructure/logger/logrus"
	"mlcatalog-api/infrastructure/storage/sqlite"
	"mlcatalog-api/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Create logger
	logger := logruslogger.NewLogger(cfg.Server.LogLevel)
	logger.Info("Starting ML Catalog API", map[string]interface{}{
		"port":       cfg.Server.Port,
		"cache_type": cfg.Cache.Type,
		"db_path":    cfg.Storage.SQLitePath,
	})

	// Create cache
	var cache interfaces.Cache
	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err != nil {
			logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			cache = memory.NewMemoryCache(time.Duration(cfg.Cache.Memory.DefaultExpiration) * time.Second)
		} else {
			cache = redisCache
			logger.Info("Using Redis cache", map[string]interface{}{
				"address": cfg.Cache.Redis.Address,
			})
		}
	default:
		cache = memory.NewMemoryCache(time.Duration(cfg.Cache.Memory.DefaultExpiration) * time.Second)
		logger.Info("Using memory cache", nil)
	}

	// Create HTTP client. At debug level outbound requests are logged
	// through the round tripper.
	var transport http.RoundTripper
	if cfg.Server.LogLevel == "debug" {
		transport = &middleware.LoggingRoundTripper{
			Transport: http.DefaultTransport,
			Logger:    logger,
		}
	}
	httpClient := stdhttp.NewStandardHTTPClientWithTransport(30*time.Second, transport)

	// Create dependencies container
	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: httpClient,
		Logger:     logger,
	}

	// Create catalog store
	store, err := sqlite.NewStore(cfg.Storage.SQLitePath)
	if err != nil {
		log.Fatalf("Failed to open catalog store: %v", err)
	}
	defer store.Close()

	// Create the rate-limited fetch client shared by both fetchers
	fetchClient := fetch.NewClient(httpClient, logger,
		fetch.WithToken(github.Host, cfg.Enrichment.GitHubToken),
		fetch.WithRateLimit(github.Host, rate.Limit(cfg.Enrichment.GitHubRequestsPerSecond), 1),
		fetch.WithRateLimit(modelhub.Host, rate.Limit(cfg.Enrichment.GitHubRequestsPerSecond), 1),
	)

	// Create fetchers and the enrichment orchestrator
	repoFetcher := github.NewFetcher(deps, fetchClient)
	communityFetcher := modelhub.NewFetcher(deps, fetchClient)
	enrichmentService := enrichment.NewService(deps, store, repoFetcher, communityFetcher,
		enrichment.WithEntityInterval(time.Duration(cfg.Enrichment.EntityIntervalMs)*time.Millisecond),
		enrichment.WithFetchTimeout(time.Duration(cfg.Enrichment.FetchTimeoutSeconds)*time.Second),
	)

	// Create and start the background enrichment worker
	worker := workers.NewEnrichmentWorker(enrichmentService, logger, workers.DefaultWorkerConfig())
	if err := worker.Start(); err != nil {
		log.Fatalf("Failed to start enrichment worker: %v", err)
	}
	defer worker.Stop()

	if cfg.Enrichment.SweepIntervalMinutes > 0 {
		worker.StartPeriodicSweep(
			time.Duration(cfg.Enrichment.SweepIntervalMinutes)*time.Minute,
			cfg.Enrichment.StaleMaxAgeHours,
			cfg.Enrichment.StaleBatchLimit,
		)
	}

	// Create API with middleware
	apiConfig := api.APIConfig{
		Logger:     logger,
		RateLimit:  100, // 100 requests per minute
		RateWindow: time.Minute,
	}
	humaAPI, router := api.NewAPIWithMiddleware(apiConfig)

	// Create and register handlers
	modelHandler := handlers.NewModelHandler(store, enrichmentService, worker, logger)
	modelHandler.RegisterRoutes(humaAPI)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server stopped", nil)
}
