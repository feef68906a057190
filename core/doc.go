// Package core contains the business logic for the ML catalog service.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Contains pure domain models (Model, RepositoryStats, EnrichmentOutcome, etc.)
// - fetch: Rate-limited JSON client for external APIs
// - github: Repository stats fetcher with TTL caching
// - modelhub: Community stats fetcher for the model hub
// - enrichment: Orchestrator that coordinates fetches and persistence per model
// - heuristics: Pure derivation of hardware, risk, and use-case hints
// - workers: Background worker pool for queued refreshes
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (cache, HTTP, storage, logger)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Domain models are free from persistence concerns
//
// # Usage Example
//
//	import (
//	    "mlcatalog-api/core/enrichment"
//	    "mlcatalog-api/core/interfaces"
//	)
//
//	// Create dependencies
//	deps := interfaces.Dependencies{
//	    Cache:      myCache,      // implements interfaces.Cache
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	// Create the orchestrator
//	service := enrichment.NewService(deps, store, repoFetcher, communityFetcher)
//
//	// Refresh one model
//	outcome := service.EnrichOne(ctx, "model-id")
//
package core
