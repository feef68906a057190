// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines contracts for the fetchers and the enrichment orchestrator

package interfaces

import (
	"context"

	"mlcatalog-api/core/domain"
)

// RepoStatsFetcher resolves a repository URL and returns its stats.
// A nil result with a nil error means the URL did not resolve to an existing
// repository; that is a normal outcome, not a failure.
type RepoStatsFetcher interface {
	FetchRepoStats(ctx context.Context, identifierURL string) (*domain.RepositoryStats, error)
}

// CommunityStatsFetcher resolves a model-hub URL and returns its stats.
type CommunityStatsFetcher interface {
	FetchCommunityStats(ctx context.Context, identifierURL string) (*domain.CommunityStats, error)
}

// EnrichmentService orchestrates enrichment across models.
type EnrichmentService interface {
	// EnrichOne refreshes all enrichment for a single model. The returned
	// outcome is always non-nil; Success is false only when the model itself
	// is missing from the catalog.
	EnrichOne(ctx context.Context, id string) *domain.EnrichmentOutcome

	// EnrichMany refreshes the given models in order, one outcome per
	// requested ID, never fewer.
	EnrichMany(ctx context.Context, ids []string) map[string]*domain.EnrichmentOutcome

	// EnrichStale refreshes models whose enrichment is absent or older than
	// maxAgeHours, oldest first, at most limit of them. Returns the number
	// of models processed; zero with a nil error is a normal terminal state.
	EnrichStale(ctx context.Context, maxAgeHours, limit int) (int, error)
}
