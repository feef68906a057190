// ABOUTME: Storage interfaces for persisting domain entities
// ABOUTME: Defines the catalog store contract consumed by the enrichment pipeline

package interfaces

import (
	"context"
	"time"

	"mlcatalog-api/core/domain"
)

// CatalogStore defines persistence for model records and their enrichment
// fields. All methods are fallible I/O; enrichment treats write failures as
// non-fatal run errors.
type CatalogStore interface {
	// GetModel retrieves a model by ID.
	// Returns a core/errors.NotFoundError when the model does not exist.
	GetModel(ctx context.Context, id string) (*domain.Model, error)

	// CreateModel inserts a new model record.
	CreateModel(ctx context.Context, model *domain.Model) error

	// ListModels returns a page of models ordered by creation time.
	ListModels(ctx context.Context, offset, limit int) ([]*domain.Model, error)

	// ListStaleModels returns IDs of models whose enrichment is missing or
	// older than maxAge, never-enriched first then oldest first, capped at
	// limit.
	ListStaleModels(ctx context.Context, maxAge time.Duration, limit int) ([]string, error)

	// SaveRepositoryStats persists repository enrichment for a model.
	SaveRepositoryStats(ctx context.Context, id string, stats *domain.RepositoryStats) error

	// SaveCommunityStats persists community enrichment for a model.
	SaveCommunityStats(ctx context.Context, id string, stats *domain.CommunityStats) error

	// SaveDerivedProfile persists heuristic enrichment for a model.
	SaveDerivedProfile(ctx context.Context, id string, profile *domain.DerivedProfile) error
}
