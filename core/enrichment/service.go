// ABOUTME: Enrichment orchestrator coordinates per-model external fetches and persistence
// ABOUTME: One outcome per model per run; sub-fetch failures never abort the batch

package enrichment

import (
	"context"
	"time"

	"golang.org/x/time/rate"

	"mlcatalog-api/core/domain"
	coreerrors "mlcatalog-api/core/errors"
	"mlcatalog-api/core/heuristics"
	"mlcatalog-api/core/interfaces"
)

const (
	// DefaultEntityInterval is the pacing between models in a bulk run,
	// a courtesy to the upstream APIs rather than a correctness requirement.
	DefaultEntityInterval = 500 * time.Millisecond

	// DefaultFetchTimeout bounds each external sub-fetch. The fetch client
	// enforces no timeout of its own; a deadline hit is handled like any
	// other transient fetch error.
	DefaultFetchTimeout = 30 * time.Second
)

// Service orchestrates enrichment across catalog models.
type Service struct {
	deps             interfaces.Dependencies
	store            interfaces.CatalogStore
	repoFetcher      interfaces.RepoStatsFetcher
	communityFetcher interfaces.CommunityStatsFetcher
	pacer            *rate.Limiter
	fetchTimeout     time.Duration
}

// Option configures the enrichment service.
type Option func(*Service)

// WithEntityInterval overrides the pacing between models in a bulk run.
func WithEntityInterval(interval time.Duration) Option {
	return func(s *Service) {
		if interval > 0 {
			s.pacer = rate.NewLimiter(rate.Every(interval), 1)
		}
	}
}

// WithFetchTimeout overrides the per-sub-fetch deadline.
func WithFetchTimeout(timeout time.Duration) Option {
	return func(s *Service) {
		if timeout > 0 {
			s.fetchTimeout = timeout
		}
	}
}

// NewService creates the enrichment orchestrator.
func NewService(
	deps interfaces.Dependencies,
	store interfaces.CatalogStore,
	repoFetcher interfaces.RepoStatsFetcher,
	communityFetcher interfaces.CommunityStatsFetcher,
	opts ...Option,
) *Service {
	s := &Service{
		deps:             deps,
		store:            store,
		repoFetcher:      repoFetcher,
		communityFetcher: communityFetcher,
		pacer:            rate.NewLimiter(rate.Every(DefaultEntityInterval), 1),
		fetchTimeout:     DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// EnrichOne refreshes all enrichment for a single model. The returned outcome
// is always non-nil. A missing model is the one fatal condition; every other
// failure is recorded and the run continues.
func (s *Service) EnrichOne(ctx context.Context, id string) *domain.EnrichmentOutcome {
	outcome := domain.NewEnrichmentOutcome(id)

	model, err := s.store.GetModel(ctx, id)
	if err != nil {
		outcome.Fail(err.Error())
		if !coreerrors.IsNotFound(err) {
			s.deps.Logger.Error("Model lookup failed", map[string]interface{}{
				"model_id": id,
				"error":    err.Error(),
			})
		}
		return outcome
	}

	if model.HasGitHubURL() {
		s.enrichRepository(ctx, model, outcome)
	}
	if model.HasModelHubURL() {
		s.enrichCommunity(ctx, model, outcome)
	}
	s.enrichProfile(ctx, model, outcome)

	s.deps.Logger.Info("Model enrichment finished", map[string]interface{}{
		"model_id":       id,
		"updated_fields": outcome.UpdatedFields,
		"error_count":    len(outcome.Errors),
	})
	return outcome
}

// enrichRepository runs the repository sub-fetch and persists the result.
func (s *Service) enrichRepository(ctx context.Context, model *domain.Model, outcome *domain.EnrichmentOutcome) {
	fetchCtx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
	defer cancel()

	stats, err := s.repoFetcher.FetchRepoStats(fetchCtx, model.GitHubURL)
	if err != nil {
		outcome.RecordError(coreerrors.WrapError(err, "repository stats fetch failed").Error())
		return
	}
	if stats == nil {
		// Unparseable URL or nonexistent repository; nothing to persist
		// and nothing to report.
		return
	}

	if err := s.store.SaveRepositoryStats(ctx, model.ID, stats); err != nil {
		persistErr := &coreerrors.PersistenceError{
			Field:   domain.FieldRepositoryStats,
			ModelID: model.ID,
			Err:     err,
		}
		outcome.RecordError(persistErr.Error())
		return
	}
	outcome.RecordUpdate(domain.FieldRepositoryStats)
}

// enrichCommunity runs the community sub-fetch and persists the result.
func (s *Service) enrichCommunity(ctx context.Context, model *domain.Model, outcome *domain.EnrichmentOutcome) {
	fetchCtx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
	defer cancel()

	stats, err := s.communityFetcher.FetchCommunityStats(fetchCtx, model.ModelHubURL)
	if err != nil {
		outcome.RecordError(coreerrors.WrapError(err, "community stats fetch failed").Error())
		return
	}
	if stats == nil {
		return
	}

	if err := s.store.SaveCommunityStats(ctx, model.ID, stats); err != nil {
		persistErr := &coreerrors.PersistenceError{
			Field:   domain.FieldCommunityStats,
			ModelID: model.ID,
			Err:     err,
		}
		outcome.RecordError(persistErr.Error())
		return
	}
	outcome.RecordUpdate(domain.FieldCommunityStats)
}

// enrichProfile recomputes the heuristic profile from the model's text
// metadata. Derivation is pure and cannot fail; only persistence can.
func (s *Service) enrichProfile(ctx context.Context, model *domain.Model, outcome *domain.EnrichmentOutcome) {
	profile := heuristics.DeriveProfile(
		model.Name,
		model.Description,
		model.ModelType,
		model.Parameters,
		model.Capabilities,
	)

	if err := s.store.SaveDerivedProfile(ctx, model.ID, &profile); err != nil {
		persistErr := &coreerrors.PersistenceError{
			Field:   domain.FieldDerivedProfile,
			ModelID: model.ID,
			Err:     err,
		}
		outcome.RecordError(persistErr.Error())
		return
	}
	outcome.RecordUpdate(domain.FieldDerivedProfile)
}

// EnrichMany refreshes the given models in order with inter-model pacing.
// Callers always get one outcome per requested ID, never fewer.
func (s *Service) EnrichMany(ctx context.Context, ids []string) map[string]*domain.EnrichmentOutcome {
	s.evictExpired(ctx)

	results := make(map[string]*domain.EnrichmentOutcome, len(ids))
	for _, id := range ids {
		if err := s.pacer.Wait(ctx); err != nil {
			outcome := domain.NewEnrichmentOutcome(id)
			outcome.Fail("enrichment run canceled: " + err.Error())
			results[id] = outcome
			continue
		}
		results[id] = s.EnrichOne(ctx, id)
	}
	return results
}

// EnrichStale refreshes models whose enrichment is absent or older than
// maxAgeHours, oldest first, capped at limit. Zero qualifying models is a
// normal terminal state.
func (s *Service) EnrichStale(ctx context.Context, maxAgeHours, limit int) (int, error) {
	maxAge := time.Duration(maxAgeHours) * time.Hour

	ids, err := s.store.ListStaleModels(ctx, maxAge, limit)
	if err != nil {
		return 0, coreerrors.WrapError(err, "stale model selection failed")
	}
	if len(ids) == 0 {
		s.deps.Logger.Debug("No stale models to enrich", map[string]interface{}{
			"max_age_hours": maxAgeHours,
		})
		return 0, nil
	}

	s.deps.Logger.Info("Starting stale enrichment pass", map[string]interface{}{
		"count":         len(ids),
		"max_age_hours": maxAgeHours,
		"limit":         limit,
	})

	s.EnrichMany(ctx, ids)
	return len(ids), nil
}

// evictExpired sweeps expired cache entries before a bulk pass when the
// configured backend supports it.
func (s *Service) evictExpired(ctx context.Context) {
	evictor, ok := s.deps.Cache.(interfaces.Evictor)
	if !ok {
		return
	}
	if err := evictor.EvictExpired(ctx); err != nil {
		s.deps.Logger.Warn("Cache eviction sweep failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
}
