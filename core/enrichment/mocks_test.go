package enrichment

import (
	"context"
	"time"

	"mlcatalog-api/core/domain"
)

// mockStore is a mock implementation of the CatalogStore interface
type mockStore struct {
	getModelFunc            func(ctx context.Context, id string) (*domain.Model, error)
	createModelFunc         func(ctx context.Context, model *domain.Model) error
	listModelsFunc          func(ctx context.Context, offset, limit int) ([]*domain.Model, error)
	listStaleModelsFunc     func(ctx context.Context, maxAge time.Duration, limit int) ([]string, error)
	saveRepositoryStatsFunc func(ctx context.Context, id string, stats *domain.RepositoryStats) error
	saveCommunityStatsFunc  func(ctx context.Context, id string, stats *domain.CommunityStats) error
	saveDerivedProfileFunc  func(ctx context.Context, id string, profile *domain.DerivedProfile) error
}

func (m *mockStore) GetModel(ctx context.Context, id string) (*domain.Model, error) {
	if m.getModelFunc != nil {
		return m.getModelFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockStore) CreateModel(ctx context.Context, model *domain.Model) error {
	if m.createModelFunc != nil {
		return m.createModelFunc(ctx, model)
	}
	return nil
}

func (m *mockStore) ListModels(ctx context.Context, offset, limit int) ([]*domain.Model, error) {
	if m.listModelsFunc != nil {
		return m.listModelsFunc(ctx, offset, limit)
	}
	return nil, nil
}

func (m *mockStore) ListStaleModels(ctx context.Context, maxAge time.Duration, limit int) ([]string, error) {
	if m.listStaleModelsFunc != nil {
		return m.listStaleModelsFunc(ctx, maxAge, limit)
	}
	return nil, nil
}

func (m *mockStore) SaveRepositoryStats(ctx context.Context, id string, stats *domain.RepositoryStats) error {
	if m.saveRepositoryStatsFunc != nil {
		return m.saveRepositoryStatsFunc(ctx, id, stats)
	}
	return nil
}

func (m *mockStore) SaveCommunityStats(ctx context.Context, id string, stats *domain.CommunityStats) error {
	if m.saveCommunityStatsFunc != nil {
		return m.saveCommunityStatsFunc(ctx, id, stats)
	}
	return nil
}

func (m *mockStore) SaveDerivedProfile(ctx context.Context, id string, profile *domain.DerivedProfile) error {
	if m.saveDerivedProfileFunc != nil {
		return m.saveDerivedProfileFunc(ctx, id, profile)
	}
	return nil
}

// mockRepoFetcher is a mock implementation of the RepoStatsFetcher interface
type mockRepoFetcher struct {
	fetchFunc func(ctx context.Context, identifierURL string) (*domain.RepositoryStats, error)
}

func (m *mockRepoFetcher) FetchRepoStats(ctx context.Context, identifierURL string) (*domain.RepositoryStats, error) {
	if m.fetchFunc != nil {
		return m.fetchFunc(ctx, identifierURL)
	}
	return nil, nil
}

// mockCommunityFetcher is a mock implementation of the CommunityStatsFetcher interface
type mockCommunityFetcher struct {
	fetchFunc func(ctx context.Context, identifierURL string) (*domain.CommunityStats, error)
}

func (m *mockCommunityFetcher) FetchCommunityStats(ctx context.Context, identifierURL string) (*domain.CommunityStats, error) {
	if m.fetchFunc != nil {
		return m.fetchFunc(ctx, identifierURL)
	}
	return nil, nil
}

// mockCache is a mock implementation of the Cache interface
type mockCache struct {
	getFunc    func(ctx context.Context, key string) ([]byte, error)
	setFunc    func(ctx context.Context, key string, value []byte, ttl time.Duration) error
	deleteFunc func(ctx context.Context, key string) error
}

func (m *mockCache) Get(ctx context.Context, key string) ([]byte, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, key)
	}
	return nil, nil
}

func (m *mockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.setFunc != nil {
		return m.setFunc(ctx, key, value, ttl)
	}
	return nil
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, key)
	}
	return nil
}

// mockEvictingCache adds the Evictor interface on top of mockCache
type mockEvictingCache struct {
	mockCache
	evictFunc func(ctx context.Context) error
}

func (m *mockEvictingCache) EvictExpired(ctx context.Context) error {
	if m.evictFunc != nil {
		return m.evictFunc(ctx)
	}
	return nil
}

// mockLogger is a mock implementation of the Logger interface
type mockLogger struct {
	debugFunc func(msg string, fields map[string]interface{})
	infoFunc  func(msg string, fields map[string]interface{})
	warnFunc  func(msg string, fields map[string]interface{})
	errorFunc func(msg string, fields map[string]interface{})
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {
	if m.debugFunc != nil {
		m.debugFunc(msg, fields)
	}
}

func (m *mockLogger) Info(msg string, fields map[string]interface{}) {
	if m.infoFunc != nil {
		m.infoFunc(msg, fields)
	}
}

func (m *mockLogger) Warn(msg string, fields map[string]interface{}) {
	if m.warnFunc != nil {
		m.warnFunc(msg, fields)
	}
}

func (m *mockLogger) Error(msg string, fields map[string]interface{}) {
	if m.errorFunc != nil {
		m.errorFunc(msg, fields)
	}
}
