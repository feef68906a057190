// ABOUTME: Repository stats fetcher for the GitHub API
// ABOUTME: Combines the TTL cache and the fetch client; a fresh hit makes no network calls

package github

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"mlcatalog-api/core/domain"
	coreerrors "mlcatalog-api/core/errors"
	"mlcatalog-api/core/fetch"
	"mlcatalog-api/core/interfaces"
)

const (
	// DefaultBaseURL is the GitHub REST API root.
	DefaultBaseURL = "https://api.github.com"

	// Host is the API host, used for token and rate-limit configuration.
	Host = "api.github.com"

	// StatsTTL is how long cached repository stats stay fresh.
	StatsTTL = time.Hour

	cacheKeyPrefix  = "repostats:"
	maxReleases     = 10
	releasePageSize = 30
)

// Fetcher retrieves repository stats for catalog models. Results are cached
// for StatsTTL under the normalized owner/repo key; a refresh overwrites the
// cached value wholesale.
type Fetcher struct {
	deps    interfaces.Dependencies
	client  *fetch.Client
	baseURL string
}

// NewFetcher creates a repository stats fetcher.
func NewFetcher(deps interfaces.Dependencies, client *fetch.Client) *Fetcher {
	return &Fetcher{
		deps:    deps,
		client:  client,
		baseURL: DefaultBaseURL,
	}
}

// FetchRepoStats resolves identifierURL to a repository and returns its
// stats. A nil result with a nil error means the URL did not parse or the
// repository does not exist; both are normal outcomes. A non-nil error means
// a transient fetch failure worth recording.
func (f *Fetcher) FetchRepoStats(ctx context.Context, identifierURL string) (*domain.RepositoryStats, error) {
	key, err := ParseRepoKey(identifierURL)
	if err != nil {
		f.deps.Logger.Debug("Unparseable repository URL", map[string]interface{}{
			"url":   identifierURL,
			"error": err.Error(),
		})
		return nil, nil
	}

	if stats := f.cachedStats(ctx, key); stats != nil {
		return stats, nil
	}

	repo, err := f.fetchRepo(ctx, key)
	if err != nil {
		if coreerrors.IsNotFound(err) {
			f.deps.Logger.Debug("Repository does not exist", map[string]interface{}{
				"repo": key,
			})
			return nil, nil
		}
		return nil, err
	}

	// Release history is best effort; repository existence is load-bearing,
	// releases are not.
	releases := f.fetchReleases(ctx, key)

	stats := &domain.RepositoryStats{
		Stars:           repo.StargazersCount,
		Forks:           repo.ForksCount,
		OpenIssues:      repo.OpenIssuesCount,
		PrimaryLanguage: repo.Language,
		LastUpdatedAt:   repo.UpdatedAt,
		LastPushedAt:    repo.PushedAt,
		Releases:        releases,
	}

	f.cacheStats(ctx, key, stats)
	return stats, nil
}

// cachedStats returns fresh cached stats for key, or nil on a miss.
func (f *Fetcher) cachedStats(ctx context.Context, key string) *domain.RepositoryStats {
	if f.deps.Cache == nil {
		return nil
	}

	data, err := f.deps.Cache.Get(ctx, cacheKeyPrefix+key)
	if err != nil || data == nil {
		return nil
	}

	var stats domain.RepositoryStats
	if err := json.Unmarshal(data, &stats); err != nil {
		f.deps.Logger.Warn("Discarding undecodable cache entry", map[string]interface{}{
			"repo":  key,
			"error": err.Error(),
		})
		_ = f.deps.Cache.Delete(ctx, cacheKeyPrefix+key)
		return nil
	}
	return &stats
}

// cacheStats stores stats under the normalized key. Cache failures are not
// fetch failures.
func (f *Fetcher) cacheStats(ctx context.Context, key string, stats *domain.RepositoryStats) {
	if f.deps.Cache == nil {
		return
	}

	data, err := json.Marshal(stats)
	if err != nil {
		return
	}
	if err := f.deps.Cache.Set(ctx, cacheKeyPrefix+key, data, StatsTTL); err != nil {
		f.deps.Logger.Warn("Failed to cache repository stats", map[string]interface{}{
			"repo":  key,
			"error": err.Error(),
		})
	}
}

func (f *Fetcher) fetchRepo(ctx context.Context, key string) (*repoResponse, error) {
	var repo repoResponse
	url := fmt.Sprintf("%s/repos/%s", f.baseURL, key)
	if err := f.client.GetJSON(ctx, url, &repo); err != nil {
		return nil, err
	}
	return &repo, nil
}

// fetchReleases returns up to maxReleases published releases, most recent
// first. Any failure yields an empty slice.
func (f *Fetcher) fetchReleases(ctx context.Context, key string) []domain.Release {
	var raw []releaseResponse
	url := fmt.Sprintf("%s/repos/%s/releases?per_page=%d", f.baseURL, key, releasePageSize)
	if err := f.client.GetJSON(ctx, url, &raw); err != nil {
		f.deps.Logger.Warn("Failed to fetch release history", map[string]interface{}{
			"repo":  key,
			"error": err.Error(),
		})
		return []domain.Release{}
	}

	// The API returns newest first; drafts and prereleases are dropped
	// before anything is stored.
	releases := make([]domain.Release, 0, maxReleases)
	for _, r := range raw {
		if r.Draft || r.Prerelease {
			continue
		}
		releases = append(releases, domain.Release{
			Tag:         r.TagName,
			DisplayName: r.Name,
			PublishedAt: r.PublishedAt,
			Notes:       r.Body,
		})
		if len(releases) == maxReleases {
			break
		}
	}
	return releases
}

type repoResponse struct {
	StargazersCount int       `json:"stargazers_count"`
	ForksCount      int       `json:"forks_count"`
	OpenIssuesCount int       `json:"open_issues_count"`
	Language        string    `json:"language"`
	UpdatedAt       time.Time `json:"updated_at"`
	PushedAt        time.Time `json:"pushed_at"`
}

type releaseResponse struct {
	TagName     string    `json:"tag_name"`
	Name        string    `json:"name"`
	Body        string    `json:"body"`
	PublishedAt time.Time `json:"published_at"`
	Prerelease  bool      `json:"prerelease"`
	Draft       bool      `json:"draft"`
}
