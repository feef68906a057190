// ABOUTME: Repository stats domain model holds enrichment data from the hosting API
// ABOUTME: Immutable once constructed; a refresh replaces the whole value

package domain

import "time"

// RepositoryStats is the composite payload assembled from the hosting API's
// repository and release responses. Values are snapshots of external truth;
// a refresh overwrites the whole struct rather than merging.
type RepositoryStats struct {
	Stars           int       `json:"stars"`
	Forks           int       `json:"forks"`
	OpenIssues      int       `json:"open_issues"`
	PrimaryLanguage string    `json:"primary_language,omitempty"`
	LastUpdatedAt   time.Time `json:"last_updated_at"`
	LastPushedAt    time.Time `json:"last_pushed_at"`

	// Releases is most-recent-first, drafts and prereleases excluded,
	// at most ten entries
	Releases []Release `json:"releases"`
}

// Release is a single published release kept in RepositoryStats. Drafts and
// prereleases are filtered out before construction.
type Release struct {
	Tag         string    `json:"tag"`
	DisplayName string    `json:"display_name"`
	PublishedAt time.Time `json:"published_at"`
	Notes       string    `json:"notes,omitempty"`
}

// LatestRelease returns the most recent release, or nil if none exist.
func (r *RepositoryStats) LatestRelease() *Release {
	if len(r.Releases) == 0 {
		return nil
	}
	return &r.Releases[0]
}
