// ABOUTME: Community stats domain model holds enrichment data from the model hub
// ABOUTME: FetchedAt marks when the enrichment was computed, not the upstream update time

package domain

import "time"

// CommunityStats is the payload assembled from a single model-hub response.
type CommunityStats struct {
	Downloads   int      `json:"downloads"`
	Likes       int      `json:"likes"`
	LibraryName string   `json:"library_name,omitempty"`
	PipelineTag string   `json:"pipeline_tag,omitempty"`
	Tags        []string `json:"tags,omitempty"`

	// LastUpdatedAt is the upstream resource's own modification time,
	// nil when the hub does not report one
	LastUpdatedAt *time.Time `json:"last_updated_at,omitempty"`

	// FetchedAt is when this enrichment was computed
	FetchedAt time.Time `json:"fetched_at"`
}
