// ABOUTME: Response DTOs for model catalog API endpoints
// ABOUTME: Provides structured responses with JSON serialization

package responses

import "time"

// ModelResponse represents a catalog model in API responses
type ModelResponse struct {
	ID              string                   `json:"id" doc:"Unique identifier for the model"`
	Name            string                   `json:"name" doc:"Human-readable model name"`
	Description     string                   `json:"description,omitempty" doc:"Model description"`
	ModelType       string                   `json:"model_type,omitempty" doc:"Model category"`
	Parameters      string                   `json:"parameters,omitempty" doc:"Advertised parameter count"`
	Capabilities    []string                 `json:"capabilities" doc:"Advertised capabilities"`
	GitHubURL       string                   `json:"github_url,omitempty" doc:"Source repository URL"`
	ModelHubURL     string                   `json:"model_hub_url,omitempty" doc:"Model-hub page URL"`
	RepositoryStats *RepositoryStatsResponse `json:"repository_stats,omitempty" doc:"Repository enrichment"`
	CommunityStats  *CommunityStatsResponse  `json:"community_stats,omitempty" doc:"Community enrichment"`
	DerivedProfile  *DerivedProfileResponse  `json:"derived_profile,omitempty" doc:"Heuristic enrichment"`
	EnrichedAt      *time.Time               `json:"enriched_at,omitempty" doc:"When enrichment was last persisted"`
	CreatedAt       time.Time                `json:"created_at" doc:"When the model was registered"`
}

// RepositoryStatsResponse represents repository enrichment in API responses
type RepositoryStatsResponse struct {
	Stars           int               `json:"stars" doc:"Star count"`
	Forks           int               `json:"forks" doc:"Fork count"`
	OpenIssues      int               `json:"open_issues" doc:"Open issue count"`
	PrimaryLanguage string            `json:"primary_language,omitempty" doc:"Primary repository language"`
	LastUpdatedAt   time.Time         `json:"last_updated_at" doc:"When the repository was last updated"`
	LastPushedAt    time.Time         `json:"last_pushed_at" doc:"When the repository was last pushed to"`
	Releases        []ReleaseResponse `json:"releases" doc:"Published releases, most recent first"`
}

// ReleaseResponse represents a single published release
type ReleaseResponse struct {
	Tag         string    `json:"tag" doc:"Release tag"`
	DisplayName string    `json:"display_name" doc:"Release display name"`
	PublishedAt time.Time `json:"published_at" doc:"Publication date"`
	Notes       string    `json:"notes,omitempty" doc:"Release notes"`
}

// CommunityStatsResponse represents community enrichment in API responses
type CommunityStatsResponse struct {
	Downloads     int        `json:"downloads" doc:"Download count"`
	Likes         int        `json:"likes" doc:"Like count"`
	LibraryName   string     `json:"library_name,omitempty" doc:"Library the model targets"`
	PipelineTag   string     `json:"pipeline_tag,omitempty" doc:"Hub pipeline tag"`
	Tags          []string   `json:"tags,omitempty" doc:"Hub tags"`
	LastUpdatedAt *time.Time `json:"last_updated_at,omitempty" doc:"Upstream modification time"`
	FetchedAt     time.Time  `json:"fetched_at" doc:"When this enrichment was computed"`
}

// DerivedProfileResponse represents heuristic enrichment in API responses
type DerivedProfileResponse struct {
	HardwareTier   string   `json:"hardware_tier" doc:"Smallest hardware tier expected to run the model"`
	MinMemoryGB    int      `json:"min_memory_gb" doc:"Estimated minimum accelerator memory"`
	RiskScore      int      `json:"risk_score" doc:"Risk score from 1 (benign) to 10 (high risk)"`
	UseCases       []string `json:"use_cases" doc:"Use-case tags derived from metadata"`
	SuggestedLinks []string `json:"suggested_links" doc:"Suggested documentation links"`
}

// EnrichmentOutcomeResponse reports what one enrichment pass did for a model
type EnrichmentOutcomeResponse struct {
	ModelID       string   `json:"model_id" doc:"Model the outcome belongs to"`
	Success       bool     `json:"success" doc:"False only when the model is missing from the catalog"`
	UpdatedFields []string `json:"updated_fields" doc:"Enrichment fields persisted during this pass"`
	Errors        []string `json:"errors" doc:"Non-fatal failures recorded during this pass"`
}

// EnrichModelResponse represents the result of a single-model refresh
type EnrichModelResponse struct {
	// Queued is true when the refresh was handed to the background worker
	Queued bool `json:"queued,omitempty" doc:"True when the refresh was queued instead of run inline"`

	// Outcome is present for synchronous refreshes
	Outcome *EnrichmentOutcomeResponse `json:"outcome,omitempty" doc:"Outcome of a synchronous refresh"`
}

// ListModelsResponse represents a page of catalog models
type ListModelsResponse struct {
	Models []ModelResponse `json:"models" doc:"Page of catalog models"`
	Count  int             `json:"count" doc:"Number of models in this page"`
	Offset int             `json:"offset" doc:"Page offset"`
	Limit  int             `json:"limit" doc:"Page size"`
}

// EnrichStaleResponse represents the result of a stale enrichment sweep
type EnrichStaleResponse struct {
	Processed int `json:"processed" doc:"Number of models refreshed by the sweep"`
}
