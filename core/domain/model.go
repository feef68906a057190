// ABOUTME: Model domain entity represents an ML model record in the catalog
// ABOUTME: Carries the external URLs and text metadata used by enrichment

package domain

import (
	"errors"
	"strings"
	"time"
)

// Model represents a catalog entry for a machine-learning model.
type Model struct {
	// ID is the unique identifier for the model
	ID string

	// Name is the human-readable model name
	Name string

	// Description is the free-text description shown on the catalog page
	Description string

	// ModelType categorizes the model (e.g., "llm", "diffusion", "classifier")
	ModelType string

	// Parameters is the advertised parameter count as published
	// (e.g., "7B", "13b", "770M"); parsing is best-effort
	Parameters string

	// Capabilities lists advertised capabilities (e.g., "code", "vision")
	Capabilities []string

	// GitHubURL is the source repository URL, empty if none is known
	GitHubURL string

	// ModelHubURL is the model-hub page URL, empty if none is known
	ModelHubURL string

	// RepositoryStats holds the last persisted repository enrichment
	RepositoryStats *RepositoryStats

	// CommunityStats holds the last persisted community enrichment
	CommunityStats *CommunityStats

	// DerivedProfile holds heuristic enrichment derived from text metadata
	DerivedProfile *DerivedProfile

	// EnrichedAt is when any enrichment was last persisted, nil if never
	EnrichedAt *time.Time

	// CreatedAt is when the record entered the catalog
	CreatedAt time.Time
}

// Validate checks that the model has the minimum required fields.
func (m *Model) Validate() error {
	if strings.TrimSpace(m.ID) == "" {
		return errors.New("model ID cannot be empty")
	}
	if strings.TrimSpace(m.Name) == "" {
		return errors.New("model name cannot be empty")
	}
	return nil
}

// HasGitHubURL reports whether a repository URL is configured.
func (m *Model) HasGitHubURL() bool {
	return strings.TrimSpace(m.GitHubURL) != ""
}

// HasModelHubURL reports whether a model-hub URL is configured.
func (m *Model) HasModelHubURL() bool {
	return strings.TrimSpace(m.ModelHubURL) != ""
}
