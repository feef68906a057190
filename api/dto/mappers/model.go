// ABOUTME: Mappers for converting between domain models and API DTOs
// ABOUTME: Provides clean separation between business logic and API layer

package mappers

import (
	"mlcatalog-api/api/dto/responses"
	"mlcatalog-api/core/domain"
)

// ToModelResponse converts a domain Model to a ModelResponse DTO
func ToModelResponse(model *domain.Model) *responses.ModelResponse {
	if model == nil {
		return nil
	}

	response := &responses.ModelResponse{
		ID:           model.ID,
		Name:         model.Name,
		Description:  model.Description,
		ModelType:    model.ModelType,
		Parameters:   model.Parameters,
		Capabilities: model.Capabilities,
		GitHubURL:    model.GitHubURL,
		ModelHubURL:  model.ModelHubURL,
		EnrichedAt:   model.EnrichedAt,
		CreatedAt:    model.CreatedAt,
	}
	if response.Capabilities == nil {
		response.Capabilities = []string{}
	}

	response.RepositoryStats = ToRepositoryStatsResponse(model.RepositoryStats)
	response.CommunityStats = ToCommunityStatsResponse(model.CommunityStats)
	response.DerivedProfile = ToDerivedProfileResponse(model.DerivedProfile)

	return response
}

// ToRepositoryStatsResponse converts domain RepositoryStats to its DTO
func ToRepositoryStatsResponse(stats *domain.RepositoryStats) *responses.RepositoryStatsResponse {
	if stats == nil {
		return nil
	}

	response := &responses.RepositoryStatsResponse{
		Stars:           stats.Stars,
		Forks:           stats.Forks,
		OpenIssues:      stats.OpenIssues,
		PrimaryLanguage: stats.PrimaryLanguage,
		LastUpdatedAt:   stats.LastUpdatedAt,
		LastPushedAt:    stats.LastPushedAt,
		Releases:        make([]responses.ReleaseResponse, 0, len(stats.Releases)),
	}

	for _, release := range stats.Releases {
		response.Releases = append(response.Releases, responses.ReleaseResponse{
			Tag:         release.Tag,
			DisplayName: release.DisplayName,
			PublishedAt: release.PublishedAt,
			Notes:       release.Notes,
		})
	}

	return response
}

// ToCommunityStatsResponse converts domain CommunityStats to its DTO
func ToCommunityStatsResponse(stats *domain.CommunityStats) *responses.CommunityStatsResponse {
	if stats == nil {
		return nil
	}

	return &responses.CommunityStatsResponse{
		Downloads:     stats.Downloads,
		Likes:         stats.Likes,
		LibraryName:   stats.LibraryName,
		PipelineTag:   stats.PipelineTag,
		Tags:          stats.Tags,
		LastUpdatedAt: stats.LastUpdatedAt,
		FetchedAt:     stats.FetchedAt,
	}
}

// ToDerivedProfileResponse converts a domain DerivedProfile to its DTO
func ToDerivedProfileResponse(profile *domain.DerivedProfile) *responses.DerivedProfileResponse {
	if profile == nil {
		return nil
	}

	return &responses.DerivedProfileResponse{
		HardwareTier:   profile.HardwareTier,
		MinMemoryGB:    profile.MinMemoryGB,
		RiskScore:      profile.RiskScore,
		UseCases:       profile.UseCases,
		SuggestedLinks: profile.SuggestedLinks,
	}
}

// ToEnrichmentOutcomeResponse converts a domain EnrichmentOutcome to its DTO
func ToEnrichmentOutcomeResponse(outcome *domain.EnrichmentOutcome) *responses.EnrichmentOutcomeResponse {
	if outcome == nil {
		return nil
	}

	return &responses.EnrichmentOutcomeResponse{
		ModelID:       outcome.ModelID,
		Success:       outcome.Success,
		UpdatedFields: outcome.UpdatedFields,
		Errors:        outcome.Errors,
	}
}

// ToModelResponses converts multiple domain Models to ModelResponse DTOs
func ToModelResponses(models []*domain.Model) []responses.ModelResponse {
	out := make([]responses.ModelResponse, 0, len(models))

	for _, model := range models {
		if response := ToModelResponse(model); response != nil {
			out = append(out, *response)
		}
	}

	return out
}
