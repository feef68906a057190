// ABOUTME: Request DTOs for model catalog API endpoints
// ABOUTME: Provides validation and default values for incoming requests

package requests

// CreateModelRequest represents the request body for registering a model
type CreateModelRequest struct {
	// ID is the catalog identifier for the model
	ID string `json:"id" required:"true" minLength:"1" maxLength:"128" doc:"Unique catalog identifier"`

	// Name is the human-readable model name
	Name string `json:"name" required:"true" minLength:"1" maxLength:"256" doc:"Human-readable model name"`

	// Description is the free-text description shown on the catalog page
	Description string `json:"description,omitempty" maxLength:"4096" doc:"Free-text model description"`

	// ModelType categorizes the model
	ModelType string `json:"model_type,omitempty" maxLength:"64" doc:"Model category (e.g., llm, diffusion)"`

	// Parameters is the advertised parameter count as published
	Parameters string `json:"parameters,omitempty" maxLength:"32" doc:"Advertised parameter count (e.g., 7B, 770M)"`

	// Capabilities lists advertised capabilities
	Capabilities []string `json:"capabilities,omitempty" maxItems:"32" doc:"Advertised capabilities (e.g., code, vision)"`

	// GitHubURL is the source repository URL
	GitHubURL string `json:"github_url,omitempty" maxLength:"512" doc:"Source repository URL"`

	// ModelHubURL is the model-hub page URL
	ModelHubURL string `json:"model_hub_url,omitempty" maxLength:"512" doc:"Model-hub page URL"`
}

// EnrichStaleRequest represents the request body for a stale enrichment sweep
type EnrichStaleRequest struct {
	// MaxAgeHours bounds how old enrichment may be before a model is stale
	MaxAgeHours int `json:"max_age_hours,omitempty" minimum:"1" default:"24" doc:"Enrichment older than this is stale"`

	// Limit caps how many models a single sweep refreshes
	Limit int `json:"limit,omitempty" minimum:"1" maximum:"500" default:"50" doc:"Maximum models refreshed per sweep"`
}

// ApplyDefaults sets default values for optional fields
func (r *EnrichStaleRequest) ApplyDefaults() {
	if r.MaxAgeHours == 0 {
		r.MaxAgeHours = 24
	}
	if r.Limit == 0 {
		r.Limit = 50
	}
}
