// ABOUTME: Model catalog handlers for the Huma API
// ABOUTME: Provides HTTP endpoints for model registration and enrichment

package handlers

import (
	"context"
	"net/http"
	"time"

	"mlcatalog-api/api/dto/mappers"
	"mlcatalog-api/api/dto/requests"
	"mlcatalog-api/api/dto/responses"
	"mlcatalog-api/core/domain"
	"mlcatalog-api/core/interfaces"
	"mlcatalog-api/core/workers"
	"github.com/danielgtaylor/huma/v2"
)

// ModelHandler handles model catalog HTTP requests
type ModelHandler struct {
	store      interfaces.CatalogStore
	enrichment interfaces.EnrichmentService
	worker     *workers.EnrichmentWorker
	logger     interfaces.Logger
}

// NewModelHandler creates a new model handler
func NewModelHandler(store interfaces.CatalogStore, enrichment interfaces.EnrichmentService, worker *workers.EnrichmentWorker, logger interfaces.Logger) *ModelHandler {
	return &ModelHandler{
		store:      store,
		enrichment: enrichment,
		worker:     worker,
		logger:     logger,
	}
}

// RegisterRoutes registers all model catalog routes
func (h *ModelHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "createModel",
		Method:      http.MethodPost,
		Path:        "/models",
		Summary:     "Register a model",
		Description: "Registers a new model in the catalog",
		Tags:        []string{"Models"},
	}, h.CreateModel)

	huma.Register(api, huma.Operation{
		OperationID: "listModels",
		Method:      http.MethodGet,
		Path:        "/models",
		Summary:     "List models",
		Description: "Returns a page of catalog models ordered by creation time",
		Tags:        []string{"Models"},
	}, h.ListModels)

	huma.Register(api, huma.Operation{
		OperationID: "getModel",
		Method:      http.MethodGet,
		Path:        "/models/{id}",
		Summary:     "Get a model",
		Description: "Returns a single catalog model with its enrichment fields",
		Tags:        []string{"Models"},
	}, h.GetModel)

	huma.Register(api, huma.Operation{
		OperationID: "enrichModel",
		Method:      http.MethodPost,
		Path:        "/models/{id}/enrich",
		Summary:     "Enrich a model",
		Description: "Refreshes repository, community, and heuristic enrichment for a model",
		Tags:        []string{"Enrichment"},
	}, h.EnrichModel)

	huma.Register(api, huma.Operation{
		OperationID: "enrichStale",
		Method:      http.MethodPost,
		Path:        "/enrichment/stale",
		Summary:     "Refresh stale enrichment",
		Description: "Refreshes models whose enrichment is missing or older than the given age",
		Tags:        []string{"Enrichment"},
	}, h.EnrichStale)
}

// CreateModelInput defines the input for the CreateModel operation
type CreateModelInput struct {
	Body requests.CreateModelRequest `json:"body"`
}

// CreateModelOutput defines the output for the CreateModel operation
type CreateModelOutput struct {
	Body responses.ModelResponse
}

// CreateModel handles the POST /models endpoint
func (h *ModelHandler) CreateModel(ctx context.Context, input *CreateModelInput) (*CreateModelOutput, error) {
	model := &domain.Model{
		ID:           input.Body.ID,
		Name:         input.Body.Name,
		Description:  input.Body.Description,
		ModelType:    input.Body.ModelType,
		Parameters:   input.Body.Parameters,
		Capabilities: input.Body.Capabilities,
		GitHubURL:    input.Body.GitHubURL,
		ModelHubURL:  input.Body.ModelHubURL,
		CreatedAt:    time.Now(),
	}

	if err := model.Validate(); err != nil {
		return nil, toHumaError(err)
	}

	if err := h.store.CreateModel(ctx, model); err != nil {
		return nil, toHumaError(err)
	}

	h.logger.Info("model registered", map[string]interface{}{
		"model_id": model.ID,
	})

	return &CreateModelOutput{Body: *mappers.ToModelResponse(model)}, nil
}

// ListModelsInput defines the input for the ListModels operation
type ListModelsInput struct {
	Offset int `query:"offset" minimum:"0" default:"0" doc:"Page offset"`
	Limit  int `query:"limit" minimum:"1" maximum:"100" default:"20" doc:"Page size"`
}

// ListModelsOutput defines the output for the ListModels operation
type ListModelsOutput struct {
	Body responses.ListModelsResponse
}

// ListModels handles the GET /models endpoint
func (h *ModelHandler) ListModels(ctx context.Context, input *ListModelsInput) (*ListModelsOutput, error) {
	limit := input.Limit
	if limit == 0 {
		limit = 20
	}

	models, err := h.store.ListModels(ctx, input.Offset, limit)
	if err != nil {
		return nil, toHumaError(err)
	}

	page := mappers.ToModelResponses(models)

	return &ListModelsOutput{
		Body: responses.ListModelsResponse{
			Models: page,
			Count:  len(page),
			Offset: input.Offset,
			Limit:  limit,
		},
	}, nil
}

// GetModelInput defines the input for the GetModel operation
type GetModelInput struct {
	ID string `path:"id" doc:"Model identifier"`
}

// GetModelOutput defines the output for the GetModel operation
type GetModelOutput struct {
	Body responses.ModelResponse
}

// GetModel handles the GET /models/{id} endpoint
func (h *ModelHandler) GetModel(ctx context.Context, input *GetModelInput) (*GetModelOutput, error) {
	model, err := h.store.GetModel(ctx, input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &GetModelOutput{Body: *mappers.ToModelResponse(model)}, nil
}

// EnrichModelInput defines the input for the EnrichModel operation
type EnrichModelInput struct {
	ID    string `path:"id" doc:"Model identifier"`
	Async bool   `query:"async" default:"false" doc:"Queue the refresh instead of waiting for it"`
}

// EnrichModelOutput defines the output for the EnrichModel operation
type EnrichModelOutput struct {
	Body responses.EnrichModelResponse
}

// EnrichModel handles the POST /models/{id}/enrich endpoint
func (h *ModelHandler) EnrichModel(ctx context.Context, input *EnrichModelInput) (*EnrichModelOutput, error) {
	if input.Async && h.worker != nil {
		if err := h.worker.EnrichModelAsync(ctx, input.ID); err != nil {
			return nil, toHumaError(err)
		}
		return &EnrichModelOutput{
			Body: responses.EnrichModelResponse{Queued: true},
		}, nil
	}

	outcome := h.enrichment.EnrichOne(ctx, input.ID)
	if !outcome.Success {
		h.logger.Warn("enrichment failed", map[string]interface{}{
			"model_id": input.ID,
			"errors":   outcome.Errors,
		})
	}

	return &EnrichModelOutput{
		Body: responses.EnrichModelResponse{
			Outcome: mappers.ToEnrichmentOutcomeResponse(outcome),
		},
	}, nil
}

// EnrichStaleInput defines the input for the EnrichStale operation
type EnrichStaleInput struct {
	Body requests.EnrichStaleRequest `json:"body"`
}

// EnrichStaleOutput defines the output for the EnrichStale operation
type EnrichStaleOutput struct {
	Body responses.EnrichStaleResponse
}

// EnrichStale handles the POST /enrichment/stale endpoint
func (h *ModelHandler) EnrichStale(ctx context.Context, input *EnrichStaleInput) (*EnrichStaleOutput, error) {
	input.Body.ApplyDefaults()

	processed, err := h.enrichment.EnrichStale(ctx, input.Body.MaxAgeHours, input.Body.Limit)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &EnrichStaleOutput{
		Body: responses.EnrichStaleResponse{Processed: processed},
	}, nil
}
