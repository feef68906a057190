// ABOUTME: Enrichment outcome is the per-model run report produced by the orchestrator
// ABOUTME: Never persisted; consumed by callers and logs

package domain

// Field names recorded in EnrichmentOutcome.UpdatedFields.
const (
	FieldRepositoryStats = "repository_stats"
	FieldCommunityStats  = "community_stats"
	FieldDerivedProfile  = "derived_profile"
)

// EnrichmentOutcome reports what one orchestrator pass did for one model.
// Sub-fetch failures are recorded in Errors without flipping Success; only a
// missing model marks Success false.
type EnrichmentOutcome struct {
	ModelID       string   `json:"model_id"`
	Success       bool     `json:"success"`
	UpdatedFields []string `json:"updated_fields"`
	Errors        []string `json:"errors"`
}

// NewEnrichmentOutcome creates an outcome for the given model, successful and
// empty until the run records otherwise.
func NewEnrichmentOutcome(modelID string) *EnrichmentOutcome {
	return &EnrichmentOutcome{
		ModelID:       modelID,
		Success:       true,
		UpdatedFields: []string{},
		Errors:        []string{},
	}
}

// RecordUpdate marks a field as persisted during this run.
func (o *EnrichmentOutcome) RecordUpdate(field string) {
	o.UpdatedFields = append(o.UpdatedFields, field)
}

// RecordError appends a non-fatal failure description.
func (o *EnrichmentOutcome) RecordError(msg string) {
	o.Errors = append(o.Errors, msg)
}

// Fail marks the run as failed with the given cause. Used only for the
// model-not-found case.
func (o *EnrichmentOutcome) Fail(msg string) {
	o.Success = false
	o.Errors = append(o.Errors, msg)
}
