// ABOUTME: Derived profile holds heuristic enrichment computed from text metadata
// ABOUTME: Produced by pure functions; same input always yields the same profile

package domain

// Hardware tiers ordered from smallest to largest.
const (
	HardwareTierConsumer    = "consumer"
	HardwareTierProsumer    = "prosumer"
	HardwareTierWorkstation = "workstation"
	HardwareTierDatacenter  = "datacenter"
)

// DerivedProfile is the fixed-shape record produced by the heuristic
// enrichment functions.
type DerivedProfile struct {
	// HardwareTier is the smallest tier expected to run the model
	HardwareTier string `json:"hardware_tier"`

	// MinMemoryGB is the estimated minimum accelerator memory
	MinMemoryGB int `json:"min_memory_gb"`

	// RiskScore ranges 1 (benign) to 10 (high risk)
	RiskScore int `json:"risk_score"`

	// UseCases are tags derived from the description text
	UseCases []string `json:"use_cases"`

	// SuggestedLinks are documentation/resource links derived from the
	// model's known URLs
	SuggestedLinks []string `json:"suggested_links"`
}
