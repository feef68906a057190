// ABOUTME: Dependency container shared by fetchers and enrichment services
// ABOUTME: Keeps infrastructure wiring out of the core packages themselves

package interfaces

// Dependencies bundles the infrastructure handed to the stats fetchers and
// the enrichment service. Core packages depend on these interfaces only;
// concrete implementations are chosen at startup.
type Dependencies struct {
	// Cache stores fetched repository stats between refreshes
	Cache Cache

	// HTTPClient performs outbound API calls
	HTTPClient HTTPClient

	// Logger provides structured logging
	Logger Logger
}
