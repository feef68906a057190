// ABOUTME: Community stats fetcher for the model hub API
// ABOUTME: Single uncached call per model; queried once per orchestrator pass

package modelhub

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"mlcatalog-api/core/domain"
	coreerrors "mlcatalog-api/core/errors"
	"mlcatalog-api/core/fetch"
	"mlcatalog-api/core/interfaces"
)

const (
	// DefaultBaseURL is the public model hub API root.
	DefaultBaseURL = "https://huggingface.co"

	// Host is the hub host, used for rate-limit configuration.
	Host = "huggingface.co"
)

var (
	hostedPattern = regexp.MustCompile(`^(?:https?://)?(?:www\.)?huggingface\.co/([^/\s]+)/([^/\s?#]+)`)
	barePattern   = regexp.MustCompile(`^([A-Za-z0-9][A-Za-z0-9_.-]*)/([A-Za-z0-9][A-Za-z0-9_.-]*)$`)
)

// Fetcher retrieves community stats from the model hub. The hub is queried at
// most once per model per orchestrator pass, so results are not cached.
type Fetcher struct {
	deps    interfaces.Dependencies
	client  *fetch.Client
	baseURL string
}

// NewFetcher creates a community stats fetcher.
func NewFetcher(deps interfaces.Dependencies, client *fetch.Client) *Fetcher {
	return &Fetcher{
		deps:    deps,
		client:  client,
		baseURL: DefaultBaseURL,
	}
}

// FetchCommunityStats resolves identifierURL to a hub model and returns its
// stats. A nil result with a nil error means the URL did not parse or the
// model does not exist on the hub.
func (f *Fetcher) FetchCommunityStats(ctx context.Context, identifierURL string) (*domain.CommunityStats, error) {
	id, err := ParseModelID(identifierURL)
	if err != nil {
		f.deps.Logger.Debug("Unparseable model hub URL", map[string]interface{}{
			"url":   identifierURL,
			"error": err.Error(),
		})
		return nil, nil
	}

	var resp modelResponse
	url := fmt.Sprintf("%s/api/models/%s", f.baseURL, id)
	if err := f.client.GetJSON(ctx, url, &resp); err != nil {
		if coreerrors.IsNotFound(err) {
			f.deps.Logger.Debug("Model does not exist on hub", map[string]interface{}{
				"model": id,
			})
			return nil, nil
		}
		return nil, err
	}

	stats := &domain.CommunityStats{
		Downloads:   resp.Downloads,
		Likes:       resp.Likes,
		LibraryName: resp.LibraryName,
		PipelineTag: resp.PipelineTag,
		Tags:        resp.Tags,
		FetchedAt:   time.Now(),
	}
	if !resp.LastModified.IsZero() {
		t := resp.LastModified
		stats.LastUpdatedAt = &t
	}
	return stats, nil
}

// ParseModelID normalizes a hub identifier to "org/model". Accepts a full
// hub URL or a bare org/model string.
func ParseModelID(identifier string) (string, error) {
	trimmed := strings.TrimSpace(identifier)
	if trimmed == "" {
		return "", &coreerrors.ValidationError{Field: "url", Message: "model hub URL cannot be empty"}
	}

	if m := hostedPattern.FindStringSubmatch(trimmed); m != nil {
		// Reserved top-level hub paths are not model pages.
		switch m[1] {
		case "datasets", "spaces", "api", "docs":
			return "", &coreerrors.ValidationError{Field: "url", Message: "not a model page URL"}
		}
		return m[1] + "/" + m[2], nil
	}

	if m := barePattern.FindStringSubmatch(trimmed); m != nil {
		return m[1] + "/" + m[2], nil
	}

	return "", &coreerrors.ValidationError{Field: "url", Message: "not a recognized model hub identifier"}
}

type modelResponse struct {
	Downloads    int       `json:"downloads"`
	Likes        int       `json:"likes"`
	LibraryName  string    `json:"library_name"`
	PipelineTag  string    `json:"pipeline_tag"`
	Tags         []string  `json:"tags"`
	LastModified time.Time `json:"lastModified"`
}
