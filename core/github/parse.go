// ABOUTME: Repository identifier parsing and normalization
// ABOUTME: Accepts full hosting URLs or bare owner/repo strings

package github

import (
	"regexp"
	"strings"

	coreerrors "mlcatalog-api/core/errors"
)

var (
	hostedPattern = regexp.MustCompile(`^(?:https?://)?(?:www\.)?github\.com/([^/\s]+)/([^/\s?#]+)`)
	barePattern   = regexp.MustCompile(`^([A-Za-z0-9][A-Za-z0-9_.-]*)/([A-Za-z0-9][A-Za-z0-9_.-]*)$`)
)

// ParseRepoKey normalizes a repository identifier to "owner/repo". Two input
// shapes are accepted: a full github.com URL and a bare owner/repo string.
// Anything else yields a ValidationError.
func ParseRepoKey(identifier string) (string, error) {
	trimmed := strings.TrimSpace(identifier)
	if trimmed == "" {
		return "", &coreerrors.ValidationError{Field: "url", Message: "repository URL cannot be empty"}
	}

	if m := hostedPattern.FindStringSubmatch(trimmed); m != nil {
		return m[1] + "/" + strings.TrimSuffix(m[2], ".git"), nil
	}

	if m := barePattern.FindStringSubmatch(trimmed); m != nil {
		return m[1] + "/" + strings.TrimSuffix(m[2], ".git"), nil
	}

	return "", &coreerrors.ValidationError{Field: "url", Message: "not a recognized repository identifier"}
}
