// ABOUTME: Heuristic enrichment derives hardware, risk, and use-case hints from text metadata
// ABOUTME: Pure and deterministic; unparseable input falls back to defaults, never errors

package heuristics

import (
	"fmt"
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"mlcatalog-api/core/domain"
)

var paramPattern = regexp.MustCompile(`(?i)^\s*~?([0-9]+(?:\.[0-9]+)?)\s*([bmk])\b`)

// useCaseKeywords maps description keywords to use-case tags.
var useCaseKeywords = map[string]string{
	"chat":           "conversational-ai",
	"assistant":      "conversational-ai",
	"code":           "code-generation",
	"coding":         "code-generation",
	"summar":         "summarization",
	"translat":       "translation",
	"image":          "image-generation",
	"diffusion":      "image-generation",
	"speech":         "speech-processing",
	"audio":          "speech-processing",
	"embedding":      "semantic-search",
	"retrieval":      "semantic-search",
	"classif":        "classification",
	"sentiment":      "classification",
	"question":       "question-answering",
	"reasoning":      "reasoning",
	"math":           "reasoning",
	"vision":         "multimodal",
	"multimodal":     "multimodal",
}

// riskKeywords maps type/capability keywords to risk score increments.
var riskKeywords = map[string]int{
	"uncensored": 4,
	"unfiltered": 4,
	"deepfake":   5,
	"voice":      2,
	"clone":      2,
	"persuas":    2,
	"agent":      1,
	"code":       1,
	"generat":    1,
}

// DeriveProfile computes the heuristic enrichment profile from a model's text
// metadata. Same input always yields the same output.
func DeriveProfile(name, description, modelType, parameters string, capabilities []string) domain.DerivedProfile {
	tier, memGB := hardwareTier(parameters)
	return domain.DerivedProfile{
		HardwareTier:   tier,
		MinMemoryGB:    memGB,
		RiskScore:      riskScore(description, modelType, capabilities),
		UseCases:       useCases(description, modelType),
		SuggestedLinks: suggestedLinks(name),
	}
}

// hardwareTier buckets a parameter-count string into a hardware tier.
// Unrecognized strings default to the smallest tier.
func hardwareTier(parameters string) (string, int) {
	billions, ok := parseParamCount(parameters)
	if !ok {
		return domain.HardwareTierConsumer, 8
	}

	switch {
	case billions < 1:
		return domain.HardwareTierConsumer, 8
	case billions < 13:
		return domain.HardwareTierProsumer, 24
	case billions < 70:
		return domain.HardwareTierWorkstation, 80
	default:
		return domain.HardwareTierDatacenter, 160
	}
}

// parseParamCount reads strings like "7B", "770M", "1.5b" into billions.
func parseParamCount(parameters string) (float64, bool) {
	m := paramPattern.FindStringSubmatch(parameters)
	if m == nil {
		return 0, false
	}

	value, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}

	switch strings.ToLower(m[2]) {
	case "b":
		return value, true
	case "m":
		return value / 1_000, true
	case "k":
		return value / 1_000_000, true
	}
	return 0, false
}

// riskScore rates a model 1-10 from type and capability keywords.
func riskScore(description, modelType string, capabilities []string) int {
	corpus := strings.ToLower(description + " " + modelType + " " + strings.Join(capabilities, " "))

	score := 2
	for keyword, weight := range riskKeywords {
		if strings.Contains(corpus, keyword) {
			score += weight
		}
	}

	if score < 1 {
		score = 1
	}
	if score > 10 {
		score = 10
	}
	return score
}

// useCases derives use-case tags from description and type keywords.
func useCases(description, modelType string) []string {
	corpus := strings.ToLower(description + " " + modelType)

	seen := make(map[string]bool)
	for keyword, tag := range useCaseKeywords {
		if strings.Contains(corpus, keyword) {
			seen[tag] = true
		}
	}

	if len(seen) == 0 {
		return []string{"general-purpose"}
	}

	tags := make([]string, 0, len(seen))
	for tag := range seen {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// suggestedLinks builds deterministic research links from the model name.
func suggestedLinks(name string) []string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return []string{}
	}

	query := url.QueryEscape(trimmed)
	return []string{
		fmt.Sprintf("https://arxiv.org/list?searchtype=all&query=%s", query),
		fmt.Sprintf("https://paperswithcode.com/search?q=%s", query),
	}
}
