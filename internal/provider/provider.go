// Package provider defines the upstream capability contracts the analysis
// pipelines depend on, plus the concrete Gemini, Serper, Google Fact Check,
// and HuggingFace implementations and their deterministic canned
// counterparts. Pipelines receive interfaces; which implementation backs
// them is decided once at process startup.
package provider

import (
	"context"
	"errors"
)

var (
	// ErrEmptyReply means the model responded without any usable candidate.
	ErrEmptyReply = errors.New("provider: empty reply from model")
	// ErrUnavailable means the provider has no configuration (e.g. API key).
	ErrUnavailable = errors.New("provider: not configured")
)

// ModelTier selects between the fast/cheap and deep/expensive text models.
// Classification and quick triage use TierFlash; arguments, judgment, and
// forensic probes use TierPro.
type ModelTier int

const (
	TierFlash ModelTier = iota
	TierPro
)

func (t ModelTier) String() string {
	if t == TierPro {
		return "pro"
	}
	return "flash"
}

// SearchResult is one organic web search hit.
type SearchResult struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
}

// ClaimReview is one published fact-check matched against a claim.
type ClaimReview struct {
	ClaimText string `json:"claim_text"`
	Publisher string `json:"publisher"`
	Title     string `json:"title"`
	URL       string `json:"url"`
	Rating    string `json:"rating"`
}

// Classification is an auxiliary binary classifier score. Label is FAKE,
// REAL, or UNCERTAIN; UNCERTAIN carries the neutral 0.5 score and marks the
// signal as excluded from any vote tally.
type Classification struct {
	Score float64 `json:"score"`
	Label string  `json:"label"`
}

// Uncertain is the neutral classification every classifier must return on
// internal failure instead of raising.
func Uncertain() Classification {
	return Classification{Score: 0.5, Label: "UNCERTAIN"}
}

// TextGenerator produces free-form text from a prompt.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string, tier ModelTier) (string, error)
}

// VisionGenerator produces text from a prompt with an inline media payload.
// Implementations must degrade to text-only analysis when the payload
// exceeds their inline ceiling rather than sending it upstream.
type VisionGenerator interface {
	GenerateWithMedia(ctx context.Context, prompt string, media []byte, mimeType string) (string, error)
}

// SearchProvider runs web and news searches. It never fails: an
// unconfigured or erroring provider returns an empty result list.
type SearchProvider interface {
	Search(ctx context.Context, query string, maxResults int) []SearchResult
	SearchNews(ctx context.Context, query string, maxResults int) []SearchResult
}

// FactCheckProvider looks up existing human-verified fact-checks. Same
// degradation contract as SearchProvider.
type FactCheckProvider interface {
	Lookup(ctx context.Context, query string, maxResults int) []ClaimReview
}

// ImageClassifier scores an image for manipulation. It never fails: any
// internal error yields Uncertain().
type ImageClassifier interface {
	Name() string
	ClassifyImage(ctx context.Context, image []byte) Classification
}
