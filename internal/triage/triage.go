// Package triage implements the fast single-model content check used by
// the browser extension: one Flash-tier call, verdict in about a second,
// versus the full debate pipeline's ten.
package triage

import (
	"context"
	"fmt"
	"regexp"

	"truthguard/internal/provider"
)

// Highlight is a phrase-level annotation over the analysed content.
type Highlight struct {
	Text  string `json:"text"`
	Label string `json:"label"` // ai_generated | accurate | misleading
}

// Result is the triage verdict for one piece of content.
type Result struct {
	Verdict    string      `json:"verdict"`
	Confidence int         `json:"confidence"`
	Summary    string      `json:"summary"`
	Highlights []Highlight `json:"highlights"`
}

var urlPattern = regexp.MustCompile(`https?://[^\s<>"']+`)

// Service runs triage prompts against the Flash tier.
type Service struct {
	text provider.TextGenerator
}

func NewService(text provider.TextGenerator) *Service {
	return &Service{text: text}
}

// Run analyses a snippet of text. When the text contains a URL the model
// reasons from the URL and platform reputation alone; page content is
// never fetched.
func (s *Service) Run(ctx context.Context, text string) (Result, error) {
	var prompt string
	if url := urlPattern.FindString(text); url != "" {
		prompt = fmt.Sprintf(urlOnlyPrompt, url)
	} else {
		prompt = fmt.Sprintf(textPrompt, truncate(text, 2000))
	}

	raw, err := s.text.Generate(ctx, prompt, provider.TierFlash)
	if err != nil {
		return Result{}, fmt.Errorf("triage generate: %w", err)
	}
	return parseResult(raw), nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
