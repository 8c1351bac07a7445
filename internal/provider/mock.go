package provider

import (
	"context"
	"strings"
)

// Canned replies for mock mode. Deterministic output keeps tests and local
// development working without any API keys. Routing keys off stable phrases
// in the prompt templates, so new prompts need a case here to get a
// non-default reply.
const (
	mockDefault = "[MOCK] This is a placeholder model response. " +
		"Set AI_MOCK_MODE=false and provide GEMINI_API_KEY for real responses."

	mockQuickTriage = `{"verdict": "UNVERIFIED", "confidence": 30, ` +
		`"summary": "[MOCK] Quick triage complete, no real analysis in mock mode."}`

	mockAgentPro = "ARGUMENT: Based on available evidence, there is strong credible support for this claim " +
		"from independent Tier 1 sources. According to [Reuters ★★★★★](https://www.reuters.com/) " +
		"the core facts have been independently verified and corroborated. " +
		"[BBC News ★★★★★](https://www.bbc.com/) has reported consistently with this position, " +
		"and the underlying data appears in cross-referenced PRIMARY sources with no significant " +
		"discrepancies found across two independent Tier 1 wire services.\n\n" +
		"KEY EVIDENCE: [Reuters ★★★★★](https://www.reuters.com/fact-check/) — PRIMARY source " +
		"directly confirming the core claim with corroborating data from official statements.\n\n" +
		"POINTS:\n" +
		"- The core assertion is directly supported by a Tier 1 wire service — [Reuters ★★★★★](https://www.reuters.com/)\n" +
		"- Independent cross-reference confirms the claim — [BBC News ★★★★★](https://www.bbc.com/)\n" +
		"- Official institutional data aligns with this position — [GOV.UK ★★★★★](https://www.gov.uk/)\n\n" +
		"SOURCE QUALITY: HIGH"

	mockAgentCon = "ARGUMENT: Counter-evidence suggests the claim, while not demonstrably false, lacks " +
		"important context that affects its full interpretation. " +
		"[AP Fact Check ★★★★★](https://apnews.com/hub/ap-fact-check) has noted similar claims " +
		"require additional nuance around scope and timeframe. " +
		"[Snopes ★★★★☆](https://www.snopes.com/) classifies related narratives as partially " +
		"accurate. The available counter-evidence is largely TYPE B — the core fact may be " +
		"accurate but the framing omits significant context. I acknowledge this is a relatively " +
		"weak counter-case as no TYPE A direct contradiction was found.\n\n" +
		"POINTS:\n" +
		"- TYPE B — The claim lacks critical context about scope and timeline — [Snopes ★★★★☆](https://www.snopes.com/)\n" +
		"- TYPE C — Primary sourcing relies on secondary reports rather than direct documentation — [AP Fact Check ★★★★★](https://apnews.com/hub/ap-fact-check)\n" +
		"- TYPE B — Important qualifications in original data are not reflected in the claim — [PolitiFact ★★★★☆](https://www.politifact.com/)\n\n" +
		"SOURCE QUALITY: MEDIUM"

	mockJudge = `{"verdict": "TRUE", "confidence": 78, ` +
		`"summary": "The claim is broadly accurate based on available Tier 1/2 evidence. ` +
		`Agent A produced strong supporting evidence from credible primary sources. ` +
		`Agent B's counter-case consisted of TYPE B and TYPE C evidence only, which per ` +
		`evaluation rules cannot flip a well-sourced claim to MISLEADING.", ` +
		`"category": "General", ` +
		`"reasoning": "STEP 1 - Both agents cited independent sources from different domains. ` +
		`STEP 2 - Agent A avg score 0.85 (HIGH) with two Tier 1 wire services. Agent B avg 0.71 (MEDIUM). ` +
		`STEP 3 - Corroboration data supports the core claim. ` +
		`STEP 4 - No TYPE A counter-evidence from Agent B. ` +
		`STEP 5 - No hallucination detected. STEP 6 - Fact-check data does not contradict Agent A.", ` +
		`"decisive_factors": [` +
		`"Agent A provided Tier 1 primary source evidence directly confirming the core claim.", ` +
		`"Agent B produced only TYPE B/C counter-evidence, which cannot flip a TRUE verdict."` +
		`], ` +
		`"source_quality_assessment": "Agent A: HIGH quality. Agent B: MEDIUM quality.", ` +
		`"agent_scores": {"agent_a": 8.5, "agent_b": 4.2}}`

	mockProbe = `{"suspicious": false, "score": 0.12, "findings": [], ` +
		`"summary": "[MOCK] No real detection performed, mock mode active."}`

	mockSynthesis = `{"is_fake": false, "confidence": 0.5, ` +
		`"verdict_label": "LIKELY_AUTHENTIC", ` +
		`"reasoning": "[MOCK] No real detection performed, mock mode active."}`
)

// MockGenerator satisfies TextGenerator and VisionGenerator with canned
// replies selected by prompt content.
type MockGenerator struct{}

func NewMockGenerator() *MockGenerator { return &MockGenerator{} }

func (m *MockGenerator) Generate(_ context.Context, prompt string, _ ModelTier) (string, error) {
	return cannedReply(prompt), nil
}

func (m *MockGenerator) GenerateWithMedia(_ context.Context, prompt string, _ []byte, _ string) (string, error) {
	return cannedReply(prompt), nil
}

func cannedReply(prompt string) string {
	switch {
	// The judge prompt quotes both agents, so it must match first.
	case strings.Contains(prompt, "impartial JUDGE"):
		return mockJudge
	case strings.Contains(prompt, "You are Agent A"):
		return mockAgentPro
	case strings.Contains(prompt, "You are Agent B"):
		return mockAgentCon
	case strings.Contains(prompt, "content integrity analyst"):
		return mockQuickTriage
	case strings.Contains(prompt, "FINAL SYNTHESIS"):
		return mockSynthesis
	case strings.Contains(prompt, "forensic"):
		return mockProbe
	default:
		return mockDefault
	}
}

// MockSearch returns a fixed pair of high-credibility hits for any query.
type MockSearch struct{}

func NewMockSearch() *MockSearch { return &MockSearch{} }

func (m *MockSearch) Search(_ context.Context, query string, maxResults int) []SearchResult {
	results := []SearchResult{
		{Title: "Reuters coverage: " + query, URL: "https://www.reuters.com/fact-check/", Snippet: "Independently verified reporting on the queried claim."},
		{Title: "BBC News coverage: " + query, URL: "https://www.bbc.com/news", Snippet: "Cross-referenced reporting consistent with primary sources."},
	}
	if maxResults > 0 && maxResults < len(results) {
		return results[:maxResults]
	}
	return results
}

func (m *MockSearch) SearchNews(_ context.Context, query string, maxResults int) []SearchResult {
	results := []SearchResult{
		{Title: "AP wire report: " + query, URL: "https://apnews.com/", Snippet: "Recent wire coverage corroborating the queried event."},
	}
	if maxResults > 0 && maxResults < len(results) {
		return results[:maxResults]
	}
	return results
}

// MockFactCheck returns one canned published review.
type MockFactCheck struct{}

func NewMockFactCheck() *MockFactCheck { return &MockFactCheck{} }

func (m *MockFactCheck) Lookup(_ context.Context, query string, _ int) []ClaimReview {
	return []ClaimReview{{
		ClaimText: query,
		Publisher: "PolitiFact",
		Title:     "Fact-check: " + query,
		URL:       "https://www.politifact.com/",
		Rating:    "Mostly True",
	}}
}

// MockClassifier returns a fixed score, mirroring the hosted models'
// behavior on obviously clean input.
type MockClassifier struct {
	name  string
	score float64
}

func NewMockClassifier(name string, score float64) *MockClassifier {
	return &MockClassifier{name: name, score: score}
}

func (m *MockClassifier) Name() string { return m.name }

func (m *MockClassifier) ClassifyImage(_ context.Context, _ []byte) Classification {
	label := "REAL"
	if m.score >= 0.5 {
		label = "FAKE"
	}
	return Classification{Score: m.score, Label: label}
}
