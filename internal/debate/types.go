// Package debate orchestrates the three-agent claim fact-checking pipeline:
// concurrent evidence gathering, credibility scoring, opposed argument
// agents, and a terminal judge that reconciles everything into one verdict.
package debate

import "truthguard/internal/provider"

// Claim types recognized by the classifier. Anything unrecognized
// normalizes to TypeGeneral.
const (
	TypeEventReport = "EVENT_REPORT"
	TypeStatistical = "STATISTICAL_CLAIM"
	TypeOpinion     = "OPINION"
	TypeHistorical  = "HISTORICAL"
	TypeGeneral     = "GENERAL"
)

// Verdict labels emitted by the judge.
const (
	VerdictTrue       = "TRUE"
	VerdictFalse      = "FALSE"
	VerdictMisleading = "MISLEADING"
	VerdictUnverified = "UNVERIFIED"
	VerdictSatire     = "SATIRE"
)

// EvidenceItem is one search hit enriched with its source credibility.
// Immutable once scored.
type EvidenceItem struct {
	Title            string  `json:"title"`
	URL              string  `json:"url"`
	Snippet          string  `json:"snippet"`
	CredibilityScore float64 `json:"credibility_score"`
	Tier             int     `json:"tier"`
	TierLabel        string  `json:"tier_label"`
	Stars            string  `json:"stars"`
}

// SourceRef is a display citation.
type SourceRef struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Argument is one side's parsed case.
type Argument struct {
	Text         string      `json:"text"`
	Points       []string    `json:"points"`
	Sources      []SourceRef `json:"sources"`
	QualityLabel string      `json:"source_quality"`
	AvgScore     float64     `json:"avg_credibility"`
}

// Judgment is the judge's terminal decision. Confidence is an integer
// percentage on the banded scale documented in the judge prompt.
type Judgment struct {
	Verdict                 string   `json:"verdict"`
	Confidence              int      `json:"confidence"`
	Summary                 string   `json:"summary"`
	Category                string   `json:"category"`
	Reasoning               string   `json:"reasoning"`
	DecisiveFactors         []string `json:"decisive_factors"`
	SourceQualityAssessment string   `json:"source_quality_assessment"`
}

// Result is the full outcome of one pipeline run.
type Result struct {
	ClaimText  string                 `json:"claim_text"`
	ClaimType  string                 `json:"claim_type"`
	Pro        Argument               `json:"pro"`
	Con        Argument               `json:"con"`
	Judgment   Judgment               `json:"judgment"`
	Sources    []SourceRef            `json:"sources"`
	FactChecks []provider.ClaimReview `json:"fact_checks,omitempty"`
	Degraded   bool                   `json:"degraded"`
}
