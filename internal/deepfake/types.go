// Package deepfake orchestrates multi-probe synthetic-media detection:
// concurrent forensic model probes and auxiliary classifiers feed a terminal
// synthesizer whose verdict is checked against a deterministic weighting
// rule table before it is returned.
package deepfake

// Media types handled by the pipeline.
const (
	MediaImage = "image"
	MediaAudio = "audio"
	MediaVideo = "video"
)

// Verdict labels. UNCERTAIN is reserved for evenly split signals.
const (
	LabelFake      = "FAKE"
	LabelAuthentic = "LIKELY_AUTHENTIC"
	LabelUncertain = "UNCERTAIN"
)

// ProbeFinding is one forensic probe's parsed output. Score runs from 0.0
// (clean) to 1.0 (definitely manipulated).
type ProbeFinding struct {
	Name       string   `json:"name"`
	Suspicious bool     `json:"suspicious"`
	Score      float64  `json:"score"`
	Findings   []string `json:"findings"`
	Summary    string   `json:"summary"`
}

// AnalysisStage is one entry in the observable stage list. Stage order
// always equals invocation order, never completion order.
type AnalysisStage struct {
	Name    string  `json:"name"`
	Finding string  `json:"finding"`
	Score   float64 `json:"score"`
}

// Verdict is the pipeline's final output.
type Verdict struct {
	IsFake     bool            `json:"is_fake"`
	Confidence float64         `json:"confidence"`
	Label      string          `json:"verdict_label"`
	Reasoning  string          `json:"reasoning"`
	Stages     []AnalysisStage `json:"stages"`
	MediaType  string          `json:"media_type"`
}
