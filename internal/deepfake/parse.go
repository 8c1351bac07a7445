package deepfake

import (
	"truthguard/internal/util/jsonutil"
)

type probeReply struct {
	Suspicious bool     `json:"suspicious"`
	Score      *float64 `json:"score"`
	Findings   []string `json:"findings"`
	Summary    string   `json:"summary"`
}

type synthReply struct {
	IsFake     bool     `json:"is_fake"`
	Confidence *float64 `json:"confidence"`
	Reasoning  string   `json:"reasoning"`
}

// parseProbe decodes one probe reply. Any reply without a decodable JSON
// object becomes the neutral inconclusive finding rather than an error.
func parseProbe(name, raw string) ProbeFinding {
	var reply probeReply
	if err := jsonutil.UnmarshalObject(raw, &reply); err != nil {
		return ProbeFinding{
			Name:    name,
			Score:   0.5,
			Summary: "Parse error, inconclusive.",
		}
	}
	score := 0.5
	if reply.Score != nil {
		score = clamp01(*reply.Score)
	}
	summary := reply.Summary
	if summary == "" {
		summary = "Inconclusive."
	}
	return ProbeFinding{
		Name:       name,
		Suspicious: reply.Suspicious,
		Score:      score,
		Findings:   reply.Findings,
		Summary:    summary,
	}
}

// parseSynthesis decodes the synthesizer reply with a neutral default.
func parseSynthesis(raw string) (isFake bool, confidence float64, reasoning string) {
	var reply synthReply
	if err := jsonutil.UnmarshalObject(raw, &reply); err != nil {
		return false, 0.5, "Unable to parse synthesiser response."
	}
	confidence = 0.5
	if reply.Confidence != nil {
		confidence = clamp01(*reply.Confidence)
	}
	reasoning = reply.Reasoning
	if reasoning == "" {
		reasoning = "Analysis complete."
	}
	return reply.IsFake, confidence, reasoning
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
