package triage

import (
	"strings"

	"truthguard/internal/util/jsonutil"
)

// The extension's verdict colouring only handles these exact strings.
var validVerdicts = map[string]bool{
	"TRUE": true, "FALSE": true, "MISLEADING": true,
	"AI_GENERATED": true, "UNVERIFIED": true, "SATIRE": true,
}

// Model verdict synonyms seen in the wild.
var verdictAliases = map[string]string{
	"unverified":     "UNVERIFIED",
	"unverifiable":   "UNVERIFIED",
	"uncertain":      "UNVERIFIED",
	"undetermined":   "UNVERIFIED",
	"inconclusive":   "UNVERIFIED",
	"unknown":        "UNVERIFIED",
	"true":           "TRUE",
	"false":          "FALSE",
	"misleading":     "MISLEADING",
	"misinformation": "MISLEADING",
	"inaccurate":     "MISLEADING",
	"ai_generated":   "AI_GENERATED",
	"ai generated":   "AI_GENERATED",
	"satire":         "SATIRE",
	"satirical":      "SATIRE",
}

var labelAliases = map[string]string{
	"ai_generated":   "ai_generated",
	"ai generated":   "ai_generated",
	"hallucinated":   "ai_generated",
	"fabricated":     "ai_generated",
	"synthetic":      "ai_generated",
	"generated":      "ai_generated",
	"artificial":     "ai_generated",
	"accurate":       "accurate",
	"factual":        "accurate",
	"verified":       "accurate",
	"sourced":        "accurate",
	"true":           "accurate",
	"human_authored": "accurate",
	"human authored": "accurate",
	"misleading":     "misleading",
	"false":          "misleading",
	"inaccurate":     "misleading",
	"cherry_picked":  "misleading",
	"cherry picked":  "misleading",
	"out_of_context": "misleading",
	"biased":         "misleading",
}

func normalizeVerdict(raw string) string {
	upper := strings.ToUpper(strings.TrimSpace(raw))
	if validVerdicts[upper] {
		return upper
	}
	if v, ok := verdictAliases[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return v
	}
	return "UNVERIFIED"
}

func normalizeLabel(raw string) string {
	key := strings.Trim(strings.ReplaceAll(strings.ToLower(raw), " ", "_"), "_")
	if l, ok := labelAliases[key]; ok {
		return l
	}
	return labelAliases[strings.ToLower(strings.TrimSpace(raw))]
}

type triageReply struct {
	Verdict    string `json:"verdict"`
	Confidence *int   `json:"confidence"`
	Summary    string `json:"summary"`
	Highlights []struct {
		Text  string `json:"text"`
		Label string `json:"label"`
	} `json:"highlights"`
}

// parseResult turns a raw model reply into a Result. The fallback chain
// runs JSON first, then a keyword scan, then a fixed UNVERIFIED shape so
// the endpoint never fails on a malformed reply.
func parseResult(raw string) Result {
	var reply triageReply
	if err := jsonutil.UnmarshalObject(raw, &reply); err == nil && reply.Verdict != "" {
		confidence := 30
		if reply.Confidence != nil {
			confidence = clampPercent(*reply.Confidence)
		}
		summary := reply.Summary
		if summary == "" {
			summary = "Triage complete."
		}
		var highlights []Highlight
		for _, h := range reply.Highlights {
			if len(highlights) == 6 {
				break
			}
			if h.Text == "" {
				continue
			}
			label := normalizeLabel(h.Label)
			if label == "" {
				continue
			}
			highlights = append(highlights, Highlight{Text: truncate(h.Text, 120), Label: label})
		}
		return Result{
			Verdict:    normalizeVerdict(reply.Verdict),
			Confidence: confidence,
			Summary:    summary,
			Highlights: highlights,
		}
	}

	upper := strings.ToUpper(raw)
	for _, v := range []string{"AI_GENERATED", "TRUE", "FALSE", "MISLEADING", "SATIRE"} {
		if strings.Contains(upper, v) {
			return Result{Verdict: v, Confidence: 50, Summary: truncate(raw, 200)}
		}
	}

	return Result{Verdict: "UNVERIFIED", Confidence: 20, Summary: "Unable to parse AI response."}
}

func clampPercent(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
