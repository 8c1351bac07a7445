package debate

import (
	"strings"

	"truthguard/internal/util/jsonutil"
)

// verdictAliases folds provider wording back onto the five canonical
// verdicts. Keys are upper-case.
var verdictAliases = map[string]string{
	"TRUE":            VerdictTrue,
	"MOSTLY TRUE":     VerdictTrue,
	"ACCURATE":        VerdictTrue,
	"CORRECT":         VerdictTrue,
	"REAL":            VerdictTrue,
	"FALSE":           VerdictFalse,
	"MOSTLY FALSE":    VerdictFalse,
	"INACCURATE":      VerdictFalse,
	"INCORRECT":       VerdictFalse,
	"FAKE":            VerdictFalse,
	"MISLEADING":      VerdictMisleading,
	"PARTLY TRUE":     VerdictMisleading,
	"PARTIALLY TRUE":  VerdictMisleading,
	"PARTLY FALSE":    VerdictMisleading,
	"PARTIALLY FALSE": VerdictMisleading,
	"MIXED":           VerdictMisleading,
	"UNVERIFIED":      VerdictUnverified,
	"UNVERIFIABLE":    VerdictUnverified,
	"UNKNOWN":         VerdictUnverified,
	"UNCLEAR":         VerdictUnverified,
	"INCONCLUSIVE":    VerdictUnverified,
	"SATIRE":          VerdictSatire,
	"PARODY":          VerdictSatire,
}

// NormalizeVerdict maps arbitrary verdict wording to a canonical label,
// defaulting to UNVERIFIED.
func NormalizeVerdict(raw string) string {
	v := strings.ToUpper(strings.TrimSpace(raw))
	if canon, ok := verdictAliases[v]; ok {
		return canon
	}
	return VerdictUnverified
}

// NormalizeClaimType maps classifier output to a known claim type. Only the
// first token counts; anything else is GENERAL.
func NormalizeClaimType(raw string) string {
	fields := strings.Fields(strings.ToUpper(strings.TrimSpace(raw)))
	if len(fields) == 0 {
		return TypeGeneral
	}
	switch fields[0] {
	case TypeEventReport, TypeStatistical, TypeOpinion, TypeHistorical, TypeGeneral:
		return fields[0]
	default:
		return TypeGeneral
	}
}

// parseArgument splits an agent reply into its ARGUMENT body, bullet POINTS,
// and trailing SOURCE QUALITY label. A reply that ignores the grammar is
// kept whole as the argument text.
func parseArgument(text string) (argument string, points []string, quality string) {
	argument = strings.TrimSpace(text)
	quality = ""

	upper := strings.ToUpper(text)
	argStart := strings.Index(upper, "ARGUMENT:")
	ptsStart := strings.Index(upper, "POINTS:")
	qualStart := strings.Index(upper, "SOURCE QUALITY:")

	if argStart >= 0 {
		end := len(text)
		if ptsStart > argStart {
			end = ptsStart
		} else if qualStart > argStart {
			end = qualStart
		}
		argument = strings.TrimSpace(text[argStart+len("ARGUMENT:") : end])
	}

	if ptsStart >= 0 {
		end := len(text)
		if qualStart > ptsStart {
			end = qualStart
		}
		for _, line := range strings.Split(text[ptsStart+len("POINTS:"):end], "\n") {
			line = strings.TrimSpace(line)
			if !strings.HasPrefix(line, "-") && !strings.HasPrefix(line, "•") {
				continue
			}
			point := strings.TrimSpace(strings.TrimLeft(line, "-• "))
			if point != "" {
				points = append(points, point)
			}
		}
	}

	if qualStart >= 0 {
		rest := strings.ToUpper(text[qualStart+len("SOURCE QUALITY:"):])
		for _, label := range []string{"HIGH", "MEDIUM", "LOW"} {
			if strings.Contains(rest, label) {
				quality = label
				break
			}
		}
	}
	return argument, points, quality
}

type judgeReply struct {
	Verdict                 string   `json:"verdict"`
	Confidence              float64  `json:"confidence"`
	Summary                 string   `json:"summary"`
	Category                string   `json:"category"`
	Reasoning               string   `json:"reasoning"`
	DecisiveFactors         []string `json:"decisive_factors"`
	SourceQualityAssessment string   `json:"source_quality_assessment"`
}

// parseJudge decodes the judge reply. Stage one is a strict JSON decode of
// the first object in the text; stage two scans for a bare verdict keyword
// at confidence 60; the final fallback is UNVERIFIED at confidence 30.
func parseJudge(text string) Judgment {
	var reply judgeReply
	if err := jsonutil.UnmarshalObject(text, &reply); err == nil && strings.TrimSpace(reply.Verdict) != "" {
		j := Judgment{
			Verdict:                 NormalizeVerdict(reply.Verdict),
			Confidence:              clampConfidence(int(reply.Confidence)),
			Summary:                 reply.Summary,
			Category:                reply.Category,
			Reasoning:               reply.Reasoning,
			DecisiveFactors:         reply.DecisiveFactors,
			SourceQualityAssessment: reply.SourceQualityAssessment,
		}
		if j.Category == "" {
			j.Category = "General"
		}
		if j.Summary == "" {
			j.Summary = j.Reasoning
		}
		return j
	}

	upper := strings.ToUpper(text)
	for _, v := range []string{VerdictTrue, VerdictFalse, VerdictMisleading, VerdictSatire} {
		if strings.Contains(upper, v) {
			return Judgment{
				Verdict:    v,
				Confidence: 60,
				Summary:    truncate(text, 300),
				Category:   "General",
				Reasoning:  text,
			}
		}
	}
	return Judgment{
		Verdict:    VerdictUnverified,
		Confidence: 30,
		Summary:    truncate(text, 300),
		Category:   "General",
		Reasoning:  text,
	}
}

func clampConfidence(c int) int {
	if c < 0 {
		return 0
	}
	if c > 100 {
		return 100
	}
	return c
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
