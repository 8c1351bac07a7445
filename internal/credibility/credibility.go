// Package credibility assigns a reputation tier and numeric score to web
// domains. It is pure lookup over a static registry and performs no I/O, so
// the debate pipeline can weight evidence before any model sees it.
package credibility

import (
	"math"
	"net/url"
	"strings"
)

// Assessment is the credibility verdict for one source URL.
type Assessment struct {
	Tier  int     `json:"tier"`
	Score float64 `json:"credibility_score"`
	Name  string  `json:"tier_label"`
	Stars string  `json:"stars"`
}

const (
	defaultTier  = 4
	defaultScore = 0.30
)

// Assess scores a single URL. Unregistered domains map to tier 4 / 0.30.
// The longest matching registry suffix wins, so "fact.reuters.com" resolves
// to the reuters.com entry rather than a hypothetical shorter parent.
func Assess(rawURL string) Assessment {
	domain := extractDomain(rawURL)

	tier, score, name := defaultTier, defaultScore, domain
	if name == "" {
		name = "Unknown source"
	}

	bestLen := 0
	for registered, entry := range tierRegistry {
		if domain != registered && !strings.HasSuffix(domain, "."+registered) {
			continue
		}
		if len(registered) > bestLen {
			tier, score, name = entry.Tier, entry.Score, entry.Name
			bestLen = len(registered)
		}
	}

	return Assessment{
		Tier:  tier,
		Score: score,
		Name:  name,
		Stars: Stars(tier),
	}
}

// Stars renders a tier as its five-character star rating.
func Stars(tier int) string {
	if s, ok := starMap[tier]; ok {
		return s
	}
	return starMap[defaultTier]
}

// AvgScore averages the given credibility scores, rounded to three decimals.
// An empty slice yields 0.0, never NaN.
func AvgScore(scores []float64) float64 {
	if len(scores) == 0 {
		return 0.0
	}
	sum := 0.0
	for _, s := range scores {
		sum += s
	}
	return math.Round(sum/float64(len(scores))*1000) / 1000
}

// QualityLabel buckets an average credibility score.
func QualityLabel(avg float64) string {
	switch {
	case avg >= 0.70:
		return "HIGH"
	case avg >= 0.45:
		return "MEDIUM"
	default:
		return "LOW"
	}
}

func extractDomain(rawURL string) string {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return ""
	}
	host := strings.ToLower(u.Hostname())
	return strings.TrimPrefix(host, "www.")
}
