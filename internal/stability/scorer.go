// Package stability implements the Reality Stability scoring formula: a
// deterministic, idempotent mapping from a hotspot's signal attributes to a
// 0-100 reality score, a four-level risk label, and a recommended action.
// No model calls, no I/O.
package stability

import (
	"fmt"
	"math"

	"truthguard/internal/heatmap"
)

// Risk levels, ordered from most to least stable.
const (
	RiskLow      = "LOW"
	RiskMedium   = "MEDIUM"
	RiskHigh     = "HIGH"
	RiskCritical = "CRITICAL"
)

// Penalty weights. Changing any of these changes every score in the
// product; treat them as tuned policy.
const (
	severityHighPenalty   = 22
	severityMediumPenalty = 10
	severityLowPenalty    = 3

	maxCountPenalty = 20.0  // reached at count >= 2500
	countScale      = 125.0 // count / countScale before capping

	confidenceScale = 18.0 // confidence 0-1 scales to at most 18 pts
	viralityScale   = 8.0  // each unit above the 1.0 baseline

	coordinatedPenalty = 9
	spikePenalty       = 7

	trendUpPenalty   = 5
	trendDownPenalty = -3
)

// RealityScore computes the stability score for one hotspot event.
// Lower means a more destabilised information ecosystem. Unset optional
// signals fall back to neutral baselines (confidence 0.5, virality 1.0,
// trend "same").
func RealityScore(ev heatmap.Event) int {
	confidence := 0.5
	if ev.ConfidenceScore != nil {
		confidence = *ev.ConfidenceScore
	}
	virality := 1.0
	if ev.ViralityScore != nil {
		virality = *ev.ViralityScore
	}

	score := 100.0

	switch ev.Severity {
	case heatmap.SeverityHigh:
		score -= severityHighPenalty
	case heatmap.SeverityMedium:
		score -= severityMediumPenalty
	default:
		score -= severityLowPenalty
	}

	score -= math.Min(float64(ev.Count)/countScale, maxCountPenalty)
	score -= confidence * confidenceScale
	score -= math.Max(0, (virality-1.0)*viralityScale)

	if ev.IsCoordinated {
		score -= coordinatedPenalty
	}
	if ev.IsSpikeAnomaly {
		score -= spikePenalty
	}

	switch ev.Trend {
	case heatmap.TrendUp:
		score -= trendUpPenalty
	case heatmap.TrendDown:
		score -= trendDownPenalty
	}

	return int(math.Max(0, math.Min(100, math.Round(score))))
}

// RiskLevel maps a reality score to its categorical level.
func RiskLevel(score int) string {
	switch {
	case score >= 80:
		return RiskLow
	case score >= 60:
		return RiskMedium
	case score >= 40:
		return RiskHigh
	default:
		return RiskCritical
	}
}

// ViralityIndex normalises a raw virality multiplier to a 0-10 display
// index, mapping [0.5, 3.5] linearly and clamping outside it.
func ViralityIndex(raw float64) float64 {
	return math.Min(10, math.Max(0, (raw-0.5)/3.0*10))
}

// NextAction returns the recommended intervention for an event at the given
// risk level. The strings are user-facing and fixed.
func NextAction(ev heatmap.Event, riskLevel string) string {
	switch riskLevel {
	case RiskCritical:
		if ev.IsCoordinated {
			return "DEPLOY: Counter-narrative — coordinated inauthentic behaviour confirmed"
		}
		if ev.IsSpikeAnomaly {
			return "ESCALATE: Rapid-response team — anomalous spike exceeds 3σ threshold"
		}
		return "ESCALATE: Immediate editorial review + platform notification required"
	case RiskHigh:
		if ev.IsSpikeAnomaly {
			return "INVESTIGATE: Spike anomaly — alert regional fact-check partners"
		}
		if ev.IsCoordinated {
			return "FLAG: Coordination signals — route to Trust & Safety team"
		}
		sector := ev.Category
		if sector == "" {
			sector = "sector"
		}
		return fmt.Sprintf("ALERT: Notify %s rapid-response partners within 1 hour", sector)
	case RiskMedium:
		return "MONITOR: Flag for editorial review within 4 hours"
	default:
		return "LOG: Continue passive monitoring — no immediate action required"
	}
}

// AssessEvent returns a copy of the event with the scoring fields filled.
// The formula reads only the raw signal attributes, never its own output,
// so re-assessing a scored event reproduces identical values.
func AssessEvent(ev heatmap.Event) heatmap.Event {
	score := RealityScore(ev)
	risk := RiskLevel(score)

	ev.RealityScore = &score
	ev.RiskLevel = risk
	ev.NextAction = NextAction(ev, risk)
	return ev
}

// AssessRegion scores an aggregated region by building a synthetic event
// from its aggregate stats and reusing the per-hotspot formula.
func AssessRegion(r heatmap.RegionStats) heatmap.RegionStats {
	confidence := 0.6
	virality := 1.0 + math.Max(0, float64(r.Delta)/100.0)
	trend := heatmap.TrendSame
	if r.Delta > 5 {
		trend = heatmap.TrendUp
	} else if r.Delta < -5 {
		trend = heatmap.TrendDown
	}

	synthetic := heatmap.Event{
		Label:           r.Name,
		Count:           r.Events,
		Severity:        r.Severity,
		Category:        "General",
		ConfidenceScore: &confidence,
		ViralityScore:   &virality,
		IsSpikeAnomaly:  r.Delta > 25,
		Trend:           trend,
	}

	score := RealityScore(synthetic)
	risk := RiskLevel(score)

	r.RealityScore = &score
	r.RiskLevel = risk
	r.NextAction = NextAction(synthetic, risk)
	return r
}
