// Package heatmap holds the hotspot data model and the live snapshot
// service behind the heatmap endpoints: geo-positioned misinformation
// events, aggregated region statistics, trending narratives, and the
// websocket stream frames.
package heatmap

import "time"

// Severity levels for an event cluster.
const (
	SeverityHigh   = "high"
	SeverityMedium = "medium"
	SeverityLow    = "low"
)

// Trend directions for a hotspot's recent volume.
const (
	TrendUp   = "up"
	TrendDown = "down"
	TrendSame = "same"
)

// Event is a single geo-positioned misinformation hotspot. Cx/Cy are
// equirectangular map percentages (0-100) so the frontend can place the
// marker without reprojecting. The optional signal pointers distinguish
// "not measured" from a zero measurement; the stability scorer substitutes
// its own baselines for nil.
type Event struct {
	ID    string `json:"id,omitempty"`
	Label string `json:"label"`
	Count int    `json:"count"`

	Cx float64 `json:"cx"`
	Cy float64 `json:"cy"`

	Severity string `json:"severity"`
	Category string `json:"category"`

	ConfidenceScore *float64 `json:"confidence_score,omitempty"`
	ViralityScore   *float64 `json:"virality_score,omitempty"`
	Trend           string   `json:"trend,omitempty"`
	IsCoordinated   bool     `json:"is_coordinated"`
	IsSpikeAnomaly  bool     `json:"is_spike_anomaly"`

	// Scoring output, filled by the stability scorer.
	RealityScore      *int   `json:"reality_score,omitempty"`
	RiskLevel         string `json:"risk_level,omitempty"`
	DominantNarrative string `json:"dominant_narrative,omitempty"`
	NextAction        string `json:"next_action,omitempty"`

	Timestamp time.Time `json:"timestamp,omitempty"`
}

// RegionStats aggregates a world region's last-24h activity. Delta is the
// percent change against the previous window.
type RegionStats struct {
	Name     string `json:"name"`
	Events   int    `json:"events"`
	Delta    int    `json:"delta"`
	Severity string `json:"severity"`

	RealityScore *int   `json:"reality_score,omitempty"`
	RiskLevel    string `json:"risk_level,omitempty"`
	NextAction   string `json:"next_action,omitempty"`
}

// NarrativeItem is a trending misinformation narrative.
type NarrativeItem struct {
	Rank     int    `json:"rank"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Volume   int    `json:"volume"`
	Trend    string `json:"trend"`
}

// Snapshot is the combined payload served by the heatmap endpoint.
type Snapshot struct {
	Events      []Event         `json:"events"`
	Regions     []RegionStats   `json:"regions"`
	Narratives  []NarrativeItem `json:"narratives"`
	TotalEvents int             `json:"total_events"`
}

// StreamEvent is one frame pushed over the websocket stream.
type StreamEvent struct {
	Type      string `json:"type"`
	Message   string `json:"message"`
	Delta     int    `json:"delta"`
	Timestamp string `json:"timestamp"`
	Severity  string `json:"severity,omitempty"`
	City      string `json:"city,omitempty"`
	Category  string `json:"category,omitempty"`
}

// GeoPoint is a user-reported coordinate pair.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// FlagRequest is the payload sent when a user flags suspected AI content.
type FlagRequest struct {
	SourceURL  string    `json:"source_url"`
	Platform   string    `json:"platform"`
	Category   string    `json:"category"`
	Reason     string    `json:"reason"`
	Confidence *int      `json:"confidence,omitempty"`
	Location   *GeoPoint `json:"location,omitempty"`
}

// FlagResponse acknowledges a stored user flag.
type FlagResponse struct {
	OK    bool   `json:"ok"`
	ID    string `json:"id,omitempty"`
	Event Event  `json:"event"`
}
