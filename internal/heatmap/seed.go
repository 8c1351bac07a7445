package heatmap

import "time"

// Baseline demo dataset. Served until a persistence backend replaces it;
// user flags are layered on top at runtime.

func fptr(v float64) *float64 { return &v }

func seedEvents() []Event {
	now := time.Now().UTC()
	return []Event{
		{Cx: 22, Cy: 38, Label: "New York", Count: 312, Severity: SeverityHigh, Category: "Health",
			ConfidenceScore: fptr(0.87), ViralityScore: fptr(1.4), Trend: TrendUp, IsCoordinated: true, Timestamp: now},
		{Cx: 16, Cy: 43, Label: "Los Angeles", Count: 198, Severity: SeverityMedium, Category: "Politics",
			ConfidenceScore: fptr(0.74), ViralityScore: fptr(1.1), Trend: TrendUp, Timestamp: now},
		{Cx: 47, Cy: 32, Label: "London", Count: 245, Severity: SeverityHigh, Category: "Health",
			ConfidenceScore: fptr(0.91), ViralityScore: fptr(1.6), Trend: TrendUp, IsCoordinated: true, IsSpikeAnomaly: true, Timestamp: now},
		{Cx: 49, Cy: 30, Label: "Berlin", Count: 134, Severity: SeverityMedium, Category: "Climate",
			ConfidenceScore: fptr(0.68), ViralityScore: fptr(0.9), Trend: TrendSame, Timestamp: now},
		{Cx: 53, Cy: 33, Label: "Moscow", Count: 389, Severity: SeverityHigh, Category: "Politics",
			ConfidenceScore: fptr(0.94), ViralityScore: fptr(2.1), Trend: TrendUp, IsCoordinated: true, IsSpikeAnomaly: true, Timestamp: now},
		{Cx: 72, Cy: 38, Label: "Beijing", Count: 521, Severity: SeverityHigh, Category: "Science",
			ConfidenceScore: fptr(0.82), ViralityScore: fptr(1.8), Trend: TrendUp, IsCoordinated: true, Timestamp: now},
		{Cx: 76, Cy: 44, Label: "Tokyo", Count: 287, Severity: SeverityMedium, Category: "Finance",
			ConfidenceScore: fptr(0.71), ViralityScore: fptr(1.3), Trend: TrendSame, Timestamp: now},
		{Cx: 70, Cy: 50, Label: "Delhi", Count: 403, Severity: SeverityHigh, Category: "Health",
			ConfidenceScore: fptr(0.85), ViralityScore: fptr(1.7), Trend: TrendUp, IsSpikeAnomaly: true, Timestamp: now},
		{Cx: 28, Cy: 60, Label: "Sao Paulo", Count: 176, Severity: SeverityMedium, Category: "Politics",
			ConfidenceScore: fptr(0.69), ViralityScore: fptr(1.0), Trend: TrendSame, Timestamp: now},
		{Cx: 50, Cy: 55, Label: "Cairo", Count: 218, Severity: SeverityMedium, Category: "Conflict",
			ConfidenceScore: fptr(0.76), ViralityScore: fptr(1.2), Trend: TrendUp, Timestamp: now},
		{Cx: 54, Cy: 62, Label: "Nairobi", Count: 92, Severity: SeverityLow, Category: "Health",
			ConfidenceScore: fptr(0.62), ViralityScore: fptr(0.8), Trend: TrendDown, Timestamp: now},
		{Cx: 55, Cy: 43, Label: "Tehran", Count: 267, Severity: SeverityHigh, Category: "Conflict",
			ConfidenceScore: fptr(0.89), ViralityScore: fptr(1.7), Trend: TrendUp, IsCoordinated: true, Timestamp: now},
		{Cx: 79, Cy: 67, Label: "Jakarta", Count: 145, Severity: SeverityMedium, Category: "Health",
			ConfidenceScore: fptr(0.69), ViralityScore: fptr(1.1), Trend: TrendSame, Timestamp: now},
	}
}

func seedRegions() []RegionStats {
	return []RegionStats{
		{Name: "North America", Events: 847, Delta: 12, Severity: SeverityHigh},
		{Name: "Europe", Events: 623, Delta: 5, Severity: SeverityMedium},
		{Name: "Asia Pacific", Events: 1204, Delta: 31, Severity: SeverityHigh},
		{Name: "South America", Events: 391, Delta: -4, Severity: SeverityMedium},
		{Name: "Africa", Events: 278, Delta: 8, Severity: SeverityLow},
		{Name: "Middle East", Events: 512, Delta: 19, Severity: SeverityHigh},
	}
}

func seedNarratives() []NarrativeItem {
	return []NarrativeItem{
		{Rank: 1, Title: "Vaccine microchip conspiracy resurfaces ahead of flu season", Category: "Health", Volume: 14200, Trend: TrendUp},
		{Rank: 2, Title: "AI-generated election footage spreads across social platforms", Category: "Politics", Volume: 11800, Trend: TrendUp},
		{Rank: 3, Title: "Manipulated climate data graph shared by influencers", Category: "Climate", Volume: 9400, Trend: TrendUp},
		{Rank: 4, Title: "False banking collapse rumour triggers regional bank run", Category: "Finance", Volume: 7600, Trend: TrendDown},
		{Rank: 5, Title: "Doctored satellite images misidentify conflict zone locations", Category: "Conflict", Volume: 6300, Trend: TrendUp},
		{Rank: 6, Title: "Miracle cure claims spread via encrypted messaging apps", Category: "Health", Volume: 5100, Trend: TrendSame},
	}
}

type feedItem struct {
	city     string
	category string
	severity string
	verb     string
}

// Demo ticker entries for the live stream when no real flags arrive.
var feedItems = []feedItem{
	{"Jakarta", "Health", SeverityMedium, "New event detected"},
	{"Washington DC", "Politics", SeverityHigh, "Spike alert"},
	{"London", "Finance", SeverityHigh, "Cluster identified"},
	{"Berlin", "Climate", SeverityMedium, "Narrative variant"},
	{"New York", "Health", SeverityHigh, "Agent verdict: FALSE"},
	{"Tokyo", "Science", SeverityMedium, "Trending narrative"},
	{"Moscow", "Politics", SeverityHigh, "Coordinated activity"},
	{"Delhi", "Health", SeverityHigh, "Spike anomaly detected"},
	{"Beijing", "Science", SeverityHigh, "State-linked network"},
	{"Tehran", "Conflict", SeverityHigh, "Narrative flagged"},
}
