package credibility

import "testing"

func TestAssess_KnownDomains(t *testing.T) {
	cases := []struct {
		url   string
		tier  int
		score float64
		name  string
	}{
		{"https://www.reuters.com/world/some-article", 1, 0.97, "Reuters"},
		{"https://apnews.com/hub/ap-fact-check", 1, 0.97, "Associated Press"},
		{"https://www.nytimes.com/2026/01/01/x.html", 2, 0.82, "New York Times"},
		{"https://en.wikipedia.org/wiki/Thing", 3, 0.60, "Wikipedia"},
		{"https://www.theonion.com/article", 0, 0.05, "The Onion (Satire)"},
		{"https://snopes.com/fact-check/x", 2, 0.83, "Snopes"},
	}
	for _, c := range cases {
		got := Assess(c.url)
		if got.Tier != c.tier || got.Score != c.score || got.Name != c.name {
			t.Fatalf("Assess(%q) = %+v, want tier=%d score=%v name=%q", c.url, got, c.tier, c.score, c.name)
		}
	}
}

func TestAssess_UnknownDomainDefaults(t *testing.T) {
	got := Assess("https://some-random-blog.example.net/post/1")
	if got.Tier != 4 {
		t.Fatalf("unknown domain tier = %d, want 4", got.Tier)
	}
	if got.Score != 0.30 {
		t.Fatalf("unknown domain score = %v, want 0.30", got.Score)
	}
	if got.Stars != "★★☆☆☆" {
		t.Fatalf("unknown domain stars = %q", got.Stars)
	}
}

func TestAssess_SubdomainMatchesSuffix(t *testing.T) {
	got := Assess("https://graphics.reuters.com/chart")
	if got.Name != "Reuters" || got.Tier != 1 {
		t.Fatalf("subdomain match failed: %+v", got)
	}
}

func TestAssess_LongestSuffixWins(t *testing.T) {
	// pubmed.ncbi.nlm.nih.gov is registered more specifically than nih.gov.
	got := Assess("https://pubmed.ncbi.nlm.nih.gov/12345/")
	if got.Name != "PubMed" || got.Score != 0.97 {
		t.Fatalf("longest suffix not preferred: %+v", got)
	}
}

func TestAssess_BoundsHoldForAllRegistryEntries(t *testing.T) {
	for domain, entry := range tierRegistry {
		if entry.Score < 0 || entry.Score > 1 {
			t.Fatalf("registry score out of range for %s: %v", domain, entry.Score)
		}
		if entry.Tier < 0 || entry.Tier > 4 {
			t.Fatalf("registry tier out of range for %s: %d", domain, entry.Tier)
		}
	}
}

func TestAssess_MalformedURL(t *testing.T) {
	got := Assess("::::not a url")
	if got.Tier != 4 || got.Score != 0.30 {
		t.Fatalf("malformed URL should default to tier 4: %+v", got)
	}
}

func TestAvgScore(t *testing.T) {
	if got := AvgScore(nil); got != 0.0 {
		t.Fatalf("AvgScore(nil) = %v, want 0.0", got)
	}
	if got := AvgScore([]float64{0.9, 0.7}); got != 0.8 {
		t.Fatalf("AvgScore = %v, want 0.8", got)
	}
	if got := AvgScore([]float64{0.97, 0.83, 0.30}); got != 0.7 {
		t.Fatalf("AvgScore = %v, want 0.7", got)
	}
}

func TestQualityLabel(t *testing.T) {
	cases := []struct {
		avg  float64
		want string
	}{
		{0.70, "HIGH"},
		{0.90, "HIGH"},
		{0.69, "MEDIUM"},
		{0.45, "MEDIUM"},
		{0.44, "LOW"},
		{0.0, "LOW"},
	}
	for _, c := range cases {
		if got := QualityLabel(c.avg); got != c.want {
			t.Fatalf("QualityLabel(%v) = %q, want %q", c.avg, got, c.want)
		}
	}
}
