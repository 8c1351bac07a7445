package provider

import (
	"context"
	"math"
	"strings"
	"testing"
)

type labelScore = struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

func TestScoreFromLabels_FakeEntry(t *testing.T) {
	got := scoreFromLabels([]labelScore{
		{Label: "artificial", Score: 0.92},
		{Label: "real", Score: 0.08},
	})
	if got.Score != 0.92 || got.Label != "FAKE" {
		t.Fatalf("got %+v", got)
	}
}

func TestScoreFromLabels_RealOnly(t *testing.T) {
	got := scoreFromLabels([]labelScore{{Label: "Real", Score: 0.85}})
	if math.Abs(got.Score-0.15) > 1e-9 {
		t.Fatalf("score = %v", got.Score)
	}
	if got.Label != "REAL" {
		t.Fatalf("label = %q", got.Label)
	}
}

func TestScoreFromLabels_UnknownLabels(t *testing.T) {
	got := scoreFromLabels([]labelScore{{Label: "cat", Score: 0.99}})
	if got != Uncertain() {
		t.Fatalf("got %+v, want uncertain", got)
	}
}

func TestHFClassifier_NoTokenIsUncertain(t *testing.T) {
	c := NewHFClassifier(VitDetectorModel, "")
	if got := c.ClassifyImage(context.Background(), []byte{0xFF, 0xD8}); got != Uncertain() {
		t.Fatalf("got %+v", got)
	}
}

func TestMockGenerator_Routing(t *testing.T) {
	m := NewMockGenerator()
	ctx := context.Background()

	out, err := m.Generate(ctx, "You are Agent A in a structured fact-check debate.", TierPro)
	if err != nil || !strings.HasPrefix(out, "ARGUMENT:") {
		t.Fatalf("agent A reply: %v %q", err, out)
	}
	out, _ = m.Generate(ctx, "You are an impartial JUDGE evaluating a debate.", TierPro)
	if !strings.Contains(out, `"verdict": "TRUE"`) {
		t.Fatalf("judge reply: %q", out)
	}
	out, _ = m.GenerateWithMedia(ctx, "You are a forensic image analyst.", nil, "image/jpeg")
	if !strings.Contains(out, `"suspicious": false`) {
		t.Fatalf("probe reply: %q", out)
	}
	out, _ = m.Generate(ctx, "something unrecognized", TierFlash)
	if !strings.Contains(out, "[MOCK]") {
		t.Fatalf("default reply: %q", out)
	}
}

func TestDisabledSearchAndLookupReturnEmpty(t *testing.T) {
	ctx := context.Background()
	if got := NewSerperSearch("").Search(ctx, "anything", 5); len(got) != 0 {
		t.Fatalf("disabled search returned %d results", len(got))
	}
	if got := NewSerperSearch("").SearchNews(ctx, "anything", 5); len(got) != 0 {
		t.Fatalf("disabled news search returned %d results", len(got))
	}
	if got := NewGoogleFactCheck("").Lookup(ctx, "anything", 5); len(got) != 0 {
		t.Fatalf("disabled lookup returned %d reviews", len(got))
	}
}
