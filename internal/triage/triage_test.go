package triage

import (
	"context"
	"strings"
	"testing"

	"truthguard/internal/provider"
)

type stubText struct {
	lastPrompt string
	reply      string
}

func (s *stubText) Generate(_ context.Context, prompt string, _ provider.ModelTier) (string, error) {
	s.lastPrompt = prompt
	return s.reply, nil
}

func TestRun_PlainTextUsesTextPrompt(t *testing.T) {
	stub := &stubText{reply: `{"verdict": "TRUE", "confidence": 88, "summary": "well sourced"}`}
	svc := NewService(stub)

	res, err := svc.Run(context.Background(), "The WHO declared the outbreak over in May.")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.Verdict != "TRUE" || res.Confidence != 88 {
		t.Fatalf("result = %+v", res)
	}
	if !strings.Contains(stub.lastPrompt, "TEXT:") {
		t.Fatal("text prompt not used")
	}
	if strings.Contains(stub.lastPrompt, "URL:") {
		t.Fatal("url prompt used for plain text")
	}
}

func TestRun_EmbeddedURLUsesURLOnlyPrompt(t *testing.T) {
	stub := &stubText{reply: `{"verdict": "UNVERIFIED", "confidence": 40, "summary": "url only"}`}
	svc := NewService(stub)

	if _, err := svc.Run(context.Background(), "check this https://example.com/story out"); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(stub.lastPrompt, "URL: https://example.com/story") {
		t.Fatalf("prompt = %q", stub.lastPrompt[:80])
	}
	if strings.Contains(stub.lastPrompt, "PAGE CONTENT") {
		t.Fatal("content prompt used without content")
	}
}

func TestParseResult_HighlightLabelNormalization(t *testing.T) {
	raw := `{"verdict": "ai generated", "confidence": 72, "summary": "synthetic prose",
		"highlights": [
			{"text": "unnaturally smooth transitions", "label": "Hallucinated"},
			{"text": "cited the 2019 census", "label": "factual"},
			{"text": "experts say", "label": "nonsense-label"},
			{"text": "", "label": "accurate"}
		]}`
	res := parseResult(raw)
	if res.Verdict != "AI_GENERATED" {
		t.Fatalf("verdict = %q", res.Verdict)
	}
	if len(res.Highlights) != 2 {
		t.Fatalf("highlights = %+v", res.Highlights)
	}
	if res.Highlights[0].Label != "ai_generated" || res.Highlights[1].Label != "accurate" {
		t.Fatalf("labels: %+v", res.Highlights)
	}
}

func TestParseResult_KeywordFallback(t *testing.T) {
	res := parseResult("After review the content is clearly MISLEADING in framing.")
	if res.Verdict != "MISLEADING" || res.Confidence != 50 {
		t.Fatalf("result = %+v", res)
	}
}

func TestParseResult_GarbageIsUnverified(t *testing.T) {
	res := parseResult("```nonsense")
	if res.Verdict != "UNVERIFIED" || res.Confidence != 20 {
		t.Fatalf("result = %+v", res)
	}
	if res.Summary != "Unable to parse AI response." {
		t.Fatalf("summary = %q", res.Summary)
	}
}

func TestParseResult_ConfidenceClamp(t *testing.T) {
	res := parseResult(`{"verdict": "TRUE", "confidence": 140, "summary": "x"}`)
	if res.Confidence != 100 {
		t.Fatalf("confidence = %d", res.Confidence)
	}
}

func TestRun_MockGeneratorRoutesToTriageReply(t *testing.T) {
	svc := NewService(provider.NewMockGenerator())
	res, err := svc.Run(context.Background(), "Some claim that needs checking quickly.")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.Verdict != "UNVERIFIED" || res.Confidence != 30 {
		t.Fatalf("mock triage = %+v", res)
	}
}
