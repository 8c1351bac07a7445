package deepfake

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"truthguard/internal/provider"
)

// stubVision maps a prompt marker to a reply so each probe can answer
// differently within one run.
type stubVision struct {
	replies  map[string]string
	synthErr error
}

func (s *stubVision) GenerateWithMedia(_ context.Context, prompt string, _ []byte, _ string) (string, error) {
	if strings.Contains(prompt, "FINAL SYNTHESIS") {
		if s.synthErr != nil {
			return "", s.synthErr
		}
		if r, ok := s.replies["synthesis"]; ok {
			return r, nil
		}
		return `{"is_fake": false, "confidence": 0.2, "reasoning": "looks clean"}`, nil
	}
	for marker, reply := range s.replies {
		if strings.Contains(prompt, marker) {
			return reply, nil
		}
	}
	return `{"suspicious": false, "score": 0.1, "findings": [], "summary": "clean"}`, nil
}

type stubClassifier struct {
	name   string
	result provider.Classification
}

func (s *stubClassifier) Name() string { return s.name }
func (s *stubClassifier) ClassifyImage(_ context.Context, _ []byte) provider.Classification {
	return s.result
}

func fixedClassifier(score float64, label string) *stubClassifier {
	return &stubClassifier{name: "stub", result: provider.Classification{Score: score, Label: label}}
}

func highProbeVision() *stubVision {
	return &stubVision{replies: map[string]string{
		"grid-like":      `{"suspicious": true, "score": 0.85, "findings": ["grid noise"], "summary": "artifacts"}`,
		"facial anatomy": `{"suspicious": true, "score": 0.78, "findings": ["catchlights"], "summary": "anomalies"}`,
		"temporal":       `{"suspicious": true, "score": 0.80, "findings": ["flicker"], "summary": "flicker"}`,
		"synthesis":      `{"is_fake": false, "confidence": 0.45, "reasoning": "model hedged"}`,
	}}
}

func TestRunImage_ProbeConsensusOverridesQuietClassifiers(t *testing.T) {
	p := NewPipeline(highProbeVision(), fixedClassifier(0.12, "REAL"), fixedClassifier(0.18, "REAL"))
	v, err := p.RunImage(context.Background(), []byte("img"), "image/jpeg")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !v.IsFake {
		t.Fatal("probe consensus with quiet classifiers must yield FAKE")
	}
	if v.Label != LabelFake {
		t.Fatalf("label = %q", v.Label)
	}
	if v.Confidence < 0.70 {
		t.Fatalf("confidence = %v", v.Confidence)
	}
}

func TestRunImage_StageOrderIsInvocationOrder(t *testing.T) {
	p := NewPipeline(highProbeVision(), fixedClassifier(0.12, "REAL"), fixedClassifier(0.18, "REAL"))
	v, err := p.RunImage(context.Background(), []byte("img"), "image/jpeg")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	want := []string{
		"GAN & Artifact Scan",
		"Facial Consistency Check",
		"ViT AI-Image Classifier",
		"Spatial Artifact CNN",
		"Synthesis Verdict",
	}
	if len(v.Stages) != len(want) {
		t.Fatalf("stage count = %d", len(v.Stages))
	}
	for i, name := range want {
		if v.Stages[i].Name != name {
			t.Fatalf("stage %d = %q, want %q", i, v.Stages[i].Name, name)
		}
	}
	if v.Stages[0].Score != 0.85 || v.Stages[1].Score != 0.78 {
		t.Fatalf("probe stage scores: %+v", v.Stages[:2])
	}
}

func TestRunImage_DecisiveClassifierForcesFake(t *testing.T) {
	vision := &stubVision{replies: map[string]string{
		"synthesis": `{"is_fake": false, "confidence": 0.3, "reasoning": "probes clean"}`,
	}}
	p := NewPipeline(vision, fixedClassifier(0.9, "FAKE"), fixedClassifier(0.1, "REAL"))
	v, err := p.RunImage(context.Background(), []byte("img"), "image/jpeg")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !v.IsFake || v.Confidence < 0.9 {
		t.Fatalf("verdict = %+v", v)
	}
}

func TestRunImage_EvenSplitIsUncertain(t *testing.T) {
	vision := &stubVision{replies: map[string]string{
		"grid-like":      `{"suspicious": true, "score": 0.7, "findings": [], "summary": "artifacts"}`,
		"facial anatomy": `{"suspicious": false, "score": 0.2, "findings": [], "summary": "clean"}`,
		"synthesis":      `{"is_fake": true, "confidence": 0.9, "reasoning": "confident but split"}`,
	}}
	p := NewPipeline(vision, fixedClassifier(0.6, "FAKE"), fixedClassifier(0.2, "REAL"))
	v, err := p.RunImage(context.Background(), []byte("img"), "image/jpeg")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if v.IsFake || v.Label != LabelUncertain {
		t.Fatalf("even split verdict = %+v", v)
	}
	if v.Confidence < 0.40 || v.Confidence > 0.55 {
		t.Fatalf("uncertain confidence %v outside band", v.Confidence)
	}
}

func TestRunVideo_NoKeyframeExcludesClassifiers(t *testing.T) {
	// Classifiers would vote FAKE if they ran; without a keyframe they
	// must never be consulted.
	loud := fixedClassifier(0.9, "FAKE")
	p := NewPipeline(highProbeVision(), loud, loud)
	// No FF D8 FF marker anywhere in the payload.
	video := bytes.Repeat([]byte{0x00, 0x11, 0x22}, 64)
	v, err := p.RunVideo(context.Background(), video, "video/mp4")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	// Classifier stages must carry the neutral score and the skip note, and
	// the probe consensus must still win the vote without them.
	if v.Stages[3].Score != 0.5 || !strings.Contains(v.Stages[3].Finding, "skipped") {
		t.Fatalf("vit stage = %+v", v.Stages[3])
	}
	if v.Stages[4].Score != 0.5 || !strings.Contains(v.Stages[4].Finding, "skipped") {
		t.Fatalf("spatial stage = %+v", v.Stages[4])
	}
	if !v.IsFake {
		t.Fatal("all-high probes with excluded classifiers must yield FAKE")
	}
	if len(v.Stages) != 6 {
		t.Fatalf("stage count = %d", len(v.Stages))
	}
}

func TestRunVideo_KeyframePassedToClassifiers(t *testing.T) {
	frame := append(append([]byte{0xFF, 0xD8, 0xFF, 0xE0}, []byte("jfif-payload")...), 0xFF, 0xD9)
	video := append([]byte("container-header"), frame...)
	video = append(video, []byte("trailing")...)

	p := NewPipeline(highProbeVision(), fixedClassifier(0.12, "REAL"), fixedClassifier(0.18, "REAL"))
	v, err := p.RunVideo(context.Background(), video, "video/mp4")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if strings.Contains(v.Stages[3].Finding, "skipped") {
		t.Fatalf("keyframe not used: %+v", v.Stages[3])
	}
}

func TestRunAudio_SynthesisErrorPropagates(t *testing.T) {
	boom := errors.New("vision down")
	p := NewPipeline(&stubVision{synthErr: boom}, nil, nil)
	if _, err := p.RunAudio(context.Background(), []byte("aud"), "audio/mpeg"); !errors.Is(err, boom) {
		t.Fatalf("want synthesis error, got %v", err)
	}
}

func TestRunAudio_GarbledProbesStillComplete(t *testing.T) {
	vision := &stubVision{replies: map[string]string{
		"prosody-level":        "not json at all",
		"vocoder fingerprints": "```broken",
		"synthesis":            `{"is_fake": false, "confidence": 0.5, "reasoning": "inconclusive"}`,
	}}
	p := NewPipeline(vision, nil, nil)
	v, err := p.RunAudio(context.Background(), []byte("aud"), "audio/mpeg")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if v.Stages[0].Score != 0.5 || v.Stages[1].Score != 0.5 {
		t.Fatalf("garbled probes should be neutral: %+v", v.Stages[:2])
	}
	if v.IsFake {
		t.Fatal("neutral signals must not produce a FAKE verdict")
	}
	if !strings.Contains(v.Stages[0].Finding, "inconclusive") {
		t.Fatalf("finding = %q", v.Stages[0].Finding)
	}
}

func TestExtractJPEGKeyframe(t *testing.T) {
	frame := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x01, 0x02, 0xFF, 0xD9}
	buf := append([]byte{0xAA, 0xBB}, frame...)
	buf = append(buf, 0xCC)
	got := ExtractJPEGKeyframe(buf)
	if !bytes.Equal(got, frame) {
		t.Fatalf("got % X", got)
	}
	if ExtractJPEGKeyframe([]byte{0x00, 0x01, 0x02}) != nil {
		t.Fatal("no marker should yield nil")
	}
	if ExtractJPEGKeyframe([]byte{0xFF, 0xD8, 0xFF, 0x00}) != nil {
		t.Fatal("missing EOI should yield nil")
	}
}

func TestMIMEFromFilename(t *testing.T) {
	cases := map[string]string{
		"photo.JPG":    "image/jpeg",
		"clip.webm":    "video/webm",
		"voice.m4a":    "audio/mp4",
		"archive.zip":  "application/octet-stream",
		"no-extension": "application/octet-stream",
	}
	for in, want := range cases {
		if got := MIMEFromFilename(in); got != want {
			t.Fatalf("MIMEFromFilename(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestRun_DispatchesByMIME(t *testing.T) {
	p := NewPipeline(highProbeVision(), fixedClassifier(0.1, "REAL"), fixedClassifier(0.1, "REAL"))
	v, err := p.Run(context.Background(), []byte("aud"), "audio/wav")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if v.MediaType != MediaAudio {
		t.Fatalf("media type = %q", v.MediaType)
	}
}
