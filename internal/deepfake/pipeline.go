package deepfake

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"truthguard/internal/provider"
)

// Pipeline runs the multi-probe detection flow for one media payload.
// Probes and classifiers fan out concurrently; the synthesizer is the only
// sequential step and the only one whose transport failure is terminal.
type Pipeline struct {
	vision  provider.VisionGenerator
	vit     provider.ImageClassifier
	spatial provider.ImageClassifier
}

func NewPipeline(vision provider.VisionGenerator, vit, spatial provider.ImageClassifier) *Pipeline {
	return &Pipeline{vision: vision, vit: vit, spatial: spatial}
}

// Run dispatches on the payload's MIME type.
func (p *Pipeline) Run(ctx context.Context, media []byte, mimeType string) (*Verdict, error) {
	switch MediaTypeFromMIME(mimeType) {
	case MediaVideo:
		return p.RunVideo(ctx, media, mimeType)
	case MediaAudio:
		return p.RunAudio(ctx, media, mimeType)
	default:
		return p.RunImage(ctx, media, mimeType)
	}
}

// probeSpec pairs a stage name with its prompt. Slice order fixes the
// reported stage order.
type probeSpec struct {
	name   string
	prompt string
}

// runProbes fans the probes out and fills results by index, so completion
// order never reorders the stage list. A failing probe call becomes the
// neutral inconclusive finding.
func (p *Pipeline) runProbes(ctx context.Context, specs []probeSpec, media []byte, mimeType string) []ProbeFinding {
	findings := make([]ProbeFinding, len(specs))
	var wg sync.WaitGroup
	wg.Add(len(specs))
	for i, spec := range specs {
		go func(i int, spec probeSpec) {
			defer wg.Done()
			raw, err := p.vision.GenerateWithMedia(ctx, spec.prompt, media, mimeType)
			if err != nil {
				log.Printf("deepfake: probe %q failed: %v", spec.name, err)
				findings[i] = ProbeFinding{Name: spec.name, Score: 0.5, Summary: "Probe unavailable, inconclusive."}
				return
			}
			findings[i] = parseProbe(spec.name, raw)
		}(i, spec)
	}
	wg.Wait()
	return findings
}

func (p *Pipeline) classifyBoth(ctx context.Context, image []byte) (vit, spatial provider.Classification) {
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		vit = p.vit.ClassifyImage(ctx, image)
	}()
	go func() {
		defer wg.Done()
		spatial = p.spatial.ClassifyImage(ctx, image)
	}()
	wg.Wait()
	return vit, spatial
}

// RunImage: two forensic probes plus both classifiers, then synthesis.
func (p *Pipeline) RunImage(ctx context.Context, image []byte, mimeType string) (*Verdict, error) {
	log.Printf("deepfake: starting image pipeline (mime=%s, size=%d bytes)", mimeType, len(image))

	specs := []probeSpec{
		{name: "GAN & Artifact Scan", prompt: imgArtifactPrompt},
		{name: "Facial Consistency Check", prompt: imgFacialPrompt},
	}
	var (
		wg           sync.WaitGroup
		probes       []ProbeFinding
		vit, spatial provider.Classification
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		probes = p.runProbes(ctx, specs, image, mimeType)
	}()
	go func() {
		defer wg.Done()
		vit, spatial = p.classifyBoth(ctx, image)
	}()
	wg.Wait()
	log.Printf("deepfake: classifiers vit=%s/%.2f spatial=%s/%.2f", vit.Label, vit.Score, spatial.Label, spatial.Score)

	synthPrompt := fmt.Sprintf(imgSynthPrompt,
		probes[0].Score, formatFindings(probes[0].Findings), probes[0].Summary,
		probes[1].Score, formatFindings(probes[1].Findings), probes[1].Summary,
		vit.Label, vit.Score,
		spatial.Label, spatial.Score,
	)
	synthRaw, err := p.vision.GenerateWithMedia(ctx, synthPrompt, image, mimeType)
	if err != nil {
		return nil, fmt.Errorf("deepfake: image synthesis: %w", err)
	}
	isFake, confidence, reasoning := parseSynthesis(synthRaw)
	classifiers := []provider.Classification{vit, spatial}
	isFake, confidence, label, reasoning := applyVoteGuard(probes, classifiers, isFake, confidence, reasoning)

	stages := append(stagesFromProbes(probes),
		classifierStage("ViT AI-Image Classifier", "ViT (umm-maybe)", "AI-generated probability", vit, true),
		classifierStage("Spatial Artifact CNN", "EfficientNet (dima806)", "face-swap artifact probability", spatial, true),
		AnalysisStage{Name: "Synthesis Verdict", Finding: truncate(reasoning, 300), Score: confidence},
	)

	log.Printf("deepfake: image pipeline complete is_fake=%t confidence=%.2f", isFake, confidence)
	return &Verdict{
		IsFake:     isFake,
		Confidence: confidence,
		Label:      label,
		Reasoning:  reasoning,
		Stages:     stages,
		MediaType:  MediaImage,
	}, nil
}

// RunAudio: two probes, no classifiers, then synthesis.
func (p *Pipeline) RunAudio(ctx context.Context, audio []byte, mimeType string) (*Verdict, error) {
	log.Printf("deepfake: starting audio pipeline (mime=%s, size=%d bytes)", mimeType, len(audio))

	specs := []probeSpec{
		{name: "Prosody Analysis", prompt: audProsodyPrompt},
		{name: "Spectral Fingerprint Analysis", prompt: audSpectralPrompt},
	}
	probes := p.runProbes(ctx, specs, audio, mimeType)

	synthPrompt := fmt.Sprintf(audSynthPrompt,
		probes[0].Score, formatFindings(probes[0].Findings), probes[0].Summary,
		probes[1].Score, formatFindings(probes[1].Findings), probes[1].Summary,
	)
	synthRaw, err := p.vision.GenerateWithMedia(ctx, synthPrompt, audio, mimeType)
	if err != nil {
		return nil, fmt.Errorf("deepfake: audio synthesis: %w", err)
	}
	isFake, confidence, reasoning := parseSynthesis(synthRaw)
	isFake, confidence, label, reasoning := applyVoteGuard(probes, nil, isFake, confidence, reasoning)

	stages := append(stagesFromProbes(probes),
		AnalysisStage{Name: "Synthesis Verdict", Finding: truncate(reasoning, 300), Score: confidence},
	)

	log.Printf("deepfake: audio pipeline complete is_fake=%t confidence=%.2f", isFake, confidence)
	return &Verdict{
		IsFake:     isFake,
		Confidence: confidence,
		Label:      label,
		Reasoning:  reasoning,
		Stages:     stages,
		MediaType:  MediaAudio,
	}, nil
}

// RunVideo: three probes on the full payload plus both classifiers on the
// first extractable JPEG keyframe, then synthesis.
func (p *Pipeline) RunVideo(ctx context.Context, video []byte, mimeType string) (*Verdict, error) {
	log.Printf("deepfake: starting video pipeline (mime=%s, size=%d bytes)", mimeType, len(video))

	specs := []probeSpec{
		{name: "Visual Artifact Scan", prompt: imgArtifactPrompt},
		{name: "Facial Consistency Check", prompt: imgFacialPrompt},
		{name: "Temporal Consistency Analysis", prompt: vidTemporalPrompt},
	}
	keyframe := ExtractJPEGKeyframe(video)

	var (
		wg           sync.WaitGroup
		probes       []ProbeFinding
		vit, spatial provider.Classification
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		probes = p.runProbes(ctx, specs, video, mimeType)
	}()
	go func() {
		defer wg.Done()
		if keyframe == nil {
			// No extractable frame: report UNCERTAIN and drop out of the
			// vote instead of guessing a score.
			vit, spatial = provider.Uncertain(), provider.Uncertain()
			return
		}
		vit, spatial = p.classifyBoth(ctx, keyframe)
	}()
	wg.Wait()
	log.Printf("deepfake: keyframe classifiers vit=%s/%.2f spatial=%s/%.2f", vit.Label, vit.Score, spatial.Label, spatial.Score)

	synthPrompt := fmt.Sprintf(vidSynthPrompt,
		probes[0].Score, formatFindings(probes[0].Findings), probes[0].Summary,
		probes[1].Score, formatFindings(probes[1].Findings), probes[1].Summary,
		probes[2].Score, formatFindings(probes[2].Findings), probes[2].Summary,
		vit.Label, vit.Score,
		spatial.Label, spatial.Score,
	)
	synthRaw, err := p.vision.GenerateWithMedia(ctx, synthPrompt, video, mimeType)
	if err != nil {
		return nil, fmt.Errorf("deepfake: video synthesis: %w", err)
	}
	isFake, confidence, reasoning := parseSynthesis(synthRaw)
	classifiers := []provider.Classification{vit, spatial}
	isFake, confidence, label, reasoning := applyVoteGuard(probes, classifiers, isFake, confidence, reasoning)

	hasFrame := keyframe != nil
	stages := append(stagesFromProbes(probes),
		classifierStage("ViT AI-Image Classifier", "ViT (umm-maybe) on keyframe", "AI-generated probability", vit, hasFrame),
		classifierStage("Spatial Artifact CNN", "EfficientNet (dima806) on keyframe", "face-swap artifact probability", spatial, hasFrame),
		AnalysisStage{Name: "Synthesis Verdict", Finding: truncate(reasoning, 300), Score: confidence},
	)

	log.Printf("deepfake: video pipeline complete is_fake=%t confidence=%.2f", isFake, confidence)
	return &Verdict{
		IsFake:     isFake,
		Confidence: confidence,
		Label:      label,
		Reasoning:  reasoning,
		Stages:     stages,
		MediaType:  MediaVideo,
	}, nil
}

func stagesFromProbes(probes []ProbeFinding) []AnalysisStage {
	stages := make([]AnalysisStage, len(probes))
	for i, p := range probes {
		stages[i] = AnalysisStage{Name: p.Name, Finding: p.Summary, Score: p.Score}
	}
	return stages
}

func classifierStage(stageName, modelName, metric string, c provider.Classification, hasFrame bool) AnalysisStage {
	finding := fmt.Sprintf("%s: %s (%.0f%% %s)", modelName, c.Label, c.Score*100, metric)
	if !hasFrame {
		finding = "No extractable keyframe, " + modelName + " skipped."
	}
	return AnalysisStage{Name: stageName, Finding: finding, Score: c.Score}
}

func formatFindings(findings []string) string {
	if len(findings) == 0 {
		return "  - No specific findings recorded."
	}
	lines := make([]string, len(findings))
	for i, f := range findings {
		lines[i] = "  - " + f
	}
	return strings.Join(lines, "\n")
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
