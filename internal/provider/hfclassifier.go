package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

const hfInferenceBaseURL = "https://api-inference.huggingface.co/models/"

// Hosted image-classification models. The ViT model catches images generated
// from scratch (diffusion, GAN); the EfficientNet model catches face-swap
// compositing artifacts. Their signals are complementary, so both vote.
const (
	VitDetectorModel     = "umm-maybe/AI-image-detector"
	SpatialDetectorModel = "dima806/deepfake_vs_real_image_detection"
)

// HFClassifier scores images through a HuggingFace hosted inference model.
// Any failure, including a missing token, yields the neutral Uncertain()
// result so the rest of the pipeline keeps going.
type HFClassifier struct {
	model string
	token string
	http  *http.Client
}

func NewHFClassifier(model, token string) *HFClassifier {
	if token == "" {
		log.Printf("hfclassifier: HF_API_TOKEN not set, %s disabled", model)
	}
	return &HFClassifier{
		model: model,
		token: token,
		// Cold model containers can take a while to spin up.
		http: &http.Client{Timeout: 60 * time.Second},
	}
}

func (h *HFClassifier) Name() string { return h.model }

func (h *HFClassifier) ClassifyImage(ctx context.Context, image []byte) Classification {
	if h.token == "" || len(image) == 0 {
		return Uncertain()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, hfInferenceBaseURL+h.model, bytes.NewReader(image))
	if err != nil {
		log.Printf("hfclassifier: %s build request: %v", h.model, err)
		return Uncertain()
	}
	req.Header.Set("Authorization", "Bearer "+h.token)

	resp, err := h.http.Do(req)
	if err != nil {
		log.Printf("hfclassifier: %s request failed: %v", h.model, err)
		return Uncertain()
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 200))
		log.Printf("hfclassifier: %s status %d: %s", h.model, resp.StatusCode, snippet)
		return Uncertain()
	}

	var results []struct {
		Label string  `json:"label"`
		Score float64 `json:"score"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		log.Printf("hfclassifier: %s decode: %v", h.model, err)
		return Uncertain()
	}
	return scoreFromLabels(results)
}

// scoreFromLabels normalizes the model's label set into a fake-probability.
// umm-maybe uses artificial/real, dima806 uses Fake/Real.
func scoreFromLabels(results []struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}) Classification {
	fakeScore := -1.0
	realScore := -1.0
	for _, r := range results {
		switch strings.ToLower(r.Label) {
		case "fake", "deepfake", "ai", "artificial":
			fakeScore = r.Score
		case "real", "genuine", "authentic":
			realScore = r.Score
		}
	}

	var score float64
	switch {
	case fakeScore >= 0:
		score = fakeScore
	case realScore >= 0:
		score = 1.0 - realScore
	default:
		return Uncertain()
	}

	label := "REAL"
	if score >= 0.5 {
		label = "FAKE"
	}
	return Classification{Score: score, Label: label}
}
