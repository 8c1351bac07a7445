package provider

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	genai "google.golang.org/genai"
)

// GeminiClient wraps the official genai client behind the TextGenerator and
// VisionGenerator contracts. One client serves both model tiers.
type GeminiClient struct {
	cli        *genai.Client
	flashModel string
	proModel   string
	maxInline  int
	rl         *rpsLimiter
}

// NewGeminiClient builds the real Gemini-backed generator. maxInline caps the
// media payload sent with GenerateWithMedia; larger payloads degrade to
// text-only analysis instead of erroring.
func NewGeminiClient(ctx context.Context, apiKey, flashModel, proModel string, maxInline int) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, ErrUnavailable
	}
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey, Backend: genai.BackendGeminiAPI})
	if err != nil {
		return nil, err
	}
	// Optional RPS throttle via env: GEMINI_RPS and GEMINI_BURST.
	var rps float64
	var burst int
	if v := os.Getenv("GEMINI_RPS"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			rps = f
		}
	}
	if v := os.Getenv("GEMINI_BURST"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			burst = n
		}
	}
	return &GeminiClient{
		cli:        cli,
		flashModel: flashModel,
		proModel:   proModel,
		maxInline:  maxInline,
		rl:         newRPSLimiter(rps, burst),
	}, nil
}

func (g *GeminiClient) Close() error {
	g.rl.stop()
	return nil
}

func (g *GeminiClient) modelFor(tier ModelTier) string {
	if tier == TierPro {
		return g.proModel
	}
	return g.flashModel
}

// Generate sends a text-only prompt to the tier's model with bounded retry.
func (g *GeminiClient) Generate(ctx context.Context, prompt string, tier ModelTier) (string, error) {
	return g.generate(ctx, g.modelFor(tier), []*genai.Part{{Text: prompt}})
}

// GenerateWithMedia sends a prompt plus an inline media blob to the pro
// model. Payloads over the inline ceiling are dropped from the request and
// the prompt goes out alone.
func (g *GeminiClient) GenerateWithMedia(ctx context.Context, prompt string, media []byte, mimeType string) (string, error) {
	parts := []*genai.Part{{Text: prompt}}
	if len(media) > 0 && len(media) <= g.maxInline {
		parts = append(parts, &genai.Part{InlineData: &genai.Blob{MIMEType: mimeType, Data: media}})
	} else if len(media) > g.maxInline {
		log.Printf("gemini: media payload %d bytes exceeds inline ceiling %d, degrading to text-only", len(media), g.maxInline)
	}
	return g.generate(ctx, g.proModel, parts)
}

func (g *GeminiClient) generate(ctx context.Context, model string, parts []*genai.Part) (string, error) {
	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		// Each API call consumes a limiter token, retries included.
		if err := g.rl.acquire(ctx); err != nil {
			return "", err
		}
		resp, err := g.cli.Models.GenerateContent(ctx, model,
			[]*genai.Content{{Parts: parts}}, nil)
		if err != nil {
			lastErr = err
		} else if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
			lastErr = ErrEmptyReply
		} else {
			return resp.Candidates[0].Content.Parts[0].Text, nil
		}
		log.Printf("gemini: attempt %d against %s failed: %v", attempt+1, model, lastErr)
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(time.Duration(300*(1<<attempt)) * time.Millisecond):
		}
	}
	return "", lastErr
}
