// Package app assembles the service graph: providers, pipelines, stores,
// and the HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"truthguard/internal/config"
	"truthguard/internal/debate"
	"truthguard/internal/deepfake"
	"truthguard/internal/handler"
	"truthguard/internal/heatmap"
	"truthguard/internal/mediastore"
	"truthguard/internal/middleware"
	"truthguard/internal/provider"
	"truthguard/internal/report"
	"truthguard/internal/server"
	"truthguard/internal/stability"
	"truthguard/internal/triage"
)

type App struct {
	server  *server.Server
	reports *report.Store
	redis   *redis.Client
}

// providers groups the upstream implementations picked at construction.
// Mode is decided exactly once; nothing downstream branches on it again.
type providers struct {
	text      provider.TextGenerator
	vision    provider.VisionGenerator
	search    provider.SearchProvider
	factcheck provider.FactCheckProvider
	vit       provider.ImageClassifier
	spatial   provider.ImageClassifier
}

func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	prov := buildProviders(ctx, cfg)

	// Pipelines.
	debatePipeline := debate.NewPipeline(prov.text, prov.search, prov.factcheck)
	deepfakePipeline := deepfake.NewPipeline(prov.vision, prov.vit, prov.spatial)
	triageSvc := triage.NewService(prov.text)
	heatmapSvc := heatmap.NewService(stability.AssessEvent, stability.AssessRegion)

	// Stores.
	reports := report.NewFromEnv(cfg.Database.DSN, cfg.Database.FilePath)

	var (
		archive handler.MediaArchiver
		fetcher handler.MediaFetcher
	)
	if cfg.Media.CanUseS3() {
		s3, err := mediastore.NewS3Store(cfg.Media)
		if err != nil {
			log.Printf("media archive disabled: %v", err)
		} else {
			archive = s3
			fetcher = s3
		}
	} else {
		log.Printf("media archive disabled: no S3 config")
	}

	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	} else {
		log.Printf("rate limiting disabled: no redis config")
	}

	// Handlers and routing.
	secret := []byte(cfg.Auth.JWTSecret)
	ttl := time.Duration(cfg.Auth.TokenTTL) * time.Minute
	mux := server.NewMux(
		handler.NewFactCheckHandler(debatePipeline, reports),
		handler.NewTriageHandler(triageSvc),
		handler.NewDeepfakeHandler(deepfakePipeline, reports, archive),
		handler.NewHeatmapHandler(heatmapSvc),
		handler.NewReportsHandler(reports, fetcher),
		handler.NewAuthHandler(secret, ttl),
		&handler.HealthHandler{Env: cfg.Env, Reports: reports},
		middleware.NewRateLimiter(rdb),
		secret,
	)

	return &App{
		server:  server.New(cfg.Port, mux),
		reports: reports,
		redis:   rdb,
	}, nil
}

// buildProviders selects real or canned implementations. Mock mode is
// explicit via AI_MOCK_MODE; a missing Gemini key forces it with a
// warning so the server always comes up.
func buildProviders(ctx context.Context, cfg *config.Config) providers {
	p := cfg.Providers
	mock := p.MockMode
	if !mock && p.GeminiAPIKey == "" {
		log.Printf("GEMINI_API_KEY is not set, falling back to mock providers")
		mock = true
	}

	if mock {
		gen := provider.NewMockGenerator()
		return providers{
			text:      gen,
			vision:    gen,
			search:    provider.NewMockSearch(),
			factcheck: provider.NewMockFactCheck(),
			vit:       provider.NewMockClassifier("vit-mock", 0.12),
			spatial:   provider.NewMockClassifier("spatial-mock", 0.12),
		}
	}

	gemini, err := provider.NewGeminiClient(ctx, p.GeminiAPIKey, p.GeminiFlashModel, p.GeminiProModel, cfg.Media.MaxInlineBytes)
	if err != nil {
		// Unreachable with a non-empty key unless the SDK rejects the
		// config; degrade the same way as a missing key.
		if !errors.Is(err, provider.ErrUnavailable) {
			log.Printf("gemini client init failed: %v", err)
		}
		log.Printf("falling back to mock providers")
		mockCfg := *cfg
		mockCfg.Providers.MockMode = true
		return buildProviders(ctx, &mockCfg)
	}

	return providers{
		text:      gemini,
		vision:    gemini,
		search:    provider.NewSerperSearch(p.SerperAPIKey),
		factcheck: provider.NewGoogleFactCheck(p.FactCheckAPIKey),
		vit:       provider.NewHFClassifier(provider.VitDetectorModel, p.HFToken),
		spatial:   provider.NewHFClassifier(provider.SpatialDetectorModel, p.HFToken),
	}
}

func (a *App) Start() error {
	return a.server.Start()
}

func (a *App) Shutdown(ctx context.Context) error {
	err := a.server.Shutdown(ctx)
	if cerr := a.reports.Close(); cerr != nil && err == nil {
		err = cerr
	}
	if a.redis != nil {
		if cerr := a.redis.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}
