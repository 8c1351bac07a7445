package server

import (
	"net/http"

	"truthguard/internal/handler"
	"truthguard/internal/middleware"
)

// Per-route request budgets, requests per minute per client IP.
const (
	factCheckPerMinute = 20
	deepfakePerMinute  = 20
	triagePerMinute    = 60
)

// NewMux wires the API routes with their middleware stacks.
func NewMux(
	factCheckHandler *handler.FactCheckHandler,
	triageHandler *handler.TriageHandler,
	deepfakeHandler *handler.DeepfakeHandler,
	heatmapHandler *handler.HeatmapHandler,
	reportsHandler *handler.ReportsHandler,
	authHandler *handler.AuthHandler,
	healthHandler *handler.HealthHandler,
	limiter *middleware.RateLimiter,
	jwtSecret []byte,
) http.Handler {
	mux := http.NewServeMux()

	optionalAuth := middleware.OptionalJWT(jwtSecret)

	mux.Handle("POST /api/v1/factcheck",
		limiter.Limit("factcheck", factCheckPerMinute)(optionalAuth(http.HandlerFunc(factCheckHandler.FactCheck))))
	mux.Handle("POST /api/v1/triage",
		limiter.Limit("triage", triagePerMinute)(http.HandlerFunc(triageHandler.Triage)))
	mux.Handle("POST /api/v1/deepfake",
		limiter.Limit("deepfake", deepfakePerMinute)(optionalAuth(http.HandlerFunc(deepfakeHandler.Analyze))))

	mux.HandleFunc("GET /api/v1/heatmap", heatmapHandler.Snapshot)
	mux.HandleFunc("POST /api/v1/heatmap/flag", heatmapHandler.Flag)
	mux.HandleFunc("GET /api/v1/heatmap/stream", heatmapHandler.Stream)

	mux.HandleFunc("GET /api/v1/reports", reportsHandler.List)
	mux.HandleFunc("GET /api/v1/reports/{id}", reportsHandler.Get)
	mux.HandleFunc("GET /api/v1/reports/{id}/download", reportsHandler.Download)

	mux.HandleFunc("POST /api/v1/auth/token", authHandler.Token)
	mux.HandleFunc("GET /api/v1/health", healthHandler.Health)

	return middleware.CORS(mux)
}
