// Package handler implements the JSON API endpoints.
package handler

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"truthguard/internal/debate"
	"truthguard/internal/deepfake"
	"truthguard/internal/report"
	"truthguard/internal/triage"
)

// ClaimChecker runs the full debate pipeline on claim text.
type ClaimChecker interface {
	Run(ctx context.Context, content string) (*debate.Result, error)
}

// MediaAnalyzer runs the deepfake pipeline on raw media bytes.
type MediaAnalyzer interface {
	Run(ctx context.Context, media []byte, mimeType string) (*deepfake.Verdict, error)
}

// Triager runs the single-model quick check.
type Triager interface {
	Run(ctx context.Context, text string) (triage.Result, error)
}

// MediaArchiver stores analysed media for audit. Optional.
type MediaArchiver interface {
	Archive(ctx context.Context, analysisID, filename string, data []byte, contentType string) (string, error)
}

// MediaFetcher reads archived media back and mints download links. Optional.
type MediaFetcher interface {
	Fetch(ctx context.Context, objectKey string) ([]byte, error)
	PresignedURL(ctx context.Context, objectKey string) (string, error)
}

type errorBody struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, errorBody{Detail: detail})
}

func readJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(v); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid request body: "+err.Error())
		return false
	}
	return true
}

// HealthHandler reports liveness.
type HealthHandler struct {
	Env     string
	Reports *report.Store
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"env":     h.Env,
		"reports": h.Reports.Count(),
	})
}
